package gormstore

import (
	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/repo"
)

// New bundles the GORM-backed repositories into a repo.Store.
func New(db *gorm.DB) *repo.Store {
	return &repo.Store{
		Owners:      NewOwnerStore(db),
		Pets:        NewPetStore(db),
		Visits:      NewVisitStore(db),
		Vets:        NewVetStore(db),
		Specialties: NewSpecialtyStore(db),
		PetTypes:    NewPetTypeStore(db),
		Users:       NewUserStore(db),
	}
}
