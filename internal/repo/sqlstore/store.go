package sqlstore

import "github.com/vetware/go-clinic-backend/internal/repo"

// New bundles the SQL-backed repositories into a repo.Store.
func New(db *DB) *repo.Store {
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
