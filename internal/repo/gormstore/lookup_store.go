package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// SpecialtyStore implements repo.SpecialtyRepository on GORM.
type SpecialtyStore struct {
	db *gorm.DB
}

// NewSpecialtyStore returns a specialty repository bound to db.
func NewSpecialtyStore(db *gorm.DB) *SpecialtyStore { return &SpecialtyStore{db: db} }

// FindByID returns the specialty or repo.ErrNotFound.
func (s *SpecialtyStore) FindByID(ctx context.Context, id int) (*domain.Specialty, error) {
	var row specialtyRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	spec := row.toDomain()
	return &spec, nil
}

// FindAll returns every specialty.
func (s *SpecialtyStore) FindAll(ctx context.Context) ([]domain.Specialty, error) {
	var rows []specialtyRow
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Specialty, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// Save inserts a new specialty (assigning the generated ID back) or updates
// the name of an existing one.
func (s *SpecialtyStore) Save(ctx context.Context, spec *domain.Specialty) error {
	if spec.IsNew() {
		row := specialtyRow{Name: spec.Name}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		spec.ID = &row.ID
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&specialtyRow{}).
		Where("id = ?", *spec.ID).
		Update("name", spec.Name).Error
}

// Delete removes the vet_specialties rows referencing the specialty, then
// the specialty row, in one transaction. Vets are never deleted here.
func (s *SpecialtyStore) Delete(ctx context.Context, spec *domain.Specialty) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("specialty_id = ?", *spec.ID).Delete(&vetSpecialtyRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&specialtyRow{}, *spec.ID).Error
	})
}

// PetTypeStore implements repo.PetTypeRepository on GORM.
type PetTypeStore struct {
	db *gorm.DB
}

// NewPetTypeStore returns a pet-type repository bound to db.
func NewPetTypeStore(db *gorm.DB) *PetTypeStore { return &PetTypeStore{db: db} }

// FindByID returns the pet type or repo.ErrNotFound.
func (s *PetTypeStore) FindByID(ctx context.Context, id int) (*domain.PetType, error) {
	var row petTypeRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	t := row.toDomain()
	return &t, nil
}

// FindAll returns every pet type ordered by name.
func (s *PetTypeStore) FindAll(ctx context.Context) ([]domain.PetType, error) {
	var rows []petTypeRow
	if err := s.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.PetType, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// Save inserts a new pet type (assigning the generated ID back) or updates
// the name of an existing one.
func (s *PetTypeStore) Save(ctx context.Context, t *domain.PetType) error {
	if t.IsNew() {
		row := petTypeRow{Name: t.Name}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		t.ID = &row.ID
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&petTypeRow{}).
		Where("id = ?", *t.ID).
		Update("name", t.Name).Error
}

// Delete cascades through every pet referencing the type: each pet's visits
// first, then the pet, then the type row, all in one transaction. No
// dangling pet or visit row can remain.
func (s *PetTypeStore) Delete(ctx context.Context, t *domain.PetType) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pets []petRow
		if err := tx.Where("type_id = ?", *t.ID).Find(&pets).Error; err != nil {
			return err
		}
		for _, pet := range pets {
			if err := tx.Where("pet_id = ?", pet.ID).Delete(&visitRow{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&petRow{}, pet.ID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&petTypeRow{}, *t.ID).Error
	})
}
