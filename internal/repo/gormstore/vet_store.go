package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// VetStore implements repo.VetRepository on GORM. Specialty links live in
// the vet_specialties join table and are replaced wholesale on save.
type VetStore struct {
	db *gorm.DB
}

// NewVetStore returns a vet repository bound to db.
func NewVetStore(db *gorm.DB) *VetStore { return &VetStore{db: db} }

// FindByID returns the vet with its specialties attached, or
// repo.ErrNotFound.
func (s *VetStore) FindByID(ctx context.Context, id int) (*domain.Vet, error) {
	var row vetRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	vet := row.toDomain()
	if err := s.loadSpecialties(ctx, []*domain.Vet{&vet}); err != nil {
		return nil, err
	}
	return &vet, nil
}

// FindAll returns every vet ordered by last then first name, specialties
// attached.
func (s *VetStore) FindAll(ctx context.Context) ([]domain.Vet, error) {
	var rows []vetRow
	err := s.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	vets := make([]domain.Vet, len(rows))
	refs := make([]*domain.Vet, len(rows))
	for i, r := range rows {
		vets[i] = r.toDomain()
		refs[i] = &vets[i]
	}
	if err := s.loadSpecialties(ctx, refs); err != nil {
		return nil, err
	}
	return vets, nil
}

// loadSpecialties fetches all specialties once plus the join rows for the
// given vets, and attaches specialties to their vets in memory.
func (s *VetStore) loadSpecialties(ctx context.Context, vets []*domain.Vet) error {
	if len(vets) == 0 {
		return nil
	}
	byID := make(map[int]*domain.Vet, len(vets))
	ids := make([]int, 0, len(vets))
	for _, v := range vets {
		byID[*v.ID] = v
		ids = append(ids, *v.ID)
	}

	var specs []specialtyRow
	if err := s.db.WithContext(ctx).Find(&specs).Error; err != nil {
		return err
	}
	specByID := make(map[int]domain.Specialty, len(specs))
	for _, r := range specs {
		specByID[r.ID] = r.toDomain()
	}

	var links []vetSpecialtyRow
	if err := s.db.WithContext(ctx).Where("vet_id IN ?", ids).Find(&links).Error; err != nil {
		return err
	}
	for _, l := range links {
		if vet, ok := byID[l.VetID]; ok {
			if spec, ok := specByID[l.SpecialtyID]; ok {
				vet.AddSpecialty(spec)
			}
		}
	}
	return nil
}

// Save inserts or updates the vet row, then replaces its specialty links
// with the current set, all in one transaction.
func (s *VetStore) Save(ctx context.Context, v *domain.Vet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if v.IsNew() {
			row := vetRow{FirstName: v.FirstName, LastName: v.LastName}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			v.ID = &row.ID
		} else {
			err := tx.Model(&vetRow{}).
				Where("id = ?", *v.ID).
				Updates(map[string]any{
					"first_name": v.FirstName,
					"last_name":  v.LastName,
				}).Error
			if err != nil {
				return err
			}
		}
		return replaceVetSpecialties(tx, v)
	})
}

// Delete removes the vet's join rows, then the vet row, in one transaction.
// Specialties themselves are never deleted here.
func (s *VetStore) Delete(ctx context.Context, v *domain.Vet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vet_id = ?", *v.ID).Delete(&vetSpecialtyRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&vetRow{}, *v.ID).Error
	})
}

func replaceVetSpecialties(tx *gorm.DB, v *domain.Vet) error {
	if err := tx.Where("vet_id = ?", *v.ID).Delete(&vetSpecialtyRow{}).Error; err != nil {
		return err
	}
	for _, spec := range v.Specialties() {
		if spec.ID == nil {
			continue
		}
		link := vetSpecialtyRow{VetID: *v.ID, SpecialtyID: *spec.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}
