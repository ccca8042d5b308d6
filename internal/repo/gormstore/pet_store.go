package gormstore

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// PetStore implements repo.PetRepository on GORM.
type PetStore struct {
	db *gorm.DB
}

// NewPetStore returns a pet repository bound to db.
func NewPetStore(db *gorm.DB) *PetStore { return &PetStore{db: db} }

// FindByID returns the pet with its visits attached and its type resolved,
// or repo.ErrNotFound.
func (s *PetStore) FindByID(ctx context.Context, id int) (*domain.Pet, error) {
	var row petRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	types, err := petTypesByID(ctx, s.db)
	if err != nil {
		return nil, err
	}
	pet := row.toDomain(types[row.TypeID])

	var visits []visitRow
	if err := s.db.WithContext(ctx).Where("pet_id = ?", row.ID).Find(&visits).Error; err != nil {
		return nil, err
	}
	for _, v := range visits {
		pet.AddVisit(v.toDomain())
	}
	return &pet, nil
}

// FindAll returns every pet with visits and types attached.
func (s *PetStore) FindAll(ctx context.Context) ([]domain.Pet, error) {
	var rows []petRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	types, err := petTypesByID(ctx, s.db)
	if err != nil {
		return nil, err
	}
	var visits []visitRow
	if err := s.db.WithContext(ctx).Find(&visits).Error; err != nil {
		return nil, err
	}
	visitsByPet := make(map[int][]visitRow)
	for _, v := range visits {
		visitsByPet[v.PetID] = append(visitsByPet[v.PetID], v)
	}

	out := make([]domain.Pet, 0, len(rows))
	for _, row := range rows {
		pet := row.toDomain(types[row.TypeID])
		for _, v := range visitsByPet[row.ID] {
			pet.AddVisit(v.toDomain())
		}
		out = append(out, pet)
	}
	return out, nil
}

// Save inserts a new pet (assigning the generated ID back) or updates all
// mutable columns of an existing one. The type and owner references must be
// persisted entities.
func (s *PetStore) Save(ctx context.Context, p *domain.Pet) error {
	var birth *time.Time
	if p.BirthDate != nil && !p.BirthDate.IsZero() {
		t := p.BirthDate.Time
		birth = &t
	}
	if p.IsNew() {
		row := petRow{
			Name:      p.Name,
			BirthDate: birth,
			TypeID:    *p.Type.ID,
			OwnerID:   *p.OwnerID,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		p.ID = &row.ID
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&petRow{}).
		Where("id = ?", *p.ID).
		Updates(map[string]any{
			"name":       p.Name,
			"birth_date": birth,
			"type_id":    *p.Type.ID,
			"owner_id":   *p.OwnerID,
		}).Error
}

// Delete removes the pet's visits, then the pet row, in one transaction.
func (s *PetStore) Delete(ctx context.Context, p *domain.Pet) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("pet_id = ?", *p.ID).Delete(&visitRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&petRow{}, *p.ID).Error
	})
}
