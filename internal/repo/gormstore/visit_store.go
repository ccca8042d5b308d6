package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// VisitStore implements repo.VisitRepository on GORM.
type VisitStore struct {
	db *gorm.DB
}

// NewVisitStore returns a visit repository bound to db.
func NewVisitStore(db *gorm.DB) *VisitStore { return &VisitStore{db: db} }

// FindByID returns the visit or repo.ErrNotFound.
func (s *VisitStore) FindByID(ctx context.Context, id int) (*domain.Visit, error) {
	var row visitRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	v := row.toDomain()
	return &v, nil
}

// FindAll returns every visit.
func (s *VisitStore) FindAll(ctx context.Context) ([]domain.Visit, error) {
	var rows []visitRow
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Visit, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// FindByPetID returns the pet's visits, most recent first.
func (s *VisitStore) FindByPetID(ctx context.Context, petID int) ([]domain.Visit, error) {
	var rows []visitRow
	err := s.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		Order("visit_date desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.Visit, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// Save inserts a new visit (assigning the generated ID back) or updates all
// mutable columns of an existing one.
func (s *VisitStore) Save(ctx context.Context, v *domain.Visit) error {
	if v.IsNew() {
		row := visitRow{
			PetID:       *v.PetID,
			VisitDate:   v.Date.Time,
			Description: v.Description,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		v.ID = &row.ID
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&visitRow{}).
		Where("id = ?", *v.ID).
		Updates(map[string]any{
			"pet_id":      *v.PetID,
			"visit_date":  v.Date.Time,
			"description": v.Description,
		}).Error
}

// Delete removes the visit row.
func (s *VisitStore) Delete(ctx context.Context, v *domain.Visit) error {
	return s.db.WithContext(ctx).Delete(&visitRow{}, *v.ID).Error
}
