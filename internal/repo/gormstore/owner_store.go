package gormstore

import (
	"context"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// OwnerStore implements repo.OwnerRepository on GORM.
type OwnerStore struct {
	db *gorm.DB
}

// NewOwnerStore returns an owner repository bound to db.
func NewOwnerStore(db *gorm.DB) *OwnerStore { return &OwnerStore{db: db} }

// FindByID returns the owner with its pets and their visits attached, or
// repo.ErrNotFound. An owner without pets is returned with empty children,
// never conflated with a missing owner.
func (s *OwnerStore) FindByID(ctx context.Context, id int) (*domain.Owner, error) {
	var row ownerRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	owner := row.toDomain()
	if err := loadPetsAndVisits(ctx, s.db, []*domain.Owner{&owner}); err != nil {
		return nil, err
	}
	return &owner, nil
}

// FindAll returns every owner, each fully hydrated.
func (s *OwnerStore) FindAll(ctx context.Context) ([]domain.Owner, error) {
	var rows []ownerRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	return s.hydrate(ctx, rows)
}

// FindByLastNamePrefix returns owners whose last name starts with prefix,
// each fully hydrated. Case sensitivity follows the database collation.
func (s *OwnerStore) FindByLastNamePrefix(ctx context.Context, prefix string) ([]domain.Owner, error) {
	var rows []ownerRow
	err := s.db.WithContext(ctx).
		Where("last_name LIKE ?", prefix+"%").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, rows)
}

func (s *OwnerStore) hydrate(ctx context.Context, rows []ownerRow) ([]domain.Owner, error) {
	owners := make([]domain.Owner, len(rows))
	refs := make([]*domain.Owner, len(rows))
	for i, r := range rows {
		owners[i] = r.toDomain()
		refs[i] = &owners[i]
	}
	if err := loadPetsAndVisits(ctx, s.db, refs); err != nil {
		return nil, err
	}
	return owners, nil
}

// Save inserts a new owner (assigning the generated ID back) or updates all
// mutable columns of an existing one.
func (s *OwnerStore) Save(ctx context.Context, o *domain.Owner) error {
	if o.IsNew() {
		row := ownerRow{
			FirstName: o.FirstName,
			LastName:  o.LastName,
			Address:   o.Address,
			City:      o.City,
			Telephone: o.Telephone,
		}
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		o.ID = &row.ID
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&ownerRow{}).
		Where("id = ?", *o.ID).
		Updates(map[string]any{
			"first_name": o.FirstName,
			"last_name":  o.LastName,
			"address":    o.Address,
			"city":       o.City,
			"telephone":  o.Telephone,
		}).Error
}

// Delete removes the owner's visits, then pets, then the owner row, all in
// one transaction. The pet set is read inside the transaction, never taken
// from the entity, so the cascade holds for non-hydrated owners too.
func (s *OwnerStore) Delete(ctx context.Context, o *domain.Owner) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pets []petRow
		if err := tx.Where("owner_id = ?", *o.ID).Find(&pets).Error; err != nil {
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
		return tx.Delete(&ownerRow{}, *o.ID).Error
	})
}

// loadPetsAndVisits fetches the pet and visit rows for the given owners in
// two batch queries plus one pet-type lookup, and attaches the children to
// their parents in memory by foreign key.
func loadPetsAndVisits(ctx context.Context, db *gorm.DB, owners []*domain.Owner) error {
	if len(owners) == 0 {
		return nil
	}
	byID := make(map[int]*domain.Owner, len(owners))
	ids := make([]int, 0, len(owners))
	for _, o := range owners {
		byID[*o.ID] = o
		ids = append(ids, *o.ID)
	}

	var pets []petRow
	if err := db.WithContext(ctx).Where("owner_id IN ?", ids).Order("id").Find(&pets).Error; err != nil {
		return err
	}
	if len(pets) == 0 {
		return nil
	}

	petIDs := make([]int, len(pets))
	for i, p := range pets {
		petIDs[i] = p.ID
	}
	var visits []visitRow
	if err := db.WithContext(ctx).Where("pet_id IN ?", petIDs).Find(&visits).Error; err != nil {
		return err
	}
	visitsByPet := make(map[int][]visitRow, len(pets))
	for _, v := range visits {
		visitsByPet[v.PetID] = append(visitsByPet[v.PetID], v)
	}

	types, err := petTypesByID(ctx, db)
	if err != nil {
		return err
	}

	for _, row := range pets {
		t := types[row.TypeID]
		pet := row.toDomain(t)
		for _, v := range visitsByPet[row.ID] {
			pet.AddVisit(v.toDomain())
		}
		if owner, ok := byID[row.OwnerID]; ok {
			owner.AddPet(pet)
		}
	}
	return nil
}

// petTypesByID fetches all pet types once for in-memory matching.
func petTypesByID(ctx context.Context, db *gorm.DB) (map[int]*domain.PetType, error) {
	var rows []petTypeRow
	if err := db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[int]*domain.PetType, len(rows))
	for _, r := range rows {
		t := r.toDomain()
		out[r.ID] = &t
	}
	return out, nil
}
