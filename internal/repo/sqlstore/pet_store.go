package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// PetStore implements repo.PetRepository with hand-written SQL.
type PetStore struct {
	db *DB
}

// NewPetStore returns a pet repository bound to db.
func NewPetStore(db *DB) *PetStore { return &PetStore{db: db} }

// FindByID returns the pet with its visits attached and its type resolved,
// or repo.ErrNotFound.
func (s *PetStore) FindByID(ctx context.Context, id int) (*domain.Pet, error) {
	pets, err := extractPetsWithVisits(ctx, s.db, s.db.sql, "WHERE pets.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(pets) == 0 {
		return nil, notFound(sql.ErrNoRows)
	}
	types, err := petTypesByID(ctx, s.db, s.db.sql)
	if err != nil {
		return nil, err
	}
	pet := pets[0]
	pet.Type = types[*pet.Type.ID]
	return pet, nil
}

// FindAll returns every pet with visits and types attached.
func (s *PetStore) FindAll(ctx context.Context) ([]domain.Pet, error) {
	pets, err := extractPetsWithVisits(ctx, s.db, s.db.sql, "")
	if err != nil {
		return nil, err
	}
	types, err := petTypesByID(ctx, s.db, s.db.sql)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Pet, 0, len(pets))
	for _, pet := range pets {
		pet.Type = types[*pet.Type.ID]
		out = append(out, *pet)
	}
	return out, nil
}

// Save inserts a new pet, assigning the generated key back onto the entity,
// or updates all mutable columns of an existing one.
func (s *PetStore) Save(ctx context.Context, p *domain.Pet) error {
	var birth *time.Time
	if p.BirthDate != nil && !p.BirthDate.IsZero() {
		t := p.BirthDate.Time
		birth = &t
	}
	if p.IsNew() {
		id, err := s.db.insertID(ctx, s.db.sql,
			"INSERT INTO pets (name, birth_date, type_id, owner_id) VALUES (?, ?, ?, ?)",
			p.Name, birth, *p.Type.ID, *p.OwnerID)
		if err != nil {
			return err
		}
		p.ID = &id
		return nil
	}
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("UPDATE pets SET name = ?, birth_date = ?, type_id = ?, owner_id = ? WHERE id = ?"),
		p.Name, birth, *p.Type.ID, *p.OwnerID, *p.ID)
	return err
}

// Delete removes the pet's visits, then the pet row, in one transaction.
func (s *PetStore) Delete(ctx context.Context, p *domain.Pet) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM visits WHERE pet_id = ?"), *p.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM pets WHERE id = ?"), *p.ID)
		return err
	})
}
