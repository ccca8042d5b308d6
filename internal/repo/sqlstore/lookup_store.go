package sqlstore

import (
	"context"
	"database/sql"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// SpecialtyStore implements repo.SpecialtyRepository with hand-written SQL.
type SpecialtyStore struct {
	db *DB
}

// NewSpecialtyStore returns a specialty repository bound to db.
func NewSpecialtyStore(db *DB) *SpecialtyStore { return &SpecialtyStore{db: db} }

// FindByID returns the specialty or repo.ErrNotFound.
func (s *SpecialtyStore) FindByID(ctx context.Context, id int) (*domain.Specialty, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT id, name FROM specialties WHERE id = ?"), id)
	var spec domain.Specialty
	var sid int
	if err := row.Scan(&sid, &spec.Name); err != nil {
		return nil, notFound(err)
	}
	spec.ID = &sid
	return &spec, nil
}

// FindAll returns every specialty ordered by name.
func (s *SpecialtyStore) FindAll(ctx context.Context) ([]domain.Specialty, error) {
	rows, err := s.db.sql.QueryContext(ctx, "SELECT id, name FROM specialties ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Specialty, 0)
	for rows.Next() {
		var spec domain.Specialty
		var id int
		if err := rows.Scan(&id, &spec.Name); err != nil {
			return nil, err
		}
		spec.ID = &id
		out = append(out, spec)
	}
	return out, rows.Err()
}

// Save inserts a new specialty, assigning the generated key back onto the
// entity, or updates the name of an existing one.
func (s *SpecialtyStore) Save(ctx context.Context, spec *domain.Specialty) error {
	if spec.IsNew() {
		id, err := s.db.insertID(ctx, s.db.sql,
			"INSERT INTO specialties (name) VALUES (?)", spec.Name)
		if err != nil {
			return err
		}
		spec.ID = &id
		return nil
	}
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("UPDATE specialties SET name = ? WHERE id = ?"), spec.Name, *spec.ID)
	return err
}

// Delete removes the vet_specialties rows referencing the specialty, then
// the specialty row, in one transaction. Vets are never deleted here.
func (s *SpecialtyStore) Delete(ctx context.Context, spec *domain.Specialty) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM vet_specialties WHERE specialty_id = ?"), *spec.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM specialties WHERE id = ?"), *spec.ID)
		return err
	})
}

// PetTypeStore implements repo.PetTypeRepository with hand-written SQL.
type PetTypeStore struct {
	db *DB
}

// NewPetTypeStore returns a pet-type repository bound to db.
func NewPetTypeStore(db *DB) *PetTypeStore { return &PetTypeStore{db: db} }

// FindByID returns the pet type or repo.ErrNotFound.
func (s *PetTypeStore) FindByID(ctx context.Context, id int) (*domain.PetType, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT id, name FROM types WHERE id = ?"), id)
	var t domain.PetType
	var tid int
	if err := row.Scan(&tid, &t.Name); err != nil {
		return nil, notFound(err)
	}
	t.ID = &tid
	return &t, nil
}

// FindAll returns every pet type ordered by name.
func (s *PetTypeStore) FindAll(ctx context.Context) ([]domain.PetType, error) {
	rows, err := s.db.sql.QueryContext(ctx, "SELECT id, name FROM types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.PetType, 0)
	for rows.Next() {
		var t domain.PetType
		var id int
		if err := rows.Scan(&id, &t.Name); err != nil {
			return nil, err
		}
		t.ID = &id
		out = append(out, t)
	}
	return out, rows.Err()
}

// Save inserts a new pet type, assigning the generated key back onto the
// entity, or updates the name of an existing one.
func (s *PetTypeStore) Save(ctx context.Context, t *domain.PetType) error {
	if t.IsNew() {
		id, err := s.db.insertID(ctx, s.db.sql,
			"INSERT INTO types (name) VALUES (?)", t.Name)
		if err != nil {
			return err
		}
		t.ID = &id
		return nil
	}
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("UPDATE types SET name = ? WHERE id = ?"), t.Name, *t.ID)
	return err
}

// Delete cascades through every pet referencing the type: each pet's visits
// first, then the pet, then the type row, all in one transaction. No
// dangling pet or visit row can remain.
func (s *PetTypeStore) Delete(ctx context.Context, t *domain.PetType) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		petIDs, err := petIDsBy(ctx, s.db, tx, "type_id", *t.ID)
		if err != nil {
			return err
		}
		for _, petID := range petIDs {
			if _, err := tx.ExecContext(ctx,
				s.db.rebind("DELETE FROM visits WHERE pet_id = ?"), petID); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				s.db.rebind("DELETE FROM pets WHERE id = ?"), petID); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM types WHERE id = ?"), *t.ID)
		return err
	})
}

// petIDsBy returns the ids of every pet whose column (a trusted identifier,
// "owner_id" or "type_id") equals id. Run against the cascade transaction so
// the delete covers exactly the rows it will touch.
func petIDsBy(ctx context.Context, d *DB, e execer, column string, id int) ([]int, error) {
	rows, err := e.QueryContext(ctx,
		d.rebind("SELECT id FROM pets WHERE "+column+" = ?"), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
