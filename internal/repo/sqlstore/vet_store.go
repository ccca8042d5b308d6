package sqlstore

import (
	"context"
	"database/sql"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// VetStore implements repo.VetRepository with hand-written SQL. Specialty
// links live in the vet_specialties join table and are replaced wholesale
// on save.
type VetStore struct {
	db *DB
}

// NewVetStore returns a vet repository bound to db.
func NewVetStore(db *DB) *VetStore { return &VetStore{db: db} }

// FindByID returns the vet with its specialties attached, or
// repo.ErrNotFound.
func (s *VetStore) FindByID(ctx context.Context, id int) (*domain.Vet, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT id, first_name, last_name FROM vets WHERE id = ?"), id)
	vet, err := scanVet(row)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.loadSpecialties(ctx, vet); err != nil {
		return nil, err
	}
	return vet, nil
}

// FindAll returns every vet ordered by last then first name, specialties
// attached.
func (s *VetStore) FindAll(ctx context.Context) ([]domain.Vet, error) {
	rows, err := s.db.sql.QueryContext(ctx,
		"SELECT id, first_name, last_name FROM vets ORDER BY last_name, first_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vets := make([]domain.Vet, 0)
	for rows.Next() {
		vet, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		vets = append(vets, *vet)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range vets {
		if err := s.loadSpecialties(ctx, &vets[i]); err != nil {
			return nil, err
		}
	}
	return vets, nil
}

// loadSpecialties fetches all specialties once plus the vet's join rows and
// attaches the matches in memory.
func (s *VetStore) loadSpecialties(ctx context.Context, vet *domain.Vet) error {
	specs, err := specialtiesByID(ctx, s.db, s.db.sql)
	if err != nil {
		return err
	}
	rows, err := s.db.sql.QueryContext(ctx,
		s.db.rebind("SELECT specialty_id FROM vet_specialties WHERE vet_id = ?"), *vet.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var specID int
		if err := rows.Scan(&specID); err != nil {
			return err
		}
		if spec, ok := specs[specID]; ok {
			vet.AddSpecialty(spec)
		}
	}
	return rows.Err()
}

// Save inserts or updates the vet row, then replaces its specialty links
// with the current set, all in one transaction.
func (s *VetStore) Save(ctx context.Context, v *domain.Vet) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		if v.IsNew() {
			id, err := s.db.insertID(ctx, tx,
				"INSERT INTO vets (first_name, last_name) VALUES (?, ?)",
				v.FirstName, v.LastName)
			if err != nil {
				return err
			}
			v.ID = &id
		} else {
			_, err := tx.ExecContext(ctx,
				s.db.rebind("UPDATE vets SET first_name = ?, last_name = ? WHERE id = ?"),
				v.FirstName, v.LastName, *v.ID)
			if err != nil {
				return err
			}
		}
		return s.replaceSpecialties(ctx, tx, v)
	})
}

// Delete removes the vet's join rows, then the vet row, in one transaction.
// Specialties themselves are never deleted here.
func (s *VetStore) Delete(ctx context.Context, v *domain.Vet) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM vet_specialties WHERE vet_id = ?"), *v.ID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx,
			s.db.rebind("DELETE FROM vets WHERE id = ?"), *v.ID)
		return err
	})
}

func (s *VetStore) replaceSpecialties(ctx context.Context, tx *sql.Tx, v *domain.Vet) error {
	if _, err := tx.ExecContext(ctx,
		s.db.rebind("DELETE FROM vet_specialties WHERE vet_id = ?"), *v.ID); err != nil {
		return err
	}
	for _, spec := range v.Specialties() {
		if spec.ID == nil {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			s.db.rebind("INSERT INTO vet_specialties (vet_id, specialty_id) VALUES (?, ?)"),
			*v.ID, *spec.ID); err != nil {
			return err
		}
	}
	return nil
}

func scanVet(r rowScanner) (*domain.Vet, error) {
	var v domain.Vet
	var id int
	if err := r.Scan(&id, &v.FirstName, &v.LastName); err != nil {
		return nil, err
	}
	v.ID = &id
	return &v, nil
}

// specialtiesByID fetches all specialties once for in-memory matching.
func specialtiesByID(ctx context.Context, d *DB, e execer) (map[int]domain.Specialty, error) {
	rows, err := e.QueryContext(ctx, "SELECT id, name FROM specialties")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]domain.Specialty)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		sid := id
		out[id] = domain.Specialty{ID: &sid, Name: name}
	}
	return out, rows.Err()
}
