package sqlstore

import (
	"context"
	"database/sql"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// VisitStore implements repo.VisitRepository with hand-written SQL.
type VisitStore struct {
	db *DB
}

// NewVisitStore returns a visit repository bound to db.
func NewVisitStore(db *DB) *VisitStore { return &VisitStore{db: db} }

const visitColumns = "id, pet_id, visit_date, description"

// FindByID returns the visit or repo.ErrNotFound.
func (s *VisitStore) FindByID(ctx context.Context, id int) (*domain.Visit, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT "+visitColumns+" FROM visits WHERE id = ?"), id)
	v, err := scanVisit(row)
	if err != nil {
		return nil, notFound(err)
	}
	return v, nil
}

// FindAll returns every visit.
func (s *VisitStore) FindAll(ctx context.Context) ([]domain.Visit, error) {
	return s.queryVisits(ctx, "SELECT "+visitColumns+" FROM visits ORDER BY id")
}

// FindByPetID returns the pet's visits, most recent first.
func (s *VisitStore) FindByPetID(ctx context.Context, petID int) ([]domain.Visit, error) {
	return s.queryVisits(ctx,
		"SELECT "+visitColumns+" FROM visits WHERE pet_id = ? ORDER BY visit_date DESC", petID)
}

func (s *VisitStore) queryVisits(ctx context.Context, query string, args ...any) ([]domain.Visit, error) {
	rows, err := s.db.sql.QueryContext(ctx, s.db.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Visit, 0)
	for rows.Next() {
		v, err := scanVisit(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

// Save inserts a new visit, assigning the generated key back onto the
// entity, or updates all mutable columns of an existing one.
func (s *VisitStore) Save(ctx context.Context, v *domain.Visit) error {
	if v.IsNew() {
		id, err := s.db.insertID(ctx, s.db.sql,
			"INSERT INTO visits (pet_id, visit_date, description) VALUES (?, ?, ?)",
			*v.PetID, v.Date.Time, v.Description)
		if err != nil {
			return err
		}
		v.ID = &id
		return nil
	}
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("UPDATE visits SET pet_id = ?, visit_date = ?, description = ? WHERE id = ?"),
		*v.PetID, v.Date.Time, v.Description, *v.ID)
	return err
}

// Delete removes the visit row.
func (s *VisitStore) Delete(ctx context.Context, v *domain.Visit) error {
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("DELETE FROM visits WHERE id = ?"), *v.ID)
	return err
}

func scanVisit(r rowScanner) (*domain.Visit, error) {
	var (
		v     domain.Visit
		id    int
		petID int
		date  sql.NullTime
	)
	if err := r.Scan(&id, &petID, &date, &v.Description); err != nil {
		return nil, err
	}
	v.ID = &id
	v.PetID = &petID
	if date.Valid {
		v.Date = domain.Date{Time: date.Time}
	}
	return &v, nil
}
