package sqlstore

import (
	"context"
	"database/sql"
	"strings"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// OwnerStore implements repo.OwnerRepository with hand-written SQL.
type OwnerStore struct {
	db *DB
}

// NewOwnerStore returns an owner repository bound to db.
func NewOwnerStore(db *DB) *OwnerStore { return &OwnerStore{db: db} }

const ownerColumns = "id, first_name, last_name, address, city, telephone"

// FindByID returns the owner with its pets and their visits attached, or
// repo.ErrNotFound. An owner without pets comes back with empty children.
func (s *OwnerStore) FindByID(ctx context.Context, id int) (*domain.Owner, error) {
	row := s.db.sql.QueryRowContext(ctx,
		s.db.rebind("SELECT "+ownerColumns+" FROM owners WHERE id = ?"), id)
	owner, err := scanOwner(row)
	if err != nil {
		return nil, notFound(err)
	}
	if err := s.loadPetsAndVisits(ctx, []*domain.Owner{owner}); err != nil {
		return nil, err
	}
	return owner, nil
}

// FindAll returns every owner, each fully hydrated.
func (s *OwnerStore) FindAll(ctx context.Context) ([]domain.Owner, error) {
	return s.queryOwners(ctx, "SELECT "+ownerColumns+" FROM owners")
}

// FindByLastNamePrefix returns owners whose last name starts with prefix,
// each fully hydrated. Case sensitivity follows the database collation.
func (s *OwnerStore) FindByLastNamePrefix(ctx context.Context, prefix string) ([]domain.Owner, error) {
	return s.queryOwners(ctx,
		"SELECT "+ownerColumns+" FROM owners WHERE last_name LIKE ?", prefix+"%")
}

func (s *OwnerStore) queryOwners(ctx context.Context, query string, args ...any) ([]domain.Owner, error) {
	rows, err := s.db.sql.QueryContext(ctx, s.db.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := make([]domain.Owner, 0)
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, err
		}
		owners = append(owners, *owner)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	refs := make([]*domain.Owner, len(owners))
	for i := range owners {
		refs[i] = &owners[i]
	}
	if err := s.loadPetsAndVisits(ctx, refs); err != nil {
		return nil, err
	}
	return owners, nil
}

// Save inserts a new owner, assigning the generated key back onto the
// entity, or updates all mutable columns of an existing one.
func (s *OwnerStore) Save(ctx context.Context, o *domain.Owner) error {
	if o.IsNew() {
		id, err := s.db.insertID(ctx, s.db.sql,
			"INSERT INTO owners (first_name, last_name, address, city, telephone) VALUES (?, ?, ?, ?, ?)",
			o.FirstName, o.LastName, o.Address, o.City, o.Telephone)
		if err != nil {
			return err
		}
		o.ID = &id
		return nil
	}
	_, err := s.db.sql.ExecContext(ctx,
		s.db.rebind("UPDATE owners SET first_name = ?, last_name = ?, address = ?, city = ?, telephone = ? WHERE id = ?"),
		o.FirstName, o.LastName, o.Address, o.City, o.Telephone, *o.ID)
	return err
}

// Delete removes each pet's visits, then the pet, then the owner row, all
// in one transaction. The pet set is read inside the transaction, never
// taken from the entity, so the cascade holds for non-hydrated owners too.
// A failure partway rolls back every prior delete.
func (s *OwnerStore) Delete(ctx context.Context, o *domain.Owner) error {
	return s.db.inTx(ctx, func(tx *sql.Tx) error {
		petIDs, err := petIDsBy(ctx, s.db, tx, "owner_id", *o.ID)
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
			s.db.rebind("DELETE FROM owners WHERE id = ?"), *o.ID)
		return err
	})
}

// loadPetsAndVisits hydrates the given owners with a single
// pets-left-join-visits query plus one pet-type lookup, matching children to
// parents in memory by foreign key.
func (s *OwnerStore) loadPetsAndVisits(ctx context.Context, owners []*domain.Owner) error {
	if len(owners) == 0 {
		return nil
	}
	byID := make(map[int]*domain.Owner, len(owners))
	placeholders := make([]string, len(owners))
	args := make([]any, len(owners))
	for i, o := range owners {
		byID[*o.ID] = o
		placeholders[i] = "?"
		args[i] = *o.ID
	}

	types, err := petTypesByID(ctx, s.db, s.db.sql)
	if err != nil {
		return err
	}
	pets, err := extractPetsWithVisits(ctx, s.db, s.db.sql,
		"WHERE pets.owner_id IN ("+strings.Join(placeholders, ", ")+")", args...)
	if err != nil {
		return err
	}
	for _, pet := range pets {
		pet.Type = types[*pet.Type.ID]
		if owner, ok := byID[*pet.OwnerID]; ok {
			owner.AddPet(*pet)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOwner(r rowScanner) (*domain.Owner, error) {
	var o domain.Owner
	var id int
	if err := r.Scan(&id, &o.FirstName, &o.LastName, &o.Address, &o.City, &o.Telephone); err != nil {
		return nil, err
	}
	o.ID = &id
	return &o, nil
}

// extractPetsWithVisits runs the pets LEFT OUTER JOIN visits query with the
// given filter and groups the result rows into pets carrying their visits.
// Each pet's Type holds only the type ID; callers resolve the full type
// against the types lookup.
func extractPetsWithVisits(ctx context.Context, d *DB, e execer, filter string, args ...any) ([]*domain.Pet, error) {
	query := `SELECT pets.id, pets.name, pets.birth_date, pets.type_id, pets.owner_id,
		visits.id, visits.visit_date, visits.description
		FROM pets LEFT OUTER JOIN visits ON pets.id = visits.pet_id ` +
		filter + " ORDER BY pets.id"

	rows, err := e.QueryContext(ctx, d.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		pets []*domain.Pet
		last *domain.Pet
	)
	for rows.Next() {
		var (
			petID, typeID, ownerID int
			name                   string
			birth                  sql.NullTime
			visitID                sql.NullInt64
			visitDate              sql.NullTime
			visitDesc              sql.NullString
		)
		if err := rows.Scan(&petID, &name, &birth, &typeID, &ownerID,
			&visitID, &visitDate, &visitDesc); err != nil {
			return nil, err
		}

		if last == nil || *last.ID != petID {
			id := petID
			oid := ownerID
			tid := typeID
			pet := &domain.Pet{
				ID:      &id,
				Name:    name,
				OwnerID: &oid,
				Type:    &domain.PetType{ID: &tid},
			}
			if birth.Valid {
				pet.BirthDate = &domain.Date{Time: birth.Time}
			}
			pets = append(pets, pet)
			last = pet
		}

		if visitID.Valid {
			vid := int(visitID.Int64)
			visit := domain.Visit{
				ID:          &vid,
				Description: visitDesc.String,
			}
			if visitDate.Valid {
				visit.Date = domain.Date{Time: visitDate.Time}
			}
			last.AddVisit(visit)
		}
	}
	return pets, rows.Err()
}

// petTypesByID fetches all pet types once for in-memory matching.
func petTypesByID(ctx context.Context, d *DB, e execer) (map[int]*domain.PetType, error) {
	rows, err := e.QueryContext(ctx, "SELECT id, name FROM types ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[int]*domain.PetType)
	for rows.Next() {
		var id int
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, err
		}
		tid := id
		out[id] = &domain.PetType{ID: &tid, Name: name}
	}
	return out, rows.Err()
}
