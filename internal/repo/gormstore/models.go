package gormstore

import (
	"time"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// Row types mirror the relational tables one to one. Domain entities are
// mapped by hand so aggregate assembly stays explicit and identical to the
// sqlstore strategy.

type ownerRow struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(30);not null"`
	LastName  string `gorm:"type:varchar(30);not null;index"`
	Address   string `gorm:"type:varchar(255);not null"`
	City      string `gorm:"type:varchar(80);not null"`
	Telephone string `gorm:"type:varchar(20);not null"`
}

func (ownerRow) TableName() string { return "owners" }

type petRow struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(30);not null"`
	BirthDate *time.Time
	TypeID    int `gorm:"not null;index"`
	OwnerID   int `gorm:"not null;index"`
}

func (petRow) TableName() string { return "pets" }

type visitRow struct {
	ID          int `gorm:"primaryKey;autoIncrement"`
	PetID       int `gorm:"not null;index"`
	VisitDate   time.Time
	Description string `gorm:"type:varchar(255);not null"`
}

func (visitRow) TableName() string { return "visits" }

type vetRow struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	FirstName string `gorm:"type:varchar(30);not null"`
	LastName  string `gorm:"type:varchar(30);not null;index"`
}

func (vetRow) TableName() string { return "vets" }

type specialtyRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(80);not null"`
}

func (specialtyRow) TableName() string { return "specialties" }

type petTypeRow struct {
	ID   int    `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"type:varchar(80);not null"`
}

func (petTypeRow) TableName() string { return "types" }

type vetSpecialtyRow struct {
	VetID       int `gorm:"primaryKey;autoIncrement:false"`
	SpecialtyID int `gorm:"primaryKey;autoIncrement:false"`
}

func (vetSpecialtyRow) TableName() string { return "vet_specialties" }

type userRow struct {
	Username string `gorm:"primaryKey;type:varchar(20)"`
	Password string `gorm:"type:varchar(60);not null"`
	Enabled  bool   `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

type roleRow struct {
	Username string `gorm:"primaryKey;type:varchar(20)"`
	Role     string `gorm:"primaryKey;type:varchar(20);column:role"`
}

func (roleRow) TableName() string { return "roles" }

func (r ownerRow) toDomain() domain.Owner {
	id := r.ID
	return domain.Owner{
		Person:    domain.Person{ID: &id, FirstName: r.FirstName, LastName: r.LastName},
		Address:   r.Address,
		City:      r.City,
		Telephone: r.Telephone,
	}
}

func (r petRow) toDomain(t *domain.PetType) domain.Pet {
	id := r.ID
	ownerID := r.OwnerID
	p := domain.Pet{
		ID:      &id,
		Name:    r.Name,
		Type:    t,
		OwnerID: &ownerID,
	}
	if r.BirthDate != nil {
		p.BirthDate = &domain.Date{Time: *r.BirthDate}
	}
	return p
}

func (r visitRow) toDomain() domain.Visit {
	id := r.ID
	petID := r.PetID
	return domain.Visit{
		ID:          &id,
		Date:        domain.Date{Time: r.VisitDate},
		Description: r.Description,
		PetID:       &petID,
	}
}

func (r vetRow) toDomain() domain.Vet {
	id := r.ID
	return domain.Vet{
		Person: domain.Person{ID: &id, FirstName: r.FirstName, LastName: r.LastName},
	}
}

func (r specialtyRow) toDomain() domain.Specialty {
	id := r.ID
	return domain.Specialty{ID: &id, Name: r.Name}
}

func (r petTypeRow) toDomain() domain.PetType {
	id := r.ID
	return domain.PetType{ID: &id, Name: r.Name}
}
