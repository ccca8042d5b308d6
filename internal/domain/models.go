// Package domain defines the clinic's entity model: owners, pets, visits,
// vets, specialties, pet types, and the user/role pair used for API access
// control. Entities are plain records with nullable surrogate identifiers
// (a nil ID means "not yet persisted") and are shared by both persistence
// strategies.
//
// Child collections (an owner's pets, a pet's visits, a vet's specialties)
// are owned by the parent and exposed through accessors that return sorted
// copies. Children carry the parent's identifier instead of a back-reference
// to the parent object, so aggregates serialize without cycles.
package domain

import (
	"sort"
	"strings"
)

// Person is the shared name shape embedded by Owner and Vet.
type Person struct {
	ID        *int   `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// IsNew reports whether the record has not been persisted yet.
func (p *Person) IsNew() bool { return p.ID == nil }

// Owner is a pet owner. It owns its pets: deleting an owner removes the
// pets (and their visits) with it.
type Owner struct {
	Person
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`

	pets []Pet
}

// AddPet attaches a pet to the owner, stamping the owner's ID onto the pet
// when the owner is already persisted.
func (o *Owner) AddPet(p Pet) {
	if o.ID != nil {
		p.OwnerID = o.ID
	}
	o.pets = append(o.pets, p)
}

// Pets returns the owner's pets sorted by name ascending, case-insensitively.
// The returned slice is a copy; mutating it does not affect the owner.
func (o *Owner) Pets() []Pet {
	out := make([]Pet, len(o.pets))
	copy(out, o.pets)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// GetPet returns the owner's pet with the given name (case-insensitive),
// or nil if none matches. When ignoreNew is true, pets that have not been
// persisted yet are skipped.
func (o *Owner) GetPet(name string, ignoreNew bool) *Pet {
	name = strings.ToLower(name)
	for i := range o.pets {
		p := &o.pets[i]
		if ignoreNew && p.ID == nil {
			continue
		}
		if strings.ToLower(p.Name) == name {
			return p
		}
	}
	return nil
}

// MarshalJSON serializes the owner with its pets sorted by name.
func (o Owner) MarshalJSON() ([]byte, error) {
	return marshalJSON(ownerJSON{
		ID:        o.ID,
		FirstName: o.FirstName,
		LastName:  o.LastName,
		Address:   o.Address,
		City:      o.City,
		Telephone: o.Telephone,
		Pets:      o.Pets(),
	})
}

// UnmarshalJSON reads an owner, attaching any pets present in the payload.
func (o *Owner) UnmarshalJSON(data []byte) error {
	var raw ownerJSON
	if err := unmarshalJSON(data, &raw); err != nil {
		return err
	}
	o.ID = raw.ID
	o.FirstName = raw.FirstName
	o.LastName = raw.LastName
	o.Address = raw.Address
	o.City = raw.City
	o.Telephone = raw.Telephone
	o.pets = nil
	for _, p := range raw.Pets {
		o.AddPet(p)
	}
	return nil
}

type ownerJSON struct {
	ID        *int   `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Telephone string `json:"telephone"`
	Pets      []Pet  `json:"pets"`
}

// Pet belongs to exactly one owner and has exactly one type. It owns its
// visits.
type Pet struct {
	ID        *int     `json:"id,omitempty"`
	Name      string   `json:"name"`
	BirthDate *Date    `json:"birthDate,omitempty"`
	Type      *PetType `json:"type,omitempty"`
	OwnerID   *int     `json:"ownerId,omitempty"`

	visits []Visit
}

// IsNew reports whether the record has not been persisted yet.
func (p *Pet) IsNew() bool { return p.ID == nil }

// AddVisit attaches a visit to the pet, stamping the pet's ID onto the visit
// when the pet is already persisted.
func (p *Pet) AddVisit(v Visit) {
	if p.ID != nil {
		v.PetID = p.ID
	}
	p.visits = append(p.visits, v)
}

// Visits returns the pet's visits sorted by date descending (most recent
// first). The returned slice is a copy.
func (p *Pet) Visits() []Visit {
	out := make([]Visit, len(p.visits))
	copy(out, p.visits)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// MarshalJSON serializes the pet with its visits sorted by date descending.
func (p Pet) MarshalJSON() ([]byte, error) {
	return marshalJSON(petJSON{
		ID:        p.ID,
		Name:      p.Name,
		BirthDate: p.BirthDate,
		Type:      p.Type,
		OwnerID:   p.OwnerID,
		Visits:    p.Visits(),
	})
}

// UnmarshalJSON reads a pet, attaching any visits present in the payload.
func (p *Pet) UnmarshalJSON(data []byte) error {
	var raw petJSON
	if err := unmarshalJSON(data, &raw); err != nil {
		return err
	}
	p.ID = raw.ID
	p.Name = raw.Name
	p.BirthDate = raw.BirthDate
	p.Type = raw.Type
	p.OwnerID = raw.OwnerID
	p.visits = nil
	for _, v := range raw.Visits {
		p.AddVisit(v)
	}
	return nil
}

type petJSON struct {
	ID        *int     `json:"id,omitempty"`
	Name      string   `json:"name"`
	BirthDate *Date    `json:"birthDate,omitempty"`
	Type      *PetType `json:"type,omitempty"`
	OwnerID   *int     `json:"ownerId,omitempty"`
	Visits    []Visit  `json:"visits"`
}

// Visit is a single clinic visit for a pet. A visit without a pet reference
// is invalid and rejected at the boundary.
type Visit struct {
	ID          *int   `json:"id,omitempty"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	PetID       *int   `json:"petId,omitempty"`
}

// IsNew reports whether the record has not been persisted yet.
func (v *Visit) IsNew() bool { return v.ID == nil }

// Vet is a veterinarian with zero or more specialties. The specialty link is
// non-owning: deleting a vet removes join rows only, never the specialties.
type Vet struct {
	Person

	specialties []Specialty
}

// AddSpecialty attaches a specialty to the vet.
func (v *Vet) AddSpecialty(s Specialty) {
	v.specialties = append(v.specialties, s)
}

// SetSpecialties replaces the vet's specialty set with a copy of specs.
func (v *Vet) SetSpecialties(specs []Specialty) {
	v.specialties = append([]Specialty(nil), specs...)
}

// Specialties returns the vet's specialties sorted by name ascending.
// The returned slice is a copy.
func (v *Vet) Specialties() []Specialty {
	out := make([]Specialty, len(v.specialties))
	copy(out, v.specialties)
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// MarshalJSON serializes the vet with its specialties sorted by name.
func (v Vet) MarshalJSON() ([]byte, error) {
	return marshalJSON(vetJSON{
		ID:          v.ID,
		FirstName:   v.FirstName,
		LastName:    v.LastName,
		Specialties: v.Specialties(),
	})
}

// UnmarshalJSON reads a vet, attaching any specialties in the payload.
func (v *Vet) UnmarshalJSON(data []byte) error {
	var raw vetJSON
	if err := unmarshalJSON(data, &raw); err != nil {
		return err
	}
	v.ID = raw.ID
	v.FirstName = raw.FirstName
	v.LastName = raw.LastName
	v.specialties = nil
	for _, s := range raw.Specialties {
		v.AddSpecialty(s)
	}
	return nil
}

type vetJSON struct {
	ID          *int        `json:"id,omitempty"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Specialties []Specialty `json:"specialties"`
}

// Specialty is a name-keyed lookup entity referenced by vets.
type Specialty struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name"`
}

// IsNew reports whether the record has not been persisted yet.
func (s *Specialty) IsNew() bool { return s.ID == nil }

// PetType is a name-keyed lookup entity referenced by pets. Deleting a type
// cascades through the pets (and their visits) that reference it.
type PetType struct {
	ID   *int   `json:"id,omitempty"`
	Name string `json:"name"`
}

// IsNew reports whether the record has not been persisted yet.
func (t *PetType) IsNew() bool { return t.ID == nil }

// User is an API account keyed by username. Saving a user replaces its role
// set wholesale.
type User struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Enabled  bool   `json:"enabled"`
	Roles    []Role `json:"roles"`
}

// HasRole reports whether the user carries the given role name.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Role names a capability granted to one user. Role names are persisted with
// the "ROLE_" prefix; the user service normalizes names on save.
type Role struct {
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
}
