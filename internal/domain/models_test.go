package domain

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func intp(i int) *int { return &i }

func TestOwnerPets_SortedCaseInsensitive(t *testing.T) {
	o := Owner{}
	o.AddPet(Pet{Name: "rex"})
	o.AddPet(Pet{Name: "Basil"})
	o.AddPet(Pet{Name: "apollo"})

	pets := o.Pets()
	if len(pets) != 3 {
		t.Fatalf("expected 3 pets, got %d", len(pets))
	}
	want := []string{"apollo", "Basil", "rex"}
	for i, p := range pets {
		if p.Name != want[i] {
			t.Fatalf("pets out of order: got %q at %d, want %q", p.Name, i, want[i])
		}
	}
}

func TestOwnerPets_ReturnsCopy(t *testing.T) {
	o := Owner{}
	o.AddPet(Pet{Name: "Rex"})

	view := o.Pets()
	view[0].Name = "Mutated"

	if got := o.Pets()[0].Name; got != "Rex" {
		t.Fatalf("mutating the view leaked into the owner: %q", got)
	}
}

func TestOwnerAddPet_StampsOwnerID(t *testing.T) {
	o := Owner{Person: Person{ID: intp(7)}}
	o.AddPet(Pet{Name: "Rex"})

	p := o.Pets()[0]
	if p.OwnerID == nil || *p.OwnerID != 7 {
		t.Fatalf("expected ownerId 7 on pet, got %v", p.OwnerID)
	}
}

func TestOwnerAddPet_NewOwnerLeavesOwnerIDNil(t *testing.T) {
	o := Owner{}
	o.AddPet(Pet{Name: "Rex"})
	if p := o.Pets()[0]; p.OwnerID != nil {
		t.Fatalf("expected nil ownerId for unpersisted owner, got %d", *p.OwnerID)
	}
}

func TestOwnerGetPet(t *testing.T) {
	o := Owner{}
	o.AddPet(Pet{ID: intp(1), Name: "Rex"})
	o.AddPet(Pet{Name: "Luna"}) // not persisted

	if p := o.GetPet("rex", false); p == nil || *p.ID != 1 {
		t.Fatalf("case-insensitive lookup failed: %+v", p)
	}
	if p := o.GetPet("Luna", true); p != nil {
		t.Fatalf("ignoreNew should skip unpersisted pets, got %+v", p)
	}
	if p := o.GetPet("Luna", false); p == nil {
		t.Fatal("expected to find unpersisted pet when ignoreNew=false")
	}
	if p := o.GetPet("missing", false); p != nil {
		t.Fatalf("expected nil for unknown name, got %+v", p)
	}
}

func TestPetVisits_SortedMostRecentFirst(t *testing.T) {
	p := Pet{}
	p.AddVisit(Visit{Date: NewDate(2024, time.January, 2), Description: "middle"})
	p.AddVisit(Visit{Date: NewDate(2024, time.June, 30), Description: "latest"})
	p.AddVisit(Visit{Date: NewDate(2023, time.December, 1), Description: "oldest"})

	visits := p.Visits()
	want := []string{"latest", "middle", "oldest"}
	for i, v := range visits {
		if v.Description != want[i] {
			t.Fatalf("visits out of order: got %q at %d, want %q", v.Description, i, want[i])
		}
	}
}

func TestPetAddVisit_StampsPetID(t *testing.T) {
	p := Pet{ID: intp(3)}
	p.AddVisit(Visit{Description: "checkup"})
	if v := p.Visits()[0]; v.PetID == nil || *v.PetID != 3 {
		t.Fatalf("expected petId 3 on visit, got %v", v.PetID)
	}
}

func TestVetSpecialties_SortedByName(t *testing.T) {
	v := Vet{}
	v.AddSpecialty(Specialty{Name: "surgery"})
	v.AddSpecialty(Specialty{Name: "Dentistry"})
	v.AddSpecialty(Specialty{Name: "radiology"})

	specs := v.Specialties()
	want := []string{"Dentistry", "radiology", "surgery"}
	for i, s := range specs {
		if s.Name != want[i] {
			t.Fatalf("specialties out of order: got %q at %d, want %q", s.Name, i, want[i])
		}
	}
}

func TestVetSetSpecialties_Replaces(t *testing.T) {
	v := Vet{}
	v.AddSpecialty(Specialty{Name: "surgery"})
	v.SetSpecialties([]Specialty{{Name: "dentistry"}})

	specs := v.Specialties()
	if len(specs) != 1 || specs[0].Name != "dentistry" {
		t.Fatalf("expected replaced specialty set, got %+v", specs)
	}
}

func TestOwnerJSON_RoundTrip(t *testing.T) {
	o := Owner{
		Person:    Person{ID: intp(1), FirstName: "George", LastName: "Franklin"},
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
	o.AddPet(Pet{ID: intp(2), Name: "Rex", Type: &PetType{ID: intp(1), Name: "dog"}})

	raw, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal owner: %v", err)
	}
	if !strings.Contains(string(raw), `"pets":[`) {
		t.Fatalf("expected pets array in payload: %s", raw)
	}

	var back Owner
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal owner: %v", err)
	}
	if back.LastName != "Franklin" || len(back.Pets()) != 1 {
		t.Fatalf("round-trip mismatch: %+v pets=%d", back, len(back.Pets()))
	}
	if back.Pets()[0].Type == nil || back.Pets()[0].Type.Name != "dog" {
		t.Fatalf("pet type lost in round-trip: %+v", back.Pets()[0])
	}
}

func TestOwnerJSON_NewOwnerOmitsID(t *testing.T) {
	raw, err := json.Marshal(Owner{Person: Person{FirstName: "Jean", LastName: "Coleman"}})
	if err != nil {
		t.Fatalf("marshal owner: %v", err)
	}
	if strings.Contains(string(raw), `"id"`) {
		t.Fatalf("unpersisted owner must omit id: %s", raw)
	}
}

func TestUserHasRole(t *testing.T) {
	u := User{Username: "admin", Roles: []Role{{Name: "ROLE_ADMIN"}}}
	if !u.HasRole("ROLE_ADMIN") {
		t.Fatal("expected HasRole to match")
	}
	if u.HasRole("ROLE_VET_ADMIN") {
		t.Fatal("expected HasRole to miss")
	}
}
