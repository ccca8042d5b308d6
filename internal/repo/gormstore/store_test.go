package gormstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/repo"
)

func intp(i int) *int { return &i }

func newStore(t *testing.T) (*repo.Store, *gorm.DB) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clinic_test.db")
	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return New(db), db
}

func saveOwner(t *testing.T, store *repo.Store, first, last string) *domain.Owner {
	t.Helper()
	o := &domain.Owner{
		Person:    domain.Person{FirstName: first, LastName: last},
		Address:   "110 W. Liberty St.",
		City:      "Madison",
		Telephone: "6085551023",
	}
	if err := store.Owners.Save(context.Background(), o); err != nil {
		t.Fatalf("save owner: %v", err)
	}
	return o
}

func savePetType(t *testing.T, store *repo.Store, name string) *domain.PetType {
	t.Helper()
	pt := &domain.PetType{Name: name}
	if err := store.PetTypes.Save(context.Background(), pt); err != nil {
		t.Fatalf("save pet type: %v", err)
	}
	return pt
}

func savePet(t *testing.T, store *repo.Store, name string, owner *domain.Owner, pt *domain.PetType) *domain.Pet {
	t.Helper()
	p := &domain.Pet{Name: name, Type: pt, OwnerID: owner.ID}
	if err := store.Pets.Save(context.Background(), p); err != nil {
		t.Fatalf("save pet: %v", err)
	}
	return p
}

func saveVisit(t *testing.T, store *repo.Store, pet *domain.Pet, date domain.Date, desc string) *domain.Visit {
	t.Helper()
	v := &domain.Visit{Date: date, Description: desc, PetID: pet.ID}
	if err := store.Visits.Save(context.Background(), v); err != nil {
		t.Fatalf("save visit: %v", err)
	}
	return v
}

func TestOwnerSave_AssignsID(t *testing.T) {
	store, _ := newStore(t)

	o := saveOwner(t, store, "George", "Franklin")
	if o.ID == nil || *o.ID == 0 {
		t.Fatalf("expected generated id, got %v", o.ID)
	}
}

func TestOwnerSave_UpdateKeepsID(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	o := saveOwner(t, store, "George", "Franklin")
	id := *o.ID

	o.City = "Monona"
	if err := store.Owners.Save(ctx, o); err != nil {
		t.Fatalf("update owner: %v", err)
	}
	if *o.ID != id {
		t.Fatalf("update must not change id: %d -> %d", id, *o.ID)
	}

	got, err := store.Owners.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	if got.City != "Monona" {
		t.Fatalf("update not persisted: %+v", got)
	}
	all, err := store.Owners.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("update must not insert a second row, got %d", len(all))
	}
}

func TestOwnerFindByID_HydratesAggregate(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	owner := saveOwner(t, store, "Jean", "Coleman")
	dog := savePetType(t, store, "dog")
	cat := savePetType(t, store, "cat")
	rex := savePet(t, store, "Rex", owner, dog)
	_ = savePet(t, store, "Apollo", owner, cat)
	saveVisit(t, store, rex, domain.NewDate(2024, time.January, 10), "rabies shot")
	saveVisit(t, store, rex, domain.NewDate(2024, time.May, 2), "checkup")

	got, err := store.Owners.FindByID(ctx, *owner.ID)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	pets := got.Pets()
	if len(pets) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(pets))
	}
	// Name-ascending order from the aggregate accessor.
	if pets[0].Name != "Apollo" || pets[1].Name != "Rex" {
		t.Fatalf("pets out of order: %q, %q", pets[0].Name, pets[1].Name)
	}
	if pets[0].Type == nil || pets[0].Type.Name != "cat" {
		t.Fatalf("type not resolved: %+v", pets[0].Type)
	}
	visits := pets[1].Visits()
	if len(visits) != 2 {
		t.Fatalf("expected 2 visits on Rex, got %d", len(visits))
	}
	if visits[0].Description != "checkup" {
		t.Fatalf("visits must be most recent first: %+v", visits)
	}
}

func TestOwnerFindByLastNamePrefix(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	saveOwner(t, store, "Betty", "Davis")
	saveOwner(t, store, "Harold", "Davis")
	saveOwner(t, store, "Peter", "Davison")
	saveOwner(t, store, "Carlos", "Estaban")

	got, err := store.Owners.FindByLastNamePrefix(ctx, "Davis")
	if err != nil {
		t.Fatalf("prefix search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected Davis, Davis, Davison; got %d owners", len(got))
	}

	none, err := store.Owners.FindByLastNamePrefix(ctx, "Daviss")
	if err != nil {
		t.Fatalf("prefix search: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no match for Daviss, got %d", len(none))
	}
}

func TestOwnerDelete_CascadesThroughPetsAndVisits(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	owner := saveOwner(t, store, "Eduardo", "Rodriquez")
	dog := savePetType(t, store, "dog")
	pet := savePet(t, store, "Rosy", owner, dog)
	visit := saveVisit(t, store, pet, domain.NewDate(2024, time.March, 1), "spayed")

	if err := store.Owners.Delete(ctx, owner); err != nil {
		t.Fatalf("delete owner: %v", err)
	}

	if _, err := store.Owners.FindByID(ctx, *owner.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("owner should be gone, got %v", err)
	}
	if _, err := store.Pets.FindByID(ctx, *pet.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("pet should be gone, got %v", err)
	}
	if _, err := store.Visits.FindByID(ctx, *visit.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("visit should be gone, got %v", err)
	}
	// The type lookup table is untouched.
	if _, err := store.PetTypes.FindByID(ctx, *dog.ID); err != nil {
		t.Fatalf("pet type must survive owner delete: %v", err)
	}
}

func TestOwnerDelete_NonHydratedOwnerStillCascades(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	owner := saveOwner(t, store, "Jean", "Coleman")
	cat := savePetType(t, store, "cat")
	pet := savePet(t, store, "Samantha", owner, cat)
	visit := saveVisit(t, store, pet, domain.NewDate(2024, time.May, 9), "checkup")

	// Only the id, no children attached. The cascade must come from the
	// database, not from the entity's in-memory pet set.
	bare := &domain.Owner{Person: domain.Person{ID: owner.ID}}
	if err := store.Owners.Delete(ctx, bare); err != nil {
		t.Fatalf("delete owner: %v", err)
	}

	if _, err := store.Pets.FindByID(ctx, *pet.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("pet should be gone, got %v", err)
	}
	if _, err := store.Visits.FindByID(ctx, *visit.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("visit should be gone, got %v", err)
	}
	if _, err := store.Owners.FindByID(ctx, *owner.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("owner should be gone, got %v", err)
	}
}

func TestPetTypeDelete_CascadesThroughPetsAndVisits(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	owner := saveOwner(t, store, "Maria", "Escobito")
	lizard := savePetType(t, store, "lizard")
	pet := savePet(t, store, "Basil", owner, lizard)
	visit := saveVisit(t, store, pet, domain.NewDate(2024, time.April, 4), "shed check")

	if err := store.PetTypes.Delete(ctx, lizard); err != nil {
		t.Fatalf("delete pet type: %v", err)
	}
	if _, err := store.Pets.FindByID(ctx, *pet.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("pet should be gone, got %v", err)
	}
	if _, err := store.Visits.FindByID(ctx, *visit.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("visit should be gone, got %v", err)
	}
	// The owner survives.
	if _, err := store.Owners.FindByID(ctx, *owner.ID); err != nil {
		t.Fatalf("owner must survive type delete: %v", err)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	if _, err := store.Owners.FindByID(ctx, 999); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("owners: %v", err)
	}
	if _, err := store.Pets.FindByID(ctx, 999); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("pets: %v", err)
	}
	if _, err := store.Visits.FindByID(ctx, 999); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("visits: %v", err)
	}
	if _, err := store.Vets.FindByID(ctx, 999); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("vets: %v", err)
	}
	if _, err := store.Users.FindByUsername(ctx, "nobody"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("users: %v", err)
	}
}

func TestVisitFindByPetID_MostRecentFirst(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	owner := saveOwner(t, store, "David", "Schroeder")
	dog := savePetType(t, store, "dog")
	pet := savePet(t, store, "Freddy", owner, dog)
	saveVisit(t, store, pet, domain.NewDate(2023, time.June, 1), "oldest")
	saveVisit(t, store, pet, domain.NewDate(2024, time.June, 1), "latest")
	saveVisit(t, store, pet, domain.NewDate(2024, time.January, 1), "middle")

	visits, err := store.Visits.FindByPetID(ctx, *pet.ID)
	if err != nil {
		t.Fatalf("find visits: %v", err)
	}
	want := []string{"latest", "middle", "oldest"}
	for i, v := range visits {
		if v.Description != want[i] {
			t.Fatalf("visit order: got %q at %d, want %q", v.Description, i, want[i])
		}
	}
}

func TestVetSave_ReplacesSpecialtySet(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	radiology := &domain.Specialty{Name: "radiology"}
	surgery := &domain.Specialty{Name: "surgery"}
	for _, s := range []*domain.Specialty{radiology, surgery} {
		if err := store.Specialties.Save(ctx, s); err != nil {
			t.Fatalf("save specialty: %v", err)
		}
	}

	vet := &domain.Vet{Person: domain.Person{FirstName: "Linda", LastName: "Douglas"}}
	vet.AddSpecialty(*radiology)
	if err := store.Vets.Save(ctx, vet); err != nil {
		t.Fatalf("save vet: %v", err)
	}

	vet.SetSpecialties([]domain.Specialty{*surgery})
	if err := store.Vets.Save(ctx, vet); err != nil {
		t.Fatalf("update vet: %v", err)
	}

	got, err := store.Vets.FindByID(ctx, *vet.ID)
	if err != nil {
		t.Fatalf("find vet: %v", err)
	}
	specs := got.Specialties()
	if len(specs) != 1 || specs[0].Name != "surgery" {
		t.Fatalf("specialty set not replaced: %+v", specs)
	}
	// The detached specialty still exists.
	if _, err := store.Specialties.FindByID(ctx, *radiology.ID); err != nil {
		t.Fatalf("radiology must survive: %v", err)
	}
}

func TestVetDelete_KeepsSpecialties(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	dentistry := &domain.Specialty{Name: "dentistry"}
	if err := store.Specialties.Save(ctx, dentistry); err != nil {
		t.Fatalf("save specialty: %v", err)
	}
	vet := &domain.Vet{Person: domain.Person{FirstName: "Rafael", LastName: "Ortega"}}
	vet.AddSpecialty(*dentistry)
	if err := store.Vets.Save(ctx, vet); err != nil {
		t.Fatalf("save vet: %v", err)
	}

	if err := store.Vets.Delete(ctx, vet); err != nil {
		t.Fatalf("delete vet: %v", err)
	}
	if _, err := store.Vets.FindByID(ctx, *vet.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("vet should be gone, got %v", err)
	}
	if _, err := store.Specialties.FindByID(ctx, *dentistry.ID); err != nil {
		t.Fatalf("specialty must survive vet delete: %v", err)
	}
}

func TestVetFindAll_OrderedByLastThenFirstName(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	for _, v := range []*domain.Vet{
		{Person: domain.Person{FirstName: "Sharon", LastName: "Jenkins"}},
		{Person: domain.Person{FirstName: "James", LastName: "Carter"}},
		{Person: domain.Person{FirstName: "Helen", LastName: "Carter"}},
	} {
		if err := store.Vets.Save(ctx, v); err != nil {
			t.Fatalf("save vet: %v", err)
		}
	}

	vets, err := store.Vets.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all vets: %v", err)
	}
	want := []string{"Helen Carter", "James Carter", "Sharon Jenkins"}
	for i, v := range vets {
		if got := v.FirstName + " " + v.LastName; got != want[i] {
			t.Fatalf("vet order: got %q at %d, want %q", got, i, want[i])
		}
	}
}

func TestSpecialtyDelete_RemovesJoinRows(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	radiology := &domain.Specialty{Name: "radiology"}
	surgery := &domain.Specialty{Name: "surgery"}
	for _, s := range []*domain.Specialty{radiology, surgery} {
		if err := store.Specialties.Save(ctx, s); err != nil {
			t.Fatalf("save specialty: %v", err)
		}
	}
	vet := &domain.Vet{Person: domain.Person{FirstName: "Henry", LastName: "Stevens"}}
	vet.AddSpecialty(*radiology)
	vet.AddSpecialty(*surgery)
	if err := store.Vets.Save(ctx, vet); err != nil {
		t.Fatalf("save vet: %v", err)
	}

	if err := store.Specialties.Delete(ctx, radiology); err != nil {
		t.Fatalf("delete specialty: %v", err)
	}

	got, err := store.Vets.FindByID(ctx, *vet.ID)
	if err != nil {
		t.Fatalf("find vet: %v", err)
	}
	specs := got.Specialties()
	if len(specs) != 1 || specs[0].Name != "surgery" {
		t.Fatalf("expected only surgery to remain, got %+v", specs)
	}
}

func TestUserSave_ReplacesRoles(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	u := &domain.User{
		Username: "vet1",
		Password: "secret",
		Enabled:  true,
		Roles:    []domain.Role{{Name: "ROLE_VET_ADMIN", Username: "vet1"}},
	}
	if err := store.Users.Save(ctx, u); err != nil {
		t.Fatalf("save user: %v", err)
	}

	u.Roles = []domain.Role{{Name: "ROLE_OWNER_ADMIN", Username: "vet1"}}
	if err := store.Users.Save(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got, err := store.Users.FindByUsername(ctx, "vet1")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if len(got.Roles) != 1 || got.Roles[0].Name != "ROLE_OWNER_ADMIN" {
		t.Fatalf("roles not replaced: %+v", got.Roles)
	}
	if !got.Enabled {
		t.Fatalf("enabled flag lost: %+v", got)
	}
}
