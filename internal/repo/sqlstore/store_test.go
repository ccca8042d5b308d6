package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/repo"
)

func newStore(t *testing.T) *repo.Store {
	t.Helper()

	db, err := OpenSQLite(filepath.Join(t.TempDir(), "clinic_test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := db.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return New(db)
}

func seedOwner(t *testing.T, store *repo.Store, first, last string) *domain.Owner {
	t.Helper()
	o := &domain.Owner{
		Person:    domain.Person{FirstName: first, LastName: last},
		Address:   "2693 Commerce St.",
		City:      "McFarland",
		Telephone: "6085558763",
	}
	if err := store.Owners.Save(context.Background(), o); err != nil {
		t.Fatalf("save owner: %v", err)
	}
	return o
}

func seedPetType(t *testing.T, store *repo.Store, name string) *domain.PetType {
	t.Helper()
	pt := &domain.PetType{Name: name}
	if err := store.PetTypes.Save(context.Background(), pt); err != nil {
		t.Fatalf("save pet type: %v", err)
	}
	return pt
}

func seedPet(t *testing.T, store *repo.Store, name string, owner *domain.Owner, pt *domain.PetType) *domain.Pet {
	t.Helper()
	p := &domain.Pet{Name: name, Type: pt, OwnerID: owner.ID}
	if err := store.Pets.Save(context.Background(), p); err != nil {
		t.Fatalf("save pet: %v", err)
	}
	return p
}

func seedVisit(t *testing.T, store *repo.Store, pet *domain.Pet, date domain.Date, desc string) *domain.Visit {
	t.Helper()
	v := &domain.Visit{Date: date, Description: desc, PetID: pet.ID}
	if err := store.Visits.Save(context.Background(), v); err != nil {
		t.Fatalf("save visit: %v", err)
	}
	return v
}

func TestOwnerSave_InsertAssignsIDAndUpdateKeepsIt(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	o := seedOwner(t, store, "George", "Franklin")
	if o.ID == nil || *o.ID == 0 {
		t.Fatalf("expected generated id, got %v", o.ID)
	}
	id := *o.ID

	o.Telephone = "6085550000"
	if err := store.Owners.Save(ctx, o); err != nil {
		t.Fatalf("update owner: %v", err)
	}
	if *o.ID != id {
		t.Fatalf("update changed id: %d -> %d", id, *o.ID)
	}

	got, err := store.Owners.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	if got.Telephone != "6085550000" {
		t.Fatalf("update not persisted: %+v", got)
	}
	all, err := store.Owners.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected a single row after update, got %d", len(all))
	}
}

func TestOwnerFindByID_JoinAssemblesAggregate(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := seedOwner(t, store, "Jean", "Coleman")
	dog := seedPetType(t, store, "dog")
	cat := seedPetType(t, store, "cat")
	samantha := seedPet(t, store, "Samantha", owner, cat)
	_ = seedPet(t, store, "Max", owner, dog)
	seedVisit(t, store, samantha, domain.NewDate(2023, time.August, 15), "rabies shot")
	seedVisit(t, store, samantha, domain.NewDate(2024, time.February, 20), "neutered")

	got, err := store.Owners.FindByID(ctx, *owner.ID)
	if err != nil {
		t.Fatalf("find owner: %v", err)
	}
	pets := got.Pets()
	if len(pets) != 2 {
		t.Fatalf("expected 2 pets, got %d", len(pets))
	}
	if pets[0].Name != "Max" || pets[1].Name != "Samantha" {
		t.Fatalf("pets out of order: %q, %q", pets[0].Name, pets[1].Name)
	}
	if pets[1].Type == nil || pets[1].Type.Name != "cat" {
		t.Fatalf("type not resolved from lookup: %+v", pets[1].Type)
	}
	visits := pets[1].Visits()
	if len(visits) != 2 || visits[0].Description != "neutered" {
		t.Fatalf("expected visits most recent first, got %+v", visits)
	}
	// Attached visits carry the pet reference.
	if visits[0].PetID == nil || *visits[0].PetID != *samantha.ID {
		t.Fatalf("visit petId not stamped: %+v", visits[0])
	}
}

func TestOwnerFindAll_HydratesEveryOwner(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	dog := seedPetType(t, store, "dog")
	coleman := seedOwner(t, store, "Jean", "Coleman")
	schroeder := seedOwner(t, store, "David", "Schroeder")
	colemanPet := seedPet(t, store, "Max", coleman, dog)
	seedPet(t, store, "Freddy", schroeder, dog)
	seedVisit(t, store, colemanPet, domain.NewDate(2024, time.July, 2), "shots")

	owners, err := store.Owners.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("expected 2 owners, got %d", len(owners))
	}
	byLast := map[string][]domain.Pet{}
	for i := range owners {
		byLast[owners[i].LastName] = owners[i].Pets()
	}
	if pets := byLast["Coleman"]; len(pets) != 1 || pets[0].Name != "Max" || len(pets[0].Visits()) != 1 {
		t.Fatalf("coleman pets: %+v", pets)
	}
	if pets := byLast["Schroeder"]; len(pets) != 1 || pets[0].Name != "Freddy" || len(pets[0].Visits()) != 0 {
		t.Fatalf("schroeder pets: %+v", pets)
	}
}

func TestOwnerFindByLastNamePrefix(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	seedOwner(t, store, "Betty", "Davis")
	seedOwner(t, store, "Harold", "Davis")
	seedOwner(t, store, "Peter", "Davison")
	seedOwner(t, store, "Jeff", "Black")

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

func TestOwnerDelete_ChildrenBeforeParent(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := seedOwner(t, store, "Eduardo", "Rodriquez")
	dog := seedPetType(t, store, "dog")
	pet := seedPet(t, store, "Rosy", owner, dog)
	visit := seedVisit(t, store, pet, domain.NewDate(2024, time.March, 1), "spayed")

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
	if _, err := store.PetTypes.FindByID(ctx, *dog.ID); err != nil {
		t.Fatalf("pet type must survive owner delete: %v", err)
	}
}

func TestOwnerDelete_NonHydratedOwnerStillCascades(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := seedOwner(t, store, "Jean", "Coleman")
	cat := seedPetType(t, store, "cat")
	pet := seedPet(t, store, "Samantha", owner, cat)
	visit := seedVisit(t, store, pet, domain.NewDate(2024, time.May, 9), "checkup")

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
	store := newStore(t)
	ctx := context.Background()

	owner := seedOwner(t, store, "Maria", "Escobito")
	hamster := seedPetType(t, store, "hamster")
	pet := seedPet(t, store, "Mulligan", owner, hamster)
	visit := seedVisit(t, store, pet, domain.NewDate(2024, time.April, 4), "wheel injury")

	if err := store.PetTypes.Delete(ctx, hamster); err != nil {
		t.Fatalf("delete pet type: %v", err)
	}
	if _, err := store.Pets.FindByID(ctx, *pet.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("pet should be gone, got %v", err)
	}
	if _, err := store.Visits.FindByID(ctx, *visit.ID); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("visit should be gone, got %v", err)
	}
	if _, err := store.Owners.FindByID(ctx, *owner.ID); err != nil {
		t.Fatalf("owner must survive type delete: %v", err)
	}
}

func TestFindByID_NotFoundSentinel(t *testing.T) {
	store := newStore(t)
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
	if _, err := store.Specialties.FindByID(ctx, 999); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("specialties: %v", err)
	}
	if _, err := store.Users.FindByUsername(ctx, "nobody"); !errors.Is(err, repo.ErrNotFound) {
		t.Fatalf("users: %v", err)
	}
}

func TestVisitFindByPetID_MostRecentFirst(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	owner := seedOwner(t, store, "David", "Schroeder")
	dog := seedPetType(t, store, "dog")
	pet := seedPet(t, store, "Freddy", owner, dog)
	seedVisit(t, store, pet, domain.NewDate(2023, time.June, 1), "oldest")
	seedVisit(t, store, pet, domain.NewDate(2024, time.June, 1), "latest")
	seedVisit(t, store, pet, domain.NewDate(2024, time.January, 1), "middle")

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

func TestVetSave_ReplacesSpecialtySetAndDeleteKeepsSpecialties(t *testing.T) {
	store := newStore(t)
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
	if specs := got.Specialties(); len(specs) != 1 || specs[0].Name != "surgery" {
		t.Fatalf("specialty set not replaced: %+v", specs)
	}

	if err := store.Vets.Delete(ctx, vet); err != nil {
		t.Fatalf("delete vet: %v", err)
	}
	if _, err := store.Specialties.FindByID(ctx, *surgery.ID); err != nil {
		t.Fatalf("specialty must survive vet delete: %v", err)
	}
}

func TestVetFindAll_OrderedByLastThenFirstName(t *testing.T) {
	store := newStore(t)
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
	store := newStore(t)
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
	if specs := got.Specialties(); len(specs) != 1 || specs[0].Name != "surgery" {
		t.Fatalf("expected only surgery to remain, got %+v", specs)
	}
}

func TestUserSave_UpsertsAndReplacesRoles(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	u := &domain.User{
		Username: "admin1",
		Password: "secret",
		Enabled:  true,
		Roles:    []domain.Role{{Name: "ROLE_ADMIN", Username: "admin1"}},
	}
	if err := store.Users.Save(ctx, u); err != nil {
		t.Fatalf("save user: %v", err)
	}

	u.Password = "rotated"
	u.Roles = []domain.Role{
		{Name: "ROLE_OWNER_ADMIN", Username: "admin1"},
		{Name: "ROLE_VET_ADMIN", Username: "admin1"},
	}
	if err := store.Users.Save(ctx, u); err != nil {
		t.Fatalf("update user: %v", err)
	}

	got, err := store.Users.FindByUsername(ctx, "admin1")
	if err != nil {
		t.Fatalf("find user: %v", err)
	}
	if got.Password != "rotated" || len(got.Roles) != 2 {
		t.Fatalf("upsert failed: %+v", got)
	}
	if !got.HasRole("ROLE_OWNER_ADMIN") || !got.HasRole("ROLE_VET_ADMIN") || got.HasRole("ROLE_ADMIN") {
		t.Fatalf("roles not replaced: %+v", got.Roles)
	}
}

func TestNotFound_MapsWrappedErrNoRows(t *testing.T) {
	wrapped := fmt.Errorf("scan owner: %w", sql.ErrNoRows)
	if !errors.Is(notFound(wrapped), repo.ErrNotFound) {
		t.Fatalf("wrapped ErrNoRows not mapped: %v", notFound(wrapped))
	}
	if !errors.Is(notFound(sql.ErrNoRows), repo.ErrNotFound) {
		t.Fatal("bare ErrNoRows not mapped")
	}
	boom := errors.New("disk full")
	if got := notFound(boom); got != boom {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
}

func TestPetTypesFindAll_OrderedByName(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()

	for _, name := range []string{"snake", "bird", "dog"} {
		if err := store.PetTypes.Save(ctx, &domain.PetType{Name: name}); err != nil {
			t.Fatalf("save pet type: %v", err)
		}
	}
	types, err := store.PetTypes.FindAll(ctx)
	if err != nil {
		t.Fatalf("find all types: %v", err)
	}
	want := []string{"bird", "dog", "snake"}
	for i, pt := range types {
		if pt.Name != want[i] {
			t.Fatalf("type order: got %q at %d, want %q", pt.Name, i, want[i])
		}
	}
}
