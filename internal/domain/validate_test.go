package domain

import "testing"

func findFieldError(errs []FieldError, field string) *FieldError {
	for i := range errs {
		if errs[i].FieldName == field {
			return &errs[i]
		}
	}
	return nil
}

func TestOwnerValidate_RequiredFields(t *testing.T) {
	errs := (&Owner{}).Validate()
	for _, field := range []string{"firstName", "lastName", "address", "city", "telephone"} {
		fe := findFieldError(errs, field)
		if fe == nil {
			t.Fatalf("missing error for %s", field)
		}
		if fe.ObjectName != "owner" || fe.ErrorMessage != "must not be empty" {
			t.Fatalf("unexpected error for %s: %+v", field, fe)
		}
	}
}

func TestOwnerValidate_Telephone(t *testing.T) {
	base := Owner{
		Person:  Person{FirstName: "George", LastName: "Franklin"},
		Address: "110 W. Liberty St.", City: "Madison",
	}

	o := base
	o.Telephone = "not-a-number"
	fe := findFieldError(o.Validate(), "telephone")
	if fe == nil || fe.ErrorMessage != "must be a number with at most 10 digits" {
		t.Fatalf("unexpected telephone error: %+v", fe)
	}
	if fe.FieldValue != "not-a-number" {
		t.Fatalf("fieldValue must echo the rejected input: %+v", fe)
	}

	o = base
	o.Telephone = "12345678901" // 11 digits
	if findFieldError(o.Validate(), "telephone") == nil {
		t.Fatal("11-digit telephone must be rejected")
	}

	o = base
	o.Telephone = "6085551023"
	if errs := o.Validate(); len(errs) != 0 {
		t.Fatalf("valid owner rejected: %+v", errs)
	}
}

func TestPetValidate(t *testing.T) {
	errs := (&Pet{}).Validate()
	if findFieldError(errs, "name") == nil {
		t.Fatal("missing name error")
	}
	if fe := findFieldError(errs, "type"); fe == nil || fe.ErrorMessage != "must not be null" || fe.FieldValue != "null" {
		t.Fatalf("unexpected type error: %+v", fe)
	}
	if findFieldError(errs, "ownerId") == nil {
		t.Fatal("missing ownerId error")
	}

	if fe := findFieldError((&Pet{Name: "Rex", Type: &PetType{Name: "dog"}, OwnerID: intp(1)}).Validate(), "type.id"); fe == nil {
		t.Fatal("type without id must be rejected")
	}

	p := Pet{Name: "Rex", Type: &PetType{ID: intp(1), Name: "dog"}, OwnerID: intp(1)}
	if errs := p.Validate(); len(errs) != 0 {
		t.Fatalf("valid pet rejected: %+v", errs)
	}
}

func TestVisitValidate_RequiresPet(t *testing.T) {
	errs := (&Visit{Description: "rabies shot"}).Validate()
	if fe := findFieldError(errs, "petId"); fe == nil || fe.ErrorMessage != "must not be null" {
		t.Fatalf("visit without a pet must be invalid: %+v", errs)
	}

	v := Visit{Description: "rabies shot", PetID: intp(1)}
	if errs := v.Validate(); len(errs) != 0 {
		t.Fatalf("valid visit rejected: %+v", errs)
	}
}

func TestLookupAndUserValidate(t *testing.T) {
	if errs := (&Specialty{}).Validate(); len(errs) != 1 || errs[0].ObjectName != "specialty" {
		t.Fatalf("specialty: %+v", errs)
	}
	if errs := (&PetType{Name: "cat"}).Validate(); len(errs) != 0 {
		t.Fatalf("pet type: %+v", errs)
	}
	if errs := (&Vet{}).Validate(); len(errs) != 2 {
		t.Fatalf("vet: %+v", errs)
	}
	errs := (&User{Username: "admin"}).Validate()
	if len(errs) != 1 || errs[0].FieldName != "password" {
		t.Fatalf("user: %+v", errs)
	}
}
