package domain

import (
	"fmt"
	"strconv"
)

// FieldError describes one rejected field of a submitted entity. The shape
// matches the JSON carried in the "errors" response header on HTTP 400.
type FieldError struct {
	ObjectName   string `json:"objectName"`
	FieldName    string `json:"fieldName"`
	FieldValue   string `json:"fieldValue"`
	ErrorMessage string `json:"errorMessage"`
}

const (
	msgNotEmpty = "must not be empty"
	msgNotNull  = "must not be null"
)

// maxTelephoneDigits caps owner telephone numbers.
const maxTelephoneDigits = 10

func requireString(errs []FieldError, object, field, value string) []FieldError {
	if value == "" {
		errs = append(errs, FieldError{object, field, value, msgNotEmpty})
	}
	return errs
}

func requireID(errs []FieldError, object, field string, id *int) []FieldError {
	if id == nil {
		errs = append(errs, FieldError{object, field, "null", msgNotNull})
	}
	return errs
}

// Validate checks the owner's own fields. Pets are validated separately.
func (o *Owner) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "owner", "firstName", o.FirstName)
	errs = requireString(errs, "owner", "lastName", o.LastName)
	errs = requireString(errs, "owner", "address", o.Address)
	errs = requireString(errs, "owner", "city", o.City)
	errs = requireString(errs, "owner", "telephone", o.Telephone)
	if o.Telephone != "" && !isDigits(o.Telephone, maxTelephoneDigits) {
		errs = append(errs, FieldError{"owner", "telephone", o.Telephone,
			fmt.Sprintf("must be a number with at most %d digits", maxTelephoneDigits)})
	}
	return errs
}

// Validate checks the pet's own fields, including its required type and
// owner references.
func (p *Pet) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "pet", "name", p.Name)
	if p.Type == nil {
		errs = append(errs, FieldError{"pet", "type", "null", msgNotNull})
	} else if p.Type.ID == nil {
		errs = append(errs, FieldError{"pet", "type.id", "null", msgNotNull})
	}
	errs = requireID(errs, "pet", "ownerId", p.OwnerID)
	return errs
}

// Validate checks the visit. A visit without a pet reference is invalid.
func (v *Visit) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "visit", "description", v.Description)
	errs = requireID(errs, "visit", "petId", v.PetID)
	return errs
}

// Validate checks the vet's own fields. Specialties are optional.
func (v *Vet) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "vet", "firstName", v.FirstName)
	errs = requireString(errs, "vet", "lastName", v.LastName)
	return errs
}

// Validate checks the specialty name.
func (s *Specialty) Validate() []FieldError {
	return requireString(nil, "specialty", "name", s.Name)
}

// Validate checks the pet type name.
func (t *PetType) Validate() []FieldError {
	return requireString(nil, "petType", "name", t.Name)
}

// Validate checks the user's credentials. The role-set rules live in the
// user service, not here.
func (u *User) Validate() []FieldError {
	var errs []FieldError
	errs = requireString(errs, "user", "username", u.Username)
	errs = requireString(errs, "user", "password", u.Password)
	return errs
}

// isDigits reports whether s is all ASCII digits and at most max long.
func isDigits(s string, max int) bool {
	if len(s) > max {
		return false
	}
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}
