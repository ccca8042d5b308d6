// Pet HTTP handlers.
//
// Endpoints:
//   - GET    /pets            (list)
//   - GET    /pets/{petId}    (fetch with visits)
//   - GET    /pets/pettypes   (list pet types; served by GetPet dispatch)
//   - POST   /pets            (create)
//   - PUT    /pets/{petId}    (update)
//   - DELETE /pets/{petId}    (delete with visits)
//
// Gin cannot register /pets/pettypes next to /pets/:petId, so GetPet inspects
// the path parameter and dispatches to ListPetTypes for the literal segment
// "pettypes".
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetPet godoc
// @ID          getPet
// @Summary     Fetch a pet
// @Description Returns the pet with its visits and resolved type.
// @Tags        Pets
// @Produce     json
//
// @Param       petId  path  int  true  "Pet ID"  example(1)
//
// @Success     200  {object}  domain.Pet
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /pets/{petId} [get]
func (h *Handlers) GetPet(c *gin.Context) {
	if c.Param("petId") == "pettypes" {
		h.ListPetTypes(c)
		return
	}
	id, okay := pathID(c, "petId")
	if !okay {
		return
	}
	pet, err := h.clinic.FindPetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet lookup failed")
		return
	}
	ok(c, http.StatusOK, pet)
}

// ListPets godoc
// @ID          listPets
// @Summary     List all pets
// @Tags        Pets
// @Produce     json
//
// @Success     200  {array}   domain.Pet
// @Failure     404  {string}  string "No pets (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pets [get]
func (h *Handlers) ListPets(c *gin.Context) {
	pets, err := h.clinic.FindAllPets(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing pets failed")
		return
	}
	if len(pets) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, pets)
}

// CreatePet godoc
// @ID          createPet
// @Summary     Create a pet
// @Description Creates a pet. The body must not carry an id and must reference an owner and a type.
// @Tags        Pets
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Pet  true  "Pet payload"
//
// @Success     201  {object}  domain.Pet
// @Header      201  {string}  Location  "URL of the created pet"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pets [post]
func (h *Handlers) CreatePet(c *gin.Context) {
	var pet domain.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "pet", pet.ID) {
		return
	}
	if errs := pet.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SavePet(c.Request.Context(), &pet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving pet failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *pet.ID), pet)
}

// UpdatePet godoc
// @ID          updatePet
// @Summary     Update a pet
// @Description Replaces the pet's name, birth date, and type. The body id must be absent or equal to the path id.
// @Tags        Pets
// @Accept      json
//
// @Param       petId  path  int         true  "Pet ID"  example(1)
// @Param       body   body  domain.Pet  true  "Pet payload"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pets/{petId} [put]
func (h *Handlers) UpdatePet(c *gin.Context) {
	id, okay := pathID(c, "petId")
	if !okay {
		return
	}
	var in domain.Pet
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "pet", in.ID, id) {
		return
	}

	pet, err := h.clinic.FindPetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet lookup failed")
		return
	}

	pet.Name = in.Name
	pet.BirthDate = in.BirthDate
	pet.Type = in.Type
	if in.OwnerID != nil {
		pet.OwnerID = in.OwnerID
	}
	if errs := pet.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SavePet(c.Request.Context(), pet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving pet failed")
		return
	}
	noContent(c)
}

// DeletePet godoc
// @ID          deletePet
// @Summary     Delete a pet
// @Description Deletes the pet together with its visits.
// @Tags        Pets
//
// @Param       petId  path  int  true  "Pet ID"  example(1)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /pets/{petId} [delete]
func (h *Handlers) DeletePet(c *gin.Context) {
	id, okay := pathID(c, "petId")
	if !okay {
		return
	}
	pet, err := h.clinic.FindPetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet lookup failed")
		return
	}
	if err := h.clinic.DeletePet(c.Request.Context(), pet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting pet failed")
		return
	}
	noContent(c)
}
