// Pet type HTTP handlers. CRUD over the type lookup table; deleting a type
// cascades through the pets that reference it and their visits.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetPetType godoc
// @ID          getPetType
// @Summary     Fetch a pet type
// @Tags        PetTypes
// @Produce     json
// @Param       petTypeId  path  int  true  "Pet type ID"  example(1)
// @Success     200  {object}  domain.PetType
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /pettypes/{petTypeId} [get]
func (h *Handlers) GetPetType(c *gin.Context) {
	id, okay := pathID(c, "petTypeId")
	if !okay {
		return
	}
	t, err := h.clinic.FindPetTypeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetTypeNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet type lookup failed")
		return
	}
	ok(c, http.StatusOK, t)
}

// ListPetTypes godoc
// @ID          listPetTypes
// @Summary     List all pet types
// @Description Returns the type lookup table ordered by name. Also served at /pets/pettypes.
// @Tags        PetTypes
// @Produce     json
// @Success     200  {array}   domain.PetType
// @Failure     404  {string}  string "No pet types (empty body)"
// @Router      /pettypes [get]
func (h *Handlers) ListPetTypes(c *gin.Context) {
	types, err := h.clinic.FindAllPetTypes(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing pet types failed")
		return
	}
	if len(types) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, types)
}

// CreatePetType godoc
// @ID          createPetType
// @Summary     Create a pet type
// @Tags        PetTypes
// @Accept      json
// @Produce     json
// @Param       body  body  domain.PetType  true  "Pet type payload"
// @Success     201  {object}  domain.PetType
// @Header      201  {string}  Location  "URL of the created pet type"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Router      /pettypes [post]
func (h *Handlers) CreatePetType(c *gin.Context) {
	var t domain.PetType
	if err := c.ShouldBindJSON(&t); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "petType", t.ID) {
		return
	}
	if errs := t.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SavePetType(c.Request.Context(), &t); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving pet type failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *t.ID), t)
}

// UpdatePetType godoc
// @ID          updatePetType
// @Summary     Update a pet type
// @Tags        PetTypes
// @Accept      json
// @Param       petTypeId  path  int             true  "Pet type ID"  example(1)
// @Param       body       body  domain.PetType  true  "Pet type payload"
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /pettypes/{petTypeId} [put]
func (h *Handlers) UpdatePetType(c *gin.Context) {
	id, okay := pathID(c, "petTypeId")
	if !okay {
		return
	}
	var in domain.PetType
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "petType", in.ID, id) {
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}

	t, err := h.clinic.FindPetTypeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetTypeNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet type lookup failed")
		return
	}
	t.Name = in.Name
	if err := h.clinic.SavePetType(c.Request.Context(), t); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving pet type failed")
		return
	}
	noContent(c)
}

// DeletePetType godoc
// @ID          deletePetType
// @Summary     Delete a pet type
// @Description Deletes the type together with the pets that reference it and their visits.
// @Tags        PetTypes
// @Param       petTypeId  path  int  true  "Pet type ID"  example(1)
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /pettypes/{petTypeId} [delete]
func (h *Handlers) DeletePetType(c *gin.Context) {
	id, okay := pathID(c, "petTypeId")
	if !okay {
		return
	}
	t, err := h.clinic.FindPetTypeByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPetTypeNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "pet type lookup failed")
		return
	}
	if err := h.clinic.DeletePetType(c.Request.Context(), t); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting pet type failed")
		return
	}
	noContent(c)
}
