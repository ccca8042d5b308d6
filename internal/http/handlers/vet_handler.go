// Vet HTTP handlers.
//
// Endpoints:
//   - GET    /vets           (list, ordered by last then first name)
//   - GET    /vets/{vetId}   (fetch with specialties)
//   - POST   /vets           (create)
//   - PUT    /vets/{vetId}   (update; replaces the specialty set)
//   - DELETE /vets/{vetId}   (delete; join rows only, specialties survive)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetVet godoc
// @ID          getVet
// @Summary     Fetch a vet
// @Tags        Vets
// @Produce     json
//
// @Param       vetId  path  int  true  "Vet ID"  example(1)
//
// @Success     200  {object}  domain.Vet
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /vets/{vetId} [get]
func (h *Handlers) GetVet(c *gin.Context) {
	id, okay := pathID(c, "vetId")
	if !okay {
		return
	}
	vet, err := h.clinic.FindVetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "vet lookup failed")
		return
	}
	ok(c, http.StatusOK, vet)
}

// ListVets godoc
// @ID          listVets
// @Summary     List all vets
// @Tags        Vets
// @Produce     json
//
// @Success     200  {array}   domain.Vet
// @Failure     404  {string}  string "No vets (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /vets [get]
func (h *Handlers) ListVets(c *gin.Context) {
	vets, err := h.clinic.FindAllVets(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing vets failed")
		return
	}
	if len(vets) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, vets)
}

// CreateVet godoc
// @ID          createVet
// @Summary     Create a vet
// @Description Creates a vet. The body must not carry an id; referenced specialties must already exist.
// @Tags        Vets
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Vet  true  "Vet payload"
//
// @Success     201  {object}  domain.Vet
// @Header      201  {string}  Location  "URL of the created vet"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /vets [post]
func (h *Handlers) CreateVet(c *gin.Context) {
	var vet domain.Vet
	if err := c.ShouldBindJSON(&vet); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "vet", vet.ID) {
		return
	}
	if errs := vet.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SaveVet(c.Request.Context(), &vet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving vet failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *vet.ID), vet)
}

// UpdateVet godoc
// @ID          updateVet
// @Summary     Update a vet
// @Description Replaces the vet's name and specialty set. The body id must be absent or equal to the path id.
// @Tags        Vets
// @Accept      json
//
// @Param       vetId  path  int         true  "Vet ID"  example(1)
// @Param       body   body  domain.Vet  true  "Vet payload"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /vets/{vetId} [put]
func (h *Handlers) UpdateVet(c *gin.Context) {
	id, okay := pathID(c, "vetId")
	if !okay {
		return
	}
	var in domain.Vet
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "vet", in.ID, id) {
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}

	vet, err := h.clinic.FindVetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "vet lookup failed")
		return
	}

	vet.FirstName = in.FirstName
	vet.LastName = in.LastName
	vet.SetSpecialties(in.Specialties())
	if err := h.clinic.SaveVet(c.Request.Context(), vet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving vet failed")
		return
	}
	noContent(c)
}

// DeleteVet godoc
// @ID          deleteVet
// @Summary     Delete a vet
// @Tags        Vets
//
// @Param       vetId  path  int  true  "Vet ID"  example(1)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /vets/{vetId} [delete]
func (h *Handlers) DeleteVet(c *gin.Context) {
	id, okay := pathID(c, "vetId")
	if !okay {
		return
	}
	vet, err := h.clinic.FindVetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVetNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "vet lookup failed")
		return
	}
	if err := h.clinic.DeleteVet(c.Request.Context(), vet); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting vet failed")
		return
	}
	noContent(c)
}
