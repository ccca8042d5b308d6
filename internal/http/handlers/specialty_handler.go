// Specialty HTTP handlers. CRUD over the specialty lookup table; deleting a
// specialty also removes the vet join rows referencing it.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetSpecialty godoc
// @ID          getSpecialty
// @Summary     Fetch a specialty
// @Tags        Specialties
// @Produce     json
// @Param       specialtyId  path  int  true  "Specialty ID"  example(1)
// @Success     200  {object}  domain.Specialty
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /specialties/{specialtyId} [get]
func (h *Handlers) GetSpecialty(c *gin.Context) {
	id, okay := pathID(c, "specialtyId")
	if !okay {
		return
	}
	spec, err := h.clinic.FindSpecialtyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSpecialtyNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "specialty lookup failed")
		return
	}
	ok(c, http.StatusOK, spec)
}

// ListSpecialties godoc
// @ID          listSpecialties
// @Summary     List all specialties
// @Tags        Specialties
// @Produce     json
// @Success     200  {array}   domain.Specialty
// @Failure     404  {string}  string "No specialties (empty body)"
// @Router      /specialties [get]
func (h *Handlers) ListSpecialties(c *gin.Context) {
	specs, err := h.clinic.FindAllSpecialties(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing specialties failed")
		return
	}
	if len(specs) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, specs)
}

// CreateSpecialty godoc
// @ID          createSpecialty
// @Summary     Create a specialty
// @Tags        Specialties
// @Accept      json
// @Produce     json
// @Param       body  body  domain.Specialty  true  "Specialty payload"
// @Success     201  {object}  domain.Specialty
// @Header      201  {string}  Location  "URL of the created specialty"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Router      /specialties [post]
func (h *Handlers) CreateSpecialty(c *gin.Context) {
	var spec domain.Specialty
	if err := c.ShouldBindJSON(&spec); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "specialty", spec.ID) {
		return
	}
	if errs := spec.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SaveSpecialty(c.Request.Context(), &spec); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving specialty failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *spec.ID), spec)
}

// UpdateSpecialty godoc
// @ID          updateSpecialty
// @Summary     Update a specialty
// @Tags        Specialties
// @Accept      json
// @Param       specialtyId  path  int               true  "Specialty ID"  example(1)
// @Param       body         body  domain.Specialty  true  "Specialty payload"
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /specialties/{specialtyId} [put]
func (h *Handlers) UpdateSpecialty(c *gin.Context) {
	id, okay := pathID(c, "specialtyId")
	if !okay {
		return
	}
	var in domain.Specialty
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "specialty", in.ID, id) {
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}

	spec, err := h.clinic.FindSpecialtyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSpecialtyNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "specialty lookup failed")
		return
	}
	spec.Name = in.Name
	if err := h.clinic.SaveSpecialty(c.Request.Context(), spec); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving specialty failed")
		return
	}
	noContent(c)
}

// DeleteSpecialty godoc
// @ID          deleteSpecialty
// @Summary     Delete a specialty
// @Tags        Specialties
// @Param       specialtyId  path  int  true  "Specialty ID"  example(1)
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /specialties/{specialtyId} [delete]
func (h *Handlers) DeleteSpecialty(c *gin.Context) {
	id, okay := pathID(c, "specialtyId")
	if !okay {
		return
	}
	spec, err := h.clinic.FindSpecialtyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSpecialtyNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "specialty lookup failed")
		return
	}
	if err := h.clinic.DeleteSpecialty(c.Request.Context(), spec); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting specialty failed")
		return
	}
	noContent(c)
}
