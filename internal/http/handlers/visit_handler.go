// Visit HTTP handlers.
//
// Endpoints:
//   - GET    /visits             (list)
//   - GET    /visits/{visitId}   (fetch)
//   - POST   /visits             (create; requires an attached pet)
//   - PUT    /visits/{visitId}   (update)
//   - DELETE /visits/{visitId}   (delete)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetVisit godoc
// @ID          getVisit
// @Summary     Fetch a visit
// @Tags        Visits
// @Produce     json
//
// @Param       visitId  path  int  true  "Visit ID"  example(1)
//
// @Success     200  {object}  domain.Visit
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /visits/{visitId} [get]
func (h *Handlers) GetVisit(c *gin.Context) {
	id, okay := pathID(c, "visitId")
	if !okay {
		return
	}
	visit, err := h.clinic.FindVisitByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "visit lookup failed")
		return
	}
	ok(c, http.StatusOK, visit)
}

// ListVisits godoc
// @ID          listVisits
// @Summary     List all visits
// @Tags        Visits
// @Produce     json
//
// @Success     200  {array}   domain.Visit
// @Failure     404  {string}  string "No visits (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /visits [get]
func (h *Handlers) ListVisits(c *gin.Context) {
	visits, err := h.clinic.FindAllVisits(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing visits failed")
		return
	}
	if len(visits) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, visits)
}

// CreateVisit godoc
// @ID          createVisit
// @Summary     Create a visit
// @Description Creates a visit. The body must not carry an id and must reference a pet.
// @Tags        Visits
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Visit  true  "Visit payload"
//
// @Success     201  {object}  domain.Visit
// @Header      201  {string}  Location  "URL of the created visit"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /visits [post]
func (h *Handlers) CreateVisit(c *gin.Context) {
	var visit domain.Visit
	if err := c.ShouldBindJSON(&visit); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "visit", visit.ID) {
		return
	}
	if errs := visit.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SaveVisit(c.Request.Context(), &visit); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving visit failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *visit.ID), visit)
}

// UpdateVisit godoc
// @ID          updateVisit
// @Summary     Update a visit
// @Description Replaces the visit's date and description. The body id must be absent or equal to the path id.
// @Tags        Visits
// @Accept      json
//
// @Param       visitId  path  int           true  "Visit ID"  example(1)
// @Param       body     body  domain.Visit  true  "Visit payload"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /visits/{visitId} [put]
func (h *Handlers) UpdateVisit(c *gin.Context) {
	id, okay := pathID(c, "visitId")
	if !okay {
		return
	}
	var in domain.Visit
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "visit", in.ID, id) {
		return
	}

	visit, err := h.clinic.FindVisitByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "visit lookup failed")
		return
	}

	visit.Date = in.Date
	visit.Description = in.Description
	if in.PetID != nil {
		visit.PetID = in.PetID
	}
	if errs := visit.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SaveVisit(c.Request.Context(), visit); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving visit failed")
		return
	}
	noContent(c)
}

// DeleteVisit godoc
// @ID          deleteVisit
// @Summary     Delete a visit
// @Tags        Visits
//
// @Param       visitId  path  int  true  "Visit ID"  example(1)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /visits/{visitId} [delete]
func (h *Handlers) DeleteVisit(c *gin.Context) {
	id, okay := pathID(c, "visitId")
	if !okay {
		return
	}
	visit, err := h.clinic.FindVisitByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrVisitNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "visit lookup failed")
		return
	}
	if err := h.clinic.DeleteVisit(c.Request.Context(), visit); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting visit failed")
		return
	}
	noContent(c)
}
