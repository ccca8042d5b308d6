// Owner HTTP handlers.
//
// Endpoints:
//   - GET    /owners                          (list)
//   - GET    /owners/{ownerId}                (fetch aggregate)
//   - GET    /owners/{ownerId}/lastname/{lastName} (prefix search; ownerId is ignored)
//   - POST   /owners                          (create)
//   - PUT    /owners/{ownerId}                (update)
//   - DELETE /owners/{ownerId}                (delete with cascades)
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// GetOwner godoc
// @ID          getOwner
// @Summary     Fetch an owner
// @Description Returns the owner aggregate (pets and their visits included).
// @Tags        Owners
// @Produce     json
//
// @Param       ownerId  path  int  true  "Owner ID"  example(1)
//
// @Success     200  {object}  domain.Owner
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     404  {string}  string "Not found (empty body)"
// @Router      /owners/{ownerId} [get]
func (h *Handlers) GetOwner(c *gin.Context) {
	id, okay := pathID(c, "ownerId")
	if !okay {
		return
	}
	owner, err := h.clinic.FindOwnerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "owner lookup failed")
		return
	}
	ok(c, http.StatusOK, owner)
}

// ListOwners godoc
// @ID          listOwners
// @Summary     List all owners
// @Tags        Owners
// @Produce     json
//
// @Success     200  {array}   domain.Owner
// @Failure     404  {string}  string "No owners (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /owners [get]
func (h *Handlers) ListOwners(c *gin.Context) {
	owners, err := h.clinic.FindAllOwners(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "listing owners failed")
		return
	}
	if len(owners) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, owners)
}

// GetOwnersByLastName godoc
// @ID          getOwnersByLastName
// @Summary     Find owners by last name prefix
// @Tags        Owners
// @Produce     json
//
// @Param       lastName  path  string  true  "Last name prefix"  example(Davis)
//
// @Success     200  {array}   domain.Owner
// @Failure     404  {string}  string "No matching owners (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /owners/*/lastname/{lastName} [get]
func (h *Handlers) GetOwnersByLastName(c *gin.Context) {
	owners, err := h.clinic.FindOwnersByLastName(c.Request.Context(), c.Param("lastName"))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, "owner search failed")
		return
	}
	if len(owners) == 0 {
		notFound(c)
		return
	}
	ok(c, http.StatusOK, owners)
}

// CreateOwner godoc
// @ID          createOwner
// @Summary     Create an owner
// @Description Creates an owner. The body must not carry an id; validation failures are reported in the "errors" header.
// @Tags        Owners
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.Owner  true  "Owner payload"
//
// @Success     201  {object}  domain.Owner
// @Header      201  {string}  Location  "URL of the created owner"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /owners [post]
func (h *Handlers) CreateOwner(c *gin.Context) {
	var owner domain.Owner
	if err := c.ShouldBindJSON(&owner); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkNewID(c, "owner", owner.ID) {
		return
	}
	if errs := owner.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.clinic.SaveOwner(c.Request.Context(), &owner); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving owner failed")
		return
	}
	created(c, fmt.Sprintf("%s/%d", c.Request.URL.Path, *owner.ID), owner)
}

// UpdateOwner godoc
// @ID          updateOwner
// @Summary     Update an owner
// @Description Replaces the owner's editable fields. The body id must be absent or equal to the path id.
// @Tags        Owners
// @Accept      json
//
// @Param       ownerId  path  int           true  "Owner ID"  example(1)
// @Param       body     body  domain.Owner  true  "Owner payload"
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /owners/{ownerId} [put]
func (h *Handlers) UpdateOwner(c *gin.Context) {
	id, okay := pathID(c, "ownerId")
	if !okay {
		return
	}
	var in domain.Owner
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if !checkMatchingID(c, "owner", in.ID, id) {
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}

	owner, err := h.clinic.FindOwnerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "owner lookup failed")
		return
	}

	owner.FirstName = in.FirstName
	owner.LastName = in.LastName
	owner.Address = in.Address
	owner.City = in.City
	owner.Telephone = in.Telephone
	if err := h.clinic.SaveOwner(c.Request.Context(), owner); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving owner failed")
		return
	}
	noContent(c)
}

// DeleteOwner godoc
// @ID          deleteOwner
// @Summary     Delete an owner
// @Description Deletes the owner together with its pets and their visits.
// @Tags        Owners
//
// @Param       ownerId  path  int  true  "Owner ID"  example(1)
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {string}  string "Not found (empty body)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /owners/{ownerId} [delete]
func (h *Handlers) DeleteOwner(c *gin.Context) {
	id, okay := pathID(c, "ownerId")
	if !okay {
		return
	}
	owner, err := h.clinic.FindOwnerByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrOwnerNotFound) {
			notFound(c)
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "owner lookup failed")
		return
	}
	if err := h.clinic.DeleteOwner(c.Request.Context(), owner); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, "deleting owner failed")
		return
	}
	noContent(c)
}
