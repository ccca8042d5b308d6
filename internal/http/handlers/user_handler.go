// User HTTP handlers. Accounts are created (or replaced) via POST; there is
// no read surface for credentials.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// CreateUser godoc
// @ID          createUser
// @Summary     Create a user
// @Description Creates or replaces a user account. At least one role is required; role names are normalized to the ROLE_ prefix.
// @Tags        Users
// @Accept      json
// @Produce     json
//
// @Param       body  body  domain.User  true  "User payload"
//
// @Success     201  {object}  domain.User
// @Header      201  {string}  Location  "URL of the created user"
// @Failure     400  {string}  string "Validation failure (see errors header)"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if errs := user.Validate(); len(errs) > 0 {
		bindingErrors(c, errs)
		return
	}
	if err := h.users.SaveUser(c.Request.Context(), &user); err != nil {
		if errors.Is(err, services.ErrNoRoles) {
			bindingErrors(c, []domain.FieldError{{
				ObjectName:   "user",
				FieldName:    "roles",
				ErrorMessage: "must include at least one role",
			}})
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeSaveFailed, "saving user failed")
		return
	}
	created(c, c.Request.URL.Path+"/"+user.Username, user)
}
