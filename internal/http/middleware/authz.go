// Package middleware contains shared Gin middleware used by the HTTP layer.
//
// This file implements RoleGuard, an HTTP Basic authentication and role-based
// authorization middleware. Each API area maps to a required role; a request
// passes when the authenticated user holds any role the matched rule allows.
package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
)

// authUserKey is the Gin context key holding the authenticated username.
// Consumed by Logger for per-request log fields and by KeyByUserOrIP for
// rate-limit bucketing.
const authUserKey = "authUser"

// Role names recognized by the authorization rules.
const (
	RoleOwnerAdmin = "ROLE_OWNER_ADMIN"
	RoleVetAdmin   = "ROLE_VET_ADMIN"
	RoleAdmin      = "ROLE_ADMIN"
)

// UserLookup resolves a username to a stored user. Implemented by the user
// service.
type UserLookup interface {
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// authRule maps a path prefix (relative to the API base path) to the roles
// allowed to call it. Methods restricts the rule to specific HTTP methods;
// empty means all methods.
type authRule struct {
	prefix  string
	methods []string
	roles   []string
}

// authRules is evaluated in order; the first matching rule wins. Reading pet
// types is open to both clinic roles, everything else under an area requires
// that area's admin role.
var authRules = []authRule{
	{prefix: "/pettypes", methods: []string{http.MethodGet}, roles: []string{RoleOwnerAdmin, RoleVetAdmin}},
	{prefix: "/pettypes", roles: []string{RoleVetAdmin}},
	{prefix: "/pets/pettypes", methods: []string{http.MethodGet}, roles: []string{RoleOwnerAdmin, RoleVetAdmin}},
	{prefix: "/owners", roles: []string{RoleOwnerAdmin}},
	{prefix: "/pets", roles: []string{RoleOwnerAdmin}},
	{prefix: "/visits", roles: []string{RoleOwnerAdmin}},
	{prefix: "/vets", roles: []string{RoleVetAdmin}},
	{prefix: "/specialties", roles: []string{RoleVetAdmin}},
	{prefix: "/users", roles: []string{RoleAdmin}},
}

// RoleGuard returns a Gin middleware enforcing HTTP Basic authentication and
// per-area role checks for paths under basePath. Requests outside basePath
// (health, metrics, swagger) pass through untouched.
//
// Failures produce 401 with a WWW-Authenticate challenge when credentials are
// missing or wrong, and 403 when the user lacks the required role.
func RoleGuard(users UserLookup, basePath string) gin.HandlerFunc {
	basePath = strings.TrimSuffix(basePath, "/")
	return func(c *gin.Context) {
		rel, ok := strings.CutPrefix(c.Request.URL.Path, basePath)
		if !ok || (rel != "" && !strings.HasPrefix(rel, "/")) {
			c.Next()
			return
		}

		rule := matchRule(c.Request.Method, rel)
		if rule == nil {
			c.Next()
			return
		}

		username, password, ok := c.Request.BasicAuth()
		if !ok {
			challenge(c)
			return
		}

		user, err := users.FindUserByUsername(c.Request.Context(), username)
		if err != nil || !user.Enabled || !passwordMatches(user.Password, password) {
			challenge(c)
			return
		}

		allowed := false
		for _, role := range rule.roles {
			if user.HasRole(role) {
				allowed = true
				break
			}
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"request_id": c.Writer.Header().Get("X-Request-ID"),
				"code":       "forbidden",
				"message":    "insufficient role",
			})
			return
		}

		c.Set(authUserKey, user.Username)
		c.Next()
	}
}

// matchRule returns the first rule matching method and the base-relative path,
// or nil when no rule applies.
func matchRule(method, rel string) *authRule {
	for i := range authRules {
		r := &authRules[i]
		if rel != r.prefix && !strings.HasPrefix(rel, r.prefix+"/") {
			continue
		}
		if len(r.methods) > 0 && !containsString(r.methods, method) {
			continue
		}
		return r
	}
	return nil
}

func containsString(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// passwordMatches compares the stored and presented passwords in constant
// time.
func passwordMatches(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

func challenge(c *gin.Context) {
	c.Header("WWW-Authenticate", `Basic realm="clinic", charset="UTF-8"`)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"request_id": c.Writer.Header().Get("X-Request-ID"),
		"code":       "unauthorized",
		"message":    "authentication required",
	})
}
