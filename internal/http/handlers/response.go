// Package handlers provides HTTP handler implementations for the public API.
//
// This file defines the response utilities shared by all endpoints. The API
// follows a strict status contract: 200 for reads, 201 with a Location header
// for creates, 204 with no body for updates and deletes, 404 with an empty
// body when an entity (or a listed collection) is absent, and 400 carrying an
// "errors" header with a JSON array of field errors for validation failures.
// Server faults use the ErrorResponse envelope.
//
// Example validation failure:
//
//	HTTP/1.1 400 Bad Request
//	errors: [{"objectName":"owner","fieldName":"id","fieldValue":"7","errorMessage":"must not be specified"}]
//
// Example server fault:
//
//	HTTP/1.1 500 Internal Server Error
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "internal_error",
//	  "message": "save failed"
//	}
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vetware/go-clinic-backend/internal/domain"
	"github.com/vetware/go-clinic-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned for server faults and
// framework-level rejections (rate limiting, auth, unknown routes).
//
// RequestID echoes the X-Request-ID header so client errors can be correlated
// with server logs. Code is a stable machine-readable string from errors.go.
type ErrorResponse struct {
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	Code      string `json:"code" example:"internal_error"`
	Message   string `json:"message" example:"save failed"`
}

// fail aborts the request with a structured error envelope and logs
// server-side (>=500) errors with the request-scoped logger.
func fail(c *gin.Context, status int, code, msg string) {
	reqID := c.Writer.Header().Get("X-Request-ID")
	resp := ErrorResponse{
		RequestID: reqID,
		Code:      code,
		Message:   msg,
	}

	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("code", code).
			Str("message", msg).
			Msg("api error")
	}

	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail(), used by router fallbacks.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// created writes a 201 response with a Location header pointing at the new
// resource and the resource itself as the body.
func created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// notFound writes an HTTP 404 with an empty body and stops the chain.
func notFound(c *gin.Context) {
	c.AbortWithStatus(http.StatusNotFound)
}

// bindingErrors writes a 400 response whose "errors" header carries the JSON
// array of field errors. The body stays empty; the header is exposed to
// browser clients so they can read it cross-origin.
func bindingErrors(c *gin.Context, errs []domain.FieldError) {
	payload, err := json.Marshal(errs)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "encoding validation errors failed")
		return
	}
	h := c.Writer.Header()
	h.Set("errors", string(payload))
	const hdr = "Access-Control-Expose-Headers"
	cur := h.Get(hdr)
	if cur == "" {
		h.Set(hdr, "errors")
	} else if !strings.Contains(cur, "errors") {
		h.Set(hdr, cur+", errors")
	}
	c.AbortWithStatus(http.StatusBadRequest)
}

// pathID parses the named integer path parameter, writing a 400 and returning
// ok=false when it is not a valid integer.
func pathID(c *gin.Context, name string) (int, bool) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be an integer")
		return 0, false
	}
	return id, true
}

// idMismatch builds the field error reported when a request body carries an
// id that conflicts with the path, or an id where none is allowed.
func idMismatch(object string, bodyID *int, msg string) []domain.FieldError {
	value := ""
	if bodyID != nil {
		value = strconv.Itoa(*bodyID)
	}
	return []domain.FieldError{{
		ObjectName:   object,
		FieldName:    "id",
		FieldValue:   value,
		ErrorMessage: msg,
	}}
}

// checkNewID enforces the create contract: the body must not carry an id.
// Returns false (after writing the 400) when the id is present.
func checkNewID(c *gin.Context, object string, bodyID *int) bool {
	if bodyID == nil {
		return true
	}
	bindingErrors(c, idMismatch(object, bodyID, "must not be specified"))
	return false
}

// checkMatchingID enforces the update contract: the body id must be absent or
// equal to the path id. Returns false (after writing the 400) on mismatch.
func checkMatchingID(c *gin.Context, object string, bodyID *int, pathID int) bool {
	if bodyID == nil || *bodyID == pathID {
		return true
	}
	bindingErrors(c, idMismatch(object, bodyID, "does not match pathId: "+strconv.Itoa(pathID)))
	return false
}
