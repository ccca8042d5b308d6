// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, authorization, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/vetware/go-clinic-backend/internal/config"
	"github.com/vetware/go-clinic-backend/internal/http/handlers"
	"github.com/vetware/go-clinic-backend/internal/http/middleware"
	"github.com/vetware/go-clinic-backend/internal/repo"
	"github.com/vetware/go-clinic-backend/internal/services"
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), rate limiting,
// CORS, security headers, optional role-based authorization, health and
// metrics endpoints, and then mounts the public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Gzip compression
//  7. Metrics
//  8. Rate limiter (per user/IP)
//  9. CORS and security headers
//  10. RoleGuard (only when auth is enabled)
func RegisterRoutes(r *gin.Engine, store *repo.Store, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured access logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Response compression
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	// 7) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 8) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 9) CORS posture (safe defaults: allow all if none configured). The
	// "errors" header carries validation failures and must stay readable by
	// browser clients.
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "Location", "errors"}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "route not found")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Swagger UI (gated; off in production by default)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← store
	clinicSvc := services.NewClinicService(store)
	userSvc := services.NewUserService(store.Users)

	// 10) HTTP Basic + role checks for /api routes
	if cfg.AuthEnabled {
		r.Use(middleware.RoleGuard(userSvc, cfg.APIBasePath))
	}

	h := handlers.New(clinicSvc, userSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	{
		// Owners
		api.GET("/owners", h.ListOwners)
		api.POST("/owners", h.CreateOwner)
		api.GET("/owners/:ownerId", h.GetOwner)
		api.PUT("/owners/:ownerId", h.UpdateOwner)
		api.DELETE("/owners/:ownerId", h.DeleteOwner)
		api.GET("/owners/:ownerId/lastname/:lastName", h.GetOwnersByLastName)

		// Pets (GET /pets/pettypes is dispatched inside GetPet; Gin cannot
		// register the literal segment next to the :petId parameter)
		api.GET("/pets", h.ListPets)
		api.POST("/pets", h.CreatePet)
		api.GET("/pets/:petId", h.GetPet)
		api.PUT("/pets/:petId", h.UpdatePet)
		api.DELETE("/pets/:petId", h.DeletePet)

		// Pet types
		api.GET("/pettypes", h.ListPetTypes)
		api.POST("/pettypes", h.CreatePetType)
		api.GET("/pettypes/:petTypeId", h.GetPetType)
		api.PUT("/pettypes/:petTypeId", h.UpdatePetType)
		api.DELETE("/pettypes/:petTypeId", h.DeletePetType)

		// Specialties
		api.GET("/specialties", h.ListSpecialties)
		api.POST("/specialties", h.CreateSpecialty)
		api.GET("/specialties/:specialtyId", h.GetSpecialty)
		api.PUT("/specialties/:specialtyId", h.UpdateSpecialty)
		api.DELETE("/specialties/:specialtyId", h.DeleteSpecialty)

		// Vets
		api.GET("/vets", h.ListVets)
		api.POST("/vets", h.CreateVet)
		api.GET("/vets/:vetId", h.GetVet)
		api.PUT("/vets/:vetId", h.UpdateVet)
		api.DELETE("/vets/:vetId", h.DeleteVet)

		// Visits
		api.GET("/visits", h.ListVisits)
		api.POST("/visits", h.CreateVisit)
		api.GET("/visits/:visitId", h.GetVisit)
		api.PUT("/visits/:visitId", h.UpdateVisit)
		api.DELETE("/visits/:visitId", h.DeleteVisit)

		// Users
		api.POST("/users", h.CreateUser)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
