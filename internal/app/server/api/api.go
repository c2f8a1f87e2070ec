// Package api assembles the HTTP surface of the clinic backend.
//
// POST /login                              login, sets session cookie (public)
// POST /logout                             clears the cookie (public)
// GET  /me                                 current user (auth)
// GET  /patients/                          patient summaries (auth)
// GET  /patients/{id}                      full record (auth)
// POST /patients/new                       create (auth)
// POST /patients/{id}                      merge-update (auth)
// GET  /users/                             user list (auth, admin)
// GET  /permissions/options                modules and levels (public)
// POST /permissions/{username}/permissions replace mapping (auth, admin)
// GET  /dashboard                          visible module cards (auth)
// GET/POST /appointments/...               appointment book (no auth check)
package api

import (
	"strings"

	"clinikit/internal/app/server/api/http/appointments"
	authAPI "clinikit/internal/app/server/api/http/auth"
	"clinikit/internal/app/server/api/http/dashboard"
	"clinikit/internal/app/server/api/http/health"
	"clinikit/internal/app/server/api/http/middleware"
	authMW "clinikit/internal/app/server/api/http/middleware/auth"
	loggerMW "clinikit/internal/app/server/api/http/middleware/logger"
	metricsMW "clinikit/internal/app/server/api/http/middleware/metrics"
	rateMW "clinikit/internal/app/server/api/http/middleware/ratelimit"
	"clinikit/internal/app/server/api/http/patients"
	"clinikit/internal/app/server/api/http/permissions"
	"clinikit/internal/app/server/api/http/users"
	"clinikit/internal/config"
	"clinikit/internal/domain/appointment"
	"clinikit/internal/domain/patient"
	"clinikit/internal/domain/session"
	"clinikit/internal/domain/user"
	"clinikit/internal/infrastructure/storage/sqlite"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
	"golang.org/x/time/rate"
)

const (
	rateLimitPerSecond = 50
	rateLimitBurst     = 100
)

type Handlers struct {
	Health       *health.Handler
	Auth         *authAPI.Handler
	Patients     *patients.Handler
	Users        *users.Handler
	Permissions  *permissions.Handler
	Dashboard    *dashboard.Handler
	Appointments *appointments.Handler
}

// New builds the chi mux with every operation registered through huma.
func New(storage *sqlite.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	// The session cookie is SameSite=None, so the browser frontend is
	// always cross-origin and credentialed.
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.Server.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	registry := prometheus.NewRegistry()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	humaConfig := huma.DefaultConfig("CliniKit API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {Type: "apiKey", In: "cookie", Name: session.CookieName},
	}

	API := humachi.New(mux, humaConfig)

	h := handlers(storage, registry, log)
	h.Health.SetupRoutes(API)
	h.Auth.SetupRoutes(API)
	h.Patients.SetupRoutes(API)
	h.Users.SetupRoutes(API)
	h.Permissions.SetupRoutes(API)
	h.Dashboard.SetupRoutes(API)
	h.Appointments.SetupRoutes(API)

	return mux
}

func handlers(storage *sqlite.Storage, registry *prometheus.Registry, log *slog.Logger) *Handlers {
	userRepo := sqlite.NewUserRepository(storage, log)
	moduleRepo := sqlite.NewModuleRepository(storage, log)
	patientRepo := sqlite.NewPatientRepository(storage, log)

	userService := user.NewService(userRepo, log)
	sessionService := session.NewService(userRepo, log)
	patientService := patient.NewService(patientRepo, log)
	appointmentService := appointment.NewService(log)

	sessionMW := authMW.New(sessionService, log)
	requestMW := loggerMW.New(log)
	countMW := metricsMW.New(registry)
	limitMW := rateMW.New(rate.Limit(rateLimitPerSecond), rateLimitBurst, log)
	middlewares := middleware.NewContainer()

	public := func() {
		middlewares.Add(limitMW.Middleware())
		middlewares.Add(countMW.Middleware())
		middlewares.Add(requestMW.Middleware())
	}
	protected := func() {
		public()
		middlewares.Add(sessionMW.Middleware())
	}

	public()
	healthHandler := health.NewHandler(log, middlewares.GetAllAndClear())

	public()
	authPublic := middlewares.GetAllAndClear()
	protected()
	authHandler := authAPI.NewHandler(sessionService, log, authPublic, middlewares.GetAllAndClear())

	protected()
	patientsHandler := patients.NewHandler(patientService, log, middlewares.GetAllAndClear())

	protected()
	usersHandler := users.NewHandler(userService, log, middlewares.GetAllAndClear())

	public()
	permissionsPublic := middlewares.GetAllAndClear()
	protected()
	permissionsHandler := permissions.NewHandler(userService, moduleRepo, log, permissionsPublic, middlewares.GetAllAndClear())

	protected()
	dashboardHandler := dashboard.NewHandler(moduleRepo, log, middlewares.GetAllAndClear())

	// No session middleware here on purpose; see DESIGN.md.
	public()
	appointmentsHandler := appointments.NewHandler(appointmentService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:       healthHandler,
		Auth:         authHandler,
		Patients:     patientsHandler,
		Users:        usersHandler,
		Permissions:  permissionsHandler,
		Dashboard:    dashboardHandler,
		Appointments: appointmentsHandler,
	}
}
