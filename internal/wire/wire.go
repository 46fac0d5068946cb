// internal/wire/wire.go
package wire

import (
	"net/http"
	"strings"

	"insekta-dashboard/internal/adaptor"
	"insekta-dashboard/internal/data/repository"
	"insekta-dashboard/internal/usecase"
	"insekta-dashboard/pkg/middleware"
	"insekta-dashboard/pkg/storage"
	"insekta-dashboard/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards are the per-route middleware chains.
type guards struct {
	authed chi.Middlewares // valid session, password already changed (or exempt)
	admin  chi.Middlewares // authed + role admin
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, deps usecase.Deps, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, config, logger)

	// Setup router
	router := setupRouter(handler, repo, deps, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	deps usecase.Deps,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.ClientURL))

	authenticate := middleware.Authenticate(repo.User, config.JWT, logger)
	passwordGate := middleware.RequirePasswordChange(logger)
	g := &guards{
		authed: chi.Chain(authenticate, passwordGate),
		admin:  chi.Chain(authenticate, passwordGate, middleware.Admin(logger)),
	}

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wireFeature(r, handler.Feature, g)
	wireBanner(r, handler.Banner, g)
	wireChart(r, handler.Chart, g)
	wireTeam(r, handler.Team, g)
	wireDashboard(r, handler.Dashboard, g)

	wireUploads(r, deps.Storage, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})

	return r
}

// wireUploads serves local uploads; S3 objects are public on their own URL.
func wireUploads(r chi.Router, store storage.Provider, log *zap.Logger) {
	local, ok := store.(*storage.LocalStorage)
	if !ok {
		return
	}

	prefix := "/" + strings.Trim(local.URLPrefix(), "/")
	fs := http.StripPrefix(prefix+"/", http.FileServer(http.Dir(local.Root())))
	r.Get(prefix+"/*", fs.ServeHTTP)

	log.Info("Serving local uploads", zap.String("prefix", prefix), zap.String("root", local.Root()))
}
