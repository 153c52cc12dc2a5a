// Package routes assembles the HTTP router.
package routes

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/nitgconnect/backend/internal/handlers"
	"github.com/nitgconnect/backend/internal/identity"
	appMiddleware "github.com/nitgconnect/backend/internal/middleware"
	"github.com/nitgconnect/backend/internal/models"
	"github.com/nitgconnect/backend/internal/services"
	"github.com/nitgconnect/backend/internal/store"
)

// Deps is everything the router needs. Images may be nil, which disables the upload routes.
type Deps struct {
	Store           store.Store
	Identity        identity.Provider
	Images          *services.ImageService
	MaxUploadSizeMB int64
	UploadDir       string // served under /uploads when set

	AllowedOrigins []string
	AuthRequired   bool
	ExposeStack    bool
	AccessLog      bool
}

func NewRouter(d Deps) http.Handler {
	users := services.NewUserService(d.Store)

	lostFoundHandler := handlers.NewLostFoundHandler(services.NewLostFoundService(d.Store))
	noticeHandler := handlers.NewNoticeHandler(services.NewNoticeService(d.Store))
	marketplaceHandler := handlers.NewMarketplaceHandler(services.NewMarketplaceService(d.Store))
	userHandler := handlers.NewUserHandler(users)
	clubHandler := handlers.NewClubHandler(services.NewClubService(d.Store))
	birthdayHandler := handlers.NewBirthdayHandler(services.NewBirthdayService(d.Store))
	authHandler := handlers.NewAuthHandler(services.NewAuthService(d.Identity, users))

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	// Global middleware
	if d.AccessLog {
		r.Use(chimw.Logger)
	}
	r.Use(appMiddleware.Recoverer(d.ExposeStack))
	r.Use(chimw.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok", Message: "NITG Connect API is running"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/signup", authHandler.Signup)
			r.Post("/verify", authHandler.Verify)
		})

		r.Group(func(r chi.Router) {
			if d.AuthRequired {
				r.Use(appMiddleware.RequireToken(d.Identity))
			}

			r.Route("/lost-found", func(r chi.Router) {
				r.Get("/", lostFoundHandler.List)
				r.Post("/", lostFoundHandler.Create)
				r.Get("/{id}", lostFoundHandler.Get)
				r.Put("/{id}", lostFoundHandler.Update)
				r.Delete("/{id}", lostFoundHandler.Delete)
			})

			r.Route("/notices", func(r chi.Router) {
				r.Get("/", noticeHandler.List)
				r.Post("/", noticeHandler.Create)
				r.Get("/{id}", noticeHandler.Get)
				r.Put("/{id}", noticeHandler.Update)
				r.Delete("/{id}", noticeHandler.Delete)
			})

			r.Route("/marketplace", func(r chi.Router) {
				r.Get("/", marketplaceHandler.List)
				r.Post("/", marketplaceHandler.Create)
				r.Get("/{id}", marketplaceHandler.Get)
				r.Put("/{id}", marketplaceHandler.Update)
				r.Delete("/{id}", marketplaceHandler.Delete)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
			})

			r.Route("/clubs", func(r chi.Router) {
				r.Get("/", clubHandler.List)
				r.Post("/", clubHandler.Create)
				r.Get("/{id}", clubHandler.Get)
				r.Delete("/{id}", clubHandler.Delete)
			})

			r.Get("/birthdays", birthdayHandler.List)

			if d.Images != nil {
				imageHandler := handlers.NewImageHandler(d.Images, d.MaxUploadSizeMB)
				r.Post("/upload", imageHandler.Upload)
				r.Delete("/upload/{imageId}", imageHandler.Delete)
			}
		})
	})

	// Serve uploaded files
	if d.UploadDir != "" {
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(d.UploadDir))))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.NewErrorResponse("Route not found"))
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
