package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"

	"github.com/nitgconnect/backend/internal/cache"
	"github.com/nitgconnect/backend/internal/config"
	"github.com/nitgconnect/backend/internal/database"
	"github.com/nitgconnect/backend/internal/handlers"
	"github.com/nitgconnect/backend/internal/identity"
	"github.com/nitgconnect/backend/internal/routes"
	"github.com/nitgconnect/backend/internal/services"
	"github.com/nitgconnect/backend/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	ctx := context.Background()

	fbCfg := database.FirebaseConfig{
		ProjectID:       cfg.FirebaseProjectID,
		CredentialsJSON: cfg.FirebaseCredentialsJSON,
		ClientEmail:     cfg.FirebaseClientEmail,
		PrivateKey:      cfg.FirebasePrivateKey,
	}

	var app *firebase.App
	if cfg.StoreBackend == "firestore" || cfg.IdentityBackend == "firebase" {
		var err error
		app, err = database.NewFirebaseApp(ctx, fbCfg)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase: %v", err)
		}
	}

	st := openStore(ctx, cfg, app)
	defer st.Close()

	listCache, closeCache := openListCache(ctx, cfg)
	defer closeCache()
	if listCache != nil {
		st = store.NewCachedStore(st, listCache, cfg.ListCacheTTL)
	}

	provider := openIdentity(ctx, cfg, app)
	images, uploadDir := openImages(ctx, cfg, fbCfg)

	handlers.SetRequestTimeout(cfg.RequestTimeout)

	router := routes.NewRouter(routes.Deps{
		Store:           st,
		Identity:        provider,
		Images:          images,
		MaxUploadSizeMB: cfg.MaxUploadSizeMB,
		UploadDir:       uploadDir,
		AllowedOrigins:  cfg.AllowedOrigins,
		AuthRequired:    cfg.AuthRequired,
		ExposeStack:     !cfg.IsProduction(),
		AccessLog:       true,
	})

	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("🚀 NITG Connect API starting on %s (store=%s, identity=%s, images=%s)",
			cfg.ServerAddress, cfg.StoreBackend, cfg.IdentityBackend, cfg.ImageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
}

// openListCache returns Redis when REDIS_URL is set and reachable, otherwise an in-process
// cache. A zero TTL or the memory store disables list caching.
func openListCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.ListCacheTTL <= 0 || cfg.StoreBackend == "memory" {
		return nil, func() {}
	}
	if cfg.RedisURL != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err == nil {
			return cache.NewRedis(rdb), func() { _ = rdb.Close() }
		}
		log.Printf("Warning: Redis unavailable, using in-process list cache: %v", err)
	}
	return cache.NewMemory(), func() {}
}

func openStore(ctx context.Context, cfg *config.Config, app *firebase.App) store.Store {
	switch cfg.StoreBackend {
	case "firestore":
		client, err := app.Firestore(ctx)
		if err != nil {
			log.Fatalf("Failed to open Firestore: %v", err)
		}
		log.Println("✅ Connected to Firestore")
		return store.NewFirestoreStore(client)
	case "mongo":
		client, err := database.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		ms := store.NewMongoStore(client, cfg.MongoDB)
		ms.EnsureIndexes(ctx, map[string][]string{
			services.CollectionLostFound:   {"createdAt"},
			services.CollectionNotices:     {"createdAt"},
			services.CollectionMarketplace: {"createdAt"},
			services.CollectionUsers:       {"name", "birthDate"},
			services.CollectionClubs:       {"name"},
		})
		return ms
	case "memory":
		log.Println("Warning: using in-memory store; data is lost on restart")
		return store.NewMemoryStore()
	default:
		log.Fatalf("Unknown STORE_BACKEND %q", cfg.StoreBackend)
		return nil
	}
}

func openIdentity(ctx context.Context, cfg *config.Config, app *firebase.App) identity.Provider {
	switch cfg.IdentityBackend {
	case "firebase":
		authClient, err := app.Auth(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize Firebase Auth client: %v", err)
		}
		if cfg.FirebaseWebAPIKey == "" {
			log.Println("Warning: FIREBASE_WEB_API_KEY not set; login and signup will fail")
		}
		return identity.NewFirebaseProvider(cfg.FirebaseWebAPIKey, authClient)
	case "local":
		log.Println("Warning: using local identity provider; accounts are lost on restart")
		return identity.NewLocalProvider(cfg.JWTSecret, cfg.JWTExpiration)
	default:
		log.Fatalf("Unknown IDENTITY_BACKEND %q", cfg.IdentityBackend)
		return nil
	}
}

// openImages returns the image service and, for the local backend, the directory to serve.
func openImages(ctx context.Context, cfg *config.Config, fbCfg database.FirebaseConfig) (*services.ImageService, string) {
	switch cfg.ImageBackend {
	case "local":
		local, err := services.NewLocalImageStore(cfg.UploadDir, "/uploads")
		if err != nil {
			log.Fatalf("Failed to prepare upload dir: %v", err)
		}
		return services.NewImageService(local), cfg.UploadDir
	case "gcs":
		if cfg.GCSBucket == "" {
			log.Fatal("GCS_BUCKET is required for IMAGE_BACKEND=gcs")
		}
		client, err := database.NewStorageClient(ctx, fbCfg)
		if err != nil {
			log.Fatalf("Failed to open Cloud Storage: %v", err)
		}
		return services.NewImageService(services.NewGCSImageStore(client, cfg.GCSBucket, "uploads")), ""
	case "cloudinary":
		cld, err := services.NewCloudinaryImageStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		return services.NewImageService(cld), ""
	case "none", "":
		return nil, ""
	default:
		log.Fatalf("Unknown IMAGE_BACKEND %q", cfg.ImageBackend)
		return nil, ""
	}
}
