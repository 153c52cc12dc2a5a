package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServerAddress   string
	Env             string
	AllowedOrigins  []string
	AuthRequired    bool
	RequestTimeout  time.Duration
	StoreBackend    string // firestore, mongo or memory
	IdentityBackend string // firebase or local

	FirebaseProjectID       string
	FirebaseCredentialsJSON string
	FirebaseClientEmail     string
	FirebasePrivateKey      string
	FirebaseWebAPIKey       string

	JWTSecret     string
	JWTExpiration time.Duration

	MongoURI string
	MongoDB  string

	RedisURL     string
	ListCacheTTL time.Duration // zero disables the list cache

	ImageBackend        string // local, gcs or cloudinary
	UploadDir           string
	MaxUploadSizeMB     int64
	GCSBucket           string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
}

func Load() *Config {
	addr := getEnv("SERVER_ADDRESS", "")
	if addr == "" {
		port := getEnv("PORT", "")
		if port == "" {
			port = "3000"
		}
		addr = ":" + port
	}

	return &Config{
		ServerAddress:   addr,
		Env:             getEnv("ENV", "development"),
		AllowedOrigins:  splitList(getEnv("ALLOWED_ORIGINS", "*")),
		AuthRequired:    getBool("AUTH_REQUIRED", false),
		RequestTimeout:  getDuration("REQUEST_TIMEOUT", 10*time.Second),
		StoreBackend:    strings.ToLower(getEnv("STORE_BACKEND", "firestore")),
		IdentityBackend: strings.ToLower(getEnv("IDENTITY_BACKEND", "firebase")),

		FirebaseProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseCredentialsJSON: getEnv("FIREBASE_CREDENTIALS_JSON", ""),
		FirebaseClientEmail:     getEnv("FIREBASE_CLIENT_EMAIL", ""),
		FirebasePrivateKey:      getEnv("FIREBASE_PRIVATE_KEY", ""),
		FirebaseWebAPIKey:       getEnv("FIREBASE_WEB_API_KEY", ""),

		JWTSecret:     getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTExpiration: getDuration("JWT_EXPIRATION", time.Hour),

		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "nitg_connect"),

		RedisURL:     getEnv("REDIS_URL", ""),
		ListCacheTTL: getTTL("LIST_CACHE_TTL", 30*time.Second),

		ImageBackend:        strings.ToLower(getEnv("IMAGE_BACKEND", "local")),
		UploadDir:           getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSizeMB:     getInt64("MAX_UPLOAD_SIZE_MB", 10),
		GCSBucket:           getEnv("GCS_BUCKET", ""),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "nitg-connect"),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getInt64(key string, defaultValue int64) int64 {
	v, err := strconv.ParseInt(getEnv(key, ""), 10, 64)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}

// getDuration accepts Go durations ("90s") or a bare number of seconds.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// getTTL is getDuration that also accepts "0" or "off" to disable.
func getTTL(key string, defaultValue time.Duration) time.Duration {
	switch strings.ToLower(strings.TrimSpace(getEnv(key, ""))) {
	case "0", "0s", "off":
		return 0
	}
	return getDuration(key, defaultValue)
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
