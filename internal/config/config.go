package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DBDSN     string
	LogFile   string
	OutputDir string
	ImportCSV string
	ChunkSize int
	// Appended to image_url to build customise_link during import.
	LinkSuffix string
	// Run the import once before serving.
	ImportOnStart bool

	// Job endpoint auth. An empty JWTSecret gets a random per-process key.
	JWTSecret    string
	JWTTTL       time.Duration
	AuthUser     string
	AuthPassword string

	// Defaults for the generate command; flags override them.
	Count  int
	Format string
	Output string
	Seed   uint64
}

// Load reads .env (if present) and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[config] could not read .env: %v", err)
	}

	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		DBDSN:      getEnv("DB_DSN", "productgen.db"), // sqlite file in working dir
		LogFile:    os.Getenv("LOG_FILE"),
		OutputDir:  getEnv("OUTPUT_DIR", "."),
		ImportCSV:  getEnv("IMPORT_CSV", "products.csv"),
		ChunkSize:  getInt("CHUNK_SIZE", 100),
		LinkSuffix: getEnv("LINK_SUFFIX", "&customise=true"),

		ImportOnStart: getBool("IMPORT_ON_START", false),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTTTL:       getDuration("JWT_TTL", time.Hour),
		AuthUser:     getEnv("AUTH_USER", "user"),
		AuthPassword: getEnv("AUTH_PASSWORD", "password"),

		Count:  getInt("GEN_COUNT", 10000),
		Format: getEnv("GEN_FORMAT", "both"),
		Output: getEnv("GEN_OUTPUT", "products"),
		Seed:   getUint("GEN_SEED", 0),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s OUTPUT_DIR=%s IMPORT_CSV=%s CHUNK_SIZE=%d IMPORT_ON_START=%t LOG_FILE=%s JWT_SECRET set=%t JWT_TTL=%s AUTH_USER=%s",
		cfg.Port, cfg.DBDSN, cfg.OutputDir, cfg.ImportCSV, cfg.ChunkSize, cfg.ImportOnStart, cfg.LogFile,
		cfg.JWTSecret != "", cfg.JWTTTL, cfg.AuthUser)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] ignoring %s=%q: not a non-negative integer", key, v)
		return def
	}
	return n
}

func getUint(key string, def uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		log.Printf("[config] ignoring %s=%q: not an unsigned integer", key, v)
		return def
	}
	return n
}

func getBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("[config] ignoring %s=%q: not a boolean", key, v)
		return def
	}
	return b
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[config] ignoring %s=%q: not a positive duration", key, v)
		return def
	}
	return d
}
