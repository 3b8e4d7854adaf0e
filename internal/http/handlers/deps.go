package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"productgen/internal/config"
	applog "productgen/internal/log"
	"productgen/internal/repos"
	"productgen/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	PageHandler    *PageHandler
	ProductHandler *ProductHandler
	DatasetHandler *DatasetHandler
	JobHandler     *JobHandler
	AuthHandler    *AuthHandler
	Auth           *services.AuthService
}

// NewDeps wires repos and services and seeds the configured login user.
func NewDeps(db *sqlx.DB, cfg config.Config) (*Deps, error) {
	prodRepo := repos.NewProductRepo(db)
	userRepo := repos.NewUserRepo(db)

	secret := cfg.JWTSecret
	if secret == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return nil, fmt.Errorf("jwt secret: %w", err)
		}
		secret = hex.EncodeToString(b)
		applog.Info(nil, "auth.ephemeral_secret", map[string]any{"hint": "set JWT_SECRET to keep tokens valid across restarts"})
	}
	authSvc := services.NewAuthService(userRepo, secret, cfg.JWTTTL)
	if cfg.AuthUser != "" && cfg.AuthPassword != "" {
		if err := authSvc.EnsureUser(cfg.AuthUser, cfg.AuthPassword); err != nil {
			return nil, fmt.Errorf("seed user: %w", err)
		}
	}

	catalogSvc := services.NewCatalogService(prodRepo)
	datasetSvc := services.NewDatasetService(cfg.OutputDir)
	importSvc := services.NewImportService(prodRepo, cfg.ChunkSize, cfg.LinkSuffix)

	return &Deps{
		PageHandler:    &PageHandler{Catalog: catalogSvc},
		ProductHandler: &ProductHandler{Catalog: catalogSvc},
		DatasetHandler: &DatasetHandler{Datasets: datasetSvc},
		JobHandler:     &JobHandler{Import: importSvc, CSVPath: cfg.ImportCSV},
		AuthHandler:    &AuthHandler{Auth: authSvc},
		Auth:           authSvc,
	}, nil
}
