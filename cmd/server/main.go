package main

import (
	"fmt"
	"log"

	httpAdapter "github.com/Aanjaneya24/me-api-playground/adapters/http"
	"github.com/Aanjaneya24/me-api-playground/adapters/persistence"
	profileUC "github.com/Aanjaneya24/me-api-playground/internal/application/usecase/profile"
	searchUC "github.com/Aanjaneya24/me-api-playground/internal/application/usecase/search"
	"github.com/Aanjaneya24/me-api-playground/internal/config"
	applogger "github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

func main() {
	fmt.Println("Start Me-API Playground server...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := applogger.NewZapLogger(cfg.App.Env)

	store, err := persistence.NewStore(cfg.DB.Path, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot open profile store: %v", err)
	}
	defer store.Close()

	// Repositories
	profileRepo := persistence.NewProfileRepo(store, appLogger)
	searchRepo := persistence.NewSearchRepo(store, appLogger)

	// Use Cases
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, appLogger)
	searchUseCase := searchUC.NewSearchUseCase(searchRepo, appLogger)

	// HTTP Handlers
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	searchHandler := httpAdapter.NewSearchHandler(searchUseCase, appLogger)

	router := httpAdapter.NewRouter(profileHandler, searchHandler, appLogger, cfg.CORS.AllowOrigins)

	log.Printf("Server running on port %s", cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
