package cli

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/andrescamacho/craftrules-go/internal/adapters/api"
	"github.com/andrescamacho/craftrules-go/internal/adapters/persistence"
	"github.com/andrescamacho/craftrules-go/internal/application/common"
	"github.com/andrescamacho/craftrules-go/internal/application/queries"
	"github.com/andrescamacho/craftrules-go/internal/domain/catalog"
	"github.com/andrescamacho/craftrules-go/internal/domain/inventory"
	"github.com/andrescamacho/craftrules-go/internal/domain/listing"
	"github.com/andrescamacho/craftrules-go/internal/infrastructure/config"
	"github.com/andrescamacho/craftrules-go/internal/infrastructure/database"
)

const queryCacheSize = 64

// App wires configuration, storage, the API client and the mediator for
// one CLI invocation.
type App struct {
	Config        *config.Config
	DB            *gorm.DB
	Mediator      common.Mediator
	Client        *api.GameClient
	CatalogRepo   catalog.Repository
	InventoryRepo inventory.Repository
}

// newApp builds the application graph from config.
func newApp() (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	catalogRepo := persistence.NewGormCatalogRepository(db)
	inventoryRepo := persistence.NewGormInventoryRepository(db)

	memoizer, err := listing.NewMemoizer(listing.NewEngine(), queryCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	mediator := common.NewMediator()
	if err := common.RegisterHandler[*queries.InventoryViewQuery](mediator,
		queries.NewInventoryViewHandler(inventoryRepo, memoizer)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.RecipeSearchQuery](mediator,
		queries.NewRecipeSearchHandler(catalogRepo, inventoryRepo, memoizer)); err != nil {
		return nil, err
	}
	if err := common.RegisterHandler[*queries.CraftCheckQuery](mediator,
		queries.NewCraftCheckHandler(catalogRepo, inventoryRepo)); err != nil {
		return nil, err
	}

	return &App{
		Config:        cfg,
		DB:            db,
		Mediator:      mediator,
		Client:        api.NewGameClientWithConfig(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout, cfg.API.MaxRetries, cfg.API.BackoffBase),
		CatalogRepo:   catalogRepo,
		InventoryRepo: inventoryRepo,
	}, nil
}

// Close releases the application resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = database.Close(a.DB)
	}
}

// commandContext returns the base context for one command, with a stderr
// logger installed when --verbose is set.
func commandContext() context.Context {
	ctx := context.Background()
	if verbose {
		ctx = common.WithLogger(ctx, common.NewWriterLogger(os.Stderr))
	}
	return ctx
}
