package main

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/handlers"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	userService := service.NewUserService(userRepo)
	itemService := service.NewItemService(itemRepo, sugar, cfg.PageSize, cfg.MaxPageSize)

	// начальные записи из JSON-файла, если задан -seed
	if cfg.SeedFile != "" {
		if err := seedItems(ctx, itemService, cfg.SeedFile); err != nil {
			sugar.Fatalw("failed to seed items", "file", cfg.SeedFile, "error", err)
		}
	}

	h := handlers.NewHandler(userService, itemService, repo.NewPinger(gormDB), sugar, cfg)

	addr := cfg.RunAddress

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"RunAddress", cfg.RunAddress,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"PageSize", cfg.PageSize,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}

// seedItems загружает записи из JSON-массива {name, description};
// уже существующие по name пропускаются.
func seedItems(ctx context.Context, itemService *service.ItemService, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var items []model.Item
	if err := json.Unmarshal(content, &items); err != nil {
		return err
	}
	_, err = itemService.Seed(ctx, items)
	return err
}
