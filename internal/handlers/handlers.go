package handlers

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/repo"
	"ItemKeeper/internal/service"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	pinger repo.Pinger,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	// хвостовые слеши в путях (/api/items/) допустимы и отбрасываются
	r.Use(chimw.StripSlashes)
	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	itemHandler := NewItemHandler(itemService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// Item routes — все под токеном
	r.Route("/api/items", func(r chi.Router) {
		r.Get("/", itemHandler.List)
		r.Post("/", itemHandler.Create)
		r.Get("/{id}", itemHandler.Get)
		r.Put("/{id}", itemHandler.Replace)
		r.Patch("/{id}", itemHandler.Update)
		r.Delete("/{id}", itemHandler.Delete)
	})

	r.Get("/api/healthcheck", Healthcheck(pinger))

	return &Handler{Router: r}
}

// writeJSON сериализует полезную нагрузку с нужным статусом.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError — единый формат ошибок API: {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
