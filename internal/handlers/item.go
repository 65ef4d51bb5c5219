package handlers

import (
	"ItemKeeper/internal/config"
	"ItemKeeper/internal/middleware"
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/service"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD-операции над записями каталога.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// ItemDTO — представление записи на проводе.
type ItemDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

func toDTO(it *model.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CreatedAt:   it.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   it.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// ItemRequest — тело POST/PUT. Для PATCH поля читаются как указатели, см. patchRequest.
type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type patchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// PageResponse — конверт пагинации списка.
type PageResponse struct {
	Count    int64     `json:"count"`
	Next     *string   `json:"next"`
	Previous *string   `json:"previous"`
	Results  []ItemDTO `json:"results"`
}

// requireUser проверяет, что WithAuth установил user_id. Иначе — 401.
func (h *ItemHandler) requireUser(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return false
	}
	return true
}

// itemID разбирает {id} из пути. Нечисловой id неотличим от несуществующего.
func itemID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// pageLink собирает абсолютную ссылку на страницу page, сохраняя остальные
// query-параметры запроса. Для первой страницы параметр page опускается.
func pageLink(r *http.Request, page int) string {
	u := *r.URL
	q := u.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	u.Scheme = scheme
	u.Host = r.Host
	return u.String()
}

// List возвращает страницу записей: ?page, ?page_size, ?name (точный фильтр),
// ?search (подстрока по name/description).
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	res, err := h.ItemService.List(r.Context(), service.ListQuery{
		Name:     q.Get("name"),
		Search:   q.Get("search"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	results := make([]ItemDTO, 0, len(res.Items))
	for i := range res.Items {
		results = append(results, toDTO(&res.Items[i]))
	}

	resp := PageResponse{Count: res.Total, Results: results}
	if res.HasNext() {
		link := pageLink(r, res.Page+1)
		resp.Next = &link
	}
	if res.HasPrevious() {
		link := pageLink(r, res.Page-1)
		resp.Previous = &link
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create сохраняет новую запись и возвращает её с назначенным id.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.ItemService.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		h.respondItemError(w, err, "Create")
		return
	}
	writeJSON(w, http.StatusCreated, toDTO(it))
}

// Get возвращает запись по id.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	it, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		h.respondItemError(w, err, "Get")
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Replace — PUT: полная замена полей записи.
func (h *ItemHandler) Replace(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Replace: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.ItemService.Replace(r.Context(), id, req.Name, req.Description)
	if err != nil {
		h.respondItemError(w, err, "Replace")
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Update — PATCH: обновление только переданных полей.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	var req patchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Update: invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	it, err := h.ItemService.Update(r.Context(), id, req.Name, req.Description)
	if err != nil {
		h.respondItemError(w, err, "Update")
		return
	}
	writeJSON(w, http.StatusOK, toDTO(it))
}

// Delete удаляет запись; тело ответа пустое.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.requireUser(w, r) {
		return
	}

	id, ok := itemID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.respondItemError(w, err, "Delete")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondItemError переводит ошибки сервиса в HTTP-статусы.
func (h *ItemHandler) respondItemError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, service.ErrItemNotFound):
		writeError(w, http.StatusNotFound, "item not found")
	case service.IsValidationError(err):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.Logger.Errorw(op+": service error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
