package service

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MaxNameLen — предел длины name, совпадает с размером колонки.
const MaxNameLen = 255

var (
	// ErrItemNotFound — записи с таким id нет.
	ErrItemNotFound = errors.New("item not found")
	// ErrNameRequired — name пуст или состоит из пробелов.
	ErrNameRequired = errors.New("name is required")
	// ErrNameTooLong — name длиннее MaxNameLen.
	ErrNameTooLong = errors.New("name is too long")
)

// IsValidationError сообщает, относится ли ошибка к неверному входу (ответ 400).
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNameRequired) || errors.Is(err, ErrNameTooLong)
}

// ListQuery — параметры списка до нормализации.
type ListQuery struct {
	Name     string
	Search   string
	Page     int // 1-based; значения <1 трактуются как 1
	PageSize int // <=0 — размер по умолчанию; сверх потолка — потолок
}

// ListResult — страница записей с данными для конверта пагинации.
type ListResult struct {
	Items    []model.Item
	Total    int64
	Page     int
	PageSize int
}

// HasNext — есть ли страница после текущей.
func (r ListResult) HasNext() bool {
	return int64(r.Page*r.PageSize) < r.Total
}

// HasPrevious — есть ли страница до текущей.
func (r ListResult) HasPrevious() bool {
	return r.Page > 1
}

// ItemService инкапсулирует бизнес-логику работы с Item:
// валидацию полей и нормализацию параметров страницы.
type ItemService struct {
	repo            repo.ItemRepository
	logger          *zap.SugaredLogger
	defaultPageSize int
	maxPageSize     int
}

func NewItemService(r repo.ItemRepository, logger *zap.SugaredLogger, defaultPageSize, maxPageSize int) *ItemService {
	return &ItemService{
		repo:            r,
		logger:          logger,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameRequired
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

// List возвращает страницу записей под фильтром.
func (s *ItemService) List(ctx context.Context, q ListQuery) (ListResult, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	size := q.PageSize
	if size <= 0 {
		size = s.defaultPageSize
	}
	if size > s.maxPageSize {
		size = s.maxPageSize
	}

	items, total, err := s.repo.List(ctx, repo.ItemFilter{
		Name:   q.Name,
		Search: q.Search,
		Limit:  size,
		Offset: (page - 1) * size,
	})
	if err != nil {
		s.logger.Errorw("list items", "error", err)
		return ListResult{}, err
	}
	return ListResult{Items: items, Total: total, Page: page, PageSize: size}, nil
}

// Get возвращает запись по id.
func (s *ItemService) Get(ctx context.Context, id uint) (*model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return it, nil
}

// Create валидирует поля и сохраняет новую запись; id назначает база.
func (s *ItemService) Create(ctx context.Context, name, description string) (*model.Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	it := &model.Item{Name: name, Description: description}
	if err := s.repo.Create(ctx, it); err != nil {
		s.logger.Errorw("create item", "error", err)
		return nil, err
	}
	return it, nil
}

// Replace полностью перезаписывает поля записи (PUT-семантика):
// отсутствующий description затирается пустым значением.
func (s *ItemService) Replace(ctx context.Context, id uint, name, description string) (*model.Item, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	it.Name = name
	it.Description = description
	if err := s.repo.Save(ctx, it); err != nil {
		s.logger.Errorw("replace item", "id", id, "error", err)
		return nil, err
	}
	return it, nil
}

// Update обновляет только переданные поля (PATCH-семантика).
func (s *ItemService) Update(ctx context.Context, id uint, name, description *string) (*model.Item, error) {
	if name != nil {
		if err := validateName(*name); err != nil {
			return nil, err
		}
	}
	it, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		it.Name = *name
	}
	if description != nil {
		it.Description = *description
	}
	if err := s.repo.Save(ctx, it); err != nil {
		s.logger.Errorw("update item", "id", id, "error", err)
		return nil, err
	}
	return it, nil
}

// Delete удаляет запись по id.
func (s *ItemService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Errorw("delete item", "id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrItemNotFound
	}
	return nil
}

// Seed создаёт записи из набора, пропуская уже существующие по name.
// Возвращает число фактически созданных.
func (s *ItemService) Seed(ctx context.Context, items []model.Item) (int, error) {
	created := 0
	for i := range items {
		it := items[i]
		it.ID = 0 // id всегда назначает база
		ok, err := s.repo.CreateIfAbsent(ctx, &it)
		if err != nil {
			return created, err
		}
		if ok {
			created++
		}
	}
	return created, nil
}
