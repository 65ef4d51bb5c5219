package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

// ItemFilter — параметры выборки списка.
type ItemFilter struct {
	Name   string // точное совпадение по name
	Search string // подстрока по name/description без учёта регистра
	Limit  int    // 0 — без ограничения
	Offset int
}

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// List возвращает страницу записей и общее число записей под фильтром.
	List(ctx context.Context, f ItemFilter) ([]model.Item, int64, error)

	// GetByID возвращает запись или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id uint) (*model.Item, error)

	// Create вставляет запись; id заполняется базой.
	Create(ctx context.Context, it *model.Item) error

	// Save перезаписывает все поля существующей записи.
	Save(ctx context.Context, it *model.Item) error

	// Delete удаляет по id. Возвращает deleted=false, если записи не было.
	Delete(ctx context.Context, id uint) (deleted bool, err error)

	// CreateIfAbsent вставляет запись, если записи с таким name ещё нет.
	// Возвращает created=true, если запись была создана в этой операции.
	CreateIfAbsent(ctx context.Context, it *model.Item) (created bool, err error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) applyFilter(q *gorm.DB, f ItemFilter) *gorm.DB {
	if f.Name != "" {
		q = q.Where("name = ?", f.Name)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}
	return q
}

func (r *itemRepo) List(ctx context.Context, f ItemFilter) ([]model.Item, int64, error) {
	base := r.applyFilter(r.db.WithContext(ctx).Model(&model.Item{}), f)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := base.Session(&gorm.Session{}).Order("id ASC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}

	var items []model.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *itemRepo) GetByID(ctx context.Context, id uint) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *itemRepo) Create(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *itemRepo) Save(ctx context.Context, it *model.Item) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *itemRepo) Delete(ctx context.Context, id uint) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *itemRepo) CreateIfAbsent(ctx context.Context, it *model.Item) (bool, error) {
	tx := r.db.WithContext(ctx).Where("name = ?", it.Name).FirstOrCreate(it)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
