package repo

import (
	"ItemKeeper/internal/model"
	"context"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение и прогоняет автомиграции.
// postgres:// DSN — боевой вариант; всё остальное трактуем как путь к локальному
// sqlite-файлу (драйвер modernc, без cgo), пустой DSN — файл itemkeeper.db.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		dial = postgres.Open(dsn)
	case dsn == "":
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: "itemkeeper.db"}
	default:
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		return nil, err
	}
	return db, nil
}

// Pinger — проверка живости хранилища для healthcheck.
type Pinger interface {
	Ping(ctx context.Context) error
}

type dbPinger struct {
	db *gorm.DB
}

func NewPinger(db *gorm.DB) Pinger {
	return &dbPinger{db: db}
}

func (p *dbPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
