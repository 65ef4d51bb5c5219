package model

import "time"

// Item — единственная доменная сущность каталога.
// ID назначается базой при создании, name обязателен, description опционален.
type Item struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:255;not null;index" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
