package model

import "time"

// User — учётная запись для выдачи токенов доступа к API.
// Записи Item не принадлежат пользователям; авторизация только открывает доступ.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш, в открытом виде не храним

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
