package service

import (
	"ItemKeeper/internal/model"
	"ItemKeeper/internal/repo"
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrLoginTaken — логин уже занят другим пользователем.
	ErrLoginTaken = errors.New("login already taken")
	// ErrInvalidCredentials — пара логин/пароль не подошла.
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// UserService инкапсулирует регистрацию и проверку учётных данных.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, login, password string) (*model.User, error) {
	existing, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{Login: login, Password: string(hash)}
	return s.repo.CreateUser(ctx, user)
}

// Login сверяет пароль с хешем. Несуществующий логин и неверный пароль
// неразличимы для вызывающего.
func (s *UserService) Login(ctx context.Context, login, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
