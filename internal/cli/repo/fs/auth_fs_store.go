package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// AuthFSStore — файловое хранилище auth-токена для CLI.
// Path переопределяет путь к файлу; пустой Path — UserConfigDir/ItemKeeper/auth_token.
type AuthFSStore struct {
	Path string
}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "ItemKeeper")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func (s AuthFSStore) tokenPath() (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

// Save сохраняет auth-токен в файл.
func (s AuthFSStore) Save(token string) error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает токен; отсутствие файла — пустой токен без ошибки.
func (s AuthFSStore) Load() (string, error) {
	p, err := s.tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return string(b), nil
}

// Clear удаляет сохранённый токен.
func (s AuthFSStore) Clear() error {
	p, err := s.tokenPath()
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
