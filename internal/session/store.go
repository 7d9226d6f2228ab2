package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

// State — то, что переживает перезапуск: профиль, refresh-токен и тема.
// Access-токен сюда не пишется никогда.
type State struct {
	User         *model.User `json:"user,omitempty"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Theme        string      `json:"theme,omitempty"`
}

// Store — долговременное хранилище состояния сессии
type Store interface {
	Load() (*State, error)
	Save(state *State) error
	Clear() error
}

// FileStore хранит состояние сессии в JSON-файле, по файлу на чат
type FileStore struct {
	path string
}

func NewFileStore(dir string, chatID int64) *FileStore {
	return &FileStore{path: filepath.Join(dir, fmt.Sprintf("%d.json", chatID))}
}

func (s *FileStore) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parse session state: %w", err)
	}
	return &state, nil
}

func (s *FileStore) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear session state: %w", err)
	}
	return nil
}
