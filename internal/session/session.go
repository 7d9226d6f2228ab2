package session

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

// AuthAPI — эндпоинты аутентификации внешнего бэкенда
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*model.AuthTokens, error)
	Register(ctx context.Context, email, password, timezone string) (*model.User, error)
	Refresh(ctx context.Context, refreshToken string) (*model.AuthTokens, error)
}

// Session отслеживает состояние аутентификации одного пользователя.
// Access-токен живет только в памяти процесса; refresh-токен и профиль
// сохраняются в Store и переживают перезапуск.
type Session struct {
	auth      AuthAPI
	store     Store
	defaultTZ string

	mu           sync.RWMutex
	accessToken  string
	refreshToken string
	user         *model.User
	theme        string
}

func New(auth AuthAPI, store Store, defaultTZ string) *Session {
	return &Session{
		auth:      auth,
		store:     store,
		defaultTZ: defaultTZ,
	}
}

// Resume восстанавливает сессию из долговременного хранилища.
// Восстановленная сессия аутентифицирована, но access-токена у нее нет
// до явного Refresh или нового логина. Битое состояние стирается.
func (s *Session) Resume() {
	state, err := s.store.Load()
	if err != nil {
		log.Printf("Сессия не восстановлена, сбрасываем состояние: %v", err)
		if clearErr := s.store.Clear(); clearErr != nil {
			log.Printf("Ошибка очистки состояния сессии: %v", clearErr)
		}
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = state.Theme
	if state.User != nil && state.RefreshToken != "" {
		s.user = state.User
		s.refreshToken = state.RefreshToken
	}
}

// Login обменивает учетные данные на токены и фиксирует сессию.
// При любой ошибке состояние остается нетронутым.
func (s *Session) Login(ctx context.Context, email, password string) error {
	tokens, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	// Идентификатор пользователя достаем из только что выданного токена.
	// Подпись не проверяем: токен пришел по доверенному каналу от
	// сервера, который его и выписал.
	userID, err := identityFromToken(tokens.AccessToken)
	if err != nil {
		return fmt.Errorf("extract identity from access token: %w", err)
	}

	user := &model.User{
		ID:        userID,
		Email:     email,
		Timezone:  s.defaultTZ,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.user = user
	theme := s.theme
	s.mu.Unlock()

	return s.store.Save(&State{User: user, RefreshToken: tokens.RefreshToken, Theme: theme})
}

// Register создает пользователя и сразу логинит его теми же учетными
// данными. Отклоненная регистрация логин не запускает.
func (s *Session) Register(ctx context.Context, email, password, timezone string) error {
	if timezone == "" {
		timezone = s.defaultTZ
	}
	if _, err := s.auth.Register(ctx, email, password, timezone); err != nil {
		return err
	}
	return s.Login(ctx, email, password)
}

// Refresh обменивает сохраненный refresh-токен на новую пару токенов
func (s *Session) Refresh(ctx context.Context) error {
	s.mu.RLock()
	refreshToken := s.refreshToken
	user := s.user
	theme := s.theme
	s.mu.RUnlock()

	if refreshToken == "" {
		return fmt.Errorf("no refresh token stored")
	}

	tokens, err := s.auth.Refresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = tokens.AccessToken
	s.refreshToken = tokens.RefreshToken
	s.mu.Unlock()

	return s.store.Save(&State{User: user, RefreshToken: tokens.RefreshToken, Theme: theme})
}

// Logout синхронно очищает память и долговременное состояние
func (s *Session) Logout() {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		log.Printf("Ошибка очистки состояния сессии: %v", err)
	}
}

// IsAuthenticated не зависит от наличия живого access-токена:
// восстановленная сессия с одним refresh-токеном тоже считается
// аутентифицированной.
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *Session) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// AccessToken реализует api.TokenSource
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *Session) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.theme == "" {
		return "light"
	}
	return s.theme
}

func (s *Session) SetTheme(theme string) error {
	s.mu.Lock()
	s.theme = theme
	user := s.user
	refreshToken := s.refreshToken
	s.mu.Unlock()

	return s.store.Save(&State{User: user, RefreshToken: refreshToken, Theme: theme})
}
