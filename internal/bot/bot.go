package bot

import (
	"encoding/json"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/expenses_bot/internal/api"
	"github.com/ivanoskov/expenses_bot/internal/charts"
	"github.com/ivanoskov/expenses_bot/internal/config"
	"github.com/ivanoskov/expenses_bot/internal/finance"
	"github.com/ivanoskov/expenses_bot/internal/session"
)

// userContext — все, что привязано к одному чату: сессия с бэкендом,
// доменные сервисы поверх нее и состояние диалога
type userContext struct {
	sess  *session.Session
	svc   *finance.Services
	state *dialogState
}

type Bot struct {
	api    *tgbotapi.BotAPI
	charts *charts.Generator

	apiBaseURL string
	stateDir   string
	defaultTZ  string

	mu    sync.Mutex
	users map[int64]*userContext
}

func NewBot(cfg *config.Config) (*Bot, error) {
	tg, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:        tg,
		charts:     charts.NewGenerator(),
		apiBaseURL: cfg.APIBaseURL,
		stateDir:   cfg.StateDir,
		defaultTZ:  cfg.DefaultTimezone,
		users:      make(map[int64]*userContext),
	}, nil
}

// userFor лениво собирает контекст чата. Сессия восстанавливается из
// файла, так что после перезапуска бота пользователи остаются
// залогиненными (но без access-токена до следующего логина).
func (b *Bot) userFor(chatID int64) *userContext {
	b.mu.Lock()
	defer b.mu.Unlock()

	if uc, ok := b.users[chatID]; ok {
		return uc
	}

	client := api.NewClient(b.apiBaseURL)
	store := session.NewFileStore(b.stateDir, chatID)
	sess := session.New(client, store, b.defaultTZ)
	client.SetTokenSource(sess)
	sess.Resume()

	uc := &userContext{
		sess:  sess,
		svc:   finance.NewServices(client),
		state: &dialogState{},
	}
	b.users[chatID] = uc
	return uc
}

// Start запускает бота в режиме long polling
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if err := b.handleUpdate(update); err != nil {
			// Логируем ошибку, но продолжаем работу
			log.Printf("Error handling update: %v", err)
		}
	}

	return nil
}

// HandleWebhook — точка входа для обработки входящих webhook-обновлений
func (b *Bot) HandleWebhook(body []byte) error {
	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return err
	}

	return b.handleUpdate(update)
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.Message != nil && update.Message.IsCommand() {
		return b.handleCommand(update.Message)
	}

	if update.CallbackQuery != nil {
		return b.handleCallback(update.CallbackQuery)
	}

	return b.handleMessage(update.Message)
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	b.reply(chatID, "❌ "+text)
}

func (b *Bot) sendPhoto(chatID int64, name string, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	b.send(photo)
}
