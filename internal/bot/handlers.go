package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/expenses_bot/internal/finance"
	"github.com/ivanoskov/expenses_bot/internal/model"
)

func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	uc := b.userFor(chatID)

	switch message.Command() {
	case "start":
		b.handleStart(uc, chatID)
	case "login":
		uc.state.reset()
		uc.state.Awaiting = awaitLoginEmail
		b.reply(chatID, "Введите email:")
	case "register":
		uc.state.reset()
		uc.state.Awaiting = awaitRegisterEmail
		b.reply(chatID, "Введите email для регистрации:")
	case "logout":
		uc.state.reset()
		uc.sess.Logout()
		b.reply(chatID, "Вы вышли из аккаунта. Для входа — /login")
	case "accounts":
		b.handleAccounts(uc, chatID)
	case "add":
		b.handleAddExpense(uc, chatID)
	case "expenses":
		b.handleRecentExpenses(uc, chatID)
	case "dashboard":
		b.handleDashboard(uc, chatID)
	case "theme":
		msg := tgbotapi.NewMessage(chatID, "Выберите тему графиков:")
		msg.ReplyMarkup = b.getThemeKeyboard()
		b.send(msg)
	}

	return nil
}

func (b *Bot) handleStart(uc *userContext, chatID int64) {
	text := "Добро пожаловать в бот учёта расходов! 💰\n\n" +
		"Я умею:\n" +
		"• Записывать расходы по счетам и категориям\n" +
		"• Показывать дашборд с графиками за неделю и месяц\n" +
		"• Управлять счетами\n\n"

	if uc.sess.IsAuthenticated() {
		user := uc.sess.CurrentUser()
		text += fmt.Sprintf("Вы вошли как %s. Выберите действие:", user.Email)
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = b.getMainKeyboard()
		b.send(msg)
		return
	}

	text += "Для начала войдите (/login) или зарегистрируйтесь (/register)."
	b.reply(chatID, text)
}

// requireAuth возвращает false и подсказывает логин, если пользователь
// еще не вошел
func (b *Bot) requireAuth(uc *userContext, chatID int64) bool {
	if uc.sess.IsAuthenticated() {
		return true
	}
	b.reply(chatID, "Сначала войдите: /login (или зарегистрируйтесь: /register)")
	return false
}

func (b *Bot) handleAccounts(uc *userContext, chatID int64) {
	if !b.requireAuth(uc, chatID) {
		return
	}

	accounts, err := uc.svc.Accounts.List(context.Background())
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при получении счетов: "+err.Error())
		return
	}

	if len(accounts) == 0 {
		msg := tgbotapi.NewMessage(chatID, "У вас пока нет счетов. Добавьте первый:")
		msg.ReplyMarkup = b.getAccountManageKeyboard(nil)
		b.send(msg)
		return
	}

	text := "💳 Ваши счета:\n\n"
	for _, account := range accounts {
		kind := "банковский счет"
		if account.Type == model.AccountTypeCard {
			kind = "карта"
		}
		text += fmt.Sprintf("• %s (%s)\n", account.Name, kind)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.getAccountManageKeyboard(accounts)
	b.send(msg)
}

func (b *Bot) handleAddExpense(uc *userContext, chatID int64) {
	if !b.requireAuth(uc, chatID) {
		return
	}

	accounts, err := uc.svc.Accounts.List(context.Background())
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при получении счетов: "+err.Error())
		return
	}
	if len(accounts) == 0 {
		b.reply(chatID, "Сначала добавьте счет через /accounts")
		return
	}

	uc.state.reset()
	msg := tgbotapi.NewMessage(chatID, "С какого счета расход?")
	msg.ReplyMarkup = b.getAccountsKeyboard(accounts, "exp_acct_")
	b.send(msg)
}

func (b *Bot) handleRecentExpenses(uc *userContext, chatID int64) {
	if !b.requireAuth(uc, chatID) {
		return
	}

	ctx := context.Background()
	expenses, err := uc.svc.Expenses.List(ctx, finance.ExpenseFilter{Limit: 10})
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при получении расходов: "+err.Error())
		return
	}
	if len(expenses) == 0 {
		b.reply(chatID, "Расходов пока нет. Добавьте первый через /add")
		return
	}

	categories, err := uc.svc.Categories.List(ctx)
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при получении категорий: "+err.Error())
		return
	}
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.ID] = cat.Name
	}

	text := "📋 Последние расходы:\n\n"
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, exp := range expenses {
		line := fmt.Sprintf("• %s — %s (%s)", exp.ExpenseDate, model.FormatAmount(exp.Amount), categoryNames[exp.CategoryID])
		if exp.Description != nil && *exp.Description != "" {
			line += ": " + *exp.Description
		}
		text += line + "\n"

		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("🗑 %s %s", exp.ExpenseDate, model.FormatAmount(exp.Amount)),
				"exp_del_"+exp.ID,
			),
		})
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(buttons...)
	b.send(msg)
}

func (b *Bot) handleMessage(message *tgbotapi.Message) error {
	chatID := message.Chat.ID
	uc := b.userFor(chatID)

	// Кнопки главной клавиатуры
	switch message.Text {
	case "💸 Добавить расход":
		b.handleAddExpense(uc, chatID)
		return nil
	case "📊 Дашборд":
		b.handleDashboard(uc, chatID)
		return nil
	case "💳 Счета":
		b.handleAccounts(uc, chatID)
		return nil
	case "📋 Последние расходы":
		b.handleRecentExpenses(uc, chatID)
		return nil
	}

	switch uc.state.Awaiting {
	case awaitLoginEmail:
		uc.state.Email = strings.TrimSpace(message.Text)
		uc.state.Awaiting = awaitLoginPassword
		b.reply(chatID, "Введите пароль:")
	case awaitLoginPassword:
		b.finishLogin(uc, chatID, message.Text)
	case awaitRegisterEmail:
		uc.state.Email = strings.TrimSpace(message.Text)
		uc.state.Awaiting = awaitRegisterPassword
		b.reply(chatID, "Придумайте пароль:")
	case awaitRegisterPassword:
		b.finishRegister(uc, chatID, message.Text)
	case awaitAccountName:
		name := strings.TrimSpace(message.Text)
		if name == "" {
			b.sendErrorMessage(chatID, "Название не может быть пустым")
			return nil
		}
		uc.state.PendingAccountName = name
		uc.state.Awaiting = ""
		msg := tgbotapi.NewMessage(chatID, "Какой это тип счета?")
		msg.ReplyMarkup = b.getAccountTypeKeyboard()
		b.send(msg)
	case awaitAccountRename:
		b.finishAccountRename(uc, chatID, message.Text)
	case awaitExpenseInput:
		b.finishAddExpense(uc, chatID, message.Text)
	default:
		if !uc.sess.IsAuthenticated() {
			b.reply(chatID, "Для начала войдите: /login")
			return nil
		}
		msg := tgbotapi.NewMessage(chatID, "Выберите действие:")
		msg.ReplyMarkup = b.getMainKeyboard()
		b.send(msg)
	}

	return nil
}

func (b *Bot) finishLogin(uc *userContext, chatID int64, password string) {
	email := uc.state.Email
	uc.state.reset()

	if err := uc.sess.Login(context.Background(), email, password); err != nil {
		// Показываем текст ошибки сервера как есть ("Invalid credentials" и т.п.)
		b.sendErrorMessage(chatID, err.Error())
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Вы вошли! ✅ Выберите действие:")
	msg.ReplyMarkup = b.getMainKeyboard()
	b.send(msg)
}

func (b *Bot) finishRegister(uc *userContext, chatID int64, password string) {
	email := uc.state.Email
	uc.state.reset()

	if err := uc.sess.Register(context.Background(), email, password, ""); err != nil {
		b.sendErrorMessage(chatID, err.Error())
		return
	}

	msg := tgbotapi.NewMessage(chatID, "Регистрация прошла успешно! ✅ Выберите действие:")
	msg.ReplyMarkup = b.getMainKeyboard()
	b.send(msg)
}

func (b *Bot) finishAccountRename(uc *userContext, chatID int64, text string) {
	accountID := uc.state.RenameAccountID
	uc.state.reset()

	name := strings.TrimSpace(text)
	if name == "" {
		b.sendErrorMessage(chatID, "Название не может быть пустым")
		return
	}

	account, err := uc.svc.Accounts.Update(context.Background(), accountID, name)
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при переименовании счета: "+err.Error())
		return
	}
	b.reply(chatID, fmt.Sprintf("Счет переименован в «%s» ✅", account.Name))
}

func (b *Bot) finishAddExpense(uc *userContext, chatID int64, text string) {
	// Валидация до любого похода в сеть
	amount, date, description, err := parseExpenseInput(text, time.Now())
	if err != nil {
		b.sendErrorMessage(chatID, err.Error()+"\nФормат: <сумма> [дата] [описание], например: 250.50 обед")
		return
	}
	if uc.state.SelectedAccountID == "" || uc.state.SelectedCategoryID == "" {
		uc.state.reset()
		b.sendErrorMessage(chatID, "Счет или категория не выбраны, начните заново: /add")
		return
	}

	req := finance.CreateExpenseRequest{
		Amount:      amount,
		CategoryID:  uc.state.SelectedCategoryID,
		AccountID:   uc.state.SelectedAccountID,
		Description: description,
		ExpenseDate: date,
	}
	uc.state.reset()

	expense, err := uc.svc.Expenses.Create(context.Background(), req)
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при сохранении расхода: "+err.Error())
		return
	}

	msg := tgbotapi.NewMessage(chatID,
		fmt.Sprintf("Расход %s за %s сохранен! ✅", model.FormatAmount(expense.Amount), expense.ExpenseDate))
	msg.ReplyMarkup = b.getMainKeyboard()
	b.send(msg)
}
