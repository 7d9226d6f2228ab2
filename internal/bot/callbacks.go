package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/expenses_bot/internal/finance"
	"github.com/ivanoskov/expenses_bot/internal/model"
)

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID
	uc := b.userFor(chatID)
	data := callback.Data

	switch {
	case data == "acct_new":
		uc.state.reset()
		uc.state.Awaiting = awaitAccountName
		b.reply(chatID, "Введите название счета:")

	case strings.HasPrefix(data, "acct_type_"):
		b.finishAccountCreate(uc, chatID, model.AccountType(strings.TrimPrefix(data, "acct_type_")))

	case strings.HasPrefix(data, "acct_ren_"):
		uc.state.reset()
		uc.state.RenameAccountID = strings.TrimPrefix(data, "acct_ren_")
		uc.state.Awaiting = awaitAccountRename
		b.reply(chatID, "Введите новое название счета:")

	case strings.HasPrefix(data, "acct_del_"):
		b.confirmAccountDelete(uc, chatID, strings.TrimPrefix(data, "acct_del_"))

	case strings.HasPrefix(data, "acct_confirm_"):
		b.finishAccountDelete(uc, chatID, strings.TrimPrefix(data, "acct_confirm_"))

	case data == "acct_cancel":
		b.reply(chatID, "Удаление отменено")

	case strings.HasPrefix(data, "exp_acct_"):
		b.chooseExpenseCategory(uc, chatID, strings.TrimPrefix(data, "exp_acct_"))

	case strings.HasPrefix(data, "exp_cat_"):
		uc.state.SelectedCategoryID = strings.TrimPrefix(data, "exp_cat_")
		uc.state.Awaiting = awaitExpenseInput
		b.reply(chatID, "Введите сумму, при желании дату и описание:\n250.50 обед\n120 2026-08-30 такси")

	case strings.HasPrefix(data, "exp_del_"):
		b.finishExpenseDelete(uc, chatID, strings.TrimPrefix(data, "exp_del_"))

	case strings.HasPrefix(data, "theme_"):
		theme := strings.TrimPrefix(data, "theme_")
		if err := uc.sess.SetTheme(theme); err != nil {
			b.sendErrorMessage(chatID, "Не удалось сохранить тему: "+err.Error())
		} else {
			b.reply(chatID, "Тема сохранена ✅")
		}
	}

	// Отвечаем на callback, чтобы убрать loading indicator
	if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

func (b *Bot) finishAccountCreate(uc *userContext, chatID int64, accType model.AccountType) {
	name := uc.state.PendingAccountName
	uc.state.reset()

	if name == "" {
		b.sendErrorMessage(chatID, "Название счета потерялось, начните заново: /accounts")
		return
	}
	if accType != model.AccountTypeBank && accType != model.AccountTypeCard {
		b.sendErrorMessage(chatID, "Неизвестный тип счета")
		return
	}

	account, err := uc.svc.Accounts.Create(context.Background(), name, accType)
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при создании счета: "+err.Error())
		return
	}
	b.reply(chatID, fmt.Sprintf("Счет «%s» создан! ✅", account.Name))
}

// confirmAccountDelete показывает, сколько расходов уйдет вместе со
// счетом, и просит подтверждение. Сами расходы удалит бэкенд каскадом.
func (b *Bot) confirmAccountDelete(uc *userContext, chatID int64, accountID string) {
	expenses, err := uc.svc.Expenses.List(context.Background(), finance.ExpenseFilter{AccountID: accountID})
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при проверке расходов счета: "+err.Error())
		return
	}

	text := "Удалить этот счет?"
	if len(expenses) > 0 {
		text = fmt.Sprintf("У этого счета %d расход(ов). Вместе со счетом удалятся и они. Продолжить?", len(expenses))
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.getConfirmDeleteKeyboard(accountID)
	b.send(msg)
}

func (b *Bot) finishAccountDelete(uc *userContext, chatID int64, accountID string) {
	if err := uc.svc.Accounts.Delete(context.Background(), accountID); err != nil {
		b.sendErrorMessage(chatID, "Ошибка при удалении счета: "+err.Error())
		return
	}
	b.reply(chatID, "Счет и его расходы удалены ✅")
}

func (b *Bot) chooseExpenseCategory(uc *userContext, chatID int64, accountID string) {
	categories, err := uc.svc.Categories.List(context.Background())
	if err != nil {
		b.sendErrorMessage(chatID, "Ошибка при получении категорий: "+err.Error())
		return
	}
	if len(categories) == 0 {
		b.sendErrorMessage(chatID, "На сервере нет ни одной категории")
		return
	}

	uc.state.SelectedAccountID = accountID
	msg := tgbotapi.NewMessage(chatID, "Выберите категорию:")
	msg.ReplyMarkup = b.getCategoriesKeyboard(categories)
	b.send(msg)
}

func (b *Bot) finishExpenseDelete(uc *userContext, chatID int64, expenseID string) {
	if err := uc.svc.Expenses.Delete(context.Background(), expenseID); err != nil {
		b.sendErrorMessage(chatID, "Ошибка при удалении расхода: "+err.Error())
		return
	}
	b.reply(chatID, "Расход удален ✅")
}
