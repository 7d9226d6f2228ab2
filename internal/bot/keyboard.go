package bot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

func (b *Bot) getMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💸 Добавить расход"),
			tgbotapi.NewKeyboardButton("📊 Дашборд"),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton("💳 Счета"),
			tgbotapi.NewKeyboardButton("📋 Последние расходы"),
		),
	)
}

func (b *Bot) getAccountTypeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏦 Банковский счет", "acct_type_BANK"),
			tgbotapi.NewInlineKeyboardButtonData("💳 Карта", "acct_type_CARD"),
		),
	)
}

func (b *Bot) getAccountsKeyboard(accounts []model.Account, prefix string) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	for _, account := range accounts {
		label := account.Name
		if account.Type == model.AccountTypeCard {
			label = "💳 " + label
		} else {
			label = "🏦 " + label
		}
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(label, prefix+account.ID),
		})
	}

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) getAccountManageKeyboard(accounts []model.Account) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	for _, account := range accounts {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("✏️ "+account.Name, "acct_ren_"+account.ID),
			tgbotapi.NewInlineKeyboardButtonData("🗑 Удалить", "acct_del_"+account.ID),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("➕ Новый счет", "acct_new"),
	})

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) getCategoriesKeyboard(categories []model.Category) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton

	for _, category := range categories {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(category.Name, "exp_cat_"+category.ID),
		})
	}

	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) getConfirmDeleteKeyboard(accountID string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Да, удалить", "acct_confirm_"+accountID),
			tgbotapi.NewInlineKeyboardButtonData("Отмена", "acct_cancel"),
		),
	)
}

func (b *Bot) getThemeKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("☀️ Светлая", "theme_light"),
			tgbotapi.NewInlineKeyboardButtonData("🌙 Темная", "theme_dark"),
		),
	)
}
