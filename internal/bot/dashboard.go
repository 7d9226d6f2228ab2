package bot

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/ivanoskov/expenses_bot/internal/finance"
	"github.com/ivanoskov/expenses_bot/internal/model"
)

// handleDashboard собирает недельный и месячный агрегаты и последние
// расходы. Три запроса уходят одновременно и соединяются, когда
// завершатся все: упавший кусок логируется и показывается пустым,
// остальные запросы он не отменяет.
func (b *Bot) handleDashboard(uc *userContext, chatID int64) {
	if !b.requireAuth(uc, chatID) {
		return
	}

	ctx := context.Background()

	var (
		weekly, monthly *model.ExpenseSummary
		recent          []model.Expense
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		summary, err := uc.svc.SummaryOrAggregate(ctx, model.PeriodWeekly, nil)
		if err != nil {
			log.Printf("Ошибка недельного агрегата: %v", err)
			return
		}
		weekly = summary
	}()
	go func() {
		defer wg.Done()
		summary, err := uc.svc.SummaryOrAggregate(ctx, model.PeriodMonthly, nil)
		if err != nil {
			log.Printf("Ошибка месячного агрегата: %v", err)
			return
		}
		monthly = summary
	}()
	go func() {
		defer wg.Done()
		expenses, err := uc.svc.Expenses.List(ctx, finance.ExpenseFilter{Limit: 10})
		if err != nil {
			log.Printf("Ошибка списка последних расходов: %v", err)
			return
		}
		recent = expenses
	}()
	wg.Wait()

	theme := uc.sess.Theme()

	b.sendSummarySection(chatID, "за неделю", weekly, theme)
	b.sendSummarySection(chatID, "за месяц", monthly, theme)

	if len(recent) == 0 {
		b.reply(chatID, "Недавних расходов нет")
		return
	}
	text := "📋 Недавние расходы:\n"
	for _, exp := range recent {
		line := fmt.Sprintf("• %s — %s", exp.ExpenseDate, model.FormatAmount(exp.Amount))
		if exp.Description != nil && *exp.Description != "" {
			line += ": " + *exp.Description
		}
		text += line + "\n"
	}
	b.reply(chatID, text)
}

func (b *Bot) sendSummarySection(chatID int64, label string, summary *model.ExpenseSummary, theme string) {
	if summary == nil {
		b.sendErrorMessage(chatID, "Не удалось получить расходы "+label)
		return
	}

	pie, err := b.charts.CategoryPie(summary, theme)
	if err != nil {
		log.Printf("Ошибка рендера диаграммы %s: %v", label, err)
	}
	if pie == nil {
		b.reply(chatID, fmt.Sprintf("Расходов %s нет 🎉", label))
		return
	}

	caption := fmt.Sprintf("📊 Расходы %s: %s", label, model.FormatAmount(summary.Total))
	b.sendPhoto(chatID, fmt.Sprintf("summary-%s-%s.png", summary.Period, summary.StartDate), pie, caption)

	if bars, err := b.charts.AccountBars(summary, theme); err == nil && bars != nil {
		b.sendPhoto(chatID, fmt.Sprintf("accounts-%s-%s.png", summary.Period, summary.StartDate), bars,
			"По счетам "+label)
	}
}
