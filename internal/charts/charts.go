package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ivanoskov/expenses_bot/internal/model"
)

// Generator рисует графики по готовым агрегатам расходов
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

type palette struct {
	background drawing.Color
	font       drawing.Color
}

func paletteFor(theme string) palette {
	if theme == "dark" {
		return palette{
			background: drawing.Color{R: 24, G: 26, B: 32, A: 255},
			font:       chart.ColorWhite,
		}
	}
	return palette{
		background: chart.ColorWhite,
		font:       chart.ColorBlack,
	}
}

// CategoryPie создает круговую диаграмму расходов по категориям.
// Возвращает nil без ошибки, если рисовать нечего — тогда вместо
// графика показывается текстовая заглушка.
func (g *Generator) CategoryPie(summary *model.ExpenseSummary, theme string) ([]byte, error) {
	if summary == nil || summary.Total == 0 || len(summary.ByCategory) == 0 {
		return nil, nil
	}

	colors := paletteFor(theme)
	values := make([]chart.Value, 0, len(summary.ByCategory))
	for _, cat := range summary.ByCategory {
		if cat.Total <= 0 {
			continue
		}
		share := cat.Total / summary.Total * 100
		// Категории с долей меньше процента только замусоривают диаграмму
		if share < 1.0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s (%.1f%%)", cat.CategoryName, model.FormatAmount(cat.Total), share),
			Value: cat.Total,
			Style: chart.Style{
				FontSize:  12,
				FontColor: colors.font,
			},
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: colors.background,
		},
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := pie.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render category pie chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// AccountBars создает столбчатую диаграмму расходов по счетам
func (g *Generator) AccountBars(summary *model.ExpenseSummary, theme string) ([]byte, error) {
	if summary == nil || summary.Total == 0 || len(summary.ByAccount) == 0 {
		return nil, nil
	}

	colors := paletteFor(theme)
	bars := make([]chart.Value, 0, len(summary.ByAccount))
	for _, acc := range summary.ByAccount {
		if acc.Total <= 0 {
			continue
		}
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%s: %s", acc.AccountName, model.FormatAmount(acc.Total)),
			Value: acc.Total,
			Style: chart.Style{
				StrokeColor: chart.ColorBlue,
				FillColor:   chart.ColorBlue.WithAlpha(180),
				FontSize:    12,
				FontColor:   colors.font,
			},
		})
	}
	if len(bars) == 0 {
		return nil, nil
	}

	graph := chart.BarChart{
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: colors.background,
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return model.FormatAmount(v.(float64))
			},
			Style: chart.Style{
				FontSize:  12,
				FontColor: colors.font,
			},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, fmt.Errorf("failed to render account bar chart: %w", err)
	}
	return buffer.Bytes(), nil
}
