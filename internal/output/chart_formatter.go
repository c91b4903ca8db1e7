package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rpgo/pension-drawdown/internal/domain"
	won "github.com/rpgo/pension-drawdown/pkg/decimal"
	"github.com/shopspring/decimal"
)

const (
	chartBarWidth   = 40
	chartAssetWidth = 20
	assetMarker     = "◆"
)

type chartSeries struct {
	label string
	glyph string
	style lipgloss.Style
	value func(domain.YearRecord) decimal.Decimal
}

// incomeSeries are stacked left to right in this order.
var incomeSeries = []chartSeries{
	{"pension", "█", lipgloss.NewStyle().Foreground(lipgloss.Color("33")), func(r domain.YearRecord) decimal.Decimal { return r.NationalPension }},
	{"savings", "▓", lipgloss.NewStyle().Foreground(lipgloss.Color("42")), func(r domain.YearRecord) decimal.Decimal { return r.SavingsWithdrawal }},
	{"IRP", "▒", lipgloss.NewStyle().Foreground(lipgloss.Color("214")), func(r domain.YearRecord) decimal.Decimal { return r.IRPWithdrawal }},
	{"housing", "░", lipgloss.NewStyle().Foreground(lipgloss.Color("170")), func(r domain.YearRecord) decimal.Decimal { return r.HousingAnnuity }},
}

var assetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

// ChartFormatter draws a terminal stacked-bar chart of income by source per age,
// with a marker track showing remaining liquid assets.
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	for i, sc := range results.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		fmt.Fprintln(&buf, titleStyle.Render("INCOME BY SOURCE: "+sc.Name))
		fmt.Fprintln(&buf, chartLegend())
		buf.WriteString(StackedBarChart(sc.Records))
	}
	return buf.Bytes(), nil
}

func chartLegend() string {
	parts := make([]string, 0, len(incomeSeries)+1)
	for _, s := range incomeSeries {
		parts = append(parts, s.style.Render(s.glyph)+" "+s.label)
	}
	parts = append(parts, assetStyle.Render(assetMarker)+" remaining assets")
	return labelStyle.Render("Legend: ") + strings.Join(parts, "  ")
}

// StackedBarChart renders one row per record: a stacked bar of the income sources
// scaled to the largest gross income, then the remaining-assets marker track.
func StackedBarChart(records []domain.YearRecord) string {
	maxGross, maxAssets := decimal.Zero, decimal.Zero
	for _, r := range records {
		maxGross = decimal.Max(maxGross, r.GrossIncome())
		maxAssets = decimal.Max(maxAssets, r.RemainingAssets)
	}

	var b strings.Builder
	for _, r := range records {
		fmt.Fprintf(&b, "%3d │", r.Age)

		cumulative := decimal.Zero
		drawn := 0
		for _, s := range incomeSeries {
			cumulative = cumulative.Add(s.value(r))
			end := scaleTo(cumulative, maxGross, chartBarWidth)
			if end > drawn {
				b.WriteString(s.style.Render(strings.Repeat(s.glyph, end-drawn)))
				drawn = end
			}
		}
		b.WriteString(strings.Repeat(" ", chartBarWidth-drawn))
		fmt.Fprintf(&b, " %10s │", shortAmount(r.GrossIncome()))

		track := []rune(strings.Repeat("·", chartAssetWidth))
		pos := scaleTo(r.RemainingAssets, maxAssets, chartAssetWidth-1)
		b.WriteString(labelStyle.Render(string(track[:pos])))
		b.WriteString(assetStyle.Render(assetMarker))
		b.WriteString(labelStyle.Render(string(track[pos+1:])))
		fmt.Fprintf(&b, " %10s\n", shortAmount(r.RemainingAssets))
	}
	return b.String()
}

// scaleTo maps v in [0,limit] onto [0,width] cells.
func scaleTo(v, limit decimal.Decimal, width int) int {
	if !limit.IsPositive() || !v.IsPositive() {
		return 0
	}
	cells := int(v.Div(limit).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if cells > width {
		return width
	}
	return cells
}

// shortAmount expresses won in 만 units, e.g. 48,000,000 -> 4,800만.
func shortAmount(d decimal.Decimal) string {
	return humanize.Comma(won.NewWonFromDecimal(d).Manwon().Round(0).IntPart()) + "만"
}
