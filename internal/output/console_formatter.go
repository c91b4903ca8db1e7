package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	won "github.com/rpgo/pension-drawdown/pkg/decimal"
	"github.com/shopspring/decimal"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// consoleColumns is the tabular view; the taxable base and raw contribution stay in the file exports.
var consoleColumns = []string{"Age", "Pension", "Savings", "IRP", "Housing", "Deduction", "Net", "Status", "Remaining"}

// ConsoleFormatter renders each scenario as a metrics block followed by its year-by-year table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, titleStyle.Render("PENSION DRAWDOWN SUMMARY"))
	fmt.Fprintln(&buf, strings.Repeat("=", 24))

	for _, sc := range results.Scenarios {
		fmt.Fprintln(&buf)
		writeScenarioMetrics(&buf, sc)
		fmt.Fprintln(&buf, RecordTable(sc.Records))
		if len(sc.Advice) > 0 {
			fmt.Fprintln(&buf, headingStyle.Render("Advice"))
			for _, line := range sc.Advice {
				fmt.Fprintf(&buf, "  - %s\n", line)
			}
		}
	}

	if len(results.Scenarios) > 1 {
		rec := AnalyzeScenarios(results)
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s per month, Δ %s / %s)\n",
			rec.ScenarioName, FormatCurrency(rec.AverageMonthlyNet),
			FormatCurrency(rec.MonthlyNetChange), rec.PercentageChange.StringFixed(2)+"%")
		fmt.Fprintf(&buf, "Most assets at %d: %s\n", domain.SimulationEndAge, results.BestForFinalAssets)
		fmt.Fprintf(&buf, "Lowest lifetime deduction: %s\n", results.LowestLifetimeExpense)
		fmt.Fprintln(&buf, breakEvenLine(results.Scenarios[0], results.Scenarios[1]))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, headingStyle.Render("Assumptions"))
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "  • %s\n", a)
	}
	return buf.Bytes(), nil
}

func writeScenarioMetrics(buf *bytes.Buffer, sc domain.ScenarioSummary) {
	header := "Scenario: " + sc.Name
	if sc.Household.UseHousingAnnuity {
		header += " (housing annuity)"
	}
	fmt.Fprintln(buf, headingStyle.Render(header))

	risk := okStyle.Render("none")
	if sc.FirstSelfEnrolledAge != nil {
		risk = warnStyle.Render(fmt.Sprintf("from age %d", *sc.FirstSelfEnrolledAge))
	}
	metrics := []struct{ label, value string }{
		{"Average monthly net", FormatCurrency(sc.AverageMonthlyNet)},
		{"Lifetime deduction", FormatCurrency(sc.LifetimeDeduction)},
		{fmt.Sprintf("Assets at %d", domain.SimulationEndAge), FormatCurrency(sc.FinalAssets)},
		{"Insurance contributions", risk},
		{"Assets last through age", FormatAge(sc.LastFundedAge, "-")},
		{"Sustainable spending", FormatCurrency(sc.SustainableSpending) + " / year"},
	}
	for _, m := range metrics {
		fmt.Fprintf(buf, "  %s %s\n", labelStyle.Render(fmt.Sprintf("%-24s", m.label+":")), m.value)
	}
}

// RecordTable renders records as a bordered lipgloss table with grouped amounts.
func RecordTable(records []domain.YearRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Age),
			grouped(r.NationalPension),
			grouped(r.SavingsWithdrawal),
			grouped(r.IRPWithdrawal),
			grouped(r.HousingAnnuity),
			grouped(r.TotalDeduction),
			grouped(r.NetIncome),
			string(r.InsuranceStatus),
			grouped(r.RemainingAssets),
		})
	}

	statusCol := len(consoleColumns) - 2
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers(consoleColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headingStyle.Padding(0, 1)
			case row >= 0 && row < len(rows) && col == statusCol && rows[row][col] == string(domain.SelfEnrolled):
				return warnStyle.Padding(0, 1)
			case col == 0 || col == statusCol:
				return cellStyle
			default:
				return cellStyle.Align(lipgloss.Right)
			}
		})
	return t.String()
}

func grouped(d decimal.Decimal) string {
	return won.NewWonFromDecimal(d).Grouped()
}

// breakEvenLine describes when the running net income totals of two scenarios meet.
func breakEvenLine(a, b domain.ScenarioSummary) string {
	prefix := fmt.Sprintf("Cumulative net income of %s and %s", a.Name, b.Name)
	be, err := calculation.CalculateCumulativeBreakEven(a.Records, b.Records)
	if err != nil || be == nil {
		return prefix + " never evens out"
	}
	return fmt.Sprintf("%s evens out at age %d (month %d) at %s", prefix, be.Age, be.Month, FormatCurrency(be.CumulativeAmount))
}
