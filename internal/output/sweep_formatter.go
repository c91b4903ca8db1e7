package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
)

var sweepColumns = []string{"Return", "Avg monthly net", fmt.Sprintf("Assets at %d", domain.SimulationEndAge), "Funded through", "Self-enrolled years", "Sustainable spending"}

// SweepTable renders a return rate sweep of one household.
func SweepTable(name string, points []calculation.SweepPoint) string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{
			FormatPercentage(p.ReturnRate),
			grouped(p.AverageMonthlyNet),
			grouped(p.FinalAssets),
			FormatAge(p.LastFundedAge, "-"),
			strconv.Itoa(p.SelfEnrolledYears),
			grouped(p.SustainableSpending),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(labelStyle).
		Headers(sweepColumns...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headingStyle.Padding(0, 1)
			}
			return cellStyle.Align(lipgloss.Right)
		})

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("RETURN RATE SWEEP: "+name))
	fmt.Fprintln(&b, t.String())
	return b.String()
}
