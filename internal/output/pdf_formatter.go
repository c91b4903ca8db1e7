package output

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft   = 10.0
	pdfMarginTop    = 12.0
	pdfMarginBottom = 15.0
	pdfContentWidth = 297.0 - 2*pdfMarginLeft
	pdfRowHeight    = 5.0
)

// PDFFormatter produces a printable landscape report: one page per scenario with its
// metrics, year-by-year table and advice, followed by the assumptions.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf     *fpdf.Fpdf
	results *domain.ScenarioComparison
}

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	report := &pdfReport{
		pdf:     fpdf.New("L", "mm", "A4", ""),
		results: results,
	}
	report.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginLeft)
	report.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	report.pdf.SetTitle("Pension Drawdown Report", false)

	for _, sc := range results.Scenarios {
		report.addScenarioPage(sc)
	}
	report.addAssumptionsPage()

	var buf bytes.Buffer
	if err := report.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addScenarioPage(sc domain.ScenarioSummary) {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 18)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, pdfText("Pension Drawdown: "+sc.Name), "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.CellFormat(pdfContentWidth, 5, fmt.Sprintf("Generated: %s", nowFunc().Format("2 January 2006")), "", 1, "L", false, 0, "")
	r.pdf.Ln(3)

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	risk := "none"
	if sc.FirstSelfEnrolledAge != nil {
		risk = fmt.Sprintf("from age %d", *sc.FirstSelfEnrolledAge)
	}
	metrics := []string{
		"Average monthly net: " + pdfAmount(sc.AverageMonthlyNet),
		"Lifetime deduction: " + pdfAmount(sc.LifetimeDeduction),
		fmt.Sprintf("Assets at %d: %s", domain.SimulationEndAge, pdfAmount(sc.FinalAssets)),
		"Insurance contributions: " + risk,
		"Assets last through age: " + FormatAge(sc.LastFundedAge, "-"),
		"Sustainable spending: " + pdfAmount(sc.SustainableSpending) + " per year",
	}
	for _, m := range metrics {
		r.pdf.CellFormat(pdfContentWidth, pdfRowHeight, m, "", 1, "L", false, 0, "")
	}
	r.pdf.Ln(3)

	r.addRecordTable(sc.Records)

	if len(sc.Advice) > 0 {
		r.pdf.Ln(3)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.SetTextColor(0, 51, 102)
		r.pdf.CellFormat(pdfContentWidth, 6, "Advice", "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 9)
		r.pdf.SetTextColor(50, 50, 50)
		for _, line := range sc.Advice {
			r.pdf.MultiCell(pdfContentWidth, 4.5, "- "+pdfText(line), "", "L", false)
		}
	}
}

func (r *pdfReport) addRecordTable(records []domain.YearRecord) {
	widths := []float64{14, 29, 29, 29, 29, 29, 29, 29, 24}
	remaining := pdfContentWidth
	for _, w := range widths {
		remaining -= w
	}
	widths = append(widths, remaining)
	header := []string{"Age", "Pension", "Savings", "IRP", "Housing", "Taxable", "Deduction", "Net", "Status", "Remaining"}

	r.pdf.SetFont("Arial", "B", 8)
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	for i, h := range header {
		r.pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(-1)

	r.pdf.SetFont("Arial", "", 8)
	for i, rec := range records {
		fill := i%2 == 1
		r.pdf.SetFillColor(245, 247, 250)
		r.pdf.SetTextColor(50, 50, 50)
		cells := []string{
			strconv.Itoa(rec.Age),
			grouped(rec.NationalPension),
			grouped(rec.SavingsWithdrawal),
			grouped(rec.IRPWithdrawal),
			grouped(rec.HousingAnnuity),
			grouped(rec.TaxableBase),
			grouped(rec.TotalDeduction),
			grouped(rec.NetIncome),
			string(rec.InsuranceStatus),
			grouped(rec.RemainingAssets),
		}
		for j, c := range cells {
			align := "R"
			if j == 0 || j == 8 {
				align = "C"
			}
			if j == 8 && rec.InsuranceStatus == domain.SelfEnrolled {
				r.pdf.SetTextColor(200, 80, 0)
			}
			r.pdf.CellFormat(widths[j], pdfRowHeight, c, "1", 0, align, fill, 0, "")
			r.pdf.SetTextColor(50, 50, 50)
		}
		r.pdf.Ln(-1)
	}
}

func (r *pdfReport) addAssumptionsPage() {
	r.pdf.AddPage()
	r.pdf.SetFont("Arial", "B", 14)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Assumptions", "", 1, "L", false, 0, "")

	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptionsFor(r.results) {
		r.pdf.MultiCell(pdfContentWidth, 5, "- "+pdfText(a), "", "L", false)
	}

	if len(r.results.Scenarios) > 1 {
		r.pdf.Ln(4)
		r.pdf.SetFont("Arial", "B", 11)
		r.pdf.CellFormat(pdfContentWidth, 6, "Comparison", "", 1, "L", false, 0, "")
		r.pdf.SetFont("Arial", "", 10)
		r.pdf.CellFormat(pdfContentWidth, 5, pdfText("Highest monthly income: "+r.results.BestForMonthlyIncome), "", 1, "L", false, 0, "")
		r.pdf.CellFormat(pdfContentWidth, 5, pdfText("Most assets remaining: "+r.results.BestForFinalAssets), "", 1, "L", false, 0, "")
		r.pdf.CellFormat(pdfContentWidth, 5, pdfText("Lowest lifetime deduction: "+r.results.LowestLifetimeExpense), "", 1, "L", false, 0, "")
	}

	r.pdf.Ln(8)
	r.pdf.SetFont("Arial", "I", 8)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Pension, insurance and tax rules are simplified and subject to change.", "", "L", false)
}

// pdfAmount formats won for the core PDF fonts, which cannot render Hangul.
func pdfAmount(amount decimal.Decimal) string {
	return pdfText(FormatCurrency(amount))
}

// pdfText replaces characters outside the core font encoding.
func pdfText(s string) string {
	return strings.ReplaceAll(s, "원", " KRW")
}
