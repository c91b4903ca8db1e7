package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/goccy/go-json"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a self-contained HTML report with tables and a stacked income chart.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"grouped": grouped,
	"age":     FormatAge,
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
	"selfEnrolled": func(s domain.InsuranceStatus) bool { return s == domain.SelfEnrolled },
}).Parse(htmlTemplateSource))

// chartData is the per-scenario series consumed by the report's chart script.
type chartData struct {
	Ages      []int     `json:"ages"`
	Pension   []float64 `json:"pension"`
	Savings   []float64 `json:"savings"`
	IRP       []float64 `json:"irp"`
	Housing   []float64 `json:"housing"`
	Remaining []float64 `json:"remaining"`
}

func newChartData(records []domain.YearRecord) chartData {
	var cd chartData
	f := func(d decimal.Decimal) float64 { return d.Round(0).InexactFloat64() }
	for _, r := range records {
		cd.Ages = append(cd.Ages, r.Age)
		cd.Pension = append(cd.Pension, f(r.NationalPension))
		cd.Savings = append(cd.Savings, f(r.SavingsWithdrawal))
		cd.IRP = append(cd.IRP, f(r.IRPWithdrawal))
		cd.Housing = append(cd.Housing, f(r.HousingAnnuity))
		cd.Remaining = append(cd.Remaining, f(r.RemainingAssets))
	}
	return cd
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	charts := make([]chartData, len(results.Scenarios))
	for i, sc := range results.Scenarios {
		charts[i] = newChartData(sc.Records)
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation Recommendation
		Assumptions    []string
		Charts         []chartData
		EndAge         int
	}{results, AnalyzeScenarios(results), assumptionsFor(results), charts, domain.SimulationEndAge}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
