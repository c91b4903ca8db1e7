package domain

import "github.com/shopspring/decimal"

// InsuranceStatus is the health-insurance classification for a simulated year.
type InsuranceStatus string

const (
	// Dependent means the retiree stays covered under a family member and owes nothing.
	Dependent InsuranceStatus = "Dependent"
	// SelfEnrolled means the retiree pays an income- and property-based contribution.
	SelfEnrolled InsuranceStatus = "SelfEnrolled"
)

// YearRecord is the cash flow for a single simulated age.
type YearRecord struct {
	Age                   int             `json:"age"`
	NationalPension       decimal.Decimal `json:"national_pension"`
	SavingsWithdrawal     decimal.Decimal `json:"savings_withdrawal"`
	IRPWithdrawal         decimal.Decimal `json:"irp_withdrawal"`
	HousingAnnuity        decimal.Decimal `json:"housing_annuity"`
	TaxableBase           decimal.Decimal `json:"taxable_base"`
	InsuranceContribution decimal.Decimal `json:"insurance_contribution"`
	TotalDeduction        decimal.Decimal `json:"total_deduction"`
	NetIncome             decimal.Decimal `json:"net_income"`
	InsuranceStatus       InsuranceStatus `json:"insurance_status"`
	RemainingAssets       decimal.Decimal `json:"remaining_assets"`
}

// GrossIncome returns everything paid out in the year before deductions.
func (r YearRecord) GrossIncome() decimal.Decimal {
	return r.NationalPension.Add(r.SavingsWithdrawal).Add(r.IRPWithdrawal).Add(r.HousingAnnuity)
}

// MonthlyNetIncome returns the net income spread over twelve months.
func (r YearRecord) MonthlyNetIncome() decimal.Decimal {
	return r.NetIncome.Div(decimal.NewFromInt(12))
}

// IncomeBySource totals each payout source over a run.
type IncomeBySource struct {
	NationalPension   decimal.Decimal `json:"national_pension"`
	SavingsWithdrawal decimal.Decimal `json:"savings_withdrawal"`
	IRPWithdrawal     decimal.Decimal `json:"irp_withdrawal"`
	HousingAnnuity    decimal.Decimal `json:"housing_annuity"`
}

// ScenarioSummary provides the key metrics of one simulated scenario.
type ScenarioSummary struct {
	Name                 string           `json:"name"`
	Household            SimulationConfig `json:"household"`
	AverageMonthlyNet    decimal.Decimal  `json:"average_monthly_net"`
	LifetimeDeduction    decimal.Decimal  `json:"lifetime_deduction"`
	LifetimeNetIncome    decimal.Decimal  `json:"lifetime_net_income"`
	FinalAssets          decimal.Decimal  `json:"final_assets"`
	FirstSelfEnrolledAge *int             `json:"first_self_enrolled_age,omitempty"` // nil when dependent for life
	SelfEnrolledYears    int              `json:"self_enrolled_years"`
	LastFundedAge        *int             `json:"last_funded_age,omitempty"` // last age with remaining assets; nil when none
	SustainableSpending  decimal.Decimal  `json:"sustainable_annual_spending"`
	Totals               IncomeBySource   `json:"totals"`
	Advice               []string         `json:"advice"`
	Records              []YearRecord     `json:"records"`
}

// ScenarioComparison collects every scenario of a configuration.
type ScenarioComparison struct {
	Scenarios             []ScenarioSummary `json:"scenarios"`
	BestForMonthlyIncome  string            `json:"best_for_monthly_income"`
	BestForFinalAssets    string            `json:"best_for_final_assets"`
	LowestLifetimeExpense string            `json:"lowest_lifetime_deduction"`
	Assumptions           []string          `json:"assumptions"`
}
