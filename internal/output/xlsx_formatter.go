package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet  = "Summary"
	maxSheetName  = 31
	wonNumberFmt  = 3 // #,##0
	xlsxHeaderRow = 1
)

// XLSXFormatter builds a workbook with a summary sheet and one sheet of records per scenario.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: wonNumberFmt})
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, results, headerStyle, moneyStyle); err != nil {
		return nil, err
	}

	used := map[string]bool{}
	for _, sc := range results.Scenarios {
		name := SheetName(sc.Name, used)
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeRecordSheet(f, name, sc.Records, headerStyle, moneyStyle); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSummarySheet(f *excelize.File, results *domain.ScenarioComparison, headerStyle, moneyStyle int) error {
	header := []interface{}{"Scenario", "AverageMonthlyNet", "LifetimeDeduction", "FinalAssets", "SustainableSpending", "FirstSelfEnrolledAge", "LastFundedAge"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(summarySheet, xlsxHeaderRow, xlsxHeaderRow, headerStyle); err != nil {
		return err
	}
	for i, sc := range results.Scenarios {
		row := []interface{}{
			sc.Name,
			sc.AverageMonthlyNet.Round(0).InexactFloat64(),
			sc.LifetimeDeduction.Round(0).InexactFloat64(),
			sc.FinalAssets.Round(0).InexactFloat64(),
			sc.SustainableSpending.Round(0).InexactFloat64(),
			FormatAge(sc.FirstSelfEnrolledAge, "none"),
			FormatAge(sc.LastFundedAge, "none"),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return err
		}
	}
	if len(results.Scenarios) > 0 {
		last, _ := excelize.CoordinatesToCellName(5, len(results.Scenarios)+1)
		if err := f.SetCellStyle(summarySheet, "B2", last, moneyStyle); err != nil {
			return err
		}
	}
	return nil
}

func writeRecordSheet(f *excelize.File, sheet string, records []domain.YearRecord, headerStyle, moneyStyle int) error {
	header := make([]interface{}, len(RecordHeader))
	for i, h := range RecordHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetRowStyle(sheet, xlsxHeaderRow, xlsxHeaderRow, headerStyle); err != nil {
		return err
	}

	for i, r := range records {
		row := []interface{}{r.Age}
		for _, amount := range recordAmounts(r) {
			row = append(row, amount.Round(0).InexactFloat64())
		}
		row = append(row, string(r.InsuranceStatus), r.RemainingAssets.Round(0).InexactFloat64())

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	if len(records) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(RecordHeader), len(records)+1)
		if err := f.SetCellStyle(sheet, "B2", last, moneyStyle); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "K", 18)
}

// SheetName makes a scenario name usable as a worksheet name: invalid characters are
// replaced, the name is truncated to 31 runes, and collisions get a numeric suffix.
func SheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	if clean == "" {
		clean = "Scenario"
	}
	base := truncateRunes(clean, maxSheetName)
	candidate := base
	for n := 2; used[strings.ToLower(candidate)] || strings.EqualFold(candidate, summarySheet); n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(clean, maxSheetName-len(suffix)) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
