package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/callcenter/cancel-advisor/internal/domain"
)

// CSVSummarizer implements the summary CSV output (one row per analyzed item).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.CancellationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"TargetType", "TargetID", "TargetName", "ImmediateCost", "MonthlyChange", "ShortTermTotal", "BreakEvenMonth", "MediumTermTotal", "ProjectedSavings", "LostBenefits", "NetGain", "CascadeImpact", "Recommendation", "WaitMonths"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for i := range report.Analyses {
		a := &report.Analyses[i]
		breakEven := ""
		if a.MediumTerm.BreakEvenMonth != nil {
			breakEven = strconv.Itoa(*a.MediumTerm.BreakEvenMonth)
		}
		row := []string{
			string(a.TargetType),
			a.TargetID,
			a.TargetName,
			amount(a.ShortTerm.ImmediateCost),
			amount(a.ShortTerm.MonthlyChange),
			amount(a.ShortTerm.TotalImpact),
			breakEven,
			amount(a.MediumTerm.TotalImpact),
			amount(a.LongTerm.ProjectedSavings),
			amount(a.LongTerm.LostBenefitsValue),
			amount(a.LongTerm.TotalNetGain),
			amount(a.CascadeImpact()),
			string(a.Recommendation.Type),
			strconv.Itoa(a.Recommendation.WaitMonths),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVCumulativeExporter writes the month-by-month cumulative cost curve of every item,
// the series the dashboard charts.
type CSVCumulativeExporter struct{}

func (c CSVCumulativeExporter) Name() string { return "cumulative-csv" }

func (c CSVCumulativeExporter) Format(report *domain.CancellationReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"TargetID", "Month", "Cumulative"}); err != nil {
		return nil, err
	}
	for _, a := range report.Analyses {
		for month, v := range a.MediumTerm.CumulativeByMonth {
			if err := w.Write([]string{a.TargetID, strconv.Itoa(month+1), amount(v)}); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func amount[T ~int64](v T) string { return strconv.FormatInt(int64(v), 10) }
