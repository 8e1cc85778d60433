package output

import (
	"sort"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// ReportSummary condenses a report for the banner at the end of console output.
type ReportSummary struct {
	Counts map[domain.RecommendationType]int
	// BestTarget is the proceed-rated item with the highest long-term net gain
	BestTarget  string
	BestNetGain won.Amount
	// NetMonthlyChange is the bill change if every proceed-rated item were
	// cancelled; negative means the bill goes down
	NetMonthlyChange won.Amount
}

// SummarizeReport counts verdicts and picks the most beneficial cancellation.
// Extracted from console logic for testability.
func SummarizeReport(report *domain.CancellationReport) ReportSummary {
	summary := ReportSummary{Counts: map[domain.RecommendationType]int{}}

	var proceed []domain.CancellationAnalysis
	for _, a := range report.Analyses {
		summary.Counts[a.Recommendation.Type]++
		if a.Recommendation.Type == domain.RecommendProceed {
			proceed = append(proceed, a)
			summary.NetMonthlyChange += a.ShortTerm.MonthlyChange
		}
	}
	if len(proceed) == 0 {
		return summary
	}

	sort.SliceStable(proceed, func(i, j int) bool {
		return proceed[i].LongTerm.TotalNetGain > proceed[j].LongTerm.TotalNetGain
	})
	summary.BestTarget = proceed[0].TargetName
	summary.BestNetGain = proceed[0].LongTerm.TotalNetGain
	return summary
}
