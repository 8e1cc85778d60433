package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/dateutil"
)

// ConsoleFormatter renders the report the way an agent reads it to a customer.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.CancellationReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "해지 영향 분석 리포트")
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	if report.Customer != "" {
		fmt.Fprintf(&buf, "고객: %s\n", report.Customer)
	}
	if !report.AsOf.IsZero() {
		fmt.Fprintf(&buf, "기준일: %s\n", report.AsOf.Format("2006-01-02"))
	}

	if len(report.Analyses) == 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "분석할 가입 항목이 없습니다.")
		return buf.Bytes(), nil
	}

	for i := range report.Analyses {
		fmt.Fprintln(&buf)
		writeAnalysis(&buf, report, &report.Analyses[i])
	}

	summary := SummarizeReport(report)
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, strings.Repeat("=", 40))
	fmt.Fprintf(&buf, "요약: 진행 %d건 / 보류 %d건 / 대안 %d건\n",
		summary.Counts[domain.RecommendProceed],
		summary.Counts[domain.RecommendWait],
		summary.Counts[domain.RecommendAlternative])
	if summary.Counts[domain.RecommendProceed] > 0 {
		fmt.Fprintf(&buf, "진행 권고 항목 모두 해지 시 월 변동: %s\n", FormatWon(summary.NetMonthlyChange))
	}
	if summary.BestTarget != "" {
		fmt.Fprintf(&buf, "가장 유리한 해지: %s (36개월 순이익 %s)\n", summary.BestTarget, FormatWon(summary.BestNetGain))
	}
	return buf.Bytes(), nil
}

func writeAnalysis(buf *bytes.Buffer, report *domain.CancellationReport, a *domain.CancellationAnalysis) {
	fmt.Fprintf(buf, "[%s] %s (%s)\n", TargetTypeLabel(a.TargetType), a.TargetName, a.TargetID)
	fmt.Fprintln(buf, strings.Repeat("-", 40))

	fmt.Fprintf(buf, "  단기 (%d개월)\n", domain.ShortTermMonths)
	fmt.Fprintf(buf, "    즉시 비용:   %s\n", FormatWon(a.ShortTerm.ImmediateCost))
	fmt.Fprintf(buf, "    월 변동:     %s\n", FormatWon(a.ShortTerm.MonthlyChange))
	fmt.Fprintf(buf, "    합계:        %s\n", FormatWon(a.ShortTerm.TotalImpact))

	fmt.Fprintf(buf, "  중기 (%d개월)\n", domain.MediumTermMonths)
	fmt.Fprintf(buf, "    손익분기:    %s\n", FormatBreakEven(a.MediumTerm.BreakEvenMonth))
	fmt.Fprintf(buf, "    누적 영향:   %s\n", FormatWon(a.MediumTerm.TotalImpact))

	fmt.Fprintf(buf, "  장기 (%d개월)\n", domain.LongTermMonths)
	fmt.Fprintf(buf, "    예상 절감:   %s\n", FormatWon(a.LongTerm.ProjectedSavings))
	fmt.Fprintf(buf, "    상실 혜택:   %s\n", FormatWon(a.LongTerm.LostBenefitsValue))
	fmt.Fprintf(buf, "    순이익:      %s\n", FormatWon(a.LongTerm.TotalNetGain))

	if a.RemainingContractMonths > 0 {
		line := "  약정 잔여:     " + intToString(a.RemainingContractMonths) + "개월"
		if !report.AsOf.IsZero() {
			end := dateutil.ContractEndDate(report.AsOf, a.RemainingContractMonths)
			line += " (" + dateutil.FormatYearMonth(end) + " 만료)"
		}
		fmt.Fprintln(buf, line)
	}

	if len(a.CascadeEffects) > 0 {
		fmt.Fprintln(buf, "  연쇄 영향")
		for _, e := range a.CascadeEffects {
			fmt.Fprintf(buf, "    - %s [%s] %s/월", e.AffectedService, EffectTypeLabel(e.EffectType), FormatWon(e.MonthlyImpact))
			if e.AffectedMembers > 1 {
				fmt.Fprintf(buf, " (%d명)", e.AffectedMembers)
			}
			fmt.Fprintln(buf)
			if e.Description != "" {
				fmt.Fprintf(buf, "      %s\n", e.Description)
			}
		}
	}

	rec := a.Recommendation
	fmt.Fprintf(buf, "  권고: %s\n", RecommendationLabel(rec.Type))
	fmt.Fprintf(buf, "    %s\n", rec.Reason)
	if rec.SuggestedAction != "" {
		fmt.Fprintf(buf, "    → %s\n", rec.SuggestedAction)
	}
}
