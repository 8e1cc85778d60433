package calculation

import (
	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// analyzePlan computes the impact of cancelling a plan. The short-term view
// only counts the contract discount and cascades lost; the medium-term view
// nets them against the plan price that leaves the bill.
func (ce *CancellationEngine) analyzePlan(plan *domain.Plan, catalog *domain.CatalogContext) *domain.CancellationAnalysis {
	target := plan.Target()
	effects := ce.ResolveCascadeEffects(domain.TargetPlan, plan.ID, catalog)
	cascadeImpact := domain.SumImpact(effects)

	var immediateCost, contractDiscount won.Amount
	remaining := 0
	if plan.HasActiveContract() {
		nominal := plan.Contract.Type.NominalMonths()
		remaining = plan.Contract.RemainingMonths
		if remaining < 0 || remaining > nominal {
			ce.Logger.Warnf("plan %s: remaining months %d outside contract term %d, clamping", plan.ID, remaining, nominal)
			remaining = clamp(remaining, 0, nominal)
		}
		contractDiscount = plan.Contract.MonthlyDiscount
		if plan.Penalty != nil {
			immediateCost = -CalculatePenalty(plan.Penalty.DeviceSubsidyTotal, nominal, remaining)
		}
	}

	shortMonthly := contractDiscount + cascadeImpact
	monthlyGain := target.MonthlyValue - contractDiscount - cascadeImpact

	var lostBenefits won.Amount
	for _, a := range catalog.SelectedAddons() {
		if a.BenefitOf(plan.ID) {
			lostBenefits += ce.benefitValue(a)
		}
	}

	analysis := newAnalysis(target, effects)
	analysis.ShortTerm = shortTermAnalysis(immediateCost, shortMonthly)
	analysis.MediumTerm = mediumTermAnalysis(immediateCost, monthlyGain)
	analysis.LongTerm = longTermAnalysis(target.MonthlyValue*domain.LongTermMonths, lostBenefits, immediateCost, shortMonthly)
	analysis.RemainingContractMonths = remaining
	analysis.Recommendation = ce.GenerateRecommendation(RecommendationInput{
		ShortTerm:       analysis.ShortTerm,
		MediumTerm:      analysis.MediumTerm,
		LongTerm:        analysis.LongTerm,
		HasContract:     plan.HasActiveContract(),
		RemainingMonths: remaining,
	})

	ce.Logger.Debugf("plan %s: immediate=%d short=%d gain=%d net36=%d -> %s",
		plan.ID, immediateCost, shortMonthly, monthlyGain, analysis.LongTerm.TotalNetGain, analysis.Recommendation.Type)
	return analysis
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
