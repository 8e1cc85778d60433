package calculation

import (
	"github.com/callcenter/cancel-advisor/internal/domain"
)

// analyzeAddon computes the impact of cancelling an add-on. Add-ons carry no
// termination fee and have no dependents; cancelling removes their charge.
func (ce *CancellationEngine) analyzeAddon(addon *domain.AddonService, catalog *domain.CatalogContext) *domain.CancellationAnalysis {
	target := addon.Target()
	effects := ce.ResolveCascadeEffects(domain.TargetAddon, addon.ID, catalog)
	monthlyChange := -target.MonthlyValue + domain.SumImpact(effects)

	analysis := newAnalysis(target, effects)
	analysis.ShortTerm = shortTermAnalysis(0, monthlyChange)
	analysis.MediumTerm = mediumTermAnalysis(0, -monthlyChange)
	analysis.LongTerm = longTermAnalysis(target.MonthlyValue*domain.LongTermMonths, ce.benefitValue(addon), 0, monthlyChange)
	analysis.Recommendation = ce.recommendAddon(addon, RecommendationInput{
		ShortTerm:  analysis.ShortTerm,
		MediumTerm: analysis.MediumTerm,
		LongTerm:   analysis.LongTerm,
	})
	return analysis
}
