package calculation

import (
	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// analyzeDiscount computes the impact of giving up a discount. The customer's
// own line pays the discount back; family lines and bundled products arrive as
// cascade effects, so a family bundle totals monthly discount x members.
func (ce *CancellationEngine) analyzeDiscount(discount *domain.Discount, catalog *domain.CatalogContext) *domain.CancellationAnalysis {
	target := discount.Target()
	effects := ce.ResolveCascadeEffects(domain.TargetDiscount, discount.ID, catalog)
	cascadeImpact := domain.SumImpact(effects)
	monthlyChange := target.MonthlyValue + cascadeImpact

	lostBenefits := ce.Tuning.LinkedServiceAnnualValue * won.Amount(len(discount.LinkedServices))

	analysis := newAnalysis(target, effects)
	analysis.ShortTerm = shortTermAnalysis(0, monthlyChange)
	analysis.MediumTerm = mediumTermAnalysis(0, -monthlyChange)
	analysis.LongTerm = longTermAnalysis(0, lostBenefits, 0, monthlyChange)
	analysis.Recommendation = ce.recommendDiscount(discount, cascadeImpact, RecommendationInput{
		ShortTerm:  analysis.ShortTerm,
		MediumTerm: analysis.MediumTerm,
		LongTerm:   analysis.LongTerm,
	})
	return analysis
}
