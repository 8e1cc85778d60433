package calculation

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// familyLinesLabel names the affected service for a shared family discount
const familyLinesLabel = "가족 회선"

// ResolveCascadeEffects lists the items that lose value or cost more when the
// target is cancelled. Resolution is one hop: effects never trigger further
// effects. Add-ons have no dependents and yield an empty list.
func (ce *CancellationEngine) ResolveCascadeEffects(targetType domain.TargetType, targetID string, catalog *domain.CatalogContext) []domain.CascadeEffect {
	effects := []domain.CascadeEffect{}
	if catalog == nil {
		return effects
	}

	switch targetType {
	case domain.TargetPlan:
		effects = append(effects, ce.planCascades(targetID, catalog)...)
	case domain.TargetDiscount:
		if discount := catalog.FindDiscount(targetID); discount != nil {
			effects = append(effects, ce.discountCascades(discount, catalog)...)
		}
	}
	return effects
}

func (ce *CancellationEngine) planCascades(planID string, catalog *domain.CatalogContext) []domain.CascadeEffect {
	var effects []domain.CascadeEffect

	// Bundle discounts are tied to the mobile plan
	for _, d := range catalog.SelectedDiscounts() {
		if d.Type != domain.DiscountBundle {
			continue
		}
		effects = append(effects, domain.CascadeEffect{
			AffectedService: d.Name,
			EffectType:      domain.EffectDiscountLoss,
			Description:     fmt.Sprintf("요금제 해지 시 %s 월 %s이 중단됩니다", d.Name, won.FormatPrice(int64(d.MonthlyDiscount))),
			MonthlyImpact:   d.MonthlyDiscount,
		})
	}

	for _, a := range catalog.SelectedAddons() {
		if !a.IsFree || !a.BenefitOf(planID) {
			continue
		}
		effects = append(effects, domain.CascadeEffect{
			AffectedService: a.Name,
			EffectType:      domain.EffectBenefitLoss,
			Description:     fmt.Sprintf("요금제 혜택으로 제공되던 %s을 더 이상 이용할 수 없습니다", a.Name),
			MonthlyImpact:   0,
		})
	}
	return effects
}

func (ce *CancellationEngine) discountCascades(d *domain.Discount, catalog *domain.CatalogContext) []domain.CascadeEffect {
	var effects []domain.CascadeEffect

	if d.IsFamilyBundle() && d.Members() > 1 {
		others := d.Members() - 1
		effects = append(effects, domain.CascadeEffect{
			AffectedService: familyLinesLabel,
			EffectType:      domain.EffectDiscountLoss,
			Description:     fmt.Sprintf("다른 가족 %d명의 %s도 함께 해제됩니다", others, d.Name),
			MonthlyImpact:   d.MonthlyDiscount * won.Amount(others),
			AffectedMembers: others,
		})
	}

	if d.IsTripleBundle() {
		for _, id := range d.LinkedServices {
			category := catalog.ProductCategoryOf(id)
			loss := ce.Tuning.TripleBundleLoss[category]
			if loss <= 0 {
				ce.Logger.Debugf("linked service %q (%s) has no bundle loss configured", id, category)
				continue
			}
			name := catalog.ProductName(id)
			effects = append(effects, domain.CascadeEffect{
				AffectedService: name,
				EffectType:      domain.EffectPriceIncrease,
				Description:     fmt.Sprintf("%s의 결합 할인이 종료되어 요금이 월 %s 인상됩니다", name, won.FormatPrice(int64(loss))),
				MonthlyImpact:   loss,
			})
		}
	}
	return effects
}
