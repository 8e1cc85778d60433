package calculation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// ErrUnknownTargetType is returned by ParseTargetType for unrecognised input
var ErrUnknownTargetType = errors.New("unknown cancellation target type")

// CancellationEngine computes the financial impact of cancelling a plan,
// add-on or discount. It holds no per-call state and is safe for concurrent use
// once configured.
type CancellationEngine struct {
	Tuning domain.Tuning
	Logger Logger
}

// NewCancellationEngine creates an engine with the default tuning
func NewCancellationEngine() *CancellationEngine {
	return NewCancellationEngineWithTuning(domain.DefaultTuning())
}

// NewCancellationEngineWithTuning creates an engine with configurable heuristics.
// The tuning is used as given; start from domain.DefaultTuning to override single values.
func NewCancellationEngineWithTuning(tuning domain.Tuning) *CancellationEngine {
	return &CancellationEngine{
		Tuning: tuning,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (ce *CancellationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ParseTargetType converts user input ("plan", "add-on", "discount", ...) to a TargetType
func ParseTargetType(s string) (domain.TargetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plan", "요금제":
		return domain.TargetPlan, nil
	case "addon", "add-on", "부가서비스":
		return domain.TargetAddon, nil
	case "discount", "할인":
		return domain.TargetDiscount, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTargetType, s)
}

// AnalyzeCancellation analyzes cancelling the target with the given type and id.
// It returns nil when the id does not exist among the catalog entries of that type.
func (ce *CancellationEngine) AnalyzeCancellation(targetType domain.TargetType, targetID string, catalog *domain.CatalogContext) *domain.CancellationAnalysis {
	if catalog == nil {
		return nil
	}
	if !targetType.Valid() {
		ce.Logger.Warnf("unknown cancellation target type %q", targetType)
		return nil
	}

	switch targetType {
	case domain.TargetPlan:
		if plan := catalog.FindPlan(targetID); plan != nil {
			return ce.analyzePlan(plan, catalog)
		}
	case domain.TargetAddon:
		if addon := catalog.FindAddon(targetID); addon != nil {
			return ce.analyzeAddon(addon, catalog)
		}
	case domain.TargetDiscount:
		if discount := catalog.FindDiscount(targetID); discount != nil {
			return ce.analyzeDiscount(discount, catalog)
		}
	}

	ce.Logger.Debugf("cancellation target %s/%s not found in catalog", targetType, targetID)
	return nil
}

// AnalyzeSelection analyzes every currently active item: the selected plan,
// then selected add-ons and discounts in catalog order.
func (ce *CancellationEngine) AnalyzeSelection(catalog *domain.CatalogContext) []domain.CancellationAnalysis {
	if catalog == nil {
		return nil
	}
	var analyses []domain.CancellationAnalysis

	if catalog.SelectedPlanID != "" {
		if a := ce.AnalyzeCancellation(domain.TargetPlan, catalog.SelectedPlanID, catalog); a != nil {
			analyses = append(analyses, *a)
		} else {
			ce.Logger.Warnf("selected plan %q is missing from the catalog", catalog.SelectedPlanID)
		}
	}
	for _, addon := range catalog.SelectedAddons() {
		analyses = append(analyses, *ce.analyzeAddon(addon, catalog))
	}
	for _, discount := range catalog.SelectedDiscounts() {
		analyses = append(analyses, *ce.analyzeDiscount(discount, catalog))
	}
	return analyses
}

// BuildReport analyzes the configured customer's active items
func (ce *CancellationEngine) BuildReport(config *domain.Configuration) *domain.CancellationReport {
	return &domain.CancellationReport{
		Customer: config.Customer,
		AsOf:     config.AsOf,
		Analyses: ce.AnalyzeSelection(&config.Catalog),
	}
}

// shortTermAnalysis assembles the 3-month view
func shortTermAnalysis(immediateCost, monthlyChange won.Amount) domain.ShortTermAnalysis {
	return domain.ShortTermAnalysis{
		ImmediateCost: immediateCost,
		MonthlyChange: monthlyChange,
		TotalImpact:   immediateCost + monthlyChange*domain.ShortTermMonths,
	}
}

// mediumTermAnalysis assembles the 12-month view from the one-time cost and the net monthly gain
func mediumTermAnalysis(immediateCost, monthlyGain won.Amount) domain.MediumTermAnalysis {
	series := CalculateCumulativeCost(immediateCost, monthlyGain, domain.MediumTermMonths)
	return domain.MediumTermAnalysis{
		BreakEvenMonth:    CalculateBreakEvenMonth(immediateCost, monthlyGain),
		TotalImpact:       series[len(series)-1],
		CumulativeByMonth: series,
	}
}

// longTermAnalysis assembles the 36-month view. The cumulative cost is the
// one-time penalty plus any monthly cost increase over the horizon.
func longTermAnalysis(projectedSavings, lostBenefits, immediateCost, monthlyChange won.Amount) domain.LongTermAnalysis {
	cost := -immediateCost
	if cost < 0 {
		cost = -cost
	}
	if monthlyChange > 0 {
		cost += monthlyChange * domain.LongTermMonths
	}
	return domain.LongTermAnalysis{
		TotalNetGain:      projectedSavings - cost - lostBenefits,
		LostBenefitsValue: lostBenefits,
		ProjectedSavings:  projectedSavings,
	}
}

// benefitValue is the annual market value of a free perk, 0 if its category is not valued
func (ce *CancellationEngine) benefitValue(addon *domain.AddonService) won.Amount {
	if !addon.IsFree {
		return 0
	}
	return ce.Tuning.BenefitMarketPrice[addon.Category] * domain.MediumTermMonths
}

func newAnalysis(target domain.CancellationTarget, effects []domain.CascadeEffect) *domain.CancellationAnalysis {
	if effects == nil {
		effects = []domain.CascadeEffect{}
	}
	return &domain.CancellationAnalysis{
		TargetID:       target.ID,
		TargetName:     target.Name,
		TargetType:     target.Type,
		CascadeEffects: effects,
	}
}
