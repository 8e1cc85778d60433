package domain

import (
	"time"

	"github.com/callcenter/cancel-advisor/pkg/won"
)

// Projection horizons in months
const (
	ShortTermMonths  = 3
	MediumTermMonths = 12
	LongTermMonths   = 36
)

// EffectType classifies a second-order consequence of a cancellation
type EffectType string

const (
	EffectDiscountLoss       EffectType = "discount_loss"
	EffectServiceTermination EffectType = "service_termination"
	EffectPriceIncrease      EffectType = "price_increase"
	EffectBenefitLoss        EffectType = "benefit_loss"
)

// RecommendationType is the engine's verdict
type RecommendationType string

const (
	RecommendProceed     RecommendationType = "proceed"
	RecommendWait        RecommendationType = "wait"
	RecommendAlternative RecommendationType = "alternative"
)

// CancellationTarget is a read-only projection of the entity being analyzed
type CancellationTarget struct {
	Type         TargetType `json:"type"`
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	MonthlyValue won.Amount `json:"monthly_value"`
}

// CascadeEffect is a financial consequence on another active item.
// MonthlyImpact is positive when the customer pays more.
type CascadeEffect struct {
	AffectedService string     `json:"affected_service"`
	EffectType      EffectType `json:"effect_type"`
	Description     string     `json:"description"`
	MonthlyImpact   won.Amount `json:"monthly_impact"`
	AffectedMembers int        `json:"affected_members,omitempty"`
}

// ShortTermAnalysis covers the 3-month horizon
type ShortTermAnalysis struct {
	ImmediateCost won.Amount `json:"immediate_cost"`
	MonthlyChange won.Amount `json:"monthly_change"`
	TotalImpact   won.Amount `json:"total_impact"`
}

// MediumTermAnalysis covers the 12-month horizon
type MediumTermAnalysis struct {
	// BreakEvenMonth is nil when the customer never recovers within the long-term horizon
	BreakEvenMonth    *int         `json:"break_even_month"`
	TotalImpact       won.Amount   `json:"total_impact"`
	CumulativeByMonth []won.Amount `json:"cumulative_by_month"`
}

// LongTermAnalysis covers the 36-month horizon
type LongTermAnalysis struct {
	TotalNetGain      won.Amount `json:"total_net_gain"`
	LostBenefitsValue won.Amount `json:"lost_benefits_value"`
	ProjectedSavings  won.Amount `json:"projected_savings"`
}

// Recommendation is the verdict plus presentation text
type Recommendation struct {
	Type            RecommendationType `json:"type"`
	Reason          string             `json:"reason"`
	SuggestedAction string             `json:"suggested_action,omitempty"`
	WaitMonths      int                `json:"wait_months,omitempty"`
}

// CancellationAnalysis is the complete result of analyzing one target
type CancellationAnalysis struct {
	TargetID       string             `json:"target_id"`
	TargetName     string             `json:"target_name"`
	TargetType     TargetType         `json:"target_type"`
	ShortTerm      ShortTermAnalysis  `json:"short_term"`
	MediumTerm     MediumTermAnalysis `json:"medium_term"`
	LongTerm       LongTermAnalysis   `json:"long_term"`
	CascadeEffects []CascadeEffect    `json:"cascade_effects"`
	Recommendation Recommendation     `json:"recommendation"`

	// RemainingContractMonths is set for plans under contract; used to show the expiry month
	RemainingContractMonths int `json:"remaining_contract_months,omitempty"`
}

// CascadeImpact sums the monthly impact of all cascade effects
func (a *CancellationAnalysis) CascadeImpact() won.Amount {
	return SumImpact(a.CascadeEffects)
}

// SumImpact sums the monthly impact of the given effects
func SumImpact(effects []CascadeEffect) won.Amount {
	var total won.Amount
	for _, e := range effects {
		total += e.MonthlyImpact
	}
	return total
}

// CancellationReport collects analyses of every active item for one customer
type CancellationReport struct {
	Customer string                 `json:"customer,omitempty"`
	AsOf     time.Time              `json:"as_of,omitempty"`
	Analyses []CancellationAnalysis `json:"analyses"`
}
