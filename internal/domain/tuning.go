package domain

import (
	"time"

	"github.com/callcenter/cancel-advisor/pkg/won"
	"gopkg.in/yaml.v3"
)

// Tuning holds product-tuned heuristics used by the analyzers and the
// recommendation rules. Keys missing from a catalog file keep their
// DefaultTuning value.
type Tuning struct {
	// Penalties below -LargePenaltyThreshold trigger a "wait" recommendation
	LargePenaltyThreshold won.Amount `yaml:"large_penalty_threshold" json:"large_penalty_threshold"`
	// Contracts with at most this many months left are worth waiting out
	ShortRemainingMonths int `yaml:"short_remaining_months" json:"short_remaining_months"`
	// Discount cancellations above this total monthly impact get an alternative
	LargeImpactThreshold won.Amount `yaml:"large_impact_threshold" json:"large_impact_threshold"`
	// Break-even at or before this month means proceed
	BreakEvenProceedMonths int `yaml:"break_even_proceed_months" json:"break_even_proceed_months"`

	// Monthly market price of perks that come free with a plan
	BenefitMarketPrice map[AddonCategory]won.Amount `yaml:"benefit_market_price" json:"benefit_market_price"`
	// Monthly bundle discount each linked product loses when the triple bundle ends
	TripleBundleLoss map[ProductCategory]won.Amount `yaml:"triple_bundle_loss" json:"triple_bundle_loss"`
	// Flat annual value of each service linked to a cancelled discount
	LinkedServiceAnnualValue won.Amount `yaml:"linked_service_annual_value" json:"linked_service_annual_value"`
}

// DefaultTuning returns the stock heuristics
func DefaultTuning() Tuning {
	return Tuning{
		LargePenaltyThreshold:  100000,
		ShortRemainingMonths:   6,
		LargeImpactThreshold:   30000,
		BreakEvenProceedMonths: 12,
		BenefitMarketPrice: map[AddonCategory]won.Amount{
			AddonMusic: 10900,
			AddonVideo: 13900,
		},
		TripleBundleLoss: map[ProductCategory]won.Amount{
			ProductInternet: 5500,
			ProductTV:       3300,
		},
		LinkedServiceAnnualValue: 60000,
	}
}

// UnmarshalYAML decodes over DefaultTuning so that only keys present in the
// file override a default. An explicit 0 or empty map is kept as configured.
func (t *Tuning) UnmarshalYAML(value *yaml.Node) error {
	type plain Tuning
	def := DefaultTuning()
	decoded := plain(def)
	// maps would otherwise merge into the defaults
	decoded.BenefitMarketPrice = nil
	decoded.TripleBundleLoss = nil
	if err := value.Decode(&decoded); err != nil {
		return err
	}
	if !hasKey(value, "benefit_market_price") {
		decoded.BenefitMarketPrice = def.BenefitMarketPrice
	}
	if !hasKey(value, "triple_bundle_loss") {
		decoded.TripleBundleLoss = def.TripleBundleLoss
	}
	*t = Tuning(decoded)
	return nil
}

func hasKey(node *yaml.Node, key string) bool {
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Configuration is the input file: one customer's catalog snapshot plus optional tuning
type Configuration struct {
	Customer string         `yaml:"customer,omitempty" json:"customer,omitempty"`
	AsOf     time.Time      `yaml:"as_of,omitempty" json:"as_of,omitempty"`
	Catalog  CatalogContext `yaml:"catalog" json:"catalog"`
	Tuning   *Tuning        `yaml:"tuning,omitempty" json:"tuning,omitempty"`
}

// EffectiveTuning returns the configured tuning, or the defaults when the file has none
func (c *Configuration) EffectiveTuning() Tuning {
	if c.Tuning == nil {
		return DefaultTuning()
	}
	return *c.Tuning
}
