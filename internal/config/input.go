package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog wraps every validation failure
var ErrInvalidCatalog = errors.New("invalid catalog")

// InputParser handles parsing of customer catalog files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML configuration
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the catalog invariants the engine relies on
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	catalog := &config.Catalog
	if len(catalog.Plans) == 0 && len(catalog.Addons) == 0 && len(catalog.Discounts) == 0 {
		return fmt.Errorf("%w: catalog is empty", ErrInvalidCatalog)
	}

	seen := map[string]bool{}
	checkID := func(kind, id string) error {
		if id == "" {
			return fmt.Errorf("%w: %s id is required", ErrInvalidCatalog, kind)
		}
		key := kind + "/" + id
		if seen[key] {
			return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidCatalog, kind, id)
		}
		seen[key] = true
		return nil
	}

	for i := range catalog.Plans {
		plan := &catalog.Plans[i]
		if err := checkID("plan", plan.ID); err != nil {
			return err
		}
		if err := ip.validatePlan(plan); err != nil {
			return fmt.Errorf("plan %s validation failed: %w", plan.ID, err)
		}
	}
	for i := range catalog.Addons {
		addon := &catalog.Addons[i]
		if err := checkID("addon", addon.ID); err != nil {
			return err
		}
		if err := ip.validateAddon(addon); err != nil {
			return fmt.Errorf("addon %s validation failed: %w", addon.ID, err)
		}
	}
	for i := range catalog.Discounts {
		discount := &catalog.Discounts[i]
		if err := checkID("discount", discount.ID); err != nil {
			return err
		}
		if err := ip.validateDiscount(discount); err != nil {
			return fmt.Errorf("discount %s validation failed: %w", discount.ID, err)
		}
	}

	if catalog.SelectedPlanID != "" && catalog.FindPlan(catalog.SelectedPlanID) == nil {
		return fmt.Errorf("%w: selected plan %q not in catalog", ErrInvalidCatalog, catalog.SelectedPlanID)
	}
	for _, id := range catalog.SelectedAddonIDs {
		if catalog.FindAddon(id) == nil {
			return fmt.Errorf("%w: selected addon %q not in catalog", ErrInvalidCatalog, id)
		}
	}
	for _, id := range catalog.SelectedDiscountIDs {
		if catalog.FindDiscount(id) == nil {
			return fmt.Errorf("%w: selected discount %q not in catalog", ErrInvalidCatalog, id)
		}
	}

	if config.Tuning != nil {
		if err := ip.validateTuning(config.Tuning); err != nil {
			return fmt.Errorf("tuning validation failed: %w", err)
		}
	}

	return nil
}

// validatePlan validates a single plan's price, contract and penalty basis
func (ip *InputParser) validatePlan(plan *domain.Plan) error {
	if plan.MonthlyPrice < 0 {
		return fmt.Errorf("%w: monthly price cannot be negative", ErrInvalidCatalog)
	}
	if c := plan.Contract; c != nil {
		if !c.Type.Valid() {
			return fmt.Errorf("%w: contract type must be '12month', '24month' or 'none', got %q", ErrInvalidCatalog, c.Type)
		}
		if c.RemainingMonths < 0 {
			return fmt.Errorf("%w: remaining months cannot be negative", ErrInvalidCatalog)
		}
		if c.RemainingMonths > c.Type.NominalMonths() {
			return fmt.Errorf("%w: remaining months %d exceed the %s term", ErrInvalidCatalog, c.RemainingMonths, c.Type)
		}
		if c.MonthlyDiscount < 0 {
			return fmt.Errorf("%w: contract discount cannot be negative", ErrInvalidCatalog)
		}
	}
	if p := plan.Penalty; p != nil {
		if p.DeviceSubsidyTotal < 0 || p.RemainingSubsidyPortion < 0 {
			return fmt.Errorf("%w: device subsidy cannot be negative", ErrInvalidCatalog)
		}
		if p.RemainingSubsidyPortion > p.DeviceSubsidyTotal {
			return fmt.Errorf("%w: remaining subsidy exceeds total subsidy", ErrInvalidCatalog)
		}
	}
	return nil
}

// validateAddon enforces is_free iff price is zero
func (ip *InputParser) validateAddon(addon *domain.AddonService) error {
	if addon.MonthlyPrice < 0 {
		return fmt.Errorf("%w: monthly price cannot be negative", ErrInvalidCatalog)
	}
	if addon.IsFree != (addon.MonthlyPrice == 0) {
		return fmt.Errorf("%w: is_free must be true exactly when the price is 0", ErrInvalidCatalog)
	}
	return nil
}

// validateDiscount validates type, bundle kind and member count
func (ip *InputParser) validateDiscount(discount *domain.Discount) error {
	if !discount.Type.Valid() {
		return fmt.Errorf("%w: discount type must be 'contract', 'bundle' or 'payment', got %q", ErrInvalidCatalog, discount.Type)
	}
	switch discount.Bundle {
	case domain.BundleNone:
	case domain.BundleFamily, domain.BundleTriple:
		if discount.Type != domain.DiscountBundle {
			return fmt.Errorf("%w: bundle kind %q requires type 'bundle'", ErrInvalidCatalog, discount.Bundle)
		}
	default:
		return fmt.Errorf("%w: bundle kind must be 'family' or 'triple', got %q", ErrInvalidCatalog, discount.Bundle)
	}
	if discount.MonthlyDiscount < 0 {
		return fmt.Errorf("%w: monthly discount cannot be negative", ErrInvalidCatalog)
	}
	if discount.AffectedMembers < 0 {
		return fmt.Errorf("%w: affected members cannot be negative", ErrInvalidCatalog)
	}
	return nil
}

// validateTuning rejects negative heuristics
func (ip *InputParser) validateTuning(t *domain.Tuning) error {
	if t.LargePenaltyThreshold < 0 || t.LargeImpactThreshold < 0 || t.LinkedServiceAnnualValue < 0 {
		return fmt.Errorf("%w: thresholds cannot be negative", ErrInvalidCatalog)
	}
	if t.ShortRemainingMonths < 0 || t.BreakEvenProceedMonths < 0 {
		return fmt.Errorf("%w: month thresholds cannot be negative", ErrInvalidCatalog)
	}
	for category, price := range t.BenefitMarketPrice {
		if price < 0 {
			return fmt.Errorf("%w: benefit market price for %s cannot be negative", ErrInvalidCatalog, category)
		}
	}
	for category, loss := range t.TripleBundleLoss {
		if loss < 0 {
			return fmt.Errorf("%w: triple bundle loss for %s cannot be negative", ErrInvalidCatalog, category)
		}
	}
	return nil
}

// CreateExampleConfiguration returns the sample customer shown in the dashboard
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	asOf, _ := time.Parse("2006-01-02", "2025-03-01")
	tuning := domain.DefaultTuning()

	return &domain.Configuration{
		Customer: "홍길동",
		AsOf:     asOf,
		Catalog: domain.CatalogContext{
			Plans: []domain.Plan{
				{
					ID:           "5g-premium",
					Name:         "5G 프리미엄",
					MonthlyPrice: 89000,
					Contract: &domain.Contract{
						Type:            domain.Contract24Month,
						RemainingMonths: 14,
						MonthlyDiscount: 22250,
					},
					Penalty: &domain.PenaltyBasis{DeviceSubsidyTotal: 500000, RemainingSubsidyPortion: 291667},
				},
				{ID: "5g-standard", Name: "5G 스탠다드", MonthlyPrice: 69000},
				{ID: "lte-basic", Name: "LTE 베이직", MonthlyPrice: 33000},
			},
			Addons: []domain.AddonService{
				{ID: "addon-netflix", Name: "넷플릭스 베이직", Category: domain.AddonVideo, MonthlyPrice: 9500},
				{ID: "addon-music", Name: "뮤직 스트리밍", Category: domain.AddonMusic, IsFree: true, LinkedBenefits: []string{"5g-premium", "5g-standard"}},
				{ID: "addon-insurance", Name: "휴대폰 파손 보험", Category: domain.AddonInsurance, MonthlyPrice: 5000},
				{ID: "addon-ringback", Name: "컬러링", Category: domain.AddonCall, MonthlyPrice: 1100},
			},
			Discounts: []domain.Discount{
				{
					ID:              "discount-family-4",
					Name:            "가족 결합 할인",
					Type:            domain.DiscountBundle,
					Bundle:          domain.BundleFamily,
					MonthlyDiscount: 11000,
					AffectedMembers: 4,
					LinkedServices:  []string{"home-internet", "home-tv", "family-line-2"},
				},
				{
					ID:              "discount-triple",
					Name:            "유무선 TV 결합 할인",
					Type:            domain.DiscountBundle,
					Bundle:          domain.BundleTriple,
					MonthlyDiscount: 8800,
					LinkedServices:  []string{"home-internet", "home-tv"},
				},
				{ID: "discount-autopay", Name: "자동이체 할인", Type: domain.DiscountPayment, MonthlyDiscount: won.Amount(1000)},
			},
			Products: []domain.Product{
				{ID: "home-internet", Name: "기가 인터넷", Category: domain.ProductInternet},
				{ID: "home-tv", Name: "IPTV 베이직", Category: domain.ProductTV},
				{ID: "family-line-2", Name: "가족 회선 2", Category: domain.ProductMobile},
			},
			SelectedPlanID:      "5g-premium",
			SelectedAddonIDs:    []string{"addon-netflix", "addon-music"},
			SelectedDiscountIDs: []string{"discount-family-4", "discount-autopay"},
		},
		Tuning: &tuning,
	}
}
