package domain

import (
	"strings"

	"github.com/callcenter/cancel-advisor/pkg/won"
)

// TargetType identifies which kind of catalog entity is being cancelled
type TargetType string

const (
	TargetPlan     TargetType = "plan"
	TargetAddon    TargetType = "addon"
	TargetDiscount TargetType = "discount"
)

// Valid reports whether t is one of the known target types
func (t TargetType) Valid() bool {
	switch t {
	case TargetPlan, TargetAddon, TargetDiscount:
		return true
	}
	return false
}

// ContractType is the commitment term attached to a plan
type ContractType string

const (
	Contract12Month ContractType = "12month"
	Contract24Month ContractType = "24month"
	ContractNone    ContractType = "none"
)

// NominalMonths returns the term length implied by the contract type (0 for none)
func (c ContractType) NominalMonths() int {
	switch c {
	case Contract12Month:
		return 12
	case Contract24Month:
		return 24
	}
	return 0
}

// Valid reports whether c is a known contract type
func (c ContractType) Valid() bool {
	switch c {
	case Contract12Month, Contract24Month, ContractNone:
		return true
	}
	return false
}

// DiscountType is the closed set of discount conditions
type DiscountType string

const (
	DiscountContract DiscountType = "contract"
	DiscountBundle   DiscountType = "bundle"
	DiscountPayment  DiscountType = "payment"
)

// Valid reports whether d is a known discount type
func (d DiscountType) Valid() bool {
	switch d {
	case DiscountContract, DiscountBundle, DiscountPayment:
		return true
	}
	return false
}

// BundleKind narrows a bundle discount. Empty means a plain bundle.
type BundleKind string

const (
	BundleNone   BundleKind = ""
	BundleFamily BundleKind = "family"
	// BundleTriple is the mobile + internet + TV cross bundle
	BundleTriple BundleKind = "triple"
)

// AddonCategory classifies add-on services
type AddonCategory string

const (
	AddonMusic     AddonCategory = "music"
	AddonVideo     AddonCategory = "video"
	AddonInsurance AddonCategory = "insurance"
	AddonCall      AddonCategory = "call"
	AddonData      AddonCategory = "data"
	AddonOther     AddonCategory = "other"
)

// ProductCategory classifies non-mobile products a discount can be linked to
type ProductCategory string

const (
	ProductInternet ProductCategory = "internet"
	ProductTV       ProductCategory = "tv"
	ProductMobile   ProductCategory = "mobile"
	ProductOther    ProductCategory = "other"
)

// Contract is a fixed-term commitment that grants a monthly discount
type Contract struct {
	Type            ContractType `yaml:"type" json:"type"`
	RemainingMonths int          `yaml:"remaining_months" json:"remaining_months"`
	MonthlyDiscount won.Amount   `yaml:"monthly_discount" json:"monthly_discount"`
}

// PenaltyBasis holds the device subsidy that must be repaid on early termination
type PenaltyBasis struct {
	DeviceSubsidyTotal      won.Amount `yaml:"device_subsidy_total" json:"device_subsidy_total"`
	RemainingSubsidyPortion won.Amount `yaml:"remaining_subsidy_portion,omitempty" json:"remaining_subsidy_portion,omitempty"`
}

// Plan is the customer's primary service tier
type Plan struct {
	ID           string        `yaml:"id" json:"id"`
	Name         string        `yaml:"name" json:"name"`
	MonthlyPrice won.Amount    `yaml:"monthly_price" json:"monthly_price"`
	Contract     *Contract     `yaml:"contract,omitempty" json:"contract,omitempty"`
	Penalty      *PenaltyBasis `yaml:"penalty,omitempty" json:"penalty,omitempty"`
}

// HasActiveContract reports whether the plan is under a term commitment
func (p *Plan) HasActiveContract() bool {
	return p.Contract != nil && p.Contract.Type.NominalMonths() > 0
}

// Target projects the plan into a cancellation target
func (p *Plan) Target() CancellationTarget {
	return CancellationTarget{Type: TargetPlan, ID: p.ID, Name: p.Name, MonthlyValue: p.MonthlyPrice}
}

// AddonService is an optional supplementary service
type AddonService struct {
	ID             string        `yaml:"id" json:"id"`
	Name           string        `yaml:"name" json:"name"`
	Category       AddonCategory `yaml:"category" json:"category"`
	MonthlyPrice   won.Amount    `yaml:"monthly_price" json:"monthly_price"`
	IsFree         bool          `yaml:"is_free" json:"is_free"`
	LinkedBenefits []string      `yaml:"linked_benefits,omitempty" json:"linked_benefits,omitempty"`
}

// BenefitOf reports whether the add-on is a benefit of the given plan
func (a *AddonService) BenefitOf(planID string) bool {
	for _, id := range a.LinkedBenefits {
		if id == planID {
			return true
		}
	}
	return false
}

// Target projects the add-on into a cancellation target
func (a *AddonService) Target() CancellationTarget {
	return CancellationTarget{Type: TargetAddon, ID: a.ID, Name: a.Name, MonthlyValue: a.MonthlyPrice}
}

// Discount is a recurring monthly reduction on the bill
type Discount struct {
	ID              string       `yaml:"id" json:"id"`
	Name            string       `yaml:"name" json:"name"`
	Type            DiscountType `yaml:"type" json:"type"`
	Bundle          BundleKind   `yaml:"bundle,omitempty" json:"bundle,omitempty"`
	MonthlyDiscount won.Amount   `yaml:"monthly_discount" json:"monthly_discount"`
	AffectedMembers int          `yaml:"affected_members,omitempty" json:"affected_members,omitempty"`
	LinkedServices  []string     `yaml:"linked_services,omitempty" json:"linked_services,omitempty"`
}

// Members returns the number of lines sharing the discount; unset counts as 1
func (d *Discount) Members() int {
	if d.AffectedMembers < 1 {
		return 1
	}
	return d.AffectedMembers
}

// IsFamilyBundle reports whether the discount is shared across family lines
func (d *Discount) IsFamilyBundle() bool {
	return d.Type == DiscountBundle && d.Bundle == BundleFamily
}

// IsTripleBundle reports whether the discount is the mobile+internet+TV bundle
func (d *Discount) IsTripleBundle() bool {
	return d.Type == DiscountBundle && d.Bundle == BundleTriple
}

// Target projects the discount into a cancellation target
func (d *Discount) Target() CancellationTarget {
	return CancellationTarget{Type: TargetDiscount, ID: d.ID, Name: d.Name, MonthlyValue: d.MonthlyDiscount}
}

// Product is a non-mobile subscription (internet, TV) a bundle discount can reference
type Product struct {
	ID       string          `yaml:"id" json:"id"`
	Name     string          `yaml:"name" json:"name"`
	Category ProductCategory `yaml:"category" json:"category"`
}

// CatalogContext is the customer's subscription snapshot for one analysis
type CatalogContext struct {
	Plans               []Plan         `yaml:"plans" json:"plans"`
	Addons              []AddonService `yaml:"addons" json:"addons"`
	Discounts           []Discount     `yaml:"discounts" json:"discounts"`
	Products            []Product      `yaml:"products,omitempty" json:"products,omitempty"`
	SelectedPlanID      string         `yaml:"selected_plan_id" json:"selected_plan_id"`
	SelectedAddonIDs    []string       `yaml:"selected_addon_ids" json:"selected_addon_ids"`
	SelectedDiscountIDs []string       `yaml:"selected_discount_ids" json:"selected_discount_ids"`
}

// FindPlan returns the plan with the given id, or nil
func (c *CatalogContext) FindPlan(id string) *Plan {
	for i := range c.Plans {
		if c.Plans[i].ID == id {
			return &c.Plans[i]
		}
	}
	return nil
}

// FindAddon returns the add-on with the given id, or nil
func (c *CatalogContext) FindAddon(id string) *AddonService {
	for i := range c.Addons {
		if c.Addons[i].ID == id {
			return &c.Addons[i]
		}
	}
	return nil
}

// FindDiscount returns the discount with the given id, or nil
func (c *CatalogContext) FindDiscount(id string) *Discount {
	for i := range c.Discounts {
		if c.Discounts[i].ID == id {
			return &c.Discounts[i]
		}
	}
	return nil
}

// ProductCategoryOf resolves a linked service id to its category. Ids absent
// from Products are classified by their tokens ("internet", "tv", "iptv").
func (c *CatalogContext) ProductCategoryOf(id string) ProductCategory {
	for _, p := range c.Products {
		if p.ID == id {
			return p.Category
		}
	}
	for _, tok := range strings.FieldsFunc(strings.ToLower(id), func(r rune) bool {
		return r == '-' || r == '_' || r == '.' || r == ' '
	}) {
		switch tok {
		case "internet", "broadband":
			return ProductInternet
		case "tv", "iptv":
			return ProductTV
		case "mobile":
			return ProductMobile
		}
	}
	return ProductOther
}

// ProductName returns the display name of a linked service, falling back to its id
func (c *CatalogContext) ProductName(id string) string {
	for _, p := range c.Products {
		if p.ID == id && p.Name != "" {
			return p.Name
		}
	}
	return id
}

// IsAddonSelected reports whether the add-on is currently subscribed
func (c *CatalogContext) IsAddonSelected(id string) bool {
	return contains(c.SelectedAddonIDs, id)
}

// IsDiscountSelected reports whether the discount is currently applied
func (c *CatalogContext) IsDiscountSelected(id string) bool {
	return contains(c.SelectedDiscountIDs, id)
}

// SelectedAddons returns the subscribed add-ons in catalog order
func (c *CatalogContext) SelectedAddons() []*AddonService {
	var out []*AddonService
	for i := range c.Addons {
		if c.IsAddonSelected(c.Addons[i].ID) {
			out = append(out, &c.Addons[i])
		}
	}
	return out
}

// SelectedDiscounts returns the applied discounts in catalog order
func (c *CatalogContext) SelectedDiscounts() []*Discount {
	var out []*Discount
	for i := range c.Discounts {
		if c.IsDiscountSelected(c.Discounts[i].ID) {
			out = append(out, &c.Discounts[i])
		}
	}
	return out
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
