package output

import (
	"strconv"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// FormatWon formats a signed amount, e.g. "-291,667원".
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatWon(amount won.Amount) string { return won.FormatPriceWithSign(int64(amount)) }

// FormatBreakEven renders a break-even month; nil means none within the horizon.
func FormatBreakEven(month *int) string {
	switch {
	case month == nil:
		return "없음"
	case *month == 0:
		return "즉시"
	default:
		return strconv.Itoa(*month) + "개월"
	}
}

// Display labels. Branching logic never compares these.
var (
	targetTypeLabels = map[domain.TargetType]string{
		domain.TargetPlan:     "요금제",
		domain.TargetAddon:    "부가서비스",
		domain.TargetDiscount: "할인",
	}
	discountTypeLabels = map[domain.DiscountType]string{
		domain.DiscountContract: "약정 할인",
		domain.DiscountBundle:   "결합 할인",
		domain.DiscountPayment:  "결제 할인",
	}
	effectTypeLabels = map[domain.EffectType]string{
		domain.EffectDiscountLoss:       "할인 상실",
		domain.EffectServiceTermination: "서비스 해지",
		domain.EffectPriceIncrease:      "요금 인상",
		domain.EffectBenefitLoss:        "혜택 상실",
	}
	recommendationLabels = map[domain.RecommendationType]string{
		domain.RecommendProceed:     "해지 진행",
		domain.RecommendWait:        "해지 보류",
		domain.RecommendAlternative: "대안 제시",
	}
)

// TargetTypeLabel returns the display label for a target type
func TargetTypeLabel(t domain.TargetType) string { return labelOr(targetTypeLabels, t) }

// DiscountTypeLabel returns the display label for a discount type
func DiscountTypeLabel(t domain.DiscountType) string { return labelOr(discountTypeLabels, t) }

// EffectTypeLabel returns the display label for a cascade effect type
func EffectTypeLabel(t domain.EffectType) string { return labelOr(effectTypeLabels, t) }

// RecommendationLabel returns the display label for a recommendation
func RecommendationLabel(t domain.RecommendationType) string { return labelOr(recommendationLabels, t) }

func labelOr[K ~string](labels map[K]string, key K) string {
	if l, ok := labels[key]; ok {
		return l
	}
	return string(key)
}

func intToString(i int) string { return strconv.Itoa(i) }
