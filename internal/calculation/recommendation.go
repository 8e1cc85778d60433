package calculation

import (
	"fmt"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// RecommendationInput carries the computed horizons into the rule chain
type RecommendationInput struct {
	ShortTerm       domain.ShortTermAnalysis
	MediumTerm      domain.MediumTermAnalysis
	LongTerm        domain.LongTermAnalysis
	HasContract     bool
	RemainingMonths int
}

// GenerateRecommendation applies the ordered rule chain; the first matching rule wins:
//  1. large penalty and a contract ending within ShortRemainingMonths: wait it out
//  2. large penalty: wait for contract expiry
//  3. break-even within BreakEvenProceedMonths: proceed
//  4. positive long-term net gain: proceed
//  5. otherwise: alternative
func (ce *CancellationEngine) GenerateRecommendation(in RecommendationInput) domain.Recommendation {
	t := ce.Tuning
	penalty := -in.ShortTerm.ImmediateCost
	largePenalty := in.ShortTerm.ImmediateCost < -t.LargePenaltyThreshold

	if largePenalty && in.HasContract && in.RemainingMonths <= t.ShortRemainingMonths {
		return domain.Recommendation{
			Type:            domain.RecommendWait,
			Reason:          fmt.Sprintf("위약금 %s이 발생하지만 약정이 %d개월밖에 남지 않았습니다.", won.FormatPrice(int64(penalty)), in.RemainingMonths),
			SuggestedAction: fmt.Sprintf("%d개월 후 약정 만료 시점에 해지하도록 안내하세요.", in.RemainingMonths),
			WaitMonths:      in.RemainingMonths,
		}
	}

	if largePenalty {
		rec := domain.Recommendation{
			Type:            domain.RecommendWait,
			Reason:          fmt.Sprintf("위약금 %s 부담이 큽니다.", won.FormatPrice(int64(penalty))),
			SuggestedAction: "약정 만료까지 유지하거나 위약금 없는 요금제 변경을 검토하세요.",
		}
		if in.HasContract {
			rec.WaitMonths = in.RemainingMonths
		}
		return rec
	}

	if be := in.MediumTerm.BreakEvenMonth; be != nil && *be <= t.BreakEvenProceedMonths {
		return domain.Recommendation{
			Type:   domain.RecommendProceed,
			Reason: breakEvenReason(*be),
		}
	}

	if in.LongTerm.TotalNetGain > 0 {
		return domain.Recommendation{
			Type:   domain.RecommendProceed,
			Reason: fmt.Sprintf("36개월 기준 %s 이득이 예상됩니다.", won.FormatPrice(int64(in.LongTerm.TotalNetGain))),
		}
	}

	return alternative(in.LongTerm.TotalNetGain)
}

// recommendAddon: a free add-on is always kept; otherwise savings that break
// even within the proceed window, or a positive long-term gain, mean proceed.
func (ce *CancellationEngine) recommendAddon(addon *domain.AddonService, in RecommendationInput) domain.Recommendation {
	if addon.IsFree {
		return domain.Recommendation{
			Type:            domain.RecommendWait,
			Reason:          fmt.Sprintf("%s은 무료 서비스라 해지해도 요금이 줄지 않고 혜택만 사라집니다.", addon.Name),
			SuggestedAction: "유지를 권장합니다.",
		}
	}

	if be := in.MediumTerm.BreakEvenMonth; in.ShortTerm.MonthlyChange < 0 && be != nil && *be <= ce.Tuning.BreakEvenProceedMonths {
		return domain.Recommendation{
			Type:   domain.RecommendProceed,
			Reason: fmt.Sprintf("해지 즉시 월 %s이 절약되며 추가 비용이 없습니다.", won.FormatPrice(int64(in.ShortTerm.MonthlyChange))),
		}
	}

	if in.LongTerm.TotalNetGain > 0 {
		return domain.Recommendation{
			Type:   domain.RecommendProceed,
			Reason: fmt.Sprintf("36개월 기준 %s 이득이 예상됩니다.", won.FormatPrice(int64(in.LongTerm.TotalNetGain))),
		}
	}

	return alternative(in.LongTerm.TotalNetGain)
}

// recommendDiscount: a total monthly increase above LargeImpactThreshold calls
// for an alternative; cascades outweighing the discount itself call for waiting.
func (ce *CancellationEngine) recommendDiscount(discount *domain.Discount, cascadeImpact won.Amount, in RecommendationInput) domain.Recommendation {
	total := in.ShortTerm.MonthlyChange

	if total > ce.Tuning.LargeImpactThreshold {
		return domain.Recommendation{
			Type:            domain.RecommendAlternative,
			Reason:          fmt.Sprintf("%s 해제 시 월 %s의 요금이 증가합니다.", discount.Name, won.FormatPrice(int64(total))),
			SuggestedAction: "할인 조건을 유지할 수 있는 다른 결합 상품이나 납부 방법을 안내하세요.",
		}
	}

	if cascadeImpact > discount.MonthlyDiscount {
		return domain.Recommendation{
			Type: domain.RecommendWait,
			Reason: fmt.Sprintf("연쇄 영향 월 %s이 할인액 월 %s보다 큽니다.",
				won.FormatPrice(int64(cascadeImpact)), won.FormatPrice(int64(discount.MonthlyDiscount))),
			SuggestedAction: "연결된 회선과 상품의 변경 계획을 먼저 확인하세요.",
		}
	}

	return domain.Recommendation{
		Type:   domain.RecommendProceed,
		Reason: fmt.Sprintf("월 %s 증가로 영향이 제한적입니다.", won.FormatPrice(int64(total))),
	}
}

func breakEvenReason(month int) string {
	if month == 0 {
		return "초기 비용 없이 즉시 절약 효과가 있습니다."
	}
	return fmt.Sprintf("%d개월 차에 위약금을 회수하고 이후부터 절약됩니다.", month)
}

func alternative(netGain won.Amount) domain.Recommendation {
	return domain.Recommendation{
		Type:            domain.RecommendAlternative,
		Reason:          fmt.Sprintf("해지 시 36개월 기준 %s 손실이 예상됩니다.", won.FormatPrice(int64(netGain))),
		SuggestedAction: "하위 요금제로 변경하거나 대체 상품을 안내하세요.",
	}
}
