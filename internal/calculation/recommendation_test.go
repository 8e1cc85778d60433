package calculation

import (
	"testing"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
	"github.com/stretchr/testify/assert"
)

func TestGenerateRecommendation_RuleOrder(t *testing.T) {
	engine := NewCancellationEngine()

	cases := []struct {
		name string
		in   RecommendationInput
		want domain.RecommendationType
		wait int
	}{
		{
			name: "large penalty, short remaining term",
			in: RecommendationInput{
				ShortTerm:       domain.ShortTermAnalysis{ImmediateCost: -150000},
				MediumTerm:      domain.MediumTermAnalysis{BreakEvenMonth: intPtr(2)},
				LongTerm:        domain.LongTermAnalysis{TotalNetGain: 1000000},
				HasContract:     true,
				RemainingMonths: 4,
			},
			want: domain.RecommendWait,
			wait: 4,
		},
		{
			name: "large penalty, long remaining term",
			in: RecommendationInput{
				ShortTerm:       domain.ShortTermAnalysis{ImmediateCost: -291667},
				MediumTerm:      domain.MediumTermAnalysis{BreakEvenMonth: intPtr(5)},
				LongTerm:        domain.LongTermAnalysis{TotalNetGain: 2000000},
				HasContract:     true,
				RemainingMonths: 14,
			},
			want: domain.RecommendWait,
			wait: 14,
		},
		{
			name: "large penalty without contract",
			in: RecommendationInput{
				ShortTerm: domain.ShortTermAnalysis{ImmediateCost: -200000},
			},
			want: domain.RecommendWait,
		},
		{
			name: "penalty exactly at threshold is not large",
			in: RecommendationInput{
				ShortTerm:       domain.ShortTermAnalysis{ImmediateCost: -100000},
				MediumTerm:      domain.MediumTermAnalysis{BreakEvenMonth: intPtr(12)},
				HasContract:     true,
				RemainingMonths: 3,
			},
			want: domain.RecommendProceed,
		},
		{
			name: "break-even after proceed window but positive net gain",
			in: RecommendationInput{
				MediumTerm: domain.MediumTermAnalysis{BreakEvenMonth: intPtr(13)},
				LongTerm:   domain.LongTermAnalysis{TotalNetGain: 1},
			},
			want: domain.RecommendProceed,
		},
		{
			name: "no break-even, net loss",
			in: RecommendationInput{
				LongTerm: domain.LongTermAnalysis{TotalNetGain: -5000},
			},
			want: domain.RecommendAlternative,
		},
		{
			name: "zero net gain is not a gain",
			in: RecommendationInput{
				MediumTerm: domain.MediumTermAnalysis{BreakEvenMonth: intPtr(20)},
			},
			want: domain.RecommendAlternative,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := engine.GenerateRecommendation(c.in)
			assert.Equal(t, c.want, rec.Type)
			assert.Equal(t, c.wait, rec.WaitMonths)
			assert.NotEmpty(t, rec.Reason)
		})
	}
}

func TestGenerateRecommendation_TunedThresholds(t *testing.T) {
	tuning := domain.DefaultTuning()
	tuning.LargePenaltyThreshold = 300000
	engine := NewCancellationEngineWithTuning(tuning)

	rec := engine.GenerateRecommendation(RecommendationInput{
		ShortTerm:       domain.ShortTermAnalysis{ImmediateCost: -291667},
		MediumTerm:      domain.MediumTermAnalysis{BreakEvenMonth: intPtr(5)},
		HasContract:     true,
		RemainingMonths: 14,
	})
	assert.Equal(t, domain.RecommendProceed, rec.Type)
}

func TestRecommendAddon(t *testing.T) {
	engine := NewCancellationEngine()
	paid := &domain.AddonService{ID: "a", Name: "보험", MonthlyPrice: 5000}
	free := &domain.AddonService{ID: "b", Name: "컬러링", IsFree: true}

	savings := RecommendationInput{
		ShortTerm:  domain.ShortTermAnalysis{MonthlyChange: -5000},
		MediumTerm: domain.MediumTermAnalysis{BreakEvenMonth: intPtr(0)},
		LongTerm:   domain.LongTermAnalysis{TotalNetGain: 180000},
	}
	assert.Equal(t, domain.RecommendProceed, engine.recommendAddon(paid, savings).Type)
	assert.Equal(t, domain.RecommendWait, engine.recommendAddon(free, savings).Type)

	loss := RecommendationInput{
		ShortTerm:  domain.ShortTermAnalysis{MonthlyChange: 0},
		MediumTerm: domain.MediumTermAnalysis{BreakEvenMonth: intPtr(0)},
		LongTerm:   domain.LongTermAnalysis{TotalNetGain: -10},
	}
	assert.Equal(t, domain.RecommendAlternative, engine.recommendAddon(paid, loss).Type)
}

func TestRecommendDiscount(t *testing.T) {
	engine := NewCancellationEngine()
	d := &domain.Discount{ID: "d", Name: "결합 할인", MonthlyDiscount: 5000}

	in := func(total won.Amount) RecommendationInput {
		return RecommendationInput{ShortTerm: domain.ShortTermAnalysis{MonthlyChange: total}}
	}

	// over the large-impact threshold wins even when cascades dominate
	assert.Equal(t, domain.RecommendAlternative, engine.recommendDiscount(d, 26000, in(31000)).Type)
	// cascades outweigh the discount itself
	assert.Equal(t, domain.RecommendWait, engine.recommendDiscount(d, 6000, in(11000)).Type)
	// exactly at the threshold with small cascades
	assert.Equal(t, domain.RecommendProceed, engine.recommendDiscount(d, 5000, in(30000)).Type)
	assert.Equal(t, domain.RecommendProceed, engine.recommendDiscount(d, 0, in(5000)).Type)
}
