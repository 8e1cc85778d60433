package calculation

import (
	"sync"
	"testing"

	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestCatalog mirrors the dashboard's sample customer
func createTestCatalog() *domain.CatalogContext {
	return &domain.CatalogContext{
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
				Penalty: &domain.PenaltyBasis{DeviceSubsidyTotal: 500000},
			},
			{ID: "lte-basic", Name: "LTE 베이직", MonthlyPrice: 33000},
		},
		Addons: []domain.AddonService{
			{ID: "addon-netflix", Name: "넷플릭스", Category: domain.AddonVideo, MonthlyPrice: 9500},
			{ID: "addon-music", Name: "뮤직 스트리밍", Category: domain.AddonMusic, IsFree: true, LinkedBenefits: []string{"5g-premium"}},
			{ID: "addon-insurance", Name: "휴대폰 보험", Category: domain.AddonInsurance, MonthlyPrice: 5000},
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
			{ID: "discount-autopay", Name: "자동이체 할인", Type: domain.DiscountPayment, MonthlyDiscount: 1000},
			{
				ID:              "discount-triple",
				Name:            "유무선 TV 결합",
				Type:            domain.DiscountBundle,
				Bundle:          domain.BundleTriple,
				MonthlyDiscount: 8800,
				LinkedServices:  []string{"home-internet", "home-tv"},
			},
		},
		Products: []domain.Product{
			{ID: "home-internet", Name: "기가 인터넷", Category: domain.ProductInternet},
			{ID: "home-tv", Name: "IPTV 베이직", Category: domain.ProductTV},
		},
		SelectedPlanID:      "5g-premium",
		SelectedAddonIDs:    []string{"addon-netflix", "addon-music"},
		SelectedDiscountIDs: []string{"discount-family-4", "discount-autopay"},
	}
}

func TestScenario_PremiumPlanUnderContract(t *testing.T) {
	engine := NewCancellationEngine()
	a := engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", createTestCatalog())
	require.NotNil(t, a)

	assert.Equal(t, "5G 프리미엄", a.TargetName)
	assert.Equal(t, domain.TargetPlan, a.TargetType)
	assert.Equal(t, won.Amount(-291667), a.ShortTerm.ImmediateCost)
	assert.Equal(t, domain.RecommendWait, a.Recommendation.Type)
	assert.Equal(t, 14, a.Recommendation.WaitMonths)
	assert.Equal(t, 14, a.RemainingContractMonths)

	// family bundle discount tied to the plan plus the free music perk
	require.Len(t, a.CascadeEffects, 2)
	assert.Equal(t, domain.EffectDiscountLoss, a.CascadeEffects[0].EffectType)
	assert.Equal(t, won.Amount(11000), a.CascadeEffects[0].MonthlyImpact)
	assert.Equal(t, domain.EffectBenefitLoss, a.CascadeEffects[1].EffectType)
	assert.Equal(t, won.Amount(0), a.CascadeEffects[1].MonthlyImpact)

	assert.Equal(t, won.Amount(22250+11000), a.ShortTerm.MonthlyChange)
	assert.Equal(t, won.Amount(-291667+33250*3), a.ShortTerm.TotalImpact)

	gain := won.Amount(89000 - 22250 - 11000)
	require.Len(t, a.MediumTerm.CumulativeByMonth, 12)
	assert.Equal(t, won.Amount(-291667)+gain*12, a.MediumTerm.TotalImpact)
	require.NotNil(t, a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, 6, *a.MediumTerm.BreakEvenMonth)

	assert.Equal(t, won.Amount(89000*36), a.LongTerm.ProjectedSavings)
	assert.Equal(t, won.Amount(10900*12), a.LongTerm.LostBenefitsValue)
	assert.Equal(t, won.Amount(89000*36-(291667+33250*36)-10900*12), a.LongTerm.TotalNetGain)
}

func TestScenario_PaidAddon(t *testing.T) {
	engine := NewCancellationEngine()
	a := engine.AnalyzeCancellation(domain.TargetAddon, "addon-netflix", createTestCatalog())
	require.NotNil(t, a)

	assert.Equal(t, won.Amount(0), a.ShortTerm.ImmediateCost)
	assert.Equal(t, won.Amount(-9500), a.ShortTerm.MonthlyChange)
	assert.Equal(t, won.Amount(-28500), a.ShortTerm.TotalImpact)
	assert.Empty(t, a.CascadeEffects)
	assert.NotNil(t, a.CascadeEffects, "cascade list is empty, not nil")
	assert.Equal(t, domain.RecommendProceed, a.Recommendation.Type)

	require.NotNil(t, a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, 0, *a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, won.Amount(9500*12), a.MediumTerm.TotalImpact)
	assert.Equal(t, won.Amount(9500*36), a.LongTerm.ProjectedSavings)
	assert.Equal(t, won.Amount(9500*36), a.LongTerm.TotalNetGain)
}

func TestScenario_FamilyDiscount(t *testing.T) {
	engine := NewCancellationEngine()
	a := engine.AnalyzeCancellation(domain.TargetDiscount, "discount-family-4", createTestCatalog())
	require.NotNil(t, a)

	require.Len(t, a.CascadeEffects, 1)
	family := a.CascadeEffects[0]
	assert.Equal(t, "가족 회선", family.AffectedService)
	assert.Equal(t, domain.EffectDiscountLoss, family.EffectType)
	assert.Equal(t, won.Amount(33000), family.MonthlyImpact)
	assert.Equal(t, 3, family.AffectedMembers)

	assert.Equal(t, won.Amount(44000), a.ShortTerm.MonthlyChange)
	assert.Equal(t, won.Amount(132000), a.ShortTerm.TotalImpact)
	assert.Equal(t, won.Amount(3*60000), a.LongTerm.LostBenefitsValue)
	assert.Equal(t, won.Amount(0), a.LongTerm.ProjectedSavings)
	assert.Equal(t, won.Amount(-44000*36-180000), a.LongTerm.TotalNetGain)
	assert.Equal(t, domain.RecommendAlternative, a.Recommendation.Type)
}

func TestAnalyzeCancellation_NotFound(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()

	assert.Nil(t, engine.AnalyzeCancellation(domain.TargetPlan, "missing", catalog))
	// ids only resolve against entities of the requested type
	assert.Nil(t, engine.AnalyzeCancellation(domain.TargetAddon, "5g-premium", catalog))
	assert.Nil(t, engine.AnalyzeCancellation(domain.TargetType("bogus"), "5g-premium", catalog))
	assert.Nil(t, engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", nil))
}

func TestAnalyzeCancellation_UnknownTypeWarns(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	engine := NewCancellationEngine()
	engine.SetLogger(NewLogrusLogger(logger))

	assert.Nil(t, engine.AnalyzeCancellation(domain.TargetType("bundle"), "discount-family-4", createTestCatalog()))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "unknown cancellation target type")
}

func TestEngineHonoursZeroTuning(t *testing.T) {
	tuning := domain.DefaultTuning()
	tuning.LargeImpactThreshold = 0
	engine := NewCancellationEngineWithTuning(tuning)

	// any increase at all is above a zero threshold
	a := engine.AnalyzeCancellation(domain.TargetDiscount, "discount-autopay", createTestCatalog())
	require.NotNil(t, a)
	assert.Equal(t, domain.RecommendAlternative, a.Recommendation.Type)

	tuning = domain.DefaultTuning()
	tuning.TripleBundleLoss = map[domain.ProductCategory]won.Amount{}
	engine = NewCancellationEngineWithTuning(tuning)
	assert.Empty(t, engine.ResolveCascadeEffects(domain.TargetDiscount, "discount-triple", createTestCatalog()))
}

func TestAnalyzeCancellation_Idempotent(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	targets := []struct {
		kind domain.TargetType
		id   string
	}{
		{domain.TargetPlan, "5g-premium"},
		{domain.TargetPlan, "lte-basic"},
		{domain.TargetAddon, "addon-netflix"},
		{domain.TargetAddon, "addon-music"},
		{domain.TargetDiscount, "discount-family-4"},
		{domain.TargetDiscount, "discount-triple"},
	}
	for _, tc := range targets {
		first := engine.AnalyzeCancellation(tc.kind, tc.id, catalog)
		second := engine.AnalyzeCancellation(tc.kind, tc.id, catalog)
		require.NotNil(t, first)
		assert.Equal(t, first, second, "%s/%s", tc.kind, tc.id)
	}
}

func TestAnalyzeCancellation_DoesNotMutateCatalog(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	before := createTestCatalog()

	engine.AnalyzeSelection(catalog)
	engine.AnalyzeCancellation(domain.TargetDiscount, "discount-triple", catalog)

	assert.Equal(t, before, catalog)
}

func TestAnalyzeCancellation_Concurrent(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	want := engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", catalog)

	var wg sync.WaitGroup
	results := make([]*domain.CancellationAnalysis, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", catalog)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestFreeAddonAlwaysWaits(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	catalog.Addons = append(catalog.Addons,
		domain.AddonService{ID: "free-call", Name: "통화 연결음", Category: domain.AddonCall, IsFree: true},
		domain.AddonService{ID: "free-data", Name: "데이터 쿠폰", Category: domain.AddonData, IsFree: true, LinkedBenefits: []string{"lte-basic"}},
	)

	for _, addon := range catalog.Addons {
		if !addon.IsFree {
			continue
		}
		a := engine.AnalyzeCancellation(domain.TargetAddon, addon.ID, catalog)
		require.NotNil(t, a)
		assert.Equal(t, domain.RecommendWait, a.Recommendation.Type, addon.ID)
		assert.Equal(t, won.Amount(0), a.ShortTerm.MonthlyChange)
	}
}

func TestFreeAddonLostBenefitValue(t *testing.T) {
	engine := NewCancellationEngine()
	a := engine.AnalyzeCancellation(domain.TargetAddon, "addon-music", createTestCatalog())
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(10900*12), a.LongTerm.LostBenefitsValue)
	assert.Equal(t, won.Amount(-10900*12), a.LongTerm.TotalNetGain)
}

func TestPlanWithoutContract(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	catalog.SelectedDiscountIDs = nil

	a := engine.AnalyzeCancellation(domain.TargetPlan, "lte-basic", catalog)
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(0), a.ShortTerm.ImmediateCost)
	assert.Equal(t, won.Amount(0), a.ShortTerm.MonthlyChange)
	assert.Equal(t, 0, a.RemainingContractMonths)
	require.NotNil(t, a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, 0, *a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, domain.RecommendProceed, a.Recommendation.Type)
}

func TestPlanContractNoneIgnoresDiscount(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	catalog.Plans[1].Contract = &domain.Contract{Type: domain.ContractNone, MonthlyDiscount: 5000}
	catalog.Plans[1].Penalty = &domain.PenaltyBasis{DeviceSubsidyTotal: 300000}
	catalog.SelectedDiscountIDs = nil

	a := engine.AnalyzeCancellation(domain.TargetPlan, "lte-basic", catalog)
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(0), a.ShortTerm.ImmediateCost)
	assert.Equal(t, won.Amount(0), a.ShortTerm.MonthlyChange)
}

func TestPlanShortRemainingContractWaits(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	catalog.Plans[0].Contract.RemainingMonths = 6

	a := engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", catalog)
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(-125000), a.ShortTerm.ImmediateCost)
	assert.Equal(t, domain.RecommendWait, a.Recommendation.Type)
	assert.Equal(t, 6, a.Recommendation.WaitMonths)
	assert.Contains(t, a.Recommendation.Reason, "6개월")
}

func TestPlanRemainingMonthsClamped(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	engine := NewCancellationEngine()
	engine.SetLogger(NewLogrusLogger(logger))

	catalog := createTestCatalog()
	catalog.Plans[0].Contract.RemainingMonths = 30

	a := engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", catalog)
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(-500000), a.ShortTerm.ImmediateCost)
	assert.Equal(t, 24, a.RemainingContractMonths)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
	assert.Equal(t, "cancellation-engine", hook.LastEntry().Data["component"])
}

func TestPlanSmallPenaltyProceedsOnBreakEven(t *testing.T) {
	engine := NewCancellationEngine()
	catalog := createTestCatalog()
	catalog.Plans[0].Penalty.DeviceSubsidyTotal = 120000 // 70,000 prorated
	catalog.SelectedDiscountIDs = nil

	a := engine.AnalyzeCancellation(domain.TargetPlan, "5g-premium", catalog)
	require.NotNil(t, a)
	assert.Equal(t, won.Amount(-70000), a.ShortTerm.ImmediateCost)
	require.NotNil(t, a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, 2, *a.MediumTerm.BreakEvenMonth)
	assert.Equal(t, domain.RecommendProceed, a.Recommendation.Type)
}

func TestAnalyzeSelection(t *testing.T) {
	engine := NewCancellationEngine()
	analyses := engine.AnalyzeSelection(createTestCatalog())

	var ids []string
	for _, a := range analyses {
		ids = append(ids, a.TargetID)
	}
	assert.Equal(t, []string{"5g-premium", "addon-netflix", "addon-music", "discount-family-4", "discount-autopay"}, ids)
	assert.Nil(t, engine.AnalyzeSelection(nil))
}

func TestBuildReport(t *testing.T) {
	engine := NewCancellationEngine()
	cfg := &domain.Configuration{Customer: "홍길동", Catalog: *createTestCatalog()}

	report := engine.BuildReport(cfg)
	assert.Equal(t, "홍길동", report.Customer)
	assert.Len(t, report.Analyses, 5)
}

func TestParseTargetType(t *testing.T) {
	for in, want := range map[string]domain.TargetType{
		"plan":     domain.TargetPlan,
		" Add-On ": domain.TargetAddon,
		"addon":    domain.TargetAddon,
		"할인":       domain.TargetDiscount,
	} {
		got, err := ParseTargetType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseTargetType("device")
	assert.ErrorIs(t, err, ErrUnknownTargetType)
}

func TestSetLoggerNil(t *testing.T) {
	engine := NewCancellationEngine()
	engine.SetLogger(nil)
	assert.Equal(t, NopLogger{}, engine.Logger)
}
