package calculation

import (
	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// BreakEvenHorizonMonths is the latest break-even month worth projecting
const BreakEvenHorizonMonths = domain.LongTermMonths

// CalculatePenalty prorates a device subsidy by the share of the contract still
// to run, rounded to the nearest unit. Returns 0 when totalContractMonths <= 0.
func CalculatePenalty(totalSubsidy won.Amount, totalContractMonths, remainingMonths int) won.Amount {
	if totalContractMonths <= 0 {
		return 0
	}
	return won.Amount(won.Prorate(int64(totalSubsidy), remainingMonths, totalContractMonths))
}

// CalculateCumulativeCost returns the running total of initialCost plus
// monthlyChange for each of the given months: series[i] = initialCost + monthlyChange*(i+1).
func CalculateCumulativeCost(initialCost, monthlyChange won.Amount, months int) []won.Amount {
	if months <= 0 {
		return []won.Amount{}
	}
	series := make([]won.Amount, months)
	running := initialCost
	for i := range series {
		running += monthlyChange
		series[i] = running
	}
	return series
}

// CalculateBreakEvenMonth returns the first month in which monthlyGain has
// recovered a negative initialCost. A non-negative initialCost breaks even
// immediately (0). Nil means no break-even: the gain never covers the cost, or
// not before BreakEvenHorizonMonths.
func CalculateBreakEvenMonth(initialCost, monthlyGain won.Amount) *int {
	if initialCost >= 0 {
		month := 0
		return &month
	}
	if monthlyGain <= 0 {
		return nil
	}
	month := int(won.CeilDiv(int64(-initialCost), int64(monthlyGain)))
	if month > BreakEvenHorizonMonths {
		return nil
	}
	return &month
}
