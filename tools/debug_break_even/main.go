package main

import (
	"fmt"
	"os"

	calc "github.com/callcenter/cancel-advisor/internal/calculation"
	"github.com/callcenter/cancel-advisor/internal/config"
	"github.com/callcenter/cancel-advisor/internal/output"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: debug_break_even <catalog-file> <plan|addon|discount> <id>")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	targetType, err := calc.ParseTargetType(os.Args[2])
	if err != nil {
		panic(err)
	}

	engine := calc.NewCancellationEngineWithTuning(cfg.EffectiveTuning())
	a := engine.AnalyzeCancellation(targetType, os.Args[3], &cfg.Catalog)
	if a == nil {
		fmt.Println("target not found")
		return
	}

	fmt.Printf("Immediate=%d ShortMonthly=%d Cascades=%d\n", a.ShortTerm.ImmediateCost, a.ShortTerm.MonthlyChange, a.CascadeImpact())
	fmt.Println("Month,Cumulative")
	for i, v := range a.MediumTerm.CumulativeByMonth {
		fmt.Printf("%d,%d\n", i+1, v)
	}
	fmt.Printf("\nBreakEven: %s, NetGain36=%s -> %s\n",
		output.FormatBreakEven(a.MediumTerm.BreakEvenMonth), output.FormatWon(a.LongTerm.TotalNetGain), a.Recommendation.Type)
}
