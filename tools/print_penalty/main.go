package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/callcenter/cancel-advisor/internal/calculation"
	"github.com/callcenter/cancel-advisor/internal/domain"
	"github.com/callcenter/cancel-advisor/pkg/won"
)

// Prints the early-termination penalty for every remaining month of a contract,
// the table agents quote from.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: print_penalty <device-subsidy> [12month|24month]")
		return
	}
	subsidy := won.ParsePrice(os.Args[1])
	contract := domain.Contract24Month
	if len(os.Args) > 2 {
		contract = domain.ContractType(os.Args[2])
	}
	if !contract.Valid() || contract == domain.ContractNone {
		fmt.Printf("unsupported contract type %q\n", contract)
		return
	}

	term := contract.NominalMonths()
	fmt.Println("Remaining,Penalty,Formatted")
	for remaining := term; remaining >= 0; remaining-- {
		p := calculation.CalculatePenalty(won.Amount(subsidy), term, remaining)
		fmt.Println(strconv.Itoa(remaining) + "," + strconv.FormatInt(int64(p), 10) + "," + won.FormatPrice(int64(p)))
	}
}
