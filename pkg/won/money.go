package won

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Suffix is the currency unit appended to formatted amounts
const Suffix = "원"

// Amount is a monetary value in the smallest currency unit (whole won)
type Amount int64

// freeKeywords are price labels that legitimately mean "no charge"
var freeKeywords = []string{"무료", "free", "사용량", "종량", "usage"}

var digitGroup = regexp.MustCompile(`\d[\d,]*`)

var printer = message.NewPrinter(language.Korean)

// ParsePrice extracts an amount from a human formatted price such as
// "89,000원", "최대 22,250원/월" or "무료". Text without digits yields 0.
func ParsePrice(text string) int64 {
	amount, _ := ParsePriceStatus(text)
	return amount
}

// ParsePriceStatus is ParsePrice that also reports whether the text was
// understood. A recognised free or usage-based label is understood and
// yields 0; text with neither digits nor such a label is not.
func ParsePriceStatus(text string) (int64, bool) {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, kw := range freeKeywords {
		if strings.Contains(lower, kw) {
			return 0, true
		}
	}

	match := digitGroup.FindString(trimmed)
	if match == "" {
		return 0, false
	}
	value, err := strconv.ParseInt(strings.ReplaceAll(match, ",", ""), 10, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// FormatPrice renders the absolute value with locale grouping, e.g. "89,000원"
func FormatPrice(amount int64) string {
	if amount < 0 {
		amount = -amount
	}
	return printer.Sprintf("%d", amount) + Suffix
}

// FormatPriceWithSign prefixes "+" or "-"; zero carries no sign
func FormatPriceWithSign(amount int64) string {
	switch {
	case amount > 0:
		return "+" + FormatPrice(amount)
	case amount < 0:
		return "-" + FormatPrice(amount)
	default:
		return FormatPrice(0)
	}
}

// Prorate returns total * numerator / denominator rounded to the nearest
// whole unit (half away from zero). A non-positive denominator yields 0.
func Prorate(total int64, numerator, denominator int) int64 {
	if denominator <= 0 {
		return 0
	}
	// multiply before dividing so exact halves are not lost to division precision
	product := decimal.NewFromInt(total).Mul(decimal.NewFromInt(int64(numerator)))
	return product.Div(decimal.NewFromInt(int64(denominator))).Round(0).IntPart()
}

// CeilDiv returns ceil(a / b) for b > 0
func CeilDiv(a, b int64) int64 {
	if b <= 0 {
		return 0
	}
	return decimal.NewFromInt(a).Div(decimal.NewFromInt(b)).Ceil().IntPart()
}

// String formats the amount with its sign, e.g. "-9,500원"
func (a Amount) String() string {
	if a < 0 {
		return "-" + FormatPrice(int64(a))
	}
	return FormatPrice(int64(a))
}

// UnmarshalYAML accepts either an integer or a price label
func (a *Amount) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: price must be a scalar", value.Line)
	}
	if value.Tag == "!!int" {
		v, err := strconv.ParseInt(value.Value, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: invalid price %q: %w", value.Line, value.Value, err)
		}
		*a = Amount(v)
		return nil
	}

	v, ok := ParsePriceStatus(value.Value)
	if !ok {
		logrus.WithFields(logrus.Fields{
			"line": value.Line,
			"text": value.Value,
		}).Warn("unparsable price treated as 0")
	}
	*a = Amount(v)
	return nil
}

// MarshalYAML writes the raw integer so files round-trip
func (a Amount) MarshalYAML() (interface{}, error) {
	return int64(a), nil
}
