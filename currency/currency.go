package currency

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// Currency codes the storefront supports. Prices are stored in USD; INR
// display converts through the configured rate.
const (
	USD = "USD"
	INR = "INR"
)

// defaultUSDINRRate is the demo conversion rate. It is intentionally not
// live data; override with the USD_INR_RATE env var or a custom RateSource.
const defaultUSDINRRate = 83.5

// RateSource supplies the USD→INR conversion rate. The default is static;
// anything fetching a live rate just needs to satisfy this interface.
type RateSource interface {
	Rate() float64
}

// StaticRate is a fixed-rate RateSource.
type StaticRate float64

func (r StaticRate) Rate() float64 { return float64(r) }

// FromEnv returns the rate source the server runs with: USD_INR_RATE when
// set and parsable, the built-in demo rate otherwise.
func FromEnv() RateSource {
	if v := os.Getenv("USD_INR_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			return StaticRate(rate)
		}
	}
	return StaticRate(defaultUSDINRRate)
}

// Formatter renders base-currency amounts for display.
type Formatter struct {
	Rates RateSource
}

func NewFormatter(rates RateSource) *Formatter {
	if rates == nil {
		rates = StaticRate(defaultUSDINRRate)
	}
	return &Formatter{Rates: rates}
}

// Format renders amount (USD base) in the requested currency. USD shows
// two decimals; INR converts, rounds to the nearest rupee and groups
// digits in the Indian style (₹12,34,567). Unknown currencies render as USD.
func (f *Formatter) Format(amount float64, cur string) string {
	switch cur {
	case INR:
		rupees := int64(math.Round(amount * f.Rates.Rate()))
		return "₹" + groupIndian(rupees)
	default:
		return fmt.Sprintf("$%.2f", amount)
	}
}

// groupIndian inserts separators after the last three digits, then every
// two: 1234567 → 12,34,567.
func groupIndian(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)

	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(append(groups, tail), ",")
	}

	if neg {
		return "-" + s
	}
	return s
}
