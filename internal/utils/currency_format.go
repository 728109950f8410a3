package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NairaCode is the ISO code printed in reports. The naira sign is not available in the core PDF fonts.
const NairaCode = "NGN"

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).StringFixed(int32(precision))
}

// FormatNaira renders an amount as "NGN 1,234,567.89".
func FormatNaira(amount decimal.Decimal) string {
	return NairaCode + " " + GroupThousands(FormatWithPrecision(amount, 2))
}

// GroupThousands inserts commas into the integer part of a plain decimal string.
func GroupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return sign + b.String()
}

// FormatPercent renders a rate such as 0.3 as "30%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).Round(2).String() + "%"
}
