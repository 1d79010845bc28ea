package i18n

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Helpers for the app's two display locales. English prices are numeric and
// grouped the way Intl's en-US locale groups them; Farsi prices are the same
// grouped text transliterated to Eastern Arabic digits.

var englishPrinter = message.NewPrinter(language.AmericanEnglish)

var farsiDigits = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// ToFarsiDigits replaces ASCII digits with their Farsi counterparts.
func ToFarsiDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(farsiDigits[r-'0'])
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToEnglishDigits replaces Farsi digits with ASCII digits.
func ToEnglishDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		replaced := false
		for i, fd := range farsiDigits {
			if r == fd {
				b.WriteByte(byte('0' + i))
				replaced = true
				break
			}
		}
		if !replaced {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatGrouped renders an amount with en-US thousands grouping and up to
// three fraction digits, matching toLocaleString('en-US').
func FormatGrouped(amount decimal.Decimal) string {
	f, _ := amount.Float64()
	return englishPrinter.Sprintf("%v", number.Decimal(f, number.MaxFractionDigits(3)))
}

// FormatGroupedFarsi renders an amount grouped as above but in Farsi digits.
func FormatGroupedFarsi(amount decimal.Decimal) string {
	return ToFarsiDigits(FormatGrouped(amount))
}

// ParseLocalizedPrice reads a pre-formatted price string in either locale:
// Farsi digits are normalized, then both the ASCII and the Arabic comma
// separators are stripped. Unparseable input yields zero rather than an
// error, in line with the cart's absorb-everything policy.
func ParseLocalizedPrice(s string) decimal.Decimal {
	normalized := ToEnglishDigits(strings.TrimSpace(s))
	normalized = strings.NewReplacer(",", "", "،", "").Replace(normalized)
	if normalized == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero
	}
	return d
}
