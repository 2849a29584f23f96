package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Ordered currency-marker patterns; first strictly positive parse wins.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)RS\.\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`₹\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)INR\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)AMOUNT\s*(?:OF)?\s*RS\.?\s*([\d,]+\.?\d*)`),
	regexp.MustCompile(`(?i)RUPEE\s*([\d,]+\.?\d*)`),
}

// Label-context patterns, matched against the uppercased body.
var counterpartyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`TO\s+([A-Z][A-Z\s]+)`),
	regexp.MustCompile(`PAID\s+TO\s+([A-Z][A-Z0-9@]+)`),
	regexp.MustCompile(`AT\s+([A-Z][A-Z0-9\s]+)`),
	regexp.MustCompile(`MERCHANT\s+([A-Z]+)`),
	regexp.MustCompile(`TO\s+([A-Z0-9@]+)\s+ON`),
	regexp.MustCompile(`SENT\s+TO\s+([A-Z][A-Z\s]+)`),
}

// Trailing 4-digit instrument identifiers.
var lastFourPatterns = []*regexp.Regexp{
	regexp.MustCompile(`CARD\s*(?:ENDING\s*)?(\d{4})`),
	regexp.MustCompile(`ENDING\s*(\d{4})`),
	regexp.MustCompile(`\*(\d{4})\b`),
	regexp.MustCompile(`XX(\d{4})`),
}

var (
	trailingOnClause = regexp.MustCompile(`\s+ON\s+.*`)
	numericOnly      = regexp.MustCompile(`^[0-9]+$`)
	vpaToken         = regexp.MustCompile(`[A-Za-z0-9._-]+@[A-Za-z0-9._-]+`)
)

// ExtractAmount finds the transaction amount behind the first matching
// currency marker. Thousands separators are stripped before parsing; only a
// strictly positive value is accepted. ok=false means no amount was found,
// which rejects the message upstream (amount is mandatory).
func ExtractAmount(body string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		match := pattern.FindStringSubmatch(body)
		if match == nil {
			continue
		}
		raw := strings.ReplaceAll(match[1], ",", "")
		raw = strings.TrimSuffix(raw, ".")
		amount, err := decimal.NewFromString(raw)
		if err == nil && amount.IsPositive() {
			return amount, true
		}
	}
	return decimal.Decimal{}, false
}

// ExtractCounterparty pulls the merchant/receiver label out of the body.
// Context patterns run first; a surviving label must be 2-30 chars after
// stripping any trailing "ON ..." clause and must not be purely numeric.
// Captures that are (part of) a VPA token are left to the fallback, which
// returns the address as written in the original body.
func ExtractCounterparty(body string) (string, bool) {
	msg := strings.ToUpper(body)

	for _, pattern := range counterpartyPatterns {
		loc := pattern.FindStringSubmatchIndex(msg)
		if loc == nil {
			continue
		}
		start, end := loc[2], loc[3]
		label := msg[start:end]
		if strings.Contains(label, "@") || (end < len(msg) && msg[end] == '@') {
			continue
		}
		label = strings.TrimSpace(trailingOnClause.ReplaceAllString(label, ""))
		if len(label) >= 2 && len(label) <= 30 && !numericOnly.MatchString(label) {
			return label, true
		}
	}

	// UPI transactions: fall back to the virtual payment address itself.
	if strings.Contains(msg, "UPI") || strings.Contains(msg, "@") {
		if vpa := vpaToken.FindString(body); vpa != "" {
			return vpa, true
		}
	}

	return "", false
}

// ExtractLastFour returns the last 4 digits of the card/account mentioned in
// the body, if any.
func ExtractLastFour(body string) (string, bool) {
	msg := strings.ToUpper(body)
	for _, pattern := range lastFourPatterns {
		match := pattern.FindStringSubmatch(msg)
		if match != nil {
			return match[1], true
		}
	}
	return "", false
}
