package parser

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{"rs with dot", "Rs.500 debited from your account", "500", true},
		{"rs with space", "Rs. 1,234.56 paid to merchant", "1234.56", true},
		{"rupee glyph", "₹2,500 sent to RAHUL", "2500", true},
		{"inr marker", "INR 1,250.00 spent on card ending 4321 at AMAZON", "1250", true},
		{"amount of rs", "Amount of Rs. 3,000 debited from A/c", "3000", true},
		{"rupee word", "Rupee 99.50 charged for subscription", "99.5", true},
		{"no marker", "debited 500 from your account", "", false},
		{"zero amount", "Rs.0.00 debited from your account", "", false},
		{"empty body", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractAmount(tt.body)
			if ok != tt.ok {
				t.Fatalf("ExtractAmount(%q) ok = %v, want %v", tt.body, ok, tt.ok)
			}
			if !tt.ok {
				return
			}
			want := decimal.RequireFromString(tt.want)
			if !got.Equal(want) {
				t.Errorf("ExtractAmount(%q) = %s, want %s", tt.body, got, want)
			}
		})
	}
}

// Every supported marker must recover the embedded value exactly, thousands
// separators included.
func TestExtractAmountRoundTrip(t *testing.T) {
	markers := []string{"Rs.", "Rs. ", "₹", "INR ", "Amount of Rs. ", "Rupee "}
	values := map[string]string{
		"75":        "75",
		"500":       "500",
		"1,250.00":  "1250",
		"12,345.67": "12345.67",
		"2,000,000": "2000000",
		"99.5":      "99.5",
	}

	for _, marker := range markers {
		for raw, expected := range values {
			body := fmt.Sprintf("%s%s debited from your account", marker, raw)
			got, ok := ExtractAmount(body)
			if !ok {
				t.Errorf("ExtractAmount(%q): no amount found", body)
				continue
			}
			want := decimal.RequireFromString(expected)
			if !got.Equal(want) {
				t.Errorf("ExtractAmount(%q) = %s, want %s", body, got, want)
			}
		}
	}
}

func TestExtractCounterparty(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{"sent to person", "Rs.500 debited from your account sent to RAHUL KUMAR on 01-01-24", "RAHUL KUMAR", true},
		{"at merchant", "Rs.100 spent at AMAZON", "AMAZON", true},
		{"vpa fallback keeps case", "paid to merchant@upi via UPI Rs.75", "merchant@upi", true},
		{"vpa with bank handle", "Paid Rs.50 to merchant@okaxis via UPI", "merchant@okaxis", true},
		{"numeric label rejected", "sent to 12345 on 01-01", "", false},
		{"single char rejected", "paid to A on monday", "", false},
		{"no label", "Rs.200 debited", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractCounterparty(tt.body)
			if ok != tt.ok {
				t.Fatalf("ExtractCounterparty(%q) ok = %v, want %v", tt.body, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractCounterparty(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestExtractLastFour(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
		ok   bool
	}{
		{"card ending", "INR 1,250.00 spent on card ending 4321 at AMAZON", "4321", true},
		{"card without ending", "Card 1234 used for purchase", "1234", true},
		{"star prefix", "A/c *5678 debited for Rs.300", "5678", true},
		{"xx prefix", "Withdrawn from XX9012", "9012", true},
		{"three digits only", "card ending 123", "", false},
		{"no digits", "Rs.500 debited from your account", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLastFour(tt.body)
			if ok != tt.ok {
				t.Fatalf("ExtractLastFour(%q) ok = %v, want %v", tt.body, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ExtractLastFour(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}
