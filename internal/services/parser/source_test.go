package parser

import "testing"

func TestResolveSource(t *testing.T) {
	tests := []struct {
		name   string
		sender string
		body   string
		want   string
	}{
		{"hdfc sender", "HDFCBK", "Rs.500 debited from your account", "HDFC Bank"},
		{"axis sender", "AXISBK", "INR 1,250.00 spent on card ending 4321 at AMAZON", "Axis Bank"},
		{"paytm sender", "PAYTM", "paid to merchant@upi via UPI Rs.75", "Paytm"},
		{"state bank in body", "BZ-NOTIFY", "Rs.200 debited from State Bank account", "SBI"},
		{"icici in body", "VM-ALERT", "ICICI Bank: Rs.99 debited", "ICICI Bank"},
		{"gpay in body", "VM-ALERT", "GPAY payment of Rs.30 sent", "Google Pay"},
		{"lowercase sender", "phonepe", "Rs.10 sent", "PhonePe"},
		{"earlier taxonomy entry wins", "AXISBK", "Rs.50 spent at AMAZON", "Axis Bank"},
		{"unknown", "VM-FOOBAR", "Rs.500 debited from your account", "Bank/Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveSource(tt.sender, tt.body); got != tt.want {
				t.Errorf("ResolveSource(%q, %q) = %q, want %q", tt.sender, tt.body, got, tt.want)
			}
		})
	}
}

func TestResolveSourceIsTotal(t *testing.T) {
	if got := ResolveSource("", ""); got != SourceUnknown {
		t.Errorf("ResolveSource on empty inputs = %q, want %q", got, SourceUnknown)
	}
}
