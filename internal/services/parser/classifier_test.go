package parser

import "testing"

func TestIsExpense(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{"debited message", "Rs.500 debited from your account sent to RAHUL KUMAR on 01-01-24", true},
		{"paid message", "paid to merchant@upi via UPI Rs.75", true},
		{"card spend", "INR 1,250.00 spent on card ending 4321 at AMAZON", true},
		{"atm withdrawal", "Rs.2000 withdrawn from A/c XX9012 at ATM", true},
		{"charged", "Your card was charged Rs.349 for subscription", true},
		{"mixed case", "Rs.75 DeBiTeD for UPI txn", true},
		{"credit only", "Rs.500 credited to your account", false},
		{"refund only", "Your refund of Rs.300 was processed", false},
		{"otp message", "Your OTP is 123456. Do not share it with anyone", false},
		{"empty body", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsExpense(tt.body); got != tt.want {
				t.Errorf("IsExpense(%q) = %v, want %v", tt.body, got, tt.want)
			}
		})
	}
}
