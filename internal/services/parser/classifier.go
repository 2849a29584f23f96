package parser

import "strings"

// IsExpense reports whether the body looks like a debit/expense notification.
// Pure keyword check, no attempt at semantic understanding: messages outside
// the known vocabulary are rejected, not best-effort-guessed.
func IsExpense(body string) bool {
	msg := strings.ToUpper(body)
	for _, token := range expenseVocabulary {
		if strings.Contains(msg, token) {
			return true
		}
	}
	return false
}
