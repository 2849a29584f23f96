package parser

// SourceUnknown is the fallback when no taxonomy entry matches.
const SourceUnknown = "Bank/Unknown"

// Expense vocabulary: a body containing any of these tokens (case-normalized,
// substring match) is treated as an expense notification. Known precision gap:
// credit messages mentioning e.g. "transaction" or "sent" slip through too.
var expenseVocabulary = []string{
	"DEBITED",
	"PAID",
	"CHARGED",
	"PURCHASE",
	"SPENT",
	"TRANSACTION",
	"SENT",
	"DEBIT",
	"WITHDRAWN",
}

type sourceEntry struct {
	Name     string
	Keywords []string
}

// Funding-source taxonomy, checked in order against both the sender id and the
// body. First hit wins, so more specific entries sit above generic ones.
var sourceTaxonomy = []sourceEntry{
	{Name: "HDFC Bank", Keywords: []string{"HDFC"}},
	{Name: "SBI", Keywords: []string{"SBI", "STATE BANK"}},
	{Name: "ICICI Bank", Keywords: []string{"ICICI"}},
	{Name: "Axis Bank", Keywords: []string{"AXIS"}},
	{Name: "Kotak Bank", Keywords: []string{"KOTAK"}},
	{Name: "Yes Bank", Keywords: []string{"YES BANK", "YESBNK"}},
	{Name: "IndusInd Bank", Keywords: []string{"INDUSIND"}},
	{Name: "PNB", Keywords: []string{"PNB", "PUNJAB NATIONAL"}},
	{Name: "Canara Bank", Keywords: []string{"CANARA"}},
	{Name: "Union Bank", Keywords: []string{"UNION BANK", "UNIONBK"}},
	{Name: "Bank of Baroda", Keywords: []string{"BANK OF BARODA", "BOB"}},
	{Name: "IDBI Bank", Keywords: []string{"IDBI"}},
	{Name: "Citibank", Keywords: []string{"CITI"}},
	{Name: "Standard Chartered", Keywords: []string{"STANDARD CHARTERED", "SCB"}},
	{Name: "American Express", Keywords: []string{"AMEX", "AMERICAN EXPRESS"}},
	{Name: "Paytm", Keywords: []string{"PAYTM"}},
	{Name: "PhonePe", Keywords: []string{"PHONEPE"}},
	{Name: "Google Pay", Keywords: []string{"GPAY", "GOOGLE PAY"}},
	{Name: "Amazon Pay", Keywords: []string{"AMAZON"}},
}
