package handler

import (
	"strings"
	"testing"
)

func TestReadBackupCSV(t *testing.T) {
	csvData := strings.Join([]string{
		"date,sender,body",
		`2024-01-01 10:30:00,HDFCBK,"Rs.500 debited from your account sent to RAHUL KUMAR on 01-01-24"`,
		`2024-01-02T08:15:00Z,PAYTM,"paid to merchant@upi via UPI Rs.75"`,
		"not-a-date,AXISBK,some body",
		",,",
		"",
	}, "\n")

	messages, err := readBackupCSV(strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("readBackupCSV returned error: %v", err)
	}

	if len(messages) != 2 {
		t.Fatalf("parsed %d messages, want 2 (header, bad date and blank rows skipped)", len(messages))
	}
	if messages[0].Sender != "HDFCBK" {
		t.Errorf("sender = %q, want HDFCBK", messages[0].Sender)
	}
	if !strings.Contains(messages[0].Body, "RAHUL KUMAR") {
		t.Errorf("body not preserved: %q", messages[0].Body)
	}
	if messages[1].ReceivedAt.IsZero() {
		t.Error("RFC3339 date was not parsed")
	}
}

func TestReadBackupCSVEmptyFile(t *testing.T) {
	if _, err := readBackupCSV(strings.NewReader("")); err == nil {
		t.Error("expected error for a file without a header row")
	}
}
