package summary

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

func TestBuildPrompt_LineFormat(t *testing.T) {
	txs := []TransactionInput{
		{Merchant: "Bookstore", Category: "School", Amount: dec(t, "1200.00"), Date: "2024-09-07"},
		{Merchant: "Cafe", Category: "Food", Amount: dec(t, "4.50"), Date: "2024-09-08"},
	}
	prompt := BuildPrompt(txs)

	// One line per transaction: "date: merchant (category) amount"
	for _, line := range []string{
		"2024-09-07: Bookstore (School) 1200.00",
		"2024-09-08: Cafe (Food) 4.50",
	} {
		if !strings.Contains(prompt, line) {
			t.Errorf("prompt missing line %q\nprompt:\n%s", line, prompt)
		}
	}
	if !strings.Contains(prompt, "bullet points") {
		t.Error("prompt missing the fixed instructional text")
	}
}

func TestBuildPrompt_PreservesDecimalText(t *testing.T) {
	txs := []TransactionInput{
		{Merchant: "Lab Fees", Category: "School", Amount: dec(t, "1050.10"), Date: "2024-10-01"},
	}
	if got := BuildPrompt(txs); !strings.Contains(got, "1050.10") {
		t.Errorf("amount not rendered exactly, prompt:\n%s", got)
	}
}
