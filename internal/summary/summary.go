package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Placeholder is returned for an empty transaction list without ever
// calling the model.
const Placeholder = "No transactions selected to summarize."

// DefaultModelName is the Gemini model used for spending summaries
const DefaultModelName = "gemini-2.0-flash"

const systemPrompt = "You are a financial assistant for a campus-card spending tracker. " +
	"You summarize a student's selected transactions in plain language."

// TransactionInput is one caller-supplied transaction to summarize.
// This endpoint consumes the caller's subset directly, not storage.
type TransactionInput struct {
	Merchant string          `json:"merchant"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Date     string          `json:"date"`
}

// Summarizer produces a natural-language summary for a set of transactions
type Summarizer interface {
	Summarize(ctx context.Context, txs []TransactionInput) (string, error)
}

// BuildPrompt renders the user message: one line per transaction in the
// form "date: merchant (category) amount", then fixed instructions.
func BuildPrompt(txs []TransactionInput) string {
	var b strings.Builder
	b.WriteString("Here are the selected transactions:\n\n")
	for _, t := range txs {
		b.WriteString(fmt.Sprintf("%s: %s (%s) %s\n", t.Date, t.Merchant, t.Category, t.Amount.String()))
	}
	b.WriteString("\nSummarize this spending in a few short bullet points. ")
	b.WriteString("Mention the biggest categories and any unusually large amounts. ")
	b.WriteString("Keep it under 120 words and do not invent transactions.")
	return b.String()
}

// GeminiSummarizer calls the Gemini API with a system + user prompt pair
// and returns the model's text verbatim. No retries, no response schema
// validation: failures propagate to the caller.
type GeminiSummarizer struct {
	client *genai.Client
	model  string
}

// NewGeminiSummarizer creates a summarizer backed by the Gemini API
func NewGeminiSummarizer(ctx context.Context, apiKey string) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiSummarizer{client: client, model: DefaultModelName}, nil
}

// Summarize sends the prompt and returns the response text
func (s *GeminiSummarizer) Summarize(ctx context.Context, txs []TransactionInput) (string, error) {
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: BuildPrompt(txs)}},
		},
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}
	return text, nil
}
