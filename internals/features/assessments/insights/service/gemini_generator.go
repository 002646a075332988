// file: internals/features/assessments/insights/service/gemini_generator.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const geminiModel = "gemini-2.5-flash"

// GeminiInsightGenerator memanggil Gemini API untuk menghasilkan
// strengths/weaknesses dari konteks assessment.
type GeminiInsightGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiInsightGenerator(ctx context.Context, apiKey string) (*GeminiInsightGenerator, error) {
	if apiKey == "" {
		return nil, errors.New("GEMINI_API_KEY belum diset")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiInsightGenerator{client: client, model: geminiModel}, nil
}

func (g *GeminiInsightGenerator) Generate(ctx context.Context, prompt InsightPrompt) (*InsightResult, error) {
	temp := float32(0.7)
	config := &genai.GenerateContentConfig{
		Temperature:      &temp,
		MaxOutputTokens:  8192,
		ResponseMIMEType: "application/json",
	}

	contents := []*genai.Content{
		{Parts: []*genai.Part{{Text: renderInsightPrompt(prompt)}}},
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	return ParseInsightJSON(result.Text())
}

// renderInsightPrompt menyusun prompt analisis investment readiness.
func renderInsightPrompt(p InsightPrompt) string {
	catJSON, _ := json.MarshalIndent(p.CategoryScores, "", "  ")
	respJSON, _ := json.MarshalIndent(p.SampleResponses, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this investment readiness assessment for an SME and provide actionable insights.\n\n")
	fmt.Fprintf(&b, "**Enterprise:** %s\n", p.EnterpriseProfile)
	fmt.Fprintf(&b, "**Fiscal Year:** %d\n", p.FiscalYear)
	fmt.Fprintf(&b, "**Overall Score:** %.1f%% (%.1f/%.1f)\n\n", p.PercentageScore, p.TotalScore, p.MaxPossibleScore)
	fmt.Fprintf(&b, "**Category Scores:**\n%s\n\n", catJSON)
	fmt.Fprintf(&b, "**Sample Responses:**\n%s\n\n", respJSON)
	b.WriteString(`Return JSON with:
- 3-5 strengths (areas >= 70%, with specific category references)
- 3-5 weaknesses (areas < 70%, with specific category references)

Format:
{
  "strengths": ["strength with specific category reference", ...],
  "weaknesses": ["weakness with specific category reference", ...]
}`)
	return b.String()
}

// ParseInsightJSON mem-parse output model dengan toleransi terhadap
// code fence markdown dan teks nyasar sebelum/sesudah objek JSON.
func ParseInsightJSON(raw string) (*InsightResult, error) {
	text := strings.TrimSpace(raw)

	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	// Kadang model menambah prosa di luar objek JSON → ambil { ... } terluar.
	if start, end := strings.Index(text, "{"), strings.LastIndex(text, "}"); start != -1 && end > start {
		text = text[start : end+1]
	}

	var out InsightResult
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("parse AI response as JSON: %w", err)
	}
	if len(out.Strengths) == 0 && len(out.Weaknesses) == 0 {
		return nil, errors.New("AI response has neither strengths nor weaknesses")
	}
	return &out, nil
}
