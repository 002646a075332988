// file: internals/features/assessments/insights/service/gemini_generator_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInsightJSON_Plain(t *testing.T) {
	raw := `{"strengths": ["Strong governance practices"], "weaknesses": ["Weak financial records"]}`

	result, err := ParseInsightJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"Strong governance practices"}, result.Strengths)
	assert.Equal(t, []string{"Weak financial records"}, result.Weaknesses)
}

func TestParseInsightJSON_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"strengths\": [\"A\"], \"weaknesses\": [\"B\"]}\n```"

	result, err := ParseInsightJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, result.Strengths)
	assert.Equal(t, []string{"B"}, result.Weaknesses)
}

func TestParseInsightJSON_ProseAroundObject(t *testing.T) {
	raw := "Here is the analysis you asked for:\n{\"strengths\": [\"A\"], \"weaknesses\": [\"B\"]}\nLet me know if you need more."

	result, err := ParseInsightJSON(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, result.Strengths)
}

func TestParseInsightJSON_Malformed(t *testing.T) {
	_, err := ParseInsightJSON("sorry, I cannot help with that")
	assert.Error(t, err)

	_, err = ParseInsightJSON(`{"strengths": "not-a-list"}`)
	assert.Error(t, err)
}

func TestParseInsightJSON_EmptyListsRejected(t *testing.T) {
	_, err := ParseInsightJSON(`{"strengths": [], "weaknesses": []}`)
	assert.Error(t, err)
}

func TestRenderInsightPrompt(t *testing.T) {
	prompt := InsightPrompt{
		EnterpriseProfile: "Name: Warung Maju | Sector: retail | Location: Sleman",
		FiscalYear:        2025,
		TotalScore:        55,
		MaxPossibleScore:  100,
		PercentageScore:   55,
		CategoryScores: []CategoryScoreSummary{
			{Category: "Financial Management", Score: 10, MaxScore: 40, Percentage: 25},
		},
		SampleResponses: []ResponseSummary{
			{Category: "Financial Management", Question: "Do you keep books?", Answer: "No", Score: 0, MaxScore: 10},
		},
	}

	rendered := renderInsightPrompt(prompt)
	assert.Contains(t, rendered, "Warung Maju")
	assert.Contains(t, rendered, "2025")
	assert.Contains(t, rendered, "Financial Management")
	assert.Contains(t, rendered, "Do you keep books?")
	assert.Contains(t, rendered, `"strengths"`)
	assert.Contains(t, rendered, `"weaknesses"`)
}
