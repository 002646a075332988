// file: internals/features/assessments/assessments/service/recommendation_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amodel "investku_backend/internals/features/assessments/assessments/model"
)

func categoryScore(name string, pct float64) CategoryScoreResult {
	return CategoryScoreResult{
		CategoryID:   uuid.New(),
		CategoryName: name,
		Weight:       1.0,
		Score:        pct,
		MaxScore:     100,
		Percentage:   pct,
	}
}

func TestClassifyPercentage(t *testing.T) {
	cases := []struct {
		pct      float64
		priority amodel.RecommendationPriority
		need     bool
	}{
		{0, amodel.PriorityHigh, true},
		{49.9, amodel.PriorityHigh, true},
		{50, amodel.PriorityMedium, true},
		{74.9, amodel.PriorityMedium, true},
		{75, "", false}, // tepat di threshold: sehat
		{100, "", false},
	}
	for _, tc := range cases {
		priority, need := ClassifyPercentage(tc.pct)
		assert.Equal(t, tc.need, need, "pct=%v", tc.pct)
		assert.Equal(t, tc.priority, priority, "pct=%v", tc.pct)
	}
}

func TestBuildRecommendations_HealthySkipped(t *testing.T) {
	recs := BuildRecommendations(uuid.New(), []CategoryScoreResult{
		categoryScore("Financial Management", 80),
		categoryScore("Operations", 75),
		categoryScore("Governance", 100),
	})
	assert.Empty(t, recs)
}

func TestBuildRecommendations_Tiers(t *testing.T) {
	assessmentID := uuid.New()
	recs := BuildRecommendations(assessmentID, []CategoryScoreResult{
		categoryScore("Financial Management", 40),
		categoryScore("Operations", 60),
	})
	require.Len(t, recs, 2)

	high := recs[0]
	assert.Equal(t, amodel.PriorityHigh, high.RecommendationPriority)
	assert.Equal(t, "Improve Financial Management", high.RecommendationTitle)
	assert.Contains(t, high.RecommendationDescription, "40.0%")
	assert.Contains(t, high.RecommendationSuggestedActions, "financial management")
	assert.Equal(t, assessmentID, high.RecommendationAssessmentID)

	medium := recs[1]
	assert.Equal(t, amodel.PriorityMedium, medium.RecommendationPriority)
	assert.Equal(t, "Enhance Operations", medium.RecommendationTitle)
}

func TestBuildRecommendations_SortedHighFirstStable(t *testing.T) {
	// Input sengaja medium dulu; dua high mempertahankan urutan input.
	recs := BuildRecommendations(uuid.New(), []CategoryScoreResult{
		categoryScore("Marketing", 60),  // medium
		categoryScore("Governance", 20), // high
		categoryScore("Compliance", 30), // high
	})
	require.Len(t, recs, 3)

	assert.Equal(t, "Improve Governance", recs[0].RecommendationTitle)
	assert.Equal(t, "Improve Compliance", recs[1].RecommendationTitle)
	assert.Equal(t, "Enhance Marketing", recs[2].RecommendationTitle)

	for i, r := range recs {
		assert.Equal(t, i, r.RecommendationSortOrder)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, amodel.PriorityHigh.Rank(), amodel.PriorityMedium.Rank())
	assert.Less(t, amodel.PriorityMedium.Rank(), amodel.PriorityLow.Rank())
}
