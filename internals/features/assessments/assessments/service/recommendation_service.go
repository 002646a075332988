// file: internals/features/assessments/assessments/service/recommendation_service.go
package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	amodel "investku_backend/internals/features/assessments/assessments/model"
)

/* =========================================================
   RECOMMENDATION GENERATOR (pure)

   CategoryScores → Recommendation[] terurut.
   Set lama selalu di-replace penuh oleh pemanggil (workflow service),
   tidak pernah merge incremental — supaya regrade tidak ninggalin entry basi.
========================================================= */

// Threshold tiga tier, satu sumber kebenaran dengan color coding FE
// (green/yellow/red). Jangan duplikasi angka ini di tempat lain.
const (
	HealthyPercentageThreshold = 75.0 // >= 75: sehat, tanpa rekomendasi
	MediumPercentageThreshold  = 50.0 // 50..<75: medium, <50: high
)

// Template per priority, data-driven terhadap nama kategori supaya
// tetap questionnaire-agnostic (tidak hard-code per nama kategori).
type recommendationTemplate struct {
	title       string
	description string
	actions     string
}

var recommendationTemplates = map[amodel.RecommendationPriority]recommendationTemplate{
	amodel.PriorityHigh: {
		title:       "Improve %s",
		description: "Your score in %s is %.1f%%, which is below the recommended threshold.",
		actions:     "Focus on improving practices related to %s.",
	},
	amodel.PriorityMedium: {
		title:       "Enhance %s",
		description: "Your score in %s is %.1f%%, which has room for improvement.",
		actions:     "Consider implementing best practices in %s.",
	},
}

// ClassifyPercentage memetakan persentase kategori ke priority.
// ok=false artinya kategori sehat (>= 75%), tidak perlu rekomendasi.
func ClassifyPercentage(pct float64) (amodel.RecommendationPriority, bool) {
	switch {
	case pct >= HealthyPercentageThreshold:
		return "", false
	case pct >= MediumPercentageThreshold:
		return amodel.PriorityMedium, true
	default:
		return amodel.PriorityHigh, true
	}
}

// BuildRecommendations menghasilkan rekomendasi untuk kategori di bawah 75%,
// diurutkan high → medium → low (stable; seri dipecah pakai urutan deklarasi
// kategori di questionnaire, yaitu urutan slice input).
func BuildRecommendations(assessmentID uuid.UUID, categoryScores []CategoryScoreResult) []amodel.AssessmentRecommendationModel {
	out := make([]amodel.AssessmentRecommendationModel, 0, len(categoryScores))

	for _, cs := range categoryScores {
		priority, need := ClassifyPercentage(cs.Percentage)
		if !need {
			continue
		}

		tpl := recommendationTemplates[priority]
		name := cs.CategoryName
		lower := strings.ToLower(name)

		out = append(out, amodel.AssessmentRecommendationModel{
			RecommendationAssessmentID:     assessmentID,
			RecommendationCategoryID:       cs.CategoryID,
			RecommendationTitle:            fmt.Sprintf(tpl.title, name),
			RecommendationDescription:      fmt.Sprintf(tpl.description, name, RoundPercentage(cs.Percentage)),
			RecommendationPriority:         priority,
			RecommendationSuggestedActions: fmt.Sprintf(tpl.actions, lower),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationPriority.Rank() < out[j].RecommendationPriority.Rank()
	})
	for i := range out {
		out[i].RecommendationSortOrder = i
	}
	return out
}
