// file: internals/features/assessments/insights/service/generator.go
package service

import (
	"context"
)

/* =========================================================
   Kontrak generator insight

   Generator teks eksternal diperlakukan sebagai remote call yang
   bisa gagal: interface ini yang dipegang service (mockable di test),
   bukan network call inline.
========================================================= */

type CategoryScoreSummary struct {
	Category   string  `json:"category"`
	Score      float64 `json:"score"`
	MaxScore   float64 `json:"max_score"`
	Percentage float64 `json:"percentage"`
}

type ResponseSummary struct {
	Category string      `json:"category"`
	Question string      `json:"question"`
	Answer   interface{} `json:"answer,omitempty"`
	Score    float64     `json:"score"`
	MaxScore float64     `json:"max_score"`
}

// InsightPrompt: konteks lengkap satu assessment untuk generator.
type InsightPrompt struct {
	EnterpriseProfile string
	FiscalYear        int

	TotalScore       float64
	MaxPossibleScore float64
	PercentageScore  float64

	CategoryScores  []CategoryScoreSummary
	SampleResponses []ResponseSummary
}

// InsightResult: daftar strengths/weaknesses terurut, siap disimpan.
type InsightResult struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

type InsightGenerator interface {
	Generate(ctx context.Context, prompt InsightPrompt) (*InsightResult, error)
}
