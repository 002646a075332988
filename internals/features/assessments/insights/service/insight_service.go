// file: internals/features/assessments/insights/service/insight_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	amodel "investku_backend/internals/features/assessments/assessments/model"
	asvc "investku_backend/internals/features/assessments/assessments/service"
	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	emodel "investku_backend/internals/features/enterprises/model"
	"investku_backend/internals/helpers/errs"
)

const (
	// Batas jumlah sample response yang ikut masuk prompt.
	maxPromptResponses = 15

	DefaultGenerateTimeout = 60 * time.Second
)

/* =========================================================
   INSIGHT SERVICE

   generate: panggil collaborator AI (fallible, dengan timeout,
             tanpa lock selama call in-flight), write-back pakai
             optimistic check yang sama dengan mutasi lain.
   update  : overwrite lokal idempotent (manual edit admin).
========================================================= */

type InsightService struct {
	DB        *gorm.DB
	Generator InsightGenerator
	Timeout   time.Duration
}

func NewInsightService(db *gorm.DB, gen InsightGenerator) *InsightService {
	return &InsightService{DB: db, Generator: gen, Timeout: DefaultGenerateTimeout}
}

// Insight adalah potongan read model yang dikirim ke FE.
type Insight struct {
	Strengths   []string   `json:"ai_strengths"`
	Weaknesses  []string   `json:"ai_weaknesses"`
	GeneratedAt *time.Time `json:"ai_generated_at"`
}

/* ============ Generate ============ */

// GenerateInsights: all-or-nothing. Kalau generator gagal (timeout, JSON rusak),
// insight lama dibiarkan utuh dan error naik sebagai InsightGenerationError.
// Kalau assessment berubah selama generation in-flight (misal regrade),
// write-back kalah CAS → ConcurrentModificationError, tidak menimpa diam-diam.
func (s *InsightService) GenerateInsights(ctx context.Context, assessmentID uuid.UUID, actor asvc.Actor) (*Insight, error) {
	if !actor.IsAdmin() {
		return nil, errs.NewInvalidTransition("", asvc.ActionGenerateInsights, "only admins may generate insights")
	}
	if s.Generator == nil {
		return nil, errs.NewInsightGeneration(errors.New("insight generator is not configured"))
	}

	a, err := s.loadAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := asvc.GuardTransition(a.AssessmentStatus, asvc.ActionGenerateInsights); err != nil {
		return nil, err
	}

	prompt, err := s.buildPrompt(ctx, a)
	if err != nil {
		return nil, err
	}

	// Call eksternal: pakai timeout, tidak pegang lock apa pun di baris assessment.
	genCtx, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	result, genErr := s.Generator.Generate(genCtx, *prompt)
	if genErr != nil {
		log.Printf("[INSIGHT] generation failed. assessment=%s err=%v", assessmentID, genErr)
		return nil, errs.NewInsightGeneration(genErr)
	}

	strengthsJSON, err := json.Marshal(result.Strengths)
	if err != nil {
		return nil, errs.NewInsightGeneration(err)
	}
	weaknessesJSON, err := json.Marshal(result.Weaknesses)
	if err != nil {
		return nil, errs.NewInsightGeneration(err)
	}

	now := time.Now()
	if err := s.casUpdate(ctx, a, map[string]interface{}{
		"assessment_ai_strengths":    datatypes.JSON(strengthsJSON),
		"assessment_ai_weaknesses":   datatypes.JSON(weaknessesJSON),
		"assessment_ai_generated_at": now,
	}); err != nil {
		return nil, err
	}

	log.Printf("[INSIGHT] generated. assessment=%s strengths=%d weaknesses=%d",
		assessmentID, len(result.Strengths), len(result.Weaknesses))
	return &Insight{Strengths: result.Strengths, Weaknesses: result.Weaknesses, GeneratedAt: &now}, nil
}

/* ============ Update (manual edit) ============ */

// UpdateInsights: overwrite penuh dari editor admin, tanpa call eksternal,
// tanpa merge dengan konten AI sebelumnya. Idempotent: dua kali panggil
// dengan list sama menghasilkan state tersimpan yang sama.
func (s *InsightService) UpdateInsights(ctx context.Context, assessmentID uuid.UUID, strengths, weaknesses []string, actor asvc.Actor) (*Insight, error) {
	if !actor.IsAdmin() {
		return nil, errs.NewInvalidTransition("", asvc.ActionUpdateInsights, "only admins may edit insights")
	}

	a, err := s.loadAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := asvc.GuardTransition(a.AssessmentStatus, asvc.ActionUpdateInsights); err != nil {
		return nil, err
	}

	if strengths == nil {
		strengths = []string{}
	}
	if weaknesses == nil {
		weaknesses = []string{}
	}
	strengthsJSON, err := json.Marshal(strengths)
	if err != nil {
		return nil, err
	}
	weaknessesJSON, err := json.Marshal(weaknesses)
	if err != nil {
		return nil, err
	}

	if err := s.casUpdate(ctx, a, map[string]interface{}{
		"assessment_ai_strengths":  datatypes.JSON(strengthsJSON),
		"assessment_ai_weaknesses": datatypes.JSON(weaknessesJSON),
	}); err != nil {
		return nil, err
	}

	return &Insight{Strengths: strengths, Weaknesses: weaknesses, GeneratedAt: a.AssessmentAIGeneratedAt}, nil
}

/* ============ Read ============ */

func (s *InsightService) GetInsight(ctx context.Context, assessmentID uuid.UUID) (*Insight, error) {
	a, err := s.loadAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	return InsightFromAssessment(a), nil
}

// InsightFromAssessment decode kolom JSONB jadi read model.
func InsightFromAssessment(a *amodel.AssessmentModel) *Insight {
	out := &Insight{Strengths: []string{}, Weaknesses: []string{}, GeneratedAt: a.AssessmentAIGeneratedAt}
	if len(a.AssessmentAIStrengths) > 0 {
		_ = json.Unmarshal(a.AssessmentAIStrengths, &out.Strengths)
	}
	if len(a.AssessmentAIWeaknesses) > 0 {
		_ = json.Unmarshal(a.AssessmentAIWeaknesses, &out.Weaknesses)
	}
	return out
}

/* =========================================================
   INTERNALS
========================================================= */

func (s *InsightService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultGenerateTimeout
}

func (s *InsightService) loadAssessment(ctx context.Context, id uuid.UUID) (*amodel.AssessmentModel, error) {
	var a amodel.AssessmentModel
	if err := s.DB.WithContext(ctx).First(&a, "assessment_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *InsightService) casUpdate(ctx context.Context, a *amodel.AssessmentModel, updates map[string]interface{}) error {
	updates["assessment_lock_version"] = a.AssessmentLockVersion + 1
	res := s.DB.WithContext(ctx).Model(&amodel.AssessmentModel{}).
		Where("assessment_id = ? AND assessment_lock_version = ?", a.AssessmentID, a.AssessmentLockVersion).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errs.NewConcurrentModification("assessment")
	}
	a.AssessmentLockVersion++
	return nil
}

// buildPrompt merangkai profil enterprise + skor + sample jawaban.
func (s *InsightService) buildPrompt(ctx context.Context, a *amodel.AssessmentModel) (*InsightPrompt, error) {
	var enterprise emodel.EnterpriseModel
	if err := s.DB.WithContext(ctx).
		First(&enterprise, "enterprise_id = ?", a.AssessmentEnterpriseID).Error; err != nil {
		return nil, err
	}

	var catScores []amodel.AssessmentCategoryScoreModel
	if err := s.DB.WithContext(ctx).
		Where("category_score_assessment_id = ?", a.AssessmentID).
		Find(&catScores).Error; err != nil {
		return nil, err
	}

	var categories []qmodel.AssessmentCategoryModel
	if err := s.DB.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, err
	}
	categoryName := make(map[uuid.UUID]string, len(categories))
	for i := range categories {
		categoryName[categories[i].CategoryID] = categories[i].CategoryName
	}

	var questions []qmodel.QuestionModel
	if err := s.DB.WithContext(ctx).Preload("Options").
		Where("question_questionnaire_id = ?", a.AssessmentQuestionnaireID).
		Order("question_order ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	questionByID := make(map[uuid.UUID]*qmodel.QuestionModel, len(questions))
	for i := range questions {
		questionByID[questions[i].QuestionID] = &questions[i]
	}

	var responses []amodel.AssessmentResponseModel
	if err := s.DB.WithContext(ctx).
		Where("response_assessment_id = ?", a.AssessmentID).
		Limit(maxPromptResponses).
		Find(&responses).Error; err != nil {
		return nil, err
	}

	prompt := &InsightPrompt{
		EnterpriseProfile: enterpriseProfile(&enterprise),
		FiscalYear:        a.AssessmentFiscalYear,
		TotalScore:        a.AssessmentTotalScore,
		MaxPossibleScore:  a.AssessmentMaxPossibleScore,
		PercentageScore:   a.AssessmentPercentageScore,
	}

	for _, cs := range catScores {
		prompt.CategoryScores = append(prompt.CategoryScores, CategoryScoreSummary{
			Category:   categoryName[cs.CategoryScoreCategoryID],
			Score:      cs.CategoryScoreScore,
			MaxScore:   cs.CategoryScoreMaxScore,
			Percentage: cs.CategoryScorePercentage,
		})
	}

	for i := range responses {
		r := &responses[i]
		q, ok := questionByID[r.ResponseQuestionID]
		if !ok {
			continue
		}
		prompt.SampleResponses = append(prompt.SampleResponses, ResponseSummary{
			Category: categoryName[q.QuestionCategoryID],
			Question: q.QuestionText,
			Answer:   responseAnswer(r, q),
			Score:    r.ResponseScore,
			MaxScore: q.QuestionMaxScore,
		})
	}

	return prompt, nil
}

func enterpriseProfile(e *emodel.EnterpriseModel) string {
	profile := fmt.Sprintf("Name: %s | Sector: %s | Location: %s",
		e.EnterpriseBusinessName, e.EnterpriseSector, e.EnterpriseDistrict)
	if e.EnterpriseSize != "" {
		profile += " | Size: " + e.EnterpriseSize
	}
	if e.EnterpriseEmployeeCount > 0 {
		profile += fmt.Sprintf(" | Employees: %d", e.EnterpriseEmployeeCount)
	}
	if e.EnterpriseYearsInOperation > 0 {
		profile += fmt.Sprintf(" | Years Operating: %d", e.EnterpriseYearsInOperation)
	}
	if e.EnterpriseDescription != "" {
		profile += " | Description: " + e.EnterpriseDescription
	}
	return profile
}

func responseAnswer(r *amodel.AssessmentResponseModel, q *qmodel.QuestionModel) interface{} {
	if len(r.ResponseSelectedOptions) > 0 {
		texts := make([]string, 0, len(r.ResponseSelectedOptions))
		for _, id := range r.SelectedOptionIDs() {
			for i := range q.Options {
				if q.Options[i].QuestionOptionID == id {
					texts = append(texts, q.Options[i].QuestionOptionText)
				}
			}
		}
		return texts
	}
	if r.ResponseText != nil {
		return *r.ResponseText
	}
	if r.ResponseNumber != nil {
		return *r.ResponseNumber
	}
	return nil
}
