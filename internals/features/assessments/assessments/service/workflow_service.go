// file: internals/features/assessments/assessments/service/workflow_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"investku_backend/internals/constants"
	amodel "investku_backend/internals/features/assessments/assessments/model"
	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/helpers/errs"
)

/* =========================================================
   ACTOR

   Semua operasi workflow menerima actor eksplisit — tidak ada
   "current user" ambient. Otorisasi jadi precondition yang
   kelihatan, bukan kebetulan.
========================================================= */

type Actor struct {
	UserID uuid.UUID
	Role   string
}

func (a Actor) IsAdmin() bool { return constants.IsAdminRole(a.Role) }

/* =========================================================
   GUARD TABLE

   draft → in_progress → completed → reviewed
   regrade & insight adalah self-loop dari completed/reviewed.
========================================================= */

const (
	ActionStart            = "start"
	ActionSaveResponse     = "save_response"
	ActionSubmit           = "submit"
	ActionAssignReviewer   = "assign_reviewer"
	ActionMarkReviewed     = "mark_reviewed"
	ActionRegrade          = "regrade"
	ActionGenerateInsights = "generate_insights"
	ActionUpdateInsights   = "update_insights"
)

var actionAllowedFrom = map[string][]amodel.AssessmentStatus{
	ActionStart:            {amodel.StatusDraft},
	ActionSaveResponse:     {amodel.StatusDraft, amodel.StatusInProgress},
	ActionSubmit:           {amodel.StatusInProgress},
	ActionAssignReviewer:   {amodel.StatusCompleted},
	ActionMarkReviewed:     {amodel.StatusCompleted},
	ActionRegrade:          {amodel.StatusCompleted, amodel.StatusReviewed},
	ActionGenerateInsights: {amodel.StatusCompleted, amodel.StatusReviewed},
	ActionUpdateInsights:   {amodel.StatusCompleted, amodel.StatusReviewed},
}

// GuardTransition menolak action di luar guard-nya dengan InvalidTransitionError
// yang menyebut status sekarang (tidak pernah di-swallow / auto-retry).
func GuardTransition(current amodel.AssessmentStatus, action string) error {
	allowed, ok := actionAllowedFrom[action]
	if !ok {
		return errs.NewInvalidTransition(current.String(), action, "unknown action")
	}
	for _, st := range allowed {
		if st == current {
			return nil
		}
	}
	return errs.NewInvalidTransition(current.String(), action, "")
}

// FiscalYearFor: fiscal year mengikuti kalender Juli–Juni
// (Juli 2026 → FY 2026, Maret 2026 → FY 2025).
func FiscalYearFor(t time.Time) int {
	if t.Month() >= time.July {
		return t.Year()
	}
	return t.Year() - 1
}

/* =========================================================
   SERVICE
========================================================= */

type WorkflowService struct {
	DB *gorm.DB
}

func NewWorkflowService(db *gorm.DB) *WorkflowService {
	return &WorkflowService{DB: db}
}

/* ============ Create ============ */

type CreateAssessmentInput struct {
	EnterpriseID    uuid.UUID
	QuestionnaireID uuid.UUID
	// nil = derive dari tanggal sekarang (kalender fiskal Juli–Juni)
	FiscalYear *int
}

func (s *WorkflowService) Create(ctx context.Context, in CreateAssessmentInput) (*amodel.AssessmentModel, error) {
	var q qmodel.QuestionnaireModel
	if err := s.DB.WithContext(ctx).
		First(&q, "questionnaire_id = ? AND questionnaire_is_active = TRUE", in.QuestionnaireID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidResponse("questionnaire %s not found or inactive", in.QuestionnaireID)
		}
		return nil, err
	}

	fy := FiscalYearFor(time.Now())
	if in.FiscalYear != nil {
		fy = *in.FiscalYear
	}

	assessment := amodel.AssessmentModel{
		AssessmentEnterpriseID:    in.EnterpriseID,
		AssessmentQuestionnaireID: in.QuestionnaireID,
		AssessmentFiscalYear:      fy,
		AssessmentStatus:          amodel.StatusDraft,
	}

	if err := s.DB.WithContext(ctx).Create(&assessment).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, errs.NewInvalidTransition(amodel.StatusDraft.String(), "create",
				"assessment for this questionnaire and fiscal year already exists")
		}
		return nil, err
	}

	log.Printf("[WORKFLOW] assessment created. id=%s enterprise=%s fy=%d", assessment.AssessmentID, in.EnterpriseID, fy)
	return &assessment, nil
}

/* ============ Start ============ */

func (s *WorkflowService) Start(ctx context.Context, assessmentID uuid.UUID, actor Actor) (*amodel.AssessmentModel, error) {
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionStart); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"assessment_status": amodel.StatusInProgress,
	}
	if a.AssessmentStartedAt == nil {
		now := time.Now()
		updates["assessment_started_at"] = now
		a.AssessmentStartedAt = &now
	}
	if err := s.casUpdate(s.DB.WithContext(ctx), a, updates); err != nil {
		return nil, err
	}
	a.AssessmentStatus = amodel.StatusInProgress
	return a, nil
}

/* ============ Save response ============ */

type SaveResponseInput struct {
	AssessmentID    uuid.UUID
	QuestionID      uuid.UUID
	SelectedOptions []uuid.UUID
	TextResponse    *string
	NumberResponse  *float64
	// Nilai rubric untuk text/number; hanya dihormati kalau actor admin.
	RubricScore *float64
}

// UpsertResponse membuat/menimpa jawaban satu question. Hanya boleh saat
// status draft/in_progress; bentuk payload divalidasi terhadap tipe question.
func (s *WorkflowService) UpsertResponse(ctx context.Context, in SaveResponseInput, actor Actor) (*amodel.AssessmentResponseModel, error) {
	a, err := s.load(ctx, in.AssessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionSaveResponse); err != nil {
		return nil, err
	}

	var q qmodel.QuestionModel
	if err := s.DB.WithContext(ctx).Preload("Options").
		First(&q, "question_id = ?", in.QuestionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewInvalidResponse("question %s not found", in.QuestionID)
		}
		return nil, err
	}
	if q.QuestionQuestionnaireID != a.AssessmentQuestionnaireID {
		return nil, errs.NewInvalidResponse(
			"question %s does not belong to questionnaire %s",
			in.QuestionID, a.AssessmentQuestionnaireID,
		)
	}
	if err := validateResponseShape(&q, in); err != nil {
		return nil, err
	}

	resp := amodel.AssessmentResponseModel{
		ResponseAssessmentID: in.AssessmentID,
		ResponseQuestionID:   in.QuestionID,
		ResponseText:         in.TextResponse,
		ResponseNumber:       in.NumberResponse,
	}
	for _, id := range in.SelectedOptions {
		resp.ResponseSelectedOptions = append(resp.ResponseSelectedOptions, id.String())
	}
	if in.RubricScore != nil && actor.IsAdmin() {
		resp.ResponseScore = *in.RubricScore
	}

	// Upsert manual per (assessment, question); race ditangkap unique index.
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing amodel.AssessmentResponseModel
		findErr := tx.First(&existing,
			"response_assessment_id = ? AND response_question_id = ?",
			in.AssessmentID, in.QuestionID).Error

		switch {
		case findErr == nil:
			resp.ResponseID = existing.ResponseID
			if in.RubricScore == nil || !actor.IsAdmin() {
				resp.ResponseScore = existing.ResponseScore
			}
			return tx.Model(&amodel.AssessmentResponseModel{}).
				Where("response_id = ?", existing.ResponseID).
				Updates(map[string]interface{}{
					"response_selected_options": resp.ResponseSelectedOptions,
					"response_text":             resp.ResponseText,
					"response_number":           resp.ResponseNumber,
					"response_score":            resp.ResponseScore,
				}).Error
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			return tx.Create(&resp).Error
		default:
			return findErr
		}
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func validateResponseShape(q *qmodel.QuestionModel, in SaveResponseInput) error {
	switch q.QuestionType {
	case qmodel.QuestionTypeSingleChoice, qmodel.QuestionTypeMultipleChoice:
		if in.TextResponse != nil || in.NumberResponse != nil {
			return errs.NewInvalidResponse("question %s expects selected options only", q.QuestionID)
		}
		if q.QuestionType == qmodel.QuestionTypeSingleChoice && len(in.SelectedOptions) > 1 {
			return errs.NewInvalidResponse("question %s is single_choice, got %d options", q.QuestionID, len(in.SelectedOptions))
		}
		seen := make(map[uuid.UUID]bool, len(in.SelectedOptions))
		for _, optID := range in.SelectedOptions {
			// Duplikat ditolak, bukan di-dedupe diam-diam: multi-choice
			// menjumlahkan skor per option, double-count = double-score.
			if seen[optID] {
				return errs.NewInvalidResponse("option %s selected more than once for question %s", optID, q.QuestionID)
			}
			seen[optID] = true
			found := false
			for i := range q.Options {
				if q.Options[i].QuestionOptionID == optID {
					found = true
					break
				}
			}
			if !found {
				return errs.NewInvalidResponse("option %s does not belong to question %s", optID, q.QuestionID)
			}
		}
	case qmodel.QuestionTypeText:
		if len(in.SelectedOptions) > 0 || in.NumberResponse != nil {
			return errs.NewInvalidResponse("question %s expects a text response only", q.QuestionID)
		}
	case qmodel.QuestionTypeNumber, qmodel.QuestionTypeScale:
		if len(in.SelectedOptions) > 0 || in.TextResponse != nil {
			return errs.NewInvalidResponse("question %s expects a number response only", q.QuestionID)
		}
	default:
		return errs.NewInvalidResponse("question %s has unknown type %q", q.QuestionID, q.QuestionType)
	}
	return nil
}

/* ============ Submit ============ */

// Submit menjalankan scoring + recommendation lalu pindah ke completed.
// Semua derived state (skor kategori, rekomendasi, skor response) di-replace
// dalam satu transaksi; status lain race lewat optimistic lock.
func (s *WorkflowService) Submit(ctx context.Context, assessmentID uuid.UUID, actor Actor) (*amodel.AssessmentModel, error) {
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionSubmit); err != nil {
		return nil, err
	}

	catalog, responses, err := s.loadScoringInput(ctx, a)
	if err != nil {
		return nil, err
	}

	if missing := missingRequired(catalog.Questions, responses); len(missing) > 0 {
		return nil, errs.NewInvalidTransition(a.AssessmentStatus.String(), ActionSubmit,
			"required questions without a response: "+strings.Join(missing, ", "))
	}

	now := time.Now()
	return a, s.regradeTx(ctx, a, catalog, responses, map[string]interface{}{
		"assessment_status":       amodel.StatusCompleted,
		"assessment_completed_at": now,
	}, func() {
		a.AssessmentStatus = amodel.StatusCompleted
		a.AssessmentCompletedAt = &now
	})
}

/* ============ Assign reviewer ============ */

// AssignReviewer: admin only. Reassign reviewer yang sudah ada itu diizinkan
// (keputusan eksplisit); assign reviewer yang sama lagi = no-op sukses.
func (s *WorkflowService) AssignReviewer(ctx context.Context, assessmentID, reviewerID uuid.UUID, actor Actor) (*amodel.AssessmentModel, error) {
	if !actor.IsAdmin() {
		return nil, errs.NewInvalidTransition("", ActionAssignReviewer, "only admins may assign reviewers")
	}
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionAssignReviewer); err != nil {
		return nil, err
	}
	if a.AssessmentReviewedBy != nil && *a.AssessmentReviewedBy == reviewerID {
		return a, nil
	}

	if err := s.casUpdate(s.DB.WithContext(ctx), a, map[string]interface{}{
		"assessment_reviewed_by": reviewerID,
	}); err != nil {
		return nil, err
	}
	a.AssessmentReviewedBy = &reviewerID
	return a, nil
}

/* ============ Mark reviewed ============ */

func (s *WorkflowService) MarkReviewed(ctx context.Context, assessmentID uuid.UUID, actor Actor) (*amodel.AssessmentModel, error) {
	if !actor.IsAdmin() {
		return nil, errs.NewInvalidTransition("", ActionMarkReviewed, "only admins may review assessments")
	}
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionMarkReviewed); err != nil {
		return nil, err
	}
	if a.AssessmentReviewedBy == nil {
		return nil, errs.NewInvalidTransition(a.AssessmentStatus.String(), ActionMarkReviewed,
			"no reviewer assigned")
	}

	now := time.Now()
	if err := s.casUpdate(s.DB.WithContext(ctx), a, map[string]interface{}{
		"assessment_status":      amodel.StatusReviewed,
		"assessment_reviewed_at": now,
	}); err != nil {
		return nil, err
	}
	a.AssessmentStatus = amodel.StatusReviewed
	a.AssessmentReviewedAt = &now
	return a, nil
}

/* ============ Regrade ============ */

// Regrade: hitung ulang skor + rekomendasi in place tanpa mengubah status
// maupun reviewer. Idempotent untuk responses yang tidak berubah.
func (s *WorkflowService) Regrade(ctx context.Context, assessmentID uuid.UUID, actor Actor) (*amodel.AssessmentModel, error) {
	if !actor.IsAdmin() {
		return nil, errs.NewInvalidTransition("", ActionRegrade, "only admins may regrade")
	}
	a, err := s.load(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := GuardTransition(a.AssessmentStatus, ActionRegrade); err != nil {
		return nil, err
	}

	catalog, responses, err := s.loadScoringInput(ctx, a)
	if err != nil {
		return nil, err
	}
	return a, s.regradeTx(ctx, a, catalog, responses, map[string]interface{}{}, nil)
}

/* =========================================================
   INTERNALS
========================================================= */

func (s *WorkflowService) load(ctx context.Context, id uuid.UUID) (*amodel.AssessmentModel, error) {
	var a amodel.AssessmentModel
	if err := s.DB.WithContext(ctx).First(&a, "assessment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &a, nil
}

type scoringCatalog struct {
	Questions  []qmodel.QuestionModel
	Categories []qmodel.AssessmentCategoryModel
}

func (s *WorkflowService) loadScoringInput(ctx context.Context, a *amodel.AssessmentModel) (*scoringCatalog, []amodel.AssessmentResponseModel, error) {
	var catalog scoringCatalog

	if err := s.DB.WithContext(ctx).Preload("Options").
		Where("question_questionnaire_id = ?", a.AssessmentQuestionnaireID).
		Order("question_order ASC").
		Find(&catalog.Questions).Error; err != nil {
		return nil, nil, err
	}
	if err := s.DB.WithContext(ctx).
		Where("category_is_active = TRUE").
		Find(&catalog.Categories).Error; err != nil {
		return nil, nil, err
	}

	var responses []amodel.AssessmentResponseModel
	if err := s.DB.WithContext(ctx).
		Where("response_assessment_id = ?", a.AssessmentID).
		Find(&responses).Error; err != nil {
		return nil, nil, err
	}
	return &catalog, responses, nil
}

// regradeTx: derive-and-replace dalam satu transaksi + CAS di baris assessment.
func (s *WorkflowService) regradeTx(
	ctx context.Context,
	a *amodel.AssessmentModel,
	catalog *scoringCatalog,
	responses []amodel.AssessmentResponseModel,
	extraUpdates map[string]interface{},
	onSuccess func(),
) error {
	result, err := ComputeScores(ScoreInput{
		Categories: catalog.Categories,
		Questions:  catalog.Questions,
		Responses:  responses,
	})
	if err != nil {
		return err
	}

	recommendations := BuildRecommendations(a.AssessmentID, result.CategoryScores)

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"assessment_total_score":        result.TotalScore,
			"assessment_max_possible_score": result.MaxPossibleScore,
			"assessment_percentage_score":   result.PercentageScore,
		}
		for k, v := range extraUpdates {
			updates[k] = v
		}
		if err := s.casUpdate(tx, a, updates); err != nil {
			return err
		}

		// tulis balik skor per response hasil engine
		for respID, score := range result.ResponseScores {
			if err := tx.Model(&amodel.AssessmentResponseModel{}).
				Where("response_id = ?", respID).
				Update("response_score", score).Error; err != nil {
				return err
			}
		}

		// replace penuh: category scores
		if err := tx.Where("category_score_assessment_id = ?", a.AssessmentID).
			Delete(&amodel.AssessmentCategoryScoreModel{}).Error; err != nil {
			return err
		}
		for _, cs := range result.CategoryScores {
			row := amodel.AssessmentCategoryScoreModel{
				CategoryScoreAssessmentID: a.AssessmentID,
				CategoryScoreCategoryID:   cs.CategoryID,
				CategoryScoreScore:        cs.Score,
				CategoryScoreMaxScore:     cs.MaxScore,
				CategoryScorePercentage:   cs.Percentage,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		// replace penuh: recommendations
		if err := tx.Where("recommendation_assessment_id = ?", a.AssessmentID).
			Delete(&amodel.AssessmentRecommendationModel{}).Error; err != nil {
			return err
		}
		if len(recommendations) > 0 {
			if err := tx.Create(&recommendations).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	a.AssessmentTotalScore = result.TotalScore
	a.AssessmentMaxPossibleScore = result.MaxPossibleScore
	a.AssessmentPercentageScore = result.PercentageScore
	if onSuccess != nil {
		onSuccess()
	}
	log.Printf("[WORKFLOW] scores replaced. assessment=%s total=%.2f/%.2f (%.1f%%) recommendations=%d",
		a.AssessmentID, result.TotalScore, result.MaxPossibleScore,
		RoundPercentage(result.PercentageScore), len(recommendations))
	return nil
}

// casUpdate: compare-and-swap di assessment_lock_version.
// RowsAffected 0 = kalah race → ConcurrentModificationError (caller yang retry).
func (s *WorkflowService) casUpdate(tx *gorm.DB, a *amodel.AssessmentModel, updates map[string]interface{}) error {
	updates["assessment_lock_version"] = a.AssessmentLockVersion + 1
	res := tx.Model(&amodel.AssessmentModel{}).
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

// MissingRequired versi pure, dipakai juga di test.
func missingRequired(questions []qmodel.QuestionModel, responses []amodel.AssessmentResponseModel) []string {
	answered := make(map[uuid.UUID]bool, len(responses))
	for i := range responses {
		if responseHasContent(&responses[i]) {
			answered[responses[i].ResponseQuestionID] = true
		}
	}
	var missing []string
	for i := range questions {
		q := &questions[i]
		if q.QuestionIsRequired && !answered[q.QuestionID] {
			missing = append(missing, q.QuestionID.String())
		}
	}
	return missing
}

func responseHasContent(r *amodel.AssessmentResponseModel) bool {
	if len(r.ResponseSelectedOptions) > 0 {
		return true
	}
	if r.ResponseText != nil && strings.TrimSpace(*r.ResponseText) != "" {
		return true
	}
	return r.ResponseNumber != nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value")
}
