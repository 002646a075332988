// file: internals/features/assessments/assessments/service/scoring_service.go
package service

import (
	"math"
	"sort"

	"github.com/google/uuid"

	amodel "investku_backend/internals/features/assessments/assessments/model"
	qmodel "investku_backend/internals/features/assessments/questionnaires/model"
	"investku_backend/internals/helpers/errs"
)

/* =========================================================
   SCORING ENGINE (pure, tanpa side effect)

   (Questionnaire, Responses) → (CategoryScores, Total, Max, Percentage)
   Dipanggil workflow service saat submit & regrade.
========================================================= */

type ScoreInput struct {
	// Kategori aktif (untuk nama + bobot). Kategori yang tidak ada di sini
	// dianggap berbobot 1.0.
	Categories []qmodel.AssessmentCategoryModel

	// Semua question milik questionnaire, Options sudah ter-preload.
	Questions []qmodel.QuestionModel

	// Jawaban enterprise untuk assessment ini.
	Responses []amodel.AssessmentResponseModel
}

type CategoryScoreResult struct {
	CategoryID   uuid.UUID
	CategoryName string
	Weight       float64

	Score      float64
	MaxScore   float64
	Percentage float64
}

type ScoreResult struct {
	// Urut sesuai urutan deklarasi kategori di questionnaire
	// (kemunculan pertama berdasarkan question_order).
	CategoryScores []CategoryScoreResult

	TotalScore       float64
	MaxPossibleScore float64
	PercentageScore  float64

	// Skor per response hasil hitung engine, untuk ditulis balik ke baris response.
	ResponseScores map[uuid.UUID]float64
}

// ComputeScores menghitung skor per kategori + total berbobot.
//
// Aturan per question:
//   - single_choice : skor option terpilih (0 kalau kosong; >1 pilihan = invalid)
//   - multiple_choice: jumlah skor option terpilih, di-cap di question_max_score
//   - text/number/scale: pass-through nilai rubric yang sudah tersimpan di response
//
// Aturan max kategori: question terjawab selalu dihitung; question required yang
// belum terjawab tetap menambah max dengan kontribusi 0 (completeness penalty);
// question optional yang belum terjawab tidak dihitung sama sekali.
func ComputeScores(in ScoreInput) (*ScoreResult, error) {
	questionByID := make(map[uuid.UUID]*qmodel.QuestionModel, len(in.Questions))
	for i := range in.Questions {
		questionByID[in.Questions[i].QuestionID] = &in.Questions[i]
	}

	responseByQuestion := make(map[uuid.UUID]*amodel.AssessmentResponseModel, len(in.Responses))
	for i := range in.Responses {
		resp := &in.Responses[i]
		if _, ok := questionByID[resp.ResponseQuestionID]; !ok {
			return nil, errs.NewInvalidResponse(
				"response %s references question %s that does not belong to the questionnaire",
				resp.ResponseID, resp.ResponseQuestionID,
			)
		}
		responseByQuestion[resp.ResponseQuestionID] = resp
	}

	categoryByID := make(map[uuid.UUID]*qmodel.AssessmentCategoryModel, len(in.Categories))
	for i := range in.Categories {
		categoryByID[in.Categories[i].CategoryID] = &in.Categories[i]
	}

	// Urutkan question berdasarkan order supaya urutan kategori deterministik.
	questions := make([]qmodel.QuestionModel, len(in.Questions))
	copy(questions, in.Questions)
	sort.SliceStable(questions, func(i, j int) bool {
		return questions[i].QuestionOrder < questions[j].QuestionOrder
	})

	type bucket struct {
		score float64
		max   float64
	}
	buckets := make(map[uuid.UUID]*bucket)
	categoryOrder := make([]uuid.UUID, 0, len(in.Categories))

	responseScores := make(map[uuid.UUID]float64, len(in.Responses))

	for i := range questions {
		q := &questions[i]
		resp, answered := responseByQuestion[q.QuestionID]

		if !answered && !q.QuestionIsRequired {
			continue // optional & kosong: tidak dihitung sama sekali
		}

		b, ok := buckets[q.QuestionCategoryID]
		if !ok {
			b = &bucket{}
			buckets[q.QuestionCategoryID] = b
			categoryOrder = append(categoryOrder, q.QuestionCategoryID)
		}
		b.max += q.QuestionMaxScore

		if !answered {
			continue // required & kosong: max ikut, skor 0
		}

		qs, err := scoreQuestion(q, resp)
		if err != nil {
			return nil, err
		}
		responseScores[resp.ResponseID] = qs
		b.score += qs
	}

	result := &ScoreResult{
		CategoryScores: make([]CategoryScoreResult, 0, len(categoryOrder)),
		ResponseScores: responseScores,
	}

	for _, catID := range categoryOrder {
		b := buckets[catID]

		weight := 1.0
		name := ""
		if cat, ok := categoryByID[catID]; ok {
			name = cat.CategoryName
			if cat.CategoryWeight > 0 {
				weight = cat.CategoryWeight
			}
		}

		pct := 0.0
		if b.max > 0 {
			pct = b.score / b.max * 100
		}

		result.CategoryScores = append(result.CategoryScores, CategoryScoreResult{
			CategoryID:   catID,
			CategoryName: name,
			Weight:       weight,
			Score:        b.score,
			MaxScore:     b.max,
			Percentage:   pct,
		})

		// Bobot kategori hanya mempengaruhi agregat total, bukan persentase kategori.
		result.TotalScore += b.score * weight
		result.MaxPossibleScore += b.max * weight
	}

	if result.MaxPossibleScore > 0 {
		result.PercentageScore = result.TotalScore / result.MaxPossibleScore * 100
	}

	return result, nil
}

func scoreQuestion(q *qmodel.QuestionModel, resp *amodel.AssessmentResponseModel) (float64, error) {
	switch q.QuestionType {
	case qmodel.QuestionTypeSingleChoice:
		selected := resp.SelectedOptionIDs()
		if len(selected) == 0 {
			return 0, nil
		}
		if len(selected) > 1 {
			return 0, errs.NewInvalidResponse(
				"question %s is single_choice but response %s selected %d options",
				q.QuestionID, resp.ResponseID, len(selected),
			)
		}
		opt, err := lookupOption(q, resp, selected[0])
		if err != nil {
			return 0, err
		}
		// Cap di max_score juga untuk single: katalog lama bisa saja punya
		// option dengan skor di atas plafon, persentase tidak boleh tembus 100.
		return math.Min(opt.QuestionOptionScore, q.QuestionMaxScore), nil

	case qmodel.QuestionTypeMultipleChoice:
		sum := 0.0
		for _, optID := range resp.SelectedOptionIDs() {
			opt, err := lookupOption(q, resp, optID)
			if err != nil {
				return 0, err
			}
			sum += opt.QuestionOptionScore
		}
		// Cap di max_score: pilih semua option tidak boleh melebihi plafon question.
		return math.Min(sum, q.QuestionMaxScore), nil

	default:
		// text / number / scale: engine tidak mengarang skor untuk jawaban bebas.
		// Nilai rubric sudah disimpan di response oleh penilai eksternal.
		return resp.ResponseScore, nil
	}
}

func lookupOption(q *qmodel.QuestionModel, resp *amodel.AssessmentResponseModel, optID uuid.UUID) (*qmodel.QuestionOptionModel, error) {
	for i := range q.Options {
		if q.Options[i].QuestionOptionID == optID {
			return &q.Options[i], nil
		}
	}
	return nil, errs.NewInvalidResponse(
		"response %s selects option %s that does not belong to question %s",
		resp.ResponseID, optID, q.QuestionID,
	)
}

// RoundPercentage membulatkan persentase ke satu desimal untuk display.
// Nilai yang disimpan tetap full precision.
func RoundPercentage(v float64) float64 {
	return math.Round(v*10) / 10
}
