package service

import (
	"math"
	"time"

	"github.com/coding-online/certexam/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ScoringService grades one submission against a question pool. It is pure
// computation over already-validated inputs; transports handle preconditions.
type ScoringService interface {
	Score(userID, examID string, pool []model.Question, answers []model.UserAnswer) *model.TestResult
}

type scoringService struct{}

func NewScoringService() ScoringService {
	return &scoringService{}
}

// Score joins each answer to its question by id and counts it correct when
// the stored 1-based answer index, normalized to 0-based, equals the
// submitted 0-based index. Answers referencing a question that is not in the
// pool are excluded from the correct count and the review trail but still
// counted in TotalQuestions, which is always len(answers).
func (s *scoringService) Score(userID, examID string, pool []model.Question, answers []model.UserAnswer) *model.TestResult {
	byID := make(map[int]*model.Question, len(pool))
	for i := range pool {
		byID[pool[i].ID] = &pool[i]
	}

	correctCount := 0
	review := make([]model.AnswerReview, 0, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			log.Warn().Int("question_id", answer.QuestionID).Str("exam_id", examID).
				Msg("Submitted answer references a question outside the pool")
			continue
		}

		if question.CorrectAnswer-1 == answer.Answer {
			correctCount++
		}
		review = append(review, model.AnswerReview{
			QuestionID:    question.ID,
			Question:      question.Question,
			Options:       question.Options,
			UserAnswer:    answer.Answer,
			CorrectAnswer: question.CorrectAnswer - 1,
		})
	}

	totalQuestions := len(answers)
	score := 0.0
	if totalQuestions > 0 {
		score = round2(float64(correctCount) / float64(totalQuestions) * 100)
	}

	return &model.TestResult{
		TestID:         "test-" + uuid.NewString(),
		UserID:         userID,
		ExamID:         examID,
		Answers:        answers,
		Score:          score,
		CorrectCount:   correctCount,
		TotalQuestions: totalQuestions,
		Timestamp:      time.Now(),
		Review:         review,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
