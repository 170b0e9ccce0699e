package model

import "time"

// UserAnswer is one submitted response. Answer is the 0-based index of the
// selected option.
type UserAnswer struct {
	QuestionID int `json:"question_id"`
	Answer     int `json:"answer"`
}

// AnswerReview is one graded item in the review trail. Both UserAnswer and
// CorrectAnswer are 0-based here; the 1-based sheet encoding never leaves the
// scoring engine.
type AnswerReview struct {
	QuestionID    int      `json:"question_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    int      `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
}

// TestResult is one completed submission. Results are append-only and looked
// up by the (TestID, UserID) pair.
type TestResult struct {
	TestID         string         `json:"test_id"`
	UserID         string         `json:"user_id"`
	ExamID         string         `json:"exam_id"`
	Answers        []UserAnswer   `json:"answers"`
	Score          float64        `json:"score"` // percentage, 2-decimal rounding
	CorrectCount   int            `json:"correct_count"`
	TotalQuestions int            `json:"total_questions"`
	Timestamp      time.Time      `json:"timestamp"`
	Review         []AnswerReview `json:"review"`
}
