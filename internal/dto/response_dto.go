package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// QuestionResponse deliberately omits the stored correct answer; the grading
// key never leaves the server while a test is in progress.
type QuestionResponse struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type AnswerReviewResponse struct {
	QuestionID    int      `json:"question_id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	UserAnswer    int      `json:"user_answer"`
	CorrectAnswer int      `json:"correct_answer"`
}

type TestResultResponse struct {
	TestID         string                 `json:"test_id"`
	UserID         string                 `json:"user_id"`
	ExamID         string                 `json:"exam_id"`
	Score          float64                `json:"score"`
	CorrectCount   int                    `json:"correct_count"`
	TotalQuestions int                    `json:"total_questions"`
	Timestamp      time.Time              `json:"timestamp"`
	Review         []AnswerReviewResponse `json:"review"`
}

type CertificateResponse struct {
	CertificateNumber string  `json:"certificate_number"`
	CandidateName     string  `json:"candidate_name"`
	FinalScore        float64 `json:"final_score"`
	Date              string  `json:"date"`
	TotalQuestions    int     `json:"total_questions"`
	OrganizationName  string  `json:"organization_name"`
	TemplateTitle     string  `json:"template_title"`
	TemplateBody      string  `json:"template_body"`
}
