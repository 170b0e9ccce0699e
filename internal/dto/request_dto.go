package dto

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// UserAnswerDTO carries one submitted response. Answer is the 0-based option
// index, so 0 is a legitimate value and must not be bound as required.
type UserAnswerDTO struct {
	QuestionID int `json:"question_id" binding:"required,min=1"`
	Answer     int `json:"answer" binding:"min=0"`
}

type SubmitTestRequest struct {
	Answers []UserAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}
