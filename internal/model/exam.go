package model

// Exam describes one purchasable (or free practice) exam configuration.
// Price 0 marks the free tier; certificates are gated on paid exams only.
type Exam struct {
	ID                    string  `json:"id"`
	Name                  string  `json:"name"`
	Description           string  `json:"description,omitempty"`
	Price                 float64 `json:"price"`
	QuestionSourceURL     string  `json:"question_source_url,omitempty"`
	NumberOfQuestions     int     `json:"number_of_questions"`
	PassScore             float64 `json:"pass_score"`
	CertificateTemplateID string  `json:"certificate_template_id,omitempty"`
	IsPractice            bool    `json:"is_practice"`
}

// ExamProductCategory groups a practice test and a certification exam under
// one product line.
type ExamProductCategory struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	PracticeExamID      string `json:"practice_exam_id"`
	CertificationExamID string `json:"certification_exam_id"`
}
