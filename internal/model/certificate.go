package model

type CertificateTemplate struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	Signature1Name  string `json:"signature1_name"`
	Signature1Title string `json:"signature1_title"`
	Signature2Name  string `json:"signature2_name"`
	Signature2Title string `json:"signature2_title"`
}

type Organization struct {
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Website               string                `json:"website"`
	Exams                 []Exam                `json:"exams"`
	ExamProductCategories []ExamProductCategory `json:"exam_product_categories"`
	CertificateTemplates  []CertificateTemplate `json:"certificate_templates"`
}

// CertificateData is a derived projection of a passing, paid-tier TestResult.
// It is recomputed on every access and never stored.
type CertificateData struct {
	CertificateNumber string              `json:"certificate_number"`
	CandidateName     string              `json:"candidate_name"`
	FinalScore        float64             `json:"final_score"`
	Date              string              `json:"date"`
	TotalQuestions    int                 `json:"total_questions"`
	Organization      *Organization       `json:"organization,omitempty"`
	Template          *CertificateTemplate `json:"template,omitempty"`
}
