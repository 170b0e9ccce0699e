package service

import (
	"fmt"
	"time"

	"github.com/coding-online/certexam/internal/catalog"
	"github.com/coding-online/certexam/internal/model"
)

// CertificateService gates and builds certificate data. Certificates are a
// pure projection of a passing, paid-tier TestResult; nothing is stored.
type CertificateService interface {
	Eligible(result *model.TestResult, exam *model.Exam) bool
	Build(result *model.TestResult, user *model.User, exam *model.Exam) *model.CertificateData
	Sample(user *model.User) *model.CertificateData
}

type certificateService struct {
	org *model.Organization
}

func NewCertificateService() CertificateService {
	return &certificateService{org: catalog.Default()}
}

// Eligible is the pass-threshold policy: a certificate exists only for a
// paid-tier exam passed at or above its configured pass score.
func (s *certificateService) Eligible(result *model.TestResult, exam *model.Exam) bool {
	return exam.Price > 0 && result.Score >= exam.PassScore
}

func (s *certificateService) Build(result *model.TestResult, user *model.User, exam *model.Exam) *model.CertificateData {
	template, ok := catalog.Template(exam.CertificateTemplateID)
	if !ok {
		return nil
	}
	return &model.CertificateData{
		CertificateNumber: fmt.Sprintf("%d", result.Timestamp.UnixMilli()),
		CandidateName:     user.Name,
		FinalScore:        result.Score,
		Date:              result.Timestamp.Format("January 2, 2006"),
		TotalQuestions:    result.TotalQuestions,
		Organization:      s.org,
		Template:          template,
	}
}

// Sample backs the certificate preview shown before a purchase.
func (s *certificateService) Sample(user *model.User) *model.CertificateData {
	template := &s.org.CertificateTemplates[0]
	return &model.CertificateData{
		CertificateNumber: "12345-SAMPLE",
		CandidateName:     user.Name,
		FinalScore:        95,
		Date:              time.Now().Format("January 2, 2006"),
		TotalQuestions:    10,
		Organization:      s.org,
		Template:          template,
	}
}
