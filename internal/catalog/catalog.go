// Package catalog provides the built-in organization catalog: exam product
// lines, their practice and certification exams, and certificate templates.
// The data is static for the session, the same way the original deployment
// configures it.
package catalog

import (
	"fmt"

	"github.com/coding-online/certexam/internal/model"
)

const (
	// DefaultPassScore is the percentage required on every built-in exam.
	DefaultPassScore = 70.0

	defaultTemplateID = "cert-mco-1"
)

type productLine struct {
	key           string
	name          string
	description   string
	certPrice     float64
	certQuestions int
}

var productLines = []productLine{
	{"cpc", "CPC", "A test series designed to prepare you for the AAPC CPC (Certified Professional Coder) certification.", 19.99, 50},
	{"cca", "CCA", "A test series aligned with AHIMA's CCA (Certified Coding Associate) exam blueprint.", 24.99, 100},
	{"inpatient", "Inpatient Coding", "A test series for coders specializing in hospital inpatient coding.", 19.99, 50},
	{"outpatient", "Outpatient Coding", "A test series for coders focusing on ambulatory care and outpatient procedures.", 14.99, 50},
	{"billing", "Medical Billing", "A test series covering core concepts in medical billing and reimbursement.", 12.99, 50},
	{"risk", "Risk Adjustment Coding", "A test series on risk adjustment models and hierarchical condition categories (HCC).", 19.99, 50},
	{"auditing", "Medical Auditing", "A test series covering principles of medical record auditing and compliance.", 21.99, 50},
	{"icd", "ICD-10-CM", "A test series focusing on ICD-10-CM coding proficiency.", 14.99, 50},
}

var defaultOrg = buildOrganization()

func buildOrganization() *model.Organization {
	org := &model.Organization{
		ID:      "org-mco",
		Name:    "Medical Coding Online",
		Website: "www.coding-online.net",
		CertificateTemplates: []model.CertificateTemplate{
			{
				ID:              defaultTemplateID,
				Title:           "Medical Coding Proficiency",
				Body:            "For successfully demonstrating proficiency in medical coding, including mastery of ICD-10-CM, CPT, HCPCS Level II, and coding guidelines through the completion of a comprehensive Examination with a score of {finalScore}%. This achievement reflects dedication to excellence in medical coding and preparedness for professional certification.",
				Signature1Name:  "Dr. Amelia Reed",
				Signature1Title: "Program Director",
				Signature2Name:  "B. Manoj",
				Signature2Title: "Chief Instructor",
			},
		},
	}

	for _, line := range productLines {
		practiceID := fmt.Sprintf("exam-%s-practice", line.key)
		certID := fmt.Sprintf("exam-%s-cert", line.key)

		org.ExamProductCategories = append(org.ExamProductCategories, model.ExamProductCategory{
			ID:                  "prod-" + line.key,
			Name:                line.name,
			Description:         line.description,
			PracticeExamID:      practiceID,
			CertificationExamID: certID,
		})
		org.Exams = append(org.Exams,
			model.Exam{
				ID:                practiceID,
				Name:              line.name + " Practice Test",
				Price:             0,
				NumberOfQuestions: 10,
				PassScore:         DefaultPassScore,
				IsPractice:        true,
			},
			model.Exam{
				ID:                    certID,
				Name:                  line.name + " Certification Exam",
				Price:                 line.certPrice,
				NumberOfQuestions:     line.certQuestions,
				PassScore:             DefaultPassScore,
				CertificateTemplateID: defaultTemplateID,
				IsPractice:            false,
			},
		)
	}
	return org
}

// Default returns the built-in organization. Callers must treat it as
// read-only.
func Default() *model.Organization {
	return defaultOrg
}

// Exam looks an exam up by id within the built-in organization.
func Exam(examID string) (*model.Exam, bool) {
	for i := range defaultOrg.Exams {
		if defaultOrg.Exams[i].ID == examID {
			return &defaultOrg.Exams[i], true
		}
	}
	return nil, false
}

// Template looks a certificate template up by id.
func Template(templateID string) (*model.CertificateTemplate, bool) {
	for i := range defaultOrg.CertificateTemplates {
		if defaultOrg.CertificateTemplates[i].ID == templateID {
			return &defaultOrg.CertificateTemplates[i], true
		}
	}
	return nil, false
}
