package service

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/questioncsv"
)

// seedQuestionsCSV is a small built-in question bank so the mock transport
// exercises the same parsing pipeline as a live sheet.
//
//go:embed seed_questions.csv
var seedQuestionsCSV string

type seededPool struct {
	questions []model.Question
}

func (p *seededPool) Pool(ctx context.Context, exam *model.Exam) ([]model.Question, error) {
	return p.questions, nil
}

// NewMockService builds the fully in-memory transport: seeded users, the
// embedded question bank, and an append-only result log.
func NewMockService(scorer ScoringService, certs CertificateService) (ExamDataService, error) {
	questions, err := questioncsv.Parse(seedQuestionsCSV)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded question bank: %w", err)
	}
	return newLocalService(&seededPool{questions: questions}, scorer, certs), nil
}
