package service

import (
	"context"
	"fmt"

	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/questionbank"
)

type sheetPool struct {
	bank      *questionbank.Bank
	masterURL string
}

// Pool resolves the exam's own source sheet when configured, otherwise the
// master sheet shared by every exam.
func (p *sheetPool) Pool(ctx context.Context, exam *model.Exam) ([]model.Question, error) {
	url := exam.QuestionSourceURL
	if url == "" {
		url = p.masterURL
	}
	if url == "" {
		return nil, fmt.Errorf("%w: no question source configured", ErrDataUnavailable)
	}
	return p.bank.GetOrFetch(ctx, url)
}

// NewSheetService builds the spreadsheet-CSV transport: question pools are
// fetched from a published sheet and cached in the bank; users and results
// live in the same in-process store the mock uses.
func NewSheetService(bank *questionbank.Bank, masterURL string, scorer ScoringService, certs CertificateService) ExamDataService {
	return newLocalService(&sheetPool{bank: bank, masterURL: masterURL}, scorer, certs)
}
