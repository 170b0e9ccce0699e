package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coding-online/certexam/internal/catalog"
	"github.com/coding-online/certexam/internal/model"
	"github.com/coding-online/certexam/internal/questioncsv"
	"github.com/rs/zerolog/log"
)

// poolSource supplies the full question pool for one exam. The mock and
// sheet transports differ only here; everything else they share.
type poolSource interface {
	Pool(ctx context.Context, exam *model.Exam) ([]model.Question, error)
}

// localService implements ExamDataService on top of the in-process store,
// with the question pool pluggable per transport.
type localService struct {
	store  *memoryStore
	pools  poolSource
	scorer ScoringService
	certs  CertificateService
}

func newLocalService(pools poolSource, scorer ScoringService, certs CertificateService) *localService {
	return &localService{
		store:  newMemoryStore(),
		pools:  pools,
		scorer: scorer,
		certs:  certs,
	}
}

func (s *localService) Login(ctx context.Context, email, password string) (*model.User, error) {
	return s.store.authenticate(email, password)
}

func (s *localService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	if err := s.store.addUser(name, email, password); err != nil {
		return nil, err
	}
	user, ok := s.store.userByEmail(email)
	if !ok {
		return nil, fmt.Errorf("signup for %s did not persist", email)
	}
	return user, nil
}

func (s *localService) GetQuestions(ctx context.Context, examID string) ([]model.Question, error) {
	exam, ok := catalog.Exam(examID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExam, examID)
	}

	pool, err := s.pools.Pool(ctx, exam)
	if err != nil {
		if errors.Is(err, questioncsv.ErrEmptyResult) {
			return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, exam.Name)
		}
		return nil, err
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, exam.Name)
	}

	return SelectQuestions(pool, exam.NumberOfQuestions), nil
}

func (s *localService) SubmitTest(ctx context.Context, userID, examID string, answers []model.UserAnswer) (*model.TestResult, error) {
	exam, ok := catalog.Exam(examID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExam, examID)
	}

	pool, err := s.pools.Pool(ctx, exam)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve questions to grade the test: %w", err)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("could not retrieve questions to grade the test: %w", ErrDataUnavailable)
	}

	result := s.scorer.Score(userID, examID, pool, answers)
	s.store.appendResult(*result)

	log.Info().Str("test_id", result.TestID).Str("user_id", userID).Str("exam_id", examID).
		Float64("score", result.Score).Msg("Test submission graded")
	return result, nil
}

func (s *localService) GetTestResult(ctx context.Context, testID, userID string) (*model.TestResult, error) {
	result, ok := s.store.findResult(testID, userID)
	if !ok {
		return nil, ErrNotFound
	}
	return result, nil
}

func (s *localService) GetTestResultsForUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	return s.store.resultsForUser(userID), nil
}

func (s *localService) GetCertificateData(ctx context.Context, testID string, user *model.User) (*model.CertificateData, error) {
	if testID == "sample" {
		return s.certs.Sample(user), nil
	}

	result, ok := s.store.findResult(testID, user.ID)
	if !ok {
		return nil, ErrNotFound
	}
	exam, ok := catalog.Exam(result.ExamID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidExam, result.ExamID)
	}
	if !s.certs.Eligible(result, exam) {
		return nil, ErrNotEarned
	}

	cert := s.certs.Build(result, user, exam)
	if cert == nil {
		return nil, ErrNotEarned
	}
	return cert, nil
}
