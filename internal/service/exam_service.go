package service

import (
	"context"

	"github.com/coding-online/certexam/internal/model"
)

// ExamDataService is the single contract every transport implements. The
// mock, spreadsheet-CSV and remote-facade variants are interchangeable; which
// one serves the API is decided by configuration, never by build order.
type ExamDataService interface {
	// Login authenticates by email and password. Fails with ErrAuth.
	Login(ctx context.Context, email, password string) (*model.User, error)

	// Signup registers a new user. Fails with ErrConflict if the email is
	// taken.
	Signup(ctx context.Context, name, email, password string) (*model.User, error)

	// GetQuestions returns the sampled question set for one sitting of the
	// exam. Fails with ErrInvalidExam or ErrDataUnavailable.
	GetQuestions(ctx context.Context, examID string) ([]model.Question, error)

	// SubmitTest grades the submitted answers against the exam's question
	// pool and records the result.
	SubmitTest(ctx context.Context, userID, examID string, answers []model.UserAnswer) (*model.TestResult, error)

	// GetTestResult looks a recorded result up by the (testID, userID) pair.
	// Fails with ErrNotFound when absent.
	GetTestResult(ctx context.Context, testID, userID string) (*model.TestResult, error)

	// GetTestResultsForUser lists the user's results, newest first.
	GetTestResultsForUser(ctx context.Context, userID string) ([]model.TestResult, error)

	// GetCertificateData projects a passing paid-tier result into
	// certificate data. Fails with ErrNotFound when the result is absent and
	// ErrNotEarned when the result does not meet the pass policy.
	GetCertificateData(ctx context.Context, testID string, user *model.User) (*model.CertificateData, error)
}
