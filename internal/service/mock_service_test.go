package service

import (
	"context"
	"testing"

	"github.com/coding-online/certexam/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) ExamDataService {
	t.Helper()
	svc, err := NewMockService(NewScoringService(), NewCertificateService())
	require.NoError(t, err)
	return svc
}

func TestMockService_LoginAndSignup(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	t.Run("seeded user logs in", func(t *testing.T) {
		user, err := svc.Login(ctx, "john@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "John Doe", user.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "john@example.com", "nope")
		assert.ErrorIs(t, err, ErrAuth)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, ErrAuth)
	})

	t.Run("signup then login", func(t *testing.T) {
		user, err := svc.Signup(ctx, "New User", "new@example.com", "s3cret")
		require.NoError(t, err)
		assert.NotEmpty(t, user.ID)

		again, err := svc.Login(ctx, "new@example.com", "s3cret")
		require.NoError(t, err)
		assert.Equal(t, user.ID, again.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := svc.Signup(ctx, "Other", "john@example.com", "whatever")
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestMockService_GetQuestions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	questions, err := svc.GetQuestions(ctx, "exam-cpc-practice")
	require.NoError(t, err)
	assert.Len(t, questions, 10, "practice exams sample 10 questions")
	for _, q := range questions {
		assert.NotEmpty(t, q.Question)
		assert.GreaterOrEqual(t, len(q.Options), 2)
	}

	_, err = svc.GetQuestions(ctx, "exam-unknown")
	assert.ErrorIs(t, err, ErrInvalidExam)
}

func TestMockService_SubmitAndRetrieveResult(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	questions, err := svc.GetQuestions(ctx, "exam-cpc-cert")
	require.NoError(t, err)

	answers := make([]model.UserAnswer, len(questions))
	for i, q := range questions {
		answers[i] = model.UserAnswer{QuestionID: q.ID, Answer: q.CorrectAnswer - 1}
	}

	result, err := svc.SubmitTest(ctx, "user-1", "exam-cpc-cert", answers)
	require.NoError(t, err)
	assert.Equal(t, 100.0, result.Score)
	assert.Equal(t, len(answers), result.TotalQuestions)

	t.Run("lookup by pair", func(t *testing.T) {
		found, err := svc.GetTestResult(ctx, result.TestID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, result.TestID, found.TestID)
		assert.Equal(t, result.Score, found.Score)
	})

	t.Run("wrong user is absent", func(t *testing.T) {
		_, err := svc.GetTestResult(ctx, result.TestID, "user-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("listed for user newest first", func(t *testing.T) {
		second, err := svc.SubmitTest(ctx, "user-1", "exam-cpc-cert", answers[:1])
		require.NoError(t, err)

		results, err := svc.GetTestResultsForUser(ctx, "user-1")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, second.TestID, results[0].TestID)
	})

	t.Run("unknown exam rejected", func(t *testing.T) {
		_, err := svc.SubmitTest(ctx, "user-1", "exam-unknown", answers)
		assert.ErrorIs(t, err, ErrInvalidExam)
	})
}

func TestMockService_CertificateGate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	user := &model.User{ID: "user-1", Name: "Jane Candidate"}

	questions, err := svc.GetQuestions(ctx, "exam-cpc-cert")
	require.NoError(t, err)

	allCorrect := make([]model.UserAnswer, len(questions))
	allWrong := make([]model.UserAnswer, len(questions))
	for i, q := range questions {
		allCorrect[i] = model.UserAnswer{QuestionID: q.ID, Answer: q.CorrectAnswer - 1}
		allWrong[i] = model.UserAnswer{QuestionID: q.ID, Answer: q.CorrectAnswer % len(q.Options)}
	}

	t.Run("paid passing result earns certificate", func(t *testing.T) {
		result, err := svc.SubmitTest(ctx, user.ID, "exam-cpc-cert", allCorrect)
		require.NoError(t, err)

		cert, err := svc.GetCertificateData(ctx, result.TestID, user)
		require.NoError(t, err)
		assert.Equal(t, "Jane Candidate", cert.CandidateName)
		assert.Equal(t, result.Score, cert.FinalScore)
	})

	t.Run("failing result is not earned", func(t *testing.T) {
		result, err := svc.SubmitTest(ctx, user.ID, "exam-cpc-cert", allWrong)
		require.NoError(t, err)

		_, err = svc.GetCertificateData(ctx, result.TestID, user)
		assert.ErrorIs(t, err, ErrNotEarned)
	})

	t.Run("free tier never earns", func(t *testing.T) {
		practiceQs, err := svc.GetQuestions(ctx, "exam-cpc-practice")
		require.NoError(t, err)
		answers := make([]model.UserAnswer, len(practiceQs))
		for i, q := range practiceQs {
			answers[i] = model.UserAnswer{QuestionID: q.ID, Answer: q.CorrectAnswer - 1}
		}

		result, err := svc.SubmitTest(ctx, user.ID, "exam-cpc-practice", answers)
		require.NoError(t, err)
		assert.Equal(t, 100.0, result.Score)

		_, err = svc.GetCertificateData(ctx, result.TestID, user)
		assert.ErrorIs(t, err, ErrNotEarned)
	})

	t.Run("missing result", func(t *testing.T) {
		_, err := svc.GetCertificateData(ctx, "test-missing", user)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("sample preview", func(t *testing.T) {
		cert, err := svc.GetCertificateData(ctx, "sample", user)
		require.NoError(t, err)
		assert.Equal(t, "12345-SAMPLE", cert.CertificateNumber)
	})
}
