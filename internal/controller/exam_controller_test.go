package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	appconfig "github.com/coding-online/certexam/config"
	"github.com/coding-online/certexam/internal/dto"
	"github.com/coding-online/certexam/internal/middleware"
	"github.com/coding-online/certexam/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &appconfig.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenTTLHours = 1

	svc, err := service.NewMockService(service.NewScoringService(), service.NewCertificateService())
	require.NoError(t, err)

	authCtrl := NewAuthController(svc, cfg)
	examCtrl := NewExamController(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/login", authCtrl.Login)
	api.POST("/auth/signup", authCtrl.Signup)
	api.GET("/organization", examCtrl.GetOrganization)
	api.GET("/exams/:exam_id/questions", examCtrl.GetExamQuestions)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.Auth.JWTSecret))
	authed.POST("/exams/:exam_id/submissions", examCtrl.SubmitTest)
	authed.GET("/results", examCtrl.ListTestResults)
	authed.GET("/results/:test_id", examCtrl.GetTestResult)
	authed.GET("/certificates/:test_id", examCtrl.GetCertificate)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) dto.AuthResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email:    "john@example.com",
		Password: "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestAuthEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("login ok", func(t *testing.T) {
		resp := login(t, r)
		assert.Equal(t, "john@example.com", resp.User.Email)
	})

	t.Run("login rejected", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "john@example.com", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signup then conflict", func(t *testing.T) {
		req := dto.SignupRequest{Name: "New", Email: "new@example.com", Password: "secret1"}
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", "", req)
		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", "", req)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestQuestionEndpoint_StripsCorrectAnswers(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/exams/exam-cpc-practice/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "correct_answer")

	var questions []dto.QuestionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))
	assert.Len(t, questions, 10)

	w = doJSON(t, r, http.MethodGet, "/api/v1/exams/exam-nope/questions", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmissionFlow(t *testing.T) {
	r := newTestRouter(t)
	auth := login(t, r)

	var questions []dto.QuestionResponse
	w := doJSON(t, r, http.MethodGet, "/api/v1/exams/exam-cpc-practice/questions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &questions))

	submission := dto.SubmitTestRequest{}
	for _, q := range questions {
		submission.Answers = append(submission.Answers, dto.UserAnswerDTO{QuestionID: q.ID, Answer: 0})
	}

	t.Run("requires token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/exams/exam-cpc-practice/submissions", "", submission)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	var result dto.TestResultResponse
	t.Run("graded", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/exams/exam-cpc-practice/submissions", auth.Token, submission)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))

		assert.NotEmpty(t, result.TestID)
		assert.Equal(t, len(questions), result.TotalQuestions)
		assert.Len(t, result.Review, len(questions))
	})

	t.Run("retrievable by id", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/results/%s", result.TestID), auth.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched dto.TestResultResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
		assert.Equal(t, result.Score, fetched.Score)
	})

	t.Run("listed", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/results", auth.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var results []dto.TestResultResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
		require.NotEmpty(t, results)
		assert.Equal(t, result.TestID, results[0].TestID)
	})

	t.Run("missing result is 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/results/test-missing", auth.Token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("free tier certificate not earned", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/certificates/%s", result.TestID), auth.Token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not earned")
	})

	t.Run("sample certificate", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/certificates/sample", auth.Token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "12345-SAMPLE")
	})
}
