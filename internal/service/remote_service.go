package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/coding-online/certexam/internal/model"
	"github.com/rs/zerolog/log"
)

// remoteService is the thin HTTP facade over a script backend. Every
// operation POSTs an action envelope and decodes a success/data/message
// response; all state lives behind the remote endpoint.
type remoteService struct {
	baseURL string
	client  *http.Client
}

func NewRemoteService(baseURL string, client *http.Client) ExamDataService {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &remoteService{baseURL: baseURL, client: client}
}

type remoteEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (s *remoteService) call(ctx context.Context, action string, payload, out any) error {
	body, err := json.Marshal(map[string]any{"action": action, "payload": payload})
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling remote backend for %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("remote backend returned status %s for %s", resp.Status, action)
	}

	var envelope remoteEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding %s response: %w", action, err)
	}
	if !envelope.Success {
		return s.mapFailure(action, envelope.Message)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return fmt.Errorf("decoding %s payload: %w", action, err)
		}
	}
	return nil
}

// mapFailure translates the backend's message into the local taxonomy so
// callers can branch with errors.Is regardless of transport.
func (s *remoteService) mapFailure(action, message string) error {
	lower := strings.ToLower(message)
	switch {
	case action == "login":
		return fmt.Errorf("%w: %s", ErrAuth, message)
	case action == "signup":
		return fmt.Errorf("%w: %s", ErrConflict, message)
	case strings.Contains(lower, "not found"):
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case strings.Contains(lower, "no questions"):
		return fmt.Errorf("%w: %s", ErrDataUnavailable, message)
	case strings.Contains(lower, "not earned") || strings.Contains(lower, "not eligible"):
		return fmt.Errorf("%w: %s", ErrNotEarned, message)
	default:
		log.Warn().Str("action", action).Str("message", message).Msg("Unclassified remote backend failure")
		return fmt.Errorf("remote backend: %s", message)
	}
}

func (s *remoteService) Login(ctx context.Context, email, password string) (*model.User, error) {
	var user model.User
	payload := map[string]string{"email": email, "password": password}
	if err := s.call(ctx, "login", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *remoteService) Signup(ctx context.Context, name, email, password string) (*model.User, error) {
	var user model.User
	payload := map[string]string{"name": name, "email": email, "password": password}
	if err := s.call(ctx, "signup", payload, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *remoteService) GetQuestions(ctx context.Context, examID string) ([]model.Question, error) {
	var questions []model.Question
	payload := map[string]string{"exam_id": examID}
	if err := s.call(ctx, "getQuestions", payload, &questions); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, examID)
	}
	return questions, nil
}

func (s *remoteService) SubmitTest(ctx context.Context, userID, examID string, answers []model.UserAnswer) (*model.TestResult, error) {
	var result model.TestResult
	payload := map[string]any{"user_id": userID, "exam_id": examID, "answers": answers}
	if err := s.call(ctx, "submitTest", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *remoteService) GetTestResult(ctx context.Context, testID, userID string) (*model.TestResult, error) {
	var result model.TestResult
	payload := map[string]string{"test_id": testID, "user_id": userID}
	if err := s.call(ctx, "getTestResult", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *remoteService) GetTestResultsForUser(ctx context.Context, userID string) ([]model.TestResult, error) {
	var results []model.TestResult
	payload := map[string]string{"user_id": userID}
	if err := s.call(ctx, "getTestResultsForUser", payload, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *remoteService) GetCertificateData(ctx context.Context, testID string, user *model.User) (*model.CertificateData, error) {
	var cert model.CertificateData
	payload := map[string]any{"test_id": testID, "user": user}
	if err := s.call(ctx, "getCertificateData", payload, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}
