package service

import "errors"

// Failure taxonomy shared by every ExamDataService implementation. Callers
// branch with errors.Is; none of these is ever retried by the core.
var (
	// ErrAuth covers a failed login: unknown email or wrong password.
	ErrAuth = errors.New("user not found or password incorrect")

	// ErrConflict is returned by Signup when the email is already registered.
	ErrConflict = errors.New("user with this email already exists")

	// ErrDataUnavailable means the question pool for an exam is empty or
	// could not be loaded. Callers should leave the test-taking flow rather
	// than present a broken exam.
	ErrDataUnavailable = errors.New("no questions available for exam")

	// ErrInvalidExam is a precondition failure: the exam selector does not
	// resolve to a configured exam.
	ErrInvalidExam = errors.New("invalid exam configuration")

	// ErrNotFound is the absent case for result lookups by (testId, userId).
	ErrNotFound = errors.New("test result not found")

	// ErrNotEarned reports that a certificate was requested for a result
	// that does not meet the pass-threshold policy. It is an outcome, not a
	// fault.
	ErrNotEarned = errors.New("certificate not earned")
)
