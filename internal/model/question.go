package model

// Question is a single question-bank entry.
//
// CorrectAnswer is the 1-based index into Options, exactly as encoded in the
// source sheet. Anything that compares it against a submitted answer must
// normalize to 0-based first (CorrectAnswer - 1).
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}
