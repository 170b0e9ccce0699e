// Package questioncsv parses the spreadsheet question-bank format:
// one header line, then rows of `question,options,correctAnswer` where the
// options field is pipe-delimited and correctAnswer is a 1-based integer.
//
// The format is CSV-ish rather than strict CSV: individual malformed rows are
// skipped (they still consume an id ordinal), and only a batch with zero valid
// rows is an error. encoding/csv's all-or-nothing framing cannot express that,
// so the splitter lives here.
package questioncsv

import (
	"errors"
	"strconv"
	"strings"

	"github.com/coding-online/certexam/internal/model"
	"github.com/rs/zerolog/log"
)

// ErrEmptyResult is returned when a batch yields no valid questions at all.
// Per-row failures never surface it; an empty (or header-only) input does.
var ErrEmptyResult = errors.New("no questions parsed from source")

// Parse converts raw CSV text into the ordered question sequence.
//
// Ids are assigned 1-based by position among the non-blank post-header lines.
// Blank lines are dropped before ids are assigned and consume no ordinal;
// a malformed row is rejected during the id-assigning iteration and does
// consume one. Both behaviors are pinned by the test fixtures.
func Parse(raw string) ([]model.Question, error) {
	lines := splitLines(raw)
	if len(lines) > 0 {
		lines = lines[1:] // header
	}

	questions := make([]model.Question, 0, len(lines))
	for i, line := range lines {
		q, ok := parseRow(line)
		if !ok {
			log.Warn().Int("row", i+1).Msg("Skipping malformed question row")
			continue
		}
		q.ID = i + 1
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrEmptyResult
	}
	return questions, nil
}

// splitLines normalizes \r\n and bare \r to \n, then drops blank lines.
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseRow validates and converts one non-blank line. A row needs at least
// question, options and answer fields; extra trailing fields are ignored.
func parseRow(line string) (model.Question, bool) {
	fields := splitFields(line)
	if len(fields) < 3 {
		return model.Question{}, false
	}

	questionStr := unquoteField(fields[0])
	optionsStr := unquoteField(fields[1])
	answerStr := unquoteField(fields[2])
	if questionStr == "" || optionsStr == "" || answerStr == "" {
		return model.Question{}, false
	}

	correctAnswer, err := strconv.Atoi(answerStr)
	if err != nil {
		return model.Question{}, false
	}

	options := strings.Split(optionsStr, "|")
	if len(options) < 2 {
		return model.Question{}, false
	}

	return model.Question{
		Question:      questionStr,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}, true
}

// splitFields splits a line on commas that lie outside double-quoted regions.
// A naive strings.Split would corrupt any question or option text containing
// a literal comma.
func splitFields(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			inQuotes = !inQuotes
			field.WriteByte(c)
		case c == ',' && !inQuotes:
			fields = append(fields, field.String())
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}
	fields = append(fields, field.String())
	return fields
}

// unquoteField trims the field, strips one matching pair of surrounding
// double quotes and un-escapes doubled internal quotes.
func unquoteField(field string) string {
	s := strings.TrimSpace(field)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.ReplaceAll(s, `""`, `"`)
}
