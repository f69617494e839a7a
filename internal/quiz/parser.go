package quiz

import (
	"fmt"
	"strings"
)

// ParseError reports which part of the expected question template was
// missing or malformed.
type ParseError struct {
	Missing string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed question text: missing %s", e.Missing)
}

var optionLabels = [4]string{"A)", "B)", "C)", "D)"}

// ParseQuestion extracts a structured question from the generator's raw
// markdown. The expected shape is an optional "### Question N:" heading,
// one stem line, four option lines labeled A) through D) in that order,
// a "Correct Answer: <Letter>) <text>" line, and an "Explanation:" line
// whose text runs to the end of the input. Any deviation is a *ParseError;
// the caller must treat that as "no question available" rather than guess.
func ParseQuestion(raw string) (*Question, error) {
	lines := nonBlankLines(raw)
	if len(lines) == 0 {
		return nil, &ParseError{Missing: "question stem"}
	}

	// Optional heading, either on its own line or prefixing the stem.
	if rest, ok := stripHeading(lines[0]); ok {
		if rest == "" {
			lines = lines[1:]
		} else {
			lines[0] = rest
		}
	}
	if len(lines) == 0 {
		return nil, &ParseError{Missing: "question stem"}
	}

	stem := lines[0]
	if strings.HasPrefix(stem, optionLabels[0]) {
		return nil, &ParseError{Missing: "question stem"}
	}
	lines = lines[1:]

	var q Question
	q.Stem = stem

	// Exactly four options in fixed A-D order.
	for i, label := range optionLabels {
		if len(lines) == 0 || !strings.HasPrefix(lines[0], label) {
			return nil, &ParseError{Missing: fmt.Sprintf("option %s", label)}
		}
		q.Options[i] = lines[0]
		lines = lines[1:]
	}

	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Correct Answer:") {
		return nil, &ParseError{Missing: `"Correct Answer:" line`}
	}
	full := strings.TrimSpace(strings.TrimPrefix(lines[0], "Correct Answer:"))
	letter, ok := extractLetter(full)
	if !ok {
		return nil, &ParseError{Missing: "correct answer letter A-D"}
	}
	q.CorrectFull = full
	q.CorrectLetter = letter
	lines = lines[1:]

	if len(lines) == 0 || !strings.HasPrefix(lines[0], "Explanation:") {
		return nil, &ParseError{Missing: `"Explanation:" line`}
	}
	expl := []string{strings.TrimSpace(strings.TrimPrefix(lines[0], "Explanation:"))}
	// The explanation may span to the end of the input.
	expl = append(expl, lines[1:]...)
	q.Explanation = strings.TrimSpace(strings.Join(expl, "\n"))
	if q.Explanation == "" {
		return nil, &ParseError{Missing: "explanation text"}
	}

	return &q, nil
}

// nonBlankLines splits raw text into trimmed, non-empty lines.
func nonBlankLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// stripHeading removes a "### Question N:" prefix if present, returning
// the remainder of the line and whether a heading was found.
func stripHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "### Question") {
		return line, false
	}
	colon := strings.Index(line, ":")
	if colon < 0 {
		return line, false
	}
	return strings.TrimSpace(line[colon+1:]), true
}

// extractLetter pulls the "X)" label off a "Correct Answer" value and
// checks it is one of A-D.
func extractLetter(full string) (string, bool) {
	if len(full) < 2 || full[1] != ')' {
		return "", false
	}
	letter := string(full[0])
	if letter < "A" || letter > "D" {
		return "", false
	}
	return letter, true
}
