package ippcode

import (
	"errors"
	"strings"
)

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"`
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type DiagnosticSeverity int

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

// Diagnostic is an editor-facing report of a parse failure, positioned
// on the offending source line (0-based, LSP convention).
type Diagnostic struct {
	Range    TextRange          `json:"range"`
	Message  string             `json:"message"`
	Source   string             `json:"source,omitempty"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
}

// Diagnose parses source and converts the failure, if any, into
// diagnostics. Parsing is fail-fast, so at most one diagnostic is
// produced, spanning the whole offending line.
func Diagnose(source string) []Diagnostic {
	parser := &Parser{}
	_, err := parser.Parse(strings.NewReader(source))
	if err == nil {
		return []Diagnostic{}
	}

	var se ErrSyntax
	if !errors.As(err, &se) {
		return []Diagnostic{{
			Message:  err.Error(),
			Source:   "parse24",
			Severity: SeverityError,
		}}
	}

	lines := strings.Split(source, "\n")
	lineIdx := se.LineNo - 1
	if lineIdx >= len(lines) {
		lineIdx = len(lines) - 1
	}
	if lineIdx < 0 {
		lineIdx = 0
	}
	lineLen := 0
	if lineIdx < len(lines) {
		lineLen = len(lines[lineIdx])
	}

	message := err.Error()
	if se.Err != nil {
		message = se.Err.Error()
	}

	return []Diagnostic{{
		Range: TextRange{
			Start: TextPosition{Line: lineIdx, Char: 0},
			End:   TextPosition{Line: lineIdx, Char: lineLen},
		},
		Message:  message,
		Source:   "parse24",
		Severity: SeverityError,
	}}
}
