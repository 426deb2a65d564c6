package ippcode

import (
	"strings"
)

// TokenKind classifies an operand.
type TokenKind int

const (
	TOKEN_CONST = TokenKind(0) // const
	TOKEN_TYPE  = TokenKind(1) // type
	TOKEN_VAR   = TokenKind(2) // var
	TOKEN_LABEL = TokenKind(3) // label
)

func (k TokenKind) String() string {
	switch k {
	case TOKEN_CONST:
		return "const"
	case TOKEN_TYPE:
		return "type"
	case TOKEN_VAR:
		return "var"
	case TOKEN_LABEL:
		return "label"
	}
	return "invalid"
}

// ConstKind is the decoded sub-kind of a constant token.
type ConstKind int

const (
	CONST_INT    = ConstKind(0) // int
	CONST_BOOL   = ConstKind(1) // bool
	CONST_STRING = ConstKind(2) // string
	CONST_NIL    = ConstKind(3) // nil
)

func (k ConstKind) String() string {
	switch k {
	case CONST_INT:
		return "int"
	case CONST_BOOL:
		return "bool"
	case CONST_STRING:
		return "string"
	case CONST_NIL:
		return "nil"
	}
	return "invalid"
}

// Token is a classified operand. Immutable once created.
type Token struct {
	Kind  TokenKind
	Raw   string    // original operand text
	Sub   ConstKind // sub-kind, valid only when Kind == TOKEN_CONST
	Value string    // decoded value; prefix stripped for constants
}

// XMLType is the type attribute used for the operand's XML element:
// the decoded sub-kind for constants, the token kind otherwise.
func (t Token) XMLType() string {
	if t.Kind == TOKEN_CONST {
		return t.Sub.String()
	}
	return t.Kind.String()
}

// identStart reports whether c may begin an identifier.
func identStart(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	}
	return strings.IndexByte("_-&%*$!?", c) >= 0
}

// identChar reports whether c may continue an identifier.
func identChar(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9')
}

func isIdent(s string) bool {
	if len(s) == 0 || !identStart(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !identChar(s[i]) {
			return false
		}
	}
	return true
}

func isIntLiteral(s string) bool {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isStringLiteral validates the body of a string constant: no '#', no
// whitespace, and every backslash introduces a three-digit escape.
func isStringLiteral(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '#', c == ' ', c == '\t':
			return false
		case c == '\\':
			if i+3 >= len(s) {
				return false
			}
			for j := i + 1; j <= i+3; j++ {
				if s[j] < '0' || s[j] > '9' {
					return false
				}
			}
			i += 3
		}
	}
	return true
}

// classifyConst matches the constant shapes. The bool result reports
// whether raw is a constant; shapes that merely look constant-prefixed
// but are malformed return false and fall through to the later shapes.
func classifyConst(raw string) (Token, bool) {
	switch {
	case raw == "nil@nil":
		return Token{Kind: TOKEN_CONST, Raw: raw, Sub: CONST_NIL, Value: "nil"}, true
	case strings.HasPrefix(raw, "int@") && isIntLiteral(raw[len("int@"):]):
		return Token{Kind: TOKEN_CONST, Raw: raw, Sub: CONST_INT, Value: raw[len("int@"):]}, true
	case raw == "bool@true" || raw == "bool@false":
		return Token{Kind: TOKEN_CONST, Raw: raw, Sub: CONST_BOOL, Value: raw[len("bool@"):]}, true
	case strings.HasPrefix(raw, "string@") && isStringLiteral(raw[len("string@"):]):
		return Token{Kind: TOKEN_CONST, Raw: raw, Sub: CONST_STRING, Value: raw[len("string@"):]}, true
	}
	return Token{}, false
}

// frames are the variable frame prefixes.
var frames = map[string]bool{"LF": true, "TF": true, "GF": true}

// Classify matches a raw operand against the recognized shapes, in
// priority order: constant, type keyword, variable, label. Constants
// are tried before the permissive label shape so that, for example,
// "int" classifies as a type keyword and never as a label.
func Classify(raw string) (Token, error) {
	if tok, ok := classifyConst(raw); ok {
		return tok, nil
	}

	switch raw {
	case "int", "bool", "string":
		return Token{Kind: TOKEN_TYPE, Raw: raw, Value: raw}, nil
	}

	if at := strings.IndexByte(raw, '@'); at >= 0 {
		if frames[raw[:at]] && isIdent(raw[at+1:]) {
			return Token{Kind: TOKEN_VAR, Raw: raw, Value: raw}, nil
		}
		return Token{}, ErrPatternMismatch(raw)
	}

	if isIdent(raw) {
		return Token{Kind: TOKEN_LABEL, Raw: raw, Value: raw}, nil
	}

	return Token{}, ErrPatternMismatch(raw)
}
