package ippcode

import (
	"errors"

	"github.com/Miffiny/IPP-1/translate"
)

var f = translate.From

var (
	// ErrHeaderMissing reports a program whose first non-discarded
	// line is not the ".IPPcode24" header.
	ErrHeaderMissing = errors.New(f("missing or incorrect '.IPPcode24' header"))
)

// ErrUnknownOpcode reports an opcode absent from the instruction
// dictionary.
type ErrUnknownOpcode string

func (err ErrUnknownOpcode) Error() string {
	return f("unknown opcode '%v'", string(err))
}

// ErrPatternMismatch reports an operand matching none of the
// recognized lexical shapes.
type ErrPatternMismatch string

func (err ErrPatternMismatch) Error() string {
	return f("operand '%v' matches no recognized pattern", string(err))
}

// ErrLabelDuplicate reports a second LABEL definition for a name.
type ErrLabelDuplicate string

func (err ErrLabelDuplicate) Error() string {
	return f("label '%v' already defined", string(err))
}

// ErrArity reports an operand count that disagrees with the opcode's
// signature.
type ErrArity struct {
	Opcode string
	Want   int
	Got    int
}

func (err ErrArity) Error() string {
	if err.Got < err.Want {
		return f("%v: not enough operands: want %v, got %v", err.Opcode, err.Want, err.Got)
	}
	return f("%v: too many operands: want %v, got %v", err.Opcode, err.Want, err.Got)
}

// ErrRoleMismatch reports an operand whose token kind does not satisfy
// the role required at its position.
type ErrRoleMismatch struct {
	Opcode string
	Index  int // 1-based operand position
	Want   Role
	Got    TokenKind
}

func (err ErrRoleMismatch) Error() string {
	return f("%v: operand %v must be %v, got %v", err.Opcode, err.Index, err.Want, err.Got)
}

// ErrSyntax wraps any per-line error with the offending line.
type ErrSyntax struct {
	LineNo int // 1-based source line
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
