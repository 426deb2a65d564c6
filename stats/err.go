package stats

import (
	"errors"

	"github.com/Miffiny/IPP-1/translate"
)

var f = translate.From

var (
	// ErrStatsFileMissing reports a statistic requested before any
	// --stats=<file> destination was named.
	ErrStatsFileMissing = errors.New(f("statistics requested without a preceding --stats=<file>"))
)

// ErrStatsFileDuplicate reports two request groups naming the same
// destination file.
type ErrStatsFileDuplicate string

func (err ErrStatsFileDuplicate) Error() string {
	return f("statistics file '%v' named more than once", string(err))
}

// ErrUnknownArgument reports an unrecognized command-line argument.
type ErrUnknownArgument string

func (err ErrUnknownArgument) Error() string {
	return f("unknown argument '%v'", string(err))
}

// ErrExpression reports an --expr value that does not evaluate,
// wrapping the evaluator's own failure.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err ErrExpression) Error() string {
	return f("'%v' is not a valid expression: %v", err.Expr, err.Err)
}

func (err ErrExpression) Unwrap() error {
	return err.Err
}
