// Package ippcode implements the scanner and syntax validator for the
// IPPcode24 intermediate language.
//
// The parser consumes a textual program one line at a time, classifies
// each operand against the language's lexical shapes, checks arity and
// operand roles against the fixed instruction dictionary, and produces
// a Program of ordered instructions suitable for XML serialization.
// Validation is fail-fast: the first invalid construct aborts the run
// with a typed error carrying the offending line.
//
// Run statistics (instruction, comment and line counts, label and jump
// bookkeeping) accumulate into a stats.Stats owned by the Parser; the
// post-pass analyses over that state live in the stats package.
package ippcode
