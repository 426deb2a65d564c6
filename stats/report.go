package stats

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Request is one statistic to emit to a destination.
type Request struct {
	Kind  string // loc, comments, labels, jumps, eol, fwjumps, backjumps, badjumps, frequent, print, expr
	Value string // literal for print, expression for expr
}

// Destination is an ordered group of requests bound to one file.
type Destination struct {
	File     string
	Requests []Request
}

// flagKinds are the argument-less statistics requests.
var flagKinds = map[string]bool{
	"loc":       true,
	"comments":  true,
	"labels":    true,
	"jumps":     true,
	"eol":       true,
	"fwjumps":   true,
	"backjumps": true,
	"badjumps":  true,
	"frequent":  true,
}

// ParseRequests scans the command-line arguments into destination
// groups. The grammar is ordered and repeatable: every statistic
// attaches to the most recent --stats=<file>, and a file may be named
// only once across the whole run.
func ParseRequests(args []string) ([]Destination, error) {
	var dests []Destination
	seen := map[string]bool{}

	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			return nil, ErrUnknownArgument(arg)
		}
		name, value, hasValue := strings.Cut(arg[2:], "=")

		if name == "stats" {
			if !hasValue || value == "" {
				return nil, ErrStatsFileMissing
			}
			if seen[value] {
				return nil, ErrStatsFileDuplicate(value)
			}
			seen[value] = true
			dests = append(dests, Destination{File: value})
			continue
		}

		var req Request
		switch {
		case flagKinds[name] && !hasValue:
			req = Request{Kind: name}
		case (name == "print" || name == "expr") && hasValue:
			req = Request{Kind: name, Value: value}
		default:
			return nil, ErrUnknownArgument(arg)
		}

		if len(dests) == 0 {
			return nil, ErrStatsFileMissing
		}
		last := &dests[len(dests)-1]
		last.Requests = append(last.Requests, req)
	}

	return dests, nil
}

// render produces the output line for one request.
func (s *Stats) render(req Request) (string, error) {
	switch req.Kind {
	case "loc":
		return strconv.Itoa(s.Loc), nil
	case "comments":
		return strconv.Itoa(s.Comments), nil
	case "labels":
		return strconv.Itoa(len(s.Labels)), nil
	case "jumps":
		return strconv.Itoa(len(s.Jumps)), nil
	case "eol":
		return strconv.Itoa(s.EOL), nil
	case "fwjumps":
		return strconv.Itoa(s.AnalyzeJumps().Forward), nil
	case "backjumps":
		return strconv.Itoa(s.AnalyzeJumps().Backward), nil
	case "badjumps":
		return strconv.Itoa(s.AnalyzeJumps().Bad()), nil
	case "frequent":
		return strings.Join(s.Frequent(), ","), nil
	case "print":
		return req.Value, nil
	case "expr":
		return s.Eval(req.Value)
	}
	return "", ErrUnknownArgument("--" + req.Kind)
}

// WriteTo writes one destination's requests, in order, one per line.
func (s *Stats) WriteTo(w io.Writer, dest Destination) error {
	for _, req := range dest.Requests {
		line, err := s.render(req)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// WriteAll writes every destination in argument order. Each file is
// opened, fully written, and closed before the next is opened. A
// failure leaves the offending file armed for removal at exit, so an
// error exit discards the partial output.
func (s *Stats) WriteAll(dests []Destination) error {
	registerCleanup()

	for _, dest := range dests {
		writing.set(dest.File)
		err := func() error {
			out, err := os.Create(dest.File)
			if err != nil {
				return err
			}
			defer out.Close()
			return s.WriteTo(out, dest)
		}()
		if err != nil {
			return err
		}
		writing.set("")
	}

	return nil
}
