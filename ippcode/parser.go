package ippcode

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/Miffiny/IPP-1/stats"
)

// Header is the program header token required before any instruction.
const Header = ".IPPcode24"

// Parser scans IPPcode24 source into a Program while accumulating run
// statistics. The zero value is ready to use; Parse resets state, so a
// Parser may be reused across inputs.
type Parser struct {
	Verbose bool         // If set, verbosely logs each scanned line.
	Stats   *stats.Stats // Statistics of the last Parse run.

	order int
}

// validate classifies the raw operands and checks them against the
// opcode's signature, returning the accepted instruction.
func (p *Parser) validate(opcode string, rawOperands []string) (Instruction, error) {
	sig, ok := Signature(opcode)
	if !ok {
		return Instruction{}, ErrUnknownOpcode(opcode)
	}

	args := make([]Token, 0, len(rawOperands))
	for _, raw := range rawOperands {
		tok, err := Classify(raw)
		if err != nil {
			return Instruction{}, err
		}
		args = append(args, tok)
	}

	for i, role := range sig {
		if i >= len(args) {
			return Instruction{}, ErrArity{Opcode: opcode, Want: len(sig), Got: len(args)}
		}
		if !role.Accepts(args[i].Kind) {
			return Instruction{}, ErrRoleMismatch{Opcode: opcode, Index: i + 1, Want: role, Got: args[i].Kind}
		}
	}
	if len(args) > len(sig) {
		return Instruction{}, ErrArity{Opcode: opcode, Want: len(sig), Got: len(args)}
	}

	p.order++
	return Instruction{Order: p.order, Opcode: opcode, Args: args}, nil
}

// accept records the validated instruction's side effects on the run
// statistics.
func (p *Parser) accept(inst Instruction) error {
	p.Stats.Instruction(inst.Opcode)

	switch {
	case inst.Opcode == "LABEL":
		name := inst.Args[0].Value
		if _, ok := p.Stats.Labels[name]; ok {
			return ErrLabelDuplicate(name)
		}
		p.Stats.DefineLabel(name, inst.Order)
	case jumpOpcodes[inst.Opcode]:
		p.Stats.ReferenceLabel(inst.Args[0].Value, inst.Order)
	}

	return nil
}

// Parse scans an input stream into a Program. Scanning is fail-fast:
// the first malformed line aborts with an ErrSyntax wrapping the
// underlying cause, and the partial Program must be discarded.
func (p *Parser) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	p.order = 0
	p.Stats = stats.New()
	prog = &Program{}

	header := false
	for scanner.Scan() {
		text := scanner.Text()
		lineno++
		p.Stats.EOL++

		if p.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		// A '#' anywhere counts one comment and discards the rest.
		if before, _, found := strings.Cut(text, "#"); found {
			p.Stats.Comments++
			text = before
		}

		line = strings.TrimSpace(text)
		if len(line) == 0 {
			continue
		}

		if !header {
			if line != Header {
				err = ErrHeaderMissing
				return nil, err
			}
			header = true
			continue
		}

		words := strings.Fields(line)

		var inst Instruction
		inst, err = p.validate(words[0], words[1:])
		if err != nil {
			return nil, err
		}

		err = p.accept(inst)
		if err != nil {
			return nil, err
		}

		prog.Instructions = append(prog.Instructions, inst)
	}

	if !header {
		lineno++
		line = ""
		err = ErrHeaderMissing
		return nil, err
	}

	return prog, scanner.Err()
}
