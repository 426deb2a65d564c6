// Package stats accumulates run statistics for a parsed IPPcode24
// program and implements the post-pass analyses over them: jump
// classification, frequent-opcode selection, and computed expressions.
package stats

// JumpRef is a single jump-site reference to a target label.
type JumpRef struct {
	Label string
	Pos   int // order of the referencing instruction
}

// Stats is the mutable analysis state of one run. The parser owns and
// mutates it while scanning; the post-pass analyses only read it.
type Stats struct {
	Loc      int // accepted instructions
	Comments int // lines carrying a comment
	EOL      int // lines read

	// Labels maps each defined label to the order of its LABEL
	// instruction. A name appears at most once; the parser rejects
	// duplicates before insertion.
	Labels map[string]int

	// Jumps maps each referenced label to the order of its most
	// recent reference (last-write-wins). len(Jumps) is the distinct
	// jump-reference count; Refs keeps every reference for
	// classification.
	Jumps map[string]int
	Refs  []JumpRef

	// Freq counts accepted instructions per opcode.
	Freq map[string]int
}

func New() *Stats {
	return &Stats{
		Labels: make(map[string]int),
		Jumps:  make(map[string]int),
		Freq:   make(map[string]int),
	}
}

// Instruction records an accepted instruction.
func (s *Stats) Instruction(opcode string) {
	s.Loc++
	s.Freq[opcode]++
}

// DefineLabel records a LABEL definition at the given order. The
// caller checks Labels for duplicates first.
func (s *Stats) DefineLabel(name string, pos int) {
	s.Labels[name] = pos
}

// ReferenceLabel records a jump-site reference to a target label.
func (s *Stats) ReferenceLabel(name string, pos int) {
	s.Jumps[name] = pos
	s.Refs = append(s.Refs, JumpRef{Label: name, Pos: pos})
}
