package stats_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Miffiny/IPP-1/stats"
)

var _ = Describe("AnalyzeJumps", func() {
	var s *stats.Stats

	BeforeEach(func() {
		s = stats.New()
	})

	It("returns an empty report for a run without jumps", func() {
		Expect(s.AnalyzeJumps()).To(Equal(stats.JumpReport{}))
	})

	It("classifies a reference before the definition as forward", func() {
		s.ReferenceLabel("end", 1)
		s.DefineLabel("end", 5)

		Expect(s.AnalyzeJumps()).To(Equal(stats.JumpReport{Forward: 1}))
	})

	It("classifies a reference after the definition as backward", func() {
		s.DefineLabel("loop", 2)
		s.ReferenceLabel("loop", 7)

		Expect(s.AnalyzeJumps()).To(Equal(stats.JumpReport{Backward: 1}))
	})

	It("classifies a reference sharing the definition order as self", func() {
		s.DefineLabel("here", 3)
		s.ReferenceLabel("here", 3)

		report := s.AnalyzeJumps()
		Expect(report.Self).To(Equal(1))
		Expect(report.Bad()).To(Equal(1))
	})

	It("classifies a reference to an undefined label as unresolved", func() {
		s.ReferenceLabel("nowhere", 1)

		report := s.AnalyzeJumps()
		Expect(report.Unresolved).To(Equal(1))
		Expect(report.Bad()).To(Equal(1))
	})

	It("classifies every reference site independently", func() {
		// JUMP x / LABEL x / JUMP x: one forward, one backward, even
		// though the Jumps map collapses to a single entry.
		s.ReferenceLabel("x", 1)
		s.DefineLabel("x", 2)
		s.ReferenceLabel("x", 3)

		Expect(s.Jumps).To(HaveLen(1))
		Expect(s.AnalyzeJumps()).To(Equal(stats.JumpReport{Forward: 1, Backward: 1}))
	})

	It("sums self and unresolved references into Bad", func() {
		s.DefineLabel("a", 1)
		s.ReferenceLabel("a", 1)
		s.ReferenceLabel("b", 2)
		s.ReferenceLabel("c", 3)

		Expect(s.AnalyzeJumps().Bad()).To(Equal(3))
	})
})

var _ = Describe("Frequent", func() {
	var s *stats.Stats

	record := func(opcode string, n int) {
		for range n {
			s.Instruction(opcode)
		}
	}

	BeforeEach(func() {
		s = stats.New()
	})

	It("yields nil for an empty program", func() {
		Expect(s.Frequent()).To(BeNil())
	})

	It("stops once the selection covers 35 percent", func() {
		record("MOVE", 5)
		record("DEFVAR", 3)
		record("WRITE", 2)

		// 5 of 10 already clears the 3.5 threshold on its own.
		Expect(s.Frequent()).To(Equal([]string{"MOVE"}))
	})

	It("breaks count ties alphabetically", func() {
		for _, opcode := range []string{"POPS", "ADD", "MOVE", "JUMP", "WRITE"} {
			record(opcode, 2)
		}

		// Threshold is 3.5 of 10, so exactly two of the five tied
		// opcodes are taken, first by name.
		Expect(s.Frequent()).To(Equal([]string{"ADD", "JUMP"}))
	})

	It("returns the selection sorted alphabetically", func() {
		record("WRITE", 4)
		record("ADD", 3)
		record("MOVE", 3)
		record("POPS", 2)
		record("JUMP", 2)

		// Threshold is 4.9 of 14: WRITE alone is short, ADD tops it up.
		Expect(s.Frequent()).To(Equal([]string{"ADD", "WRITE"}))
	})

	It("selects everything when a single opcode dominates a tiny run", func() {
		record("BREAK", 1)

		Expect(s.Frequent()).To(Equal([]string{"BREAK"}))
	})
})

var _ = Describe("Eval", func() {
	var s *stats.Stats

	BeforeEach(func() {
		s = stats.New()
		s.Loc = 6
		s.Comments = 2
		s.EOL = 10
		s.DefineLabel("x", 2)
		s.ReferenceLabel("x", 1)
		s.ReferenceLabel("y", 3)
	})

	It("computes arithmetic over the bound counters", func() {
		Expect(s.Eval("loc * 2 + comments")).To(Equal("14"))
	})

	It("binds the jump classification counters", func() {
		Expect(s.Eval("fwjumps + badjumps")).To(Equal("2"))
		Expect(s.Eval("labels")).To(Equal("1"))
		Expect(s.Eval("jumps")).To(Equal("2"))
		Expect(s.Eval("unresolvedjumps")).To(Equal("1"))
	})

	It("returns string results unquoted", func() {
		out, err := s.Eval("'%d lines' % eol")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("10 lines"))
	})

	It("rejects an expression that does not evaluate", func() {
		_, err := s.Eval("loc +")

		var bad stats.ErrExpression
		Expect(errors.As(err, &bad)).To(BeTrue())
		Expect(bad.Expr).To(Equal("loc +"))
		Expect(bad.Err).ToNot(BeNil())
	})

	It("rejects an unbound name and keeps the cause", func() {
		_, err := s.Eval("bogus + 1")

		var bad stats.ErrExpression
		Expect(errors.As(err, &bad)).To(BeTrue())
		Expect(errors.Unwrap(err)).To(MatchError(ContainSubstring("bogus")))
	})
})
