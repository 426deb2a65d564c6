package stats_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Miffiny/IPP-1/stats"
)

var _ = Describe("ParseRequests", func() {
	It("accepts an empty argument list", func() {
		dests, err := stats.ParseRequests(nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(dests).To(BeEmpty())
	})

	It("attaches each request to the most recent destination", func() {
		dests, err := stats.ParseRequests([]string{
			"--stats=a.txt", "--loc", "--comments",
			"--stats=b.txt", "--frequent", "--print=hello", "--expr=loc+1",
		})
		Expect(err).ToNot(HaveOccurred())

		Expect(dests).To(Equal([]stats.Destination{
			{File: "a.txt", Requests: []stats.Request{
				{Kind: "loc"},
				{Kind: "comments"},
			}},
			{File: "b.txt", Requests: []stats.Request{
				{Kind: "frequent"},
				{Kind: "print", Value: "hello"},
				{Kind: "expr", Value: "loc+1"},
			}},
		}))
	})

	It("allows a destination without requests", func() {
		dests, err := stats.ParseRequests([]string{"--stats=empty.txt"})
		Expect(err).ToNot(HaveOccurred())
		Expect(dests).To(HaveLen(1))
		Expect(dests[0].Requests).To(BeEmpty())
	})

	It("rejects a statistic before any destination", func() {
		_, err := stats.ParseRequests([]string{"--loc"})
		Expect(err).To(MatchError(stats.ErrStatsFileMissing))
	})

	It("rejects --stats without a file name", func() {
		for _, arg := range []string{"--stats", "--stats="} {
			_, err := stats.ParseRequests([]string{arg})
			Expect(err).To(MatchError(stats.ErrStatsFileMissing), arg)
		}
	})

	It("rejects a file named twice", func() {
		_, err := stats.ParseRequests([]string{
			"--stats=out.txt", "--loc",
			"--stats=out.txt", "--eol",
		})

		var dup stats.ErrStatsFileDuplicate
		Expect(errors.As(err, &dup)).To(BeTrue())
		Expect(string(dup)).To(Equal("out.txt"))
	})

	It("rejects unknown arguments", func() {
		for _, arg := range []string{"--bogus", "--loc=5", "--print", "loc", "-loc"} {
			_, err := stats.ParseRequests([]string{"--stats=a.txt", arg})

			var unknown stats.ErrUnknownArgument
			Expect(errors.As(err, &unknown)).To(BeTrue(), arg)
		}
	})
})

var _ = Describe("WriteTo", func() {
	var s *stats.Stats

	BeforeEach(func() {
		s = stats.New()
		s.Comments = 3
		s.EOL = 12
		s.Instruction("MOVE")
		s.Instruction("MOVE")
		s.Instruction("JUMP")
		s.Instruction("LABEL")
		s.DefineLabel("x", 4)
		s.ReferenceLabel("x", 3)
	})

	It("writes one line per request in order", func() {
		dest := stats.Destination{File: "-", Requests: []stats.Request{
			{Kind: "loc"},
			{Kind: "comments"},
			{Kind: "eol"},
			{Kind: "labels"},
			{Kind: "jumps"},
			{Kind: "fwjumps"},
			{Kind: "backjumps"},
			{Kind: "badjumps"},
			{Kind: "frequent"},
			{Kind: "print", Value: "done"},
			{Kind: "expr", Value: "loc - labels"},
		}}

		var out strings.Builder
		Expect(s.WriteTo(&out, dest)).To(Succeed())

		Expect(out.String()).To(Equal(strings.Join([]string{
			"4",    // loc
			"3",    // comments
			"12",   // eol
			"1",    // labels
			"1",    // jumps
			"1",    // fwjumps
			"0",    // backjumps
			"0",    // badjumps
			"MOVE", // 2 of 4 clears the 35% threshold alone
			"done",
			"3",
		}, "\n") + "\n"))
	})

	It("propagates expression failures", func() {
		dest := stats.Destination{File: "-", Requests: []stats.Request{
			{Kind: "expr", Value: "("},
		}}

		var out strings.Builder
		err := s.WriteTo(&out, dest)

		var bad stats.ErrExpression
		Expect(errors.As(err, &bad)).To(BeTrue())
	})
})

var _ = Describe("WriteAll", func() {
	It("writes every destination to its own file", func() {
		s := stats.New()
		s.EOL = 2
		s.Instruction("BREAK")

		dir := GinkgoT().TempDir()
		first := filepath.Join(dir, "first.txt")
		second := filepath.Join(dir, "second.txt")

		Expect(s.WriteAll([]stats.Destination{
			{File: first, Requests: []stats.Request{{Kind: "loc"}, {Kind: "eol"}}},
			{File: second, Requests: []stats.Request{{Kind: "frequent"}}},
		})).To(Succeed())

		body, err := os.ReadFile(first)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(Equal("1\n2\n"))

		body, err = os.ReadFile(second)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(body)).To(Equal("BREAK\n"))
	})

	It("fails when a destination cannot be created", func() {
		s := stats.New()

		dir := GinkgoT().TempDir()
		missing := filepath.Join(dir, "no", "such", "dir", "out.txt")

		Expect(s.WriteAll([]stats.Destination{{File: missing}})).ToNot(Succeed())
	})
})
