package stats

import (
	"maps"
	"slices"
)

// frequentShare is the fraction of total instructions the selected
// opcodes must cover.
const frequentShare = 0.35

// Frequent greedily selects the smallest set of opcodes, by descending
// usage count, whose cumulative usage reaches 35% of the instruction
// count, and returns it sorted alphabetically. Ties between equal
// counts resolve alphabetically. An empty program yields nil.
func (s *Stats) Frequent() []string {
	working := maps.Clone(s.Freq)
	threshold := float64(s.Loc) * frequentShare

	var selected []string
	capacity := 0.0
	for capacity < threshold && len(working) > 0 {
		best := ""
		for opcode, count := range working {
			if best == "" || count > working[best] || (count == working[best] && opcode < best) {
				best = opcode
			}
		}
		selected = append(selected, best)
		capacity += float64(working[best])
		delete(working, best)
	}

	slices.Sort(selected)
	return selected
}
