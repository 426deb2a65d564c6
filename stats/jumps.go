package stats

// JumpReport classifies every jump-site reference of a run.
type JumpReport struct {
	Forward    int // reference precedes the label definition
	Backward   int // reference follows the label definition
	Self       int // reference and definition share an order
	Unresolved int // target label never defined
}

// Bad is the count reported for --badjumps: references that cannot
// land on a proper label, whether undefined or degenerate.
func (r JumpReport) Bad() int {
	return r.Self + r.Unresolved
}

// AnalyzeJumps classifies each recorded reference against the label
// map. Every jump site classifies independently, so two jumps to the
// same label may land in different buckets even though the Jumps map
// keeps only the most recent reference.
func (s *Stats) AnalyzeJumps() (r JumpReport) {
	for _, ref := range s.Refs {
		labelPos, ok := s.Labels[ref.Label]
		switch {
		case !ok:
			r.Unresolved++
		case ref.Pos < labelPos:
			r.Forward++
		case ref.Pos > labelPos:
			r.Backward++
		default:
			r.Self++
		}
	}

	return
}
