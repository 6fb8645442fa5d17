package comparator

import (
	"slices"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
)

// diffProblems walks both reports' problems in registry order so deltas
// come out in the same order a report lists them.
func (c *Comparator) diffProblems(old, new analyzer.Report) []ProblemDelta {
	oldCodes := codeIndex(old.Problems)
	newCodes := codeIndex(new.Problems)

	var deltas []ProblemDelta
	for _, p := range analyzer.Definitions() {
		_, inOld := oldCodes[p.Code]
		_, inNew := newCodes[p.Code]
		if !inOld && !inNew {
			continue
		}

		delta := ProblemDelta{
			Code:       p.Code,
			Title:      p.Title,
			Severity:   p.Severity,
			OldObjects: old.Affected(p.Code, false),
			NewObjects: new.Affected(p.Code, false),
		}
		delta.Introduced = missingFrom(delta.NewObjects, delta.OldObjects)
		delta.Resolved = missingFrom(delta.OldObjects, delta.NewObjects)

		switch {
		case !inOld:
			delta.ChangeType = Added
		case !inNew:
			delta.ChangeType = Removed
		case len(delta.Introduced) > 0 || len(delta.Resolved) > 0:
			delta.ChangeType = Modified
		default:
			delta.ChangeType = NoChange
		}

		if delta.ChangeType == NoChange && !c.IncludeUnchanged {
			continue
		}
		deltas = append(deltas, delta)
	}

	slices.SortStableFunc(deltas, func(a, b ProblemDelta) int {
		return int(b.Severity) - int(a.Severity)
	})
	return deltas
}

func codeIndex(problems []*analyzer.Problem) map[analyzer.Code]struct{} {
	idx := make(map[analyzer.Code]struct{}, len(problems))
	for _, p := range problems {
		idx[p.Code] = struct{}{}
	}
	return idx
}

// missingFrom returns the names in a that are not in b, keeping a's order.
func missingFrom(a, b []string) []string {
	var out []string
	for _, name := range a {
		if !slices.Contains(b, name) {
			out = append(out, name)
		}
	}
	return out
}

func direction(old, new int) Direction {
	switch {
	case new < old:
		return Improved
	case new > old:
		return Regressed
	default:
		return Unchanged
	}
}
