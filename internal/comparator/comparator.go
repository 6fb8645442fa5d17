package comparator

import "github.com/jacobarthurs/scenelint/internal/analyzer"

type Comparator struct {
	// IncludeUnchanged keeps problems present on the same objects in both
	// scans in the delta list.
	IncludeUnchanged bool
}

func (c *Comparator) Compare(old, new analyzer.Report) ComparisonResult {
	summary := Summary{
		OldErrors:   old.Errors,
		NewErrors:   new.Errors,
		ErrorsDelta: new.Errors - old.Errors,
		ErrorsDir:   direction(old.Errors, new.Errors),

		OldWarns:   old.Warns,
		NewWarns:   new.Warns,
		WarnsDelta: new.Warns - old.Warns,
		WarnsDir:   direction(old.Warns, new.Warns),

		OldIgnored: len(old.ProblemsIgnored),
		NewIgnored: len(new.ProblemsIgnored),
	}

	deltas := c.diffProblems(old, new)
	for _, d := range deltas {
		countChange(d, &summary)
	}
	summary.Verdict = verdict(summary)

	return ComparisonResult{
		Deltas:  deltas,
		Summary: summary,
	}
}

func countChange(d ProblemDelta, summary *Summary) {
	switch d.ChangeType {
	case Added:
		summary.ProblemsAdded++
	case Removed:
		summary.ProblemsRemoved++
	case Modified:
		summary.ProblemsModified++
	}
}

func verdict(s Summary) string {
	switch {
	case s.ProblemsAdded == 0 && s.ProblemsRemoved == 0 && s.ProblemsModified == 0:
		return "no change"
	case s.NewErrors == 0 && s.NewWarns == 0:
		return "all problems resolved"
	case s.ErrorsDir == Improved && s.WarnsDir != Regressed,
		s.WarnsDir == Improved && s.ErrorsDir == Unchanged:
		return "fewer problems"
	case s.ErrorsDir == Regressed && s.WarnsDir != Improved,
		s.WarnsDir == Regressed && s.ErrorsDir == Unchanged:
		return "more problems"
	default:
		return "problems shifted"
	}
}
