package comparator

import "github.com/jacobarthurs/scenelint/internal/analyzer"

type Direction int

const (
	Unchanged Direction = 0
	Improved  Direction = 1
	Regressed Direction = 2
)

func (d Direction) String() string {
	switch d {
	case Improved:
		return "improved"
	case Regressed:
		return "regressed"
	default:
		return "unchanged"
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type ChangeType int

const (
	NoChange ChangeType = 0
	Modified ChangeType = 1
	Added    ChangeType = 2
	Removed  ChangeType = 3
)

func (c ChangeType) String() string {
	switch c {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "no_change"
	}
}

func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ProblemDelta describes how one problem changed between two scans.
type ProblemDelta struct {
	Code       analyzer.Code     `json:"code"`
	Title      string            `json:"title"`
	Severity   analyzer.Severity `json:"severity"`
	ChangeType ChangeType        `json:"change"`

	OldObjects []string `json:"old_objects,omitempty"`
	NewObjects []string `json:"new_objects,omitempty"`

	// Introduced lists objects that carry the problem only in the new scan,
	// Resolved those that carried it only in the old one.
	Introduced []string `json:"introduced,omitempty"`
	Resolved   []string `json:"resolved,omitempty"`
}

type ComparisonResult struct {
	Deltas  []ProblemDelta `json:"deltas"`
	Summary Summary        `json:"summary"`
}

type Summary struct {
	OldErrors   int       `json:"old_errors"`
	NewErrors   int       `json:"new_errors"`
	ErrorsDelta int       `json:"errors_delta"`
	ErrorsDir   Direction `json:"errors_dir"`

	OldWarns   int       `json:"old_warns"`
	NewWarns   int       `json:"new_warns"`
	WarnsDelta int       `json:"warns_delta"`
	WarnsDir   Direction `json:"warns_dir"`

	ProblemsAdded    int `json:"problems_added"`
	ProblemsRemoved  int `json:"problems_removed"`
	ProblemsModified int `json:"problems_modified"`

	OldIgnored int `json:"old_ignored"`
	NewIgnored int `json:"new_ignored"`

	Verdict string `json:"verdict"`
}
