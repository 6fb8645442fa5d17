package analyzer

import "fmt"

type Severity int

const (
	Warning Severity = 1
	Error   Severity = 2
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unknown severity %q", text)
	}
	return nil
}

// Code identifies a problem. The hundreds digit encodes its category.
type Code int

// Problem is an immutable catalog entry describing one detectable condition.
type Problem struct {
	Code        Code     `json:"code"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	// Selectable is false for scene-level problems that have no affected
	// objects to select.
	Selectable bool `json:"selectable"`
}

// ObjectFindings lists the codes matched on a single object, in ascending order.
type ObjectFindings struct {
	Object string `json:"object"`
	Codes  []Code `json:"codes"`
}

func (f ObjectFindings) Has(code Code) bool {
	for _, c := range f.Codes {
		if c == code {
			return true
		}
	}
	return false
}

// Report is the result of one scan pass. Problems reference registry
// entries and must not be modified.
//
// A Report is not safe for concurrent use. Get and Cleanup replace the whole
// value in one call, so a reader that is serialized with them (the same
// goroutine, or a goroutine handed the report after Get returns) always sees
// a complete scan.
type Report struct {
	Problems        []*Problem       `json:"problems"`
	ProblemsIgnored []*Problem       `json:"problems_ignored"`
	Obs             []ObjectFindings `json:"obs"`
	ObsIgnored      []ObjectFindings `json:"obs_ignored"`
	Errors          int              `json:"errors"`
	Warns           int              `json:"warns"`
}

// Detected returns the codes of active problems in report order.
func (r *Report) Detected() []Code {
	return problemCodes(r.Problems)
}

// Ignored returns the codes of matched but ignored problems in report order.
func (r *Report) Ignored() []Code {
	return problemCodes(r.ProblemsIgnored)
}

// Affected returns the names of objects carrying code, from the ignored
// findings when ignored is set.
func (r *Report) Affected(code Code, ignored bool) []string {
	obs := r.Obs
	if ignored {
		obs = r.ObsIgnored
	}
	var names []string
	for _, f := range obs {
		if f.Has(code) {
			names = append(names, f.Object)
		}
	}
	return names
}

func (r *Report) Empty() bool {
	return len(r.Problems) == 0 && len(r.ProblemsIgnored) == 0
}

func problemCodes(problems []*Problem) []Code {
	codes := make([]Code, 0, len(problems))
	for _, p := range problems {
		codes = append(codes, p.Code)
	}
	return codes
}
