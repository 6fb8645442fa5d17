package analyzer

import (
	"fmt"
	"slices"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

// selectable returns the definition of code, or an error when the code is
// unknown or scene-level.
func selectable(code Code) (Problem, error) {
	p, ok := Lookup(code)
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem code %d", code)
	}
	if !p.Selectable {
		return Problem{}, fmt.Errorf("problem %d (%s) is scene-level and has no objects", code, p.Title)
	}
	return p, nil
}

// Select returns the objects carrying code, from the ignored findings when
// ignored is set.
func (r *Report) Select(code Code, ignored bool) ([]string, error) {
	if _, err := selectable(code); err != nil {
		return nil, err
	}
	return r.Affected(code, ignored), nil
}

// Annotate replaces ob's ignore annotation with codes. An empty list removes
// the annotation. Only object-level codes can be ignored.
func Annotate(ob *scene.Object, codes []Code) error {
	for _, c := range codes {
		if _, err := selectable(c); err != nil {
			return err
		}
	}

	if len(codes) == 0 {
		delete(ob.Props, scene.IgnoreKey)
		return nil
	}

	sorted := slices.Clone(codes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	values := make([]any, len(sorted))
	for i, c := range sorted {
		values[i] = int(c)
	}
	if ob.Props == nil {
		ob.Props = make(map[string]any)
	}
	ob.Props[scene.IgnoreKey] = values
	return nil
}
