package analyzer

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

type codeSet map[Code]bool

func (s codeSet) merge(other codeSet) {
	for c := range other {
		s[c] = true
	}
}

func (s codeSet) sorted() []Code {
	codes := make([]Code, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	slices.Sort(codes)
	return codes
}

// Settings is the scan configuration derived from user preferences.
type Settings struct {
	Disabled map[Code]bool
}

func DefaultSettings() Settings {
	return Settings{Disabled: make(map[Code]bool)}
}

// Disable returns a copy of s with the given codes turned off.
func (s Settings) Disable(codes ...Code) Settings {
	disabled := make(map[Code]bool, len(s.Disabled)+len(codes))
	for c, off := range s.Disabled {
		disabled[c] = off
	}
	for _, c := range codes {
		disabled[c] = true
	}
	return Settings{Disabled: disabled}
}

// forScene adds the exclusions implied by the document itself.
func (s Settings) forScene(sc *scene.Scene) codeSet {
	disabled := make(codeSet, len(s.Disabled)+1)
	for c, off := range s.Disabled {
		if off {
			disabled[c] = true
		}
	}
	// A lone collection is not a naming problem.
	if scene.Count(&sc.Collection) < 2 {
		disabled[CodeCollectionName] = true
	}
	return disabled
}

// Detector runs evaluators for one object at a time. Rules disabled in
// settings never run; rules in the object's ignore annotation run but their
// matches are recorded apart from active findings.
type Detector struct {
	table    map[Code]Evaluator
	disabled codeSet

	ignore  codeSet
	found   codeSet
	ignored codeSet
}

func NewDetector(disabled map[Code]bool) *Detector {
	d := &Detector{
		table:    evaluators,
		disabled: make(codeSet, len(disabled)),
	}
	for c, off := range disabled {
		if off {
			d.disabled[c] = true
		}
	}
	d.Reset(nil)
	return d
}

// Reset clears the per-object accumulators and installs the ignore set for
// the next object.
func (d *Detector) Reset(ignore map[Code]bool) {
	d.ignore = ignore
	d.found = make(codeSet)
	d.ignored = make(codeSet)
}

// Check evaluates code against in. It returns true only for an active match.
func (d *Detector) Check(code Code, in Input) bool {
	if d.disabled[code] {
		return false
	}
	eval, ok := d.table[code]
	if !ok || !eval(in) {
		return false
	}
	if d.ignore[code] {
		d.ignored[code] = true
		return false
	}
	d.found[code] = true
	return true
}

func (d *Detector) Found() []Code   { return d.found.sorted() }
func (d *Detector) Ignored() []Code { return d.ignored.sorted() }

// IgnoreCodes reads the object's ignore annotation. Entries that are not
// integers are dropped. Integers that are not registry codes are kept and
// simply never match.
func IgnoreCodes(ob *scene.Object) map[Code]bool {
	raw, ok := ob.Props[scene.IgnoreKey]
	if !ok {
		return nil
	}

	var items []any
	switch v := raw.(type) {
	case []any:
		items = v
	case []int:
		for _, n := range v {
			items = append(items, n)
		}
	case []int64:
		for _, n := range v {
			items = append(items, n)
		}
	case []float64:
		for _, n := range v {
			items = append(items, n)
		}
	case []string:
		for _, n := range v {
			items = append(items, n)
		}
	default:
		items = []any{v}
	}

	codes := make(map[Code]bool, len(items))
	for _, item := range items {
		if code, ok := toCode(item); ok {
			codes[code] = true
		}
	}
	return codes
}

func toCode(v any) (Code, bool) {
	switch n := v.(type) {
	case int:
		return Code(n), true
	case int64:
		return Code(n), true
	case uint64:
		return Code(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return Code(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return Code(i), true
	}
	return 0, false
}

// isGemRelated reports whether ob or its parent carries the gem marker.
func isGemRelated(ob *scene.Object, idx *scene.Index) bool {
	if ob.HasProp(scene.GemKey) {
		return true
	}
	parent := idx.Lookup(ob.Parent)
	return parent != nil && parent.HasProp(scene.GemKey)
}

// deformerCurves returns the objects bound as targets of curve modifiers.
func deformerCurves(sc *scene.Scene, idx *scene.Index) map[scene.Handle]bool {
	curves := make(map[scene.Handle]bool)
	for i := range sc.Objects {
		for _, mod := range sc.Objects[i].Modifiers {
			if mod.Type != scene.ModCurve || mod.Object == "" {
				continue
			}
			if h, ok := idx.Handle(mod.Object); ok {
				curves[h] = true
			}
		}
	}
	return curves
}

// exceptedObjects returns the objects linked to the scene's exceptions
// collection, which are skipped by per-object rules.
func exceptedObjects(sc *scene.Scene, idx *scene.Index) map[scene.Handle]bool {
	if sc.Exceptions == "" {
		return nil
	}
	coll := scene.Find(&sc.Collection, sc.Exceptions)
	if coll == nil {
		return nil
	}
	excepted := make(map[scene.Handle]bool)
	for _, name := range scene.AllObjects(coll) {
		if h, ok := idx.Handle(name); ok {
			excepted[h] = true
		}
	}
	return excepted
}

func resolveAll(idx *scene.Index, names []string) []*scene.Object {
	obs := make([]*scene.Object, 0, len(names))
	for _, name := range names {
		if ob := idx.Lookup(name); ob != nil {
			obs = append(obs, ob)
		}
	}
	return obs
}
