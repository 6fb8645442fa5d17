package analyzer

import (
	"sort"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

// Analyze scans sc once and returns a fresh report.
func Analyze(sc *scene.Scene, settings Settings) Report {
	var r Report
	r.Get(sc, settings)
	return r
}

// Get rescans sc and replaces the report contents. A scan never fails; stale
// or malformed annotations are skipped.
func (r *Report) Get(sc *scene.Scene, settings Settings) {
	next := Report{}
	next.scan(sc, settings)
	*r = next
}

// Cleanup empties the report.
func (r *Report) Cleanup() {
	*r = Report{}
}

func (r *Report) scan(sc *scene.Scene, settings Settings) {
	idx := scene.NewIndex(sc)
	det := NewDetector(settings.forScene(sc))

	detected := make(codeSet)
	ignored := make(codeSet)

	// Collections are scene-level and not subject to ignore annotations.
	scene.Walk(&sc.Collection, func(c *scene.Collection) {
		det.Reset(nil)
		det.Check(CodeCollectionName, Input{Collection: c})
		det.Check(CodeCollectionVisibility, Input{
			Collection: c,
			Members:    resolveAll(idx, scene.AllObjects(c)),
		})
		detected.merge(det.found)
	})

	// Curve rules only apply to curves that deform something, so every
	// deformer must be known before the main pass.
	deformers := deformerCurves(sc, idx)
	excepted := exceptedObjects(sc, idx)

	for i := range sc.Objects {
		h := scene.Handle(i)
		if excepted[h] {
			continue
		}

		ob := &sc.Objects[i]
		det.Reset(IgnoreCodes(ob))
		inspectObject(det, ob, idx, deformers[h])

		if len(det.found) > 0 {
			r.Obs = append(r.Obs, ObjectFindings{Object: ob.Name, Codes: det.Found()})
			detected.merge(det.found)
		}
		if len(det.ignored) > 0 {
			r.ObsIgnored = append(r.ObsIgnored, ObjectFindings{Object: ob.Name, Codes: det.Ignored()})
			ignored.merge(det.ignored)
		}
	}

	r.aggregate(detected, ignored)
}

func inspectObject(det *Detector, ob *scene.Object, idx *scene.Index, deformer bool) {
	if det.Check(CodeObjectEmpty, Input{Object: ob}) {
		return
	}

	switch ob.Type {
	case scene.TypeCurve, scene.TypeFont:
		if ob.Curve == nil {
			return
		}
		if ob.Curve.HasGeometry() {
			det.Check(CodeObjectScale, Input{Scale: ob.Scale})
		}
		if deformer {
			det.Check(CodeCurveRadius, Input{Curve: ob.Curve})
			det.Check(CodeCurveResolution, Input{Curve: ob.Curve})
		}
		det.Check(CodeCurveOrder, Input{Curve: ob.Curve})

	case scene.TypeMesh:
		if !isGemRelated(ob, idx) {
			det.Check(CodeObjectScale, Input{Scale: ob.Scale})
		}
		if len(ob.Modifiers) > 0 {
			det.Check(CodeModifierOrder, Input{Modifiers: ob.Modifiers})
			det.Check(CodeCyclicDependency, Input{Object: ob, Resolve: idx.Lookup})
		}
	}
}

func (r *Report) aggregate(detected, ignored codeSet) {
	for i := range registry {
		p := &registry[i]
		if detected[p.Code] {
			r.Problems = append(r.Problems, p)
			if p.Severity == Error {
				r.Errors++
			} else {
				r.Warns++
			}
		}
		if ignored[p.Code] {
			r.ProblemsIgnored = append(r.ProblemsIgnored, p)
		}
	}

	sortBySeverity(r.Problems)
	sortBySeverity(r.ProblemsIgnored)
}

// sortBySeverity puts errors first and keeps registry order within a tier.
func sortBySeverity(problems []*Problem) {
	sort.SliceStable(problems, func(i, j int) bool {
		return problems[i].Severity > problems[j].Severity
	})
}
