package analyzer

import (
	"fmt"
	"math"
	"strings"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

const (
	ScaleTolerance        = 1e-6
	MinCurveOrder         = 4
	MinCurveResolution    = 64
	DefaultCollectionName = "Collection"
)

// Input carries the scene entities a rule may inspect. Each evaluator reads
// only the fields it declares in the dispatch table.
type Input struct {
	Object     *scene.Object
	Scale      scene.Vector
	Modifiers  []scene.Modifier
	Curve      *scene.Curve
	Collection *scene.Collection
	// Members are the objects linked to Collection and its descendants.
	Members []*scene.Object
	// Resolve looks up an object by name. It returns nil for unknown names.
	Resolve func(name string) *scene.Object
}

type Evaluator func(in Input) bool

var evaluators = map[Code]Evaluator{
	CodeObjectScale:          func(in Input) bool { return checkObjectScale(in.Scale) },
	CodeObjectEmpty:          func(in Input) bool { return checkObjectEmpty(in.Object) },
	CodeModifierOrder:        func(in Input) bool { return checkModifierOrder(in.Modifiers) },
	CodeCyclicDependency:     func(in Input) bool { return checkCyclicDependency(in.Object, in.Resolve) },
	CodeCurveRadius:          func(in Input) bool { return checkCurveRadius(in.Curve) },
	CodeCurveOrder:           func(in Input) bool { return checkCurveOrder(in.Curve) },
	CodeCurveResolution:      func(in Input) bool { return checkCurveResolution(in.Curve) },
	CodeCollectionName:       func(in Input) bool { return checkCollectionName(in.Collection) },
	CodeCollectionVisibility: func(in Input) bool { return checkCollectionVisibility(in.Collection, in.Members) },
}

func init() {
	if err := validateEvaluators(registry, evaluators); err != nil {
		panic(err)
	}
}

// validateEvaluators requires a one-to-one mapping between registry codes
// and evaluators.
func validateEvaluators(problems []Problem, table map[Code]Evaluator) error {
	seen := make(map[Code]bool, len(problems))
	for _, p := range problems {
		if seen[p.Code] {
			return fmt.Errorf("problem %d registered twice", p.Code)
		}
		seen[p.Code] = true
		if table[p.Code] == nil {
			return fmt.Errorf("problem %d has no evaluator", p.Code)
		}
	}
	for code := range table {
		if !seen[code] {
			return fmt.Errorf("evaluator %d has no registry entry", code)
		}
	}
	return nil
}

// checkObjectScale flags any scale whose magnitude differs from that of (1, 1, 1).
func checkObjectScale(scale scene.Vector) bool {
	return math.Abs(scale.LengthSquared()-3.0) > ScaleTolerance
}

func checkObjectEmpty(ob *scene.Object) bool {
	if ob == nil {
		return false
	}

	var empty bool
	switch ob.Type {
	case scene.TypeMesh:
		empty = ob.Mesh == nil || ob.Mesh.Vertices == 0
	case scene.TypeCurve:
		empty = curvePointCount(ob.Curve) == 0
	default:
		return false
	}
	if !empty {
		return false
	}

	// Geometry nodes and union booleans can build geometry from nothing.
	for _, mod := range ob.Modifiers {
		if mod.Type == scene.ModNodes {
			return false
		}
		if mod.Type == scene.ModBoolean && mod.Operation == scene.BooleanUnion && mod.Object != "" {
			return false
		}
	}
	return true
}

func checkModifierOrder(mods []scene.Modifier) bool {
	deformed := false
	for _, mod := range mods {
		switch {
		case isDeformModifier(mod):
			deformed = true
		case mod.Type == scene.ModSubsurf && deformed:
			return true
		}
	}
	return false
}

func isDeformModifier(mod scene.Modifier) bool {
	switch mod.Type {
	case scene.ModCurve, scene.ModLattice, scene.ModShrinkwrap, scene.ModSimpleDeform, scene.ModBoolean:
		return true
	case scene.ModNodes:
		return mod.NodeGroup.IsBoolean()
	}
	return false
}

// checkCyclicDependency inspects the first shrinkwrap modifier with a target.
// It reports a cycle when the target cuts this object, or cuts with one of
// this object's own boolean operands.
func checkCyclicDependency(ob *scene.Object, resolve func(string) *scene.Object) bool {
	if ob == nil || resolve == nil {
		return false
	}

	for _, mod := range ob.Modifiers {
		if mod.Type != scene.ModShrinkwrap || mod.Target == "" {
			continue
		}

		target := resolve(mod.Target)
		if target == nil {
			return false
		}

		operands := booleanOperands(ob)
		for _, tmod := range target.Modifiers {
			if tmod.Type != scene.ModBoolean || tmod.Object == "" {
				continue
			}
			if tmod.Object == ob.Name || operands[tmod.Object] {
				return true
			}
		}
		return false
	}
	return false
}

func booleanOperands(ob *scene.Object) map[string]bool {
	operands := make(map[string]bool)
	for _, mod := range ob.Modifiers {
		if mod.Type == scene.ModBoolean && mod.Object != "" {
			operands[mod.Object] = true
		}
	}
	return operands
}

func checkCurveRadius(curve *scene.Curve) bool {
	if curve == nil || !curve.UseRadius {
		return false
	}
	for _, spline := range curve.Splines {
		for _, p := range splinePoints(spline) {
			if p.Radius != 1.0 {
				return true
			}
		}
	}
	return false
}

func checkCurveOrder(curve *scene.Curve) bool {
	if curve == nil {
		return false
	}
	for _, spline := range curve.Splines {
		if len(spline.Points) > 0 && spline.OrderU < MinCurveOrder {
			return true
		}
	}
	return false
}

func checkCurveResolution(curve *scene.Curve) bool {
	if curve == nil || len(curve.Splines) == 0 {
		return false
	}
	return curve.Splines[0].Type != scene.SplinePoly && curve.ResolutionU < MinCurveResolution
}

func checkCollectionName(coll *scene.Collection) bool {
	if coll == nil {
		return false
	}
	return strings.HasPrefix(coll.Name, DefaultCollectionName)
}

// checkCollectionVisibility flags collections hidden in the viewport but still
// included in the view layer while holding gems.
func checkCollectionVisibility(coll *scene.Collection, members []*scene.Object) bool {
	if coll == nil || !coll.HideViewport || coll.Exclude {
		return false
	}
	for _, ob := range members {
		if ob != nil && ob.HasProp(scene.GemKey) {
			return true
		}
	}
	return false
}

func splinePoints(spline scene.Spline) []scene.Point {
	if len(spline.BezierPoints) > 0 {
		return spline.BezierPoints
	}
	return spline.Points
}

func curvePointCount(curve *scene.Curve) int {
	if curve == nil {
		return 0
	}
	n := 0
	for _, spline := range curve.Splines {
		n += len(spline.Points) + len(spline.BezierPoints)
	}
	return n
}
