package analyzer

const (
	CodeObjectScale          Code = 101
	CodeObjectEmpty          Code = 102
	CodeModifierOrder        Code = 201
	CodeCyclicDependency     Code = 202
	CodeCurveRadius          Code = 301
	CodeCurveOrder           Code = 302
	CodeCurveResolution      Code = 303
	CodeCollectionName       Code = 401
	CodeCollectionVisibility Code = 402
)

// registry order is display order within a severity tier.
var registry = []Problem{
	{
		Code:     CodeObjectScale,
		Severity: Error,
		Title:    "Scaled objects",
		Description: "Object scale can produce unexpected results with some tools and modifiers.\n\n" +
			"Recommendation: unless the scale was set on purpose, apply it with Object > Apply > Scale.",
		Selectable: true,
	},
	{
		Code:     CodeObjectEmpty,
		Severity: Warning,
		Title:    "Empty object",
		Description: "Mesh or curve object has no geometry.\n\n" +
			"Recommendation: delete empty objects.",
		Selectable: true,
	},
	{
		Code:     CodeModifierOrder,
		Severity: Error,
		Title:    "Modifier order is incorrect",
		Description: "Subdivision normally goes before deform modifiers, for example:\n" +
			"* Mirror\n* Subdivision\n* Lattice\n* Curve\n\n" +
			"Recommendation: move the Subdivision modifier above the deform modifiers, " +
			"unless the current order gives the result you want.",
		Selectable: true,
	},
	{
		Code:     CodeCyclicDependency,
		Severity: Error,
		Title:    "Cyclic dependency",
		Description: "A Shrinkwrap target uses this object, or one of its boolean cutters, as a Boolean operand. " +
			"Each object then depends on the other and the result changes on every evaluation.\n\n" +
			"Recommendation: break the loop by applying one of the modifiers or projecting onto a copy of the target.",
		Selectable: true,
	},
	{
		Code:     CodeCurveRadius,
		Severity: Error,
		Title:    "Curve Radius deformation",
		Description: "Curve Radius scales objects deformed by the Curve modifier.\n\n" +
			"Recommendation: disable the curve Radius property unless you use it on purpose.",
		Selectable: true,
	},
	{
		Code:     CodeCurveOrder,
		Severity: Error,
		Title:    "Curve low Order",
		Description: "A low Order makes the curve shape angular.\n\n" +
			"Recommendation: set Active Spline > Order U to 5. For an angular curve, use a Bezier curve instead.",
		Selectable: true,
	},
	{
		Code:     CodeCurveResolution,
		Severity: Error,
		Title:    "Curve low Resolution",
		Description: "A low Resolution makes deformed objects look low poly whatever their polycount.\n\n" +
			"Recommendation: raise Shape > Resolution Preview U.",
		Selectable: true,
	},
	{
		Code:     CodeCollectionName,
		Severity: Warning,
		Title:    "Collection uses default name",
		Description: "Default collection names make the scene hierarchy hard to follow.\n\n" +
			"Recommendation: give every collection a descriptive name.",
		Selectable: false,
	},
	{
		Code:     CodeCollectionVisibility,
		Severity: Error,
		Title:    "Collection visibility",
		Description: "Gems in a collection hidden with Hide in Viewport still appear in downstream reports.\n\n" +
			"Recommendation: use Disable in Viewports or Exclude from View Layer instead.",
		Selectable: false,
	},
}

var registryIndex = func() map[Code]*Problem {
	m := make(map[Code]*Problem, len(registry))
	for i := range registry {
		m[registry[i].Code] = &registry[i]
	}
	return m
}()

// Definitions returns a copy of the problem catalog in registry order.
func Definitions() []Problem {
	defs := make([]Problem, len(registry))
	copy(defs, registry)
	return defs
}

// Codes returns every registry code in registry order.
func Codes() []Code {
	codes := make([]Code, len(registry))
	for i, p := range registry {
		codes[i] = p.Code
	}
	return codes
}

func Lookup(code Code) (Problem, bool) {
	p, ok := registryIndex[code]
	if !ok {
		return Problem{}, false
	}
	return *p, true
}

// Category returns the display group of a code, derived from its hundreds digit.
func Category(code Code) string {
	switch code / 100 {
	case 1:
		return "Object"
	case 2:
		return "Relations"
	case 3:
		return "Object Data"
	case 4:
		return "Scene"
	default:
		return "Other"
	}
}
