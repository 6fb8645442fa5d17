package scene

// Values the host gives a property when a snapshot leaves it out.
const (
	DefaultRadius      = 1.0
	DefaultOrderU      = 4
	DefaultResolutionU = 12
)

var DefaultScale = Vector{1, 1, 1}

// The wire types mirror Scene with pointers wherever a zero value is a real
// setting, so an omitted field can be told apart from an explicit zero.

type wireScene struct {
	Name       string       `json:"name" yaml:"name" toml:"name"`
	Exceptions string       `json:"exceptions" yaml:"exceptions" toml:"exceptions"`
	Objects    []wireObject `json:"objects" yaml:"objects" toml:"objects"`
	Collection Collection   `json:"collection" yaml:"collection" toml:"collection"`
}

type wireObject struct {
	Name      string         `json:"name" yaml:"name" toml:"name"`
	Type      string         `json:"type" yaml:"type" toml:"type"`
	Parent    string         `json:"parent" yaml:"parent" toml:"parent"`
	Scale     *Vector        `json:"scale" yaml:"scale" toml:"scale"`
	Modifiers []Modifier     `json:"modifiers" yaml:"modifiers" toml:"modifiers"`
	Mesh      *Mesh          `json:"mesh" yaml:"mesh" toml:"mesh"`
	Curve     *wireCurve     `json:"curve" yaml:"curve" toml:"curve"`
	Props     map[string]any `json:"properties" yaml:"properties" toml:"properties"`
}

type wireCurve struct {
	Splines     []wireSpline `json:"splines" yaml:"splines" toml:"splines"`
	UseRadius   bool         `json:"use_radius" yaml:"use_radius" toml:"use_radius"`
	ResolutionU *int         `json:"resolution_u" yaml:"resolution_u" toml:"resolution_u"`
	BevelDepth  float64      `json:"bevel_depth" yaml:"bevel_depth" toml:"bevel_depth"`
	Extrude     float64      `json:"extrude" yaml:"extrude" toml:"extrude"`
	BevelObject string       `json:"bevel_object" yaml:"bevel_object" toml:"bevel_object"`
}

type wireSpline struct {
	Type         string      `json:"type" yaml:"type" toml:"type"`
	OrderU       *int        `json:"order_u" yaml:"order_u" toml:"order_u"`
	Points       []wirePoint `json:"points" yaml:"points" toml:"points"`
	BezierPoints []wirePoint `json:"bezier_points" yaml:"bezier_points" toml:"bezier_points"`
}

type wirePoint struct {
	Radius *float64 `json:"radius" yaml:"radius" toml:"radius"`
}

func (w *wireScene) scene() *Scene {
	s := &Scene{
		Name:       w.Name,
		Exceptions: w.Exceptions,
		Collection: w.Collection,
	}
	if w.Objects != nil {
		s.Objects = make([]Object, len(w.Objects))
		for i := range w.Objects {
			s.Objects[i] = w.Objects[i].object()
		}
	}
	return s
}

func (w *wireObject) object() Object {
	ob := Object{
		Name:      w.Name,
		Type:      w.Type,
		Parent:    w.Parent,
		Scale:     orDefault(w.Scale, DefaultScale),
		Modifiers: w.Modifiers,
		Mesh:      w.Mesh,
		Props:     w.Props,
	}
	if w.Curve != nil {
		ob.Curve = w.Curve.curve()
	}
	return ob
}

func (w *wireCurve) curve() *Curve {
	c := &Curve{
		UseRadius:   w.UseRadius,
		ResolutionU: orDefault(w.ResolutionU, DefaultResolutionU),
		BevelDepth:  w.BevelDepth,
		Extrude:     w.Extrude,
		BevelObject: w.BevelObject,
	}
	if w.Splines != nil {
		c.Splines = make([]Spline, len(w.Splines))
		for i, sp := range w.Splines {
			c.Splines[i] = Spline{
				Type:         sp.Type,
				OrderU:       orDefault(sp.OrderU, DefaultOrderU),
				Points:       points(sp.Points),
				BezierPoints: points(sp.BezierPoints),
			}
		}
	}
	return c
}

func points(in []wirePoint) []Point {
	if in == nil {
		return nil
	}
	out := make([]Point, len(in))
	for i, p := range in {
		out[i] = Point{Radius: orDefault(p.Radius, DefaultRadius)}
	}
	return out
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
