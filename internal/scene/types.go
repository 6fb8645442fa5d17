package scene

const (
	// GemKey marks an object as gem-related in its custom properties.
	GemKey = "gem"
	// IgnoreKey holds the list of problem codes ignored for an object.
	IgnoreKey = "lint_ignore"
)

// Object types.
const (
	TypeMesh  = "MESH"
	TypeCurve = "CURVE"
	TypeFont  = "FONT"
)

// Modifier types.
const (
	ModCurve        = "CURVE"
	ModLattice      = "LATTICE"
	ModShrinkwrap   = "SHRINKWRAP"
	ModSimpleDeform = "SIMPLE_DEFORM"
	ModSubsurf      = "SUBSURF"
	ModBoolean      = "BOOLEAN"
	ModNodes        = "NODES"
)

// Spline types.
const (
	SplinePoly   = "POLY"
	SplineBezier = "BEZIER"
	SplineNURBS  = "NURBS"
)

const (
	BooleanUnion = "UNION"

	// BooleanNodeType is the geometry node that makes a node group act like
	// a boolean modifier.
	BooleanNodeType = "GeometryNodeMeshBoolean"
)

type Vector [3]float64

func (v Vector) LengthSquared() float64 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

type Object struct {
	Name      string         `json:"name" yaml:"name" toml:"name"`
	Type      string         `json:"type" yaml:"type" toml:"type"`
	Parent    string         `json:"parent,omitempty" yaml:"parent,omitempty" toml:"parent,omitempty"`
	Scale     Vector         `json:"scale" yaml:"scale,flow" toml:"scale"`
	Modifiers []Modifier     `json:"modifiers,omitempty" yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	Mesh      *Mesh          `json:"mesh,omitempty" yaml:"mesh,omitempty" toml:"mesh,omitempty"`
	Curve     *Curve         `json:"curve,omitempty" yaml:"curve,omitempty" toml:"curve,omitempty"`
	Props     map[string]any `json:"properties,omitempty" yaml:"properties,omitempty" toml:"properties,omitempty"`
}

// HasProp reports whether key is present in the object's custom properties.
func (o *Object) HasProp(key string) bool {
	_, ok := o.Props[key]
	return ok
}

type Modifier struct {
	Name      string     `json:"name" yaml:"name" toml:"name"`
	Type      string     `json:"type" yaml:"type" toml:"type"`
	Object    string     `json:"object,omitempty" yaml:"object,omitempty" toml:"object,omitempty"`
	Target    string     `json:"target,omitempty" yaml:"target,omitempty" toml:"target,omitempty"`
	Operation string     `json:"operation,omitempty" yaml:"operation,omitempty" toml:"operation,omitempty"`
	NodeGroup *NodeGroup `json:"node_group,omitempty" yaml:"node_group,omitempty" toml:"node_group,omitempty"`
}

type NodeGroup struct {
	Name  string   `json:"name" yaml:"name" toml:"name"`
	Nodes []string `json:"nodes,omitempty" yaml:"nodes,omitempty" toml:"nodes,omitempty"`
}

// IsBoolean reports whether the group contains a mesh boolean node.
func (g *NodeGroup) IsBoolean() bool {
	if g == nil {
		return false
	}
	for _, n := range g.Nodes {
		if n == BooleanNodeType {
			return true
		}
	}
	return false
}

type Mesh struct {
	Vertices int `json:"vertices" yaml:"vertices" toml:"vertices"`
}

type Curve struct {
	Splines     []Spline `json:"splines,omitempty" yaml:"splines,omitempty" toml:"splines,omitempty"`
	UseRadius   bool     `json:"use_radius" yaml:"use_radius" toml:"use_radius"`
	ResolutionU int      `json:"resolution_u" yaml:"resolution_u" toml:"resolution_u"`
	BevelDepth  float64  `json:"bevel_depth,omitempty" yaml:"bevel_depth,omitempty" toml:"bevel_depth,omitempty"`
	Extrude     float64  `json:"extrude,omitempty" yaml:"extrude,omitempty" toml:"extrude,omitempty"`
	BevelObject string   `json:"bevel_object,omitempty" yaml:"bevel_object,omitempty" toml:"bevel_object,omitempty"`
}

// HasGeometry reports whether the curve produces surface geometry through
// bevel, extrude or a bevel object.
func (c *Curve) HasGeometry() bool {
	if c == nil {
		return false
	}
	return c.BevelDepth != 0 || c.Extrude != 0 || c.BevelObject != ""
}

type Spline struct {
	Type         string  `json:"type" yaml:"type" toml:"type"`
	OrderU       int     `json:"order_u" yaml:"order_u" toml:"order_u"`
	Points       []Point `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
	BezierPoints []Point `json:"bezier_points,omitempty" yaml:"bezier_points,omitempty" toml:"bezier_points,omitempty"`
}

type Point struct {
	Radius float64 `json:"radius" yaml:"radius" toml:"radius"`
}

type Collection struct {
	Name         string       `json:"name" yaml:"name" toml:"name"`
	HideViewport bool         `json:"hide_viewport,omitempty" yaml:"hide_viewport,omitempty" toml:"hide_viewport,omitempty"`
	Exclude      bool         `json:"exclude,omitempty" yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	Objects      []string     `json:"objects,omitempty" yaml:"objects,omitempty" toml:"objects,omitempty"`
	Children     []Collection `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Scene is a snapshot of a host document's scene graph.
type Scene struct {
	Name       string     `json:"name" yaml:"name" toml:"name"`
	Exceptions string     `json:"exceptions,omitempty" yaml:"exceptions,omitempty" toml:"exceptions,omitempty"`
	Objects    []Object   `json:"objects" yaml:"objects" toml:"objects"`
	Collection Collection `json:"collection" yaml:"collection" toml:"collection"`
}
