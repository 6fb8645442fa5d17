// Package fixture builds sample scenes with one broken object or collection
// per problem code. It exists for tests and demos; the scanner never uses it.
package fixture

import (
	"fmt"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

const (
	RootCollection   = "Scene Collection"
	ActiveCollection = "Fixtures"
	cubeVertices     = 8
	pathPoints       = 5
)

var Unit = scene.Vector{1, 1, 1}

// Builder assembles a scene whose objects are linked to an active collection
// under the root, mirroring a fresh document with one working collection.
type Builder struct {
	name        string
	objects     []scene.Object
	active      scene.Collection
	collections []scene.Collection
}

func NewBuilder(name string) *Builder {
	return &Builder{
		name:   name,
		active: scene.Collection{Name: ActiveCollection},
	}
}

// Add links objects to the active collection.
func (b *Builder) Add(obs ...scene.Object) {
	for _, ob := range obs {
		b.objects = append(b.objects, ob)
		b.active.Objects = append(b.active.Objects, ob.Name)
	}
}

// Group creates a child collection of the active collection holding obs.
func (b *Builder) Group(coll scene.Collection, obs ...scene.Object) {
	for _, ob := range obs {
		b.objects = append(b.objects, ob)
		coll.Objects = append(coll.Objects, ob.Name)
	}
	b.collections = append(b.collections, coll)
}

func (b *Builder) RenameActive(name string) {
	b.active.Name = name
}

func (b *Builder) Build() *scene.Scene {
	active := b.active
	active.Objects = append([]string(nil), b.active.Objects...)
	active.Children = append([]scene.Collection(nil), b.collections...)

	return &scene.Scene{
		Name:    b.name,
		Objects: append([]scene.Object(nil), b.objects...),
		Collection: scene.Collection{
			Name:     RootCollection,
			Children: []scene.Collection{active},
		},
	}
}

// Mesh returns a cube-like mesh object.
func Mesh(name string, scale scene.Vector) scene.Object {
	return scene.Object{
		Name:  name,
		Type:  scene.TypeMesh,
		Scale: scale,
		Mesh:  &scene.Mesh{Vertices: cubeVertices},
	}
}

// Path returns a NURBS path curve with uniform point radius.
func Path(name string, radius float64, order, resolution int) scene.Object {
	points := make([]scene.Point, pathPoints)
	for i := range points {
		points[i].Radius = radius
	}
	return scene.Object{
		Name:  name,
		Type:  scene.TypeCurve,
		Scale: Unit,
		Curve: &scene.Curve{
			UseRadius:   true,
			ResolutionU: resolution,
			Splines: []scene.Spline{{
				Type:   scene.SplineNURBS,
				OrderU: order,
				Points: points,
			}},
		},
	}
}

// Deformed returns a mesh bent along curve by a curve modifier.
func Deformed(name, curve string) scene.Object {
	ob := Mesh(name, Unit)
	ob.Modifiers = []scene.Modifier{{Name: "Curve", Type: scene.ModCurve, Object: curve}}
	return ob
}

type Fixture struct {
	Code  analyzer.Code
	Apply func(b *Builder)
}

var fixtures = []Fixture{
	{analyzer.CodeObjectScale, func(b *Builder) {
		b.Add(Mesh("Object Scale", scene.Vector{1.5, 1, 1}))
	}},
	{analyzer.CodeObjectEmpty, func(b *Builder) {
		ob := Mesh("Empty Mesh", Unit)
		ob.Mesh.Vertices = 0
		b.Add(ob)
	}},
	{analyzer.CodeModifierOrder, func(b *Builder) {
		ob := Mesh("Wrong Mod Order", Unit)
		ob.Modifiers = []scene.Modifier{
			{Name: "Curve", Type: scene.ModCurve},
			{Name: "Subd", Type: scene.ModSubsurf},
		}
		b.Add(ob)
	}},
	{analyzer.CodeCyclicDependency, func(b *Builder) {
		a := Mesh("AB", Unit)
		c := Mesh("BA", Unit)
		a.Modifiers = []scene.Modifier{{Name: "Project", Type: scene.ModShrinkwrap, Target: c.Name}}
		c.Modifiers = []scene.Modifier{{Name: "Bool", Type: scene.ModBoolean, Object: a.Name, Operation: "DIFFERENCE"}}
		b.Group(scene.Collection{Name: "Cyclic Dependency"}, a, c)
	}},
	{analyzer.CodeCurveRadius, func(b *Builder) {
		b.Group(scene.Collection{Name: "Curve Radius"},
			Path("Radius", 1.5, 5, 64),
			Deformed("Radius Deform", "Radius"))
	}},
	{analyzer.CodeCurveOrder, func(b *Builder) {
		b.Add(Path("Low Order", 1, 3, 64))
	}},
	{analyzer.CodeCurveResolution, func(b *Builder) {
		b.Group(scene.Collection{Name: "Curve Resolution"},
			Path("Low Resolution", 1, 5, 12),
			Deformed("Resolution Deform", "Low Resolution"))
	}},
	{analyzer.CodeCollectionName, func(b *Builder) {
		b.RenameActive("Collection All Problems")
		// The naming rule needs at least two collections in the document.
		b.Group(scene.Collection{Name: "Props"})
	}},
	{analyzer.CodeCollectionVisibility, func(b *Builder) {
		gem := Mesh("Hidden Gem", Unit)
		gem.Props = map[string]any{scene.GemKey: true}
		b.Group(scene.Collection{Name: "Hidden Gems", HideViewport: true}, gem)
	}},
}

// Codes returns the codes that have a fixture, in registry order.
func Codes() []analyzer.Code {
	codes := make([]analyzer.Code, len(fixtures))
	for i, f := range fixtures {
		codes[i] = f.Code
	}
	return codes
}

// Build returns a scene holding the fixtures for codes, or every fixture
// when codes is empty.
func Build(codes ...analyzer.Code) (*scene.Scene, error) {
	b := NewBuilder("Fixtures")

	if len(codes) == 0 {
		for _, f := range fixtures {
			f.Apply(b)
		}
		return b.Build(), nil
	}

	for _, code := range codes {
		f, ok := find(code)
		if !ok {
			return nil, fmt.Errorf("no fixture for problem %d", code)
		}
		f.Apply(b)
	}
	return b.Build(), nil
}

func find(code analyzer.Code) (Fixture, bool) {
	for _, f := range fixtures {
		if f.Code == code {
			return f, true
		}
	}
	return Fixture{}, false
}
