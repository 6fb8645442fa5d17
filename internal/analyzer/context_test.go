package analyzer

import (
	"reflect"
	"testing"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

func TestDetector_RecordsActiveMatch(t *testing.T) {
	d := NewDetector(nil)
	d.Reset(nil)

	if !d.Check(CodeObjectScale, Input{Scale: scene.Vector{2, 1, 1}}) {
		t.Fatal("expected active match")
	}
	if got := d.Found(); !reflect.DeepEqual(got, []Code{CodeObjectScale}) {
		t.Errorf("Found = %v", got)
	}
	if got := d.Ignored(); len(got) != 0 {
		t.Errorf("Ignored = %v, want none", got)
	}
}

func TestDetector_DisabledNeverRuns(t *testing.T) {
	d := NewDetector(map[Code]bool{CodeObjectScale: true})
	d.Reset(map[Code]bool{CodeObjectScale: true})

	if d.Check(CodeObjectScale, Input{Scale: scene.Vector{2, 1, 1}}) {
		t.Fatal("disabled rule should not match")
	}
	if len(d.Found()) != 0 || len(d.Ignored()) != 0 {
		t.Errorf("disabled rule recorded: found=%v ignored=%v", d.Found(), d.Ignored())
	}
}

func TestDetector_FalseDisabledEntryIsEnabled(t *testing.T) {
	d := NewDetector(map[Code]bool{CodeObjectScale: false})
	d.Reset(nil)

	if !d.Check(CodeObjectScale, Input{Scale: scene.Vector{2, 1, 1}}) {
		t.Fatal("a false entry should leave the rule enabled")
	}
}

func TestDetector_IgnoredMatchIsSeparate(t *testing.T) {
	d := NewDetector(nil)
	d.Reset(map[Code]bool{CodeObjectScale: true})

	if d.Check(CodeObjectScale, Input{Scale: scene.Vector{2, 1, 1}}) {
		t.Fatal("ignored match should not report as active")
	}
	if got := d.Ignored(); !reflect.DeepEqual(got, []Code{CodeObjectScale}) {
		t.Errorf("Ignored = %v", got)
	}
	if len(d.Found()) != 0 {
		t.Errorf("Found = %v, want none", d.Found())
	}
}

func TestDetector_IgnoredWithoutMatch(t *testing.T) {
	d := NewDetector(nil)
	d.Reset(map[Code]bool{CodeObjectScale: true})

	d.Check(CodeObjectScale, Input{Scale: scene.Vector{1, 1, 1}})
	if len(d.Ignored()) != 0 {
		t.Errorf("Ignored = %v, want none when the rule does not match", d.Ignored())
	}
}

func TestDetector_ResetClearsAccumulators(t *testing.T) {
	d := NewDetector(nil)
	d.Reset(nil)
	d.Check(CodeObjectScale, Input{Scale: scene.Vector{2, 1, 1}})

	d.Reset(nil)
	if len(d.Found()) != 0 {
		t.Errorf("Found after reset = %v", d.Found())
	}
}

func TestDetector_UnknownCode(t *testing.T) {
	d := NewDetector(nil)
	if d.Check(Code(999), Input{}) {
		t.Error("unknown code should never match")
	}
}

func TestIgnoreCodes(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  map[Code]bool
	}{
		{"json numbers", []any{101.0, 201.0}, map[Code]bool{101: true, 201: true}},
		{"yaml ints", []any{101, 302}, map[Code]bool{101: true, 302: true}},
		{"toml ints", []any{int64(401)}, map[Code]bool{401: true}},
		{"typed ints", []int{102}, map[Code]bool{102: true}},
		{"numeric strings", []any{"101", " 202 "}, map[Code]bool{101: true, 202: true}},
		{"stale code kept", []any{999}, map[Code]bool{999: true}},
		{"junk dropped", []any{"abc", 1.5, true, nil, 303}, map[Code]bool{303: true}},
		{"single value", 101, map[Code]bool{101: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ob := &scene.Object{Props: map[string]any{scene.IgnoreKey: tt.value}}
			if got := IgnoreCodes(ob); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("IgnoreCodes = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIgnoreCodes_NoAnnotation(t *testing.T) {
	if got := IgnoreCodes(&scene.Object{}); got != nil {
		t.Errorf("IgnoreCodes = %v, want nil", got)
	}
}

func TestSettings_DisableCopies(t *testing.T) {
	base := DefaultSettings()
	off := base.Disable(CodeCurveOrder)

	if base.Disabled[CodeCurveOrder] {
		t.Error("Disable should not modify the receiver")
	}
	if !off.Disabled[CodeCurveOrder] {
		t.Error("Disable should turn the code off")
	}
}

func TestSettings_ForSceneExcludesLoneCollection(t *testing.T) {
	one := &scene.Scene{Collection: scene.Collection{
		Children: []scene.Collection{{Name: "Collection"}},
	}}
	if !DefaultSettings().forScene(one)[CodeCollectionName] {
		t.Error("collection naming should be excluded with a single collection")
	}

	two := &scene.Scene{Collection: scene.Collection{
		Children: []scene.Collection{{Name: "Collection"}, {Name: "Props"}},
	}}
	if DefaultSettings().forScene(two)[CodeCollectionName] {
		t.Error("collection naming should apply with two collections")
	}
}

func TestIsGemRelated(t *testing.T) {
	s := &scene.Scene{Objects: []scene.Object{
		{Name: "Setting", Props: map[string]any{scene.GemKey: 1}},
		{Name: "Prong", Parent: "Setting"},
		{Name: "Band"},
	}}
	idx := scene.NewIndex(s)

	if !isGemRelated(&s.Objects[0], idx) {
		t.Error("object with gem marker should be gem related")
	}
	if !isGemRelated(&s.Objects[1], idx) {
		t.Error("child of gem should be gem related")
	}
	if isGemRelated(&s.Objects[2], idx) {
		t.Error("plain object should not be gem related")
	}
}

func TestDeformerCurves(t *testing.T) {
	s := &scene.Scene{Objects: []scene.Object{
		{Name: "Path", Type: scene.TypeCurve},
		{Name: "Bent", Type: scene.TypeMesh, Modifiers: []scene.Modifier{{Type: scene.ModCurve, Object: "Path"}}},
		{Name: "Unbound", Type: scene.TypeMesh, Modifiers: []scene.Modifier{{Type: scene.ModCurve}}},
		{Name: "Dangling", Type: scene.TypeMesh, Modifiers: []scene.Modifier{{Type: scene.ModCurve, Object: "Gone"}}},
	}}

	got := deformerCurves(s, scene.NewIndex(s))
	want := map[scene.Handle]bool{0: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("deformerCurves = %v, want %v", got, want)
	}
}
