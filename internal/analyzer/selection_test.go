package analyzer

import (
	"reflect"
	"testing"

	"github.com/jacobarthurs/scenelint/internal/scene"
)

func TestReport_Select(t *testing.T) {
	r := Report{
		Obs:        []ObjectFindings{{Object: "Cube", Codes: []Code{CodeObjectScale}}},
		ObsIgnored: []ObjectFindings{{Object: "Cone", Codes: []Code{CodeObjectScale}}},
	}

	got, err := r.Select(CodeObjectScale, false)
	if err != nil || !reflect.DeepEqual(got, []string{"Cube"}) {
		t.Errorf("Select active = %v, %v", got, err)
	}
	got, err = r.Select(CodeObjectScale, true)
	if err != nil || !reflect.DeepEqual(got, []string{"Cone"}) {
		t.Errorf("Select ignored = %v, %v", got, err)
	}
}

func TestReport_SelectRejectsSceneLevel(t *testing.T) {
	var r Report
	for _, code := range []Code{CodeCollectionName, CodeCollectionVisibility, 999} {
		if _, err := r.Select(code, false); err == nil {
			t.Errorf("Select(%d) should fail", code)
		}
	}
}

func TestAnnotate_SetsSortedUniqueCodes(t *testing.T) {
	ob := &scene.Object{Name: "Cube"}

	if err := Annotate(ob, []Code{CodeCurveOrder, CodeObjectScale, CodeCurveOrder}); err != nil {
		t.Fatalf("Annotate: %v", err)
	}

	got := IgnoreCodes(ob)
	want := map[Code]bool{CodeObjectScale: true, CodeCurveOrder: true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("IgnoreCodes = %v, want %v", got, want)
	}
	if vals := ob.Props[scene.IgnoreKey].([]any); len(vals) != 2 || vals[0] != 101 {
		t.Errorf("annotation = %v", vals)
	}
}

func TestAnnotate_EmptyClears(t *testing.T) {
	ob := &scene.Object{Props: map[string]any{scene.IgnoreKey: []any{101}, "gem": true}}

	if err := Annotate(ob, nil); err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	if ob.HasProp(scene.IgnoreKey) {
		t.Error("annotation not removed")
	}
	if !ob.HasProp(scene.GemKey) {
		t.Error("other properties must be kept")
	}
}

func TestAnnotate_RejectsSceneLevelCodes(t *testing.T) {
	ob := &scene.Object{Props: map[string]any{scene.IgnoreKey: []any{101}}}

	if err := Annotate(ob, []Code{CodeObjectScale, CodeCollectionName}); err == nil {
		t.Fatal("expected error for scene-level code")
	}
	if got := IgnoreCodes(ob); !reflect.DeepEqual(got, map[Code]bool{CodeObjectScale: true}) {
		t.Errorf("annotation changed on error: %v", got)
	}
}

func TestAnnotate_SuppressesOnNextScan(t *testing.T) {
	sc := &scene.Scene{
		Objects: []scene.Object{{
			Name:  "Cube",
			Type:  scene.TypeMesh,
			Scale: scene.Vector{2, 2, 2},
			Mesh:  &scene.Mesh{Vertices: 8},
		}},
	}
	if err := Annotate(&sc.Objects[0], []Code{CodeObjectScale}); err != nil {
		t.Fatal(err)
	}

	r := Analyze(sc, DefaultSettings())
	if len(r.Problems) != 0 || !reflect.DeepEqual(r.Ignored(), []Code{CodeObjectScale}) {
		t.Errorf("detected=%v ignored=%v", r.Detected(), r.Ignored())
	}
}
