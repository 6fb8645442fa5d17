package fixture

import (
	"reflect"
	"testing"

	"github.com/jacobarthurs/scenelint/internal/analyzer"
	"github.com/jacobarthurs/scenelint/internal/scene"
)

func TestCodes_CoverRegistry(t *testing.T) {
	if got, want := Codes(), analyzer.Codes(); !reflect.DeepEqual(got, want) {
		t.Errorf("fixture codes = %v, registry = %v", got, want)
	}
}

func TestBuild_EachFixtureTriggersOnlyItsRule(t *testing.T) {
	for _, code := range Codes() {
		s, err := Build(code)
		if err != nil {
			t.Fatalf("Build(%d): %v", code, err)
		}

		r := analyzer.Analyze(s, analyzer.DefaultSettings())
		if got := r.Detected(); !reflect.DeepEqual(got, []analyzer.Code{code}) {
			t.Errorf("fixture %d detected %v", code, got)
		}
	}
}

func TestBuild_AllFixturesDetected(t *testing.T) {
	s, err := Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	r := analyzer.Analyze(s, analyzer.DefaultSettings())

	detected := make(map[analyzer.Code]bool)
	for _, c := range r.Detected() {
		detected[c] = true
	}
	for _, code := range Codes() {
		if !detected[code] {
			t.Errorf("code %d not detected in combined fixture scene", code)
		}
	}
}

func TestBuild_DisabledFixtureSuppressed(t *testing.T) {
	for _, code := range Codes() {
		s, err := Build(code)
		if err != nil {
			t.Fatalf("Build(%d): %v", code, err)
		}

		r := analyzer.Analyze(s, analyzer.DefaultSettings().Disable(code))
		if len(r.Detected()) != 0 || len(r.Ignored()) != 0 {
			t.Errorf("disabled %d still reported: %v %v", code, r.Detected(), r.Ignored())
		}
	}
}

func TestBuild_UnknownCode(t *testing.T) {
	if _, err := Build(analyzer.Code(999)); err == nil {
		t.Fatal("expected error for unknown fixture")
	}
}

func TestBuilder_LinksObjectsUnderActiveCollection(t *testing.T) {
	b := NewBuilder("Test")
	b.Add(Mesh("Loose", Unit))
	b.Group(scene.Collection{Name: "Grouped"}, Mesh("Inner", Unit))
	s := b.Build()

	if len(s.Objects) != 2 {
		t.Fatalf("objects = %d, want 2", len(s.Objects))
	}
	active := s.Collection.Children[0]
	if active.Name != ActiveCollection || !reflect.DeepEqual(active.Objects, []string{"Loose"}) {
		t.Errorf("active = %+v", active)
	}
	if len(active.Children) != 1 || !reflect.DeepEqual(active.Children[0].Objects, []string{"Inner"}) {
		t.Errorf("children = %+v", active.Children)
	}
}
