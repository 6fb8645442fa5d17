package analyzer

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestRegistry_CodesMatchCategoryRanges(t *testing.T) {
	for _, p := range Definitions() {
		if p.Code < 101 || p.Code > 499 || p.Code%100 == 0 {
			t.Errorf("code %d outside category blocks", p.Code)
		}
		if Category(p.Code) == "Other" {
			t.Errorf("code %d has no category", p.Code)
		}
		if p.Title == "" || p.Description == "" {
			t.Errorf("code %d missing title or description", p.Code)
		}
	}
}

func TestRegistry_SceneProblemsNotSelectable(t *testing.T) {
	for _, p := range Definitions() {
		scene := Category(p.Code) == "Scene"
		if scene == p.Selectable {
			t.Errorf("code %d selectable = %v, scene-level = %v", p.Code, p.Selectable, scene)
		}
	}
}

func TestCategory(t *testing.T) {
	tests := map[Code]string{
		101: "Object",
		202: "Relations",
		303: "Object Data",
		401: "Scene",
		999: "Other",
	}
	for code, want := range tests {
		if got := Category(code); got != want {
			t.Errorf("Category(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(CodeCurveOrder)
	if !ok {
		t.Fatal("Lookup(302) not found")
	}
	if p.Severity != Error || !strings.Contains(p.Title, "Order") {
		t.Errorf("Lookup(302) = %+v", p)
	}

	if _, ok := Lookup(Code(7)); ok {
		t.Error("Lookup of unknown code should fail")
	}
}

func TestDefinitions_ReturnsCopy(t *testing.T) {
	defs := Definitions()
	defs[0].Title = "changed"

	if p, _ := Lookup(defs[0].Code); p.Title == "changed" {
		t.Error("Definitions should not expose the registry")
	}
}

func TestCodes_RegistryOrder(t *testing.T) {
	codes := Codes()
	for i := 1; i < len(codes); i++ {
		if codes[i] <= codes[i-1] {
			t.Errorf("codes not in ascending registry order: %v", codes)
		}
	}
}

func TestSeverity_JSON(t *testing.T) {
	data, err := json.Marshal(struct{ S Severity }{Error})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"S":"error"}` {
		t.Errorf("got %s", data)
	}

	var s Severity
	if err := s.UnmarshalText([]byte("warning")); err != nil || s != Warning {
		t.Errorf("UnmarshalText = %v, %v", s, err)
	}
	if err := s.UnmarshalText([]byte("critical")); err == nil {
		t.Error("expected error for unknown severity")
	}
}
