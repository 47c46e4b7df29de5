package program

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadEmbeddedMatchesDefaults(t *testing.T) {
	// The embedded document and the compiled-in fallback must describe the
	// same program, otherwise a packaging mistake silently changes the rules.
	loaded := Load("", zerolog.Nop())
	if !reflect.DeepEqual(loaded, defaultRules()) {
		t.Errorf("embedded rules diverge from compiled-in defaults:\n%+v\nvs\n%+v", loaded, defaultRules())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	doc := `
program_name: "M.Sc. Test Program"
total_ects: 60
areas:
  - id: only-area
    name: "A. Only Area"
    min_ects: 60
    max_ects: 60
    required_ects: 60
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	rules := Load(path, zerolog.Nop())
	if rules.ProgramName != "M.Sc. Test Program" {
		t.Errorf("program name = %q, want override", rules.ProgramName)
	}
	if len(rules.Areas) != 1 || rules.Areas[0].ID != "only-area" {
		t.Errorf("areas = %+v, want the single override area", rules.Areas)
	}
}

func TestLoadBadFileFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		rules := Load(filepath.Join(dir, "nope.yaml"), zerolog.Nop())
		if rules.ProgramName != "M.Sc. Data Science (Mannheim)" {
			t.Errorf("program name = %q, want embedded rules", rules.ProgramName)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		path := filepath.Join(dir, "broken.yaml")
		if err := os.WriteFile(path, []byte("areas: {not: [a, list"), 0o644); err != nil {
			t.Fatalf("write rules file: %v", err)
		}
		rules := Load(path, zerolog.Nop())
		if len(rules.Areas) != 6 {
			t.Errorf("got %d areas, want the 6 embedded ones", len(rules.Areas))
		}
	})

	t.Run("document failing validation", func(t *testing.T) {
		path := filepath.Join(dir, "incomplete.yaml")
		if err := os.WriteFile(path, []byte("program_name: X\ntotal_ects: 10\nareas: []\n"), 0o644); err != nil {
			t.Fatalf("write rules file: %v", err)
		}
		rules := Load(path, zerolog.Nop())
		if len(rules.Areas) != 6 {
			t.Errorf("got %d areas, want the 6 embedded ones", len(rules.Areas))
		}
	})
}

func TestParseRejectsBrokenRuleSets(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"no program name", "total_ects: 120\nareas: [{id: a, name: A}]"},
		{"zero total", "program_name: X\ntotal_ects: 0\nareas: [{id: a, name: A}]"},
		{"no areas", "program_name: X\ntotal_ects: 120\nareas: []"},
		{"area without id", "program_name: X\ntotal_ects: 120\nareas: [{name: A}]"},
		{"duplicate area id", "program_name: X\ntotal_ects: 120\nareas: [{id: a, name: A}, {id: a, name: B}]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parse([]byte(tc.doc)); err == nil {
				t.Error("parse accepted a broken rule set")
			}
		})
	}
}

func TestAreaLookup(t *testing.T) {
	rules := defaultRules()

	area, ok := rules.AreaByID("data-management")
	if !ok || area.Name != "C. Data Management" {
		t.Errorf("AreaByID(data-management) = %+v, %v", area, ok)
	}
	if _, ok := rules.AreaByID("nope"); ok {
		t.Error("AreaByID accepted an unknown id")
	}

	if got := rules.AreaName("master-thesis"); got != "G. Master Thesis" {
		t.Errorf("AreaName(master-thesis) = %q", got)
	}
	if got := rules.AreaName(""); got != UnassignedAreaName {
		t.Errorf("AreaName(\"\") = %q, want %q", got, UnassignedAreaName)
	}
	if got := rules.AreaName("unknown-id"); got != UnassignedAreaName {
		t.Errorf("AreaName(unknown) = %q, want %q", got, UnassignedAreaName)
	}
}

func TestIsAdditionalCourse(t *testing.T) {
	rules := defaultRules()

	cases := []struct {
		code string
		want bool
	}{
		{"AC 651", true},
		{"ac 651", true},
		{"  AC 652  ", true},
		{"AC 654", true},
		{"AC 655", false},
		{"IE 500", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := rules.IsAdditionalCourse(tc.code); got != tc.want {
			t.Errorf("IsAdditionalCourse(%q) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
