package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

func TestClassifyArea(t *testing.T) {
	cases := []struct {
		label  string
		want   string
		wantOK bool
	}{
		{"Fundamentals", program.AreaFundamentals, true},
		{"B. Fundamentals", program.AreaFundamentals, true},
		{"Data Management", program.AreaDataManagement, true},
		{"C. Data Management (PO 2024)", program.AreaDataManagement, true},
		{"Data Analytics Methods", program.AreaDataAnalytics, true},
		{"Data Analytic Methods", program.AreaDataAnalytics, true},
		{"Responsible Data Science", program.AreaResponsible, true},
		{"Team Project", program.AreaProjectsSeminars, true},
		{"Master Seminar", program.AreaProjectsSeminars, true},
		{"Master Thesis", program.AreaMasterThesis, true},

		// Overlapping cues resolve by priority: earlier rules win.
		{"Seminar Responsible Data Science", program.AreaResponsible, true},
		{"Data Analytics Methods Project", program.AreaDataAnalytics, true},
		{"Fundamentals Seminar", program.AreaFundamentals, true},
		{"Thesis Seminar", program.AreaProjectsSeminars, true},

		// Formatting noise is stripped before matching.
		{"data-management", program.AreaDataManagement, true},
		{"  DATA   MANAGEMENT  ", program.AreaDataManagement, true},
		{"Data_Analytics_Methods", program.AreaDataAnalytics, true},

		{"", "", false},
		{"Economics", "", false},
		{"Data Science", "", false},
	}

	for _, tc := range cases {
		got, ok := ClassifyArea(tc.label)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ClassifyArea(%q) = (%q, %v), want (%q, %v)", tc.label, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestClassifyAreaRoundTripsDisplayNames(t *testing.T) {
	// Classifying an area's own display name must return that area, so an
	// already-resolved label survives re-normalization unchanged.
	rules := program.Load("", zerolog.Nop())
	for _, area := range rules.Areas {
		got, ok := ClassifyArea(area.Name)
		if !ok || got != area.ID {
			t.Errorf("ClassifyArea(%q) = (%q, %v), want (%q, true)", area.Name, got, ok, area.ID)
		}
	}
}

func TestNormalizeLabel(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Data Management", "datamanagement"},
		{"D. Data Analytics Methods", "ddataanalyticsmethods"},
		{"Projects & Seminars (F)", "projectsseminarsf"},
		{"ÜBUNG", "bung"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := normalizeLabel(tc.in); got != tc.want {
			t.Errorf("normalizeLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
