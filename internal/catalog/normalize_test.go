package catalog

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

func testRules(t *testing.T) *program.Rules {
	t.Helper()
	return program.Load("", zerolog.Nop())
}

func TestNormalizeCourseFieldFallbacks(t *testing.T) {
	rules := testRules(t)

	primary := model.RawCourse{
		Code:  "IE 500",
		Title: "Advanced ML",
		ECTS:  model.CreditValue{Number: 6, Set: true},
	}
	fallback := model.RawCourse{
		ModuleCode: "IE 500",
		ModuleName: "Advanced ML",
		ECTS:       model.CreditValue{Number: 6, Set: true},
	}

	a := NormalizeCourse(primary, nil, rules)
	b := NormalizeCourse(fallback, nil, rules)

	if a.Code != b.Code || a.Title != b.Title || a.ID != b.ID {
		t.Errorf("fallback schema resolved differently: %+v vs %+v", a, b)
	}
	if a.Code != "IE 500" || a.Title != "Advanced ML" {
		t.Errorf("resolved code/title = %q/%q", a.Code, a.Title)
	}
}

func TestNormalizeCoursePrimaryWinsOverFallback(t *testing.T) {
	rules := testRules(t)

	c := NormalizeCourse(model.RawCourse{
		Code:       "IE 500",
		ModuleCode: "OLD 1",
		Title:      "New Title",
		ModuleName: "Old Title",
	}, nil, rules)

	if c.Code != "IE 500" || c.Title != "New Title" {
		t.Errorf("got %q/%q, want the primary fields", c.Code, c.Title)
	}
}

func TestNormalizeCourseMissingEverything(t *testing.T) {
	rules := testRules(t)

	c := NormalizeCourse(model.RawCourse{}, nil, rules)
	if c.Code != "" || c.Title != "" || c.ECTS != 0 {
		t.Errorf("empty record should degrade to empty fields, got %+v", c)
	}
	if c.ID != "course-" {
		t.Errorf("id = %q, want the minted prefix", c.ID)
	}
	if c.AreaID != "" || c.AreaName != program.UnassignedAreaName {
		t.Errorf("area = %q/%q, want unassigned", c.AreaID, c.AreaName)
	}
	if c.Source != "catalog" {
		t.Errorf("source = %q, want the catalog default", c.Source)
	}
}

func TestNormalizeCourseIDMinting(t *testing.T) {
	rules := testRules(t)

	c := NormalizeCourse(model.RawCourse{Code: "IE 500"}, nil, rules)
	if c.ID != "course-ie-500" {
		t.Errorf("minted id = %q, want course-ie-500", c.ID)
	}

	c = NormalizeCourse(model.RawCourse{ID: "custom-id", Code: "IE 500"}, nil, rules)
	if c.ID != "custom-id" {
		t.Errorf("id = %q, explicit ids must be kept", c.ID)
	}
}

func TestNormalizeCourseCreditSentinel(t *testing.T) {
	rules := testRules(t)
	maxText := model.CreditValue{Text: "max. 18 ECTS", IsText: true, Set: true}

	t.Run("additional course resolves to the cap", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "AC 651", ECTS: maxText}, nil, rules)
		if c.ECTS != rules.AdditionalCourseMaxECTS {
			t.Errorf("ECTS = %v, want %v", c.ECTS, rules.AdditionalCourseMaxECTS)
		}
		if !c.IsAdditionalCourse {
			t.Error("AC 651 not flagged as additional course")
		}
		if c.MaxECTS == nil || *c.MaxECTS != rules.AdditionalCourseMaxECTS {
			t.Errorf("MaxECTS = %v, want the cap", c.MaxECTS)
		}
	})

	t.Run("other codes resolve to zero", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "IE 500", ECTS: maxText}, nil, rules)
		if c.ECTS != 0 {
			t.Errorf("ECTS = %v, want 0", c.ECTS)
		}
		if c.IsAdditionalCourse || c.MaxECTS != nil {
			t.Errorf("IE 500 must not carry additional-course attributes: %+v", c)
		}
	})

	t.Run("MAX is matched case-insensitively", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "AC 652",
			ECTS: model.CreditValue{Text: "MAX 18", IsText: true, Set: true},
		}, nil, rules)
		if c.ECTS != rules.AdditionalCourseMaxECTS {
			t.Errorf("ECTS = %v, want the cap", c.ECTS)
		}
	})

	t.Run("numeric text parses", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			ECTS: model.CreditValue{Text: "7.5", IsText: true, Set: true},
		}, nil, rules)
		if c.ECTS != 7.5 {
			t.Errorf("ECTS = %v, want 7.5", c.ECTS)
		}
	})

	t.Run("unparseable text degrades to zero", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			ECTS: model.CreditValue{Text: "about six", IsText: true, Set: true},
		}, nil, rules)
		if c.ECTS != 0 {
			t.Errorf("ECTS = %v, want 0", c.ECTS)
		}
	})
}

func TestNormalizeCourseAreaResolution(t *testing.T) {
	rules := testRules(t)

	t.Run("explicit area id wins over tags", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code:          "IE 500",
			AreaID:        program.AreaFundamentals,
			AssignedAreas: []model.AreaTag{{Label: "Data Analytics Methods"}},
		}, nil, rules)
		if c.AreaID != program.AreaFundamentals || c.AreaName != "B. Fundamentals" {
			t.Errorf("area = %q/%q", c.AreaID, c.AreaName)
		}
	})

	t.Run("structured tags prefer the current regulation", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			AssignedAreas: []model.AreaTag{
				{Label: "Data Analytics Methods", POVersion: "MMDS PO 2017", Structured: true},
				{Label: "Fundamentals", POVersion: "MMDS PO 2024", Structured: true},
			},
		}, nil, rules)
		if c.AreaID != program.AreaFundamentals {
			t.Errorf("area = %q, want the PO 2024 tag to win", c.AreaID)
		}
	})

	t.Run("unclassifiable current tag falls back to the first tag", func(t *testing.T) {
		// The regulation scan stops at the first PO 2024 tag even when its
		// label classifies to nothing; the first tag then decides.
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			AssignedAreas: []model.AreaTag{
				{Label: "Data Management", POVersion: "MMDS PO 2017", Structured: true},
				{Label: "Electives", POVersion: "MMDS PO 2024", Structured: true},
				{Label: "Fundamentals", POVersion: "MMDS PO 2024", Structured: true},
			},
		}, nil, rules)
		if c.AreaID != program.AreaDataManagement {
			t.Errorf("area = %q, want the first tag's area", c.AreaID)
		}
	})

	t.Run("no current tag falls back to the first tag", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			AssignedAreas: []model.AreaTag{
				{Label: "Data Management", POVersion: "MMDS PO 2017", Structured: true},
				{Label: "Fundamentals", POVersion: "MMDS PO 2017", Structured: true},
			},
		}, nil, rules)
		if c.AreaID != program.AreaDataManagement {
			t.Errorf("area = %q, want the first tag's area", c.AreaID)
		}
	})

	t.Run("plain labels use the first entry only", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			AssignedAreas: []model.AreaTag{
				{Label: "Data Analytics Methods"},
				{Label: "Fundamentals"},
			},
		}, nil, rules)
		if c.AreaID != program.AreaDataAnalytics {
			t.Errorf("area = %q, want the first label's area", c.AreaID)
		}
	})

	t.Run("unclassifiable first plain label leaves the course unassigned", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			AssignedAreas: []model.AreaTag{
				{Label: "Electives"},
				{Label: "Fundamentals"},
			},
		}, nil, rules)
		if c.AreaID != "" || c.AreaName != program.UnassignedAreaName {
			t.Errorf("area = %q/%q, want unassigned", c.AreaID, c.AreaName)
		}
	})

	t.Run("no tags at all", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "IE 500"}, nil, rules)
		if c.AreaID != "" || c.AreaName != program.UnassignedAreaName {
			t.Errorf("area = %q/%q, want unassigned", c.AreaID, c.AreaName)
		}
	})
}

func TestNormalizeCourseRestrictionJoin(t *testing.T) {
	rules := testRules(t)
	restrictions := BuildRestrictionIndex([]model.RestrictionEntry{
		{Code: "cs 430", Kind: "explicit", Reason: "Bachelor-level module."},
		{Code: "IE 694", Kind: "approval", Reason: "Needs committee approval."},
	})

	t.Run("explicit kind restricts", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "CS 430"}, restrictions, rules)
		if !c.Restricted || c.RestrictedKind != "explicit" || c.RestrictedReason != "Bachelor-level module." {
			t.Errorf("restriction fields = %v/%q/%q", c.Restricted, c.RestrictedKind, c.RestrictedReason)
		}
	})

	t.Run("advisory kind only annotates", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "IE 694"}, restrictions, rules)
		if c.Restricted {
			t.Error("advisory restriction must not restrict")
		}
		if c.RestrictedKind != "approval" || c.RestrictedReason != "Needs committee approval." {
			t.Errorf("restriction fields = %q/%q", c.RestrictedKind, c.RestrictedReason)
		}
	})

	t.Run("unrestricted course stays clean", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "IE 500"}, restrictions, rules)
		if c.Restricted || c.RestrictedKind != "" || c.RestrictedReason != "" {
			t.Errorf("restriction fields = %v/%q/%q", c.Restricted, c.RestrictedKind, c.RestrictedReason)
		}
	})
}

func TestBuildRestrictionIndex(t *testing.T) {
	index := BuildRestrictionIndex([]model.RestrictionEntry{
		{Code: "", Kind: "explicit", Reason: "no code"},
		{Code: "ie 500", Kind: "explicit", Reason: "first"},
		{Code: "IE 500", Kind: "approval", Reason: "second"},
	})

	if len(index) != 1 {
		t.Fatalf("got %d entries, want 1 (empty codes skipped, duplicates merged)", len(index))
	}
	if e := index["IE 500"]; e.Kind != "approval" || e.Reason != "second" {
		t.Errorf("entry = %+v, want the last write to win", e)
	}
}

func TestNormalizeCourseMetricsPassthrough(t *testing.T) {
	rules := testRules(t)
	year := 2015

	t.Run("with top paper", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code: "IE 500",
			Metrics: &model.RawMetrics{
				HIndex:            42,
				Citations:         10874,
				TopPaperTitle:     "Lifted Multicuts",
				TopPaperCitations: 412,
				TopPaperYear:      &year,
				TopPaperVenue:     "ICCV",
			},
		}, nil, rules)
		if c.HIndex != 42 || c.Citations != 10874 {
			t.Errorf("metrics = %d/%d", c.HIndex, c.Citations)
		}
		if c.TopPaper == nil {
			t.Fatal("top paper missing")
		}
		if c.TopPaper.Title != "Lifted Multicuts" || c.TopPaper.Citations != 412 ||
			c.TopPaper.Year == nil || *c.TopPaper.Year != 2015 || c.TopPaper.Venue != "ICCV" {
			t.Errorf("top paper = %+v", c.TopPaper)
		}
	})

	t.Run("without top paper title", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{
			Code:    "IE 500",
			Metrics: &model.RawMetrics{HIndex: 10, Citations: 100, TopPaperCitations: 50},
		}, nil, rules)
		if c.TopPaper != nil {
			t.Errorf("top paper = %+v, want nil without a title", c.TopPaper)
		}
		if c.HIndex != 10 || c.Citations != 100 {
			t.Errorf("metrics = %d/%d", c.HIndex, c.Citations)
		}
	})

	t.Run("without metrics block", func(t *testing.T) {
		c := NormalizeCourse(model.RawCourse{Code: "IE 500"}, nil, rules)
		if c.HIndex != 0 || c.Citations != 0 || c.TopPaper != nil {
			t.Errorf("metrics should be zero: %+v", c)
		}
	})
}

func TestFilterRestricted(t *testing.T) {
	courses := []model.Course{
		{Code: "IE 500"},
		{Code: "CS 430", Restricted: true, RestrictedKind: "explicit"},
		{Code: "IE 694", RestrictedKind: "approval"},
	}

	kept := FilterRestricted(courses)
	if len(kept) != 2 {
		t.Fatalf("got %d courses, want 2", len(kept))
	}
	for _, c := range kept {
		if c.Code == "CS 430" {
			t.Error("explicitly restricted course survived the filter")
		}
	}
	if kept[1].Code != "IE 694" || kept[1].RestrictedKind != "approval" {
		t.Errorf("advisory-restricted course lost its annotation: %+v", kept[1])
	}
}

func TestSortByTitle(t *testing.T) {
	courses := []model.Course{
		{Code: "1", Title: "web Mining"},
		{Code: "2", Title: "Advanced ML"},
		{Code: "3", Title: "database Technology"},
	}
	SortByTitle(courses)

	want := []string{"Advanced ML", "database Technology", "web Mining"}
	for i, w := range want {
		if courses[i].Title != w {
			t.Errorf("position %d = %q, want %q", i, courses[i].Title, w)
		}
	}
}

func TestNormalizeKeepsCatalogOrder(t *testing.T) {
	rules := testRules(t)
	raw := []model.RawCourse{{Code: "B 2"}, {Code: "A 1"}}

	courses := Normalize(raw, nil, rules)
	if len(courses) != 2 || courses[0].Code != "B 2" || courses[1].Code != "A 1" {
		t.Errorf("normalize must not reorder: %+v", courses)
	}
}
