package program

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed program.yaml
var rulesYAML []byte

// UnassignedAreaName is the display name used for courses that resolve to no
// program area.
const UnassignedAreaName = "Unassigned"

// Area ids of the current degree regulation. The classifier emits these and
// the rule set is keyed by them.
const (
	AreaFundamentals     = "fundamentals"
	AreaDataManagement   = "data-management"
	AreaDataAnalytics    = "data-analytics-methods"
	AreaResponsible      = "responsible-data-science"
	AreaProjectsSeminars = "projects-and-seminars"
	AreaMasterThesis     = "master-thesis"
)

// Area is one block of the degree regulation. RequiredECTS mirrors MinECTS in
// the current regulation but is kept separate because older versions differed.
type Area struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	MinECTS      float64 `json:"min_ects" yaml:"min_ects"`
	MaxECTS      float64 `json:"max_ects" yaml:"max_ects"`
	RequiredECTS float64 `json:"required_ects" yaml:"required_ects"`
}

// Rules is the full rule set of one degree program. It is built once at
// startup and never mutated afterwards, so it is safe to share across
// requests. Only program name, total and areas are part of the public JSON
// contract; the remaining fields feed normalization and rendering.
type Rules struct {
	ProgramName             string            `json:"program_name" yaml:"program_name"`
	TotalECTS               float64           `json:"total_ects" yaml:"total_ects"`
	Areas                   []Area            `json:"areas" yaml:"areas"`
	AdditionalCourseCodes   []string          `json:"-" yaml:"additional_course_codes"`
	AdditionalCourseMaxECTS float64           `json:"-" yaml:"additional_course_max_ects"`
	AreaColors              map[string]string `json:"-" yaml:"area_colors"`
}

// Load returns the program rule set. Precedence: the file at rulesPath when
// given, then the embedded document, then the compiled-in defaults when
// neither parses. Loading never fails; a bad document is logged and skipped.
func Load(rulesPath string, log zerolog.Logger) *Rules {
	log = log.With().Str("component", "program_rules").Logger()

	if rulesPath != "" {
		data, err := os.ReadFile(rulesPath)
		if err != nil {
			log.Warn().Err(err).Str("path", rulesPath).Msg("rules file unreadable, trying embedded document")
		} else if rules, err := parse(data); err != nil {
			log.Warn().Err(err).Str("path", rulesPath).Msg("rules file invalid, trying embedded document")
		} else {
			log.Info().Str("path", rulesPath).Str("program", rules.ProgramName).Msg("program rules loaded from file")
			return rules
		}
	}

	rules, err := parse(rulesYAML)
	if err != nil {
		log.Warn().Err(err).Msg("embedded rules invalid, using compiled-in defaults")
		return defaultRules()
	}
	return rules
}

func parse(data []byte) (*Rules, error) {
	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := rules.validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

func (r *Rules) validate() error {
	if r.ProgramName == "" {
		return fmt.Errorf("rules missing program_name")
	}
	if r.TotalECTS <= 0 {
		return fmt.Errorf("rules total_ects must be positive, got %v", r.TotalECTS)
	}
	if len(r.Areas) == 0 {
		return fmt.Errorf("rules define no areas")
	}
	seen := make(map[string]bool, len(r.Areas))
	for i, area := range r.Areas {
		if area.ID == "" || area.Name == "" {
			return fmt.Errorf("area %d missing id or name", i)
		}
		if seen[area.ID] {
			return fmt.Errorf("duplicate area id %q", area.ID)
		}
		seen[area.ID] = true
	}
	return nil
}

// AreaByID returns the area with the given id.
func (r *Rules) AreaByID(id string) (Area, bool) {
	for _, area := range r.Areas {
		if area.ID == id {
			return area, true
		}
	}
	return Area{}, false
}

// AreaName returns the display name for an area id, or UnassignedAreaName
// when the id matches no area.
func (r *Rules) AreaName(id string) string {
	if area, ok := r.AreaByID(id); ok {
		return area.Name
	}
	return UnassignedAreaName
}

// IsAdditionalCourse reports whether a course code belongs to the
// Additional-Course block. Codes are compared case-insensitively after
// trimming surrounding whitespace.
func (r *Rules) IsAdditionalCourse(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return false
	}
	for _, c := range r.AdditionalCourseCodes {
		if strings.ToUpper(strings.TrimSpace(c)) == code {
			return true
		}
	}
	return false
}

// defaultRules mirrors program.yaml so a corrupted document cannot take the
// service down.
func defaultRules() *Rules {
	return &Rules{
		ProgramName: "M.Sc. Data Science (Mannheim)",
		TotalECTS:   120,
		Areas: []Area{
			{ID: "fundamentals", Name: "B. Fundamentals", MinECTS: 27, MaxECTS: 27, RequiredECTS: 27},
			{ID: "data-management", Name: "C. Data Management", MinECTS: 6, MaxECTS: 24, RequiredECTS: 6},
			{ID: "data-analytics-methods", Name: "D. Data Analytics Methods", MinECTS: 12, MaxECTS: 36, RequiredECTS: 12},
			{ID: "responsible-data-science", Name: "E. Responsible Data Science", MinECTS: 3, MaxECTS: 7, RequiredECTS: 3},
			{ID: "projects-and-seminars", Name: "F. Projects and Seminars", MinECTS: 14, MaxECTS: 18, RequiredECTS: 14},
			{ID: "master-thesis", Name: "G. Master Thesis", MinECTS: 30, MaxECTS: 30, RequiredECTS: 30},
		},
		AdditionalCourseCodes:   []string{"AC 651", "AC 652", "AC 653", "AC 654"},
		AdditionalCourseMaxECTS: 18,
		AreaColors: map[string]string{
			"fundamentals":             "#b5673f",
			"data-management":          "#c78c64",
			"data-analytics-methods":   "#d4a574",
			"responsible-data-science": "#8fbc8f",
			"projects-and-seminars":    "#9f4f2a",
			"master-thesis":            "#6b4423",
			"unassigned":               "#d2c8bf",
		},
	}
}
