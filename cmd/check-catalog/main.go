package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/alexanderciuffreda/mannheim-planner/internal/catalog"
	"github.com/alexanderciuffreda/mannheim-planner/internal/config"
	"github.com/alexanderciuffreda/mannheim-planner/internal/logger"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// check-catalog reports how the raw data files normalize: courses per area,
// restricted entries, variable-credit modules, and courses that resolve to no
// area. It exits non-zero when unassigned courses exist so a data update can
// be gated in CI.
func main() {
	var (
		dataDir   string
		rulesPath string
	)
	flag.StringVar(&dataDir, "data", "", "Data directory (defaults to DATA_DIR)")
	flag.StringVar(&rulesPath, "rules", "", "Program rules YAML (defaults to PROGRAM_RULES_YAML)")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if rulesPath == "" {
		rulesPath = cfg.ProgramRulesPath
	}

	rules := program.Load(rulesPath, log)
	source := catalog.NewSource(dataDir, log)

	ctx := context.Background()
	raw := source.RawCourses(ctx)
	restrictions := catalog.BuildRestrictionIndex(source.Restrictions(ctx))
	courses := catalog.Normalize(raw, restrictions, rules)

	fmt.Printf("=== Catalog check (%s) ===\n", dataDir)
	fmt.Printf("Raw records:        %d\n", len(raw))
	fmt.Printf("Restriction codes:  %d\n", len(restrictions))
	fmt.Println()

	fmt.Println("Courses per area:")
	perArea := make(map[string]int)
	for _, c := range courses {
		perArea[c.AreaName]++
	}
	for _, area := range rules.Areas {
		fmt.Printf("  %-32s %d\n", area.Name, perArea[area.Name])
	}
	if n := perArea[program.UnassignedAreaName]; n > 0 {
		fmt.Printf("  %-32s %d\n", program.UnassignedAreaName, n)
	}
	fmt.Println()

	var restricted, variable, unassigned []string
	for _, c := range courses {
		if c.RestrictedKind != "" {
			restricted = append(restricted, fmt.Sprintf("%s (%s)", c.Code, c.RestrictedKind))
		}
		if c.IsAdditionalCourse {
			variable = append(variable, fmt.Sprintf("%s (up to %.0f ECTS)", c.Code, *c.MaxECTS))
		}
		if c.AreaID == "" {
			unassigned = append(unassigned, fmt.Sprintf("%s %s", c.Code, c.Title))
		}
	}

	if len(restricted) > 0 {
		fmt.Println("Restricted courses:")
		for _, r := range restricted {
			fmt.Printf("  %s\n", r)
		}
		fmt.Println()
	}
	if len(variable) > 0 {
		fmt.Println("Variable-credit modules:")
		for _, v := range variable {
			fmt.Printf("  %s\n", v)
		}
		fmt.Println()
	}

	if len(unassigned) > 0 {
		fmt.Printf("Unassigned courses (%d):\n", len(unassigned))
		for _, u := range unassigned {
			fmt.Printf("  %s\n", u)
		}
		fmt.Println("\nCheck failed: courses above resolve to no program area.")
		os.Exit(1)
	}

	fmt.Println("Check passed: every course resolves to a program area.")
}
