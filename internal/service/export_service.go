package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/alexanderciuffreda/mannheim-planner/internal/export"
	"github.com/alexanderciuffreda/mannheim-planner/internal/model"
	"github.com/alexanderciuffreda/mannheim-planner/internal/planner"
	"github.com/alexanderciuffreda/mannheim-planner/internal/program"
)

// ExportService turns client plan selections into downloadable documents.
type ExportService struct {
	catalog *CatalogService
	rules   *program.Rules
	log     zerolog.Logger
	now     func() time.Time
}

func NewExportService(catalogService *CatalogService, rules *program.Rules, log zerolog.Logger) *ExportService {
	return &ExportService{
		catalog: catalogService,
		rules:   rules,
		log:     log.With().Str("component", "export_service").Logger(),
		now:     time.Now,
	}
}

// Export aggregates the selections against the current catalog snapshot and
// renders them in the requested format. The snapshot is unfiltered, so a
// plan that references a since-restricted course still exports.
func (s *ExportService) Export(ctx context.Context, format string, selections []model.Selection) (export.Document, error) {
	courses := s.catalog.Snapshot(ctx)
	plan := planner.Aggregate(courses, selections, s.rules)

	doc, err := export.Render(format, plan, s.rules, s.now())
	if err != nil {
		return export.Document{}, err
	}

	s.log.Info().
		Str("format", format).
		Int("selections", len(selections)).
		Float64("planned_ects", plan.TotalPlanned).
		Int("bytes", len(doc.Content)).
		Msg("Plan exported")
	return doc, nil
}
