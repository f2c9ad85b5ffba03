package services

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/aurora-cli/internal/core/astro"
	"github.com/custodia-labs/aurora-cli/internal/core/domain"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driven"
	"github.com/custodia-labs/aurora-cli/internal/core/ports/driving"
	"github.com/custodia-labs/aurora-cli/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// reportNamespace scopes document IDs so they never collide with
// UUIDs generated for other purposes.
var reportNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("aurora-sagrada:report"))

const fileDateLayout = "20060102"

// ReportService assembles daily reports and hands them to renderers.
type ReportService struct {
	content   driving.ContentService
	renderers driven.RendererRegistry
	artifacts driven.ArtifactStore
	settings  domain.Settings
	layout    domain.Layout
}

// NewReportService creates a report service.
// A nil content service falls back to built-in content only.
// Render and Generate return domain.ErrNotImplemented when their
// driven dependency is nil.
func NewReportService(
	content driving.ContentService,
	renderers driven.RendererRegistry,
	artifacts driven.ArtifactStore,
	settings domain.Settings,
) *ReportService {
	if content == nil {
		content = NewContentService(nil)
	}
	return &ReportService{
		content:   content,
		renderers: renderers,
		artifacts: artifacts,
		settings:  settings,
		layout:    domain.DefaultLayout(),
	}
}

// withLayout returns a copy of the service that renders with layout.
func (s *ReportService) withLayout(layout domain.Layout) *ReportService {
	cp := *s
	cp.layout = layout
	return &cp
}

// Attributes calculates the astrological attributes of a date.
func (s *ReportService) Attributes(date time.Time, hemisphere domain.Hemisphere) domain.Attributes {
	return astro.Calculate(date, s.hemisphere(hemisphere))
}

// Assemble builds the eight-section document for a date.
func (s *ReportService) Assemble(date time.Time, hemisphere domain.Hemisphere) *domain.ReportDocument {
	day := domain.CivilDate(date)
	attrs := s.Attributes(day, hemisphere)

	logger.Section("Assemble " + day.Format(domain.DateLayout))
	logger.Debug("day %d, mansion %d, phase %s, season %s", attrs.DayOfYear, attrs.Mansion, attrs.Phase, attrs.Season)

	content := s.content.Resolve(attrs)
	return &domain.ReportDocument{
		ID:         DocumentID(day, attrs.Hemisphere),
		Date:       day,
		Title:      reportTitle,
		Hemisphere: attrs.Hemisphere,
		Sections:   buildSections(day, attrs, content),
	}
}

// Render assembles the report and writes it in the requested format to w.
func (s *ReportService) Render(ctx context.Context, req domain.ReportRequest, w io.Writer) (*domain.ReportDocument, error) {
	renderer, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	doc := s.Assemble(req.Date, req.Hemisphere)
	if err := s.render(ctx, renderer, doc, w); err != nil {
		return nil, err
	}
	return doc, nil
}

// Generate assembles the report and writes it to a file. The artifact is
// written through the artifact store, so a failed render leaves no file.
func (s *ReportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.ReportResult, error) {
	if s.artifacts == nil {
		return nil, domain.ErrNotImplemented
	}
	renderer, err := s.prepare(req)
	if err != nil {
		return nil, err
	}

	doc := s.Assemble(req.Date, req.Hemisphere)
	path := req.OutputPath
	if path == "" {
		path = s.defaultPath(doc.Date, renderer.Extension())
	}

	err = s.artifacts.Write(ctx, path, func(w io.Writer) error {
		return s.render(ctx, renderer, doc, w)
	})
	if err != nil {
		logger.Error("report for %s not written: %v", doc.Date.Format(domain.DateLayout), err)
		return nil, err
	}
	logger.Info("wrote %s report to %s", renderer.Format(), path)

	return &domain.ReportResult{
		Path:     path,
		Format:   renderer.Format(),
		Document: doc,
	}, nil
}

// DefaultPath returns <outputDir>/<prefix>_YYYYMMDD.<ext>.
func (s *ReportService) DefaultPath(date time.Time, format domain.Format) string {
	ext := string(format)
	if s.renderers != nil {
		if r, err := s.renderers.Get(format); err == nil {
			ext = r.Extension()
		}
	}
	return s.defaultPath(domain.CivilDate(date), ext)
}

func (s *ReportService) defaultPath(date time.Time, ext string) string {
	prefix := s.settings.FilePrefix
	if prefix == "" {
		prefix = domain.DefaultFilePrefix
	}
	name := fmt.Sprintf("%s_%s.%s", prefix, date.Format(fileDateLayout), ext)
	return filepath.Join(s.settings.OutputDir, name)
}

// prepare validates a request and selects its renderer.
func (s *ReportService) prepare(req domain.ReportRequest) (driven.Renderer, error) {
	if s.renderers == nil {
		return nil, domain.ErrNotImplemented
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrInvalidDate)
	}
	if req.Hemisphere != "" && !req.Hemisphere.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidHemisphere, req.Hemisphere)
	}
	format := req.Format
	if format == "" {
		format = s.settings.Format
	}
	if format == "" {
		format = domain.FormatPDF
	}
	return s.renderers.Get(format)
}

func (s *ReportService) render(ctx context.Context, r driven.Renderer, doc *domain.ReportDocument, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.Render(ctx, doc, s.layout, w); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrRenderFailed, r.Format(), err)
	}
	return nil
}

func (s *ReportService) hemisphere(h domain.Hemisphere) domain.Hemisphere {
	if h.IsValid() {
		return h
	}
	if s.settings.Hemisphere.IsValid() {
		return s.settings.Hemisphere
	}
	return domain.HemisphereSouth
}

// DocumentID returns the stable ID of the report for a day and hemisphere.
func DocumentID(date time.Time, hemisphere domain.Hemisphere) string {
	name := domain.CivilDate(date).Format(domain.DateLayout) + "/" + string(hemisphere)
	return uuid.NewSHA1(reportNamespace, []byte(name)).String()
}
