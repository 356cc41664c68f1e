package publish

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"easel/internal/catalog"
	"easel/internal/config"
	"easel/internal/fileutil"
	"easel/internal/history"
	"easel/internal/logging"
	"easel/internal/render"
	"easel/internal/splice"
)

// Publisher drives one load → validate → render → splice run.
type Publisher struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *history.Store
}

// Options adjusts a single run.
type Options struct {
	// DryRun renders and reports without writing targets, backups, or
	// history.
	DryRun bool
	// CSVPath overrides the configured catalog path when non-empty.
	CSVPath string
}

// TargetResult describes what happened to one target page.
type TargetResult struct {
	Path          string
	Backup        string
	Updated       bool
	StylesPatched bool
	ScriptPatched bool
}

// Summary describes a completed (or dry) run.
type Summary struct {
	RunID          string
	DryRun         bool
	TotalRecords   int
	FeaturedCount  int
	CategoryCounts map[string]int
	Targets        []TargetResult
	Warnings       []string
}

// New constructs a publisher. logger may be nil; store may be nil when
// history is disabled.
func New(cfg *config.Config, logger *slog.Logger, store *history.Store) *Publisher {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Publisher{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "publish")),
		store:  store,
	}
}

// Run executes the pipeline once. On validation failure every target is
// left byte-identical to its pre-run state; on a mid-run target failure,
// targets already rewritten stay rewritten and the rest are not touched.
func (p *Publisher) Run(ctx context.Context, opts Options) (*Summary, error) {
	started := time.Now().UTC()
	summary := &Summary{
		RunID:          uuid.NewString(),
		DryRun:         opts.DryRun,
		CategoryCounts: make(map[string]int),
	}
	logger := p.logger.With(slog.String("run_id", summary.RunID))

	if !opts.DryRun {
		if err := p.cfg.EnsureDirectories(); err != nil {
			return nil, err
		}
		lock := flock.New(p.cfg.LockPath())
		ok, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire run lock: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w (lock: %s)", ErrLocked, p.cfg.LockPath())
		}
		defer func() { _ = lock.Unlock() }()
	}

	csvPath := p.cfg.Paths.CSVPath
	if opts.CSVPath != "" {
		csvPath = opts.CSVPath
	}

	records, err := catalog.Load(csvPath, p.cfg.Gallery.Affirmative)
	if err != nil {
		p.recordRun(ctx, summary, started, history.StatusFailed, err)
		return nil, err
	}
	logger.Info("loaded catalog", slog.String("path", csvPath), slog.Int("records", len(records)))

	if len(records) == 0 {
		err := fmt.Errorf("%w: catalog %s contains no records", ErrValidation, csvPath)
		p.recordRun(ctx, summary, started, history.StatusValidationFailed, err)
		return nil, err
	}

	summary.TotalRecords = len(records)
	for _, rec := range records {
		if rec.Featured {
			summary.FeaturedCount++
		}
		if p.cfg.IsCategory(rec.Location) {
			summary.CategoryCounts[rec.Location]++
		}
	}

	result := catalog.Validate(p.cfg, records)
	for _, warning := range result.Warnings() {
		text := warning.String()
		summary.Warnings = append(summary.Warnings, text)
		logger.Warn("validation warning", slog.String("detail", text))
	}
	if result.Failed() {
		for _, violation := range result.Errors() {
			logger.Error("validation violation", slog.String("detail", violation.String()))
		}
		err := fmt.Errorf("%w: %d violation(s)", ErrValidation, len(result.Errors()))
		p.recordRun(ctx, summary, started, history.StatusValidationFailed, err)
		return nil, err
	}
	logger.Info("catalog validated", slog.Int("records", len(records)))

	renderer, err := render.New(p.cfg)
	if err != nil {
		p.recordRun(ctx, summary, started, history.StatusFailed, err)
		return nil, err
	}
	frag, err := renderer.Render(records)
	if err != nil {
		p.recordRun(ctx, summary, started, history.StatusFailed, err)
		return nil, err
	}
	if frag.FeaturedEmpty {
		text := "no featured records; featured section omitted"
		summary.Warnings = append(summary.Warnings, text)
		logger.Warn(text)
	}
	sections := frag.Sections()

	for _, target := range p.cfg.Targets {
		if err := ctx.Err(); err != nil {
			p.recordRun(ctx, summary, started, history.StatusFailed, err)
			return summary, err
		}
		res, err := p.publishTarget(logger, target, sections, renderer, opts.DryRun)
		if err != nil {
			// Targets already rewritten stay rewritten; the failing one
			// and everything after it are untouched.
			p.recordRun(ctx, summary, started, history.StatusFailed, err)
			return summary, err
		}
		summary.Targets = append(summary.Targets, res)
		if res.Updated {
			logger.Info("target updated",
				slog.String("path", res.Path),
				slog.String("backup", res.Backup),
				slog.Bool("styles_patched", res.StylesPatched),
				slog.Bool("script_patched", res.ScriptPatched))
		}
	}

	p.recordRun(ctx, summary, started, history.StatusSucceeded, nil)
	return summary, nil
}

func (p *Publisher) publishTarget(logger *slog.Logger, target config.Target, sections string, renderer *render.Renderer, dryRun bool) (TargetResult, error) {
	res := TargetResult{Path: target.Path}

	data, err := os.ReadFile(target.Path)
	if err != nil {
		return res, fmt.Errorf("read target %s: %w", target.Path, err)
	}

	doc, err := splice.Replace(string(data), target.StartAnchor, target.EndAnchor, sections)
	if err != nil {
		return res, fmt.Errorf("target %s: %w", target.Path, err)
	}

	if target.ApplyStyles {
		var outcome splice.PatchOutcome
		doc, outcome = splice.InsertAfter(doc, p.cfg.Gallery.StyleMarker, p.cfg.Gallery.StyleGuard, render.StyleBlock)
		res.StylesPatched = outcome == splice.PatchApplied
		if outcome == splice.PatchMarkerMissing {
			logger.Warn("style insertion marker not found; styles not added",
				slog.String("path", target.Path))
		}
	}
	if target.ApplyScript {
		var outcome splice.PatchOutcome
		doc, outcome = splice.InsertBefore(doc, p.cfg.Gallery.ScriptMarker, p.cfg.Gallery.ScriptGuard, renderer.ScriptBlock())
		res.ScriptPatched = outcome == splice.PatchApplied
		if outcome == splice.PatchMarkerMissing {
			logger.Warn("script insertion marker not found; script not added",
				slog.String("path", target.Path))
		}
	}

	if dryRun {
		return res, nil
	}

	res.Backup = p.cfg.BackupPath(target.Path)
	if err := fileutil.CopyFile(target.Path, res.Backup); err != nil {
		return res, fmt.Errorf("backup %s: %w", target.Path, err)
	}
	if err := fileutil.WriteFileAtomic(target.Path, []byte(doc), 0o644); err != nil {
		return res, fmt.Errorf("write %s: %w", target.Path, err)
	}
	res.Updated = true
	return res, nil
}

// recordRun logs the run to history. History is observability: failures
// here are warnings, never run failures.
func (p *Publisher) recordRun(ctx context.Context, summary *Summary, started time.Time, status string, runErr error) {
	if p.store == nil || summary.DryRun {
		return
	}

	run := history.Run{
		ID:             summary.RunID,
		StartedAt:      started,
		FinishedAt:     time.Now().UTC(),
		Status:         status,
		TotalRecords:   summary.TotalRecords,
		FeaturedCount:  summary.FeaturedCount,
		CategoryCounts: summary.CategoryCounts,
	}
	for _, target := range summary.Targets {
		if target.Updated {
			run.TargetsUpdated++
		}
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := p.store.RecordRun(ctx, run); err != nil {
		p.logger.Warn("failed to record publish run", slog.String("error", err.Error()))
	}
}
