package scraper

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"albumfeed/internal/reconcile"
	"albumfeed/pkg/models"
)

// Source is implemented by each review site. A source fetches its own
// listing page and maps every item it can confidently read into a
// RawReview; anything else is dropped and counted in Extraction.Skipped.
type Source interface {
	Name() string
	FetchAll(ctx context.Context) (Extraction, error)
}

// Extraction is what one source produced during a run.
type Extraction struct {
	Reviews []models.RawReview
	Skipped int // items that looked like reviews but could not be parsed
}

// Report describes one fetch-and-merge run.
//
// Failed lists sources whose page could not be fetched. It is only used
// for logging: the rendered output does not tell a failed source apart from
// a source with no qualifying albums.
type Report struct {
	RunID   string
	Reviews []models.CanonicalReview
	Skipped map[string]int
	Failed  []string
}

// Aggregator fetches Source A, then Source B, and reconciles the two lists.
type Aggregator struct {
	A   Source
	B   Source
	Log *slog.Logger
}

// NewAggregator creates a new Aggregator over the two sources.
func NewAggregator(a, b Source, log *slog.Logger) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	return &Aggregator{A: a, B: b, Log: log}
}

// FetchAndMerge runs one aggregation. It never fails: a source that cannot
// be fetched is logged and contributes no records.
func (a *Aggregator) FetchAndMerge(ctx context.Context) Report {
	rep := Report{
		RunID:   uuid.NewString(),
		Skipped: make(map[string]int, 2),
	}
	log := a.Log.With("run_id", rep.RunID)

	rawA := a.fetch(ctx, log, a.A, &rep)
	rawB := a.fetch(ctx, log, a.B, &rep)

	rep.Reviews = reconcile.Reconcile(rawA, rawB)

	trusted := 0
	for _, r := range rep.Reviews {
		if r.Trusted {
			trusted++
		}
	}
	log.Info("merged reviews", "total", len(rep.Reviews), "trusted", trusted, "failed_sources", len(rep.Failed))
	return rep
}

func (a *Aggregator) fetch(ctx context.Context, log *slog.Logger, src Source, rep *Report) []models.RawReview {
	if src == nil {
		return nil
	}
	name := src.Name()
	log.Debug("fetching", "source", name)

	ex, err := src.FetchAll(ctx)
	if err != nil {
		log.Error("source fetch failed", "source", name, "error", err)
		rep.Failed = append(rep.Failed, name)
		return nil
	}

	// Reconcile does not validate; keep records without identity out of it.
	reviews := make([]models.RawReview, 0, len(ex.Reviews))
	for _, r := range ex.Reviews {
		if r.Title == "" || r.Artist == "" {
			ex.Skipped++
			continue
		}
		reviews = append(reviews, r)
	}

	rep.Skipped[name] = ex.Skipped
	log.Info("fetched reviews", "source", name, "reviews", len(reviews), "skipped", ex.Skipped)
	return reviews
}
