package impl

import (
	"context"
	"log/slog"
	"math"

	"wander/internal/domain/entity"
	"wander/internal/usecase"

	"github.com/paulmach/orb/geo"
	"golang.org/x/sync/errgroup"
)

const (
	metersPerMile            = 1609.344
	defaultEnrichmentWorkers = 4
)

// DistanceMiles returns the great-circle distance between two coordinates, rounded to a tenth of a mile.
func DistanceMiles(from, to entity.Coordinate) float64 {
	meters := geo.DistanceHaversine(from.Point(), to.Point())

	return math.Round(meters/metersPerMile*10) / 10
}

// enricher resolves coordinates, distances and icons for a generated batch.
type enricher struct {
	geocodes usecase.GeocodeCache
	workers  int
	logger   *slog.Logger
}

func newEnricher(geocodes usecase.GeocodeCache, workers int, logger *slog.Logger) *enricher {
	if workers <= 0 {
		workers = defaultEnrichmentWorkers
	}

	return &enricher{geocodes: geocodes, workers: workers, logger: logger}
}

// Enrich returns enriched copies of the batch in the same order.
// A failed lookup keeps the model-reported distance for that record only.
func (e *enricher) Enrich(ctx context.Context, batch []entity.Activity, anchor *entity.Coordinate) []entity.Activity {
	enriched := make([]entity.Activity, len(batch))

	var group errgroup.Group
	group.SetLimit(e.workers)

	for i := range batch {
		group.Go(func() error {
			activity := batch[i].Clone()
			activity.Icons = PickIcons(&activity)

			coordinate, err := e.geocodes.Resolve(ctx, activity.FullAddress())
			if err != nil {
				e.logger.Debug("Keeping reported distance",
					slog.String("activity", activity.Name),
					slog.Any("error", err))
				enriched[i] = activity

				return nil
			}

			activity.SetCoordinate(coordinate)
			if anchor != nil {
				activity.Distance = DistanceMiles(*anchor, coordinate)
			}
			enriched[i] = activity

			return nil
		})
	}

	// Workers never fail; lookups degrade per record.
	_ = group.Wait()

	return enriched
}
