package dataset

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/0x0FACED/go-dbscan/pkg/config"
	"github.com/0x0FACED/go-dbscan/pkg/dbscan"
)

// FromConfig выбирает генератор по cfg.Kind.
// rng нужен только случайному набору; nil означает источник с затравкой из cfg.Seed.
func FromConfig(cfg config.Dataset, rng *rand.Rand) Source {
	switch cfg.Kind {
	case config.DatasetGrid:
		// сетка занимает [Min, Min+Width]x[Min, Min+Height]
		origin := dbscan.Point{X: cfg.Min, Y: cfg.Min}
		return func() ([]dbscan.Point, error) {
			return GridAt(cfg.Points, origin, cfg.Width, cfg.Height), nil
		}
	case config.DatasetCSV:
		return func() ([]dbscan.Point, error) {
			f, err := os.Open(cfg.File)
			if err != nil {
				return nil, fmt.Errorf("open dataset: %w", err)
			}
			defer f.Close()
			return ReadCSV(f)
		}
	case config.DatasetRandom, "":
		if rng == nil {
			rng = NewRand(cfg.Seed)
		}
		return func() ([]dbscan.Point, error) {
			return Random(rng, cfg.Points, cfg.Min, cfg.Max, cfg.Decimals), nil
		}
	default:
		return func() ([]dbscan.Point, error) {
			return nil, fmt.Errorf("unknown dataset kind %q", cfg.Kind)
		}
	}
}
