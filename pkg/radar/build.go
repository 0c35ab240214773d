package radar

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/radargen/radargen/pkg/radar/models"
	"github.com/radargen/radargen/pkg/radar/parser"
	"github.com/radargen/radargen/pkg/radar/source"
)

// Build runs the whole ingestion pipeline against src: fetch, column and
// content validation, sanitization, assembly. It returns a complete radar or
// the first failure; a partial radar is never returned. Failures classify
// through models.Classify.
func Build(ctx context.Context, src source.Source, opts Options) (*models.Radar, error) {
	log := opts.logger()
	desc := src.Descriptor()
	start := time.Now()

	res, err := src.Fetch(ctx)
	if err != nil {
		log.Warn("fetch failed",
			zap.String("kind", string(desc.Kind)),
			zap.Error(err))
		return nil, err
	}
	log.Debug("source fetched",
		zap.String("kind", string(desc.Kind)),
		zap.String("title", res.Title),
		zap.String("sheet", res.SheetName),
		zap.Int("columns", len(res.Columns)),
		zap.Int("rows", len(res.Rows)))

	if err := parser.ValidateColumns(res.Columns); err != nil {
		return nil, err
	}
	if err := parser.ValidateContent(res.Rows); err != nil {
		return nil, err
	}

	records := make([]parser.Record, len(res.Rows))
	for i, row := range res.Rows {
		records[i] = parser.Sanitize(row)
	}

	r, err := parser.Assemble(records, res.Title, res.SheetName, res.AlternativeSheetNames)
	if err != nil {
		return nil, err
	}

	log.Info("radar assembled",
		zap.String("title", r.Title),
		zap.String("sheet", r.CurrentSheetName),
		zap.Int("entries", len(records)),
		zap.Int("quadrants", len(r.Quadrants)),
		zap.Int("rings", len(r.Rings)),
		zap.Duration("elapsed", time.Since(start)))
	return r, nil
}
