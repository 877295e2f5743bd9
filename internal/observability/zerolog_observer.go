package observability

import (
	"github.com/rs/zerolog"

	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
)

type ZerologObserver struct {
	logger zerolog.Logger
}

func NewZerologObserver(logger zerolog.Logger) *ZerologObserver {
	return &ZerologObserver{logger: logger}
}

func (z *ZerologObserver) Observe(evt Event) {
	var e *zerolog.Event
	switch evt.Stage {
	case StageFailed:
		e = z.logger.Error().Err(evt.Err).Str("kind", string(storeerr.Classify(evt.Err)))
	case StageStarted, StageDiscarded, StageSkipped:
		e = z.logger.Debug()
	default:
		e = z.logger.Info()
	}

	e = e.Str("component", evt.Component).
		Str("op", evt.Op).
		Str("stage", string(evt.Stage)).
		Uint64("seq", evt.Seq)

	if evt.CategoryID != nil {
		e = e.Int64("category_id", *evt.CategoryID)
	}
	if evt.ProductID != 0 {
		e = e.Int64("product_id", evt.ProductID)
	}
	if evt.Duration > 0 {
		e = e.Dur("duration", evt.Duration)
	}
	e.Msg("backend call " + string(evt.Stage))
}
