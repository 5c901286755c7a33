package obs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Time logs the duration of an operation when the returned func runs,
// picking the error state from the pointed-to error at defer time.
//
//	defer obs.Time(ctx, "dispatch.plan")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		evt := log.Info()
		if errp != nil && *errp != nil {
			evt = log.Error().Err(*errp)
		}
		evt.Str("req_id", reqID).Str("op", name).Int64("dur_ms", dur.Milliseconds()).Send()
	}
}
