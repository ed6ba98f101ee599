package checkin

import "context"

// Store persists the complete check-in data set. Implementations replace the
// whole data set on every Save; there are no partial writes.
//
// Load should tolerate a missing backing object (first run) by returning an
// empty data set. Implementations may also degrade unreadable content to an
// empty data set themselves; any error they do return is logged by the engine
// and likewise degraded, never surfaced to the user.
type Store interface {
	Load(ctx context.Context) (DataSet, error)
	Save(ctx context.Context, data DataSet) error
}
