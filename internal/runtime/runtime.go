package runtime

import "context"

// Pinger is any dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Runtime struct {
	DefinitionsLoaded bool
	ProfileStore      Pinger
}
