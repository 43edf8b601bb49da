package runtime

import (
	"context"
	"testing"
)

// The Runtime type is a simple data holder; this test ensures
// its fields can be set and read as expected.
type fakeStore struct{}

func (f *fakeStore) Ping(ctx context.Context) error { return nil }

var _ Pinger = (*fakeStore)(nil)

func TestRuntimeFields(t *testing.T) {
	rt := &Runtime{DefinitionsLoaded: true, ProfileStore: &fakeStore{}}

	if !rt.DefinitionsLoaded {
		t.Fatalf("DefinitionsLoaded should be true")
	}
	if rt.ProfileStore == nil {
		t.Fatalf("ProfileStore should not be nil")
	}
	if err := rt.ProfileStore.Ping(context.Background()); err != nil {
		t.Fatalf("Ping should succeed: %v", err)
	}
}
