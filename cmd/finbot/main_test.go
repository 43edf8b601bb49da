package main

import (
	"context"
	"errors"
	"testing"
)

type fakeRunner struct {
	ran bool
	err error
}

func (f *fakeRunner) Run(ctx context.Context) error {
	f.ran = true
	return f.err
}

var _ runner = (*fakeRunner)(nil)

func stub(t *testing.T, ctor func() (runner, error)) *bool {
	t.Helper()
	oldCtor, oldFatalf := appCtor, fatalf
	t.Cleanup(func() { appCtor = oldCtor; fatalf = oldFatalf })

	calledFatal := false
	appCtor = ctor
	fatalf = func(format string, v ...any) { calledFatal = true }
	return &calledFatal
}

func TestRun_Success(t *testing.T) {
	fr := &fakeRunner{}
	calledFatal := stub(t, func() (runner, error) { return fr, nil })

	run(context.Background())

	if !fr.ran {
		t.Fatalf("expected runner.Run to be called")
	}
	if *calledFatal {
		t.Fatalf("did not expect fatalf to be called")
	}
}

func TestRun_FatalOnCtorError(t *testing.T) {
	calledFatal := stub(t, func() (runner, error) { return nil, errors.New("boom") })

	run(context.Background())

	if !*calledFatal {
		t.Fatalf("expected fatalf to be called on ctor error")
	}
}

func TestRun_FatalOnRunError(t *testing.T) {
	fr := &fakeRunner{err: errors.New("oops")}
	calledFatal := stub(t, func() (runner, error) { return fr, nil })

	run(context.Background())

	if !*calledFatal {
		t.Fatalf("expected fatalf to be called on run error")
	}
}
