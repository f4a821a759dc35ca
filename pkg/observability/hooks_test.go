package observability

import (
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	h := NoopGridHooks{}
	h.OnBuildStart(2, 3)
	h.OnBuildComplete(6, time.Millisecond, nil)
	h.OnBind(1, 1, "xy", errors.New("boom"))
}

type recordingHooks struct {
	starts   int
	complete int
	binds    []string
	lastErr  error
}

func (r *recordingHooks) OnBuildStart(int, int) { r.starts++ }

func (r *recordingHooks) OnBuildComplete(_ int, _ time.Duration, err error) {
	r.complete++
	r.lastErr = err
}

func (r *recordingHooks) OnBind(_, _ int, kind string, _ error) {
	r.binds = append(r.binds, kind)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Grid() should return NoopGridHooks by default")
	}

	rec := &recordingHooks{}
	SetGridHooks(rec)
	if Grid() != GridHooks(rec) {
		t.Fatal("Grid() should return the registered hooks")
	}

	Grid().OnBuildStart(1, 1)
	Grid().OnBind(1, 1, "polar", nil)
	Grid().OnBuildComplete(1, time.Millisecond, nil)

	if rec.starts != 1 || rec.complete != 1 || len(rec.binds) != 1 || rec.binds[0] != "polar" {
		t.Errorf("unexpected recorded events: %+v", rec)
	}

	// nil registration is ignored
	SetGridHooks(nil)
	if Grid() != GridHooks(rec) {
		t.Error("SetGridHooks(nil) should keep the current hooks")
	}

	Reset()
	if _, ok := Grid().(NoopGridHooks); !ok {
		t.Error("Reset() should restore NoopGridHooks")
	}
}
