package observability

import (
	"context"
	"testing"
	"time"
)

type recordingPipelineHooks struct {
	NoopPipelineHooks
	normalizeStarts int
	layoutStarts    int
	renderStarts    int
}

func (h *recordingPipelineHooks) OnNormalizeStart(context.Context, string, int) {
	h.normalizeStarts++
}
func (h *recordingPipelineHooks) OnLayoutStart(context.Context, int) { h.layoutStarts++ }
func (h *recordingPipelineHooks) OnRenderStart(context.Context, []string) {
	h.renderStarts++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses, sets int
}

func (h *recordingCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *recordingCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *recordingCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }

func TestDefaultHooksAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Pipeline().OnNormalizeStart(ctx, "topic", 6)
	Pipeline().OnNormalizeComplete(ctx, "topic", 6, false, time.Millisecond)
	Pipeline().OnLayoutStart(ctx, 5)
	Pipeline().OnLayoutComplete(ctx, 5, 0, time.Millisecond)
	Pipeline().OnRenderStart(ctx, []string{"svg"})
	Pipeline().OnRenderComplete(ctx, []string{"svg"}, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 128)
	HTTP().OnRequest(ctx, "POST", "/generate")
	HTTP().OnResponse(ctx, "POST", "/generate", 200, time.Millisecond)
}

func TestSetPipelineHooks(t *testing.T) {
	defer Reset()

	h := &recordingPipelineHooks{}
	SetPipelineHooks(h)

	ctx := context.Background()
	Pipeline().OnNormalizeStart(ctx, "topic", 6)
	Pipeline().OnLayoutStart(ctx, 5)
	Pipeline().OnRenderStart(ctx, []string{"svg", "png"})

	if h.normalizeStarts != 1 || h.layoutStarts != 1 || h.renderStarts != 1 {
		t.Errorf("hooks not invoked: normalize=%d layout=%d render=%d",
			h.normalizeStarts, h.layoutStarts, h.renderStarts)
	}
}

func TestSetCacheHooks(t *testing.T) {
	defer Reset()

	h := &recordingCacheHooks{}
	SetCacheHooks(h)

	ctx := context.Background()
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "layout")
	Cache().OnCacheSet(ctx, "artifact", 64)

	if h.hits != 1 || h.misses != 1 || h.sets != 1 {
		t.Errorf("cache hooks not invoked: hits=%d misses=%d sets=%d", h.hits, h.misses, h.sets)
	}
}

func TestSetNilHooksKeepsDefaults(t *testing.T) {
	Reset()
	SetPipelineHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("nil pipeline hooks should keep the no-op default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("nil cache hooks should keep the no-op default")
	}
}

func TestReset(t *testing.T) {
	SetPipelineHooks(&recordingPipelineHooks{})
	SetCacheHooks(&recordingCacheHooks{})
	Reset()

	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset should restore no-op pipeline hooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset should restore no-op cache hooks")
	}
}
