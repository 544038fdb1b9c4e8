package cache

import (
	"context"
	"testing"

	"github.com/lshigami/admission/config"
	"github.com/lshigami/admission/internal/dto"
)

func TestPreviewKey(t *testing.T) {
	if got := previewKey(17); got != "admission:preview:17" {
		t.Fatalf("previewKey = %q", got)
	}
}

func TestNewPreviewCacheWithoutRedis(t *testing.T) {
	c := NewPreviewCache(&config.Config{})
	if _, ok := c.(NopPreviewCache); !ok {
		t.Fatalf("expected NopPreviewCache, got %T", c)
	}
	ctx := context.Background()
	c.Set(ctx, 1, &dto.PreviewData{Student: dto.UserProfile{Email: "a@b.c"}})
	if _, hit := c.Get(ctx, 1); hit {
		t.Fatal("nop cache must never hit")
	}
	c.Invalidate(ctx, 1)
}
