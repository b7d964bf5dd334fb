package gles_test

import (
	"testing"

	"glcube/internal/gles"
	"glcube/internal/gles/glestest"
)

func TestCheckErrorDrainsQueue(t *testing.T) {
	ctx := glestest.New()
	ctx.PendingErrors = []uint32{0x0501, 0x0502}

	if got := gles.CheckError(ctx, "test"); got != 0x0501 {
		t.Errorf("first error: got 0x%x, want 0x501", got)
	}
	if len(ctx.PendingErrors) != 0 {
		t.Errorf("queue not drained: %v", ctx.PendingErrors)
	}
	if got := gles.CheckError(ctx, "test"); got != gles.NoError {
		t.Errorf("empty queue: got 0x%x, want NoError", got)
	}
}
