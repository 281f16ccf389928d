package main

import (
	"context"
	"os"
	"os/signal"
	"testing"
)

func countingNotify(stops *int) notifyFunc {
	return func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc) {
		ctx, stop := signal.NotifyContext(parent, signals...)
		return ctx, func() {
			*stops++
			stop()
		}
	}
}

func TestReconcile_StopsSignalHandlingOnInvalidConfig(t *testing.T) {
	t.Setenv("STORE_ID", "0")

	var stops int
	if code := reconcile(countingNotify(&stops)); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stops != 1 {
		t.Fatalf("expected signal handling stopped once, got %d", stops)
	}
}
