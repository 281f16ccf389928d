package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"payment_gateway/internal/app"
	"payment_gateway/internal/config"
	"syscall"

	"github.com/joho/godotenv"
)

// reconcile runs a single reconciliation pass and exits. It is meant to be
// triggered by an external scheduler such as a cron job.
// Exit code 1 means the run could not start or failed before any lookup;
// exit code 2 means the run finished but some orders failed.
func main() {
	os.Exit(reconcile(signal.NotifyContext))
}

type notifyFunc func(parent context.Context, signals ...os.Signal) (context.Context, context.CancelFunc)

// reconcile returns the exit code. Deferred cleanup runs here, before os.Exit.
func reconcile(notify notifyFunc) int {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[reconcile][cmd] .env not loaded err=%v", err)
	}

	ctx, stop := notify(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[reconcile][cmd] failed to load configuration err=%v", err)
		return 1
	}

	return run(ctx, cfg)
}

func run(ctx context.Context, cfg *config.Config) int {
	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Printf("[reconcile][cmd] startup failed err=%v", err)
		return 1
	}
	defer a.Close(context.Background())

	report, err := a.Reconciler.Reconcile(ctx)
	if err != nil {
		log.Printf("[reconcile][cmd] run failed err=%v", err)
		return 1
	}

	out, _ := json.MarshalIndent(report, "", "  ")
	log.Printf("[reconcile][cmd] report %s", out)

	if report.Failed > 0 {
		return 2
	}
	return 0
}
