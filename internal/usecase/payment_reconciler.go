package usecase

import (
	"context"
	"fmt"
	"log"
	"payment_gateway/internal/domain/entities"
	"payment_gateway/internal/usecase/interfaces"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"golang.org/x/sync/errgroup"
)

var reconcilerTracer = otel.Tracer("usecase/payment-reconciler")

// IPaymentReconciler polls the gateway for orders awaiting payment and marks the
// settled ones as paid. It is driven by an external scheduler, one run per tick.
//
// Overlapping runs are not prevented here: the host MarkOrderAsPaid must be
// idempotent or serialized per order by the caller.
type IPaymentReconciler interface {
	Reconcile(ctx context.Context) (entities.ReconciliationReport, error)
}

type PaymentReconciler struct {
	orders         interfaces.IOrderReader
	mutator        interfaces.IOrderMutator
	gateway        interfaces.IPaymentGateway
	publisher      interfaces.IOrderEventPublisher
	settings       SettingsSource
	requestTimeout time.Duration
	concurrency    int
	metrics        reconcileMetrics
}

var _ IPaymentReconciler = (*PaymentReconciler)(nil)

// NewPaymentReconciler builds a reconciler. publisher may be nil.
// concurrency bounds the parallel gateway searches of one run.
func NewPaymentReconciler(orders interfaces.IOrderReader, mutator interfaces.IOrderMutator, gateway interfaces.IPaymentGateway, publisher interfaces.IOrderEventPublisher, settings SettingsSource, requestTimeout time.Duration, concurrency int) *PaymentReconciler {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &PaymentReconciler{
		orders:         orders,
		mutator:        mutator,
		gateway:        gateway,
		publisher:      publisher,
		settings:       settings,
		requestTimeout: requestTimeout,
		concurrency:    concurrency,
		metrics:        newReconcileMetrics(),
	}
}

type lookupResult struct {
	tx  *entities.TransactionSummary
	err error
}

func (r *PaymentReconciler) Reconcile(ctx context.Context) (entities.ReconciliationReport, error) {
	ctx, span := reconcilerTracer.Start(ctx, "payment.reconcile")
	defer span.End()

	report := entities.ReconciliationReport{StartedAt: time.Now().UTC()}
	defer func() {
		r.metrics.duration.Record(ctx, time.Since(report.StartedAt).Seconds())
	}()

	setting := r.settings.Current()
	credentials := setting.Credentials()
	if err := ValidateCredentials(credentials); err != nil {
		log.Printf("[reconcile][usecase] aborting run: invalid credentials err=%v", err)
		span.SetStatus(codes.Error, "invalid credentials")
		return report, err
	}

	log.Printf("[reconcile][usecase] run start store_id=%d payment_method=%s statuses=%v", setting.StoreID, setting.PaymentMethodSystemName, setting.PendingStatuses)
	candidates, err := r.orders.SearchOrders(ctx, entities.OrderSearchFilter{
		StoreID:                 setting.StoreID,
		PaymentMethodSystemName: setting.PaymentMethodSystemName,
		PaymentStatuses:         setting.PendingStatuses,
	})
	if err != nil {
		log.Printf("[reconcile][usecase] search pending orders failed err=%v", err)
		span.RecordError(err)
		return report, fmt.Errorf("search pending orders: %w", err)
	}
	report.Candidates = len(candidates)

	eligible := make([]entities.Order, 0, len(candidates))
	for _, order := range candidates {
		ok, err := r.mutator.CanMarkOrderAsPaid(ctx, order)
		if err != nil {
			log.Printf("[reconcile][usecase] eligibility check failed order_id=%d err=%v", order.ID, err)
			r.fail(ctx, &report, order.ID)
			continue
		}
		if ok {
			eligible = append(eligible, order)
		}
	}
	report.Eligible = len(eligible)

	results := r.lookup(ctx, credentials, eligible, setting.TieBreak)
	if err := ctx.Err(); err != nil {
		log.Printf("[reconcile][usecase] run cancelled before marking err=%v", err)
		return report, err
	}

	for i, order := range eligible {
		res := results[i]
		switch {
		case res.err != nil:
			log.Printf("[reconcile][usecase] transaction search failed order_id=%d err=%v", order.ID, res.err)
			r.fail(ctx, &report, order.ID)
		case res.tx == nil:
			log.Printf("[reconcile][usecase] no transaction order_id=%d", order.ID)
			report.NotPaid++
		case !res.tx.Status.IsSettled():
			log.Printf("[reconcile][usecase] not settled order_id=%d status=%s", order.ID, res.tx.Status)
			report.NotPaid++
		default:
			if err := r.mutator.MarkOrderAsPaid(ctx, order); err != nil {
				log.Printf("[reconcile][usecase] mark as paid failed order_id=%d err=%v", order.ID, err)
				r.fail(ctx, &report, order.ID)
				continue
			}
			report.MarkedPaid++
			r.metrics.markedPaid.Add(ctx, 1)
			log.Printf("[reconcile][usecase] marked paid order_id=%d transaction=%s status=%s", order.ID, res.tx.Code, res.tx.Status)
			r.publish(ctx, setting.StoreID, order, *res.tx)
		}
	}

	report.FinishedAt = time.Now().UTC()
	span.SetAttributes(
		attribute.Int("reconcile.candidates", report.Candidates),
		attribute.Int("reconcile.marked_paid", report.MarkedPaid),
		attribute.Int("reconcile.failed", report.Failed),
	)
	log.Printf("[reconcile][usecase] run success candidates=%d eligible=%d marked_paid=%d not_paid=%d failed=%d",
		report.Candidates, report.Eligible, report.MarkedPaid, report.NotPaid, report.Failed)
	return report, nil
}

// lookup searches the gateway for every order concurrently. Each search is its
// own failure boundary; results are positional.
func (r *PaymentReconciler) lookup(ctx context.Context, credentials entities.Credentials, orders []entities.Order, tieBreak entities.TieBreak) []lookupResult {
	results := make([]lookupResult, len(orders))

	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, order := range orders {
		g.Go(func() error {
			tx, err := r.findTransaction(ctx, credentials, entities.OrderReference(order.ID), tieBreak)
			results[i] = lookupResult{tx: tx, err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func (r *PaymentReconciler) findTransaction(ctx context.Context, credentials entities.Credentials, reference string, tieBreak entities.TieBreak) (*entities.TransactionSummary, error) {
	if r.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.requestTimeout)
		defer cancel()
	}

	txs, err := r.gateway.SearchTransactionsByReference(ctx, credentials, reference)
	if err != nil {
		return nil, gatewayError("search transactions", err)
	}
	return pickTransaction(txs, tieBreak), nil
}

// pickTransaction resolves several transactions for one reference. The gateway
// lists the newest attempt first, so "first" follows the latest checkout attempt;
// "latest" picks the most recent event instead.
func pickTransaction(txs []entities.TransactionSummary, tieBreak entities.TieBreak) *entities.TransactionSummary {
	if len(txs) == 0 {
		return nil
	}
	picked := txs[0]
	if tieBreak == entities.TieBreakLatest {
		for _, tx := range txs[1:] {
			if tx.LastEventDate.After(picked.LastEventDate) {
				picked = tx
			}
		}
	}
	return &picked
}

func (r *PaymentReconciler) fail(ctx context.Context, report *entities.ReconciliationReport, orderID int) {
	report.Failed++
	report.FailedIDs = append(report.FailedIDs, orderID)
	r.metrics.failures.Add(ctx, 1)
}

func (r *PaymentReconciler) publish(ctx context.Context, storeID int, order entities.Order, tx entities.TransactionSummary) {
	if r.publisher == nil {
		return
	}
	event := entities.OrderPaidEvent{
		OrderID:         order.ID,
		StoreID:         storeID,
		Reference:       entities.OrderReference(order.ID),
		TransactionCode: tx.Code,
		Status:          tx.Status,
		Timestamp:       time.Now().UTC(),
	}
	if err := r.publisher.PublishOrderPaid(ctx, event); err != nil {
		log.Printf("[reconcile][usecase] publish order paid failed order_id=%d err=%v", order.ID, err)
	}
}

type reconcileMetrics struct {
	markedPaid metric.Int64Counter
	failures   metric.Int64Counter
	duration   metric.Float64Histogram
}

func newReconcileMetrics() reconcileMetrics {
	meter := otel.Meter("usecase/payment-reconciler")
	fallback := noop.Meter{}

	markedPaid, err := meter.Int64Counter("reconcile.orders.marked_paid",
		metric.WithDescription("Orders marked as paid by reconciliation"))
	if err != nil {
		log.Printf("[reconcile][usecase] metric init failed name=reconcile.orders.marked_paid err=%v", err)
		markedPaid, _ = fallback.Int64Counter("reconcile.orders.marked_paid")
	}
	failures, err := meter.Int64Counter("reconcile.orders.failed",
		metric.WithDescription("Orders skipped by reconciliation because of an error"))
	if err != nil {
		log.Printf("[reconcile][usecase] metric init failed name=reconcile.orders.failed err=%v", err)
		failures, _ = fallback.Int64Counter("reconcile.orders.failed")
	}
	duration, err := meter.Float64Histogram("reconcile.run.duration",
		metric.WithDescription("Duration of a reconcile run"), metric.WithUnit("s"))
	if err != nil {
		log.Printf("[reconcile][usecase] metric init failed name=reconcile.run.duration err=%v", err)
		duration, _ = fallback.Float64Histogram("reconcile.run.duration")
	}
	return reconcileMetrics{markedPaid: markedPaid, failures: failures, duration: duration}
}
