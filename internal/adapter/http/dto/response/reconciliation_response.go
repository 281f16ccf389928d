package response

import (
	"payment_gateway/internal/domain/entities"
	"time"
)

type ReconciliationReportResponse struct {
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
	DurationMillis int64     `json:"duration_ms"`
	Candidates     int       `json:"candidates"`
	Eligible       int       `json:"eligible"`
	MarkedPaid     int       `json:"marked_paid"`
	NotPaid        int       `json:"not_paid"`
	Failed         int       `json:"failed"`
	FailedOrderIDs []int     `json:"failed_order_ids"`
}

func FromReconciliationReport(r entities.ReconciliationReport) ReconciliationReportResponse {
	failed := r.FailedIDs
	if failed == nil {
		failed = []int{}
	}
	return ReconciliationReportResponse{
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
		DurationMillis: r.FinishedAt.Sub(r.StartedAt).Milliseconds(),
		Candidates:     r.Candidates,
		Eligible:       r.Eligible,
		MarkedPaid:     r.MarkedPaid,
		NotPaid:        r.NotPaid,
		Failed:         r.Failed,
		FailedOrderIDs: failed,
	}
}
