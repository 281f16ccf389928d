package entities

import "time"

// ReconciliationReport summarizes one reconcile run. MarkedPaid is the number of
// orders the run moved to paid.
type ReconciliationReport struct {
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Candidates int       `json:"candidates"`
	Eligible   int       `json:"eligible"`
	MarkedPaid int       `json:"marked_paid"`
	NotPaid    int       `json:"not_paid"`
	Failed     int       `json:"failed"`
	FailedIDs  []int     `json:"failed_order_ids,omitempty"`
}

// OrderPaidEvent is published after an order is marked paid.
type OrderPaidEvent struct {
	OrderID         int               `json:"order_id"`
	StoreID         int               `json:"store_id"`
	Reference       string            `json:"reference"`
	TransactionCode string            `json:"transaction_code"`
	Status          TransactionStatus `json:"transaction_status"`
	Timestamp       time.Time         `json:"timestamp"`
}
