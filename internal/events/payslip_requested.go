package events

import "time"

const PayslipRequestedTopic = "payroll.payslip.requested.v1"

type PayslipRequestedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	PayRunID    int64     `json:"pay_run_id"`
	SchoolID    string    `json:"school_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
