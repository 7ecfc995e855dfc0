package events

import "time"

const PayRunPaidTopic = "payroll.payrun.paid.v1"

type PayRunPaidEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id"`
	PayRunID           int64     `json:"pay_run_id"`
	SchoolID           string    `json:"school_id"`
	StaffEnrollmentsID int64     `json:"staff_enrollments_id"`
	PayrollMonth       string    `json:"payroll_month"`
	PayrollYear        string    `json:"payroll_year"`
	NetPay             string    `json:"net_pay"`
	PaidBy             string    `json:"paid_by"`
	OccurredAt         time.Time `json:"occurred_at"`
}
