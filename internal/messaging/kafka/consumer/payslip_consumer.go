package consumer

import (
	"context"
	"encoding/json"

	"github.com/shilpmis/saral-payroll/internal/events"
	"github.com/shilpmis/saral-payroll/internal/payrun"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func ConsumePayslipRequested(
	ctx context.Context,
	reader *kafkago.Reader,
	payRunService payrun.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip")
	log.Info("payslip consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip consumer stopped")
				return
			}
			log.Error("fetch payslip message failed", zap.Error(err))
			continue
		}

		var event events.PayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payRunService.GeneratePayslip(ctx, event.SchoolID, event.PayRunID)
		if err != nil {
			log.Error("generate payslip failed",
				zap.Int64("pay_run_id", event.PayRunID),
				zap.String("school_id", event.SchoolID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip message failed", zap.Error(err))
			continue
		}

		log.Info("payslip generated",
			zap.Int64("pay_run_id", event.PayRunID),
			zap.String("school_id", event.SchoolID),
		)
	}
}
