package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/shilpmis/saral-payroll/internal/catalog"
	"github.com/shilpmis/saral-payroll/internal/events"
	"github.com/shilpmis/saral-payroll/internal/messaging/kafka/consumer"
	"github.com/shilpmis/saral-payroll/internal/payrun"
	"github.com/shilpmis/saral-payroll/internal/shared/connection"
	"github.com/shilpmis/saral-payroll/internal/template"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer drains payslip generation requests. PDF rendering stays out
// of the request path; mark-paid only queues the event.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}

	catalogRepo := catalog.NewRepository(gormDB)
	catalogService := catalog.NewService(sqlDB, catalogRepo, redisClient)
	templateRepo := template.NewRepository(gormDB)
	payRunRepo := payrun.NewRepository(gormDB)
	payRunService := payrun.NewService(sqlDB, payRunRepo, templateRepo, catalogService, basisComponentIDFromEnv())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.PayslipRequestedTopic,
		GroupID:        "saral-payroll-payslip",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumePayslipRequested(ctx, reader, payRunService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
