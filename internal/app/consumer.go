package app

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-hris-compliance/internal/bootstrap"
	"go-hris-compliance/internal/compliance"
	"go-hris-compliance/internal/config"
	"go-hris-compliance/internal/employee"
	"go-hris-compliance/internal/events"
	"go-hris-compliance/internal/messaging/kafka/consumer"
	"go-hris-compliance/internal/minimumwage"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connectDatabase(cfg)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.Kafka.Broker == "" {
		return errors.New("KAFKA_BROKER is required")
	}

	complianceService := compliance.NewService(
		employee.NewRepository(gormDB),
		minimumwage.NewRepository(gormDB),
		compliance.KeywordClassifier{},
		cfg.Compliance.DefaultState,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          events.MinimumWageChangedTopic,
		GroupID:        cfg.Kafka.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMinimumWageChanged(
		ctx,
		reader,
		complianceService,
		bootstrap.NewStdoutAuditLogger(logger),
		logger,
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
