package consumer

import (
	"context"
	"encoding/json"

	"go-hris-compliance/internal/bootstrap"
	"go-hris-compliance/internal/compliance"
	"go-hris-compliance/internal/events"
	"go-hris-compliance/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const AuditActionComplianceReevaluated = "COMPLIANCE_REEVALUATED"

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeMinimumWageChanged re-runs the compliance report for the state of
// every changed configuration, and for the state it moved away from, and
// records one audit entry per state. A message whose evaluation fails is
// logged and left uncommitted, but the next commit on the partition moves
// the group offset past it, so it is dropped rather than redelivered.
func ConsumeMinimumWageChanged(
	ctx context.Context,
	reader MessageReader,
	complianceService compliance.Service,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.minimum_wage")
	log.Info("minimum wage consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("minimum wage consumer stopped")
				return
			}
			log.Error("fetch minimum wage message failed", zap.Error(err))
			continue
		}

		var event events.MinimumWageChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode minimum wage event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := ctx
		if rid := headerValue(msg, "request_id"); rid != "" {
			msgCtx = contextutil.WithRequestID(ctx, rid)
		}

		if err := reevaluate(msgCtx, event, complianceService, auditLogger); err != nil {
			log.Error("re-evaluate compliance failed",
				zap.String("configuration_id", event.ConfigurationID),
				zap.String("state", event.State),
				zap.String("previous_state", event.PreviousState),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit minimum wage message failed", zap.Error(err))
			continue
		}

		log.Info("compliance re-evaluated",
			zap.String("event_type", event.EventType),
			zap.String("configuration_id", event.ConfigurationID),
			zap.String("state", event.State),
		)
	}
}

func reevaluate(
	ctx context.Context,
	event events.MinimumWageChangedEvent,
	complianceService compliance.Service,
	auditLogger bootstrap.AuditLogger,
) error {
	states := []string{event.State}
	if event.PreviousState != "" && event.PreviousState != event.State {
		states = append(states, event.PreviousState)
	}

	summaries := make([]compliance.ReportSummary, 0, len(states))
	for _, state := range states {
		records, err := complianceService.GetReport(ctx, compliance.ReportFilter{State: state})
		if err != nil {
			return err
		}
		summaries = append(summaries, compliance.Summarize(records))
	}

	for i, summary := range summaries {
		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  AuditActionComplianceReevaluated,
			Message: "Minimum wage compliance re-evaluated after configuration change",
			Meta: map[string]any{
				"event_type":       event.EventType,
				"configuration_id": event.ConfigurationID,
				"state":            states[i],
				"category":         event.Category,
				"changed_by":       event.ChangedBy,
				"employees":        summary.Total,
				"compliant":        summary.Compliant,
				"non_compliant":    summary.NonCompliant,
				"unconfigured":     summary.Unconfigured,
			},
		})
	}
	return nil
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
