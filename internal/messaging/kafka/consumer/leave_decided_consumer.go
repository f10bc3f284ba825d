package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hr-portal/internal/events"
	"hr-portal/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeLeaveDecided emails employees about leave decisions until ctx is
// cancelled. A message is committed once handled or once it is known to be
// undecodable; delivery failures leave it uncommitted for redelivery.
func ConsumeLeaveDecided(
	ctx context.Context,
	reader MessageReader,
	sender notification.Sender,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
	log.Info("leave decided consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decided consumer stopped")
				return
			}
			log.Error("fetch leave decided message failed", zap.Error(err))
			continue
		}

		if err := HandleLeaveDecided(ctx, sender, msg); err != nil {
			var decodeErr *DecodeError
			if errors.As(err, &decodeErr) {
				log.Error("decode leave decided event failed", zap.Error(err))
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("notify leave decision failed",
				zap.String("key", string(msg.Key)),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decided message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notified", zap.String("leave_id", string(msg.Key)))
	}
}

type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode leave decided event: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HandleLeaveDecided decodes one message and sends the decision email.
func HandleLeaveDecided(ctx context.Context, sender notification.Sender, msg kafkago.Message) error {
	var event events.LeaveDecidedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return &DecodeError{Err: err}
	}
	if event.EmployeeEmail == "" {
		return &DecodeError{Err: fmt.Errorf("leave %s has no employee email", event.LeaveID)}
	}

	return sender.Send(ctx, notification.LeaveDecisionMessage(
		event.EmployeeName,
		event.EmployeeEmail,
		event.Status,
		event.StartDate,
		event.EndDate,
	))
}
