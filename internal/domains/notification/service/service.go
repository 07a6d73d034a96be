package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"sufra/config"
	"sufra/infras/kafka"
	"sufra/infras/otel"
	"sufra/infras/resend"
	"sufra/internal/domains/notification/model/dto"
	"sufra/shared/constant"
)

// Notification relays booking emails and fans mutation events out to the
// side channel. Relay failures belong to the caller; Notify failures are
// logged and swallowed, since notifications never block or roll back a
// booking mutation.
type Notification interface {
	Relay(ctx context.Context, req dto.EmailRequest) (*resend.Result, error)
	Notify(ctx context.Context, event dto.BookingEvent, email dto.EmailRequest)
}

type serviceImpl struct {
	cfg    *config.Config
	mailer resend.Client
	broker kafka.Client
	otel   otel.Otel
}

func New(cfg *config.Config, mailer resend.Client, broker kafka.Client, otel otel.Otel) Notification {
	return &serviceImpl{
		cfg:    cfg,
		mailer: mailer,
		broker: broker,
		otel:   otel,
	}
}

// Relay forwards one email through the transactional email API and hands
// the upstream result back verbatim.
func (s *serviceImpl) Relay(ctx context.Context, req dto.EmailRequest) (res *resend.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Relay")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.mailer.SendEmail(ctx, resend.Email{
		Subject: req.Subject,
		Body:    req.Body,
		To:      req.To,
	})
	if err != nil {
		log.Error().Err(err).Str("subject", req.Subject).Msg("failed to relay email")

		return nil, fmt.Errorf("failed to relay email: %w", err)
	}

	return res, nil
}

// Notify is the fire-and-forget path behind every successful mutation: one
// email plus one best-effort event on the broker. Nothing here is ever
// surfaced to the actor that triggered it.
func (s *serviceImpl) Notify(ctx context.Context, event dto.BookingEvent, email dto.EmailRequest) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".notification.Notify")
	defer scope.End()

	res, err := s.Relay(ctx, email)
	if err != nil {
		log.Error().Err(err).Str("slot_id", event.SlotID).Msg("booking notification email failed")
	} else if !res.OK() {
		log.Error().Int("status", res.StatusCode).Str("slot_id", event.SlotID).Msg("booking notification email rejected upstream")
	}

	s.publish(ctx, event)
}

func (s *serviceImpl) publish(ctx context.Context, event dto.BookingEvent) {
	// No brokers configured means the deployment runs without the event
	// stream; that is not an error.
	if len(s.cfg.Kafka.Brokers) == 0 {
		return
	}

	err := s.broker.SendMessages(ctx, s.cfg.Kafka.BookingsTopic, kafka.Message{
		Key:   event.SlotID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("slot_id", event.SlotID).Msg("failed to publish booking event")
	}
}
