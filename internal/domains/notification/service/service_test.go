package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"sufra/config"
	"sufra/infras/kafka"
	kafkaMocks "sufra/infras/kafka/mocks"
	"sufra/infras/otel/mocks"
	"sufra/infras/resend"
	resendMocks "sufra/infras/resend/mocks"
	"sufra/internal/domains/notification/model/dto"
	"sufra/internal/domains/notification/service"
)

func TestNotificationService_Relay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := resendMocks.NewMockClient(ctrl)
	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(cfg, mockMailer, mockBroker, mockOtel)

	t.Run("forwards the email and returns the upstream result", func(t *testing.T) {
		mockMailer.EXPECT().
			SendEmail(gomock.Any(), resend.Email{
				Subject: "Test subject",
				Body:    "Test body",
				To:      []string{"someone@example.com"},
			}).
			Return(&resend.Result{StatusCode: http.StatusOK}, nil)

		res, err := svc.Relay(context.Background(), dto.EmailRequest{
			Subject: "Test subject",
			Body:    "Test body",
			To:      []string{"someone@example.com"},
		})

		assert.NoError(t, err)
		assert.True(t, res.OK())
	})

	t.Run("provider rejection is not an error", func(t *testing.T) {
		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(&resend.Result{StatusCode: http.StatusUnprocessableEntity}, nil)

		res, err := svc.Relay(context.Background(), dto.EmailRequest{
			Subject: "Test subject",
			Body:    "Test body",
		})

		assert.NoError(t, err)
		assert.False(t, res.OK())
	})

	t.Run("transport failure is surfaced", func(t *testing.T) {
		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		res, err := svc.Relay(context.Background(), dto.EmailRequest{
			Subject: "Test subject",
			Body:    "Test body",
		})

		assert.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestNotificationService_Notify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMailer := resendMocks.NewMockClient(ctrl)
	mockBroker := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	event := dto.BookingEvent{
		Action: dto.ActionCreated,
		SlotID: "2026-02-18",
		Name:   "Amina",
	}

	email := dto.EmailRequest{
		Subject: "Test subject",
		Body:    "Test body",
	}

	t.Run("publishes the event after the email", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Kafka.Brokers = []string{"localhost:9092"}
		cfg.Kafka.BookingsTopic = "booking-events"

		svc := service.New(cfg, mockMailer, mockBroker, mockOtel)

		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(&resend.Result{StatusCode: http.StatusOK}, nil)

		mockBroker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", kafka.Message{
				Key:   "2026-02-18",
				Value: event,
			}).
			Return(nil)

		svc.Notify(context.Background(), event, email)
	})

	t.Run("no brokers configured means no publish", func(t *testing.T) {
		cfg := &config.Config{}

		svc := service.New(cfg, mockMailer, mockBroker, mockOtel)

		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(&resend.Result{StatusCode: http.StatusOK}, nil)

		svc.Notify(context.Background(), event, email)
	})

	t.Run("email failure does not stop the event", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Kafka.Brokers = []string{"localhost:9092"}
		cfg.Kafka.BookingsTopic = "booking-events"

		svc := service.New(cfg, mockMailer, mockBroker, mockOtel)

		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		mockBroker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(nil)

		svc.Notify(context.Background(), event, email)
	})

	t.Run("broker failure is swallowed", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Kafka.Brokers = []string{"localhost:9092"}
		cfg.Kafka.BookingsTopic = "booking-events"

		svc := service.New(cfg, mockMailer, mockBroker, mockOtel)

		mockMailer.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			Return(&resend.Result{StatusCode: http.StatusOK}, nil)

		mockBroker.EXPECT().
			SendMessages(gomock.Any(), "booking-events", gomock.Any()).
			Return(errors.New("broker unavailable"))

		svc.Notify(context.Background(), event, email)
	})
}
