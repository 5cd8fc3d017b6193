package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"autorent/internal/app/dto"
	"autorent/internal/app/policies"
	"autorent/internal/infra/broker/kafka"
)

const bookingQuotedTopic = "booking.quoted"

// KafkaNotifier publishes booking notices for the external email/payment-link
// collaborators to consume.
type KafkaNotifier struct {
	Producer    *kafka.Producer
	TopicPrefix string
}

type bookingQuotedEvent struct {
	BookingID        string             `json:"booking_id"`
	Customer         string             `json:"customer"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	CarID            string             `json:"car_id"`
	Pickup           time.Time          `json:"pickup"`
	Dropoff          time.Time          `json:"dropoff"`
	Breakdown        dto.PriceBreakdown `json:"breakdown"`
	WantsPaymentLink bool               `json:"wants_payment_link"`
	EmittedAt        time.Time          `json:"emitted_at"`
}

func (n *KafkaNotifier) BookingQuoted(ctx context.Context, notice policies.BookingNotice) error {
	event := bookingQuotedEvent{
		BookingID:        notice.BookingID,
		Customer:         notice.Customer,
		Email:            notice.Email,
		Phone:            notice.Phone,
		CarID:            notice.CarID,
		Pickup:           notice.Pickup,
		Dropoff:          notice.Dropoff,
		Breakdown:        dto.PriceBreakdownFromDomain(notice.Price),
		WantsPaymentLink: notice.WantsPaymentLink,
		EmittedAt:        time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return n.Producer.Publish(ctx, n.TopicPrefix+bookingQuotedTopic, notice.BookingID, payload, map[string]string{
		"content-type": "application/json",
	})
}

// LogNotifier stands in when no brokers are configured, so local runs still
// show what would have been published.
type LogNotifier struct {
	Logger *slog.Logger
}

func (n LogNotifier) BookingQuoted(ctx context.Context, notice policies.BookingNotice) error {
	if n.Logger != nil {
		n.Logger.Info("booking quoted",
			"booking_id", notice.BookingID,
			"email", notice.Email,
			"total_cents", notice.Price.Total.Cents(),
			"payment_link", notice.WantsPaymentLink,
		)
	}
	return nil
}

var (
	_ policies.Notifier = (*KafkaNotifier)(nil)
	_ policies.Notifier = LogNotifier{}
)
