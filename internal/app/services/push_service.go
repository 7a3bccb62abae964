package services

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	webpush "github.com/SherClockHolmes/webpush-go"
	"github.com/rs/zerolog"

	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// PushService handles browser push subscriptions and notification fan-out.
type PushService struct {
	subscriptionRepo *repositories.PushSubscriptionRepository
	vapidPublicKey   string
	vapidPrivateKey  string
	subscriber       string
	logger           zerolog.Logger
}

// NewPushService creates a new PushService
func NewPushService(
	subscriptionRepo *repositories.PushSubscriptionRepository,
	vapidPublicKey, vapidPrivateKey, subscriber string,
	logger zerolog.Logger,
) *PushService {
	return &PushService{
		subscriptionRepo: subscriptionRepo,
		vapidPublicKey:   vapidPublicKey,
		vapidPrivateKey:  vapidPrivateKey,
		subscriber:       subscriber,
		logger:           logger,
	}
}

// Subscribe stores a browser subscription keyed by its endpoint. The raw
// JSON is kept verbatim so it round-trips back into the send call.
func (s *PushService) Subscribe(ctx context.Context, raw json.RawMessage) error {
	var sub webpush.Subscription
	if err := json.Unmarshal(raw, &sub); err != nil || strings.TrimSpace(sub.Endpoint) == "" {
		return apperrors.NewBadRequestError("Invalid push subscription")
	}
	return s.subscriptionRepo.Upsert(ctx, sub.Endpoint, string(raw))
}

// NotifyAll sends the payload to every stored subscription. Endpoints that
// report gone are pruned; other per-endpoint failures are logged and
// skipped. Returns how many sends succeeded.
func (s *PushService) NotifyAll(ctx context.Context, title, body string) (int, error) {
	subs, err := s.subscriptionRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return 0, err
	}

	options := &webpush.Options{
		Subscriber:      s.subscriber,
		VAPIDPublicKey:  s.vapidPublicKey,
		VAPIDPrivateKey: s.vapidPrivateKey,
		TTL:             60,
	}

	sent := 0
	for _, stored := range subs {
		var sub webpush.Subscription
		if err := json.Unmarshal([]byte(stored.Subscription), &sub); err != nil {
			s.logger.Warn().Err(err).Str("endpoint", stored.Endpoint).Msg("Dropping unreadable subscription")
			if delErr := s.subscriptionRepo.DeleteByEndpoint(ctx, stored.Endpoint); delErr != nil {
				s.logger.Error().Err(delErr).Msg("Failed to prune subscription")
			}
			continue
		}

		resp, err := webpush.SendNotificationWithContext(ctx, payload, &sub, options)
		if err != nil {
			s.logger.Warn().Err(err).Str("endpoint", stored.Endpoint).Msg("Push send failed")
			continue
		}
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusNotFound, http.StatusGone:
			if delErr := s.subscriptionRepo.DeleteByEndpoint(ctx, stored.Endpoint); delErr != nil {
				s.logger.Error().Err(delErr).Msg("Failed to prune subscription")
			}
		default:
			sent++
		}
	}
	return sent, nil
}
