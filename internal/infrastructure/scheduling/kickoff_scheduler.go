package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"
)

var (
	ErrBookingURLNotConfigured = errors.New("kickoff booking url not configured")
	ErrMissingCustomerEmail    = errors.New("order has no customer email")
)

// KickoffScheduler requests the kickoff call by sending the client a booking link
// tagged with the order id.
type KickoffScheduler struct {
	notifier   interfaces.INotifier
	composer   *messages.Composer
	bookingURL string
}

var _ interfaces.IKickoffScheduler = (*KickoffScheduler)(nil)

func NewKickoffScheduler(notifier interfaces.INotifier, composer *messages.Composer, bookingURL string) *KickoffScheduler {
	return &KickoffScheduler{notifier: notifier, composer: composer, bookingURL: strings.TrimSpace(bookingURL)}
}

func (s *KickoffScheduler) RequestKickoff(ctx context.Context, order entities.Order) error {
	if s.bookingURL == "" {
		return ErrBookingURLNotConfigured
	}
	if strings.TrimSpace(order.CustomerEmail) == "" {
		return ErrMissingCustomerEmail
	}

	link, err := bookingLink(s.bookingURL, order.ID)
	if err != nil {
		return err
	}
	if err := s.notifier.SendEmail(ctx, s.composer.KickoffInvite(order, link)); err != nil {
		return err
	}
	log.Printf("[scheduling][kickoff] invite sent order_id=%s", order.ID)
	return nil
}

func bookingLink(base, orderID string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("booking url: %w", err)
	}
	q := u.Query()
	q.Set("order_id", orderID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
