package notification

import (
	"context"
	"errors"
	"log"
	"strings"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"
	"commerce_engine/internal/usecase/messages"
)

var ErrAdminEmailNotConfigured = errors.New("admin email not configured")

// TeamNotifier announces paid projects by emailing the admin inbox.
type TeamNotifier struct {
	notifier   interfaces.INotifier
	composer   *messages.Composer
	adminEmail string
}

var _ interfaces.ITeamNotifier = (*TeamNotifier)(nil)

func NewTeamNotifier(notifier interfaces.INotifier, composer *messages.Composer, adminEmail string) *TeamNotifier {
	return &TeamNotifier{notifier: notifier, composer: composer, adminEmail: strings.TrimSpace(adminEmail)}
}

func (t *TeamNotifier) NotifyNewPaidProject(ctx context.Context, notice entities.NewPaidProjectNotice) error {
	if t.adminEmail == "" {
		return ErrAdminEmailNotConfigured
	}
	if err := t.notifier.SendEmail(ctx, t.composer.NewPaidProject(t.adminEmail, notice)); err != nil {
		return err
	}
	log.Printf("[notification][team] new paid project announced order_id=%s project_id=%s", notice.OrderID, notice.ProjectID)
	return nil
}
