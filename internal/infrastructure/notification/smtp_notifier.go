package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"commerce_engine/internal/domain/entities"
	"commerce_engine/internal/usecase/interfaces"

	"github.com/wneessen/go-mail"
)

var ErrMissingRecipient = errors.New("email has no recipient")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	TLS      bool
	From     string
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPNotifier delivers transactional email through an SMTP relay.
type SMTPNotifier struct {
	client sender
	from   string
}

var _ interfaces.INotifier = (*SMTPNotifier)(nil)

func NewSMTPNotifier(cfg SMTPConfig) (*SMTPNotifier, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(15 * time.Second),
	}
	if cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	log.Printf("[notification][smtp] client initialized host=%s port=%d", cfg.Host, cfg.Port)
	return &SMTPNotifier{client: client, from: cfg.From}, nil
}

func (n *SMTPNotifier) SendEmail(ctx context.Context, msg entities.EmailMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrMissingRecipient
	}

	m := mail.NewMsg()
	if err := m.From(n.from); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)
	}

	if err := n.client.DialAndSendWithContext(ctx, m); err != nil {
		log.Printf("[notification][smtp] send failed kind=%s to=%s err=%v", msg.Kind, msg.To, err)
		return err
	}
	log.Printf("[notification][smtp] sent kind=%s to=%s", msg.Kind, msg.To)
	return nil
}

// LogNotifier writes emails to the log instead of sending them. Used when no SMTP
// host is configured.
type LogNotifier struct{}

var _ interfaces.INotifier = LogNotifier{}

func (LogNotifier) SendEmail(_ context.Context, msg entities.EmailMessage) error {
	if strings.TrimSpace(msg.To) == "" {
		return ErrMissingRecipient
	}
	log.Printf("[notification][log] email kind=%s to=%s subject=%q", msg.Kind, msg.To, msg.Subject)
	return nil
}
