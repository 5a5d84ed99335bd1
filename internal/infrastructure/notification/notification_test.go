package notification

import (
	"context"
	"errors"
	"testing"

	"commerce_engine/internal/domain/entities"
	mock_interfaces "commerce_engine/internal/usecase/interfaces/mocks"
	"commerce_engine/internal/usecase/messages"

	"github.com/wneessen/go-mail"
	"go.uber.org/mock/gomock"
)

type fakeSender struct {
	sent []*mail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*mail.Msg) error {
	f.sent = append(f.sent, messages...)
	return f.err
}

func TestSMTPNotifier_SendEmail(t *testing.T) {
	msg := entities.EmailMessage{
		Kind:    entities.EmailKindReceipt,
		To:      "client@example.com",
		Subject: "Payment received",
		Text:    "thanks",
		HTML:    "<p>thanks</p>",
	}

	t.Run("sends message", func(t *testing.T) {
		s := &fakeSender{}
		n := &SMTPNotifier{client: s, from: "hello@example.com"}

		if err := n.SendEmail(context.Background(), msg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.sent) != 1 {
			t.Fatalf("expected one message, got %d", len(s.sent))
		}
		rcpts, err := s.sent[0].GetRecipients()
		if err != nil || len(rcpts) != 1 || rcpts[0] != "client@example.com" {
			t.Fatalf("unexpected recipients: %v err=%v", rcpts, err)
		}
		if subj := s.sent[0].GetGenHeader(mail.HeaderSubject); len(subj) != 1 || subj[0] != "Payment received" {
			t.Fatalf("unexpected subject: %v", subj)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		n := &SMTPNotifier{client: &fakeSender{err: errors.New("connection refused")}, from: "hello@example.com"}
		if err := n.SendEmail(context.Background(), msg); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("no recipient", func(t *testing.T) {
		s := &fakeSender{}
		n := &SMTPNotifier{client: s, from: "hello@example.com"}
		if err := n.SendEmail(context.Background(), entities.EmailMessage{Subject: "x"}); !errors.Is(err, ErrMissingRecipient) {
			t.Fatalf("expected ErrMissingRecipient, got %v", err)
		}
		if len(s.sent) != 0 {
			t.Fatal("expected nothing sent")
		}
	})

	t.Run("invalid recipient", func(t *testing.T) {
		n := &SMTPNotifier{client: &fakeSender{}, from: "hello@example.com"}
		if err := n.SendEmail(context.Background(), entities.EmailMessage{To: "not an address"}); err == nil {
			t.Fatal("expected address error")
		}
	})
}

func TestLogNotifier(t *testing.T) {
	if err := (LogNotifier{}).SendEmail(context.Background(), entities.EmailMessage{To: "a@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (LogNotifier{}).SendEmail(context.Background(), entities.EmailMessage{}); !errors.Is(err, ErrMissingRecipient) {
		t.Fatalf("expected ErrMissingRecipient, got %v", err)
	}
}

func TestTeamNotifier_NotifyNewPaidProject(t *testing.T) {
	composer := messages.NewComposer(nil, "http://app.test", "Studio")
	notice := entities.NewPaidProjectNotice{OrderID: "ord_1", CompanyID: "cmp_1", Package: "basic", Total: 1194, ProjectID: "prj_ord_1"}

	t.Run("emails admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockNotifier := mock_interfaces.NewMockINotifier(ctrl)
		mockNotifier.EXPECT().
			SendEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, msg entities.EmailMessage) error {
				if msg.To != "admin@example.com" || msg.Kind != entities.EmailKindAdminAlert {
					t.Errorf("unexpected message: %+v", msg)
				}
				return nil
			})

		n := NewTeamNotifier(mockNotifier, composer, " admin@example.com ")
		if err := n.NotifyNewPaidProject(context.Background(), notice); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("admin not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		n := NewTeamNotifier(mock_interfaces.NewMockINotifier(ctrl), composer, "")
		if err := n.NotifyNewPaidProject(context.Background(), notice); !errors.Is(err, ErrAdminEmailNotConfigured) {
			t.Fatalf("expected ErrAdminEmailNotConfigured, got %v", err)
		}
	})

	t.Run("send failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockNotifier := mock_interfaces.NewMockINotifier(ctrl)
		mockNotifier.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		n := NewTeamNotifier(mockNotifier, composer, "admin@example.com")
		if err := n.NotifyNewPaidProject(context.Background(), notice); err == nil {
			t.Fatal("expected error")
		}
	})
}
