package webhookledger

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("remember then seen", func(t *testing.T) {
		l := NewMemoryLedger(time.Hour)
		if seen, _ := l.Seen(ctx, "stripe", "evt_1"); seen {
			t.Fatalf("expected unseen event")
		}
		if err := l.Remember(ctx, "stripe", "evt_1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seen, _ := l.Seen(ctx, "stripe", "evt_1"); !seen {
			t.Fatalf("expected seen event")
		}
		if seen, _ := l.Seen(ctx, "mercadopago", "evt_1"); seen {
			t.Fatalf("providers must not share event ids")
		}
	})

	t.Run("entries expire", func(t *testing.T) {
		l := NewMemoryLedger(time.Minute)
		now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return now }
		_ = l.Remember(ctx, "stripe", "evt_2")

		now = now.Add(2 * time.Minute)
		if seen, _ := l.Seen(ctx, "stripe", "evt_2"); seen {
			t.Fatalf("expected expired entry")
		}
	})
}

func TestMemoryLedger_SweepsExpiredEntries(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(time.Minute)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	for _, id := range []string{"evt_1", "evt_2", "evt_3"} {
		_ = l.Remember(ctx, "stripe", id)
	}
	if l.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", l.Len())
	}

	now = now.Add(2 * time.Minute)
	_ = l.Remember(ctx, "stripe", "evt_4")
	if l.Len() != 1 {
		t.Fatalf("expected expired entries swept, got %d", l.Len())
	}
	if seen, _ := l.Seen(ctx, "stripe", "evt_4"); !seen {
		t.Fatalf("expected fresh entry kept")
	}
}

func TestMemoryLedger_ZeroTTLNeverExpires(t *testing.T) {
	ctx := context.Background()
	l := NewMemoryLedger(0)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	_ = l.Remember(ctx, "stripe", "evt_1")

	now = now.Add(24 * time.Hour)
	_ = l.Remember(ctx, "stripe", "evt_2")
	if seen, _ := l.Seen(ctx, "stripe", "evt_1"); !seen || l.Len() != 2 {
		t.Fatalf("expected entries kept without ttl, len=%d", l.Len())
	}
}

func TestKey(t *testing.T) {
	if got := key("stripe", "evt_1"); got != "webhook:seen:stripe:evt_1" {
		t.Fatalf("unexpected key %q", got)
	}
}
