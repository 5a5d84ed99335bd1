package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLeadDirectory(t *testing.T) {
	t.Run("seeds leads from yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "leads.yaml")
		raw := "leads:\n  - id: lead-1\n    name: Ana\n    email: \" ana@example.com \"\n    company_id: cmp-1\n  - id: lead-2\n    email: bo@example.com\n"
		if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
			t.Fatalf("write leads: %v", err)
		}

		d, err := LoadLeadDirectory(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := d.GetByID(context.Background(), "lead-1")
		if got.Name != "Ana" || got.Email != "ana@example.com" || got.CompanyID != "cmp-1" {
			t.Fatalf("unexpected lead: %+v", got)
		}
		if got, _ := d.GetByID(context.Background(), "lead-2"); got.Email != "bo@example.com" || got.CompanyID != "" {
			t.Fatalf("unexpected lead: %+v", got)
		}
	})

	t.Run("empty path gives empty directory", func(t *testing.T) {
		d, err := LoadLeadDirectory("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, _ := d.GetByID(context.Background(), "lead-1"); got.ID != "" {
			t.Fatalf("expected no lead, got %+v", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadLeadDirectory(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("lead without id", func(t *testing.T) {
		if _, err := ParseLeads([]byte("leads:\n  - email: x@example.com\n")); err == nil {
			t.Fatal("expected error")
		}
	})
}
