package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/tipsplit/internal/models"
	"github.com/mmynk/tipsplit/internal/storage"
)

func TestSQLiteStore(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateSession generates ID, title and timestamps", func(t *testing.T) {
		session := &models.Session{
			State: models.DefaultBillState(),
		}

		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		if session.ID == "" {
			t.Error("Expected session ID to be generated")
		}
		if session.Title == "" {
			t.Error("Expected session title to be generated")
		}
		if session.CreatedAt == 0 || session.UpdatedAt == 0 {
			t.Error("Expected timestamps to be set")
		}

		t.Logf("Created session: ID=%s, Title=%s", session.ID, session.Title)
	})

	t.Run("GetSession retrieves complete session", func(t *testing.T) {
		original := &models.Session{
			Title:           "Friday dinner",
			BillText:        "200",
			State:           models.BillState{BillAmount: 200, TipPercent: 15, PartySize: 4},
			AmountPerPerson: 57.5,
		}
		if err := store.CreateSession(ctx, original); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		retrieved, err := store.GetSession(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}

		if retrieved.ID != original.ID {
			t.Errorf("ID mismatch: got %s, want %s", retrieved.ID, original.ID)
		}
		if retrieved.Title != original.Title {
			t.Errorf("Title mismatch: got %s, want %s", retrieved.Title, original.Title)
		}
		if retrieved.BillText != original.BillText {
			t.Errorf("BillText mismatch: got %q, want %q", retrieved.BillText, original.BillText)
		}
		if retrieved.State != original.State {
			t.Errorf("State mismatch: got %+v, want %+v", retrieved.State, original.State)
		}
		if retrieved.AmountPerPerson != original.AmountPerPerson {
			t.Errorf("AmountPerPerson mismatch: got %f, want %f", retrieved.AmountPerPerson, original.AmountPerPerson)
		}
	})

	t.Run("GetSession returns ErrNotFound for nonexistent session", func(t *testing.T) {
		_, err := store.GetSession(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("UpdateSession overwrites inputs", func(t *testing.T) {
		session := &models.Session{State: models.DefaultBillState()}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		updated, err := store.UpdateSession(ctx, session.ID, func(s *models.Session) error {
			s.BillText = "100"
			s.State = models.BillState{BillAmount: 100, TipPercent: 0, PartySize: 2}
			s.AmountPerPerson = 50
			return nil
		})
		if err != nil {
			t.Fatalf("UpdateSession failed: %v", err)
		}
		if updated.ID != session.ID {
			t.Errorf("ID mismatch: got %s, want %s", updated.ID, session.ID)
		}

		retrieved, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if retrieved.State != updated.State {
			t.Errorf("State mismatch: got %+v, want %+v", retrieved.State, updated.State)
		}
		if retrieved.AmountPerPerson != 50 {
			t.Errorf("AmountPerPerson = %f, want 50", retrieved.AmountPerPerson)
		}
		if retrieved.BillText != "100" {
			t.Errorf("BillText = %q, want %q", retrieved.BillText, "100")
		}
	})

	t.Run("UpdateSession on missing session", func(t *testing.T) {
		called := false
		_, err := store.UpdateSession(ctx, "missing", func(*models.Session) error {
			called = true
			return nil
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
		if called {
			t.Error("apply should not run for a missing session")
		}
	})

	t.Run("UpdateSession discards changes when apply fails", func(t *testing.T) {
		session := &models.Session{BillText: "40", State: models.BillState{BillAmount: 40, TipPercent: 15, PartySize: 1}}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		errApply := errors.New("rejected")
		_, err := store.UpdateSession(ctx, session.ID, func(s *models.Session) error {
			s.State.PartySize = 9
			return errApply
		})
		if !errors.Is(err, errApply) {
			t.Fatalf("Expected apply error, got %v", err)
		}

		retrieved, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if retrieved.State.PartySize != 1 {
			t.Errorf("PartySize = %d, want unchanged 1", retrieved.State.PartySize)
		}
	})

	t.Run("Concurrent updates are serialised", func(t *testing.T) {
		session := &models.Session{State: models.DefaultBillState()}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}

		const workers = 20
		var wg sync.WaitGroup
		errs := make(chan error, workers)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := store.UpdateSession(ctx, session.ID, func(s *models.Session) error {
					s.State.PartySize++
					return nil
				})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				t.Errorf("UpdateSession failed: %v", err)
			}
		}

		retrieved, err := store.GetSession(ctx, session.ID)
		if err != nil {
			t.Fatalf("GetSession failed: %v", err)
		}
		if retrieved.State.PartySize != 1+workers {
			t.Errorf("PartySize = %d, want %d", retrieved.State.PartySize, 1+workers)
		}
	})

	t.Run("Schema rejects party size below one", func(t *testing.T) {
		session := &models.Session{State: models.BillState{BillAmount: 10, TipPercent: 15, PartySize: 0}}
		if err := store.CreateSession(ctx, session); err == nil {
			t.Error("Expected constraint violation for party size 0")
		}
	})

	t.Run("DeleteSession removes the row", func(t *testing.T) {
		session := &models.Session{State: models.DefaultBillState()}
		if err := store.CreateSession(ctx, session); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
		if err := store.DeleteSession(ctx, session.ID); err != nil {
			t.Fatalf("DeleteSession failed: %v", err)
		}
		if _, err := store.GetSession(ctx, session.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound after delete, got %v", err)
		}
		if err := store.DeleteSession(ctx, session.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound on second delete, got %v", err)
		}
	})
}

func TestGenerateTitle(t *testing.T) {
	createdAt := time.Date(2024, time.March, 9, 12, 0, 0, 0, time.Local).Unix()

	tests := []struct {
		partySize    int
		wantContains string
	}{
		{1, "Bill - Mar 9, 2024"},
		{2, "Split 2 ways"},
		{6, "Split 6 ways - Mar 9, 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.wantContains, func(t *testing.T) {
			got := generateTitle(tt.partySize, createdAt)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateTitle(%d) = %q, want to contain %q", tt.partySize, got, tt.wantContains)
			}
		})
	}
}
