package main

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

type countingSweeper struct {
	*repositories.MemorySessionRepository
	swept chan int
}

func (c *countingSweeper) DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error) {
	n, err := c.MemorySessionRepository.DeleteExpiredSessions(ctx, now)
	c.swept <- n
	return n, err
}

func TestSessionCleanerPurgesAndStops(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	store := &countingSweeper{
		MemorySessionRepository: repositories.NewMemorySessionRepository(),
		swept:                   make(chan int, 1),
	}
	past := models.Session{RefreshToken: "old", UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)}
	live := models.Session{RefreshToken: "new", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := store.SetSession(ctx, past); err != nil {
		t.Fatal(err)
	}
	if err := store.SetSession(ctx, live); err != nil {
		t.Fatal(err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		runSessionCleaner(runCtx, store, time.Hour, zap.NewNop().Sugar())
	}()

	select {
	case n := <-store.swept:
		if n != 1 {
			t.Fatalf("expected 1 expired session cleared, got %d", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("cleaner never ran")
	}
	if _, err := store.GetSession(ctx, "new"); err != nil {
		t.Fatalf("live session removed: %v", err)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleaner did not stop")
	}
}

type selfExpiringStore struct {
	repositories.SessionStore
}

func TestSessionCleanerSkipsSelfExpiringStores(t *testing.T) {
	defer goleak.VerifyNone(t)

	done := make(chan struct{})
	go func() {
		defer close(done)
		runSessionCleaner(context.Background(), selfExpiringStore{}, time.Hour, nil)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleaner should return immediately for stores without a sweeper")
	}
}
