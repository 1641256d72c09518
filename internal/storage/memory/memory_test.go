package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/onsi/gomega" //nolint:revive

	"github.com/mmynk/tiptop/internal/models"
	"github.com/mmynk/tiptop/internal/storage"
)

func TestMemoryStore(t *testing.T) {
	store := New()
	defer store.Close()

	ctx := context.Background()

	t.Run("CreateSession generates ID and timestamps", func(t *testing.T) {
		g := NewWithT(t)

		session := &models.Session{Inputs: models.DefaultInputs()}
		g.Expect(store.CreateSession(ctx, session)).To(Succeed())

		g.Expect(session.ID).NotTo(BeEmpty())
		g.Expect(session.CreatedAt).NotTo(BeZero())
		g.Expect(session.UpdatedAt).To(Equal(session.CreatedAt))
	})

	t.Run("GetSession returns a copy", func(t *testing.T) {
		g := NewWithT(t)

		session := &models.Session{Inputs: models.Inputs{Bill: "80", TipPercentage: "10", PartyCount: "2"}}
		g.Expect(store.CreateSession(ctx, session)).To(Succeed())

		retrieved, err := store.GetSession(ctx, session.ID)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(retrieved.Inputs).To(Equal(session.Inputs))

		retrieved.Inputs.Bill = "changed"
		again, err := store.GetSession(ctx, session.ID)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(again.Inputs.Bill).To(Equal("80"))
	})

	t.Run("UpdateSession replaces inputs", func(t *testing.T) {
		g := NewWithT(t)

		session := &models.Session{Inputs: models.DefaultInputs()}
		g.Expect(store.CreateSession(ctx, session)).To(Succeed())

		session.Inputs.Bill = "42"
		session.CreatedAt = 0
		g.Expect(store.UpdateSession(ctx, session)).To(Succeed())
		g.Expect(session.CreatedAt).NotTo(BeZero())

		retrieved, err := store.GetSession(ctx, session.ID)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(retrieved.Inputs.Bill).To(Equal("42"))
	})

	t.Run("missing session", func(t *testing.T) {
		g := NewWithT(t)

		_, err := store.GetSession(ctx, "nope")
		g.Expect(errors.Is(err, storage.ErrSessionNotFound)).To(BeTrue())

		err = store.UpdateSession(ctx, &models.Session{ID: "nope"})
		g.Expect(errors.Is(err, storage.ErrSessionNotFound)).To(BeTrue())

		err = store.DeleteSession(ctx, "nope")
		g.Expect(errors.Is(err, storage.ErrSessionNotFound)).To(BeTrue())
	})

	t.Run("DeleteSession removes it", func(t *testing.T) {
		g := NewWithT(t)

		session := &models.Session{Inputs: models.DefaultInputs()}
		g.Expect(store.CreateSession(ctx, session)).To(Succeed())
		g.Expect(store.DeleteSession(ctx, session.ID)).To(Succeed())

		_, err := store.GetSession(ctx, session.ID)
		g.Expect(errors.Is(err, storage.ErrSessionNotFound)).To(BeTrue())
	})
}

func TestMemoryStore_MaxSessions(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	store := New(WithMaxSessions(2))

	g.Expect(store.CreateSession(ctx, &models.Session{})).To(Succeed())
	g.Expect(store.CreateSession(ctx, &models.Session{})).To(Succeed())

	err := store.CreateSession(ctx, &models.Session{})
	g.Expect(errors.Is(err, storage.ErrTooManySessions)).To(BeTrue())

	n, err := store.Count(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(2))
}

func TestMemoryStore_DeleteIdleSessions(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()

	now := time.Unix(1_700_000_000, 0)
	store := New(WithClock(func() time.Time { return now }))

	stale := &models.Session{}
	g.Expect(store.CreateSession(ctx, stale)).To(Succeed())

	now = now.Add(10 * time.Minute)
	fresh := &models.Session{}
	g.Expect(store.CreateSession(ctx, fresh)).To(Succeed())

	removed, err := store.DeleteIdleSessions(ctx, now.Add(-5*time.Minute))
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(removed).To(Equal(1))

	_, err = store.GetSession(ctx, stale.ID)
	g.Expect(errors.Is(err, storage.ErrSessionNotFound)).To(BeTrue())

	_, err = store.GetSession(ctx, fresh.ID)
	g.Expect(err).NotTo(HaveOccurred())
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	g := NewWithT(t)
	store := New()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g.Expect(store.CreateSession(ctx, &models.Session{})).To(MatchError(context.Canceled))
	_, err := store.GetSession(ctx, "any")
	g.Expect(err).To(MatchError(context.Canceled))
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	g := NewWithT(t)
	ctx := context.Background()
	store := New()

	session := &models.Session{Inputs: models.DefaultInputs()}
	g.Expect(store.CreateSession(ctx, session)).To(Succeed())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			update := &models.Session{ID: session.ID, Inputs: models.Inputs{Bill: "10", PartyCount: "1"}}
			_ = store.UpdateSession(ctx, update)
			_, _ = store.GetSession(ctx, session.ID)
			_ = store.CreateSession(ctx, &models.Session{})
		}()
	}
	wg.Wait()

	n, err := store.Count(ctx)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(n).To(Equal(21))
}
