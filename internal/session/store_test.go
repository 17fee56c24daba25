package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"go-chi-calculator/internal/engine"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestCreateReturnsInitialState(t *testing.T) {
	store := NewStore()

	sess := store.Create()

	if _, err := uuid.Parse(sess.ID); err != nil {
		t.Fatalf("expected UUID session id, got %q: %v", sess.ID, err)
	}
	if sess.State != engine.InitialState() {
		t.Fatalf("expected initial state, got %+v", sess.State)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", store.Len())
	}
}

func TestApplyUpdatesStateAndReturnsSteps(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	got, err := store.Apply(sess.ID,
		engine.EnterDigit(2),
		engine.SelectOperation(engine.Add),
		engine.EnterDigit(3),
		engine.SelectOperation(engine.Multiply),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := engine.State{Operand1: "5", Operation: engine.Multiply}
	if got.Session.State != want {
		t.Fatalf("expected %+v, got %+v", want, got.Session.State)
	}
	if got.Previous != engine.InitialState() {
		t.Fatalf("expected previous initial state, got %+v", got.Previous)
	}
	if len(got.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(got.Steps))
	}
	if got.Steps[2].ResultDisplay() != "3" {
		t.Fatalf("expected step 2 display %q, got %q", "3", got.Steps[2].ResultDisplay())
	}

	stored, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.State != want {
		t.Fatalf("expected stored %+v, got %+v", want, stored.State)
	}
}

func TestUnknownSession(t *testing.T) {
	store := NewStore()

	if _, err := store.Get("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := store.Apply("missing", engine.Clear()); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Apply: expected ErrSessionNotFound, got %v", err)
	}
	if err := store.Delete("missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Delete: expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteRemovesSession(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	if err := store.Delete(sess.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

func TestSweepRemovesIdleSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := NewStore(WithClock(clock.Now))

	idle := store.Create()
	clock.Advance(20 * time.Minute)
	active := store.Create()
	clock.Advance(15 * time.Minute)

	if removed := store.Sweep(30 * time.Minute); removed != 1 {
		t.Fatalf("expected 1 removed session, got %d", removed)
	}
	if _, err := store.Get(idle.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected idle session to be swept, got %v", err)
	}
	if _, err := store.Get(active.ID); err != nil {
		t.Fatalf("expected active session to survive, got %v", err)
	}
}

func TestConcurrentApplySerializesActions(t *testing.T) {
	store := NewStore()
	sess := store.Create()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Apply(sess.ID, engine.EnterDigit(1))
		}()
	}
	wg.Wait()

	got, err := store.Get(sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State.Operand1 != "11111111" {
		t.Fatalf("expected 8 digits, got %q", got.State.Operand1)
	}
}
