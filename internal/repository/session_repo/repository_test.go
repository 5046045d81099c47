package session_repo

import (
	"sync"
	"testing"

	"slot_backend/internal/apperr"
	"slot_backend/internal/model"
)

func TestPutGet_ReturnsCopy(t *testing.T) {
	r := NewSessionRepository()
	r.Put(&model.Session{ID: "s1", BalanceMinor: 1000})

	got, ok := r.Get("s1")
	if !ok {
		t.Fatal("session not found")
	}
	if got.BalanceMinor != 1000 {
		t.Errorf("balance = %d, want 1000", got.BalanceMinor)
	}

	// Мутация копии не должна протекать в реестр
	got.BalanceMinor = 0
	again, _ := r.Get("s1")
	if again.BalanceMinor != 1000 {
		t.Errorf("repository record mutated through the copy")
	}
}

func TestGet_UnknownSession(t *testing.T) {
	r := NewSessionRepository()
	if _, ok := r.Get("nope"); ok {
		t.Fatal("unknown session must not be found")
	}
}

func TestApplySpin_Delta(t *testing.T) {
	r := NewSessionRepository()
	r.Put(&model.Session{ID: "s1", BalanceMinor: 1000})

	balance, err := r.ApplySpin("s1", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 1200 {
		t.Errorf("balance = %d, want 1200", balance)
	}

	balance, err = r.ApplySpin("s1", -300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != 900 {
		t.Errorf("balance = %d, want 900", balance)
	}
}

func TestApplySpin_UnknownSession(t *testing.T) {
	r := NewSessionRepository()
	_, err := r.ApplySpin("nope", 100)
	if !apperr.IsKind(err, apperr.KindUnauthorized) {
		t.Errorf("kind = %v, want unauthorized", apperr.KindOf(err))
	}
}

func TestBeginSpin_Exclusion(t *testing.T) {
	r := NewSessionRepository()
	r.Put(&model.Session{ID: "s1", BalanceMinor: 1000})

	if err := r.BeginSpin("s1"); err != nil {
		t.Fatalf("first begin failed: %v", err)
	}
	err := r.BeginSpin("s1")
	if !apperr.IsKind(err, apperr.KindSpinInProgress) {
		t.Fatalf("kind = %v, want spin_in_progress", apperr.KindOf(err))
	}

	r.EndSpin("s1")
	if err := r.BeginSpin("s1"); err != nil {
		t.Fatalf("begin after end failed: %v", err)
	}
}

func TestBeginSpin_ConcurrentSingleWinner(t *testing.T) {
	r := NewSessionRepository()
	r.Put(&model.Session{ID: "s1", BalanceMinor: 1000})

	const n = 32
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- r.BeginSpin("s1")
		}()
	}
	wg.Wait()
	close(results)

	winners := 0
	for err := range results {
		if err == nil {
			winners++
		} else if !apperr.IsKind(err, apperr.KindSpinInProgress) {
			t.Errorf("unexpected kind: %v", apperr.KindOf(err))
		}
	}
	if winners != 1 {
		t.Errorf("winners = %d, want exactly 1", winners)
	}
}
