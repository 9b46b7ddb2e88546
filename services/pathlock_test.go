package services

import (
	"context"
	"testing"
	"time"
)

func TestMemoryPathLockerSerializesSamePath(t *testing.T) {
	locker := NewMemoryPathLocker()

	unlock, err := locker.Lock(context.Background(), "docs/")
	if err != nil {
		t.Fatalf("Lock: %v", err)
	}

	acquired := make(chan struct{})
	go func() {
		second, err := locker.Lock(context.Background(), "docs/")
		if err != nil {
			t.Errorf("second Lock: %v", err)
			close(acquired)
			return
		}
		close(acquired)
		second()
	}()

	select {
	case <-acquired:
		t.Fatalf("second lock acquired while first was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatalf("second lock never acquired after unlock")
	}
}

func TestMemoryPathLockerIndependentPaths(t *testing.T) {
	locker := NewMemoryPathLocker()

	unlockA, err := locker.Lock(context.Background(), "a/")
	if err != nil {
		t.Fatalf("Lock a/: %v", err)
	}
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB, err := locker.Lock(context.Background(), "b/")
		if err != nil {
			t.Errorf("Lock b/: %v", err)
			close(done)
			return
		}
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("unrelated path blocked")
	}
}
