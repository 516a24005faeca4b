package internal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleepContext_ZeroDuration(t *testing.T) {
	if err := SleepContext(context.Background(), 0); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if err := SleepContext(context.Background(), -time.Second); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
}

func TestSleepContext_Sleeps(t *testing.T) {
	start := time.Now()
	if err := SleepContext(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if elapsed := time.Since(start); elapsed < time.Millisecond {
		t.Fatalf("elapsed=%v, want >= 1ms", elapsed)
	}
}

func TestSleepContext_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := SleepContext(ctx, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v, want context.Canceled", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("canceled sleep took %v", elapsed)
	}
}
