package vigil

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aponysus/vigil/poll"
)

func TestEventually_Success(t *testing.T) {
	calls := 0
	val, err := Eventually(context.Background(), "counter", 5*time.Second, func(context.Context) (int, error) {
		calls++
		if calls < 2 {
			return 0, nil
		}
		return calls, nil
	})
	if err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if val != 2 {
		t.Fatalf("val=%d, want 2", val)
	}
}

func TestEventuallyOr_FallbackOnTimeout(t *testing.T) {
	val, err := EventuallyOr(context.Background(), "missing", time.Second, "fallback", func(context.Context) (string, error) {
		return "", errors.New("not there")
	})
	if err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if val != "fallback" {
		t.Fatalf("val=%q, want %q", val, "fallback")
	}
}

func TestEventuallyTrue_TimeoutMentionsLabel(t *testing.T) {
	_, err := EventuallyTrue(context.Background(), "page.loaded", time.Second, func(context.Context) (bool, error) {
		return false, nil
	})
	if !errors.Is(err, poll.ErrTimeout) {
		t.Fatalf("err=%v, want ErrTimeout", err)
	}
	if !strings.Contains(err.Error(), "page.loaded") {
		t.Fatalf("error %q missing label", err)
	}
}

func TestRetry_EventualSuccess(t *testing.T) {
	val, err := Retry(context.Background(), 5, time.Millisecond, func(_ context.Context, attempt int) (string, error) {
		if attempt < 2 {
			return "", errors.New("flaky")
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if val != "ok" {
		t.Fatalf("val=%q, want %q", val, "ok")
	}
}

func TestBestEffort_Degrades(t *testing.T) {
	calls := 0
	val, err := BestEffort(context.Background(), 3, time.Millisecond, func(context.Context, int) (*string, error) {
		calls++
		return nil, nil
	}, nil)
	if err != nil {
		t.Fatalf("err=%v, want nil", err)
	}
	if val != nil {
		t.Fatalf("val=%v, want nil", val)
	}
	if calls != 3 {
		t.Fatalf("calls=%d, want 3", calls)
	}
}
