// Package http polls an HTTP endpoint until it answers acceptably, for
// readiness checks against servers that come up asynchronously.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aponysus/vigil/poll"
)

// StatusError reports a response whose status code was not acceptable. It is
// absorbed per attempt and surfaces as the last observed error on timeout.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vigil: unacceptable status %d from %s", e.Code, e.URL)
}

// WaitStatus polls url with GET until acceptable returns true for the
// response status, and returns that status. Bodies are drained and closed
// every attempt so connections can be reused. A nil acceptable defaults to
// any 2xx.
func WaitStatus(ctx context.Context, p *poll.Poller, client *http.Client, url string, timeout time.Duration, acceptable func(int) bool) (int, error) {
	if client == nil {
		client = http.DefaultClient
	}
	if acceptable == nil {
		acceptable = func(code int) bool { return code >= 200 && code < 300 }
	}

	base, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	probe := func(ctx context.Context) (int, error) {
		resp, err := client.Do(base.Clone(ctx))
		if err != nil {
			return 0, err
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()

		if !acceptable(resp.StatusCode) {
			return 0, &StatusError{Code: resp.StatusCode, URL: url}
		}
		return resp.StatusCode, nil
	}

	return poll.Wait(ctx, p, poll.Request[int]{
		Label:   "http.ready " + url,
		Timeout: timeout,
		Probe:   probe,
	})
}

// WaitReady polls url until it answers with a 2xx status.
func WaitReady(ctx context.Context, p *poll.Poller, client *http.Client, url string, timeout time.Duration) error {
	_, err := WaitStatus(ctx, p, client, url, timeout, nil)
	return err
}
