package client

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hejijunhao/lovetype/internal/api"
	"github.com/hejijunhao/lovetype/internal/engine/testdata"
	"github.com/hejijunhao/lovetype/pkg/lovetype"
)

// newServer serves the real API over the fixture reference data.
func newServer(t *testing.T, files ...string) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	if err := testdata.WriteDir(dir, files...); err != nil {
		t.Fatal(err)
	}
	lt, err := lovetype.New(lovetype.WithDataDir(dir))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(api.NewRouter(lt, api.Config{CORSOrigins: []string{"*"}}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClassify(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL + "/")

	res, err := c.Classify(context.Background(), "ロマンチスト", "冒険家")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Macro.Top != "情熱" || res.Micro.Type != "刺激的な相棒" || res.Confidence != 96 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Copy.Catch != "退屈とは無縁のふたり" {
		t.Fatalf("copy catch = %q", res.Copy.Catch)
	}
}

func TestClassify_ClientError(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL, WithBackoff(time.Millisecond))

	_, err := c.Classify(context.Background(), "ロマンチスト", "宇宙人")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", apiErr.StatusCode)
	}
	if !strings.Contains(apiErr.Detail, "宇宙人") {
		t.Fatalf("detail should name the type, got %q", apiErr.Detail)
	}
}

func TestClassify_MissingDataRetried(t *testing.T) {
	srv := newServer(t, "love_params.csv")
	c := New(srv.URL, WithRetries(1), WithBackoff(time.Millisecond))

	_, err := c.Classify(context.Background(), "ロマンチスト", "冒険家")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 APIError, got %v", err)
	}
}

func TestTypesAndHealth(t *testing.T) {
	srv := newServer(t)
	c := New(srv.URL)

	types, err := c.Types(context.Background())
	if err != nil {
		t.Fatalf("Types: %v", err)
	}
	want := []string{"ロマンチスト", "リアリスト", "冒険家", "守護者", "献身家", "自由人"}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("Types = %v, want %v", types, want)
	}

	st, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if st["status"] != "ok" || st["mapping"] != "ok" || st["copy"] != "ok" {
		t.Fatalf("Health = %v", st)
	}
}

func TestValidationDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","typeA"],"msg":"field required","type":"value_error.missing"}]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Classify(context.Background(), "", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if !strings.HasPrefix(apiErr.Detail, "[") || !strings.Contains(apiErr.Detail, "field required") {
		t.Fatalf("unexpected detail: %q", apiErr.Detail)
	}
}

func TestRetryOn5xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail":"internal error"}`))
			return
		}
		w.Write([]byte(`["a","b"]`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithBackoff(time.Millisecond))
	types, err := c.Types(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(types) != 2 {
		t.Fatalf("unexpected types: %v", types)
	}
	if calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", calls.Load())
	}
}

func TestRetryBodyResent(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(r.Body); err != nil || !strings.Contains(buf.String(), `"typeA":"x"`) {
			t.Errorf("attempt %d: body = %q", calls.Load()+1, buf.String())
		}
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"confidence":50}`))
	}))
	defer srv.Close()

	res, err := New(srv.URL, WithBackoff(time.Millisecond)).Classify(context.Background(), "x", "y")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Confidence != 50 {
		t.Fatalf("confidence = %d", res.Confidence)
	}
}

func TestMaxRetriesExceeded(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail":"rate limit exceeded"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithRetries(2), WithBackoff(time.Millisecond))
	_, err := c.Types(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusTooManyRequests || apiErr.Detail != "rate limit exceeded" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", calls.Load())
	}
}

func TestContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(srv.URL).Health(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBackoffDelay(t *testing.T) {
	c := New("http://x", WithBackoff(100*time.Millisecond))
	tests := []struct {
		attempt int
		lastErr *APIError
		want    time.Duration
	}{
		{1, nil, 100 * time.Millisecond},
		{3, &APIError{StatusCode: 500}, 400 * time.Millisecond},
		{1, &APIError{StatusCode: 429, retryAfter: "2"}, 2 * time.Second},
		{2, &APIError{StatusCode: 429, retryAfter: "soon"}, 200 * time.Millisecond},
		{1, &APIError{StatusCode: 503, retryAfter: "5"}, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := c.backoffDelay(tt.attempt, tt.lastErr); got != tt.want {
			t.Errorf("backoffDelay(%d, %+v) = %v, want %v", tt.attempt, tt.lastErr, got, tt.want)
		}
	}
}
