package transport

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/Radek987976/hyperbare-manager/pkg/logger"
)

// SessionStore is the slice of the session repository the transport
// needs: the credential read before each send and the sweep after a 401.
type SessionStore interface {
	Token() (string, error)
	Clear() error
}

// SessionRoundTripper injects the bearer credential into every outgoing
// request and reacts to server-side session invalidation. The credential
// is read from persistent storage per request, not captured at
// construction, so login/logout is observed immediately by subsequent
// calls.
type SessionRoundTripper struct {
	transport http.RoundTripper
	store     SessionStore

	mu        sync.RWMutex
	onExpired func()
}

func NewSessionRoundTripper(transport http.RoundTripper, store SessionStore) *SessionRoundTripper {
	return &SessionRoundTripper{transport: transport, store: store}
}

// OnAuthExpired registers the hook fired after a 401 sweep. The session
// store subscribes here to drop its in-memory identity; a UI layer may
// chain a redirect to the login view.
func (t *SessionRoundTripper) OnAuthExpired(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.onExpired = fn
}

func (t *SessionRoundTripper) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	reqID := logger.RequestIDFromCtx(ctx)
	if reqID == "" {
		reqID = uuid.Must(uuid.NewV4()).String()
	}

	r.Header.Set("X-Request-Id", reqID)

	token, err := t.store.Token()
	if err != nil {
		return nil, fmt.Errorf("read credential: %w", err)
	}

	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}

	slog.DebugContext(ctx, "outgoing request", "request", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()))

	resp, err := t.transport.RoundTrip(r)
	if err != nil {
		return nil, fmt.Errorf("round trip: %w", err)
	}

	slog.DebugContext(ctx, "incoming response",
		"response", fmt.Sprintf("%s %s", r.Method, r.URL.Redacted()), "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized && !isAuthEndpoint(r.URL.Path) {
		// The session is no longer valid server-side. Drop the stored
		// pair and notify; the in-flight caller still sees the 401.
		if cerr := t.store.Clear(); cerr != nil {
			slog.ErrorContext(ctx, "clear session after 401", "error", cerr)
		}

		t.mu.RLock()
		fn := t.onExpired
		t.mu.RUnlock()

		if fn != nil {
			fn()
		}
	}

	return resp, nil
}

// A 401 from login or register means bad credentials, not an expired
// session; those are surfaced to the form without touching storage.
func isAuthEndpoint(path string) bool {
	return strings.HasSuffix(path, "/api/auth/login") || strings.HasSuffix(path, "/api/auth/register")
}
