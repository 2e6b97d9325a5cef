// Package identity consumes the external identity provider. Tokens are
// opaque here: they are handed to the provider's verify endpoint and come
// back as a session, never inspected or minted locally.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var ErrUnauthenticated = errors.New("invalid or expired session token")

// Session is the authenticated-user handle threaded explicitly through
// handlers instead of living in global state.
type Session struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
}

type Verifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RemoteVerifier resolves bearer tokens against the provider's verify
// endpoint.
type RemoteVerifier struct {
	VerifyURL string
	Client    HTTPClient
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.VerifyURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	client := v.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrUnauthenticated
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("identity provider returned status " + resp.Status)
	}

	var session Session
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, err
	}
	if session.UserID == "" {
		return nil, ErrUnauthenticated
	}
	return &session, nil
}

var _ Verifier = (*RemoteVerifier)(nil)

type contextKey struct{}

func NewContext(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

func FromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(contextKey{}).(*Session)
	return session, ok
}

// Middleware resolves an Authorization header when present and rejects bad
// tokens. Requests without a header pass through anonymously; handlers that
// mutate state require a session themselves.
func Middleware(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			session, err := verifier.Verify(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]string{"error": ErrUnauthenticated.Error()})
				return
			}

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), session)))
		})
	}
}
