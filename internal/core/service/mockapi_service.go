package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

const (
	LoginPath    = "/api/login"
	UserInfoPath = "/api/user/info"

	msgBadCredentials  = "账号或者密码不正确"
	msgProfileNotFound = "获取用户信息失败"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MockAPIService answers the login and user-info requests of the console
// from a fixture table. It shares no state with the domain store.
type MockAPIService struct {
	latency  time.Duration
	accounts func() []domain.Account
	log      zerolog.Logger
}

// NewMockAPIService returns a fake backend that waits latency before
// answering each dispatched request.
func NewMockAPIService(latency time.Duration, log zerolog.Logger) *MockAPIService {
	if latency < 0 {
		latency = 0
	}
	return &MockAPIService{latency: latency, accounts: domain.FixtureAccounts, log: log}
}

// Dispatch routes req on its exact (path, method) pair.
func (s *MockAPIService) Dispatch(ctx context.Context, req ports.MockRequest) (ports.Envelope, error) {
	path := req.URL
	if u, err := url.Parse(req.URL); err == nil {
		path = u.Path
	}
	method := strings.ToUpper(req.Method)

	if err := s.wait(ctx); err != nil {
		return ports.Envelope{}, fmt.Errorf("dispatch %s %s: %w", method, path, err)
	}

	switch {
	case path == LoginPath && method == http.MethodPost:
		var c credentials
		if len(req.Body) > 0 {
			if err := json.Unmarshal(req.Body, &c); err != nil {
				s.log.Debug().Err(err).Msg("login body is not valid json")
			}
		}
		return s.Authenticate(ctx, c.Username, c.Password).Envelope(), nil

	case path == UserInfoPath && method == http.MethodGet:
		return s.Profile(ctx, TokenFromHeader(req.Header)).Envelope(), nil
	}

	return ports.Envelope{}, fmt.Errorf("dispatch %s %s: %w", method, path, domain.ErrRouteNotFound)
}

// Authenticate looks for an account matching both username and password.
func (s *MockAPIService) Authenticate(_ context.Context, username, password string) ports.Result[ports.LoginPayload] {
	for _, a := range s.accounts() {
		if a.Username == username && a.Password == password {
			s.log.Info().Str("username", username).Int64("user_id", a.UserID).Msg("mock login succeeded")
			return ports.Success(ports.LoginPayload{Token: a.Token})
		}
	}
	s.log.Info().Str("username", username).Msg("mock login rejected")
	return ports.Failure[ports.LoginPayload](msgBadCredentials)
}

// Profile returns the full account owning token.
func (s *MockAPIService) Profile(_ context.Context, token string) ports.Result[domain.Account] {
	if token != "" {
		for _, a := range s.accounts() {
			if a.Token == token {
				return ports.Success(a)
			}
		}
	}
	return ports.Failure[domain.Account](msgProfileNotFound)
}

func (s *MockAPIService) wait(ctx context.Context) error {
	if s.latency == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// TokenFromHeader reads the authorization header, accepting both a raw token
// and "Bearer <token>".
func TokenFromHeader(h http.Header) string {
	raw := strings.TrimSpace(h.Get("Authorization"))
	parts := strings.SplitN(raw, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return raw
}

var _ ports.MockAPI = (*MockAPIService)(nil)
