package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/admin-scaffold/demo-backend/internal/core/domain"
	"github.com/admin-scaffold/demo-backend/internal/core/ports"
)

func newTestMockAPI() *MockAPIService {
	return NewMockAPIService(0, zerolog.Nop())
}

func loginRequest(body string) ports.MockRequest {
	return ports.MockRequest{URL: LoginPath, Method: http.MethodPost, Body: json.RawMessage(body)}
}

func infoRequest(auth string) ports.MockRequest {
	h := http.Header{}
	if auth != "" {
		h.Set("Authorization", auth)
	}
	return ports.MockRequest{URL: UserInfoPath, Method: http.MethodGet, Header: h}
}

func TestDispatch_LoginSuccess(t *testing.T) {
	api := newTestMockAPI()

	for _, tc := range []struct{ body, token string }{
		{`{"username":"admin","password":"123456"}`, "Admin-Token"},
		{`{"username":"system","password":"123456"}`, "System-Token"},
	} {
		env, err := api.Dispatch(context.Background(), loginRequest(tc.body))
		require.NoError(t, err)
		assert.Equal(t, ports.CodeSuccess, env.Code)
		assert.Equal(t, ports.LoginPayload{Token: tc.token}, env.Data)
	}
}

func TestDispatch_LoginFailure(t *testing.T) {
	api := newTestMockAPI()

	for _, body := range []string{
		`{"username":"admin","password":"wrong"}`,
		`{"username":"nobody","password":"123456"}`,
		`{}`,
		`not json`,
		``,
	} {
		env, err := api.Dispatch(context.Background(), loginRequest(body))
		require.NoError(t, err, body)
		assert.Equal(t, ports.CodeFailure, env.Code, body)
		assert.Equal(t, ports.MessagePayload{Message: "账号或者密码不正确"}, env.Data, body)
	}
}

func TestDispatch_UserInfo(t *testing.T) {
	api := newTestMockAPI()

	for _, auth := range []string{"Admin-Token", "Bearer Admin-Token"} {
		env, err := api.Dispatch(context.Background(), infoRequest(auth))
		require.NoError(t, err)
		require.Equal(t, ports.CodeSuccess, env.Code)

		account, ok := env.Data.(domain.Account)
		require.True(t, ok)
		assert.Equal(t, int64(1), account.UserID)
		assert.Equal(t, "admin", account.Username)
		assert.Equal(t, "平台管理员", account.Desc)
		assert.Equal(t, []string{"平台管理员"}, account.Roles)
		assert.Equal(t, []string{"cuser", "detail"}, account.Buttons)
		assert.Equal(t, []string{"home"}, account.Routes)
		assert.Equal(t, "Admin-Token", account.Token)
	}
}

func TestDispatch_UserInfoUnknownToken(t *testing.T) {
	api := newTestMockAPI()

	for _, auth := range []string{"", "bogus", "Bearer "} {
		env, err := api.Dispatch(context.Background(), infoRequest(auth))
		require.NoError(t, err)
		assert.Equal(t, ports.CodeFailure, env.Code)
		assert.Equal(t, ports.MessagePayload{Message: "获取用户信息失败"}, env.Data)
	}
}

func TestDispatch_RouteMatching(t *testing.T) {
	api := newTestMockAPI()

	env, err := api.Dispatch(context.Background(), ports.MockRequest{
		URL:    LoginPath + "?redirect=/home",
		Method: "post",
		Body:   json.RawMessage(`{"username":"admin","password":"123456"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, ports.CodeSuccess, env.Code)

	for _, req := range []ports.MockRequest{
		{URL: LoginPath, Method: http.MethodGet},
		{URL: UserInfoPath, Method: http.MethodPost},
		{URL: "/api/logout", Method: http.MethodPost},
	} {
		_, err := api.Dispatch(context.Background(), req)
		assert.ErrorIs(t, err, domain.ErrRouteNotFound, "%s %s", req.Method, req.URL)
	}
}

func TestDispatch_LatencyHonoursContext(t *testing.T) {
	api := NewMockAPIService(time.Hour, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := api.Dispatch(ctx, loginRequest(`{}`))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProfile_FixturesAreRebuiltPerCall(t *testing.T) {
	api := newTestMockAPI()

	first, ok := api.Profile(context.Background(), "System-Token").Value()
	require.True(t, ok)
	first.Buttons[0] = "tampered"

	second, ok := api.Profile(context.Background(), "System-Token").Value()
	require.True(t, ok)
	assert.Equal(t, "cuser", second.Buttons[0])
}

func TestResult_Envelope(t *testing.T) {
	ok := ports.Success(ports.LoginPayload{Token: "t"})
	assert.True(t, ok.OK())
	assert.Empty(t, ok.Message())
	assert.Equal(t, ports.Envelope{Code: 200, Data: ports.LoginPayload{Token: "t"}}, ok.Envelope())

	fail := ports.Failure[ports.LoginPayload]("nope")
	_, isOK := fail.Value()
	assert.False(t, isOK)
	assert.Equal(t, "nope", fail.Message())
	assert.Equal(t, ports.Envelope{Code: 201, Data: ports.MessagePayload{Message: "nope"}}, fail.Envelope())

	b, err := json.Marshal(fail.Envelope())
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":201,"data":{"message":"nope"}}`, string(b))
}

func TestTokenFromHeader(t *testing.T) {
	cases := map[string]string{
		"":                   "",
		"Admin-Token":        "Admin-Token",
		"Bearer Admin-Token": "Admin-Token",
		"BEARER  x ":         "x",
		"Token abc":          "Token abc",
	}
	for in, want := range cases {
		h := http.Header{}
		h.Set("Authorization", in)
		assert.Equal(t, want, TokenFromHeader(h), in)
	}
}
