package domain

import "errors"

var ErrRouteNotFound = errors.New("mock route not found")

// Account is a hardcoded credential and profile record served by the fake
// backend. It is unrelated to User: different shape, different id space.
type Account struct {
	UserID   int64    `json:"userId"`
	Avatar   string   `json:"avatar"`
	Username string   `json:"username"`
	Password string   `json:"password"`
	Desc     string   `json:"desc"`
	Roles    []string `json:"role"`
	Buttons  []string `json:"buttons"`
	Routes   []string `json:"routes"`
	Token    string   `json:"token"`
}

// HasButton reports whether the account carries the given button permission.
func (a Account) HasButton(button string) bool {
	for _, b := range a.Buttons {
		if b == button {
			return true
		}
	}
	return false
}

const fixtureAvatar = "http://wpimg.wallstcn.com/f778738c-e4f8-4870-b634-56703b4acafe.gif"

// FixtureAccounts builds the account table from scratch. Callers get a fresh
// copy each time, so nothing they do to it survives the call.
func FixtureAccounts() []Account {
	return []Account{
		{
			UserID:   1,
			Avatar:   fixtureAvatar,
			Username: "admin",
			Password: "123456",
			Desc:     "平台管理员",
			Roles:    []string{"平台管理员"},
			Buttons:  []string{"cuser", "detail"},
			Routes:   []string{"home"},
			Token:    "Admin-Token",
		},
		{
			UserID:   2,
			Avatar:   fixtureAvatar,
			Username: "system",
			Password: "123456",
			Desc:     "系统管理员",
			Roles:    []string{"系统管理员"},
			Buttons:  []string{"cuser", "detail"},
			Routes:   []string{"home"},
			Token:    "System-Token",
		},
	}
}
