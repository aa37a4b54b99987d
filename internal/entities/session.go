package entities

import "time"

// User is the account summary returned alongside an access token
type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
}

// Token is returned by the login and register endpoints
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// Session is the locally persisted login state
type Session struct {
	Profile     string    `json:"profile"`
	AccessToken string    `json:"access_token"`
	User        User      `json:"user"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}
