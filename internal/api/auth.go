package api

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	return c.token(ctx, "/auth/login", KindAuthentication, email, password)
}

// Register creates an account and returns its token. A duplicate email is
// reported like any other failure.
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	return c.token(ctx, "/auth/register", KindRegistration, email, password)
}

func (c *Client) token(ctx context.Context, path string, kind Kind, email, password string) (string, error) {
	var out tokenResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   path,
		kind:   kind,
		body:   credentials{Email: email, Password: password},
		dst:    &out,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", &Error{Kind: kind, StatusCode: http.StatusOK, Detail: "response carried no token"}
	}
	return out.Token, nil
}
