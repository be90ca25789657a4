package adobeconnect

import (
	"context"
	"fmt"
	"net/url"
)

// FindPrincipal looks up a user by login.
func (c *Client) FindPrincipal(ctx context.Context, login string) (Principal, error) {
	if login == "" {
		return Principal{}, fmt.Errorf("login is empty: %w", ErrInvalidRequest)
	}
	params := url.Values{}
	params.Set("filter-login", login)

	doc, err := c.call(ctx, "principal-list", params, true)
	if err != nil {
		return Principal{}, err
	}
	for _, el := range doc.FindElements("//principal-list/principal") {
		p := parsePrincipal(el)
		if p.Login == login {
			return p, nil
		}
	}
	return Principal{}, fmt.Errorf("principal %s: %w", login, ErrNotFound)
}

// CreatePrincipal creates a user account. The server does not send a
// welcome email.
func (c *Client) CreatePrincipal(ctx context.Context, req PrincipalRequest) (Principal, error) {
	if req.Login == "" || req.FirstName == "" || req.LastName == "" {
		return Principal{}, fmt.Errorf("login, first name and last name are required: %w", ErrInvalidRequest)
	}

	params := url.Values{}
	params.Set("type", "user")
	params.Set("has-children", "0")
	params.Set("send-email", "false")
	params.Set("login", req.Login)
	params.Set("first-name", req.FirstName)
	params.Set("last-name", req.LastName)
	if req.Password != "" {
		params.Set("password", req.Password)
	}
	if req.Email != "" {
		params.Set("email", req.Email)
	}

	doc, err := c.call(ctx, "principal-update", params, true)
	if err != nil {
		return Principal{}, err
	}
	el := doc.FindElement("//principal")
	if el == nil {
		return Principal{}, fmt.Errorf("principal-update: no principal element: %w", ErrMalformedResponse)
	}
	return parsePrincipal(el), nil
}
