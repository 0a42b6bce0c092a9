package api

import (
	"context"

	"github.com/avasyliev/booktrack/pkg/data"
	"github.com/avasyliev/booktrack/pkg/session"
)

// CreateToken exchanges credentials for an access/refresh pair. Storing the
// pair is the caller's job; the gateway never writes the session itself.
func (c *Client) CreateToken(ctx context.Context, email, password string) (session.Credential, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.postAuth(ctx, "/jwt/create/", body, &out); err != nil {
		return session.Credential{}, err
	}
	return session.Credential{AccessToken: out.Access, RefreshToken: out.Refresh}, nil
}

type RegisterRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Username   string `json:"username"`
	RePassword string `json:"re_password"`
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.postAuth(ctx, "/users/", req, nil)
}

func (c *Client) ResetPassword(ctx context.Context, email string) error {
	return c.postAuth(ctx, "/users/reset_password/", map[string]string{"email": email}, nil)
}

func (c *Client) ResetPasswordConfirm(ctx context.Context, uid, token, newPassword, rePassword string) error {
	body := map[string]string{
		"uid":             uid,
		"token":           token,
		"new_password":    newPassword,
		"re_new_password": rePassword,
	}
	return c.postAuth(ctx, "/users/reset_password_confirm/", body, nil)
}

func (c *Client) Profile(ctx context.Context) (data.UserProfile, error) {
	var profile data.UserProfile
	err := c.get(ctx, "/profile/", nil, &profile)
	return profile, err
}

func (c *Client) UpdateProfile(ctx context.Context, updates map[string]any) (data.UserProfile, error) {
	var profile data.UserProfile
	err := c.patch(ctx, "/profile/", updates, &profile)
	return profile, err
}
