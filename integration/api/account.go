package api

import (
	"context"
	"net/http"
)

// Profile is the authenticated client's account data.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"telefono"`
	Address   string `json:"direccion"`
	Document  string `json:"documento"`
}

type changePasswordRequest struct {
	Current string `json:"password_actual"`
	Next    string `json:"password_nueva"`
	Confirm string `json:"password_nueva2"`
}

// GetProfile returns the authenticated client's profile.
func (c *Client) GetProfile(ctx context.Context) (Profile, error) {
	var profile Profile
	if err := c.do(ctx, http.MethodGet, "/api/clientes/cuenta/perfil/", nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// UpdateProfile replaces the authenticated client's profile.
func (c *Client) UpdateProfile(ctx context.Context, profile Profile) (Profile, error) {
	var updated Profile
	if err := c.do(ctx, http.MethodPut, "/api/clientes/cuenta/actualizar_perfil/", profile, &updated); err != nil {
		return Profile{}, err
	}
	return updated, nil
}

// ChangePassword changes the account password. The confirmation value is
// validated server-side against the new password.
func (c *Client) ChangePassword(ctx context.Context, current, next, confirm string) error {
	body := changePasswordRequest{Current: current, Next: next, Confirm: confirm}
	return c.do(ctx, http.MethodPost, "/api/clientes/cuenta/cambiar_password/", body, nil)
}
