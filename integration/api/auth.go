package api

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrymomot/storefront/core/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Email    string `json:"email"`
	Name     string `json:"nombre"`
	UserType string `json:"userType"`
}

// accessClaims mirrors the backend's access token payload.
type accessClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	Name     string `json:"nombre"`
	UserType string `json:"userType"`
}

// Login authenticates against the backend and returns the identity and token
// pair for the session store. Invalid credentials and transport failures
// surface as errors carrying the backend's message.
//
// Identity attributes missing from the response body are recovered from the
// access token's claims. The token is decoded without signature verification:
// the client only displays the attributes, authorization stays server-side.
func (c *Client) Login(ctx context.Context, email, password string) (session.Identity, session.TokenPair, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login/", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return session.Identity{}, session.TokenPair{}, err
	}

	identity := session.Identity{
		Email: resp.Email,
		Name:  resp.Name,
		Role:  roleFromUserType(resp.UserType),
	}

	claims := &accessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Access, claims); err == nil {
		if identity.Email == "" {
			identity.Email = claims.Email
		}
		if identity.Name == "" {
			identity.Name = claims.Name
		}
		if identity.Role == "" {
			identity.Role = roleFromUserType(claims.UserType)
		}
	}

	// Login email is the last-resort display fallback.
	if identity.Email == "" {
		identity.Email = email
	}
	if identity.Role == "" {
		identity.Role = session.RoleUser
	}

	return identity, session.TokenPair{Access: resp.Access, Refresh: resp.Refresh}, nil
}

func roleFromUserType(userType string) session.Role {
	switch userType {
	case string(session.RoleAdmin):
		return session.RoleAdmin
	case string(session.RoleUser):
		return session.RoleUser
	default:
		return ""
	}
}
