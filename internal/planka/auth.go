package planka

import (
	"context"
	"errors"
	"time"
)

// Credentials holds the possible authentication sources, tried in
// order: an explicit access token, an API key, then an email/password
// exchange against /api/access-tokens.
type Credentials struct {
	Token    string
	APIKey   string
	Email    string
	Password string
}

type accessTokenEnvelope struct {
	Item struct {
		AccessToken string `json:"accessToken"`
	} `json:"item"`
}

// Authenticate resolves an access token from the first configured
// credential source. The email/password path performs one remote call;
// the token and API key paths are local.
func Authenticate(ctx context.Context, baseURL string, creds Credentials, timeout time.Duration) (string, error) {
	if creds.Token != "" {
		return creds.Token, nil
	}
	if creds.APIKey != "" {
		return creds.APIKey, nil
	}
	if creds.Email != "" && creds.Password != "" {
		// An unauthenticated client: the token endpoint is the one
		// call that doesn't need a bearer token.
		c := NewClient(baseURL, "", timeout)
		body := map[string]any{
			"emailOrUsername": creds.Email,
			"password":        creds.Password,
		}
		var env accessTokenEnvelope
		if err := c.Post(ctx, "access-tokens", body, &env); err != nil {
			return "", err
		}
		if env.Item.AccessToken == "" {
			return "", errors.New("planka: access-tokens response carried no token")
		}
		return env.Item.AccessToken, nil
	}
	return "", errors.New(
		"no authentication method configured: set PLANKA_API_TOKEN, PLANKA_API_KEY, or PLANKA_EMAIL+PLANKA_PASSWORD")
}
