package report

import (
	"context"
	"crypto/rsa"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v57/github"
)

// appJWTTTL is the lifetime of a minted App JWT. GitHub caps it at ten
// minutes.
const appJWTTTL = 10 * time.Minute

// AppTokenSource mints installation access tokens for a GitHub App. The App
// authenticates with a short-lived RS256 JWT, which is then exchanged for
// an installation token scoped to the repositories the App can see.
type AppTokenSource struct {
	appID          int64
	installationID int64
	key            *rsa.PrivateKey
}

// NewAppTokenSource parses the App's PEM-encoded RSA private key and
// returns a token source for the given App and installation.
func NewAppTokenSource(appID, installationID int64, privateKeyPEM []byte) (*AppTokenSource, error) {
	if appID == 0 || installationID == 0 {
		return nil, fmt.Errorf("app ID and installation ID are required")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse App private key: %w", err)
	}

	return &AppTokenSource{
		appID:          appID,
		installationID: installationID,
		key:            key,
	}, nil
}

// AppJWT returns a freshly signed App JWT. The issued-at claim is backdated
// slightly to absorb clock skew against GitHub's servers.
func (s *AppTokenSource) AppJWT() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    strconv.FormatInt(s.appID, 10),
		IssuedAt:  jwt.NewNumericDate(now.Add(-30 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(appJWTTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign App JWT: %w", err)
	}
	return signed, nil
}

// InstallationToken exchanges a fresh App JWT for an installation access
// token.
func (s *AppTokenSource) InstallationToken(ctx context.Context) (string, error) {
	appJWT, err := s.AppJWT()
	if err != nil {
		return "", err
	}

	client := github.NewClient(nil).WithAuthToken(appJWT)
	tok, _, err := client.Apps.CreateInstallationToken(ctx, s.installationID, nil)
	if err != nil {
		return "", fmt.Errorf("create installation token: %w", err)
	}

	if tok.GetExpiresAt().Before(time.Now().Add(5 * time.Minute)) {
		slog.Warn("installation token expires soon", "expires_at", tok.GetExpiresAt())
	}
	return tok.GetToken(), nil
}

// NewGitHubProviderFromApp creates a GitHub provider authenticated as an
// App installation.
func NewGitHubProviderFromApp(ctx context.Context, src *AppTokenSource, owner, name string) (*GitHubProvider, error) {
	token, err := src.InstallationToken(ctx)
	if err != nil {
		return nil, err
	}
	return NewGitHubProvider(token, owner, name)
}
