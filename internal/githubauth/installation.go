// Package githubauth mints GitHub App installation tokens for callers that
// run without a static personal access token.
package githubauth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/bradleyfalzon/ghinstallation/v2"
)

// InstallationToken returns a short-lived installation access token for the
// app identified by appID/installationID, signing with the PEM key at
// keyPath. The token satisfies the task invariant that every task carries a
// non-empty auth token.
func InstallationToken(ctx context.Context, appID, installationID int64, keyPath string) (string, error) {
	if appID == 0 || installationID == 0 || keyPath == "" {
		return "", fmt.Errorf("github app credentials incomplete: need app id, installation id, and private key path")
	}

	transport, err := ghinstallation.NewKeyFromFile(http.DefaultTransport, appID, installationID, keyPath)
	if err != nil {
		return "", fmt.Errorf("loading GitHub App key %s: %w", keyPath, err)
	}

	token, err := transport.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("minting installation token: %w", err)
	}
	return token, nil
}
