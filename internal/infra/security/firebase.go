package security

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	domainauth "marketchat/internal/domain/auth"
	domainuser "marketchat/internal/domain/user"
)

// FirebaseVerifier accepts Firebase ID tokens; the Firebase UID becomes the user id.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, projectID string) (*FirebaseVerifier, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return nil, errors.New("security: firebase project id is required")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID})
	if err != nil {
		return nil, fmt.Errorf("firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("firebase auth: %w", err)
	}
	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (domainauth.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainauth.Identity{}, domainauth.ErrTokenRequired
	}
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return domainauth.Identity{}, fmt.Errorf("%w: %v", domainauth.ErrInvalidToken, err)
	}
	identity := domainauth.Identity{UserID: domainuser.ID(decoded.UID)}
	if name, ok := decoded.Claims["name"].(string); ok {
		identity.Name = name
	}
	if raw, ok := decoded.Claims["roles"].([]interface{}); ok {
		values := make([]string, 0, len(raw))
		for _, r := range raw {
			if s, ok := r.(string); ok {
				values = append(values, s)
			}
		}
		identity.Roles = domainuser.ParseRoles(values)
	}
	return identity, nil
}

var _ domainauth.Verifier = (*FirebaseVerifier)(nil)
