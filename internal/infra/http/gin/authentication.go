package ginserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	gin "github.com/gin-gonic/gin"

	domainauth "marketchat/internal/domain/auth"
	domainchat "marketchat/internal/domain/chat"
	domainuser "marketchat/internal/domain/user"
)

const principalContextKey = "marketchat.principal"

type principal struct {
	ID    string
	Name  string
	Roles []string
	Token string
}

func (p principal) Caller() domainchat.Caller {
	return domainchat.Caller{UserID: p.ID, Credential: p.Token}
}

// AuthMiddleware resolves the bearer credential into a principal. Requests without a
// valid credential continue anonymously; handlers decide whether that is acceptable.
// Browsers cannot set headers on websocket upgrades, so those may pass access_token.
type AuthMiddleware struct {
	Verifier domainauth.Verifier
	Logger   *slog.Logger
}

func (m AuthMiddleware) Handle(c *gin.Context) {
	token := extractBearerToken(c.GetHeader("Authorization"))
	if token == "" && isWebsocketUpgrade(c.Request) {
		token = strings.TrimSpace(c.Query("access_token"))
	}
	if token == "" || m.Verifier == nil {
		c.Next()
		return
	}
	identity, err := m.Verifier.Verify(c.Request.Context(), token)
	if err != nil {
		if !errors.Is(err, domainauth.ErrSessionNotFound) && m.Logger != nil {
			m.Logger.Debug("token validation failed", "error", err)
		}
		c.Next()
		return
	}
	setPrincipal(c, principal{
		ID:    string(identity.UserID),
		Name:  identity.Name,
		Roles: mapRoles(identity.Roles),
		Token: token,
	})
	c.Next()
}

func mapRoles(roles []domainuser.Role) []string {
	result := make([]string, 0, len(roles))
	for _, r := range roles {
		result = append(result, string(r))
	}
	return result
}

func setPrincipal(c *gin.Context, p principal) {
	c.Set(principalContextKey, p)
	c.Set("user_id", p.ID)
}

func currentPrincipal(c *gin.Context) (principal, bool) {
	val, exists := c.Get(principalContextKey)
	if !exists {
		return principal{}, false
	}
	p, ok := val.(principal)
	return p, ok
}

// requirePrincipal writes 401 and returns false when the request is anonymous.
func requirePrincipal(c *gin.Context) (principal, bool) {
	p, ok := currentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorBody(domainchat.ErrUnauthenticated, "sign in required"))
		return principal{}, false
	}
	return p, true
}

func extractBearerToken(header string) string {
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(header[7:])
}

func isWebsocketUpgrade(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get("Upgrade"), "websocket")
}
