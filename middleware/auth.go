package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ottshare/ott-share-hub/auth"
	"github.com/ottshare/ott-share-hub/policy"
	"github.com/ottshare/ott-share-hub/utils"
)

// ContextIdentityKey is the gin context key holding the verified *auth.Identity.
const ContextIdentityKey = "identity"

func bearerToken(ctx *gin.Context) string {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// AuthRequired rejects requests without a valid bearer token. Claims are
// trusted as embedded; the user record is not re-read per request, so a role
// change only takes effect once the token expires.
func AuthRequired(tokens *auth.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := bearerToken(ctx)
		if token == "" {
			utils.Fail(ctx, http.StatusUnauthorized, "인증이 필요합니다.")
			ctx.Abort()
			return
		}
		identity, err := tokens.Verify(token)
		if err != nil {
			utils.Fail(ctx, http.StatusUnauthorized, "토큰이 만료되었거나 유효하지 않습니다.")
			ctx.Abort()
			return
		}
		ctx.Set(ContextIdentityKey, identity)
		ctx.Next()
	}
}

// OptionalAuth attaches an identity when a valid token is present and
// silently proceeds anonymously otherwise.
func OptionalAuth(tokens *auth.Manager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if token := bearerToken(ctx); token != "" {
			if identity, err := tokens.Verify(token); err == nil {
				ctx.Set(ContextIdentityKey, identity)
			}
		}
		ctx.Next()
	}
}

// AdminRequired gates admin-scope routes. It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := policy.RequireAdmin(Identity(ctx)); err != nil {
			utils.Fail(ctx, http.StatusForbidden, "관리자 권한이 필요합니다.")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// Identity returns the verified identity from the context, or nil for an
// anonymous request.
func Identity(ctx *gin.Context) *auth.Identity {
	value, exists := ctx.Get(ContextIdentityKey)
	if !exists {
		return nil
	}
	identity, _ := value.(*auth.Identity)
	return identity
}
