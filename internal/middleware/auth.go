package middleware

import (
	"strings"

	"github.com/causeconnect-dev/causeconnect/internal/auth"
	"github.com/causeconnect-dev/causeconnect/internal/types"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware extracts a bearer token and, when it verifies, attaches the
// identity to the request context. Missing or invalid tokens do NOT abort the
// request: the GraphQL layer surfaces authentication failures per-resolver,
// so public mutations (signup, login) keep working through the same endpoint.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")

		if authHeader == "" {
			ctx.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)

		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			ctx.Next()
			return
		}

		claims, err := auth.VerifyJWT(parts[1])

		if err != nil {
			ctx.Next()
			return
		}

		user := &auth.CurrentUser{
			ID:    claims.UserID,
			Email: claims.Email,
			Role:  claims.Role,
		}

		ctx.Set(types.ContextUserKey, user)
		ctx.Request = ctx.Request.WithContext(auth.WithUser(ctx.Request.Context(), user))
		ctx.Next()
	}
}
