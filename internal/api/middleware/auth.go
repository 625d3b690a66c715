package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/buenrollo/spots-admin/internal/api/handler/v1/response"
	"github.com/buenrollo/spots-admin/internal/pkg/jwthelper"
)

var errMissingBearerToken = errors.New("missing bearer token")

// CtxKeyEditorEmail holds the authenticated editor's email in the gin context.
const CtxKeyEditorEmail = "editor_email"

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT checks the bearer token issued by the console's identity
// provider and stores the editor's email for handlers downstream.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingBearerToken))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(jwthelper.ErrInvalidToken))
			return
		}

		ctx.Set(CtxKeyEditorEmail, claims.Email)
		ctx.Next()
	}
}
