package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/buenrollo/spots-admin/internal/api/handler/v1/response"
	"github.com/buenrollo/spots-admin/internal/api/middleware"
)

// HandleGetSession godoc
// @Summary      Describe the authenticated session
// @Description  Returns the editor's email and the welcome display name (the email's local part)
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      401  {object}  response.Err
// @Router       /session [get]
// @Security BearerAuth
func HandleGetSession(ctx *gin.Context) {
	email := ctx.GetString(middleware.CtxKeyEditorEmail)

	welcome, _, _ := strings.Cut(email, "@")

	ctx.JSON(http.StatusOK, response.SessionResponse{
		Email:   email,
		Welcome: welcome,
	})
}
