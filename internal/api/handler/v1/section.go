package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/buenrollo/spots-admin/internal/api/handler/v1/response"
	"github.com/buenrollo/spots-admin/internal/domain"
)

type SectionService interface {
	GetSections(ctx context.Context) ([]domain.Section, error)
}

type SectionHandler struct {
	svc SectionService
}

func NewSectionHandler(svc SectionService) *SectionHandler {
	return &SectionHandler{
		svc: svc,
	}
}

// HandleGetSections godoc
// @Summary      List all sections
// @Tags         sections
// @Produce      json
// @Success      200  {array}   domain.Section
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sections [get]
// @Security BearerAuth
func (h *SectionHandler) HandleGetSections(ctx *gin.Context) {
	sections, err := h.svc.GetSections(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetSections -> h.svc.GetSections -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, sections)
}
