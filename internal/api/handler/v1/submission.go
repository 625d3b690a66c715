package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buenrollo/spots-admin/internal/api/handler/v1/response"
	"github.com/buenrollo/spots-admin/internal/domain"
)

type SubmissionService interface {
	GetRecent(ctx context.Context, limit int) ([]domain.Submission, error)
	GetBySection(ctx context.Context, sectionID uint, limit int) ([]domain.Submission, error)
}

type SubmissionHandler struct {
	svc SubmissionService
}

func NewSubmissionHandler(svc SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		svc: svc,
	}
}

// HandleGetSubmissions godoc
// @Summary      List recent editor submissions
// @Description  The audit trail of pushes to the listings API, newest first
// @Tags         submissions
// @Produce      json
// @Param        section_id  query     int  false  "Filter by section"
// @Param        limit       query     int  false  "Maximum rows, capped at 50"
// @Success      200  {array}   domain.Submission
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /submissions [get]
// @Security BearerAuth
func (h *SubmissionHandler) HandleGetSubmissions(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit %q", raw)))
			return
		}
		limit = parsed
	}

	var (
		submissions []domain.Submission
		err         error
	)
	if raw := ctx.Query("section_id"); raw != "" {
		sectionID, parseErr := strconv.ParseUint(raw, 10, 32)
		if parseErr != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid section_id %q", raw)))
			return
		}
		submissions, err = h.svc.GetBySection(ctx.Request.Context(), uint(sectionID), limit)
	} else {
		submissions, err = h.svc.GetRecent(ctx.Request.Context(), limit)
	}

	if err != nil {
		err = fmt.Errorf("HandleGetSubmissions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, submissions)
}
