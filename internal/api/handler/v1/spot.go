package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/buenrollo/spots-admin/internal/api/handler/v1/request"
	"github.com/buenrollo/spots-admin/internal/api/handler/v1/response"
	"github.com/buenrollo/spots-admin/internal/api/middleware"
	"github.com/buenrollo/spots-admin/internal/attachment"
	"github.com/buenrollo/spots-admin/internal/domain"
	"github.com/buenrollo/spots-admin/internal/service"
)

type SpotService interface {
	CreateSpot(ctx context.Context, editorEmail string, draft domain.SpotDraft, resolver *attachment.Resolver) (domain.Spot, error)
	UpdateSpot(ctx context.Context, editorEmail string, draft domain.SpotDraft, resolver *attachment.Resolver) (domain.Spot, error)
	GetSpots(ctx context.Context, sectionID uint) ([]domain.Spot, error)
}

type SpotHandler struct {
	svc SpotService
}

func NewSpotHandler(svc SpotService) *SpotHandler {
	return &SpotHandler{
		svc: svc,
	}
}

// HandleCreateSpot godoc
// @Summary      Create a spot
// @Description  Validates the editor form, builds the multipart payload and submits it to the listings API
// @Tags         spots
// @Accept       multipart/form-data
// @Produce      json
// @Param        sectionID  path      int  true  "Section ID"
// @Success      201  {object}  response.SubmitSpotResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /sections/{sectionID}/spots [post]
// @Security BearerAuth
func (h *SpotHandler) HandleCreateSpot(ctx *gin.Context) {
	sectionID, err := parseUintParam(ctx, "sectionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	draft, resolver, logoErr, respErr := h.bindSubmission(ctx, sectionID, 0)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	editorEmail := ctx.GetString(middleware.CtxKeyEditorEmail)

	spot, err := h.svc.CreateSpot(ctx.Request.Context(), editorEmail, draft, resolver)
	if err != nil {
		h.renderSubmitErr(ctx, "HandleCreateSpot", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.SubmitSpotResponse{
		Message:   fmt.Sprintf("spot %v created successfully", spot.Name),
		Spot:      spot,
		LogoError: logoErr,
	})
}

// HandleUpdateSpot godoc
// @Summary      Update a spot
// @Description  Validates the editor form and submits the update; an existing logo URL is resent unchanged unless a new file replaces it
// @Tags         spots
// @Accept       multipart/form-data
// @Produce      json
// @Param        spotID  path      int  true  "Spot ID"
// @Success      200  {object}  response.SubmitSpotResponse
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      502  {object}  response.Err
// @Router       /spots/{spotID} [put]
// @Security BearerAuth
func (h *SpotHandler) HandleUpdateSpot(ctx *gin.Context) {
	// A malformed id falls through as zero so the missing-identity guard
	// rejects it locally, before any payload is built.
	spotID, _ := parseUintParam(ctx, "spotID")

	sectionID, err := parseUintForm(ctx, "seccion_id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	draft, resolver, logoErr, respErr := h.bindSubmission(ctx, sectionID, spotID)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	editorEmail := ctx.GetString(middleware.CtxKeyEditorEmail)

	spot, err := h.svc.UpdateSpot(ctx.Request.Context(), editorEmail, draft, resolver)
	if err != nil {
		if errors.Is(err, service.ErrMissingSpotID) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrMissingSpotID))
			return
		}
		if errors.Is(err, service.ErrSpotNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("spot", "id", spotID))
			return
		}

		h.renderSubmitErr(ctx, "HandleUpdateSpot", err)
		return
	}

	ctx.JSON(http.StatusOK, response.SubmitSpotResponse{
		Message:   "spot updated successfully",
		Spot:      spot,
		LogoError: logoErr,
	})
}

// HandleGetSpots godoc
// @Summary      List the spots of a section
// @Tags         spots
// @Produce      json
// @Param        sectionID  path      int  true  "Section ID"
// @Success      200  {array}   domain.Spot
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sections/{sectionID}/spots [get]
// @Security BearerAuth
func (h *SpotHandler) HandleGetSpots(ctx *gin.Context) {
	sectionID, err := parseUintParam(ctx, "sectionID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	spots, err := h.svc.GetSpots(ctx.Request.Context(), sectionID)
	if err != nil {
		if errors.Is(err, service.ErrSectionNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("section", "id", sectionID))
			return
		}

		err = fmt.Errorf("HandleGetSpots -> h.svc.GetSpots -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, spots)
}

// bindSubmission binds and validates the editor form and stages the logo
// upload, if any. An oversized or mistyped file does not fail the request;
// its error is carried back so the console can surface it while the rest
// of the form still submits, matching the editor's selection-time checks.
func (h *SpotHandler) bindSubmission(ctx *gin.Context, sectionID, spotID uint) (domain.SpotDraft, *attachment.Resolver, string, *response.Err) {
	var form request.SpotForm
	if err := ctx.ShouldBind(&form); err != nil {
		return domain.SpotDraft{}, nil, "", response.ErrBadRequest(err)
	}

	if err := form.Validate(); err != nil {
		return domain.SpotDraft{}, nil, "", response.ErrValidation(err)
	}

	draft, err := form.ToDraft(sectionID, spotID)
	if err != nil {
		return domain.SpotDraft{}, nil, "", response.ErrBadRequest(err)
	}

	resolver := attachment.NewResolver()
	logoErr := ""

	// FormFile honors only the first part when the client sends several.
	fileHeader, err := ctx.FormFile("logo")
	switch {
	case err == nil:
		src, openErr := fileHeader.Open()
		if openErr != nil {
			return domain.SpotDraft{}, nil, "", response.ErrBadRequest(openErr)
		}
		stageErr := resolver.Stage(fileHeader.Filename, fileHeader.Size, src)
		_ = src.Close()
		if stageErr != nil {
			if !errors.Is(stageErr, attachment.ErrFileTooLarge) && !errors.Is(stageErr, attachment.ErrUnsupportedType) {
				_ = resolver.Close()
				return domain.SpotDraft{}, nil, "", response.ErrInternalServerError(stageErr)
			}
			logoErr = stageErr.Error()
		}
	case errors.Is(err, http.ErrMissingFile):
		// No upload; the resolver falls back to the retained URL, if any.
	default:
		return domain.SpotDraft{}, nil, "", response.ErrBadRequest(err)
	}

	return draft, resolver, logoErr, nil
}

func (h *SpotHandler) renderSubmitErr(ctx *gin.Context, recv string, err error) {
	if errors.Is(err, service.ErrSubmissionInFlight) {
		response.RenderErr(ctx, response.ErrConflict(service.ErrSubmissionInFlight))
		return
	}

	// The remote cause stays in the log; the editor gets a generic
	// message and keeps its state for a retry.
	err = fmt.Errorf("%v -> %w", recv, err)
	response.RenderErr(ctx, response.ErrSubmissionFailed(err))
}

func parseUintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(parsed), nil
}

func parseUintForm(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.PostForm(name)

	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %v %q", name, raw)
	}

	return uint(parsed), nil
}
