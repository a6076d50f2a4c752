package api

import (
	"errors"
	"io"
	"net/http"

	reqdto "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/dto/request"
	resdto "github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/dto/response"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/httperr"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/errs"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/commands"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RecoveryHandler struct {
	cmds commands.RecoveryCommands
	q    queries.RecoveryQueries
}

func NewRecoveryHandler(cmds commands.RecoveryCommands, q queries.RecoveryQueries) *RecoveryHandler {
	return &RecoveryHandler{cmds: cmds, q: q}
}

// @Summary Process abandoned carts
// @Description Send the next due recovery email for a batch of carts, or preview-send one cart
// @Tags abandoned-carts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProcessRequest false "Process request"
// @Success 200 {object} resdto.ProcessResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/abandoned-carts/process [post]
func (h *RecoveryHandler) Process(c *gin.Context) {
	var req reqdto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Run(c.Request.Context(), req.ToRunParams())
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrCartNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
		case errs.Is(err, commands.ErrCandidateQueryFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load recovery candidates", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Recovery run failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromRunResult(result))
}

// @Summary Preview next recovery step
// @Description Show whether a cart is due and what its next email would contain
// @Tags abandoned-carts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.NextStepResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/abandoned-carts/{id}/next-step [get]
func (h *RecoveryHandler) NextStep(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.NextStep(c.Request.Context(), id)
	if err != nil {
		switch {
		case errs.Is(err, queries.ErrCartNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
		case errs.Is(err, queries.ErrOwnerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Cart owner not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load next step", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromNextStepView(view))
}
