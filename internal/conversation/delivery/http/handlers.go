package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"objection-handler/pkg/response"
)

// Process godoc
// @Summary     Process a conversational utterance
// @Description Runs the utterance through the analyzer, generator, assessor, and context manager, and returns a suggested reply.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       body body     processReq  true "Utterance and strategy"
// @Success     200  {object} processResp
// @Failure     400  {object} errorResp   "Missing required parameters"
// @Failure     429  {object} errorResp   "Rate limit exceeded"
// @Failure     500  {object} failureResp "Processing failed; carries a fallback reply"
// @Router      /api/v1/conversation/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		h.l.Warnf(ctx, "processProcessReq: %v", err)
		c.JSON(http.StatusBadRequest, errorResp{Error: h.mapError(err).Message})
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		httpErr := h.mapError(err)
		if httpErr.StatusCode == http.StatusBadRequest {
			c.JSON(httpErr.StatusCode, errorResp{Error: httpErr.Message})
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		c.JSON(httpErr.StatusCode, h.newFailureResp(httpErr.Message, err))
		return
	}

	c.JSON(http.StatusOK, h.newProcessResp(output))
}

// History godoc
// @Summary     Recent conversation context
// @Description Returns the most recent processed exchanges, oldest first.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       limit query    int false "Number of items (default: 3)"
// @Success     200   {object} historyResp
// @Failure     400   {object} response.Resp "Bad Request"
// @Failure     500   {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversation/history [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processHistoryReq(c)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	items, err := h.uc.RecentContext(ctx, req.Limit)
	if err != nil {
		h.l.Errorf(ctx, "uc.RecentContext: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(items, req.Limit))
}
