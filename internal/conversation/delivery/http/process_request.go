package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the history query parameters.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidLimit
	}
	if req.Limit == 0 {
		req.Limit = h.recentWindow
	}
	return req, req.validate()
}
