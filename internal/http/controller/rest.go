package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mockgraph/internal/http/dto"
	"mockgraph/internal/http/resp"
)

func (h *Handler) Index(c *gin.Context) {
	c.String(http.StatusOK, h.cfg.Kind.Welcome())
}

// ListAll returns the whole fixture store, unfiltered.
func (h *Handler) ListAll(c *gin.Context) {
	records, err := h.listing.List(c.Request.Context())
	if err != nil {
		h.log.Error("list records failed", zap.String("path", h.listing.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Code: resp.CodeInternalError, Message: "failed to list records"})
		return
	}
	c.JSON(http.StatusOK, records)
}
