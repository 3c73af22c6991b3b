package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"mockgraph/internal/http/dto"
	"mockgraph/internal/http/resp"
	"mockgraph/internal/metrics"
)

func (h *Handler) GraphQL(c *gin.Context) {
	var req dto.GraphQLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveOperation(metrics.OutcomeBadRequest)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "invalid json"})
		return
	}
	h.execute(c, req)
}

// GraphQLGet serves the GraphiQL console to browsers and executes the query
// string parameters otherwise.
func (h *Handler) GraphQLGet(c *gin.Context) {
	if h.cfg.GraphiQL && c.Query("query") == "" && acceptsHTML(c) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", graphiQLPage)
		return
	}

	vars, err := dto.DecodeVariables(c.Query("variables"))
	if err != nil {
		h.metrics.ObserveOperation(metrics.OutcomeBadRequest)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "variables must be a JSON object"})
		return
	}
	h.execute(c, dto.GraphQLRequest{
		Query:         c.Query("query"),
		OperationName: c.Query("operationName"),
		Variables:     vars,
	})
}

func (h *Handler) execute(c *gin.Context, req dto.GraphQLRequest) {
	if strings.TrimSpace(req.Query) == "" {
		h.metrics.ObserveOperation(metrics.OutcomeBadRequest)
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Code: resp.CodeBadRequest, Message: "query required"})
		return
	}

	result := h.schema.Exec(c.Request.Context(), req.Query, req.OperationName, req.Variables)
	if len(result.Errors) == 0 {
		h.metrics.ObserveOperation(metrics.OutcomeOK)
		c.JSON(http.StatusOK, result)
		return
	}

	h.log.Warn("graphql operation failed",
		zap.String("operation", req.OperationName),
		zap.String("error", result.Errors[0].Message),
		zap.Int("errors", len(result.Errors)),
	)
	// A response without data means the document never executed.
	if len(result.Data) == 0 || string(result.Data) == "null" {
		h.metrics.ObserveOperation(metrics.OutcomeBadRequest)
		c.JSON(http.StatusBadRequest, result)
		return
	}
	h.metrics.ObserveOperation(metrics.OutcomeError)
	c.JSON(http.StatusOK, result)
}

func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
