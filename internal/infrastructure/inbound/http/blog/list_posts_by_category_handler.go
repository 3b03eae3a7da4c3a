package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type CategoryPostLister interface {
	ListPostsByCategory(ctx context.Context, category string) ([]model.Post, error)
}

type ListPostsByCategoryHandler struct {
	postService CategoryPostLister
	log         ports.Logger
}

func NewListPostsByCategoryHandler(postService CategoryPostLister, log ports.Logger) *ListPostsByCategoryHandler {
	return &ListPostsByCategoryHandler{
		postService: postService,
		log:         log,
	}
}

func (h *ListPostsByCategoryHandler) ListPostsByCategory(c *gin.Context) {
	category := c.Param("category")
	h.log.Debug("Handling ListPostsByCategory request", slog.String("category", category))

	posts, err := h.postService.ListPostsByCategory(c.Request.Context(), category)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(posts))
}
