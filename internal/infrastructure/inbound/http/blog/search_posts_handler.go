package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostSearcher interface {
	SearchPosts(ctx context.Context, key string) ([]model.Post, error)
}

type SearchPostsHandler struct {
	postService PostSearcher
	log         ports.Logger
}

func NewSearchPostsHandler(postService PostSearcher, log ports.Logger) *SearchPostsHandler {
	return &SearchPostsHandler{
		postService: postService,
		log:         log,
	}
}

type SearchPostsResponse struct {
	Data []model.Post `json:"data"`
}

func (h *SearchPostsHandler) SearchPosts(c *gin.Context) {
	key := c.Param("key")
	h.log.Debug("Handling SearchPosts request", slog.String("key", key))

	posts, err := h.postService.SearchPosts(c.Request.Context(), key)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, SearchPostsResponse{Data: orEmpty(posts)})
}
