package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type PostLister interface {
	ListPosts(ctx context.Context) ([]model.Post, error)
}

type ListPostsHandler struct {
	postService PostLister
	log         ports.Logger
}

func NewListPostsHandler(postService PostLister, log ports.Logger) *ListPostsHandler {
	return &ListPostsHandler{
		postService: postService,
		log:         log,
	}
}

// ListPosts answers GET /allBlogs. The sort query parameter is accepted but
// has no effect on ordering.
func (h *ListPostsHandler) ListPosts(c *gin.Context) {
	h.log.Debug("Handling ListPosts request", slog.String("sort", c.Query("sort")))

	posts, err := h.postService.ListPosts(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	h.log.Debug("ListPosts succeeded", slog.Int("count", len(posts)))
	c.JSON(http.StatusOK, orEmpty(posts))
}
