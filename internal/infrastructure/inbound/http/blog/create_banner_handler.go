package blog_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-service/internal/custom_errors"
	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type BannerCreator interface {
	CreateBanner(ctx context.Context, banner model.Banner) (*model.InsertResult, error)
}

type CreateBannerHandler struct {
	bannerService BannerCreator
	log           ports.Logger
}

func NewCreateBannerHandler(bannerService BannerCreator, log ports.Logger) *CreateBannerHandler {
	return &CreateBannerHandler{
		bannerService: bannerService,
		log:           log,
	}
}

// CreateBanner stores the request body verbatim. Anything other than a JSON
// object is rejected.
func (h *CreateBannerHandler) CreateBanner(c *gin.Context) {
	var banner model.Banner
	if err := c.ShouldBindJSON(&banner); err != nil {
		h.log.Debug("CreateBanner body rejected", slog.String("error", err.Error()))
		_ = c.Error(custom_errors.ErrInvalidBanner)
		return
	}

	result, err := h.bannerService.CreateBanner(c.Request.Context(), banner)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, result)
}
