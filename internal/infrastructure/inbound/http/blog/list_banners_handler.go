package blog_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	ports "blog-service/internal/domain/ports/output"
)

type BannerLister interface {
	ListBanners(ctx context.Context) ([]model.Banner, error)
}

type ListBannersHandler struct {
	bannerService BannerLister
	log           ports.Logger
}

func NewListBannersHandler(bannerService BannerLister, log ports.Logger) *ListBannersHandler {
	return &ListBannersHandler{
		bannerService: bannerService,
		log:           log,
	}
}

func (h *ListBannersHandler) ListBanners(c *gin.Context) {
	h.log.Debug("Handling ListBanners request")

	banners, err := h.bannerService.ListBanners(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, orEmpty(banners))
}
