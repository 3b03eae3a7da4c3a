package blog_http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	model "blog-service/internal/domain/models"
	blog_service "blog-service/internal/domain/ports/input/blog"
	ports "blog-service/internal/domain/ports/output"
)

const rootMessage = "Blog service is running"

// BlogAPI binds the blog handlers to the route table.
type BlogAPI struct {
	listPostsHandler           *ListPostsHandler
	listPostsByCategoryHandler *ListPostsByCategoryHandler
	searchPostsHandler         *SearchPostsHandler
	listBannersHandler         *ListBannersHandler
	createBannerHandler        *CreateBannerHandler
}

func NewBlogAPI(blogService blog_service.Service, log ports.Logger) *BlogAPI {
	return &BlogAPI{
		listPostsHandler:           NewListPostsHandler(blogService, log),
		listPostsByCategoryHandler: NewListPostsByCategoryHandler(blogService, log),
		searchPostsHandler:         NewSearchPostsHandler(blogService, log),
		listBannersHandler:         NewListBannersHandler(blogService, log),
		createBannerHandler:        NewCreateBannerHandler(blogService, log),
	}
}

func (a *BlogAPI) Register(r gin.IRoutes) {
	r.GET("/", Root)
	r.GET("/allBlogs", a.listPostsHandler.ListPosts)
	r.GET("/blogs/:category", a.listPostsByCategoryHandler.ListPostsByCategory)
	r.GET("/allSearch/:key", a.searchPostsHandler.SearchPosts)
	// An empty key never reaches the parameterised route.
	r.GET("/allSearch/", a.searchPostsHandler.SearchPosts)
	r.GET("/allBanner", a.listBannersHandler.ListBanners)
	r.POST("/allBanner", a.createBannerHandler.CreateBanner)
}

func Root(c *gin.Context) {
	c.String(http.StatusOK, rootMessage)
}

func orEmpty(docs []model.Document) []model.Document {
	if docs == nil {
		return []model.Document{}
	}
	return docs
}
