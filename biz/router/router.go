package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/atelierhq/agency_cms/biz/handler"
)

// Handlers groups the per-resource handlers registered on the server.
type Handlers struct {
	Banner  *handler.BannerHandler
	Service *handler.ServiceHandler
	Blog    *handler.BlogHandler
}

// Register configures the HTTP routes. writeLock guards every mutating
// endpoint; reads bypass it.
func Register(r *server.Hertz, h Handlers, writeLock app.HandlerFunc) {
	api := r.Group("/api")

	banners := api.Group("/banners")
	banners.POST("/add", writeLock, h.Banner.Add)
	banners.PUT("/update/:id", writeLock, h.Banner.Update)
	banners.GET("/all", h.Banner.List)
	banners.GET("/:id", h.Banner.Get)
	banners.DELETE("/delete/:id", writeLock, h.Banner.Delete)

	services := api.Group("/services")
	services.POST("/add", writeLock, h.Service.Add)
	services.GET("/all", h.Service.List)
	services.DELETE("/delete/:id", writeLock, h.Service.Delete)

	blogs := api.Group("/blogs")
	blogs.GET("/all", h.Blog.ListActive)
	blogs.GET("/", h.Blog.ListAll)
	blogs.POST("/create", writeLock, h.Blog.Create)
	blogs.PATCH("/:id", writeLock, h.Blog.Toggle)
	blogs.DELETE("/:id", writeLock, h.Blog.Delete)

	r.GET("/ping", handler.Ping)
}
