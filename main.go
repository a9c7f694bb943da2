package main

import (
	"log"
	"strings"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/atelierhq/agency_cms/biz/dal/model"
	"github.com/atelierhq/agency_cms/biz/handler"
	"github.com/atelierhq/agency_cms/biz/middleware"
	"github.com/atelierhq/agency_cms/biz/router"
	"github.com/atelierhq/agency_cms/biz/service"
	"github.com/atelierhq/agency_cms/pkg/config"
	"github.com/atelierhq/agency_cms/pkg/database"
	"github.com/atelierhq/agency_cms/pkg/lock"
	"github.com/atelierhq/agency_cms/pkg/redis"
	"github.com/atelierhq/agency_cms/pkg/storage"
	localstorage "github.com/atelierhq/agency_cms/pkg/storage/local"
	"github.com/atelierhq/agency_cms/pkg/validator"
)

const configFile = "config.yaml"

func main() {
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&model.Banner{}, &model.Service{}, &model.Blog{}); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	log.Printf("storage backend: %s", store.Type())

	var writeLock *lock.DistributedLock
	redisClient, err := redis.NewClient(cfg.Redis)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
		writeLock = lock.New(redisClient, "agency_cms:write_lock", 30*time.Second, 10*time.Second)
		log.Printf("distributed write lock enabled")
	}

	upload := &validator.UploadConfig{MaxFileSize: cfg.Upload.MaxSize}

	handlers := router.Handlers{
		Banner:  handler.NewBannerHandler(service.NewBanners(db, store), upload),
		Service: handler.NewServiceHandler(service.NewServices(db, store), upload),
		Blog:    handler.NewBlogHandler(service.NewBlogs(db, store), upload),
	}

	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
		server.WithMaxRequestBodySize(int(cfg.Upload.MaxSize)+1<<20),
	)
	h.Use(middleware.Recovery(), middleware.CORS(&cfg.CORS), middleware.Logging())

	router.Register(h, handlers, middleware.WriteLock(writeLock))

	// Local storage needs its upload directory exposed so stored URLs resolve.
	if ls, ok := store.(*localstorage.Storage); ok {
		baseURL := cfg.Storage.Local.BaseURL
		h.StaticFS(baseURL, &app.FS{
			Root:               ls.BasePath(),
			PathRewrite:        app.NewPathSlashesStripper(strings.Count(baseURL, "/")),
			AcceptByteRange:    true,
			GenerateIndexPages: false,
		})
	}

	log.Printf("listening on %s", cfg.Server.Address)
	h.Spin()
}
