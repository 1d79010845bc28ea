package provider

import (
	"time"

	"github.com/sofreh-next/internal/cache"
	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/config"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/queue"
	"github.com/sofreh-next/internal/repository"
	"github.com/sofreh-next/internal/service"
)

// Container is the dependency-injection container.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	CookieStore *cart.CookieStore

	// Repositories
	MenuRepo     repository.MenuRepository
	CategoryRepo repository.CategoryRepository
	ReviewRepo   repository.ReviewRepository
	ReceiptRepo  repository.ReceiptRepository

	// Services
	MenuService     *service.MenuService
	ReviewService   *service.ReviewService
	CheckoutService *service.CheckoutService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
		CookieStore: cart.NewCookieStore(cfg.Cart.CookieTTLDays),
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.MenuRepo = repository.NewMenuRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ReviewRepo = repository.NewReviewRepository(db)
	c.ReceiptRepo = repository.NewReceiptRepository(db)
}

func (c *Container) initServices() {
	menuCacheTTL := time.Duration(c.Config.Menu.CacheTTLSeconds) * time.Second
	c.MenuService = service.NewMenuService(c.MenuRepo, c.CategoryRepo, menuCacheTTL)
	c.ReviewService = service.NewReviewService(c.ReviewRepo, c.MenuRepo)
	c.CheckoutService = service.NewCheckoutService(c.ReceiptRepo, c.QueueClient)
}
