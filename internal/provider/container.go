package provider

import (
	"github.com/shopease-next/internal/authz"
	"github.com/shopease-next/internal/cache"
	"github.com/shopease-next/internal/catalog"
	"github.com/shopease-next/internal/config"
	"github.com/shopease-next/internal/constants"
	"github.com/shopease-next/internal/logger"
	"github.com/shopease-next/internal/models"
	"github.com/shopease-next/internal/queue"
	"github.com/shopease-next/internal/repository"
	"github.com/shopease-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	Catalog     *catalog.Store

	// Repositories
	UserRepo    repository.UserRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	ReturnRepo  repository.ReturnRepository
	InquiryRepo repository.InquiryRepository

	// Services
	AuthzService       *authz.Service
	UserAuthService    *service.UserAuthService
	UserService        *service.UserService
	ProductService     *service.ProductService
	CartService        *service.CartService
	CheckoutService    *service.CheckoutService
	OrderService       *service.OrderService
	FulfillmentService *service.FulfillmentService
	ReturnService      *service.ReturnService
	InquiryService     *service.InquiryService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
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
		Catalog:     catalog.Default(),
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ReturnRepo = repository.NewReturnRepository(db)
	c.InquiryRepo = repository.NewInquiryRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}
	c.syncSuperAdminRoles()

	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.UserService = service.NewUserService(c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.Catalog)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo, c.Catalog)
	c.CheckoutService = service.NewCheckoutService(c.Config, c.CartRepo, c.OrderRepo, c.QueueClient)
	c.OrderService = service.NewOrderService(c.OrderRepo)
	c.FulfillmentService = service.NewFulfillmentService(c.Config, c.OrderRepo, c.QueueClient)
	c.ReturnService = service.NewReturnService(c.OrderRepo, c.ReturnRepo)
	c.InquiryService = service.NewInquiryService(c.InquiryRepo)
}

// syncSuperAdminRoles 为尚未绑定任何角色的管理员授予超级管理员角色
func (c *Container) syncSuperAdminRoles() {
	var admins []models.User
	if err := models.DB.Where("role = ?", constants.RoleAdmin).Find(&admins).Error; err != nil {
		logger.Warnw("provider_sync_super_admin_query_failed", "error", err)
		return
	}
	for _, admin := range admins {
		roles, err := c.AuthzService.GetAdminRoles(admin.ID)
		if err != nil {
			logger.Warnw("provider_sync_super_admin_roles_failed", "admin_id", admin.ID, "error", err)
			continue
		}
		if len(roles) > 0 {
			continue
		}
		if err := c.AuthzService.SetAdminRoles(admin.ID, []string{authz.SuperRole}); err != nil {
			logger.Warnw("provider_grant_super_admin_failed", "admin_id", admin.ID, "error", err)
		}
	}
}
