package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/remonte/internal/audit"
	"github.com/BruksfildServices01/remonte/internal/cache"
	"github.com/BruksfildServices01/remonte/internal/config"
	"github.com/BruksfildServices01/remonte/internal/domain/rules"
	"github.com/BruksfildServices01/remonte/internal/dto"
	"github.com/BruksfildServices01/remonte/internal/handlers"
	"github.com/BruksfildServices01/remonte/internal/httperr"
	"github.com/BruksfildServices01/remonte/internal/imaging"
	infraRepo "github.com/BruksfildServices01/remonte/internal/infra/repository"
	"github.com/BruksfildServices01/remonte/internal/infra/objectstore"
	"github.com/BruksfildServices01/remonte/internal/middleware"
	"github.com/BruksfildServices01/remonte/internal/models"
	ucMaster "github.com/BruksfildServices01/remonte/internal/usecase/master"
	ucOrder "github.com/BruksfildServices01/remonte/internal/usecase/order"
)

// Deps are the process-wide collaborators the routes are built from.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger
	Cache  cache.Cache
	Audit  *audit.Dispatcher

	// Storage may be nil; photo uploads are then rejected.
	Storage objectstore.Storage

	// Welcome is called with the email of every new client.
	Welcome func(email string)
}

type crud interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Get(c *gin.Context)
	Update(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	httperr.UseJSONFieldNames()

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.CORSMiddleware(),
		middleware.Requester(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// INFRA
	// ======================================================
	policy := rules.NewPolicy(d.Config.AllowedEmailDomains)

	specialityRepo := infraRepo.NewSpecialityRepository(d.DB)
	clientRepo := infraRepo.NewClientRepository(d.DB)
	serviceRepo := infraRepo.NewServiceRepository(d.DB)
	reviewRepo := infraRepo.NewReviewRepository(d.DB)
	masterRepo := infraRepo.NewMasterGormRepository(d.DB)
	orderRepo := infraRepo.NewOrderGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	listOrdersUC := ucOrder.NewListOrders(orderRepo)
	changePriceUC := ucOrder.NewChangePrice(orderRepo, d.Audit)

	statisticsUC := ucMaster.NewStatistics(masterRepo)
	proUC := ucMaster.NewMatchProfessionals(masterRepo)
	uploadPhotoUC := ucMaster.NewUploadPhoto(masterRepo, imaging.NewNormalizer(), d.Storage, d.Audit)

	// ======================================================
	// HANDLERS (operation -> request schema)
	// ======================================================
	specialities := handlers.NewResourceHandler(handlers.Resource[models.Speciality]{
		Entity:    "speciality",
		Repo:      specialityRepo,
		IDOf:      func(m *models.Speciality) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Speciality] { return &dto.SpecialityRequest{} },
		NewPatch:  func() handlers.Patcher[models.Speciality] { return &dto.SpecialityPatch{} },
	}, policy, d.Audit)

	clients := handlers.NewResourceHandler(handlers.Resource[models.Client]{
		Entity:    "client",
		Repo:      clientRepo,
		IDOf:      func(m *models.Client) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Client] { return &dto.ClientRequest{} },
		NewPatch:  func() handlers.Patcher[models.Client] { return &dto.ClientPatch{} },
		AfterCreate: func(m *models.Client) {
			if d.Welcome != nil {
				d.Welcome(m.Email)
			}
		},
	}, policy, d.Audit)

	masters := handlers.NewResourceHandler(handlers.Resource[models.Master]{
		Entity:    "master",
		Repo:      masterRepo,
		IDOf:      func(m *models.Master) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Master] { return &dto.MasterRequest{} },
		NewPatch:  func() handlers.Patcher[models.Master] { return &dto.MasterPatch{} },
	}, policy, d.Audit)

	services := handlers.NewResourceHandler(handlers.Resource[models.Service]{
		Entity:    "service",
		Repo:      serviceRepo,
		IDOf:      func(m *models.Service) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Service] { return &dto.ServiceRequest{} },
		NewPatch:  func() handlers.Patcher[models.Service] { return &dto.ServicePatch{} },
	}, policy, d.Audit)

	orders := handlers.NewResourceHandler(handlers.Resource[models.Order]{
		Entity:    "order",
		Repo:      orderRepo,
		IDOf:      func(m *models.Order) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Order] { return &dto.OrderRequest{} },
		NewPatch:  func() handlers.Patcher[models.Order] { return &dto.OrderPatch{} },
	}, policy, d.Audit)

	reviews := handlers.NewResourceHandler(handlers.Resource[models.Review]{
		Entity:    "review",
		Repo:      reviewRepo,
		IDOf:      func(m *models.Review) uint { return m.ID },
		NewCreate: func() handlers.Creator[models.Review] { return &dto.ReviewRequest{} },
		NewPatch:  func() handlers.Patcher[models.Review] { return &dto.ReviewPatch{} },
	}, policy, d.Audit)

	orderHandler := handlers.NewOrderHandler(listOrdersUC, changePriceUC)
	masterHandler := handlers.NewMasterHandler(statisticsUC, proUC, uploadPhotoUC)
	exportHandler := handlers.NewExportHandler(masterRepo, clientRepo)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")

	// audit rows are written asynchronously and are never served from cache
	api.GET("/audit-logs", auditLogsHandler.List)

	cached := api.Group("/")
	cached.Use(middleware.ResponseCache(d.Cache, d.Config.CacheTTL, d.Log))
	{
		cached.GET("/masters/statistics", masterHandler.Statistics)
		cached.GET("/masters/pro", masterHandler.Pro)
		cached.GET("/masters/export", exportHandler.Masters)
		cached.POST("/masters/:id/image", masterHandler.UploadImage)
		cached.GET("/clients/export", exportHandler.Clients)

		cached.POST("/orders/:id/change_price", orderHandler.ChangePrice)
		cached.PATCH("/orders/:id/change_price", orderHandler.ChangePrice)

		resource(cached, "/specialities", specialities, nil)
		resource(cached, "/clients", clients, nil)
		resource(cached, "/masters", masters, nil)
		resource(cached, "/services", services, nil)
		resource(cached, "/orders", orders, orderHandler.List)
		resource(cached, "/reviews", reviews, nil)
	}
}

// resource registers the six CRUD operations. list overrides the plain listing.
func resource(g *gin.RouterGroup, path string, h crud, list gin.HandlerFunc) {
	if list == nil {
		list = h.List
	}

	g.GET(path, list)
	g.POST(path, h.Create)
	g.GET(path+"/:id", h.Get)
	g.PUT(path+"/:id", h.Update)
	g.PATCH(path+"/:id", h.Patch)
	g.DELETE(path+"/:id", h.Delete)
}
