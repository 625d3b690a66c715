package api

import (
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/buenrollo/spots-admin/docs"
	v1 "github.com/buenrollo/spots-admin/internal/api/handler/v1"
	"github.com/buenrollo/spots-admin/internal/api/middleware"
	"github.com/buenrollo/spots-admin/internal/cache"
	"github.com/buenrollo/spots-admin/internal/config"
	"github.com/buenrollo/spots-admin/internal/listings"
	"github.com/buenrollo/spots-admin/internal/repository"
	"github.com/buenrollo/spots-admin/internal/repository/dao"
	"github.com/buenrollo/spots-admin/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	client := listings.NewClient(conf.Listings)
	collections := cache.NewCollection(time.Duration(conf.Cache.TTLSeconds) * time.Second)

	spotHandler := s.initSpotHandler(db, client, collections)
	sectionHandler := s.initSectionHandler(client, collections)
	submissionHandler := s.initSubmissionHandler(db)
	s.MountHandlers(spotHandler, sectionHandler, submissionHandler)

	return s
}

func (s *Server) initSpotHandler(db *gorm.DB, client *listings.Client, collections *cache.Collection) *v1.SpotHandler {
	submissionDAO := dao.NewSubmissionDAO(db)
	repo := repository.NewSubmissionRepository(submissionDAO)
	svc := service.NewSpotService(client, repo, collections)
	handler := v1.NewSpotHandler(svc)

	return handler
}

func (s *Server) initSectionHandler(client *listings.Client, collections *cache.Collection) *v1.SectionHandler {
	svc := service.NewSectionService(client, collections)
	handler := v1.NewSectionHandler(svc)

	return handler
}

func (s *Server) initSubmissionHandler(db *gorm.DB) *v1.SubmissionHandler {
	submissionDAO := dao.NewSubmissionDAO(db)
	repo := repository.NewSubmissionRepository(submissionDAO)
	svc := service.NewSubmissionService(repo)
	handler := v1.NewSubmissionHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(spotHandler *v1.SpotHandler, sectionHandler *v1.SectionHandler, submissionHandler *v1.SubmissionHandler) {
	const basePath = "/api/v1"

	authenticated := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authenticated.GET("/session", v1.HandleGetSession)

		authenticated.GET("/sections", sectionHandler.HandleGetSections)
		authenticated.GET("/sections/:sectionID/spots", spotHandler.HandleGetSpots)
		authenticated.POST("/sections/:sectionID/spots", spotHandler.HandleCreateSpot)
		authenticated.PUT("/spots/:spotID", spotHandler.HandleUpdateSpot)

		authenticated.GET("/submissions", submissionHandler.HandleGetSubmissions)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Buen Rollo Spots Admin API"
	docs.SwaggerInfo.Description = "Admin console API for curating spot listings."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
