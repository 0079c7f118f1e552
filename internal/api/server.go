package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/travelothai/travelothai-api/docs"
	v1 "github.com/travelothai/travelothai-api/internal/api/handler/v1"
	"github.com/travelothai/travelothai-api/internal/api/middleware"
	"github.com/travelothai/travelothai-api/internal/config"
	"github.com/travelothai/travelothai-api/internal/repository"
	"github.com/travelothai/travelothai-api/internal/repository/dao"
	"github.com/travelothai/travelothai-api/internal/repository/memory"
	"github.com/travelothai/travelothai-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

// repositories groups one instance per store so every service sees the same
// state. Mock mode swaps the postgres-backed set for the in-memory one.
type repositories struct {
	province service.ProvinceRepository
	hotel    service.HotelRepository
	ticket   service.TicketRepository
	booking  service.BookingRepository
	user     service.UserRepository
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	repos := newRepositories(conf, db)
	provinceHandler := s.initProvinceHandler(repos)
	hotelHandler := s.initHotelHandler(repos)
	ticketHandler := s.initTicketHandler(repos)
	bookingHandler := s.initBookingHandler(repos)
	authHandler := s.initAuthHandler(repos)
	userHandler := s.initUserHandler(repos)
	s.MountHandlers(provinceHandler, hotelHandler, ticketHandler, bookingHandler, authHandler, userHandler)

	return s
}

func newRepositories(conf *config.AppConfig, db *gorm.DB) repositories {
	if conf.API.UseMock {
		ticketRepo := memory.NewTicketRepository()

		return repositories{
			province: memory.NewProvinceRepository(),
			hotel:    memory.NewHotelRepository(),
			ticket:   ticketRepo,
			booking:  memory.NewBookingRepository(ticketRepo),
			user:     memory.NewUserRepository(),
		}
	}

	return repositories{
		province: repository.NewProvinceRepository(dao.NewProvinceDAO(db)),
		hotel:    repository.NewHotelRepository(dao.NewHotelDAO(db)),
		ticket:   repository.NewTicketRepository(dao.NewTicketDAO(db)),
		booking:  repository.NewBookingRepository(dao.NewBookingDAO(db)),
		user:     repository.NewUserRepository(dao.NewUserDAO(db)),
	}
}

func (s *Server) initProvinceHandler(repos repositories) *v1.ProvinceHandler {
	svc := service.NewProvinceService(repos.province)

	return v1.NewProvinceHandler(svc)
}

func (s *Server) initHotelHandler(repos repositories) *v1.HotelHandler {
	svc := service.NewHotelService(repos.hotel, repos.province)

	return v1.NewHotelHandler(svc)
}

func (s *Server) initTicketHandler(repos repositories) *v1.TicketHandler {
	svc := service.NewTicketService(repos.ticket, repos.province)

	return v1.NewTicketHandler(svc)
}

func (s *Server) initBookingHandler(repos repositories) *v1.BookingHandler {
	svc := service.NewBookingService(repos.booking, repos.hotel, repos.ticket)

	return v1.NewBookingHandler(svc)
}

func (s *Server) initAuthHandler(repos repositories) *v1.AuthHandler {
	svc := service.NewAuthService(repos.user)

	return v1.NewAuthHandler(s.Config.API, svc)
}

func (s *Server) initUserHandler(repos repositories) *v1.UserHandler {
	svc := service.NewUserService(repos.user)

	return v1.NewUserHandler(svc)
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	provinceHandler *v1.ProvinceHandler,
	hotelHandler *v1.HotelHandler,
	ticketHandler *v1.TicketHandler,
	bookingHandler *v1.BookingHandler,
	authHandler *v1.AuthHandler,
	userHandler *v1.UserHandler,
) {
	const basePath = "/v1"

	provinces := s.Router.Group(basePath)
	{
		provinces.GET("/provinces/categories", provinceHandler.HandleListCategories)
		provinces.POST("/provinces/categories", provinceHandler.HandleCreateCategory)
		provinces.GET("/provinces/categories/:categoryID", provinceHandler.HandleGetCategory)
		provinces.PUT("/provinces/categories/:categoryID", provinceHandler.HandleUpdateCategory)
		provinces.DELETE("/provinces/categories/:categoryID", provinceHandler.HandleDeleteCategory)
		provinces.GET("/provinces/", provinceHandler.HandleListProvinces)
		provinces.POST("/provinces/", provinceHandler.HandleCreateProvince)
		provinces.GET("/provinces/:provinceID", provinceHandler.HandleGetProvince)
		provinces.PUT("/provinces/:provinceID", provinceHandler.HandleUpdateProvince)
		provinces.DELETE("/provinces/:provinceID", provinceHandler.HandleDeleteProvince)
	}

	hotels := s.Router.Group(basePath)
	{
		hotels.GET("/hotels/", hotelHandler.HandleListHotels)
		hotels.POST("/hotels/", hotelHandler.HandleCreateHotel)
		hotels.GET("/hotels/:hotelID", hotelHandler.HandleGetHotel)
		hotels.PUT("/hotels/:hotelID", hotelHandler.HandleUpdateHotel)
		hotels.DELETE("/hotels/:hotelID", hotelHandler.HandleDeleteHotel)
	}

	tickets := s.Router.Group(basePath)
	{
		tickets.GET("/tickets/types", ticketHandler.HandleListTicketTypes)
		tickets.POST("/tickets/types", ticketHandler.HandleCreateTicketType)
		tickets.GET("/tickets/types/:typeID", ticketHandler.HandleGetTicketType)
		tickets.PUT("/tickets/types/:typeID", ticketHandler.HandleUpdateTicketType)
		tickets.DELETE("/tickets/types/:typeID", ticketHandler.HandleDeleteTicketType)

		tickets.GET("/tickets/usage-rules", ticketHandler.HandleListUsageRules)
		tickets.POST("/tickets/usage-rules", ticketHandler.HandleCreateUsageRule)
		tickets.GET("/tickets/usage-rules/:ruleID", ticketHandler.HandleGetUsageRule)
		tickets.PUT("/tickets/usage-rules/:ruleID", ticketHandler.HandleUpdateUsageRule)
		tickets.DELETE("/tickets/usage-rules/:ruleID", ticketHandler.HandleDeleteUsageRule)

		tickets.GET("/tickets/campaigns", ticketHandler.HandleListCampaigns)
		tickets.POST("/tickets/campaigns", ticketHandler.HandleCreateCampaign)
		tickets.GET("/tickets/campaigns/ticket-types", ticketHandler.HandleListCampaignTicketTypes)
		tickets.POST("/tickets/campaigns/ticket-types", ticketHandler.HandleCreateCampaignTicketType)
		tickets.GET("/tickets/campaigns/ticket-types/:bindingID", ticketHandler.HandleGetCampaignTicketType)
		tickets.PUT("/tickets/campaigns/ticket-types/:bindingID", ticketHandler.HandleUpdateCampaignTicketType)
		tickets.DELETE("/tickets/campaigns/ticket-types/:bindingID", ticketHandler.HandleDeleteCampaignTicketType)
		tickets.POST("/tickets/campaigns/register/:campaignID", ticketHandler.HandleRegisterCampaign)
		tickets.PUT("/tickets/campaigns/is-active/:campaignID", ticketHandler.HandleToggleCampaignActive)
		tickets.GET("/tickets/campaigns/:campaignID", ticketHandler.HandleGetCampaign)
		tickets.PUT("/tickets/campaigns/:campaignID", ticketHandler.HandleUpdateCampaign)
		tickets.DELETE("/tickets/campaigns/:campaignID", ticketHandler.HandleDeleteCampaign)

		tickets.GET("/tickets/", ticketHandler.HandleListTickets)
		tickets.POST("/tickets/", ticketHandler.HandleCreateTicket)
		tickets.GET("/tickets/:ticketID", ticketHandler.HandleGetTicket)
		tickets.PUT("/tickets/:ticketID", ticketHandler.HandleUpdateTicket)
		tickets.DELETE("/tickets/:ticketID", ticketHandler.HandleDeleteTicket)
		tickets.PUT("/tickets/:ticketID/traveler", ticketHandler.HandleCollectTicket)
	}

	bookings := s.Router.Group(basePath)
	{
		bookings.GET("/bookings/", bookingHandler.HandleListBookings)
		bookings.POST("/bookings/", bookingHandler.HandleCreateBooking)
		bookings.GET("/bookings/reschedule-logs", bookingHandler.HandleListRescheduleLogs)
		bookings.GET("/bookings/:bookingID", bookingHandler.HandleGetBooking)
		bookings.PUT("/bookings/:bookingID/cancel", bookingHandler.HandleCancelBooking)
		bookings.POST("/bookings/:bookingID/reschedule", bookingHandler.HandleRescheduleBooking)
		bookings.GET("/bookings/:bookingID/reschedule-logs", bookingHandler.HandleGetRescheduleLogs)
	}

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/token", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users/me", userHandler.HandleGetMe)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Travelothai API"
	docs.SwaggerInfo.Description = "Hotel booking and ticket campaign API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
