package routes

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/EltonLopezzs/onbarbearia/internal/audit"
	"github.com/EltonLopezzs/onbarbearia/internal/auth"
	"github.com/EltonLopezzs/onbarbearia/internal/config"
	"github.com/EltonLopezzs/onbarbearia/internal/handlers"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/cache"
	infraRepo "github.com/EltonLopezzs/onbarbearia/internal/infra/repository"
	"github.com/EltonLopezzs/onbarbearia/internal/infra/storage"
	"github.com/EltonLopezzs/onbarbearia/internal/middleware"
	"github.com/EltonLopezzs/onbarbearia/internal/models"
	"github.com/EltonLopezzs/onbarbearia/internal/timezone"
	ucAccount "github.com/EltonLopezzs/onbarbearia/internal/usecase/account"
	ucAvailability "github.com/EltonLopezzs/onbarbearia/internal/usecase/availability"
	ucBarbershop "github.com/EltonLopezzs/onbarbearia/internal/usecase/barbershop"
	ucBooking "github.com/EltonLopezzs/onbarbearia/internal/usecase/booking"
	ucDashboard "github.com/EltonLopezzs/onbarbearia/internal/usecase/dashboard"
	ucSchedule "github.com/EltonLopezzs/onbarbearia/internal/usecase/schedule"
	ucService "github.com/EltonLopezzs/onbarbearia/internal/usecase/service"
	"github.com/EltonLopezzs/onbarbearia/internal/validators"
)

// Deps reúne a infraestrutura já inicializada pelo main.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *zap.Logger

	Cache  cache.AvailabilityCache
	Images storage.ImageStore // nil desliga o upload
	Audit  *audit.Dispatcher
	Tokens *auth.TokenIssuer

	// opcionais
	EmailDomains ucAccount.DomainChecker
	Clock        handlers.Clock
}

var registerValidators sync.Once

func RegisterRoutes(r *gin.Engine, d Deps) {

	registerValidators.Do(func() {
		if err := validators.Register(); err != nil {
			d.Log.Fatal("register validators", zap.Error(err))
		}
	})

	cfg := d.Config
	loc := timezone.Location(cfg.Timezone)
	slot := cfg.SlotDuration()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORSMiddleware(cfg.AllowedOrigins()),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	barbershopRepo := infraRepo.NewBarbershopGormRepository(d.DB)
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	serviceRepo := infraRepo.NewServiceGormRepository(d.DB)
	hoursRepo := infraRepo.NewOperatingHoursGormRepository(d.DB)
	userRepo := infraRepo.NewUserGormRepository(d.DB)

	auditLogger := audit.New(d.DB)

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	registerUC := ucAccount.NewRegister(userRepo, d.Tokens, d.EmailDomains)
	loginUC := ucAccount.NewLogin(userRepo, d.Tokens)

	getAvailabilityUC := ucAvailability.NewGetAvailability(
		barbershopRepo,
		hoursRepo,
		bookingRepo,
		d.Cache,
		d.Log,
		slot,
		loc,
	)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		hoursRepo,
		d.Cache,
		d.Audit,
		d.Log,
		slot,
		loc,
	)
	listBookingsUC := ucBooking.NewListCustomerBookings(bookingRepo)

	var uploadImageUC *ucService.UploadServiceImage
	if d.Images != nil {
		uploadImageUC = ucService.NewUploadServiceImage(serviceRepo, d.Images, d.Audit, d.Log, cfg.ImageMaxWidth)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(registerUC, loginUC)
	meHandler := handlers.NewMeHandler(userRepo)

	barbershopHandler := handlers.NewBarbershopHandler(
		ucBarbershop.NewListBarbershops(barbershopRepo),
		ucBarbershop.NewGetBarbershop(barbershopRepo),
		ucBarbershop.NewUpdateBarbershop(barbershopRepo, d.Audit),
	)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(createBookingUC, listBookingsUC, loc, d.Clock)

	serviceHandler := handlers.NewServiceHandler(
		ucService.NewListServices(serviceRepo, barbershopRepo),
		ucService.NewCreateService(serviceRepo, d.Audit),
		ucService.NewUpdateService(serviceRepo, d.Audit),
		ucService.NewDeleteService(serviceRepo, d.Audit),
		uploadImageUC,
		d.Clock,
	)

	operatingHoursHandler := handlers.NewOperatingHoursHandler(
		ucSchedule.NewGetOperatingHours(hoursRepo),
		ucSchedule.NewReplaceOperatingHours(hoursRepo, d.Cache, d.Audit, d.Log),
	)

	dashboardHandler := handlers.NewDashboardHandler(
		ucDashboard.NewGetSummary(bookingRepo, serviceRepo, loc),
		d.Clock,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, loc)

	bookingLimiter := middleware.NewRateLimiter(cfg.BookingRatePerMinute, d.Log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "time": time.Now().UTC()})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/barbershops", barbershopHandler.List)
			publicAPI.GET("/barbershops/:id", barbershopHandler.Get)
			publicAPI.GET("/barbershops/:id/services", serviceHandler.ListPublic)
			publicAPI.GET("/barbershops/:id/availability", availabilityHandler.Get)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/me/bookings", bookingLimiter.Middleware(), bookingHandler.Create)
			secured.GET("/me/bookings", bookingHandler.ListMine)
		}

		// ------------------------------
		// 🔐 PAINEL (OWNER / BARBER)
		// ------------------------------
		manage := secured.Group("/")
		manage.Use(middleware.RequireRole(models.RoleOwner, models.RoleBarber))
		{
			manage.GET("/me/dashboard", dashboardHandler.Get)

			manage.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)
			manage.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			manage.GET("/me/services", serviceHandler.ListMine)
			manage.POST("/me/services", serviceHandler.Create)
			manage.PATCH("/me/services/:id", serviceHandler.Update)
			manage.DELETE("/me/services/:id", serviceHandler.Delete)
			manage.POST("/me/services/:id/image", serviceHandler.UploadImage)

			manage.GET("/me/operating-hours", operatingHoursHandler.Get)
			manage.PUT("/me/operating-hours", operatingHoursHandler.Replace)

			manage.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
