package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salondesk/internal/config"
	"salondesk/internal/database"
	"salondesk/internal/middleware"
	"salondesk/internal/modules/appointment"
	"salondesk/internal/modules/auth"
	"salondesk/internal/modules/catalog"
	"salondesk/internal/modules/commission"
	"salondesk/internal/modules/invoice"
	jwtsvc "salondesk/internal/pkg/jwt"
	"salondesk/internal/repository"
	"salondesk/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)
	adminUserRepo := repository.NewAdminUserRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authService := auth.NewService(adminUserRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(serviceRepo, staffRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	appointmentService := appointment.NewService(appointmentRepo, serviceRepo, staffRepo)
	appointmentHandler := appointment.NewHandler(appointmentService)

	invoiceService := invoice.NewService(db, invoiceRepo, invoice.PolicyFromConfig(cfg))
	invoiceHandler := invoice.NewHandler(invoiceService)

	commissionService := commission.NewService(commissionRepo, staffRepo, serviceRepo)
	commissionHandler := commission.NewHandler(commissionService)

	overdue := scheduler.NewOverdueJob(invoiceRepo, cfg.OverdueAfterDays)
	if err := overdue.Start(); err != nil {
		log.Fatal(err)
	}
	defer overdue.Stop()

	r := gin.Default()
	r.Use(middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		appointmentHandler.RegisterPublicRoutes(v1)

		// back office
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j))
		{
			catalogHandler.RegisterRoutes(admin)
			appointmentHandler.RegisterRoutes(admin)
			invoiceHandler.RegisterRoutes(admin)
			commissionHandler.RegisterRoutes(admin)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
