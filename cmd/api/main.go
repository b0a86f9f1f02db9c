package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"futsalcourt/internal/config"
	"futsalcourt/internal/database"
	"futsalcourt/internal/mailer"
	"futsalcourt/internal/middleware"
	"futsalcourt/internal/modules/admin"
	"futsalcourt/internal/modules/auth"
	"futsalcourt/internal/modules/booking"
	"futsalcourt/internal/modules/events"
	"futsalcourt/internal/modules/notification"
	jwtsvc "futsalcourt/internal/pkg/jwt"
	"futsalcourt/internal/repository"
	"futsalcourt/internal/session"
	"futsalcourt/internal/storage"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	studentRepo := repository.NewStudentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.SessionTTL)

	sessions := session.NewStore(sessionRepo, session.NewJWTTokenService(j))
	if err := sessions.Hydrate(context.Background()); err != nil {
		log.Fatal(err)
	}

	idCards := storage.NewIDCardStore(cfg.UploadsDir, cfg.StaticBase)

	var mail mailer.Mailer
	if cfg.SendGridAPIKey != "" {
		mail = mailer.NewSendGrid(cfg.SendGridAPIKey, cfg.MailFromName, cfg.MailFromAddr)
	} else {
		log.Println("SENDGRID_API_KEY not set, logging mail to console")
		mail = mailer.NewConsole(cfg.MailFromAddr)
	}

	hub := events.NewHub()

	authService := auth.NewService(studentRepo, sessions)
	authHandler := auth.NewHandler(authService)

	bookingService := booking.NewService(bookingRepo, studentRepo, idCards)
	bookingHandler := booking.NewHandler(bookingService)

	dispatcher := notification.NewDispatcher(mail)
	notifyHandler := notification.NewHandler(dispatcher)

	adminService := admin.NewService(bookingRepo, dispatcher, hub, j, cfg.AdminEmail, cfg.AdminPasswordHash)
	adminHandler := admin.NewHandler(adminService)

	eventsHandler := events.NewHandler(hub, middleware.AllowedOrigins())

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		notifyHandler.RegisterRoutes(v1)
		adminHandler.RegisterRoutes(v1)

		// student session required
		protected := v1.Group("/")
		protected.Use(middleware.RequireStudent(sessions, j))
		{
			bookingHandler.RegisterRoutes(protected)
			eventsHandler.RegisterRoutes(protected)
		}

		// admin token required
		adminRoutes := v1.Group("/")
		adminRoutes.Use(middleware.RequireAdmin(j))
		{
			adminHandler.RegisterProtectedRoutes(adminRoutes)
		}
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
