// Package app assembles repositories, services and HTTP routes into one gin engine.
package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"barbershop/internal/domain/booking"
	"barbershop/internal/domain/branch"
	"barbershop/internal/domain/favorite"
	"barbershop/internal/domain/notification"
	"barbershop/internal/domain/review"
	"barbershop/internal/domain/user"
	"barbershop/internal/middleware"
	"barbershop/internal/pkg/jwt"
	"barbershop/internal/pkg/response"
)

type Deps struct {
	DB     *gorm.DB
	Tokens *jwt.Service
	Log    *zap.Logger

	// BranchCache is optional.
	BranchCache branch.Cache
	// BookingEvents receives booking events. When nil they are delivered in-process to the
	// notification service.
	BookingEvents booking.EventPublisher

	CORSOrigins []string
}

type App struct {
	Router        *gin.Engine
	Hub           *notification.Hub
	Notifications *notification.Service
}

type migrator interface {
	Migrate() error
}

// Migrate creates or updates every table the application owns.
func Migrate(db *gorm.DB) error {
	for _, m := range []migrator{
		user.NewRepository(db),
		branch.NewRepository(db),
		booking.NewRepository(db),
		notification.NewRepository(db),
		favorite.NewRepository(db),
		review.NewRepository(db),
	} {
		if err := m.Migrate(); err != nil {
			return err
		}
	}
	return nil
}

func New(d Deps) *App {
	userRepo := user.NewRepository(d.DB)
	branchRepo := branch.NewRepository(d.DB)
	bookingRepo := booking.NewRepository(d.DB)
	notificationRepo := notification.NewRepository(d.DB)
	favoriteRepo := favorite.NewRepository(d.DB)
	reviewRepo := review.NewRepository(d.DB)

	hub := notification.NewHub(d.Log)
	notificationService := notification.NewService(notificationRepo, hub, d.Log)

	events := d.BookingEvents
	if events == nil {
		events = notificationService
	}

	branchService := branch.NewService(branchRepo, d.BranchCache, d.Log)
	bookingManager := booking.NewManager(bookingRepo, userRepo, events, d.Log)
	favoriteService := favorite.NewService(favoriteRepo, branchService)
	reviewService := review.NewService(reviewRepo, branchService, userRepo, notificationService, d.Log)

	branchHandler := branch.NewHandler(branchService)
	bookingHandler := booking.NewHandler(bookingManager)
	notificationHandler := notification.NewHandler(notificationService)
	wsHandler := notification.NewWSHandler(hub, d.Tokens, d.CORSOrigins, d.Log)
	favoriteHandler := favorite.NewHandler(favoriteService)
	reviewHandler := review.NewHandler(reviewService)

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger(d.Log))
	r.Use(middleware.CORS(d.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public
		v1.GET("/health", health(d.DB))
		branchHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		wsHandler.RegisterRoutes(v1)

		protected := v1.Group("")
		protected.Use(middleware.JWTAuth(d.Tokens))
		{
			notificationHandler.RegisterRoutes(protected)

			bookingHandler.RegisterRoutes(protected,
				middleware.RequireRoles(user.RoleClient, user.RoleStaff, user.RoleOwner),
				middleware.RequireRoles(user.RoleClient, user.RoleStaff),
			)

			client := protected.Group("")
			client.Use(middleware.RequireRoles(user.RoleClient))
			{
				favoriteHandler.RegisterRoutes(client)
				reviewHandler.RegisterClientRoutes(client)
			}

			owner := protected.Group("")
			owner.Use(middleware.OwnerOnly())
			{
				branchHandler.RegisterOwnerRoutes(owner)
			}
		}
	}

	return &App{
		Router:        r,
		Hub:           hub,
		Notifications: notificationService,
	}
}

func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "UNAVAILABLE", "database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
