package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"appleaday/internal/config"
	"appleaday/internal/database"
	"appleaday/internal/handlers"
	"appleaday/internal/middleware"
	"appleaday/internal/repositories"
	"appleaday/internal/services"
	"appleaday/pkg/rabbitmq"
)

// NewApp wires repositories, services and handlers into a Fiber app. The
// RabbitMQ client may be nil, in which case journal events are not
// published. Tests reuse this constructor with an in-memory database.
func NewApp(cfg *config.Config, db *gorm.DB, mqClient *rabbitmq.Client) (*fiber.App, *services.UserService) {
	// Repositories
	userRepo := repositories.NewGORMUserRepository(db)
	energyRepo := repositories.NewGORMEnergyRepository(db)
	recipeRepo := repositories.NewGORMRecipeRepository(db)
	tagRepo := repositories.NewGORMTagRepository(db)
	ingredientRepo := repositories.NewGORMIngredientRepository(db)

	// Services
	userService := services.NewUserService(userRepo, cfg.JWTSecret)
	energyService := services.NewEnergyService(energyRepo, mqClient)
	recipeService := services.NewRecipeService(recipeRepo, tagRepo, ingredientRepo)

	// Handlers
	userHandler := handlers.NewUserHandler(userService)
	energyHandler := handlers.NewEnergyHandler(energyService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	auth := middleware.AuthRequired(userService)
	userHandler.RegisterRoutes(api, auth)

	// The energy journal is public and unscoped.
	energyHandler.RegisterRoutes(api)

	// Everything under /recipe requires a bearer token.
	recipeGroup := api.Group("/recipe", auth)
	recipeHandler.RegisterRoutes(recipeGroup)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app, userService
}

// seedSuperuser provisions the admin account when configured. Re-running
// against an existing account is a no-op.
func seedSuperuser(cfg *config.Config, userService *services.UserService) {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return
	}
	user, err := userService.CreateSuperuser(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			logrus.Debug("superuser already provisioned")
			return
		}
		logrus.WithError(err).Error("failed to provision superuser")
		return
	}
	logrus.WithField("user_id", user.ID).Info("superuser provisioned")
}

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	// RabbitMQ is optional; without it journal events are skipped.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logrus.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	app, userService := NewApp(cfg, db, mqClient)

	seedSuperuser(cfg, userService)

	if mqClient != nil {
		logrus.Info("starting RabbitMQ consumer for journal events")
		messageHandler := func(msg amqp.Delivery) error {
			logrus.WithField("tag", msg.DeliveryTag).Infof("received journal event: %s", string(msg.Body))
			return nil
		}
		if consumerErr := mqClient.ConsumeJournalEvents(messageHandler); consumerErr != nil {
			logrus.WithError(consumerErr).Error("failed to start RabbitMQ consumer")
		}
	}

	logrus.Infof("starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	logrus.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		logrus.WithError(err).Error("error during Fiber shutdown")
	}

	logrus.Info("server gracefully stopped")
}
