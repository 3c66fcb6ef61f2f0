package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fastfood/cmd"
	inhttp "fastfood/internal/adapters/in/http"
	"fastfood/internal/adapters/out/postgres/catalogrepo"
	"fastfood/internal/adapters/out/postgres/orderrepo"
	"fastfood/internal/adapters/out/rabbitmq"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ensureDatabase(configs)
	gormDB := mustConnectDB(configs)

	amqpConn, amqpChannel, err := rabbitmq.SetupConn(configs.RabbitMQURL())
	if err != nil {
		log.Fatalf("Error connecting to RabbitMQ: %v", err)
	}
	defer amqpConn.Close()
	defer amqpChannel.Close()

	app := cmd.NewCompositionRoot(configs, gormDB, amqpChannel)

	consumer := app.CreateOrderConsumer(configs.ConsumerTimeout, logger)
	go func() {
		if err := consumer.Run(ctx); err != nil {
			logger.Error("Order consumer stopped", "error", err)
			stop()
		}
	}()

	jobManager := app.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(ctx, app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		RabbitMQHost:     goDotEnvVariable("RABBITMQ_HOST"),
		RabbitMQPort:     goDotEnvVariable("RABBITMQ_PORT"),
		RabbitMQUser:     goDotEnvVariable("RABBITMQ_USER"),
		RabbitMQPassword: goDotEnvVariable("RABBITMQ_PASSWORD"),
		OrdersQueueName:  goDotEnvVariable("ORDERS_QUEUE_NAME"),
		ConsumerTimeout:  goDotEnvDuration("CONSUMER_TIMEOUT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvDuration(key string) time.Duration {
	value := goDotEnvVariable(key)
	duration, err := time.ParseDuration(value)
	if err != nil {
		log.Fatalf("Error parsing %s as duration: %v", key, err)
	}
	return duration
}

// ensureDatabase creates the application database when it does not exist
// yet, so a fresh environment starts without manual setup.
func ensureDatabase(configs cmd.Config) {
	db, err := sql.Open("postgres", configs.BootstrapDSN())
	if err != nil {
		log.Fatalf("Error opening bootstrap connection: %v", err)
	}
	defer db.Close()

	var exists bool
	err = db.QueryRow("SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", configs.DBName).Scan(&exists)
	if err != nil {
		log.Fatalf("Error checking database existence: %v", err)
	}
	if exists {
		return
	}

	if _, err := db.Exec(fmt.Sprintf("CREATE DATABASE %q", configs.DBName)); err != nil {
		log.Fatalf("Error creating database %s: %v", configs.DBName, err)
	}
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgres.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&catalogrepo.CustomerDTO{},
		&catalogrepo.ProductDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	return gormDB
}

func startWebServer(ctx context.Context, app cmd.CompositionRoot, port string, logger *slog.Logger) {
	submitOrderHandler, err := app.CreateSubmitOrderCommandHandler()
	if err != nil {
		log.Fatalf("Error creating submit order handler: %v", err)
	}
	acceptOrderHandler := app.CreateAcceptOrderCommandHandler()
	rejectOrderHandler := app.CreateRejectOrderCommandHandler()
	cancelOrderHandler := app.CreateCancelOrderCommandHandler()

	srv := inhttp.NewServer(
		&submitOrderHandler,
		&acceptOrderHandler,
		&rejectOrderHandler,
		&cancelOrderHandler,
		app.CreateGetPendingOrdersQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
	)

	e := echo.New()
	srv.RegisterRoutes(e)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Web server shutdown failed", "error", err)
		}
	}()

	if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatal(err)
	}
}
