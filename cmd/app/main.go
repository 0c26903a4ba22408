package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"storefront/cmd"
	httpin "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/customerrepo"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/taskrepo"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	initializeInventory(app)

	jobManager := jobs.NewJobManager(app.CreateAdvanceDeliveriesCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:     goDotEnvVariable("HTTP_PORT"),
		DBHost:       goDotEnvVariable("DB_HOST"),
		DBPort:       goDotEnvVariable("DB_PORT"),
		DBUser:       goDotEnvVariable("DB_USER"),
		DBPassword:   goDotEnvVariable("DB_PASSWORD"),
		DBName:       goDotEnvVariable("DB_NAME"),
		DBSslMode:    goDotEnvVariable("DB_SSLMODE"),
		SMTPHost:     goDotEnvVariable("SMTP_HOST"),
		SMTPPort:     goDotEnvIntVariable("SMTP_PORT"),
		SMTPUsername: goDotEnvVariable("SMTP_USERNAME"),
		SMTPPassword: goDotEnvVariable("SMTP_PASSWORD"),
		AlertFrom:    goDotEnvVariable("ALERT_FROM"),
		AlertTo:      goDotEnvVariable("ALERT_TO"),
		AdminAPIKey:  goDotEnvVariable("ADMIN_API_KEY"),
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

func goDotEnvIntVariable(key string) int {
	value, err := strconv.Atoi(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid integer value for %s", key)
	}
	return value
}

// openDatabase connects to Postgres and migrates the schema. TranslateError
// is required: the repositories detect duplicate keys via
// gorm.ErrDuplicatedKey, which GORM only produces in translated mode.
func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&cartrepo.CartDTO{},
		&inventoryrepo.LedgerDTO{},
		&customerrepo.CustomerDTO{},
		&taskrepo.TaskDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// initializeInventory makes sure the singleton ledger row exists before the
// first inventory read or write. The command is idempotent.
func initializeInventory(app cmd.CompositionRoot) {
	handler := app.CreateInitializeInventoryCommandHandler()

	initCmd, err := commands.NewInitializeInventoryCommand()
	if err != nil {
		log.Fatalf("Failed to build initialize inventory command: %v", err)
	}

	if err := handler.Handle(context.Background(), initCmd); err != nil {
		log.Fatalf("Failed to initialize inventory: %v", err)
	}
}

func startWebServer(app cmd.CompositionRoot, configs cmd.Config) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		cmd.NewHeaderIdentityResolver(configs.AdminAPIKey),
		httpin.Handlers{
			AddCartItem:    app.CreateAddCartItemCommandHandler(),
			RemoveCartItem: app.CreateRemoveCartItemCommandHandler(),
			ClearCart:      app.CreateClearCartCommandHandler(),

			PlaceOrder:       app.CreatePlaceOrderCommandHandler(),
			SetOrderStatus:   app.CreateSetOrderStatusCommandHandler(),
			SetOrderProgress: app.CreateSetOrderProgressCommandHandler(),
			RecordFeedback:   app.CreateRecordFeedbackCommandHandler(),

			AddIngredient:            app.CreateAddIngredientCommandHandler(),
			RenameIngredient:         app.CreateRenameIngredientCommandHandler(),
			AdjustIngredientQuantity: app.CreateAdjustIngredientQuantityCommandHandler(),

			GetCart:           app.CreateGetCartQueryHandler(),
			GetOrder:          app.CreateGetOrderQueryHandler(),
			GetCustomerOrders: app.CreateGetCustomerOrdersQueryHandler(),
			GetAllOrders:      app.CreateGetAllOrdersQueryHandler(),
			GetOrderSummary:   app.CreateGetOrderSummaryQueryHandler(),
			GetInventory:      app.CreateGetInventoryQueryHandler(),
		},
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != http.ErrServerClosed {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Fatal(err)
	}
}
