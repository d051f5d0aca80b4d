package main

import (
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/alexmorgan-dev/portfolio-site-backend/api"
	"github.com/alexmorgan-dev/portfolio-site-backend/config"
	"github.com/alexmorgan-dev/portfolio-site-backend/database"
	"github.com/alexmorgan-dev/portfolio-site-backend/portfolio"
	"github.com/alexmorgan-dev/portfolio-site-backend/services"
)

func main() {
	fmt.Println("Initializing portfolio backend...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg := config.New()

	// Missing store parameters are a fatal, user-visible configuration
	// error, never a silent fallback.
	if missing := config.MissingStoreKeys(cfg); len(missing) > 0 {
		log.Fatal().
			Str("missing", strings.Join(missing, ", ")).
			Msg("Store configuration is incomplete; set the SUPABASE_DB_* environment variables")
	}

	connStr := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		config.GetString(cfg, config.KeyDBHost, ""),
		config.GetString(cfg, config.KeyDBUser, ""),
		config.GetString(cfg, config.KeyDBPassword, ""),
		config.GetString(cfg, config.KeyDBName, ""),
		config.GetString(cfg, config.KeyDBPort, "5432"),
	)
	fmt.Println("Connecting to Supabase database...")

	newLogger := logger.New(
		stdlog.New(os.Stdout, "\r\n", stdlog.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  connStr,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	// Test database connection
	var result int
	if err := db.Raw("SELECT 1").Scan(&result).Error; err != nil {
		log.Fatal().Err(err).Msg("Error testing database connection")
	}

	currentDB := database.New(db)

	notifier := services.NewNotifierFromConfig(cfg)
	content := services.NewContentService(
		currentDB.PortfolioRepo(),
		currentDB.ProjectRepo(),
		currentDB.SkillRepo(),
		currentDB.ContactMessageRepo(),
		notifier,
	)

	// One fetch per process start; admin mutations refresh it explicitly.
	// A failed load is served as the blocking error state, not a crash.
	provider := portfolio.NewProvider(content)
	if err := provider.Load(); err != nil {
		log.Error().Err(err).Msg("Initial portfolio load failed; serving error state until refresh")
	}

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(content, provider)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Msgf("Closing server: %v", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
