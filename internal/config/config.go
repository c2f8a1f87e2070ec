package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath  = ".env"
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

const (
	defaultRunAddress   = ":8080"
	defaultDatabasePath = "./db/clinikit.db"
	defaultCORSOrigins  = "http://localhost:3000"
)

type Config struct {
	Env    string
	DB     db
	Server server
	Logger logger
}

type db struct {
	DatabasePath string `env:"DATABASE_PATH"`
}

type server struct {
	RunAddress  string `env:"RUN_ADDRESS"`
	CORSOrigins string `env:"CORS_ORIGINS"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	runAddress := viper.GetString("run_address")
	if runAddress == "" {
		runAddress = defaultRunAddress
	}
	databasePath := viper.GetString("database_path")
	if databasePath == "" {
		databasePath = defaultDatabasePath
	}
	corsOrigins := viper.GetString("cors_origins")
	if corsOrigins == "" {
		corsOrigins = defaultCORSOrigins
	}

	return &Config{
		Env: viper.GetString("app_env"),
		DB:  db{DatabasePath: databasePath},
		Server: server{
			RunAddress:  runAddress,
			CORSOrigins: corsOrigins,
		},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}
}
