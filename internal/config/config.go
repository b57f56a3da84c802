package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
	LowStockWatch LowStockWatch `mapstructure:",squash"`
}

type App struct {
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	SSLMode         string        `mapstructure:"database_sslmode"`
	QueryTimeout    time.Duration `mapstructure:"database_query_timeout"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LowStockWatch configura o agendador que monitora produtos com estoque baixo
type LowStockWatch struct {
	CronSchedule string `mapstructure:"low_stock_watch_cron"`
	Threshold    int    `mapstructure:"low_stock_watch_threshold"`
	Enabled      bool   `mapstructure:"low_stock_watch_enabled"`
}

func SetDefaults() {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sales")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("DATABASE_QUERY_TIMEOUT", "5s")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 10)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("LOW_STOCK_WATCH_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("LOW_STOCK_WATCH_THRESHOLD", 10)
	viper.SetDefault("LOW_STOCK_WATCH_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = config.Database.BuildDSN()

	return config, nil
}

// Validate garante que os valores carregados são utilizáveis
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL não informado")
	}

	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("DATABASE_QUERY_TIMEOUT deve ser positivo, recebido %s", c.Database.QueryTimeout)
	}

	if c.LowStockWatch.Enabled && c.LowStockWatch.Threshold <= 0 {
		return fmt.Errorf("LOW_STOCK_WATCH_THRESHOLD deve ser positivo, recebido %d", c.LowStockWatch.Threshold)
	}

	for i, origin := range c.Cors.AllowedOrigins {
		c.Cors.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return nil
}

// BuildDSN monta a string de conexão; é o único lugar que conhece o formato do DSN
func (d Database) BuildDSN() string {
	u := &url.URL{
		Scheme: d.Driver,
		User:   url.UserPassword(d.User, d.Password),
		Host:   d.URL,
	}

	// DATABASE_URL vem no formato host:porta/banco
	if i := strings.Index(d.URL, "/"); i >= 0 {
		u.Host = d.URL[:i]
		u.Path = d.URL[i:]
	}

	if d.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{d.SSLMode}}.Encode()
	}

	return u.String()
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
