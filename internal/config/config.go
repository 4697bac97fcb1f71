package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App               App               `mapstructure:",squash"`
	Server            Server            `mapstructure:",squash"`
	Database          Database          `mapstructure:",squash"`
	Auth              Auth              `mapstructure:",squash"`
	MercadoLivre      MercadoLivre      `mapstructure:",squash"`
	Scoring           Scoring           `mapstructure:",squash"`
	ScoreSnapshotSync ScoreSnapshotSync `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
}

type MercadoLivre struct {
	BaseURL              string        `mapstructure:"mercadolivre_base_url"`
	SiteID               string        `mapstructure:"mercadolivre_site_id"`
	AccessToken          string        `mapstructure:"mercadolivre_access_token"`
	CompetitorSampleSize int           `mapstructure:"mercadolivre_competitor_sample_size"`
	RequestTimeout       time.Duration `mapstructure:"mercadolivre_request_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Scoring controla apenas a camada de serviço; os limiares do motor são constantes
type Scoring struct {
	PeriodDays    int `mapstructure:"scoring_period_days"`
	MaxPeriodDays int `mapstructure:"scoring_max_period_days"`
}

type ScoreSnapshotSync struct {
	CronSchedule      string `mapstructure:"score_snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"score_snapshot_sync_max_concurrent_jobs"`
	PeriodDays        int    `mapstructure:"score_snapshot_sync_period_days"`
	Enabled           bool   `mapstructure:"score_snapshot_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/superseller?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 10)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("MERCADOLIVRE_BASE_URL", "https://api.mercadolibre.com")
	viper.SetDefault("MERCADOLIVRE_SITE_ID", "MLB")
	viper.SetDefault("MERCADOLIVRE_ACCESS_TOKEN", "")
	viper.SetDefault("MERCADOLIVRE_COMPETITOR_SAMPLE_SIZE", 20)
	viper.SetDefault("MERCADOLIVRE_REQUEST_TIMEOUT", "10s")

	viper.SetDefault("SCORING_PERIOD_DAYS", 30)
	viper.SetDefault("SCORING_MAX_PERIOD_DAYS", 90)

	// Defaults para a fotografia diária de score
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 4) // 4 anúncios em paralelo
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_PERIOD_DAYS", 30)        // Janela de métricas
	viper.SetDefault("SCORE_SNAPSHOT_SYNC_ENABLED", false)         // Habilitar fotografia diária

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate rejeita combinações que o serviço não consegue atender
func (c *Config) Validate() error {
	if c.Scoring.MaxPeriodDays <= 0 {
		return fmt.Errorf("SCORING_MAX_PERIOD_DAYS deve ser positivo: %d", c.Scoring.MaxPeriodDays)
	}
	if c.Scoring.PeriodDays <= 0 || c.Scoring.PeriodDays > c.Scoring.MaxPeriodDays {
		return fmt.Errorf("SCORING_PERIOD_DAYS fora do intervalo 1..%d: %d", c.Scoring.MaxPeriodDays, c.Scoring.PeriodDays)
	}
	if c.ScoreSnapshotSync.Enabled && c.ScoreSnapshotSync.MaxConcurrentJobs <= 0 {
		return fmt.Errorf("SCORE_SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS deve ser positivo")
	}
	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
