package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

const (
	AuthModeStatic = "static"
	AuthModeJWT    = "jwt"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"     validate:"required"`
	Logger    LoggerConfig    `yaml:"logger"     validate:"required"`
	Gin       GinConfig       `yaml:"gin"        validate:"required"`
	StudioAPI StudioAPIConfig `yaml:"studio_api" validate:"required"`
	Redis     RedisConfig     `yaml:"redis"`
	Scheduler SchedulerConfig `yaml:"scheduler"  validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StudioAPIConfig struct {
	BaseURL       string        `yaml:"base_url"        env:"STUDIO_API_BASE_URL"       validate:"required,url"`
	Timeout       time.Duration `yaml:"timeout"         env:"STUDIO_API_TIMEOUT"        env-default:"10s"    validate:"gt=0"`
	RetryAttempts int           `yaml:"retry_attempts"  env:"STUDIO_API_RETRY_ATTEMPTS" env-default:"3"      validate:"min=1,max=10"`
	RetryDelay    time.Duration `yaml:"retry_delay"     env:"STUDIO_API_RETRY_DELAY"    env-default:"200ms"  validate:"gt=0"`
	AuthMode      string        `yaml:"auth_mode"       env:"STUDIO_API_AUTH_MODE"      env-default:"static" validate:"required,oneof=static jwt"`
	APIKey        string        `yaml:"api_key"         env:"STUDIO_API_KEY"            validate:"required_if=AuthMode static"`
	JWTSecret     string        `yaml:"jwt_secret"      env:"STUDIO_API_JWT_SECRET"     validate:"required_if=AuthMode jwt"`
	JWTIssuer     string        `yaml:"jwt_issuer"      env:"STUDIO_API_JWT_ISSUER"     env-default:"class-booker"`
	JWTSubject    string        `yaml:"jwt_subject"     env:"STUDIO_API_JWT_SUBJECT"    env-default:"class-booker"`
	JWTTTL        time.Duration `yaml:"jwt_ttl"         env:"STUDIO_API_JWT_TTL"        env-default:"5m"     validate:"gt=0"`
}

// RedisConfig with an empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"   validate:"min=0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"2m"  validate:"gt=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval"  env:"SCHEDULER_INTERVAL"  env-default:"1m" validate:"required,gt=0"`
	MaxPages int           `yaml:"max_pages" env:"SCHEDULER_MAX_PAGES" env-default:"5"  validate:"min=1"`
	PageSize int           `yaml:"page_size" env:"SCHEDULER_PAGE_SIZE" env-default:"50" validate:"min=1,max=100"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token" env:"TELEGRAM_BOT_TOKEN" env-default:""`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
