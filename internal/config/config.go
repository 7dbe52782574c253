// Package config 환경 변수 기반의 애플리케이션 설정을 제공합니다.
//
// 모든 설정값은 기본값을 가지며, 환경 변수로 개별 항목을 덮어쓸 수 있습니다.
// 백엔드(PostgreSQL, Redis, RabbitMQ) 접속 정보는 컨테이너 환경에서 관례적으로
// 사용되는 변수명(POSTGRES_HOST 등)을 그대로 따릅니다.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/homelab-api-server/internal/pkg/errors"
)

// AppName 애플리케이션의 전역 고유 식별자입니다.
const AppName string = "homelab-api-server"

// envKeyMap 환경 변수명을 설정 키로 변환하는 매핑 테이블입니다.
//
// 백엔드 접속 정보는 배포 매니페스트(Docker Compose, Kubernetes)에서 관례적으로
// 사용하는 평탄한 변수명을 유지하고, 서비스 자체 설정은 HOMELAB_ 접두사를 사용합니다.
var envKeyMap = map[string]string{
	"HOMELAB_DEBUG":       "debug",
	"HOMELAB_LISTEN_PORT": "api.listen_port",

	"POSTGRES_HOST":     "postgres.host",
	"POSTGRES_PORT":     "postgres.port",
	"POSTGRES_DB":       "postgres.database",
	"POSTGRES_USER":     "postgres.user",
	"POSTGRES_PASSWORD": "postgres.password",

	"REDIS_HOST": "redis.host",
	"REDIS_PORT": "redis.port",

	"RABBITMQ_HOST":     "rabbitmq.host",
	"RABBITMQ_PORT":     "rabbitmq.port",
	"RABBITMQ_VHOST":    "rabbitmq.vhost",
	"RABBITMQ_USER":     "rabbitmq.user",
	"RABBITMQ_PASSWORD": "rabbitmq.password",
}

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug    bool           `json:"debug"`
	API      APIConfig      `json:"api"`
	Postgres PostgresConfig `json:"postgres"`
	Redis    RedisConfig    `json:"redis"`
	RabbitMQ RabbitMQConfig `json:"rabbitmq"`
}

// APIConfig HTTP 서버 구동에 필요한 설정 구조체
type APIConfig struct {
	ListenPort int `json:"listen_port" validate:"required,min=1,max=65535"`
}

// PostgresConfig PostgreSQL 접속 정보를 정의하는 설정 구조체
type PostgresConfig struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	Database string `json:"database" validate:"required"`
	User     string `json:"user" validate:"required"`
	Password string `json:"password"`
}

// DSN lib/pq 드라이버가 요구하는 접속 문자열을 반환합니다.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Database)
}

// RedisConfig Redis 접속 정보를 정의하는 설정 구조체
type RedisConfig struct {
	Host string `json:"host" validate:"required"`
	Port int    `json:"port" validate:"required,min=1,max=65535"`
}

// Addr go-redis 클라이언트가 요구하는 host:port 형식의 주소를 반환합니다.
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RabbitMQConfig RabbitMQ 접속 정보를 정의하는 설정 구조체
type RabbitMQConfig struct {
	Host     string `json:"host" validate:"required"`
	Port     int    `json:"port" validate:"required,min=1,max=65535"`
	VHost    string `json:"vhost"`
	User     string `json:"user" validate:"required"`
	Password string `json:"password"`
}

// validate 설정 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			fieldErr := validationErrors[0]
			return apperrors.New(apperrors.InvalidInput,
				fmt.Sprintf("설정값이 유효하지 않습니다: %s='%v' (규칙: %s)", fieldErr.Namespace(), fieldErr.Value(), fieldErr.Tag()))
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	return nil
}

// Load 기본값 위에 환경 변수를 덮어써서 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	err := k.Load(confmap.Provider(map[string]interface{}{
		"debug":           false,
		"api.listen_port": 8000,

		"postgres.host":     "postgresql",
		"postgres.port":     5432,
		"postgres.database": "homelab",
		"postgres.user":     "postgres",
		"postgres.password": "postgres123",

		"redis.host": "redis",
		"redis.port": 6379,

		"rabbitmq.host":     "rabbitmq",
		"rabbitmq.port":     5672,
		"rabbitmq.vhost":    "/",
		"rabbitmq.user":     "admin",
		"rabbitmq.password": "admin123",
	}, "."), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. 환경 변수 로드 (최우선 순위, 기본값 덮어쓰기)
	// 매핑 테이블에 정의되지 않은 환경 변수는 빈 키를 반환하여 무시합니다.
	if err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeyMap[s]
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 3. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 설정 키가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true, // 환경 변수의 문자열 값을 숫자/불리언으로 변환 허용
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 4. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(validator.New(validator.WithRequiredStructEnabled())); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정의 유효성 검증에 실패했습니다")
	}

	return &appConfig, nil
}
