package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	ctopics "github.com/radieske/football-predictions-view/pkg/contracts/topics"
)

// Config centraliza variáveis de ambiente e parâmetros de execução da view
// Inclui a API de previsões, variante, portas e os destinos opcionais de snapshot
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string // "predictions-view" ou "predictions-web"
	LogLevel    string // vazio = padrão do ambiente

	// API de previsões (serviço externo)
	APIBaseURL   string
	FetchTimeout time.Duration // 0 = sem timeout

	// View
	Variant  string // "full" | "light"
	JoinMode string // "fail-fast" | "collect-all"
	TimeZone string // fuso usado para exibir o horário dos jogos

	// Destinos de snapshot; vazio desativa
	PostgresDSN  string
	RedisAddr    string
	KafkaBrokers string // "a:9092,b:9092"

	RedisSnapshotTTL   time.Duration
	RedisPubSubChannel string
	TopicSnapshots     string
	SinkTimeout        time.Duration

	// Portas do serviço atual
	HTTPPort    string // Porta pública (página HTML)
	MetricsPort string // Porta exclusiva para /metrics e /healthz
}

// fileConfig espelha o arquivo YAML opcional apontado por CONFIG_PATH
type fileConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	API struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"api"`
	View struct {
		Variant  string `yaml:"variant"`
		JoinMode string `yaml:"join_mode"`
		TimeZone string `yaml:"time_zone"`
	} `yaml:"view"`
	Sinks struct {
		PostgresDSN  string `yaml:"postgres_dsn"`
		RedisAddr    string `yaml:"redis_addr"`
		RedisTTL     string `yaml:"redis_ttl"`
		RedisChannel string `yaml:"redis_channel"`
		KafkaBrokers string `yaml:"kafka_brokers"`
		KafkaTopic   string `yaml:"kafka_topic"`
		Timeout      string `yaml:"timeout"`
	} `yaml:"sinks"`
	HTTPPort    string `yaml:"http_port"`
	MetricsPort string `yaml:"metrics_port"`
}

// Load carrega o arquivo YAML (se houver) e as variáveis de ambiente.
// Variáveis de ambiente têm precedência sobre o arquivo, que tem precedência sobre os defaults.
// service é o nome padrão do binário; SERVICE_NAME sobrescreve.
func Load(service string) (Config, error) {
	var fc fileConfig
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	svc := getEnv("SERVICE_NAME", service)

	cfg := Config{
		Env:         getEnv("ENV", or(fc.Env, "local")),
		ServiceName: svc,
		LogLevel:    getEnv("LOG_LEVEL", fc.LogLevel),

		APIBaseURL: getEnv("PREDICTIONS_API_URL", or(fc.API.BaseURL, "http://localhost:5000")),

		Variant:  getEnv("VIEW_VARIANT", or(fc.View.Variant, "full")),
		JoinMode: getEnv("JOIN_MODE", or(fc.View.JoinMode, "fail-fast")),
		TimeZone: getEnv("VIEW_TZ", or(fc.View.TimeZone, "America/Sao_Paulo")),

		PostgresDSN:  getEnv("POSTGRES_DSN", fc.Sinks.PostgresDSN),
		RedisAddr:    getEnv("REDIS_ADDR", fc.Sinks.RedisAddr),
		KafkaBrokers: getEnv("KAFKA_BROKERS", fc.Sinks.KafkaBrokers),

		RedisPubSubChannel: getEnv("REDIS_PUBSUB_CHANNEL", or(fc.Sinks.RedisChannel, ctopics.PredictionsBroadcast)),
		TopicSnapshots:     getEnv("KAFKA_TOPIC_SNAPSHOTS", or(fc.Sinks.KafkaTopic, ctopics.PredictionsSnapshots)),
	}

	var err error
	if cfg.FetchTimeout, err = getEnvDuration("FETCH_TIMEOUT", or(fc.API.Timeout, "0s")); err != nil {
		return Config{}, err
	}
	if cfg.RedisSnapshotTTL, err = getEnvDuration("REDIS_SNAPSHOT_TTL", or(fc.Sinks.RedisTTL, "1h")); err != nil {
		return Config{}, err
	}
	if cfg.SinkTimeout, err = getEnvDuration("SINK_TIMEOUT", or(fc.Sinks.Timeout, "2s")); err != nil {
		return Config{}, err
	}

	// Define portas padrão para cada serviço
	switch svc {
	case "predictions-web":
		cfg.HTTPPort = getEnv("HTTP_PORT", or(fc.HTTPPort, "3000"))
		cfg.MetricsPort = getEnv("METRICS_PORT", or(fc.MetricsPort, "9100"))
	default:
		cfg.HTTPPort = getEnv("HTTP_PORT", fc.HTTPPort) // terminal não expõe HTTP público
		cfg.MetricsPort = getEnv("METRICS_PORT", fc.MetricsPort)
	}

	return cfg, nil
}

// Location resolve o fuso configurado; cai para UTC se o nome for inválido
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvDuration(key, def string) (time.Duration, error) {
	raw := getEnv(key, def)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func or(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
