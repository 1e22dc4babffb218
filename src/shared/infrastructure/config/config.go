package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config reúne toda a configuração do serviço lida do ambiente.
// Nenhum componente lê variáveis de ambiente diretamente: tudo passa
// por aqui e é injetado na construção (main.go é o dono do ciclo de vida).
type Config struct {
	Port              string
	PrometheusEnabled bool

	// Banco de dados (Postgres hospedado)
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Bridge Linx (POS externo)
	LinxBaseURL     string
	LinxSalePath    string
	LinxTimeout     time.Duration // timeout por tentativa de envio
	SyncMaxAttempts int           // teto de tentativas antes da falha definitiva
	SyncBackoffUnit time.Duration // unidade de backoff linear entre tentativas
	SweepInterval   time.Duration // intervalo da varredura periódica de pendências
}

// Load monta a configuração a partir das variáveis de ambiente,
// com os mesmos defaults usados no ambiente Docker.
func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		PrometheusEnabled: getEnv("PROMETHEUS_ENABLED", "false") == "true",

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "rodoil_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		LinxBaseURL:     getEnv("LINX_BASE_URL", "http://localhost:9000"),
		LinxSalePath:    getEnv("LINX_SALE_PATH", "/api/vendas"),
		LinxTimeout:     getDurationEnv("LINX_TIMEOUT", 10*time.Second),
		SyncMaxAttempts: getIntEnv("SYNC_MAX_ATTEMPTS", 3),
		SyncBackoffUnit: getDurationEnv("SYNC_BACKOFF_UNIT", 5*time.Minute),
		SweepInterval:   getDurationEnv("SYNC_SWEEP_INTERVAL", 30*time.Second),
	}
}

// ConnString monta a string de conexão Postgres.
func (c Config) ConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// getEnv obtém uma variável de ambiente ou devolve um valor padrão
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
