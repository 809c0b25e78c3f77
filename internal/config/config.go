package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port        string
	Environment string

	// Firebase / Firestore
	FirebaseCredentialsPath string
	FirebaseProjectID       string
	Collection              string
	StoreTimeoutSeconds     int

	// Notificações de novo agendamento
	FirebaseNotifyTopic string
	EnableEmailNotify   bool
	NotifyEmailTo       string

	// SMTP Configuration
	SMTPHost      string
	SMTPPort      int
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("ℹ️  Info: Ficheiro .env não encontrado ou não pôde ser carregado. Lendo variáveis de ambiente do sistema.")
	}

	cfg := &Config{
		// Server
		Port:        getEnvWithDefault("PORT", "8081"),
		Environment: getEnvWithDefault("ENVIRONMENT", "development"),

		// Firebase / Firestore
		FirebaseCredentialsPath: getEnvWithDefault("FIREBASE_CREDENTIALS_PATH", "Banco.json"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		Collection:              getEnvWithDefault("FIRESTORE_COLLECTION", "agendamentos"),
		StoreTimeoutSeconds:     getEnvInt("STORE_TIMEOUT_SECONDS", 10),

		// Notificações
		FirebaseNotifyTopic: os.Getenv("FIREBASE_NOTIFY_TOPIC"),
		EnableEmailNotify:   getEnvBool("ENABLE_EMAIL_NOTIFY", false),
		NotifyEmailTo:       os.Getenv("NOTIFY_EMAIL_TO"),

		// SMTP
		SMTPHost:      getEnvWithDefault("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUsername:  os.Getenv("SMTP_USERNAME"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnvWithDefault("SMTP_FROM_NAME", "Agendamentos"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StoreTimeout limita cada operação no Firestore
func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

// Addr retorna o endereço de escuta do servidor HTTP
func (c *Config) Addr() string {
	return ":" + c.Port
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

// Validate valida se todas as configurações obrigatórias estão presentes
func (c *Config) Validate() error {
	if c.FirebaseCredentialsPath == "" {
		return fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	if c.Collection == "" {
		return fmt.Errorf("FIRESTORE_COLLECTION is required")
	}

	var port int
	if _, err := fmt.Sscanf(c.Port, "%d", &port); err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT: %q", c.Port)
	}

	if c.StoreTimeoutSeconds <= 0 {
		return fmt.Errorf("STORE_TIMEOUT_SECONDS must be positive, got %d", c.StoreTimeoutSeconds)
	}

	if c.EnableEmailNotify && (c.SMTPUsername == "" || c.SMTPPassword == "") {
		log.Println("⚠️  Notificação por email habilitada mas credenciais SMTP não configuradas")
	}

	if c.EnableEmailNotify && c.NotifyEmailTo == "" {
		log.Println("⚠️  Notificação por email habilitada mas NOTIFY_EMAIL_TO não configurado")
	}

	return nil
}
