package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AuthConfig centraliza a configuração do serviço de usuários.
type AuthConfig struct {
	Port             int
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDatabase string
	JWTSecret        string
	UploadDir        string
	AllowOrigins     []string
}

// LocationConfig centraliza a configuração do serviço de eventos.
type LocationConfig struct {
	Port          int
	MongoHost     string
	MongoPort     int
	MongoUsername string
	MongoPassword string
	MongoDatabase string
	JWTSecret     string
	AllowOrigins  []string
}

// LoadAuth carrega variáveis de ambiente do serviço de usuários.
func LoadAuth() (*AuthConfig, error) {
	_ = godotenv.Load()

	cfg := &AuthConfig{}

	port, err := parseIntEnv("PORT", 3000)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.PostgresHost = getEnv("POSTGRES_HOST_DB", "localhost")

	pgPort, err := parseIntEnv("POSTGRES_PORT", 5432)
	if err != nil {
		return nil, err
	}
	cfg.PostgresPort = pgPort

	cfg.PostgresUser = getEnv("POSTGRES_USER", "postgres")
	cfg.PostgresPassword = getEnv("POSTGRES_PASSWORD", "")

	cfg.PostgresDatabase = getEnv("POSTGRES_DATABASE", "")
	if cfg.PostgresDatabase == "" {
		return nil, errors.New("POSTGRES_DATABASE obrigatório")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET obrigatório")
	}

	cfg.UploadDir = getEnv("UPLOAD_DIR", "uploads")
	cfg.AllowOrigins = splitOrigins(getEnv("ALLOW_ORIGINS", "*"))

	return cfg, nil
}

// LoadLocation carrega variáveis de ambiente do serviço de eventos.
func LoadLocation() (*LocationConfig, error) {
	_ = godotenv.Load()

	cfg := &LocationConfig{}

	port, err := parseIntEnv("PORT", 3001)
	if err != nil {
		return nil, err
	}
	cfg.Port = port

	cfg.MongoHost = getEnv("MONGO_HOST", "localhost")

	mongoPort, err := parseIntEnv("MONGO_PORT", 27017)
	if err != nil {
		return nil, err
	}
	cfg.MongoPort = mongoPort

	cfg.MongoUsername = getEnv("MONGO_USERNAME", "")
	cfg.MongoPassword = getEnv("MONGO_PASSWORD", "")

	cfg.MongoDatabase = getEnv("MONGO_DATABASE", "")
	if cfg.MongoDatabase == "" {
		return nil, errors.New("MONGO_DATABASE obrigatório")
	}

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", ""))
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET obrigatório")
	}

	cfg.AllowOrigins = splitOrigins(getEnv("ALLOW_ORIGINS", "*"))

	return cfg, nil
}

// PostgresDSN monta a string de conexão do pgx.
func (c *AuthConfig) PostgresDSN() string {
	dsn := "postgres://" + c.PostgresUser
	if c.PostgresPassword != "" {
		dsn += ":" + c.PostgresPassword
	}
	return dsn + "@" + c.PostgresHost + ":" + strconv.Itoa(c.PostgresPort) + "/" + c.PostgresDatabase
}

// MongoURI monta a string de conexão do driver oficial.
func (c *LocationConfig) MongoURI() string {
	uri := "mongodb://"
	if c.MongoUsername != "" {
		uri += c.MongoUsername
		if c.MongoPassword != "" {
			uri += ":" + c.MongoPassword
		}
		uri += "@"
	}
	return uri + c.MongoHost + ":" + strconv.Itoa(c.MongoPort)
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

func parseIntEnv(key string, def int) (int, error) {
	val := getEnv(key, "")
	if val == "" {
		return def, nil
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return 0, errors.New(key + " inválida")
	}
	return parsed, nil
}
