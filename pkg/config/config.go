package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	DB     DBConfig
	Mongo  MongoConfig
	JWT    JWTConfig
	HTTP   HTTPConfig
	SMTP   SMTPConfig
	Report ReportConfig
	Seed   SeedConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	URL      string // URL pública del dashboard (se incluye en los emails)
	LogLevel string
}

// DBConfig configuración de PostgreSQL (base de usuarios).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// MongoConfig configuración de la base de extracción (la que llena el scraper).
type MongoConfig struct {
	URI      string
	Database string // vacío = la base indicada en la URI
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SMTPConfig configuración del envío de emails.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Enabled indica si hay datos suficientes para intentar enviar emails.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.User != "" && c.Password != ""
}

// ReportConfig opciones de los reportes.
type ReportConfig struct {
	// QueryDateLayout gramática de startDate/endDate: "iso" (YYYY-MM-DD) o "dmy" (dd/MM/yyyy).
	QueryDateLayout string
}

// SeedConfig usuario inicial que crea cmd/seed_user.
type SeedConfig struct {
	Email    string
	Password string
	Role     string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	cfg := read()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadSeed lee la configuración que necesita el seed: base de usuarios y SEED_*.
// No exige Mongo ni JWT.
func LoadSeed() (*Config, error) {
	cfg := read()
	if cfg.Seed.Email == "" || cfg.Seed.Password == "" {
		return nil, fmt.Errorf("config: SEED_EMAIL y SEED_PASSWORD son obligatorios")
	}
	return cfg, nil
}

func read() *Config {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "Premios Grupo Gen"),
			URL:      getString(v, "APP_URL", "https://app-premios-dashboard.vercel.app"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "premios"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Mongo: MongoConfig{
			URI:      getString(v, "MONGO_URI_REWARDS", ""),
			Database: getString(v, "MONGO_DB_REWARDS", ""),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 7*24*60),
			Issuer:     getString(v, "JWT_ISSUER", "premios-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		SMTP: SMTPConfig{
			Host:     getString(v, "SMTP_HOST", ""),
			Port:     getInt(v, "SMTP_PORT", 587),
			User:     getString(v, "SMTP_USER", ""),
			Password: getString(v, "SMTP_PASS", ""),
			From:     getString(v, "SMTP_FROM", `"Premios Grupo Gen" <no-reply@grupogen.com.ar>`),
		},
		Report: ReportConfig{
			QueryDateLayout: strings.ToLower(getString(v, "REPORT_QUERY_DATE_LAYOUT", "iso")),
		},
		Seed: SeedConfig{
			Email:    getString(v, "SEED_EMAIL", ""),
			Password: getString(v, "SEED_PASSWORD", ""),
			Role:     getString(v, "SEED_ROLE", "ADMIN"),
		},
	}
	return cfg
}

func (c *Config) validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("config: MONGO_URI_REWARDS no está definido")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET no está definido")
	}
	switch c.Report.QueryDateLayout {
	case "iso", "dmy":
	default:
		return fmt.Errorf("config: REPORT_QUERY_DATE_LAYOUT inválido %q (iso|dmy)", c.Report.QueryDateLayout)
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
