package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Firebase FirebaseConfig
	DB       DBConfig
	Ledger   LedgerConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
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

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// FirebaseConfig acceso a la Realtime Database compartida con la aplicación web.
type FirebaseConfig struct {
	DatabaseURL string // ej. https://<proyecto>.firebaseio.com
	AuthToken   string // token del canal privilegiado; vacío = canal público
}

// DBConfig configuración de PostgreSQL para el archivo local de snapshots.
// Si DatabaseURL no está vacío, se usa como connection string completo.
// El archivo es opcional: con DB_HOST y DATABASE_URL vacíos el servicio
// trabaja solo contra Firebase.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// Enabled indica si el archivo de snapshots está configurado.
func (c DBConfig) Enabled() bool {
	return c.DatabaseURL != "" || c.Host != ""
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
	userInfo := url.UserPassword(c.User, c.Password)

	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}

	return u.String()
}

// LedgerConfig parámetros de negocio del libro contable.
type LedgerConfig struct {
	DefaultYear      string // año usado cuando el dataset no trae currentYear
	NotificationDays int    // N días para el aviso de clientes inactivos
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT,
// FIREBASE_DATABASE_URL, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: v.GetInt("JWT_EXPIRATION"),
			Issuer:     v.GetString("JWT_ISSUER"),
		},
		Firebase: FirebaseConfig{
			DatabaseURL: v.GetString("FIREBASE_DATABASE_URL"),
			AuthToken:   v.GetString("FIREBASE_AUTH_TOKEN"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		Ledger: LedgerConfig{
			DefaultYear:      v.GetString("LEDGER_DEFAULT_YEAR"),
			NotificationDays: v.GetInt("LEDGER_NOTIFICATION_DAYS"),
		},
	}

	if cfg.Firebase.DatabaseURL == "" {
		return nil, fmt.Errorf("config: FIREBASE_DATABASE_URL es requerido")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: JWT_SECRET es requerido")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "avesta-api")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("JWT_EXPIRATION", 1440)
	v.SetDefault("JWT_ISSUER", "avesta-api")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("LEDGER_DEFAULT_YEAR", "2026")
	v.SetDefault("LEDGER_NOTIFICATION_DAYS", 7)
}
