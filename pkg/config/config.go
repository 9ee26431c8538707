package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Data    DataConfig
	Session SessionConfig
	Auth    AuthConfig
	Log     LogConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	UploadMaxBytes int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DataConfig rutas de los documentos JSON y del directorio estático.
// Las rutas relativas se resuelven contra el directorio de trabajo del proceso.
type DataConfig struct {
	UsersFile      string
	ProductsFile   string
	PromotionsFile string
	StaticDir      string
}

// ProductImagesDir directorio donde se guardan las imágenes de productos.
func (c DataConfig) ProductImagesDir() string {
	return filepath.Join(c.StaticDir, "images")
}

// PromotionImagesDir directorio donde se guardan las imágenes de promociones.
func (c DataConfig) PromotionImagesDir() string {
	return filepath.Join(c.StaticDir, "uploads")
}

// SessionConfig configuración de la cookie de sesión.
type SessionConfig struct {
	CookieName        string
	ExpirationMinutes int
	CookieSecure      bool
}

// AuthConfig esquema de almacenamiento de contraseñas: "plain" o "bcrypt".
type AuthConfig struct {
	PasswordScheme string
}

// LogConfig nivel del logger.
type LogConfig struct {
	Level string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, PORT, DATA_USERS_FILE, etc.
func Load() (*Config, error) {
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

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya cargada.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-admin"),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "PORT", 5000),
			UploadMaxBytes: getInt(v, "UPLOAD_MAX_BYTES", 16*1024*1024),
		},
		Data: DataConfig{
			UsersFile:      getString(v, "DATA_USERS_FILE", "users.json"),
			ProductsFile:   getString(v, "DATA_PRODUCTS_FILE", "products.json"),
			PromotionsFile: getString(v, "DATA_PROMOTIONS_FILE", "promotions.json"),
			StaticDir:      getString(v, "STATIC_DIR", "static"),
		},
		Session: SessionConfig{
			CookieName:        getString(v, "SESSION_COOKIE_NAME", "session_id"),
			ExpirationMinutes: getInt(v, "SESSION_EXPIRATION_MINUTES", 24*60),
			CookieSecure:      getBool(v, "SESSION_COOKIE_SECURE", false),
		},
		Auth: AuthConfig{
			PasswordScheme: strings.ToLower(getString(v, "AUTH_PASSWORD_SCHEME", "plain")),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
	}

	if cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535 {
		return nil, fmt.Errorf("config: PORT fuera de rango: %d", cfg.HTTP.Port)
	}
	switch cfg.Auth.PasswordScheme {
	case "plain", "bcrypt":
	default:
		return nil, fmt.Errorf("config: AUTH_PASSWORD_SCHEME desconocido: %q", cfg.Auth.PasswordScheme)
	}
	return cfg, nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
