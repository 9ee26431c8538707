package config_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-admin/pkg/config"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := config.FromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
	assert.Equal(t, "users.json", cfg.Data.UsersFile)
	assert.Equal(t, "products.json", cfg.Data.ProductsFile)
	assert.Equal(t, "promotions.json", cfg.Data.PromotionsFile)
	assert.Equal(t, "static/images", cfg.Data.ProductImagesDir())
	assert.Equal(t, "static/uploads", cfg.Data.PromotionImagesDir())
	assert.Equal(t, "plain", cfg.Auth.PasswordScheme)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
}

func TestFromViper_PortDesdeEnv(t *testing.T) {
	v := viper.New()
	v.Set("PORT", "8081")
	v.Set("AUTH_PASSWORD_SCHEME", "BCRYPT")

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, "bcrypt", cfg.Auth.PasswordScheme)
}

func TestFromViper_ValoresInvalidos(t *testing.T) {
	v := viper.New()
	v.Set("PORT", 70000)
	_, err := config.FromViper(v)
	assert.Error(t, err, "un puerto fuera de rango debe rechazarse")

	v = viper.New()
	v.Set("AUTH_PASSWORD_SCHEME", "md5")
	_, err = config.FromViper(v)
	assert.Error(t, err)
}
