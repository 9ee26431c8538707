package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/jsonstore"
	"github.com/jhoicas/tienda-admin/internal/infrastructure/upload"
	httpRouter "github.com/jhoicas/tienda-admin/internal/interfaces/http"
	"github.com/jhoicas/tienda-admin/pkg/config"
	"github.com/jhoicas/tienda-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("password_scheme", cfg.Auth.PasswordScheme).
		Msg("iniciando aplicación")
	if cfg.Auth.PasswordScheme == auth.SchemePlain {
		log.Warn().Msg("las contraseñas se guardan en texto plano (AUTH_PASSWORD_SCHEME=plain)")
	}

	productImages, err := upload.NewStorage(cfg.Data.StaticDir, "images")
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de imágenes de productos")
	}
	promotionImages, err := upload.NewStorage(cfg.Data.StaticDir, "uploads")
	if err != nil {
		log.Fatal().Err(err).Msg("directorio de imágenes de promociones")
	}

	storeLog := log.Named("jsonstore")
	userRepo := jsonstore.NewUserRepository(cfg.Data.UsersFile, storeLog)
	productRepo := jsonstore.NewProductRepository(cfg.Data.ProductsFile, storeLog)
	promotionRepo := jsonstore.NewPromotionRepository(cfg.Data.PromotionsFile, storeLog)

	authUC := auth.NewAuthUseCase(userRepo, cfg.Auth.PasswordScheme)
	productUC := usecase.NewProductUseCase(productRepo, productImages, log.Named("products"))
	promotionUC := usecase.NewPromotionUseCase(promotionRepo, promotionImages, log.Named("promotions"))
	orderUC := usecase.NewOrderUseCase(log.Named("orders"))

	sessions := httpRouter.NewSessions(httpRouter.SessionConfig{
		CookieName: cfg.Session.CookieName,
		Expiration: time.Duration(cfg.Session.ExpirationMinutes) * time.Minute,
		Secure:     cfg.Session.CookieSecure,
	})

	app := httpRouter.NewApp(httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		AuthUC:      authUC,
		ProductUC:   productUC,
		PromotionUC: promotionUC,
		OrderUC:     orderUC,
		Sessions:    sessions,
		StaticDir:   cfg.Data.StaticDir,
		BodyLimit:   cfg.HTTP.UploadMaxBytes,
		Log:         log.Named("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
