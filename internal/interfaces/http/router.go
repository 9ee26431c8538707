package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-admin/internal/application/auth"
	"github.com/jhoicas/tienda-admin/internal/application/usecase"
	"github.com/jhoicas/tienda-admin/pkg/logger"
	"github.com/jhoicas/tienda-admin/web"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	AuthUC      *auth.AuthUseCase
	ProductUC   *usecase.ProductUseCase
	PromotionUC *usecase.PromotionUseCase
	OrderUC     *usecase.OrderUseCase
	Sessions    *Sessions
	StaticDir   string
	BodyLimit   int
	Log         *logger.Logger
}

// NewApp construye la aplicación Fiber con vistas, middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	if deps.Sessions == nil {
		deps.Sessions = NewSessions(SessionConfig{})
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		Views:        web.NewEngine(),
		BodyLimit:    deps.BodyLimit,
		ErrorHandler: ErrorHandler(deps.Log),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	// NoCache va primero para cubrir también las respuestas de pánicos recuperados.
	app.Use(NoCacheMiddleware())
	app.Use(RequestLogger(deps.Log))
	app.Use(recover.New())
	Router(app, deps)
	return app
}

// Router registra las rutas del sitio.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
	}

	site := app.Group("/", SessionUserMiddleware(deps.Sessions))

	site.Get("/", func(c *fiber.Ctx) error {
		return render(c, "home", fiber.Map{"Title": "Home"})
	})

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC)
	site.Get("/register", authHandler.RegisterForm)
	site.Post("/register", authHandler.Register)
	site.Get("/login", authHandler.LoginForm)
	site.Post("/login", authHandler.Login)
	site.Get("/logout", authHandler.Logout)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	site.Get("/products", productHandler.List)
	site.Get("/add_product", productHandler.NewForm)
	site.Post("/add_product", productHandler.Create)
	site.Get("/edit_product/:id", productHandler.EditForm)
	site.Post("/edit_product/:id", productHandler.Update)
	site.Post("/delete_product/:id", productHandler.Delete)

	// Order
	orderHandler := NewOrderHandler(deps.OrderUC)
	site.Post("/order_summary", orderHandler.Summary)
	site.Post("/save_order_changes", orderHandler.SaveChanges)
	site.Post("/confirm_order", orderHandler.Confirm)
	site.Get("/order_items", orderHandler.Pending)

	// Promotions
	promotionHandler := NewPromotionHandler(deps.PromotionUC)
	site.Get("/promotions", promotionHandler.List)
	site.Get("/add_promotion", promotionHandler.NewForm)
	site.Post("/add_promotion", promotionHandler.Create)
}
