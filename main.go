package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/template/html/v2"

	"embedpanel/auth"
	"embedpanel/config"
	"embedpanel/discord"
	"embedpanel/handlers/api"
	"embedpanel/handlers/web"
	"embedpanel/middleware"
	"embedpanel/payment"
	"embedpanel/storage"
	"embedpanel/utils"
)

var store *session.Store

func init() {
	utils.Log.Info("Initializing Embed Panel...")

	store = session.New(session.Config{
		Expiration:     24 * time.Hour,
		CookieSecure:   false, // Set to true in production with HTTPS
		CookieHTTPOnly: true,
	})
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Initialize i18n system
	if err := utils.InitI18n(); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	// Open the record store
	if err := os.MkdirAll(cfg.Storage.DataDir, 0700); err != nil {
		utils.Log.Error("Failed to create data directory: %v", err)
		os.Exit(1)
	}
	kv, err := storage.OpenBolt(cfg.Storage.DataDir)
	if err != nil {
		utils.Log.Error("Failed to open database: %v", err)
		os.Exit(1)
	}
	defer kv.Close()
	records := storage.New(kv)

	gate := auth.NewGate(records)
	paymentClient := payment.NewClient(
		cfg.Payment.Price,
		cfg.Payment.CheckoutURL,
		cfg.Payment.SandboxURL,
		payment.NewRandomApprover(cfg.Payment.ApprovalRate),
	)
	discordClient := discord.NewClient(cfg.Discord.APIBase)

	// Initialize template engine with custom functions
	engine := html.New("./templates", ".html")
	engine.AddFunc("lower", strings.ToLower)
	engine.AddFunc("trim", strings.TrimSpace)
	engine.AddFunc("formatDate", func(ts string) string {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return ts
		}
		return t.Format("Jan 02, 2006 15:04")
	})
	engine.AddFunc("formatPrice", func(v float64) string {
		return fmt.Sprintf("R$ %.2f", v)
	})
	engine.AddFunc("t", func(messageID string) string {
		return utils.T(utils.Localizer, messageID)
	})

	// Initialize Fiber with template engine
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			if appErr, ok := err.(*utils.AppError); ok {
				code = appErr.Code
				if code >= 500 {
					utils.Log.Error("Application error: %v", appErr)
				}
			} else if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			if api.IsAPIRequest(c) {
				return c.Status(code).JSON(fiber.Map{
					"error": err.Error(),
				})
			}

			return c.Status(code).Render("error", fiber.Map{
				"Error": err.Error(),
				"Code":  code,
			})
		},
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src *;",
	}))
	app.Use(middleware.LocaleMiddleware())
	app.Use(middleware.IssueCSRFToken(middleware.DefaultCSRFConfig()))
	app.Use(middleware.CSRFProtection())

	// Rate limiting (100 requests per minute per IP)
	app.Use(middleware.RateLimiter(100, time.Minute))

	app.Static("/assets", "./assets", fiber.Static{
		Compress:      true,
		CacheDuration: 24 * time.Hour,
	})

	// Handlers
	webAuthHandler := web.NewAuthHandler(store, cfg, gate)
	homeHandler := web.NewHomeHandler(cfg)
	panelHandler := web.NewPanelHandler(records)
	adminHandler := web.NewAdminHandler(records)

	sendHandler := api.NewSendHandler(records, discordClient)
	logsHandler := api.NewLogsHandler(records)
	userHandler := api.NewUserHandler(records)
	paymentHandler := api.NewPaymentHandler(records, paymentClient)
	draftHandler := api.NewDraftHandler(records)
	i18nHandler := &api.I18nHandler{}

	// Public routes
	app.Get("/", homeHandler.ShowHome)
	app.Get("/login", webAuthHandler.ShowLogin)
	app.Post("/login", webAuthHandler.HandleLogin)
	app.Get("/logout", webAuthHandler.HandleLogout)
	app.Get("/api/i18n/:lang", i18nHandler.GetTranslations)
	app.Post("/api/payment/preference", paymentHandler.CreatePreference)
	app.Post("/api/payment/status", paymentHandler.CheckStatus)

	// Protected routes group
	protected := app.Group("", api.SessionMiddleware(store, cfg.JWT.Secret))

	protected.Get("/panel", panelHandler.ShowPanel)

	// Live preview socket
	protected.Get("/ws/preview", api.PreviewUpgrade(), api.HandlePreview())

	// API routes
	apiRoutes := protected.Group("/api")
	{
		apiRoutes.Post("/send", sendHandler.HandleSend)

		apiRoutes.Get("/logs", logsHandler.GetLogs)
		apiRoutes.Post("/logs/tokens/clear", logsHandler.ClearTokenLogs)
		apiRoutes.Post("/logs/messages/clear", logsHandler.ClearMessageLogs)

		apiRoutes.Get("/draft", draftHandler.GetDraft)
		apiRoutes.Post("/draft", draftHandler.SaveDraft)
	}

	// Admin-only routes
	admin := protected.Group("", api.RequireAdmin())
	{
		admin.Get("/admin", adminHandler.ShowAdmin)
		admin.Get("/api/users", userHandler.GetUsers)
		admin.Post("/api/users", userHandler.CreateUser)
		admin.Get("/api/users/password", userHandler.GeneratePassword)
		admin.Get("/api/purchases", logsHandler.GetPurchases)
		admin.Get("/api/logs/export", logsHandler.ExportLogs)
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// 404 Handler for undefined routes
	app.Use(func(c *fiber.Ctx) error {
		if api.IsAPIRequest(c) {
			return c.Status(404).JSON(fiber.Map{
				"error": "Not found",
			})
		}
		return c.Status(404).Render("error", fiber.Map{
			"Error": "Page not found",
			"Code":  404,
		})
	})

	// Start server
	utils.Log.Info("Starting server on port %d...", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		utils.Log.Error("Error starting server: %v", err)
	}
}
