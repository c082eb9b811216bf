package routes

import (
	"mergington-activities/src/controllers"
	"mergington-activities/src/database"
	"mergington-activities/src/middleware"
	"mergington-activities/src/models"
	"mergington-activities/src/services/activities"
	"mergington-activities/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Deps ทุกอย่างที่ routes ต้องใช้ ถูกสร้างใน main แล้วส่งเข้ามา
type Deps struct {
	Registry       *activities.Registry
	Redis          *redis.Client // nil = ไม่ได้ตั้งค่า REDIS_URI
	Log            *zap.Logger
	StaticDir      string
	AllowedOrigins string
}

// NewApp สร้าง fiber app พร้อม middleware และ routes ทั้งหมด
func NewApp(deps Deps) *fiber.App {
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.AllowedOrigins == "" {
		deps.AllowedOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:      "Mergington Activities API",
		ErrorHandler: utils.ErrorHandler,
		// registry เก็บ string จาก request ไว้ จึงห้ามชี้ไปที่ buffer ของ fasthttp
		Immutable: true,
	})

	app.Use(middleware.RequestLogger(deps.Log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: false, // ต้องเป็น false ถ้าใช้ "*"
	}))

	InitRoutes(app, deps)
	return app
}

func InitRoutes(app *fiber.App, deps Deps) {
	activityRoutes(app, controllers.NewActivityController(deps.Registry, deps.Log))

	if deps.StaticDir != "" {
		app.Static("/static", deps.StaticDir)
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/static/index.html", fiber.StatusTemporaryRedirect)
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(models.HealthResponse{
			Status: "ok",
			Redis:  database.RedisStatus(c.UserContext(), deps.Redis),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/swagger/*", swagger.HandlerDefault)
}
