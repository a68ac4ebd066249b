// middlewares/cors.go

package middlewares

import (
	"strings"

	"crm_backend/internals/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var defaultAllowOrigins = []string{
	"http://localhost:5173",
	"http://localhost:8000",
	"http://127.0.0.1:5500",
}

// CorsMiddleware membuat middleware CORS. CORS_ALLOW_ORIGINS dipisah koma.
func CorsMiddleware() fiber.Handler {
	origins := strings.Join(defaultAllowOrigins, ", ")
	if v := strings.TrimSpace(configs.GetEnv("CORS_ALLOW_ORIGINS")); v != "" {
		origins = v
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Accept-Language, Authorization, X-Request-ID",
		AllowCredentials: true,
	})
}
