package middlewares

import (
	"fmt"
	"runtime/debug"

	"crm_backend/internals/helpers/logs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dan mengembalikan error 500; stack masuk ke log "error".
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			logs.Get(logs.Error).
				WithField("title", "Panic").
				WithField("path", c.OriginalURL()).
				WithField("trace", string(debug.Stack())).
				Error(fmt.Sprint(e))
		},
	})
}
