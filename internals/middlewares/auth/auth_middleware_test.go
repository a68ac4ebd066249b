package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"crm_backend/internals/configs"
	"crm_backend/internals/constants"
	userModel "crm_backend/internals/features/users/user/model"
	"crm_backend/internals/helpers/testdb"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "rahasia-test"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	prev := configs.JWTSecret
	configs.JWTSecret = testSecret
	t.Cleanup(func() { configs.JWTSecret = prev })

	db := testdb.Open(t, &userModel.UserModel{})
	app := fiber.New()
	app.Use(AuthMiddleware(db))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": c.Locals("user_id"), "role": c.Locals("userRole")})
	})
	app.Get("/managers", OnlyRolesSlice(constants.RoleErrorManager("sales"), constants.ManagerAndAbove), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app, db
}

func get(t *testing.T, app *fiber.App, path, token string) int {
	t.Helper()
	req := httptest.NewRequest("GET", path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app, db := setup(t)
	u := userModel.UserModel{UserName: "andi", Email: "andi@example.com", Password: "x", Role: constants.RoleSalesManager}
	require.NoError(t, db.Create(&u).Error)

	tok := signToken(t, jwt.MapClaims{"id": u.ID.String(), "role": "Sales_Manager", "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, fiber.StatusOK, get(t, app, "/whoami", tok))
	assert.Equal(t, fiber.StatusOK, get(t, app, "/managers", tok))
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	app, db := setup(t)
	active := userModel.UserModel{UserName: "budi", Email: "budi@example.com", Password: "x"}
	require.NoError(t, db.Create(&active).Error)
	inactive := userModel.UserModel{UserName: "cici", Email: "cici@example.com", Password: "x"}
	require.NoError(t, db.Create(&inactive).Error)
	require.NoError(t, db.Model(&inactive).Update("is_active", false).Error)

	future := time.Now().Add(time.Hour).Unix()

	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/whoami", ""), "tanpa token")

	expired := signToken(t, jwt.MapClaims{"id": active.ID.String(), "exp": time.Now().Add(-time.Hour).Unix()})
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/whoami", expired), "expired")

	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": active.ID.String(), "exp": future}).SignedString([]byte("lain"))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, get(t, app, "/whoami", wrongKey), "signature salah")

	disabled := signToken(t, jwt.MapClaims{"id": inactive.ID.String(), "exp": future})
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/whoami", disabled), "user nonaktif")

	plainUser := signToken(t, jwt.MapClaims{"id": active.ID.String(), "role": constants.RoleUser, "exp": future})
	assert.Equal(t, fiber.StatusForbidden, get(t, app, "/managers", plainUser), "bukan manager")
}

func TestExtractBearerToken_Tolerant(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", `bearer   "abc.def.ghi"`)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
