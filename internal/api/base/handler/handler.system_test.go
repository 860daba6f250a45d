package basehdl

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestHandleRoot_XacNhanAPIDangChay(t *testing.T) {
	app := fiber.New()
	app.Get("/", HandleRoot)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err, "Request tới GET / không được trả về lỗi")
	defer resp.Body.Close()

	assert.Equal(t, 200, resp.StatusCode, "GET / phải trả về 200")

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "API is running", payload["message"])
	assert.Equal(t, "success", payload["status"])
}
