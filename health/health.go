// Package health поднимает маленький HTTP-сервер для проверок живости со
// стороны хостинга.
package health

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Start serves GET /health on addr. Blocks, so run it in a goroutine.
func Start(addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e.Start(addr)
}
