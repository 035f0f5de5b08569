package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"polyfaq/backend/internal/handler"
)

func NewRouter(faqHandler *handler.FAQHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())

	root := e.Group("")
	faqHandler.RegisterRoutes(root)

	return e
}
