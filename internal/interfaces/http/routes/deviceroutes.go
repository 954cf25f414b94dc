package routes

import (
	"github.com/gin-gonic/gin"

	devicehandlers "fixdesk/internal/interfaces/http/handlers/device"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/shared/authorization"
)

type DeviceRouteConfig struct {
	DeviceHandler  *devicehandlers.DeviceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupDeviceRoutes(engine *gin.Engine, config *DeviceRouteConfig) {
	devices := engine.Group("/devices")
	devices.Use(config.AuthMiddleware.RequireAuth())
	{
		// Reads are open to any authenticated caller.
		devices.GET("",
			config.DeviceHandler.ListDevices)
		devices.GET("/:id",
			config.DeviceHandler.GetDevice)

		// The device catalog is administrator-curated.
		devices.POST("",
			authorization.RequireAdmin(),
			config.DeviceHandler.CreateDevice)
		devices.PATCH("/:id",
			authorization.RequireAdmin(),
			config.DeviceHandler.UpdateDevice)
		devices.DELETE("/:id",
			authorization.RequireAdmin(),
			config.DeviceHandler.DeleteDevice)
	}
}
