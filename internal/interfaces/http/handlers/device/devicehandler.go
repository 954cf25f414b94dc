package device

import (
	"github.com/gin-gonic/gin"

	"fixdesk/internal/application/device/usecases"
	"fixdesk/internal/shared/id"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/utils"
)

type DeviceHandler struct {
	createDeviceUC usecases.CreateDeviceExecutor
	getDeviceUC    usecases.GetDeviceExecutor
	listDevicesUC  usecases.ListDevicesExecutor
	updateDeviceUC usecases.UpdateDeviceExecutor
	deleteDeviceUC usecases.DeleteDeviceExecutor
	logger         logger.Interface
}

func NewDeviceHandler(
	createDeviceUC usecases.CreateDeviceExecutor,
	getDeviceUC usecases.GetDeviceExecutor,
	listDevicesUC usecases.ListDevicesExecutor,
	updateDeviceUC usecases.UpdateDeviceExecutor,
	deleteDeviceUC usecases.DeleteDeviceExecutor,
) *DeviceHandler {
	return &DeviceHandler{
		createDeviceUC: createDeviceUC,
		getDeviceUC:    getDeviceUC,
		listDevicesUC:  listDevicesUC,
		updateDeviceUC: updateDeviceUC,
		deleteDeviceUC: deleteDeviceUC,
		logger:         logger.NewLogger(),
	}
}

// CreateDevice handles POST /devices
func (h *DeviceHandler) CreateDevice(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create device", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createDeviceUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetDevice handles GET /devices/:id
func (h *DeviceHandler) GetDevice(c *gin.Context) {
	deviceSID, err := utils.ParseSIDParam(c, "id", id.PrefixDevice, "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDeviceUC.Execute(c.Request.Context(), usecases.GetDeviceQuery{DeviceSID: deviceSID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// ListDevices handles GET /devices
func (h *DeviceHandler) ListDevices(c *gin.Context) {
	result, err := h.listDevicesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateDevice handles PATCH /devices/:id
func (h *DeviceHandler) UpdateDevice(c *gin.Context) {
	deviceSID, err := utils.ParseSIDParam(c, "id", id.PrefixDevice, "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update device", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateDeviceUC.Execute(c.Request.Context(), req.ToCommand(deviceSID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteDevice handles DELETE /devices/:id
func (h *DeviceHandler) DeleteDevice(c *gin.Context) {
	deviceSID, err := utils.ParseSIDParam(c, "id", id.PrefixDevice, "device")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteDeviceUC.Execute(c.Request.Context(), usecases.DeleteDeviceCommand{DeviceSID: deviceSID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, nil)
}
