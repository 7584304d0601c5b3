// controllers/sync.go
package controllers

import (
	"errors"
	"net/http"

	"laundrypos-backend/services"
	"laundrypos-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SyncController struct {
	sync   *services.SyncService
	remote *services.RemoteClient
	orders *services.OrderService
}

func NewSyncController(sync *services.SyncService, remote *services.RemoteClient, orders *services.OrderService) *SyncController {
	return &SyncController{sync: sync, remote: remote, orders: orders}
}

// TrackOrder is the public customer lookup. It asks the mirror first so
// tracking works from anywhere, then falls back to the local store for
// orders the mirror never received.
func (sc *SyncController) TrackOrder(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Receipt number required")
		return
	}

	if order := sc.remote.TrackOrder(token); order != nil {
		c.JSON(http.StatusOK, order)
		return
	}

	order, err := sc.orders.Track(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "No order found with this receipt number")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// ResyncAll re-pushes every local order to the mirror
func (sc *SyncController) ResyncAll(c *gin.Context) {
	synced, failed, err := sc.sync.ResyncAll(c.Request.Context())
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to read local orders")
		return
	}

	c.JSON(http.StatusOK, gin.H{"synced": synced, "failed": failed})
}
