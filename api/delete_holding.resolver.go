package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) deleteHolding(c *gin.Context) {
	holdingID, err := uuid.Parse(c.Param("holdingId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	if err := m.HoldingService.DeleteHolding(c.Request.Context(), holdingID); err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, gin.H{"deleted": holdingID})
}
