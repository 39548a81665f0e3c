package health

import (
	"net/http"

	"github.com/ethanbaker/transcript-service/pkg/sdk"
	"github.com/gin-gonic/gin"
)

// Return status of the API
func getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, sdk.HealthResponse{
		Status:  "ok",
		Service: "YouTube Transcript Service",
	})
}
