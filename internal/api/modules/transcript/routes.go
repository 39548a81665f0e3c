package transcript_module

import (
	"github.com/gin-gonic/gin"
)

// Register routes for the transcript module
func RegisterRoutes(g *gin.RouterGroup) {
	g.POST("/transcript", GetTranscript)
}
