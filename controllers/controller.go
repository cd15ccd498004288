package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/utils"
)

// parseID reads a positive integer route parameter; on failure it writes
// the 400 itself and returns ok=false.
func parseID(c *gin.Context, name string) (uint32, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.Error(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return uint32(id), true
}
