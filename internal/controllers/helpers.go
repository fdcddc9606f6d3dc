package controllers

import (
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-pizza-restaurants/internal/models"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads the :id path parameter. On failure it writes a 400 and returns false.
func parseIDParam(ctx *gin.Context, resource string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewErrorResponse("Invalid "+resource+" ID format"))
		return 0, false
	}
	return uint(id), true
}

// respondWriteError answers a rejected write with the errors list, or a 500
// when the failure is not the client's fault.
func respondWriteError(ctx *gin.Context, err error, failure string) {
	if models.IsWriteError(err) {
		ctx.JSON(http.StatusBadRequest, models.NewErrorsResponse(err))
		return
	}
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(failure))
}
