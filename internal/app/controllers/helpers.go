package controllers

import (
	"net/http"
	"strconv"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter, answering 400 when
// it is malformed
func parseIDParam(ctx *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid "+label+" ID").WithField(name))
		return 0, false
	}
	return id, true
}

// currentUserID returns the account id from the verified token
func currentUserID(ctx *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, middleware.MsgMissingIdentity))
		return 0, false
	}
	return id, true
}
