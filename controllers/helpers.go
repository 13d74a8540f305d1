package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidInput        = "Invalid input"
	msgInternalServerError = "Internal Server Error"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func parseIDParam(ctx *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil {
		return 0, false
	}
	return id, true
}
