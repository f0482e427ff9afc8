package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/truegloryhair/commerce-reports/framework/web"
)

func Health(ctx *gin.Context) error {
	return web.Respond(ctx, nil, http.StatusOK)
}
