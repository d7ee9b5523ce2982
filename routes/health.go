package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quillhq/quill-be/util"
)

func AddHealthCheckRoutes(group *gin.RouterGroup) {
	health := group.Group("/health")
	health.GET("", util.HandlerWrapper(AliveCheck, &util.HandlerOpts{}))
}

func AliveCheck(c *gin.Context) *util.HTTPError {
	c.String(http.StatusOK, "ok")
	return nil
}
