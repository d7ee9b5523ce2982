package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

func BuildDbHTTPErr(err error) *HTTPError {
	log.Error().Err(err).Msg("database error occurred")
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "database error",
	}
}

func NotFoundErr(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: message,
	}
}

type HandlerOpts struct{}

// HandlerWrapper adapts a handler returning *HTTPError into a gin handler.
// Not-found conditions render the custom 404 page; everything else degrades
// to a plain status response.
func HandlerWrapper(handler func(c *gin.Context) *HTTPError, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(c); err != nil {
			HandleHTTPErrorRes(c, err)
		}
	}
}

func HandleHTTPErrorRes(c *gin.Context, err *HTTPError) {
	if err.Status == http.StatusNotFound {
		c.HTML(http.StatusNotFound, "404.html", gin.H{
			"path": c.Request.URL.Path,
		})
		return
	}
	c.String(err.Status, err.Message)
}
