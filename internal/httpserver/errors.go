package httpserver

import (
	"errors"
	"log"
	"net/http"

	"bankingapp/internal/domain"
	"github.com/gin-gonic/gin"
)

// serviceError maps a service failure to its HTTP response: not-found
// becomes a 404 with the service's message as detail, everything else a
// generic 500.
func serviceError(c *gin.Context, logger *log.Logger, err error) {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		c.JSON(http.StatusNotFound, gin.H{"detail": nf.Error()})
		return
	}
	logger.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
}
