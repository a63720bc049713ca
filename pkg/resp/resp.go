package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Violations(c *gin.Context, violations []string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "validation failed", "violations": violations})
}
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": msg})
}

// ServerError hides the underlying error outside of debug mode.
func ServerError(c *gin.Context, err error) {
	msg := "internal server error"
	if gin.Mode() != gin.ReleaseMode {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": msg})
}
