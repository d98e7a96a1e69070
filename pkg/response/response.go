package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/menro-ph/waste-api/pkg/errors"
)

// JSON sends a success response. Payloads go out bare (arrays and objects as
// produced by the services) to stay wire compatible with the client this API
// backs.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.JSON(status, data)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// Error sends an error response in the {"error": "..."} shape the client
// expects, with the status carried by the typed error.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	c.Header("Cache-Control", "no-store")
	c.JSON(appErr.Status, gin.H{"error": appErr.Message})
}
