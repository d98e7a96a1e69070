package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appErrors "github.com/menro-ph/waste-api/pkg/errors"
	"github.com/menro-ph/waste-api/pkg/response"
)

// pathID parses the numeric :id path parameter. A non-numeric id is a 400,
// not a 404: only a well-formed id can miss.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid id"))
		return 0, false
	}
	return id, true
}
