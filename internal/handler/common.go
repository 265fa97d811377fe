package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func BindJson(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid request format"))
		return err
	}
	return nil
}
