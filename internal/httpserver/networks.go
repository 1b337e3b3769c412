package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/domain"
	networksvc "editorial-cms/internal/service/network"
)

func listNetworks(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Networks.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getNetwork(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := deps.Networks.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func createNetwork(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in networksvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		item, err := deps.Networks.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func updateNetwork(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in networksvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		item, err := deps.Networks.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteNetwork(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Networks.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
