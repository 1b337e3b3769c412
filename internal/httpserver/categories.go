package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/domain"
	categorysvc "editorial-cms/internal/service/category"
)

func listCategories(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Categories.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func getCategory(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := deps.Categories.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func createCategory(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		item, err := deps.Categories.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func updateCategory(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in categorysvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		item, err := deps.Categories.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func deleteCategory(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Categories.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
