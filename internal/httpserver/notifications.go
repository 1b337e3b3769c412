package httpserver

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/domain"
	notificationsvc "editorial-cms/internal/service/notification"
)

func listNotifications(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := deps.Notifications.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// importArticles runs the bulk pipeline and records a summary notification,
// success when every record was accepted, warning otherwise.
func importArticles(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := c.GetRawData()
		if err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrInvalidPayload, err.Error()))
			return
		}

		result, err := deps.Importer.Run(c.Request.Context(), payload)
		if err != nil {
			writeError(c, err)
			return
		}

		notifType := domain.NotifSuccess
		if len(result.Errors) > 0 {
			notifType = domain.NotifWarning
		}
		if _, err := deps.Notifications.Create(c.Request.Context(), notificationsvc.CreateParams{
			Type:    notifType,
			Title:   "Article import finished",
			Message: fmt.Sprintf("%d article(s) imported, %d skipped.", result.Imported, result.Skipped),
		}); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
