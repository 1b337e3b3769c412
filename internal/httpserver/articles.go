package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/mailer"
	articlesvc "editorial-cms/internal/service/article"
	notificationsvc "editorial-cms/internal/service/notification"
)

func listArticles(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := parseArticleFilter(c)
		if err != nil {
			writeError(c, err)
			return
		}
		page, err := deps.Articles.List(c.Request.Context(), *filter)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func parseArticleFilter(c *gin.Context) (*articlesvc.Filter, error) {
	f := &articlesvc.Filter{
		Search:    c.Query("search"),
		NetworkID: c.Query("networkId"),
		SortBy:    c.DefaultQuery("sortBy", "createdAt"),
		SortDir:   c.DefaultQuery("sortDir", "desc"),
	}

	var err error
	if f.Page, err = queryInt(c, "page", 1); err != nil {
		return nil, err
	}
	if f.Limit, err = queryInt(c, "limit", 10); err != nil {
		return nil, err
	}
	if f.Page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", domain.ErrValidation)
	}
	if f.Limit < 1 || f.Limit > 100 {
		return nil, fmt.Errorf("%w: limit must be between 1 and 100", domain.ErrValidation)
	}

	if v := c.Query("status"); v != "" {
		f.Status = domain.ArticleStatus(v)
		if !domain.ValidStatus(f.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, v)
		}
	}
	if v := c.Query("categoryIds"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				f.CategoryIDs = append(f.CategoryIDs, id)
			}
		}
	}
	switch c.Query("featured") {
	case "true":
		t := true
		f.Featured = &t
	case "false":
		fa := false
		f.Featured = &fa
	case "":
	default:
		return nil, fmt.Errorf("%w: featured must be true or false", domain.ErrValidation)
	}

	switch f.SortBy {
	case "createdAt", "updatedAt", "publishedAt", "title":
	default:
		return nil, fmt.Errorf("%w: unknown sort field %q", domain.ErrValidation, f.SortBy)
	}
	if f.SortDir != "asc" && f.SortDir != "desc" {
		return nil, fmt.Errorf("%w: sortDir must be asc or desc", domain.ErrValidation)
	}
	return f, nil
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, key)
	}
	return n, nil
}

func getArticle(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		a, err := deps.Articles.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func createArticle(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in articlesvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		a, err := deps.Articles.Create(c.Request.Context(), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, a)
	}
}

func updateArticle(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in articlesvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: %s", domain.ErrValidation, err.Error()))
			return
		}
		a, err := deps.Articles.Update(c.Request.Context(), c.Param("id"), in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

func deleteArticle(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Articles.Delete(c.Request.Context(), c.Param("id")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func patchArticleStatus(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status domain.ArticleStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, fmt.Errorf("%w: status is required", domain.ErrValidation))
			return
		}
		a, err := deps.Articles.PatchStatus(c.Request.Context(), c.Param("id"), in.Status)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, a)
	}
}

// notifyArticle renders the notification email for an article, attempts
// delivery when SMTP and recipients are configured, and records the outcome.
// The notification record is created whether or not the send succeeds.
func notifyArticle(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		a, err := deps.Articles.GetByID(ctx, c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}

		var networkName string
		if a.NetworkID != nil {
			if n, err := deps.Networks.GetByID(ctx, *a.NetworkID); err == nil {
				networkName = n.Name
			}
		}

		publishedAt := time.Now().UTC()
		if a.PublishedAt != nil {
			publishedAt = *a.PublishedAt
		}

		html, err := mailer.BuildArticleEmail(mailer.EmailData{
			Title:          "New editorial publication",
			ArticleTitle:   a.Title,
			ArticleExcerpt: a.Excerpt,
			ArticleURL:     deps.PublicBaseURL + "/articles/" + a.Slug,
			AuthorName:     a.AuthorName,
			PublishedAt:    publishedAt,
			NetworkName:    networkName,
		})
		if err != nil {
			writeError(c, err)
			return
		}

		subject := "New article: " + a.Title
		params := notificationsvc.CreateParams{
			Type:      domain.NotifSuccess,
			Title:     "Notification sent",
			Message:   fmt.Sprintf("A notification was sent for article %q", a.Title),
			ArticleID: a.ID,
		}

		if deps.Mailer != nil && deps.Mailer.Enabled() && len(deps.NotifyRecipients) > 0 {
			params.Recipients = deps.NotifyRecipients
			params.Subject = subject
			params.HTML = html
			if sendErr := deps.Mailer.Send(deps.NotifyRecipients, subject, html); sendErr != nil {
				params.Type = domain.NotifWarning
				params.Status = domain.DeliveryFailed
				params.Message = fmt.Sprintf("Email delivery failed for article %q", a.Title)
			} else {
				sentAt := time.Now().UTC()
				params.SentAt = &sentAt
				params.Status = domain.DeliverySent
			}
		}

		n, err := deps.Notifications.Create(ctx, params)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":      "Notification created successfully",
			"notification": n,
			"emailPreview": html,
		})
	}
}
