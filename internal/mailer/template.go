package mailer

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// EmailData feeds the article notification template.
type EmailData struct {
	Title          string
	ArticleTitle   string
	ArticleExcerpt string
	ArticleURL     string
	AuthorName     string
	PublishedAt    time.Time
	NetworkName    string
}

var articleEmailTmpl = template.Must(template.New("article-email").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background-color: #f5f5f5; font-family: 'Helvetica Neue', Arial, sans-serif; color: #333; }
    .wrapper { max-width: 600px; margin: 40px auto; background-color: #fff; border-radius: 8px; overflow: hidden; }
    .header { background-color: #1a1a2e; padding: 28px 32px; text-align: center; }
    .header h1 { color: #fff; font-size: 22px; margin: 0; }
    .header p.network { color: #a0aec0; font-size: 13px; margin: 6px 0 0; }
    .body { padding: 32px; }
    .label { font-size: 11px; font-weight: 700; text-transform: uppercase; letter-spacing: 1px; color: #e63946; margin-bottom: 8px; }
    .article-title { font-size: 22px; font-weight: 700; color: #1a1a2e; margin: 0 0 16px; }
    .excerpt { font-size: 15px; color: #555; line-height: 1.7; margin: 0 0 24px; }
    .meta { font-size: 13px; color: #888; border-top: 1px solid #eee; padding-top: 16px; margin-bottom: 24px; }
    .cta { display: inline-block; background-color: #e63946; color: #fff; text-decoration: none; padding: 12px 28px; border-radius: 6px; font-size: 14px; font-weight: 600; }
    .footer { background-color: #f9f9f9; padding: 20px 32px; text-align: center; font-size: 12px; color: #aaa; border-top: 1px solid #eee; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="header">
      <h1>{{.Title}}</h1>
      {{if .NetworkName}}<p class="network">{{.NetworkName}}</p>{{end}}
    </div>
    <div class="body">
      <p class="label">New article published</p>
      <h2 class="article-title">{{.ArticleTitle}}</h2>
      <p class="excerpt">{{.ArticleExcerpt}}</p>
      <div class="meta">
        <strong>Author:</strong> {{.AuthorName}}<br />
        <strong>Published:</strong> {{.PublishedAt.Format "January 2, 2006"}}
      </div>
      <a href="{{.ArticleURL}}" class="cta">Read the full article</a>
    </div>
    <div class="footer">
      You are receiving this email because you subscribed to editorial notifications.<br />
      &copy; {{.Year}} Editorial CMS
    </div>
  </div>
</body>
</html>`))

// BuildArticleEmail renders the article notification email HTML.
func BuildArticleEmail(data EmailData) (string, error) {
	payload := struct {
		EmailData
		Year int
	}{EmailData: data, Year: time.Now().Year()}

	var b strings.Builder
	if err := articleEmailTmpl.Execute(&b, payload); err != nil {
		return "", fmt.Errorf("render article email: %w", err)
	}
	return b.String(), nil
}
