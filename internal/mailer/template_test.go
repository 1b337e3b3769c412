package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestBuildArticleEmail(t *testing.T) {
	html, err := BuildArticleEmail(EmailData{
		Title:          "New editorial publication",
		ArticleTitle:   "Alpha release notes",
		ArticleExcerpt: "the first drop",
		ArticleURL:     "http://localhost:4000/articles/alpha-release-notes",
		AuthorName:     "Maria",
		PublishedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
		NetworkName:    "Net A",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, want := range []string{
		"Alpha release notes",
		"the first drop",
		"http://localhost:4000/articles/alpha-release-notes",
		"March 1, 2024",
		"Net A",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("email missing %q", want)
		}
	}
}

func TestBuildArticleEmail_OmitsEmptyNetwork(t *testing.T) {
	html, err := BuildArticleEmail(EmailData{
		Title:        "New editorial publication",
		ArticleTitle: "Solo piece",
		PublishedAt:  time.Now(),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(html, `class="network"`) {
		t.Fatalf("network block rendered without a network name")
	}
}

func TestBuildArticleEmail_EscapesMarkup(t *testing.T) {
	html, err := BuildArticleEmail(EmailData{
		Title:          "New editorial publication",
		ArticleTitle:   `<script>alert("x")</script>`,
		ArticleExcerpt: "plain",
		PublishedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("title markup not escaped")
	}
}
