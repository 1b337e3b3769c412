package domain

import "time"

// ArticleStatus is the editorial lifecycle state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// ValidStatus reports whether s is one of the known article statuses.
func ValidStatus(s ArticleStatus) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

type Article struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"`
	Status        ArticleStatus `json:"status"`
	Featured      bool          `json:"featured"`
	CategoryIDs   []string      `json:"categoryIds"`
	NetworkID     *string       `json:"networkId"`
	AuthorName    string        `json:"authorName"`
	CoverImageURL string        `json:"coverImageUrl,omitempty"`
	PublishedAt   *time.Time    `json:"publishedAt"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// HasCategory reports whether the article references the given category id.
func (a Article) HasCategory(id string) bool {
	for _, cid := range a.CategoryIDs {
		if cid == id {
			return true
		}
	}
	return false
}
