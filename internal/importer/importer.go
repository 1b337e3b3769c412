// Package importer ingests batches of loosely-shaped article records. Each
// record is normalized, validated and slugged independently: a bad record is
// reported with its index and skipped, never aborting the rest of the batch.
package importer

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"editorial-cms/internal/domain"
	"editorial-cms/internal/ident"
	"editorial-cms/internal/slug"
	"editorial-cms/internal/store"
)

// fallbackAuthor is stamped on records that arrive without an author name.
const fallbackAuthor = "Import"

// excerptMax caps auto-derived excerpts.
const excerptMax = 200

var tagPattern = regexp.MustCompile(`<[^>]*>`)

type Importer struct {
	store  store.Store
	logger *log.Logger
}

func New(st store.Store, logger *log.Logger) *Importer {
	return &Importer{store: st, logger: logger}
}

// RecordError ties a rejection message to the record's position in the
// original input list.
type RecordError struct {
	Index int    `json:"index"`
	Error string `json:"error"`
}

// Result reports partial success: accepted articles plus one RecordError per
// rejected record.
type Result struct {
	Imported int              `json:"imported"`
	Skipped  int              `json:"skipped"`
	Total    int              `json:"total"`
	Errors   []RecordError    `json:"errors"`
	Articles []domain.Article `json:"articles"`
}

// record is the canonical form a raw input record is coerced into before
// validation.
type record struct {
	title       string
	content     string
	excerpt     string
	authorName  string
	status      domain.ArticleStatus
	featured    bool
	categoryIDs []string
	networkID   *string
	coverURL    string
	slug        string
	publishedAt *time.Time
}

// Run imports a raw JSON payload. The top level may be a bare array, an
// object wrapping the array under "articles", or a single record object;
// anything else (including an empty list) fails the whole call with
// domain.ErrInvalidPayload and leaves the store untouched.
func (imp *Importer) Run(ctx context.Context, payload []byte) (*Result, error) {
	records, err := extractRecords(payload)
	if err != nil {
		if imp.logger != nil {
			imp.logger.Printf("import rejected: %v", err)
		}
		return nil, err
	}

	db, err := imp.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	validCategories := make(map[string]bool, len(db.Categories))
	for _, c := range db.Categories {
		validCategories[c.ID] = true
	}
	validNetworks := make(map[string]bool, len(db.Networks))
	for _, n := range db.Networks {
		validNetworks[n.ID] = true
	}
	// Seeded with persisted slugs and grown per accepted record, so in-batch
	// siblings collide just like pre-existing articles.
	takenSlugs := make(map[string]bool, len(db.Articles))
	for _, a := range db.Articles {
		takenSlugs[a.Slug] = true
	}

	result := &Result{
		Total:    len(records),
		Errors:   []RecordError{},
		Articles: []domain.Article{},
	}

	for index, raw := range records {
		rec, err := coerceRecord(raw)
		if err == nil {
			err = validateReferences(rec, validCategories, validNetworks)
		}
		if err != nil {
			result.Errors = append(result.Errors, RecordError{Index: index, Error: err.Error()})
			continue
		}

		base := rec.slug
		if base == "" {
			base = slug.Make(rec.title)
		}
		unique := slug.EnsureUnique(base, func(s string) bool { return takenSlugs[s] })
		takenSlugs[unique] = true

		now := time.Now().UTC()
		publishedAt := rec.publishedAt
		if publishedAt == nil && rec.status == domain.StatusPublished {
			publishedAt = &now
		}

		a := domain.Article{
			ID:            ident.New("art"),
			Title:         rec.title,
			Slug:          unique,
			Excerpt:       rec.excerpt,
			Content:       rec.content,
			Status:        rec.status,
			Featured:      rec.featured,
			CategoryIDs:   rec.categoryIDs,
			NetworkID:     rec.networkID,
			AuthorName:    rec.authorName,
			CoverImageURL: rec.coverURL,
			PublishedAt:   publishedAt,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		db.Articles = append(db.Articles, a)
		result.Articles = append(result.Articles, a)
	}

	result.Imported = len(result.Articles)
	result.Skipped = len(result.Errors)

	// Skip the store rewrite entirely when nothing was accepted.
	if result.Imported > 0 {
		if err := imp.store.Save(ctx, db); err != nil {
			return nil, err
		}
	}

	if imp.logger != nil {
		imp.logger.Printf("import finished: %d imported, %d skipped of %d", result.Imported, result.Skipped, result.Total)
	}
	return result, nil
}

// extractRecords normalizes the accepted top-level shapes to a single list.
func extractRecords(payload []byte) ([]gjson.Result, error) {
	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: not valid JSON", domain.ErrInvalidPayload)
	}
	root := gjson.ParseBytes(payload)

	var records []gjson.Result
	switch {
	case root.IsArray():
		records = root.Array()
	case root.IsObject() && root.Get("articles").IsArray():
		records = root.Get("articles").Array()
	case root.IsObject():
		records = []gjson.Result{root}
	default:
		return nil, fmt.Errorf("%w: expected an array of articles or {\"articles\": [...]}", domain.ErrInvalidPayload)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: at least one article is required", domain.ErrInvalidPayload)
	}
	for _, r := range records {
		if !r.IsObject() {
			return nil, fmt.Errorf("%w: every record must be an object", domain.ErrInvalidPayload)
		}
	}
	return records, nil
}

// coerceRecord maps one raw record onto the canonical field set, applying
// every boundary coercion: singular categoryId fallback, numeric-or-string
// ids, imageUrl vs coverImageUrl, summary vs excerpt, loose featured flags.
func coerceRecord(raw gjson.Result) (*record, error) {
	title := raw.Get("title")
	if title.Type != gjson.String {
		return nil, fmt.Errorf("title is required")
	}
	if n := len([]rune(title.String())); n < 3 || n > 300 {
		return nil, fmt.Errorf("title must be between 3 and 300 characters")
	}

	content := raw.Get("content")
	if content.Type != gjson.String {
		return nil, fmt.Errorf("content is required")
	}
	if len([]rune(content.String())) < 10 {
		return nil, fmt.Errorf("content must be at least 10 characters")
	}

	status := domain.StatusDraft
	if v := raw.Get("status"); v.Exists() && v.String() != "" {
		status = domain.ArticleStatus(v.String())
		if !domain.ValidStatus(status) {
			return nil, fmt.Errorf("unknown status %q", v.String())
		}
	}

	coverURL := firstString(raw, "coverImageUrl", "imageUrl")
	if coverURL != "" {
		if u, err := url.Parse(coverURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("cover image must be a valid URL")
		}
	}

	var publishedAt *time.Time
	if v := raw.Get("publishedAt"); v.Exists() && v.Type == gjson.String && v.String() != "" {
		ts, err := time.Parse(time.RFC3339, v.String())
		if err != nil {
			return nil, fmt.Errorf("publishedAt must be an RFC 3339 timestamp")
		}
		publishedAt = &ts
	}

	rec := &record{
		title:       title.String(),
		content:     content.String(),
		status:      status,
		featured:    coerceBool(raw.Get("featured")),
		categoryIDs: coerceCategoryIDs(raw),
		networkID:   coerceNullableID(raw.Get("networkId")),
		coverURL:    coverURL,
		publishedAt: publishedAt,
	}

	// Explicit slugs are normalized through the same slugifier so mixed-case
	// input cannot bypass uniqueness.
	if v := raw.Get("slug"); v.Exists() && v.String() != "" {
		rec.slug = slug.Make(v.String())
	}

	rec.excerpt = strings.TrimSpace(firstString(raw, "excerpt", "summary"))
	if rec.excerpt == "" {
		rec.excerpt = deriveExcerpt(rec.content)
	}

	rec.authorName = strings.TrimSpace(raw.Get("authorName").String())
	if rec.authorName == "" {
		rec.authorName = fallbackAuthor
	}

	return rec, nil
}

func validateReferences(rec *record, validCategories, validNetworks map[string]bool) error {
	var unknown []string
	for _, id := range rec.categoryIDs {
		if !validCategories[id] {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("unknown category id(s): %s", strings.Join(unknown, ", "))
	}
	if rec.networkID != nil && !validNetworks[*rec.networkID] {
		return fmt.Errorf("unknown network id: %q", *rec.networkID)
	}
	return nil
}

// coerceCategoryIDs prefers the categoryIds list, falling back to a singular
// categoryId. Both accept numbers or strings.
func coerceCategoryIDs(raw gjson.Result) []string {
	ids := []string{}
	if v := raw.Get("categoryIds"); v.Exists() && v.Type != gjson.Null {
		if v.IsArray() {
			for _, item := range v.Array() {
				if s := item.String(); s != "" {
					ids = append(ids, s)
				}
			}
		} else if s := v.String(); s != "" {
			ids = append(ids, s)
		}
	}
	if len(ids) == 0 {
		if v := raw.Get("categoryId"); v.Exists() && v.Type != gjson.Null {
			if s := v.String(); s != "" {
				ids = append(ids, s)
			}
		}
	}
	return ids
}

func coerceNullableID(v gjson.Result) *string {
	if !v.Exists() || v.Type == gjson.Null {
		return nil
	}
	s := v.String()
	if s == "" {
		return nil
	}
	return &s
}

func coerceBool(v gjson.Result) bool {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.String() == "true" || v.String() == "1"
	}
	return false
}

func firstString(raw gjson.Result, fields ...string) string {
	for _, f := range fields {
		if v := raw.Get(f); v.Exists() && v.Type == gjson.String && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// deriveExcerpt strips markup from the content and truncates to excerptMax
// runes.
func deriveExcerpt(content string) string {
	plain := tagPattern.ReplaceAllString(content, "")
	runes := []rune(plain)
	if len(runes) > excerptMax {
		runes = runes[:excerptMax]
	}
	return strings.TrimSpace(string(runes))
}
