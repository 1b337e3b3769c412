package domain

// Database is the whole-store snapshot: every logical operation loads one,
// mutates it in memory and persists it back in a single write. Racing writers
// overwrite each other (last write wins); that limitation is part of the
// store contract, not something callers may rely on being locked away.
type Database struct {
	Categories    []Category     `json:"categories"`
	Networks      []Network      `json:"networks"`
	Articles      []Article      `json:"articles"`
	Notifications []Notification `json:"notifications"`
}

// NewDatabase returns an empty snapshot with non-nil collections so that
// serialization yields [] instead of null.
func NewDatabase() *Database {
	return &Database{
		Categories:    []Category{},
		Networks:      []Network{},
		Articles:      []Article{},
		Notifications: []Notification{},
	}
}

// CategoryByID returns the category with the given id, or nil.
func (db *Database) CategoryByID(id string) *Category {
	for i := range db.Categories {
		if db.Categories[i].ID == id {
			return &db.Categories[i]
		}
	}
	return nil
}

// NetworkByID returns the network with the given id, or nil.
func (db *Database) NetworkByID(id string) *Network {
	for i := range db.Networks {
		if db.Networks[i].ID == id {
			return &db.Networks[i]
		}
	}
	return nil
}

// ArticleByID returns the article with the given id, or nil.
func (db *Database) ArticleByID(id string) *Article {
	for i := range db.Articles {
		if db.Articles[i].ID == id {
			return &db.Articles[i]
		}
	}
	return nil
}
