package domain

import "time"

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

type Tag struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tag) TableName() string {
	return "tags"
}

// TaxonomyKind selects between the two lookup tables attached to quotes.
type TaxonomyKind string

const (
	TaxonomyCategory TaxonomyKind = "category"
	TaxonomyTag      TaxonomyKind = "tag"
)

// Term is the common shape of a category or a tag.
type Term struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (k TaxonomyKind) Valid() bool {
	return k == TaxonomyCategory || k == TaxonomyTag
}

func (k TaxonomyKind) Table() string {
	if k == TaxonomyTag {
		return Tag{}.TableName()
	}
	return Category{}.TableName()
}

// PivotTable is the many2many join table linking the kind to quotes.
func (k TaxonomyKind) PivotTable() string {
	if k == TaxonomyTag {
		return "quote_tags"
	}
	return "quote_categories"
}

func (k TaxonomyKind) PivotColumn() string {
	if k == TaxonomyTag {
		return "tag_id"
	}
	return "category_id"
}
