package domain

import (
	"encoding/json"
	"time"
)

const (
	StateDraft     = "draft"
	StatePublished = "published"
)

type Blog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	Body        string    `json:"body" gorm:"not null"`
	Tags        []*Tag    `json:"tags" gorm:"many2many:blog_tags"`
	AuthorID    uint      `json:"author_id" gorm:"not null;index"`
	Author      *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	State       string    `json:"state" gorm:"default:draft;index"`
	ReadCount   uint      `json:"read_count" gorm:"default:0"`
	ReadingTime int       `json:"reading_time"` // minutes, derived from body
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Tag struct {
	ID   uint   `json:"-" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// MarshalJSON renders a tag as its bare name so blogs carry a plain string
// set on the wire.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Name)
}

type CreateBlogRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Body        string   `json:"body" binding:"required"`
	Tags        []string `json:"tags"`
}

// UpdateBlogRequest uses pointer fields: a nil field means "leave unchanged".
// PUT and PATCH share these semantics.
type UpdateBlogRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Body        *string   `json:"body,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	State       *string   `json:"state,omitempty" binding:"omitempty,oneof=draft published"`
}

// BlogFilter narrows and pages a blog listing. Author holds a name fragment;
// the service resolves it to AuthorIDs before the filter reaches the
// repository.
type BlogFilter struct {
	State     string
	Title     string
	Tags      []string
	Author    string
	AuthorID  *uint
	AuthorIDs []uint
	OrderBy   string
	Page      int
	Limit     int
}

// BlogPage is one page of a filtered listing along with its totals.
type BlogPage struct {
	Total       int64   `json:"total"`
	CurrentPage int     `json:"currentPage"`
	TotalPages  int     `json:"totalPages"`
	Blogs       []*Blog `json:"blogs"`
}

type BlogRepository interface {
	Create(blog *Blog) error
	GetByID(id uint) (*Blog, error)
	GetByTitle(title string) (*Blog, error)
	// GetPublished returns the blog only if it is in the published state,
	// with its author and tags loaded.
	GetPublished(id uint) (*Blog, error)
	// IncrementReadCount bumps read_count by one in a single UPDATE,
	// restricted to published blogs. Returns ErrNotFound when no row matched.
	IncrementReadCount(id uint) error
	List(filter BlogFilter) ([]*Blog, int64, error)
	Update(blog *Blog) error
	Delete(id uint) error
}

type TagRepository interface {
	AttachToBlog(blogID uint, names []string) ([]*Tag, error)
	ReplaceForBlog(blogID uint, names []string) ([]*Tag, error)
	// DeleteUnused removes the tag if no blog references it anymore.
	DeleteUnused(tagID uint) error
}

type BlogService interface {
	Create(req CreateBlogRequest, authorID uint) (*Blog, error)
	// Get serves the public single-item fetch: published blogs only, and
	// every successful call increments the read count.
	Get(id uint) (*Blog, error)
	List(filter BlogFilter) (*BlogPage, error)
	ListMine(authorID uint, state string, page, limit int) (*BlogPage, error)
	Update(id uint, req UpdateBlogRequest, requesterID uint) (*Blog, error)
	Delete(id uint, requesterID uint) error
}
