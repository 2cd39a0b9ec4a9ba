package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

// orderColumns whitelists the fields a listing can be sorted by; anything
// else falls back to created_at. API names and column names both resolve.
var orderColumns = map[string]string{
	"createdAt":    "created_at",
	"created_at":   "created_at",
	"updatedAt":    "updated_at",
	"updated_at":   "updated_at",
	"read_count":   "read_count",
	"reading_time": "reading_time",
	"title":        "title",
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository with the given GORM DB instance.
func NewBlogRepository(db *gorm.DB) domain.BlogRepository {
	return &blogRepository{db: db}
}

// Create inserts a new blog into the database.
func (r *blogRepository) Create(blog *domain.Blog) error {
	if err := r.db.Create(blog).Error; err != nil {
		return fmt.Errorf("failed to create blog: %w", err)
	}
	return nil
}

// GetByID retrieves a blog by its ID regardless of state, with tags loaded.
func (r *blogRepository) GetByID(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Preload("Tags").First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// GetByTitle retrieves a blog by its exact title.
func (r *blogRepository) GetByTitle(title string) (*domain.Blog, error) {
	var blog domain.Blog
	if err := r.db.Where("title = ?", title).First(&blog).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// GetPublished retrieves a published blog with its author and tags loaded.
func (r *blogRepository) GetPublished(id uint) (*domain.Blog, error) {
	var blog domain.Blog
	err := r.db.Preload("Author").Preload("Tags").
		Where("id = ? AND state = ?", id, domain.StatePublished).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog: %w", err)
	}
	return &blog, nil
}

// IncrementReadCount bumps read_count in a single UPDATE so concurrent
// fetches cannot lose increments.
func (r *blogRepository) IncrementReadCount(id uint) error {
	result := r.db.Model(&domain.Blog{}).
		Where("id = ? AND state = ?", id, domain.StatePublished).
		UpdateColumn("read_count", gorm.Expr("read_count + ?", 1))
	if result.Error != nil {
		return fmt.Errorf("failed to increment read count: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns the page of blogs matching the filter plus the total count
// matching it. Count and page run as two separate queries over the same
// filter.
func (r *blogRepository) List(filter domain.BlogFilter) ([]*domain.Blog, int64, error) {
	applyFilter := func(query *gorm.DB) *gorm.DB {
		if filter.State != "" {
			query = query.Where("state = ?", filter.State)
		}
		if filter.Title != "" {
			query = query.Where("title ILIKE ?", "%"+filter.Title+"%")
		}
		if len(filter.Tags) > 0 {
			query = query.Where(
				"blogs.id IN (SELECT blog_id FROM blog_tags JOIN tags ON tags.id = blog_tags.tag_id WHERE tags.name IN ?)",
				filter.Tags,
			)
		}
		if filter.AuthorID != nil {
			query = query.Where("author_id = ?", *filter.AuthorID)
		}
		if filter.AuthorIDs != nil {
			query = query.Where("author_id IN ?", filter.AuthorIDs)
		}
		return query
	}

	var total int64
	if err := applyFilter(r.db.Model(&domain.Blog{})).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	column, ok := orderColumns[filter.OrderBy]
	if !ok {
		column = "created_at"
	}
	query := applyFilter(r.db.Model(&domain.Blog{})).Order(column + " DESC")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Page > 1 {
		query = query.Offset((filter.Page - 1) * filter.Limit)
	}

	var blogs []*domain.Blog
	if err := query.Preload("Author").Preload("Tags").Find(&blogs).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list blogs: %w", err)
	}
	return blogs, total, nil
}

// Update persists the mutable blog fields.
func (r *blogRepository) Update(blog *domain.Blog) error {
	result := r.db.Model(blog).Updates(map[string]interface{}{
		"title":        blog.Title,
		"description":  blog.Description,
		"body":         blog.Body,
		"state":        blog.State,
		"reading_time": blog.ReadingTime,
		"updated_at":   blog.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update blog: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a blog and its tag associations.
func (r *blogRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM blog_tags WHERE blog_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to detach tags: %w", err)
		}
		result := tx.Delete(&domain.Blog{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete blog: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
