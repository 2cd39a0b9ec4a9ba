package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new TagRepository with the given GORM DB instance.
func NewTagRepository(db *gorm.DB) domain.TagRepository {
	return &tagRepository{db: db}
}

// AttachToBlog ensures the named tags exist and associates them with the blog.
func (r *tagRepository) AttachToBlog(blogID uint, names []string) ([]*domain.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var tags []*domain.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var blog domain.Blog
		if err := tx.First(&blog, blogID).Error; err != nil {
			return fmt.Errorf("blog not found: %w", err)
		}
		upserted, err := upsertTags(tx, names)
		if err != nil {
			return err
		}
		if len(upserted) > 0 {
			if err := tx.Model(&blog).Association("Tags").Append(upserted); err != nil {
				return fmt.Errorf("failed to append tags to blog: %w", err)
			}
		}
		tags = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// ReplaceForBlog removes existing tag associations and attaches the provided
// tags instead.
func (r *tagRepository) ReplaceForBlog(blogID uint, names []string) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var blog domain.Blog
		if err := tx.First(&blog, blogID).Error; err != nil {
			return fmt.Errorf("blog not found: %w", err)
		}
		upserted, err := upsertTags(tx, names)
		if err != nil {
			return err
		}
		if err := tx.Model(&blog).Association("Tags").Replace(upserted); err != nil {
			return fmt.Errorf("failed to replace tags for blog: %w", err)
		}
		tags = upserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// DeleteUnused removes the tag if it is no longer referenced by any blog.
func (r *tagRepository) DeleteUnused(tagID uint) error {
	var count int64
	err := r.db.Table("blog_tags").Where("tag_id = ?", tagID).Count(&count).Error
	if err != nil {
		return fmt.Errorf("failed to count tag usage: %w", err)
	}
	if count == 0 {
		if err := r.db.Delete(&domain.Tag{}, tagID).Error; err != nil {
			return fmt.Errorf("failed to delete unused tag: %w", err)
		}
	}
	return nil
}

func upsertTags(tx *gorm.DB, names []string) ([]*domain.Tag, error) {
	var tags []*domain.Tag
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		var t domain.Tag
		if err := tx.Where("name = ?", name).FirstOrCreate(&t, domain.Tag{Name: name}).Error; err != nil {
			return nil, fmt.Errorf("failed to upsert tag %s: %w", name, err)
		}
		tags = append(tags, &t)
	}
	return tags, nil
}
