package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/Princessdada/Blogging-API/internal/domain"
)

const wordsPerMinute = 200

// readingTime estimates the minutes needed to read a body: word count over
// 200 words per minute, rounded up.
func readingTime(body string) int {
	words := len(strings.Fields(body))
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

type blogService struct {
	blogs  domain.BlogRepository
	tags   domain.TagRepository
	users  domain.UserRepository
	policy *bluemonday.Policy
	log    *zap.Logger
}

// NewBlogService creates a new BlogService with the given repositories.
func NewBlogService(blogs domain.BlogRepository, tags domain.TagRepository, users domain.UserRepository, log *zap.Logger) domain.BlogService {
	return &blogService{
		blogs:  blogs,
		tags:   tags,
		users:  users,
		policy: bluemonday.UGCPolicy(),
		log:    log,
	}
}

// Create stores a new blog for the given author. State, read count, and
// author are fixed here regardless of the request payload.
func (s *blogService) Create(req domain.CreateBlogRequest, authorID uint) (*domain.Blog, error) {
	if _, err := s.blogs.GetByTitle(req.Title); err == nil {
		return nil, domain.ErrDuplicateTitle
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check title: %w", err)
	}

	body := s.policy.Sanitize(req.Body)
	blog := &domain.Blog{
		Title:       req.Title,
		Description: s.policy.Sanitize(req.Description),
		Body:        body,
		AuthorID:    authorID,
		State:       domain.StateDraft,
		ReadCount:   0,
		ReadingTime: readingTime(body),
	}
	if err := s.blogs.Create(blog); err != nil {
		return nil, fmt.Errorf("failed to create blog: %w", err)
	}

	if len(req.Tags) > 0 {
		tags, err := s.tags.AttachToBlog(blog.ID, req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to attach tags: %w", err)
		}
		blog.Tags = tags
	}
	s.log.Info("blog created", zap.Uint("blog_id", blog.ID), zap.Uint("author_id", authorID))
	return blog, nil
}

// Get serves the public single-item fetch. Only published blogs are visible,
// and every successful fetch bumps the read count before responding.
func (s *blogService) Get(id uint) (*domain.Blog, error) {
	if err := s.blogs.IncrementReadCount(id); err != nil {
		return nil, err
	}
	blog, err := s.blogs.GetPublished(id)
	if err != nil {
		return nil, err
	}
	return blog, nil
}

// List returns a page of published blogs matching the filter. The public
// listing never serves drafts, whatever state the caller asked for.
func (s *blogService) List(filter domain.BlogFilter) (*domain.BlogPage, error) {
	filter.State = domain.StatePublished
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	if filter.Author != "" {
		ids, err := s.users.SearchIDsByName(filter.Author)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve author filter: %w", err)
		}
		if len(ids) == 0 {
			return &domain.BlogPage{CurrentPage: filter.Page, Blogs: []*domain.Blog{}}, nil
		}
		filter.AuthorIDs = ids
	}

	blogs, total, err := s.blogs.List(filter)
	if err != nil {
		return nil, err
	}
	return &domain.BlogPage{
		Total:       total,
		CurrentPage: filter.Page,
		TotalPages:  totalPages(total, filter.Limit),
		Blogs:       blogs,
	}, nil
}

// ListMine returns a page of the requester's own blogs in any state.
func (s *blogService) ListMine(authorID uint, state string, page, limit int) (*domain.BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	filter := domain.BlogFilter{
		State:    state,
		AuthorID: &authorID,
		Page:     page,
		Limit:    limit,
	}
	blogs, total, err := s.blogs.List(filter)
	if err != nil {
		return nil, err
	}
	return &domain.BlogPage{
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages(total, limit),
		Blogs:       blogs,
	}, nil
}

// Update applies a partial update if the requester owns the blog. A changed
// body recomputes the reading time.
func (s *blogService) Update(id uint, req domain.UpdateBlogRequest, requesterID uint) (*domain.Blog, error) {
	blog, err := s.blogs.GetByID(id)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != requesterID {
		return nil, domain.ErrForbidden
	}

	if req.Title != nil && *req.Title != blog.Title {
		if _, err := s.blogs.GetByTitle(*req.Title); err == nil {
			return nil, domain.ErrDuplicateTitle
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("failed to check title: %w", err)
		}
		blog.Title = *req.Title
	}
	if req.Description != nil {
		blog.Description = s.policy.Sanitize(*req.Description)
	}
	if req.Body != nil {
		body := s.policy.Sanitize(*req.Body)
		blog.Body = body
		blog.ReadingTime = readingTime(body)
	}
	if req.State != nil {
		blog.State = *req.State
	}
	blog.UpdatedAt = time.Now()

	if err := s.blogs.Update(blog); err != nil {
		return nil, err
	}
	if req.Tags != nil {
		tags, err := s.tags.ReplaceForBlog(id, *req.Tags)
		if err != nil {
			return nil, fmt.Errorf("failed to replace tags: %w", err)
		}
		blog.Tags = tags
	}
	s.log.Info("blog updated", zap.Uint("blog_id", id), zap.Uint("author_id", requesterID))
	return blog, nil
}

// Delete removes the blog if the requester owns it, then cleans up tags no
// other blog references.
func (s *blogService) Delete(id, requesterID uint) error {
	blog, err := s.blogs.GetByID(id)
	if err != nil {
		return err
	}
	if blog.AuthorID != requesterID {
		return domain.ErrForbidden
	}
	if err := s.blogs.Delete(id); err != nil {
		return err
	}
	for _, tag := range blog.Tags {
		if err := s.tags.DeleteUnused(tag.ID); err != nil {
			s.log.Warn("failed to clean up tag", zap.String("tag", tag.Name), zap.Error(err))
		}
	}
	s.log.Info("blog deleted", zap.Uint("blog_id", id), zap.Uint("author_id", requesterID))
	return nil
}

func totalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
