package service

import (
	"errors"
	"strings"

	"budgetbook/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Number of tags per listing page
const tagPageSize = 5

// TagService manages tags and resolves free-text tag lists
type TagService struct {
	db *gorm.DB
}

// NewTagService returns a tag service over the given database
func NewTagService(db *gorm.DB) *TagService {
	return &TagService{db: db}
}

// List returns one page of tags
func (s *TagService) List(page int) (*Page[domain.Tag], error) {
	return listPage[domain.Tag](s.db.Model(&domain.Tag{}), page, tagPageSize)
}

// Get returns the tag with the given ID
func (s *TagService) Get(id uint) (*domain.Tag, error) {
	var tag domain.Tag
	if err := s.db.First(&tag, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// GetByName returns the tag whose name matches case-insensitively
func (s *TagService) GetByName(name string) (*domain.Tag, error) {
	var tag domain.Tag
	if err := s.db.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tag, nil
}

// Save creates or updates the tag
func (s *TagService) Save(tag *domain.Tag) error {
	return s.db.Save(tag).Error
}

// Delete removes the tag; tags carry no referencing-transaction guard
func (s *TagService) Delete(tag *domain.Tag) error {
	return s.db.Delete(tag).Error
}

// ResolveList turns a comma-separated string into persisted tags.
// Segments are trimmed, empty ones skipped, existing tags reused by
// case-insensitive name match and missing ones created with the input
// casing. Duplicates collapse to the first resolved tag.
func (s *TagService) ResolveList(raw string) ([]domain.Tag, error) {
	tags := []domain.Tag{}
	seen := make(map[uint]bool)
	for _, segment := range strings.Split(raw, ",") {
		name := strings.TrimSpace(segment)
		if name == "" {
			continue
		}
		tag, err := s.GetByName(name)
		if errors.Is(err, ErrNotFound) {
			tag = &domain.Tag{Name: name}
			if err := s.db.Create(tag).Error; err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		if seen[tag.ID] {
			continue
		}
		seen[tag.ID] = true
		tags = append(tags, *tag)
	}
	return tags, nil
}

// SerializeList joins tag names with ", "; an empty set serializes to ""
func SerializeList(tags []domain.Tag) string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return strings.Join(names, ", ")
}
