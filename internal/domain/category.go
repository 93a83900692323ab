package domain

import (
	"errors"
	"strings"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrDuplicateCategory = errors.New("category already exists")
)

type Category struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"not null"`
}

// Validate reports ErrInvalidCategory when the name is missing or blank.
func (c *Category) Validate() error {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCategory
	}
	return nil
}
