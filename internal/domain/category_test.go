package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryValidate(t *testing.T) {
	tests := []struct {
		name     string
		category *Category
		wantErr  bool
	}{
		{name: "valid", category: &Category{ID: 1, Name: "Books"}},
		{name: "valid without id", category: &Category{Name: "Books"}},
		{name: "empty name", category: &Category{ID: 1}, wantErr: true},
		{name: "blank name", category: &Category{Name: "   "}, wantErr: true},
		{name: "nil category", category: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			assert.NoError(t, err)
		})
	}
}
