package delivery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"category_service/internal/domain"
	"category_service/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockCategoryUseCase struct {
	mock.Mock
}

func (m *mockCategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *mockCategoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *mockCategoryUseCase) SaveCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *mockCategoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var errStore = errors.New("Failed to retrieve category")

func notFound(id int) error {
	return fmt.Errorf("category with id %d: %w", id, domain.ErrCategoryNotFound)
}

func newTestRouter(uc *mockCategoryUseCase) *gin.Engine {
	logger := testutil.NewLogger()
	return NewRouter(logger, NewCategoryHandler(uc, logger))
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListCategories(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)

	uc.On("ListCategories", mock.Anything).Return([]domain.Category{
		{ID: 1, Name: "Category1"},
		{ID: 2, Name: "Category2"},
	}, nil).Once()

	w := serve(router, http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Category1"},{"id":2,"name":"Category2"}]`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestListCategoriesEmptyIsArray(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)
	uc.On("ListCategories", mock.Anything).Return(nil, nil).Once()

	w := serve(router, http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestListCategoriesStoreErrorPropagates(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)
	uc.On("ListCategories", mock.Anything).Return(nil, errors.New("Failed to retrieve categories")).Once()

	w := serve(router, http.MethodGet, "/api/categories", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgInternalError, w.Body.String())
}

func TestGetCategoryByID(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(uc *mockCategoryUseCase)
		wantStatus int
		wantBody   string
		wantJSON   bool
	}{
		{
			name: "existing category",
			path: "/api/categories/1",
			setup: func(uc *mockCategoryUseCase) {
				uc.On("GetCategoryByID", mock.Anything, 1).Return(&domain.Category{ID: 1, Name: "Category1"}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":1,"name":"Category1"}`,
			wantJSON:   true,
		},
		{
			name: "missing category",
			path: "/api/categories/1",
			setup: func(uc *mockCategoryUseCase) {
				uc.On("GetCategoryByID", mock.Anything, 1).Return(nil, notFound(1)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "Category not found with ID - 1",
		},
		{
			name: "store failure",
			path: "/api/categories/99",
			setup: func(uc *mockCategoryUseCase) {
				uc.On("GetCategoryByID", mock.Anything, 99).Return(nil, errStore).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Failed to retrieve category with ID - 99",
		},
		{
			name:       "malformed id",
			path:       "/api/categories/abc",
			setup:      func(uc *mockCategoryUseCase) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   MsgInvalidCategoryID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockCategoryUseCase)
			tt.setup(uc)
			router := newTestRouter(uc)

			w := serve(router, http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantJSON {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			} else {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
			uc.AssertExpectations(t)
		})
	}
}

func TestCreateCategoryRejectsInvalidBodies(t *testing.T) {
	bodies := map[string]string{
		"null name":   `{"id":0,"name":null}`,
		"no name":     `{}`,
		"empty name":  `{"name":""}`,
		"blank name":  `{"name":"   "}`,
		"not json":    `name=x`,
		"wrong types": `{"name":12}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			uc := new(mockCategoryUseCase)
			router := newTestRouter(uc)

			w := serve(router, http.MethodPost, "/api/categories", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid category", w.Body.String())
			uc.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCategory(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)

	uc.On("SaveCategory", mock.Anything, &domain.Category{Name: "New Category"}).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Category).ID = 3
	}).Return(nil).Once()

	w := serve(router, http.MethodPost, "/api/categories", `{"id":0,"name":"New Category"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"name":"New Category"}`, w.Body.String())
	uc.AssertExpectations(t)
}

func TestCreateCategorySaveFailurePropagates(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)
	uc.On("SaveCategory", mock.Anything, mock.Anything).Return(errors.New("insert failed")).Once()

	w := serve(router, http.MethodPost, "/api/categories", `{"name":"New Category"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, MsgInternalError, w.Body.String())
}

func TestUpdateCategoryMissing(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)
	uc.On("GetCategoryByID", mock.Anything, 1).Return(nil, notFound(1)).Once()

	w := serve(router, http.MethodPut, "/api/categories/1", `{"id":1,"name":"Updated Category"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Category not found with ID: 1", w.Body.String())
	uc.AssertExpectations(t)
	uc.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
}

func TestUpdateCategoryInvalidLeavesExistingUntouched(t *testing.T) {
	for name, body := range map[string]string{
		"null name":  `{"id":1,"name":null}`,
		"empty name": `{"id":1,"name":""}`,
		"not json":   `{`,
	} {
		t.Run(name, func(t *testing.T) {
			uc := new(mockCategoryUseCase)
			router := newTestRouter(uc)
			existing := &domain.Category{ID: 1, Name: "Category1"}
			uc.On("GetCategoryByID", mock.Anything, 1).Return(existing, nil).Once()

			w := serve(router, http.MethodPut, "/api/categories/1", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Invalid category", w.Body.String())
			assert.Equal(t, "Category1", existing.Name)
			uc.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateCategorySavesExistingRecord(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			uc := new(mockCategoryUseCase)
			router := newTestRouter(uc)
			existing := &domain.Category{ID: 1, Name: "Category1"}
			uc.On("GetCategoryByID", mock.Anything, 1).Return(existing, nil).Once()

			var saved *domain.Category
			uc.On("SaveCategory", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
				saved = args.Get(1).(*domain.Category)
			}).Return(nil).Once()

			// The body's id is ignored; the path decides which record changes.
			w := serve(router, method, "/api/categories/1", `{"id":7,"name":"Updated"}`)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `{"id":1,"name":"Updated"}`, w.Body.String())
			assert.Same(t, existing, saved)
			assert.Equal(t, "Updated", existing.Name)
			uc.AssertNumberOfCalls(t, "SaveCategory", 1)
		})
	}
}

func TestUpdateCategoryFailures(t *testing.T) {
	t.Run("lookup failure", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 4).Return(nil, errStore).Once()

		w := serve(router, http.MethodPut, "/api/categories/4", `{"name":"x"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to update category with ID - 4", w.Body.String())
		uc.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
	})

	t.Run("save failure", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 4).Return(&domain.Category{ID: 4, Name: "a"}, nil).Once()
		uc.On("SaveCategory", mock.Anything, mock.Anything).Return(errors.New("write failed")).Once()

		w := serve(router, http.MethodPut, "/api/categories/4", `{"name":"b"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to update category with ID - 4", w.Body.String())
	})

	t.Run("malformed id", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)

		w := serve(router, http.MethodPut, "/api/categories/x", `{"name":"b"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, MsgInvalidCategoryID, w.Body.String())
		uc.AssertNotCalled(t, "GetCategoryByID", mock.Anything, mock.Anything)
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("existing category", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 1).Return(&domain.Category{ID: 1, Name: "Category1"}, nil).Once()
		uc.On("DeleteCategory", mock.Anything, 1).Return(nil).Once()

		w := serve(router, http.MethodDelete, "/api/categories/1", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Deleted Category with ID - 1", w.Body.String())
		uc.AssertExpectations(t)
	})

	t.Run("missing category", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 1).Return(nil, notFound(1)).Once()

		w := serve(router, http.MethodDelete, "/api/categories/1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Category not found with ID - 1", w.Body.String())
		uc.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("lookup failure", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 1).Return(nil, errStore).Once()

		w := serve(router, http.MethodDelete, "/api/categories/1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to delete category with ID - 1", w.Body.String())
		uc.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	})

	t.Run("delete failure", func(t *testing.T) {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, 1).Return(&domain.Category{ID: 1, Name: "Category1"}, nil).Once()
		uc.On("DeleteCategory", mock.Anything, 1).Return(errors.New("locked")).Once()

		w := serve(router, http.MethodDelete, "/api/categories/1", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Failed to delete category with ID - 1", w.Body.String())
	})
}

func TestMissingIDsAcrossOperations(t *testing.T) {
	for _, id := range []int{0, 2, 99, 12345} {
		uc := new(mockCategoryUseCase)
		router := newTestRouter(uc)
		uc.On("GetCategoryByID", mock.Anything, id).Return(nil, notFound(id))
		path := fmt.Sprintf("/api/categories/%d", id)

		w := serve(router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, fmt.Sprintf("Category not found with ID - %d", id), w.Body.String())

		w = serve(router, http.MethodPut, path, `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, fmt.Sprintf("Category not found with ID: %d", id), w.Body.String())

		w = serve(router, http.MethodDelete, path, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, fmt.Sprintf("Category not found with ID - %d", id), w.Body.String())

		uc.AssertNotCalled(t, "SaveCategory", mock.Anything, mock.Anything)
		uc.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
	}
}

func TestRequestIDHeader(t *testing.T) {
	uc := new(mockCategoryUseCase)
	router := newTestRouter(uc)

	w := serve(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
