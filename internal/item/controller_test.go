package item

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) Create(item *Item) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockItemService) GetAll() ([]*Item, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Item), args.Error(1)
}

func (m *MockItemService) GetByID(id int) (*Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Item), args.Error(1)
}

func (m *MockItemService) Update(id int, fields *Update) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockItemService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupTestRouter(service ItemServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewItemController(service).SetupRoutes(router)
	return router
}

func TestCreateItem_Success(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("Create", mock.MatchedBy(func(i *Item) bool {
		return i.Name == "Bananas"
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*Item).ID = 7
	}).Return(nil)

	req := httptest.NewRequest("POST", "/api/items", strings.NewReader(`{"item_name": "Bananas"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 7, "item_name": "Bananas"}`, w.Body.String())
}

func TestCreateItem_MissingName(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	req := httptest.NewRequest("POST", "/api/items", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Missing 'item_name' in request body"}}`, w.Body.String())

	mockService.AssertNotCalled(t, "Create")
}

func TestGetItem_NotFound(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 99).Return(nil, ErrNotFound)

	req := httptest.NewRequest("GET", "/api/items/99", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Item doesn't exist"}}`, w.Body.String())
}

func TestGetItem_Success(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 3).Return(&Item{ID: 3, Name: "Apples"}, nil)

	req := httptest.NewRequest("GET", "/api/items/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id": 3, "item_name": "Apples"}`, w.Body.String())
}

func TestPatchItem_MissingName(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 3).Return(&Item{ID: 3, Name: "Apples"}, nil)

	req := httptest.NewRequest("PATCH", "/api/items/3", strings.NewReader(`{"wrong_key": "Pears"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Request body must contain item_name"}}`, w.Body.String())

	mockService.AssertNotCalled(t, "Update")
}

func TestPatchItem_Success(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 3).Return(&Item{ID: 3, Name: "Apples"}, nil)
	mockService.On("Update", 3, mock.MatchedBy(func(u *Update) bool {
		return u.Name != nil && *u.Name == "Pears"
	})).Return(nil)

	req := httptest.NewRequest("PATCH", "/api/items/3", strings.NewReader(`{"item_name": "Pears"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestDeleteItem_Success(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 3).Return(&Item{ID: 3, Name: "Apples"}, nil)
	mockService.On("Delete", 3).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/items/3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestListItems_Empty(t *testing.T) {
	mockService := new(MockItemService)
	router := setupTestRouter(mockService)

	mockService.On("GetAll").Return([]*Item{}, nil)

	req := httptest.NewRequest("GET", "/api/items", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
