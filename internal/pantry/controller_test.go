package pantry

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPantryService struct {
	mock.Mock
}

func (m *MockPantryService) Create(item *PantryItem) error {
	args := m.Called(item)
	return args.Error(0)
}

func (m *MockPantryService) GetAll() ([]*PantryItem, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*PantryItem), args.Error(1)
}

func (m *MockPantryService) GetByID(id int) (*PantryItem, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PantryItem), args.Error(1)
}

func (m *MockPantryService) GetByUserID(userID int) ([]*PantryItem, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*PantryItem), args.Error(1)
}

func (m *MockPantryService) Search(substring string) ([]*PantryItem, error) {
	args := m.Called(substring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*PantryItem), args.Error(1)
}

func (m *MockPantryService) Update(id int, fields *Update) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockPantryService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

// The pantry routes run entirely behind the guard; tests inject a
// pass-through so only the handlers are exercised.
func setupTestRouter(service PantryServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewPantryController(service).SetupRoutes(router, func(c *gin.Context) { c.Next() })
	return router
}

func TestCreatePantryItem_Success(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("Create", mock.MatchedBy(func(p *PantryItem) bool {
		return p.UserID == 1 && p.ItemName == "Oranges" && p.Category1 == "Fruit" && p.Quantity == 3
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*PantryItem).ID = 11
	}).Return(nil)

	reqBody := `{"user_id": 1, "item_name": "Oranges", "category_1": "Fruit", "quantity": 3}`
	req := httptest.NewRequest("POST", "/api/pantry", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{
		"id": 11, "user_id": 1, "item_name": "Oranges",
		"category_1": "Fruit", "category_2": null, "category_3": null,
		"category_4": null, "category_5": null, "category_6": null,
		"category_7": null, "quantity": 3
	}`, w.Body.String())
}

// Required fields report in a fixed order: user_id, item_name, category_1,
// quantity.
func TestCreatePantryItem_MissingFieldsInOrder(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing string
	}{
		{"all missing names user_id", `{}`, "user_id"},
		{"then item_name", `{"user_id": 1}`, "item_name"},
		{"then category_1", `{"user_id": 1, "item_name": "Oranges"}`, "category_1"},
		{"then quantity", `{"user_id": 1, "item_name": "Oranges", "category_1": "Fruit"}`, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockPantryService)
			router := setupTestRouter(mockService)

			req := httptest.NewRequest("POST", "/api/pantry", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": {"message": "Missing '`+tt.missing+`' in request body"}}`, w.Body.String())

			mockService.AssertNotCalled(t, "Create")
		})
	}
}

func TestGetPantryItem_NotFound(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 404).Return(nil, ErrNotFound)

	req := httptest.NewRequest("GET", "/api/pantry/404", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Item doesn't exist"}}`, w.Body.String())
}

func TestPatchPantryItem_NoFields(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 11).Return(&PantryItem{ID: 11, UserID: 1, ItemName: "Oranges", Category1: "Fruit", Quantity: 3}, nil)

	req := httptest.NewRequest("PATCH", "/api/pantry/11", strings.NewReader(`{"unknown": true}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Request body must contain at least one value"}}`, w.Body.String())

	mockService.AssertNotCalled(t, "Update")
}

func TestPatchPantryItem_SingleField(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 11).Return(&PantryItem{ID: 11, UserID: 1, ItemName: "Oranges", Category1: "Fruit", Quantity: 3}, nil)
	mockService.On("Update", 11, mock.MatchedBy(func(u *Update) bool {
		return u.Quantity != nil && *u.Quantity == 5 && u.provided() == 1
	})).Return(nil)

	req := httptest.NewRequest("PATCH", "/api/pantry/11", strings.NewReader(`{"quantity": 5}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestListPantryByUser_Success(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	items := []*PantryItem{
		{ID: 11, UserID: 1, ItemName: "Oranges", Category1: "Fruit", Quantity: 3},
		{ID: 12, UserID: 1, ItemName: "Rice", Category1: "Grain", Quantity: 1},
	}
	mockService.On("GetByUserID", 1).Return(items, nil)

	req := httptest.NewRequest("GET", "/api/pantry/users/1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Len(t, response, 2)
}

// A user with no rows is a 404, not an empty list.
func TestListPantryByUser_Empty(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("GetByUserID", 2).Return([]*PantryItem{}, nil)

	req := httptest.NewRequest("GET", "/api/pantry/users/2", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": {"message": "No Pantry Items exist for this User"}}`, w.Body.String())
}

func TestSearchPantry(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	items := []*PantryItem{{ID: 11, UserID: 1, ItemName: "Oranges", Category1: "Fruit", Quantity: 3}}
	mockService.On("Search", "oran").Return(items, nil)

	req := httptest.NewRequest("GET", "/api/pantry/search/item?string=oran", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertCalled(t, "Search", "oran")
}

func TestSearchPantry_NoMatches(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("Search", "zzz").Return([]*PantryItem{}, nil)

	req := httptest.NewRequest("GET", "/api/pantry/search/item?string=zzz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestDeletePantryItem_Success(t *testing.T) {
	mockService := new(MockPantryService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 11).Return(&PantryItem{ID: 11, UserID: 1, ItemName: "Oranges", Category1: "Fruit", Quantity: 3}, nil)
	mockService.On("Delete", 11).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/pantry/11", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
