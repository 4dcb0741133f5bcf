package lunch

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLunchService struct {
	mock.Mock
}

func (m *MockLunchService) Create(list *SavedLunch) error {
	args := m.Called(list)
	return args.Error(0)
}

func (m *MockLunchService) GetAll() ([]*SavedLunch, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*SavedLunch), args.Error(1)
}

func (m *MockLunchService) GetByID(id int) (*SavedLunch, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SavedLunch), args.Error(1)
}

func (m *MockLunchService) GetByUserID(userID int) ([]*SavedLunch, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*SavedLunch), args.Error(1)
}

func (m *MockLunchService) Update(id int, fields *Update) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockLunchService) Delete(id int) error {
	args := m.Called(id)
	return args.Error(0)
}

func setupTestRouter(service LunchServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewLunchController(service).SetupRoutes(router)
	return router
}

func TestCreateSavedLunch_Success(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("Create", mock.MatchedBy(func(l *SavedLunch) bool {
		return l.UserID == 1 && l.Title == "Monday" && len(l.Items) == 2
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*SavedLunch).ID = 4
	}).Return(nil)

	reqBody := `{"user_id": 1, "title": "Monday", "items": ["Apples", "Rice"]}`
	req := httptest.NewRequest("POST", "/api/savedlunches", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id": 4, "user_id": 1, "title": "Monday", "items": ["Apples", "Rice"]}`, w.Body.String())
}

func TestCreateSavedLunch_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		missing string
	}{
		{"no user_id", `{"title": "Monday", "items": []}`, "user_id"},
		{"no title", `{"user_id": 1, "items": []}`, "title"},
		{"no items", `{"user_id": 1, "title": "Monday"}`, "items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockLunchService)
			router := setupTestRouter(mockService)

			req := httptest.NewRequest("POST", "/api/savedlunches", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": {"message": "Missing '`+tt.missing+`' in request body"}}`, w.Body.String())

			mockService.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateSavedLunch_EmptyItemsAccepted(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	// An explicitly empty list is present, just empty.
	mockService.On("Create", mock.MatchedBy(func(l *SavedLunch) bool {
		return len(l.Items) == 0
	})).Return(nil)

	reqBody := `{"user_id": 1, "title": "Fasting day", "items": []}`
	req := httptest.NewRequest("POST", "/api/savedlunches", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestGetSavedLunch_NotFound(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 50).Return(nil, ErrNotFound)

	req := httptest.NewRequest("GET", "/api/savedlunches/50", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": {"message": "List doesn't exist"}}`, w.Body.String())
}

func TestPatchSavedLunch_NoFields(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 4).Return(&SavedLunch{ID: 4, UserID: 1, Title: "Monday", Items: []string{"Apples"}}, nil)

	req := httptest.NewRequest("PATCH", "/api/savedlunches/4", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": {"message": "Request body must contain at least one value"}}`, w.Body.String())

	mockService.AssertNotCalled(t, "Update")
}

func TestPatchSavedLunch_ReplaceItems(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 4).Return(&SavedLunch{ID: 4, UserID: 1, Title: "Monday", Items: []string{"Apples"}}, nil)
	mockService.On("Update", 4, mock.MatchedBy(func(u *Update) bool {
		return u.Items != nil && len(*u.Items) == 2 && u.Title == nil
	})).Return(nil)

	req := httptest.NewRequest("PATCH", "/api/savedlunches/4", strings.NewReader(`{"items": ["Bread", "Soup"]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}

func TestListSavedLunchesByUser_Empty(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("GetByUserID", 9).Return([]*SavedLunch{}, nil)

	req := httptest.NewRequest("GET", "/api/savedlunches/users/9", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": {"message": "List doesn't exist"}}`, w.Body.String())
}

func TestDeleteSavedLunch_Success(t *testing.T) {
	mockService := new(MockLunchService)
	router := setupTestRouter(mockService)

	mockService.On("GetByID", 4).Return(&SavedLunch{ID: 4, UserID: 1, Title: "Monday", Items: []string{"Apples"}}, nil)
	mockService.On("Delete", 4).Return(nil)

	req := httptest.NewRequest("DELETE", "/api/savedlunches/4", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockService.AssertExpectations(t)
}
