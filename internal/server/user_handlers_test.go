package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"chesnokuz/internal/models"
	"chesnokuz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserTestServer(userRepo *MockUserRepository, searchRepo *MockSearchRepository) *Server {
	s := &Server{}
	s.userService = service.NewUserService(userRepo, new(MockProfessionRepository), searchRepo)
	return s
}

func TestGetUser(t *testing.T) {
	app := fiber.New()
	userRepo := new(MockUserRepository)
	searchRepo := new(MockSearchRepository)
	s := newUserTestServer(userRepo, searchRepo)

	app.Get("/users/:key/", s.GetUser)

	tests := []struct {
		name           string
		key            string
		mockSetup      func()
		expectedStatus int
	}{
		{
			name: "numeric key hits GetByID",
			key:  "1",
			mockSetup: func() {
				userRepo.On("GetByID", mock.Anything, uint(1)).
					Return(&models.User{ID: 1, FirstName: "Aziz"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "name key hits fuzzy search and records the term",
			key:  "aziz",
			mockSetup: func() {
				searchRepo.On("RecordTerm", mock.Anything, "aziz").Return(nil)
				userRepo.On("GetByName", mock.Anything, "aziz").
					Return(&models.User{ID: 1, FirstName: "Aziz"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown name",
			key:  "ghost",
			mockSetup: func() {
				searchRepo.On("RecordTerm", mock.Anything, "ghost").Return(nil)
				userRepo.On("GetByName", mock.Anything, "ghost").
					Return(nil, models.NewNotFoundError("User"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.key+"/", nil)
			resp, _ := app.Test(req)
			defer func() { _ = resp.Body.Close() }()
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
	userRepo.AssertExpectations(t)
	searchRepo.AssertExpectations(t)
}

func TestDeleteUserStatusCodes(t *testing.T) {
	app := fiber.New()
	userRepo := new(MockUserRepository)
	s := newUserTestServer(userRepo, new(MockSearchRepository))

	app.Delete("/users/:id/", s.DeleteUser)

	userRepo.On("Delete", mock.Anything, uint(1)).Return(nil)
	userRepo.On("Delete", mock.Anything, uint(99)).Return(models.NewNotFoundError("User"))

	req := httptest.NewRequest(http.MethodDelete, "/users/1/", nil)
	resp, _ := app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/users/99/", nil)
	resp, _ = app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, "/users/abc/", nil)
	resp, _ = app.Test(req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
