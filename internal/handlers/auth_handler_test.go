package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iinterntechnologies-oss/crm-tool/internal/middleware"
	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

// newTestRouter wires the auth surface plus one guarded route against an
// in-memory database
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Lead{}, &models.Client{}, &models.Task{}, &models.Note{}, &models.Activity{}))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	jwtService := services.NewJWTService("test-secret", 60)
	authService := services.NewAuthService(repository.NewUserRepository(db), jwtService, log)
	activityService := services.NewActivityService(repository.NewActivityRepository(db), nil, log)
	leadService := services.NewLeadService(
		repository.NewLeadRepository(db),
		activityService,
		log,
	)

	taskService := services.NewTaskService(repository.NewTaskRepository(db), activityService, log)

	authHandler := NewAuthHandler(authService, log)
	leadHandler := NewLeadHandler(leadService, log)
	taskHandler := NewTaskHandler(taskService, log)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, authService)

	router := gin.New()
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	api := router.Group("/")
	api.Use(authMiddleware.AuthRequired())
	api.GET("/leads", leadHandler.List)
	api.POST("/leads", leadHandler.Create)
	api.PATCH("/leads/:id", leadHandler.Update)
	api.POST("/tasks", taskHandler.Create)
	api.GET("/tasks/:id", taskHandler.Get)

	return router
}

func doJSON(router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func loginForm(router *gin.Engine, email, password string) *httptest.ResponseRecorder {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"owner@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = loginForm(router, "owner@example.com", "hunter2hunter2")
	require.Equal(t, http.StatusOK, w.Code)

	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	assert.Equal(t, "bearer", token.TokenType)
	require.NotEmpty(t, token.AccessToken)

	// Guarded route works with the token
	w = doJSON(router, http.MethodPost, "/leads",
		`{"business_name":"Corner Cafe"}`, token.AccessToken)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodGet, "/leads", "", token.AccessToken)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	assert.Len(t, leads, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"owner@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"owner@example.com","password":"another-pass"}`, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"owner@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	w = loginForm(router, "owner@example.com", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardedRouteRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/leads", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/leads", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"email":"owner@example.com","password":"hunter2hunter2"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)
	w = loginForm(router, "owner@example.com", "hunter2hunter2")
	require.Equal(t, http.StatusOK, w.Code)
	var token models.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &token))
	return token.AccessToken
}

func TestPatchLeadUpdatesOnlySentFields(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/leads",
		`{"business_name":"Corner Cafe","contact":"owner@cafe.example"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodPatch, "/leads/"+created.ID,
		`{"status":"contacted"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, models.LeadStatusContacted, updated.Status)
	assert.Equal(t, "Corner Cafe", updated.BusinessName)
	assert.Equal(t, "owner@cafe.example", updated.Contact)
}

func TestCreateTaskUnknownParentIs400(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodPost, "/tasks",
		`{"title":"broken","related_to":"invoice","related_id":"x"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMissingTaskIs404(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(router, http.MethodGet, "/tasks/no-such-task", "", token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
