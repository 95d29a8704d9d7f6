package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/controllers"
	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/auth"
)

type fakeUserService struct {
	services.UserService
	mentees []models.User
}

func (f *fakeUserService) GetActiveMentees(ctx context.Context) ([]models.User, error) {
	return f.mentees, nil
}

func newTestRouter(userService services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "routes-test",
		AccessTokenExp: time.Hour,
	})

	SetupRouter(
		router,
		controllers.NewAuthController(nil, nil),
		controllers.NewUserController(userService, nil),
		controllers.NewMentorshipController(nil),
		controllers.NewGroupController(nil, nil),
		controllers.NewForumController(nil),
		controllers.NewAnnouncementController(nil),
		controllers.NewLogController(nil),
		controllers.NewChatbotController(nil),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router
}

func TestMenteeRoutesReturnTheActiveMenteeList(t *testing.T) {
	userService := &fakeUserService{
		mentees: []models.User{
			{ID: 2, FirstName: "Ada", Role: models.RoleMentee, Status: models.UserStatusActive},
			{ID: 1, FirstName: "Grace", Role: models.RoleMentee, Status: models.UserStatusActive},
		},
	}
	router := newTestRouter(userService)

	for _, path := range []string{"/api/mentees", "/api/mentee"} {
		w := httptest.NewRecorder()
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, path)

		var got []models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got), path)
		require.Len(t, got, 2, path)
		assert.Equal(t, int64(2), got[0].ID, path)
		assert.Equal(t, "Ada", got[0].FirstName, path)
	}
}
