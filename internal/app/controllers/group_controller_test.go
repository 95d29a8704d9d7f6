package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
)

type fakeGroupService struct {
	services.GroupService
}

func (f *fakeGroupService) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	return &models.Group{ID: 1, Name: req.Name}, nil
}

type fakeLogService struct {
	services.LogService
	recordedUserID *int64
	recorded       bool
}

func (f *fakeLogService) Record(ctx context.Context, userID *int64, action, details string, status models.LogStatus, ip string) {
	f.recordedUserID = userID
	f.recorded = true
}

func postGroup(t *testing.T, controller *GroupController, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(http.MethodPost, "/api/groups", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	ctx.Request = req
	controller.Create(ctx)
	return w
}

func TestCreateGroupAuditOmitsAbsentCreator(t *testing.T) {
	logs := &fakeLogService{}
	controller := NewGroupController(&fakeGroupService{}, logs)

	w := postGroup(t, controller, `{"name":"Algorithms","subject":"CS","instructor_id":4}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, logs.recorded)
	assert.Nil(t, logs.recordedUserID, "an absent creator stays null in the audit row")
}

func TestCreateGroupAuditKeepsCreator(t *testing.T) {
	logs := &fakeLogService{}
	controller := NewGroupController(&fakeGroupService{}, logs)

	w := postGroup(t, controller, `{"name":"Algorithms","subject":"CS","instructor_id":4,"user_id":9}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, logs.recordedUserID)
	assert.Equal(t, int64(9), *logs.recordedUserID)
}
