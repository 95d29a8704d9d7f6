package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// GroupController handles study groups, membership, chat, files and sessions
type GroupController struct {
	groupService services.GroupService
	logService   services.LogService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService, logService services.LogService) *GroupController {
	return &GroupController{
		groupService: groupService,
		logService:   logService,
	}
}

// Create handles group creation
// @Summary Create a group
// @Description Creates a study group; Admin and Mentor creators are enrolled automatically
// @Tags groups
// @Accept json
// @Produce json
// @Param request body dto.CreateGroupRequest true "Group"
// @Success 201 {object} models.Group
// @Failure 400 {object} dto.APIResponse "Missing required fields"
// @Router /api/groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	group, err := c.groupService.CreateGroup(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var creatorID *int64
	if req.UserID != 0 {
		creatorID = &req.UserID
	}
	c.logService.Record(ctx.Request.Context(), creatorID, "group_created", "Created group "+group.Name, models.LogStatusSuccess, ctx.ClientIP())

	ctx.JSON(http.StatusCreated, group)
}

// GetAll handles listing all groups
// @Summary List groups
// @Description Groups enriched with member counts and instructor names
// @Tags groups
// @Produce json
// @Success 200 {array} models.GroupSummary
// @Router /api/groups [get]
func (c *GroupController) GetAll(ctx *gin.Context) {
	groups, err := c.groupService.GetGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, groups)
}

// GetView handles the full group page payload
// @Summary View a group
// @Description The group plus its members, messages, files and sessions
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.GroupViewResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/view/{id} [get]
func (c *GroupController) GetView(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	view, err := c.groupService.GetGroupView(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Update handles a partial group update
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Fields to change"
// @Success 200 {object} models.Group
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id} [put]
func (c *GroupController) Update(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	group, err := c.groupService.UpdateGroup(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, group)
}

// Delete handles removing a group
// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id} [delete]
func (c *GroupController) Delete(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.groupService.DeleteGroup(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Group deleted successfully"))
}

// Count handles the total group count
// @Summary Count groups
// @Tags stats
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Router /api/groups/total_groups [get]
func (c *GroupController) Count(ctx *gin.Context) {
	total, err := c.groupService.CountGroups(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// AddMember handles enrolling a user into a group
// @Summary Add a member
// @Description Enrolls a user; joining twice returns a conflict
// @Tags members
// @Accept json
// @Produce json
// @Param request body dto.AddMemberRequest true "Membership"
// @Success 201 {object} models.GroupMember
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Failure 409 {object} dto.APIResponse "Already joined"
// @Router /api/members [post]
func (c *GroupController) AddMember(ctx *gin.Context) {
	var req dto.AddMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	member, err := c.groupService.AddMember(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, member)
}

// Join handles the path-based join variant
// @Summary Join a group
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.JoinGroupRequest true "Joiner"
// @Success 201 {object} models.GroupMember
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Failure 409 {object} dto.APIResponse "Already joined"
// @Router /api/groups/{id}/join [post]
func (c *GroupController) Join(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.JoinGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	member, err := c.groupService.JoinGroup(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, member)
}

// GetMembers handles listing the members of a group
// @Summary List group members
// @Tags members
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.MemberListResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/members/{id} [get]
func (c *GroupController) GetMembers(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	members, err := c.groupService.GetMembers(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MemberListResponse{Members: members})
}

// UpdateMember handles changing a membership role
// @Summary Update a member's role
// @Tags members
// @Accept json
// @Produce json
// @Param id path int true "Membership row ID"
// @Param request body dto.UpdateMemberRequest true "New role"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Member not found"
// @Router /api/members/{id} [put]
func (c *GroupController) UpdateMember(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.UpdateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	role := ""
	if req.Role != nil {
		role = *req.Role
	}

	if err := c.groupService.UpdateMemberRole(ctx.Request.Context(), id, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Member updated successfully"))
}

// RemoveMember handles removing a membership row
// @Summary Remove a member
// @Description Deletes by membership row id; removing an absent row still succeeds
// @Tags members
// @Produce json
// @Param id path int true "Membership row ID"
// @Success 200 {object} dto.MessageResponse
// @Router /api/members/{id} [delete]
func (c *GroupController) RemoveMember(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.groupService.RemoveMember(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Member removed successfully"))
}

// SendMessage handles posting a chat message
// @Summary Send a group message
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.SentMessageResponse
// @Failure 400 {object} dto.APIResponse "user_id and message are required"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id}/messages [post]
func (c *GroupController) SendMessage(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	message, err := c.groupService.SendMessage(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.SentMessageResponse{Message: message, Success: true})
}

// UploadFile handles a multipart file upload into a group
// @Summary Upload a group file
// @Tags files
// @Accept mpfd
// @Produce json
// @Param id path int true "Group ID"
// @Param user_id formData int true "Uploader ID"
// @Param file formData file true "File"
// @Success 201 {object} models.GroupFile
// @Failure 400 {object} dto.APIResponse "user_id and file are required"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id}/files [post]
func (c *GroupController) UploadFile(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	userID, _ := strconv.ParseInt(ctx.PostForm("user_id"), 10, 64)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		fileHeader = nil
	}

	file, err := c.groupService.UploadFile(ctx.Request.Context(), id, userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, file)
}

// GetFiles handles listing the files of a group
// @Summary List group files
// @Tags files
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} models.GroupFile
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id}/files [get]
func (c *GroupController) GetFiles(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	files, err := c.groupService.GetFiles(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, files)
}

// AddSession handles scheduling a session
// @Summary Schedule a session
// @Description Schedules a group session; the meeting link falls back to the configured default
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body dto.AddSessionRequest true "Session"
// @Success 201 {object} dto.CreatedSessionResponse
// @Failure 400 {object} dto.APIResponse "title, session_date and duration are required"
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/groups/{id}/sessions [post]
func (c *GroupController) AddSession(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.AddSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	session, err := c.groupService.AddSession(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.CreatedSessionResponse{Session: session, Success: true})
}

// GetSessions handles listing the sessions of a group
// @Summary List group sessions
// @Tags sessions
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} dto.SessionListResponse
// @Failure 404 {object} dto.APIResponse "Group not found"
// @Router /api/sessions/{id} [get]
func (c *GroupController) GetSessions(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	sessions, err := c.groupService.GetSessions(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionListResponse{Sessions: sessions})
}
