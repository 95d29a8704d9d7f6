package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// UserController handles user accounts, mentor approval and dashboard stats
type UserController struct {
	userService services.UserService
	logService  services.LogService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logService services.LogService) *UserController {
	return &UserController{
		userService: userService,
		logService:  logService,
	}
}

// formValue returns a pointer to a form field, nil when it was not sent
func formValue(ctx *gin.Context, name string) *string {
	if value, ok := ctx.GetPostForm(name); ok {
		return &value
	}
	return nil
}

// Register handles user registration
// @Summary Register a user
// @Description Creates a user account from multipart form fields with an optional profile image
// @Tags users
// @Accept mpfd
// @Produce json
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param email formData string true "Email"
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param role formData string false "Role" default(Mentee)
// @Param profile_image formData file false "Profile image"
// @Success 201 {object} models.User "User created"
// @Failure 400 {object} dto.APIResponse "Missing required fields"
// @Failure 409 {object} dto.APIResponse "Email already exists"
// @Router /api/users [post]
func (c *UserController) Register(ctx *gin.Context) {
	req := &dto.CreateUserRequest{
		FirstName: ctx.PostForm("first_name"),
		LastName:  ctx.PostForm("last_name"),
		Email:     ctx.PostForm("email"),
		Username:  ctx.PostForm("username"),
		Password:  ctx.PostForm("password"),
		Role:      formValue(ctx, "role"),
		Status:    formValue(ctx, "status"),
		Skills:    formValue(ctx, "skills"),
		Bio:       formValue(ctx, "bio"),
	}

	image, err := ctx.FormFile("profile_image")
	if err != nil {
		image = nil
	}

	user, err := c.userService.Register(ctx.Request.Context(), req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logService.Record(ctx.Request.Context(), &user.ID, "register", "Account created", models.LogStatusSuccess, ctx.ClientIP())

	ctx.JSON(http.StatusCreated, user)
}

// GetUsers handles listing all users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser handles retrieving one user
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// UpdateUser handles a partial user update
// @Summary Update a user
// @Description Updates the supplied fields only; the password is rehashed when present and the profile image replaced when uploaded
// @Tags users
// @Accept mpfd
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/users/{id} [post]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	req := &dto.UpdateUserRequest{
		FirstName: formValue(ctx, "first_name"),
		LastName:  formValue(ctx, "last_name"),
		Email:     formValue(ctx, "email"),
		Username:  formValue(ctx, "username"),
		Password:  formValue(ctx, "password"),
		Role:      formValue(ctx, "role"),
		Status:    formValue(ctx, "status"),
		Skills:    formValue(ctx, "skills"),
		Bio:       formValue(ctx, "bio"),
	}

	image, err := ctx.FormFile("profile_image")
	if err != nil {
		image = nil
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// DeleteUser handles removing a user
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}

// ApproveMentor handles approving a pending mentor account
// @Summary Approve a mentor
// @Description Sets the mentor's status to Active and sends the approval email. Email failures are logged, never surfaced.
// @Tags mentors
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/mentors/{id}/approve [post]
func (c *UserController) ApproveMentor(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.ApproveMentor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logService.Record(ctx.Request.Context(), &user.ID, "mentor_approved", "Mentor application approved", models.LogStatusSuccess, ctx.ClientIP())

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Mentor approved successfully"))
}

// RejectMentor handles rejecting a pending mentor account
// @Summary Reject a mentor
// @Tags mentors
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "User not found"
// @Router /api/mentors/{id}/reject [post]
func (c *UserController) RejectMentor(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	user, err := c.userService.RejectMentor(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logService.Record(ctx.Request.Context(), &user.ID, "mentor_rejected", "Mentor application rejected", models.LogStatusSuccess, ctx.ClientIP())

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Mentor rejected"))
}

// GetPendingMentors handles listing mentors waiting for approval
// @Summary List pending mentors
// @Tags mentors
// @Produce json
// @Success 200 {array} dto.MentorResponse
// @Router /api/mentors/getMentors [get]
func (c *UserController) GetPendingMentors(ctx *gin.Context) {
	mentors, err := c.userService.GetPendingMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentors)
}

// GetActiveMentors handles listing approved mentors
// @Summary List active mentors
// @Tags mentors
// @Produce json
// @Success 200 {array} dto.MentorResponse
// @Router /api/mentors/getMentor [get]
func (c *UserController) GetActiveMentors(ctx *gin.Context) {
	mentors, err := c.userService.GetActiveMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentors)
}

// GetActiveMentees handles listing active mentees
// @Summary List active mentees
// @Tags mentees
// @Produce json
// @Success 200 {array} models.User
// @Router /api/mentees [get]
// @Router /api/mentee [get]
func (c *UserController) GetActiveMentees(ctx *gin.Context) {
	mentees, err := c.userService.GetActiveMentees(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, mentees)
}

// CountUsers handles the total user count
// @Summary Count users
// @Tags stats
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Router /api/users/total [get]
func (c *UserController) CountUsers(ctx *gin.Context) {
	total, err := c.userService.CountUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// CountMentors handles the total mentor count
// @Summary Count mentors
// @Tags stats
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Router /api/users/totalmentor [get]
func (c *UserController) CountMentors(ctx *gin.Context) {
	total, err := c.userService.CountMentors(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// GetRecentUsers handles the recent registrations widget
// @Summary Recent registrations
// @Tags stats
// @Produce json
// @Success 200 {array} models.User
// @Router /api/users/recent [get]
func (c *UserController) GetRecentUsers(ctx *gin.Context) {
	users, err := c.userService.GetRecentUsers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetRoleDistribution handles the per-role user counts
// @Summary Role distribution
// @Tags stats
// @Produce json
// @Success 200 {array} models.RoleCount
// @Router /api/users/distribution [get]
func (c *UserController) GetRoleDistribution(ctx *gin.Context) {
	distribution, err := c.userService.GetRoleDistribution(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, distribution)
}
