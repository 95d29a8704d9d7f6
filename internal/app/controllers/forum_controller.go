package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
)

// ForumController handles Q&A forum operations
type ForumController struct {
	forumService services.ForumService
}

// NewForumController creates a new ForumController
func NewForumController(forumService services.ForumService) *ForumController {
	return &ForumController{
		forumService: forumService,
	}
}

// GetThreads handles listing all threads
// @Summary List threads
// @Description Threads with author first names and answer counts, newest first
// @Tags forum
// @Produce json
// @Success 200 {array} models.ForumPost
// @Router /api/forum/threads [get]
func (c *ForumController) GetThreads(ctx *gin.Context) {
	threads, err := c.forumService.GetThreads(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, threads)
}

// GetThread handles the thread detail page
// @Summary View a thread
// @Description Bumps the view counter and returns the thread with answers and nested comments. A missing id returns 200 with a null thread; old clients rely on it.
// @Tags forum
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} dto.ThreadDetailResponse
// @Router /api/forum/thread/{id} [get]
func (c *ForumController) GetThread(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	detail, err := c.forumService.GetThreadDetail(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, detail)
}

// CreateThread handles opening a thread
// @Summary Create a thread
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreateThreadRequest true "Thread"
// @Success 201 {object} models.ForumPost
// @Failure 400 {object} dto.APIResponse "user_id, title and content are required"
// @Router /api/forum/thread [post]
func (c *ForumController) CreateThread(ctx *gin.Context) {
	var req dto.CreateThreadRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	thread, err := c.forumService.CreateThread(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, thread)
}

// DeleteThread handles removing a thread
// @Summary Delete a thread
// @Description Removes the thread with its answers and comments
// @Tags forum
// @Produce json
// @Param id path int true "Thread ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Thread not found"
// @Router /api/forum/thread/{id} [delete]
func (c *ForumController) DeleteThread(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.forumService.DeleteThread(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Thread deleted successfully"))
}

// CountThreads handles the total thread count
// @Summary Count threads
// @Tags stats
// @Produce json
// @Success 200 {object} dto.TotalResponse
// @Router /api/forum/total-posts [get]
func (c *ForumController) CountThreads(ctx *gin.Context) {
	total, err := c.forumService.CountThreads(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.TotalResponse{Total: total})
}

// CreateReply handles answering a thread
// @Summary Create a reply
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreateReplyRequest true "Reply"
// @Success 201 {object} models.ForumAnswer
// @Failure 400 {object} dto.APIResponse "post_id, user_id and content are required"
// @Router /api/forum/reply [post]
func (c *ForumController) CreateReply(ctx *gin.Context) {
	var req dto.CreateReplyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	reply, err := c.forumService.CreateReply(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, reply)
}

// GetReplies handles listing every answer
// @Summary List replies
// @Tags forum
// @Produce json
// @Success 200 {array} models.ForumAnswer
// @Router /api/forum/reply [get]
func (c *ForumController) GetReplies(ctx *gin.Context) {
	replies, err := c.forumService.GetReplies(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, replies)
}

// GetReply handles retrieving one answer
// @Summary Get a reply
// @Tags forum
// @Produce json
// @Param id path int true "Reply ID"
// @Success 200 {object} models.ForumAnswer
// @Failure 404 {object} dto.APIResponse "Reply not found"
// @Router /api/forum/reply/{id} [get]
func (c *ForumController) GetReply(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	reply, err := c.forumService.GetReply(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reply)
}

// DeleteReply handles removing an answer
// @Summary Delete a reply
// @Tags forum
// @Produce json
// @Param id path int true "Reply ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.APIResponse "Reply not found"
// @Router /api/forum/reply/{id} [delete]
func (c *ForumController) DeleteReply(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.forumService.DeleteReply(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Reply deleted successfully"))
}

// Vote handles an up or down vote on an answer
// @Summary Vote on a reply
// @Description Applies one vote atomically and returns the new tally
// @Tags forum
// @Produce json
// @Param id path int true "Reply ID"
// @Param type query string true "Vote direction" Enums(up, down)
// @Success 200 {object} dto.VoteResponse
// @Failure 400 {object} dto.APIResponse "Invalid vote type"
// @Failure 404 {object} dto.APIResponse "Reply not found"
// @Router /api/forum/reply/{id}/vote [post]
func (c *ForumController) Vote(ctx *gin.Context) {
	id, err := helpers.ParseIDParam(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	votes, err := c.forumService.VoteAnswer(ctx.Request.Context(), id, ctx.Query("type"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.VoteResponse{Message: "Vote updated", Votes: votes})
}

// CreateComment handles commenting on an answer
// @Summary Create a comment
// @Description Comments attach to answers only; nothing nests below them
// @Tags forum
// @Accept json
// @Produce json
// @Param request body dto.CreateCommentRequest true "Comment"
// @Success 201 {object} models.ForumComment
// @Failure 400 {object} dto.APIResponse "answer_id, user_id and content are required"
// @Router /api/forum/comment [post]
func (c *ForumController) CreateComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	comment, err := c.forumService.CreateComment(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}
