package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/middleware"
)

// ChatbotController relays study questions to the chatbot upstream
type ChatbotController struct {
	chatbotService services.ChatbotService
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(chatbotService services.ChatbotService) *ChatbotController {
	return &ChatbotController{
		chatbotService: chatbotService,
	}
}

// Send handles a chatbot exchange
// @Summary Send a message to the study assistant
// @Description Relays the message to the upstream model and returns its reply. An empty message gets a canned reply without an upstream call.
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Message"
// @Success 200 {object} dto.ChatReply
// @Failure 502 {object} dto.APIResponse "Chatbot service is unavailable"
// @Router /chatbot/send [post]
func (c *ChatbotController) Send(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidRequest, "Invalid request body"),
		})
		return
	}

	if req.Message == "" {
		ctx.JSON(http.StatusOK, dto.ChatReply{Reply: "No message provided"})
		return
	}

	reply, err := c.chatbotService.Ask(ctx.Request.Context(), req.Message)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reply)
}
