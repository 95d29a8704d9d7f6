package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/peerconnect/peerconnect/internal/app/controllers"
	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	mentorshipController *controllers.MentorshipController,
	groupController *controllers.GroupController,
	forumController *controllers.ForumController,
	announcementController *controllers.AnnouncementController,
	logController *controllers.LogController,
	chatbotController *controllers.ChatbotController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- User routes ---
	users := api.Group("/users")
	{
		users.POST("", userController.Register)
		users.GET("", userController.GetUsers)
		users.GET("/total", userController.CountUsers)
		users.GET("/totalmentor", userController.CountMentors)
		users.GET("/recent", userController.GetRecentUsers)
		users.GET("/distribution", userController.GetRoleDistribution)
		users.GET("/:id", userController.GetUser)
		users.POST("/:id", userController.UpdateUser)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// --- Mentor approval and listing routes ---
	mentors := api.Group("/mentors")
	{
		mentors.GET("/getMentors", userController.GetPendingMentors)
		mentors.GET("/getMentor", userController.GetActiveMentors)
		mentors.POST("/:id/approve", userController.ApproveMentor)
		mentors.POST("/:id/reject", userController.RejectMentor)
	}

	// /mentee is a legacy singular alias for the same list.
	api.GET("/mentees", userController.GetActiveMentees)
	api.GET("/mentee", userController.GetActiveMentees)

	// --- Mentorship routes ---
	mentorships := api.Group("/mentorships")
	{
		mentorships.POST("", mentorshipController.Create)
		mentorships.GET("", mentorshipController.GetAll)
		mentorships.GET("/total", mentorshipController.Count)
		mentorships.GET("/user/:id", mentorshipController.GetByUserID)
		mentorships.GET("/:id", mentorshipController.GetByID)
		mentorships.PUT("/:id", mentorshipController.Update)
		mentorships.DELETE("/:id", mentorshipController.Delete)
	}
	// Admin dashboard listing with student names joined in
	api.GET("/mentorship", mentorshipController.GetAllWithStudent)

	// --- Study group routes ---
	groups := api.Group("/groups")
	{
		groups.POST("", groupController.Create)
		groups.GET("", groupController.GetAll)
		groups.GET("/total_groups", groupController.Count)
		groups.GET("/view/:id", groupController.GetView)
		groups.PUT("/:id", groupController.Update)
		groups.DELETE("/:id", groupController.Delete)
		groups.POST("/:id/join", groupController.Join)
		groups.POST("/:id/messages", groupController.SendMessage)
		groups.POST("/:id/files", groupController.UploadFile)
		groups.GET("/:id/files", groupController.GetFiles)
		groups.POST("/:id/sessions", groupController.AddSession)
	}

	// --- Membership routes (path parameter is the group ID) ---
	members := api.Group("/members")
	{
		members.POST("", groupController.AddMember)
		members.GET("/:id", groupController.GetMembers)
		members.PUT("/:id", groupController.UpdateMember)
		members.DELETE("/:id", groupController.RemoveMember)
	}

	// --- Session routes ---
	sessions := api.Group("/sessions")
	{
		sessions.GET("/:id", groupController.GetSessions)
		sessions.POST("/:id", groupController.AddSession)
	}

	// --- Forum routes ---
	forum := api.Group("/forum")
	{
		forum.GET("/threads", forumController.GetThreads)
		forum.GET("/total-posts", forumController.CountThreads)
		forum.POST("/thread", forumController.CreateThread)
		forum.GET("/thread/:id", forumController.GetThread)
		forum.DELETE("/thread/:id", forumController.DeleteThread)
		forum.POST("/reply", forumController.CreateReply)
		forum.GET("/reply", forumController.GetReplies)
		forum.GET("/reply/:id", forumController.GetReply)
		forum.DELETE("/reply/:id", forumController.DeleteReply)
		forum.POST("/reply/:id/vote", forumController.Vote)
		forum.POST("/comment", forumController.CreateComment)
	}

	// --- Announcement routes ---
	announcements := api.Group("/announcements")
	{
		announcements.GET("", announcementController.GetAll)
		announcements.POST("", announcementController.Create)
		announcements.DELETE("/:id", announcementController.Delete)
	}

	// --- System log routes ---
	logs := api.Group("/logs")
	{
		// Clients append their own audit entries before a session exists,
		// so the write endpoint stays open.
		logs.POST("/add", logController.Add)

		logsProtected := logs.Group("")
		logsProtected.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			logsProtected.GET("", logController.GetAll)
			logsProtected.GET("/user/:id", logController.GetByUserID)
			logsProtected.GET("/:id", logController.GetByID)
		}
	}

	// --- Chatbot routes ---
	chatbot := router.Group("/chatbot")
	{
		chatbot.POST("/send", chatbotController.Send)
	}
}
