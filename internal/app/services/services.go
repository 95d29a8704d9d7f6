package services

// Services defined in this package:
// - AuthService: credential checks and token issuance
// - UserService: accounts, mentor approval and dashboard stats
// - MentorshipService: mentorship lifecycle
// - GroupService: study groups, membership, chat, files and sessions
// - ForumService: Q&A threads, answers, votes and comments
// - AnnouncementService: announcements and their email broadcast
// - LogService: the append-only system log
// - ChatbotService: the upstream chatbot proxy
