package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	MentorshipRepository   *MentorshipRepository
	GroupRepository        *GroupRepository
	GroupMemberRepository  *GroupMemberRepository
	GroupMessageRepository *GroupMessageRepository
	GroupFileRepository    *GroupFileRepository
	SessionRepository      *SessionRepository
	ForumRepository        *ForumRepository
	AnnouncementRepository *AnnouncementRepository
	LogRepository          *LogRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		MentorshipRepository:   NewMentorshipRepository(db),
		GroupRepository:        NewGroupRepository(db),
		GroupMemberRepository:  NewGroupMemberRepository(db),
		GroupMessageRepository: NewGroupMessageRepository(db),
		GroupFileRepository:    NewGroupFileRepository(db),
		SessionRepository:      NewSessionRepository(db),
		ForumRepository:        NewForumRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		LogRepository:          NewLogRepository(db),
	}
}
