package api

import "Mizan/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	CaseHandler    *handler.CaseHandler
	TeamHandler    *handler.TeamHandler
	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	MediaHandler   *handler.MediaHandler
}
