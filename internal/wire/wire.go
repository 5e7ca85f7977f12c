package wire

import (
	"Mizan/internal/api"
	"Mizan/internal/api/config"
	"Mizan/internal/api/handler"
	"Mizan/internal/job"
	"Mizan/internal/pkg/cron"
	"Mizan/internal/pkg/ratelimit"
	"Mizan/internal/repository"
	"Mizan/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router  *gin.Engine
	CronMgr *cron.Manager
}

func BuildApplication(db *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	commentRepo := repository.NewCommentRepo(db)
	postRepo := repository.NewPostRepo(db)
	caseRepo := repository.NewCaseRepo(db)
	teamRepo := repository.NewTeamRepo(db)
	userRepo := repository.NewUserRepo(db)
	contactRepo := repository.NewContactRepo(db)

	commentCreateLimiter := ratelimit.NewLimiter(cfg.Comments.CommentCreateWindow(), cfg.Comments.CreateLimit)
	commentLikeLimiter := ratelimit.NewLimiter(cfg.Comments.CommentLikeWindow(), cfg.Comments.LikeLimit)
	contactLimiter := ratelimit.NewLimiter(cfg.Contact.Window(), cfg.Contact.Limit)

	commentService := service.NewCommentService(commentRepo, postRepo, commentCreateLimiter, commentLikeLimiter)
	postService := service.NewPostService(postRepo, commentRepo, commentService)
	caseService := service.NewCaseService(caseRepo)
	teamService := service.NewTeamService(teamRepo)
	userService := service.NewUserService(userRepo)
	contactService := service.NewContactService(contactRepo, contactLimiter)

	handlers := &api.HandlersGroup{
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService, userService),
		CaseHandler:    handler.NewCaseHandler(caseService),
		TeamHandler:    handler.NewTeamHandler(teamService),
		UserHandler:    handler.NewUserHandler(userService),
		ContactHandler: handler.NewContactHandler(contactService),
		MediaHandler:   handler.NewMediaHandler(),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewRateLimitSweepJob(commentCreateLimiter, commentLikeLimiter, contactLimiter),
		job.NewCommentStatsJob(commentRepo),
	)

	return &ApplicationContainer{
		Router:  router,
		CronMgr: cronMgr,
	}, nil
}
