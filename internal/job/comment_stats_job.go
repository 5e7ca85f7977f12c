package job

import (
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/logger"
	"Mizan/internal/pkg/redis"
	"Mizan/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/google/uuid"
)

const statsLockKey = "job:comment:stats:lock"

// CommentStatsJob 每日重算各文章的已过审评论数并预热缓存。
// 多实例部署时用分布式锁保证只有一个实例在跑。
type CommentStatsJob struct {
	commentRepo repository.CommentRepo
}

func NewCommentStatsJob(commentRepo repository.CommentRepo) *CommentStatsJob {
	return &CommentStatsJob{
		commentRepo: commentRepo,
	}
}

func (s *CommentStatsJob) Run() {
	traceID := "job-comment-stats-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	lockValue := traceID
	locked, err := redis.TryLock(ctx, statsLockKey, lockValue, 10*time.Minute, 1)
	if err != nil {
		log.ErrorContext(ctx, "acquire comment stats lock error", "err", err)
		return
	}
	if !locked {
		return
	}
	defer redis.UnLock(ctx, statsLockKey, lockValue)

	counts, err := s.commentRepo.ApprovedCountsByPost(ctx)
	if err != nil {
		log.ErrorContext(ctx, "aggregate comment counts error", "err", err)
		return
	}

	success := 0
	for postID, count := range counts {
		key := consts.PostCommentCountKey + postID.Hex()
		if err := redis.SetWithExpiration(ctx, key, count, 7*24*time.Hour); err != nil {
			log.ErrorContext(ctx, "cache comment count error", "post_id", postID.Hex(), "err", err)
			continue
		}
		success++
	}

	log.InfoContext(ctx, "comment stats job finished", "posts", len(counts), "cached", success)
}
