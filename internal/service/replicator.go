package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/leonidsliusar/webtronics-social/internal/repository"
	"github.com/leonidsliusar/webtronics-social/pkg/logger"
)

type reactionAction int

const (
	actionAdd reactionAction = iota + 1
	actionRemove
)

type reactionJob struct {
	action   reactionAction
	postID   uint
	reviewer string
	kind     string
	enqAt    time.Time
}

// ReactionReplicator lands redis reaction set changes into the relational
// reactions table asynchronously. The sets stay authoritative for reads;
// the rows exist for durability and rebuild.
type ReactionReplicator struct {
	reactions repository.ReactionRepository
	ch        chan reactionJob
	metricsCh chan time.Duration
}

func NewReactionReplicator(reactions repository.ReactionRepository, queueSize int) *ReactionReplicator {
	if queueSize <= 0 {
		queueSize = 10000
	}
	return &ReactionReplicator{
		reactions: reactions,
		ch:        make(chan reactionJob, queueSize),
		metricsCh: make(chan time.Duration, 65536),
	}
}

func (r *ReactionReplicator) Start(workers int) func(context.Context) error {
	if workers <= 0 {
		workers = 4
	}
	stopCh := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			for {
				select {
				case job := <-r.ch:
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					var err error
					switch job.action {
					case actionAdd:
						err = r.reactions.Create(ctx, job.postID, job.reviewer, job.kind)
					case actionRemove:
						err = r.reactions.Delete(ctx, job.postID, job.reviewer, job.kind)
					}
					cancel()
					if err != nil {
						logger.Warn("reaction replication failed",
							zap.Uint("post", job.postID), zap.String("kind", job.kind), zap.Error(err))
					}
					if !job.enqAt.IsZero() {
						select {
						case r.metricsCh <- time.Since(job.enqAt):
						default:
						}
					}
				case <-stopCh:
					return
				}
			}
		}()
	}
	return func(ctx context.Context) error {
		close(stopCh)
		// give the queue a short window to drain
		timeout := time.After(2 * time.Second)
		for {
			select {
			case <-timeout:
				return nil
			default:
				if len(r.ch) == 0 {
					return nil
				}
				time.Sleep(50 * time.Millisecond)
			}
		}
	}
}

func (r *ReactionReplicator) EnqueueAdd(postID uint, reviewer, kind string) {
	select {
	case r.ch <- reactionJob{action: actionAdd, postID: postID, reviewer: reviewer, kind: kind, enqAt: time.Now()}:
	default:
		logger.Warn("replicator queue full, drop add", zap.Uint("post", postID), zap.String("kind", kind))
	}
}

func (r *ReactionReplicator) EnqueueRemove(postID uint, reviewer, kind string) {
	select {
	case r.ch <- reactionJob{action: actionRemove, postID: postID, reviewer: reviewer, kind: kind, enqAt: time.Now()}:
	default:
		logger.Warn("replicator queue full, drop remove", zap.Uint("post", postID), zap.String("kind", kind))
	}
}

// Metrics returns a read-only channel with one landing duration per job.
func (r *ReactionReplicator) Metrics() <-chan time.Duration { return r.metricsCh }

// QueueLen reports the current queue length (sampled value).
func (r *ReactionReplicator) QueueLen() int { return len(r.ch) }
