package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leonidsliusar/webtronics-social/internal/cache"
	"github.com/leonidsliusar/webtronics-social/internal/model"
	"github.com/leonidsliusar/webtronics-social/internal/repository"
	"github.com/leonidsliusar/webtronics-social/internal/service"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

// ratebench drives the reaction path (self-ban, exclusivity, conditional
// add, async redundancy) against an in-memory stack and reports latency
// percentiles plus replication landing times.
func main() {
	db := must(gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	}))
	// a single connection keeps the workers on the same in-memory DB
	must(db.DB()).SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.Reaction{}); err != nil {
		panic(err)
	}
	mr := must(miniredis.Run())
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	postRepo := repository.NewPostRepository(db)
	reactionRepo := repository.NewReactionRepository(db)
	replicator := service.NewReactionReplicator(reactionRepo, 100000)
	stop := replicator.Start(8)
	ratings := service.NewRatingService(postRepo, cache.NewRatingStore(rdb), replicator)

	ctx := context.Background()

	N := 10000
	if s := os.Getenv("N"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 { N = n }
	}
	CONC := 1
	if s := os.Getenv("CONC"); s != "" {
		if c, err := strconv.Atoi(s); err == nil && c > 0 { CONC = c }
	}

	// seed: one owner with one post, N distinct reviewers
	owner := model.User{ID: uuid.New().String(), FirstName: "Owner", LastName: "Owner", Email: "owner@example.com", Password: "p"}
	_ = db.Create(&owner).Error
	post := model.Post{Title: "bench", Content: "bench", OwnerID: owner.ID, ModifierID: owner.ID}
	_ = db.Create(&post).Error

	users := make([]model.User, N)
	batch := 1000
	for i := 0; i < N; i++ {
		id := uuid.New().String()
		users[i] = model.User{ID: id, FirstName: "Bench", LastName: "User", Email: id[:8] + "@example.com", Password: "p"}
		if (i+1)%batch == 0 {
			sub := users[i+1-batch : i+1]
			_ = db.Create(&sub).Error
		}
	}
	if N%batch != 0 {
		sub := users[N-N%batch:]
		_ = db.Create(&sub).Error
	}

	recs := make([]time.Duration, 0, N)
	recCh := make(chan time.Duration, N)

	repMetrics := replicator.Metrics()
	repRecs := make([]time.Duration, 0, N)
	doneRep := make(chan struct{})
	go func() {
		timeout := time.NewTimer(5 * time.Minute)
		defer timeout.Stop()
		for {
			select {
			case d := <-repMetrics:
				repRecs = append(repRecs, d)
			case <-doneRep:
				return
			case <-timeout.C:
				return
			}
		}
	}()

	maxQ := 0
	quitSample := make(chan struct{})
	go func() {
		ticker := time.NewTicker(50 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if q := replicator.QueueLen(); q > maxQ { maxQ = q }
			case <-quitSample:
				return
			}
		}
	}()

	t0 := time.Now()
	workers := CONC
	if workers > N { workers = N }
	feed := make(chan int, N)
	for i := 0; i < N; i++ { feed <- i }
	close(feed)
	doneCh := make(chan struct{}, workers)
	for w := 0; w < workers; w++ {
		go func() {
			for i := range feed {
				st := time.Now()
				_, _ = ratings.AddLike(ctx, &users[i], post.ID)
				recCh <- time.Since(st)
			}
			doneCh <- struct{}{}
		}()
	}
	for w := 0; w < workers; w++ { <-doneCh }
	close(recCh)
	for d := range recCh { recs = append(recs, d) }
	total := time.Since(t0)
	close(quitSample)

	drainStart := time.Now()
	_ = stop(context.Background())
	drainDur := time.Since(drainStart)
	close(doneRep)

	totals := must(ratings.Totals(ctx, post.ID))
	landed, _ := reactionRepo.CountByPost(ctx, post.ID, string(cache.KindLike))

	pct := func(vs []time.Duration, p float64) time.Duration {
		if len(vs) == 0 { return 0 }
		xs := append([]time.Duration(nil), vs...)
		sort.Slice(xs, func(i, j int) bool { return xs[i] < xs[j] })
		k := int(math.Ceil(p*float64(len(xs)))) - 1
		if k < 0 { k = 0 }
		if k >= len(xs) { k = len(xs) - 1 }
		return xs[k]
	}

	fmt.Printf("N=%d, CONC=%d\n", N, CONC)
	fmt.Printf("AddLike total: %v, per op: %v, p50: %v, p95: %v, p99: %v\n",
		total, total/time.Duration(N), pct(recs, 0.50), pct(recs, 0.95), pct(recs, 0.99))
	fmt.Printf("Set cardinality: %d (expected %d)\n", totals.TotalLikes, N)
	fmt.Printf("Rows landed: %d, drain: %v\n", landed, drainDur)
	if len(repRecs) > 0 {
		fmt.Printf("Replication landing: samples=%d, p50=%v, p95=%v, p99=%v, maxQueue=%d\n",
			len(repRecs), pct(repRecs, 0.50), pct(repRecs, 0.95), pct(repRecs, 0.99), maxQ)
	}
}
