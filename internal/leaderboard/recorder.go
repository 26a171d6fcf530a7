// internal/leaderboard/recorder.go
package leaderboard

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	defaultRecordTimeout = 5 * time.Second
	recordQueueSize      = 16
)

type scoreRecord struct {
	playerName string
	score      int
}

// Recorder — ScoreRecorder поверх Store. RecordScore только ставит итог в очередь,
// запись в хранилище идёт в отдельной горутине, так что кадр хоста не ждёт базу.
// Ошибки хранилища логируются и не доходят до движка.
type Recorder struct {
	store   Store
	timeout time.Duration
	queue   chan scoreRecord
	done    chan struct{}
	pending sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewRecorder starts the writer goroutine; call Close when done.
func NewRecorder(store Store) *Recorder {
	r := &Recorder{
		store:   store,
		timeout: defaultRecordTimeout,
		queue:   make(chan scoreRecord, recordQueueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *Recorder) RecordScore(playerName string, score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		log.Printf("Leaderboard: recorder closed, dropping score %d for %q", score, playerName)
		return
	}

	r.pending.Add(1)
	select {
	case r.queue <- scoreRecord{playerName: playerName, score: score}:
	default:
		r.pending.Done()
		log.Printf("Leaderboard: queue full, dropping score %d for %q", score, playerName)
	}
}

// Flush blocks until every queued score has been written (or has failed).
func (r *Recorder) Flush() {
	r.pending.Wait()
}

// Close writes what is queued and stops the goroutine. Safe to call twice.
func (r *Recorder) Close() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for rec := range r.queue {
		r.write(rec)
		r.pending.Done()
	}
}

func (r *Recorder) write(rec scoreRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	entry, err := r.store.Add(ctx, rec.playerName, rec.score)
	if err != nil {
		log.Printf("Leaderboard: failed to record score %d for %q: %v", rec.score, rec.playerName, err)
		return
	}
	log.Printf("Leaderboard: recorded %d points for %s", entry.Score, entry.PlayerName)
}
