package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// EventPruner deletes journal entries older than a retention window.
type EventPruner interface {
	DeleteOldEvents(retention time.Duration) (int64, error)
}

// JournalCleanupScheduler periodically removes expired lending journal entries
type JournalCleanupScheduler struct {
	pruner    EventPruner
	schedule  string
	retention time.Duration

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewJournalCleanupScheduler creates a new scheduler instance
func NewJournalCleanupScheduler(pruner EventPruner, schedule string, retentionDays int) *JournalCleanupScheduler {
	return &JournalCleanupScheduler{
		pruner:    pruner,
		schedule:  schedule,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		cron:      cron.New(cron.WithParser(cronParser)),
	}
}

// Start begins the scheduler
func (s *JournalCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if s.retention <= 0 {
		log.Printf("Journal cleanup scheduler: retention not configured, skipping")
		return nil
	}

	if err := ValidateCronSchedule(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", s.schedule, err)
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runCleanup()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule cleanup job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	nextRun, _ := GetNextRunTime(s.schedule)
	log.Printf("Journal cleanup scheduler: started with schedule '%s', retention %v. Next run: %v",
		s.schedule, s.retention, nextRun)

	// Monitor for context cancellation
	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler
func (s *JournalCleanupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	// Stop accepting new jobs and wait for running jobs to complete
	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Journal cleanup scheduler: stopped")
}

// IsRunning returns whether the scheduler is active
func (s *JournalCleanupScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRunTime returns when the next cleanup will occur
func (s *JournalCleanupScheduler) GetNextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}

	for _, entry := range s.cron.Entries() {
		if entry.ID == s.entryID {
			t := entry.Next
			return &t
		}
	}
	return nil
}

// RunOnce performs a cleanup immediately and returns the number of removed entries.
func (s *JournalCleanupScheduler) RunOnce() (int64, error) {
	return s.pruner.DeleteOldEvents(s.retention)
}

func (s *JournalCleanupScheduler) runCleanup() {
	startTime := time.Now()
	deleted, err := s.RunOnce()
	if err != nil {
		log.Printf("Journal cleanup: failed: %v", err)
		return
	}
	log.Printf("Journal cleanup: removed %d entries older than %v in %v",
		deleted, s.retention, time.Since(startTime).Round(time.Millisecond))
}

// ValidateCronSchedule validates a 5-field cron expression
func ValidateCronSchedule(schedule string) error {
	_, err := cronParser.Parse(schedule)
	return err
}

// GetNextRunTime calculates when a schedule fires next
func GetNextRunTime(schedule string) (*time.Time, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return nil, err
	}
	next := sched.Next(time.Now())
	return &next, nil
}
