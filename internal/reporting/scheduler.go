package reporting

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler refreshes the cached dashboard snapshot on a fixed schedule so
// the first morning request never pays the aggregation cost.
type Scheduler struct {
	service *Service
	cron    *cron.Cron
}

func NewScheduler(service *Service) *Scheduler {
	return &Scheduler{service: service, cron: cron.New(cron.WithSeconds())}
}

// Start registers the nightly refresh (12:00 AM) and runs the cron loop.
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("0 0 0 * * *", func() {
		s.refresh()
	})
	if err != nil {
		log.Printf("Failed to create stats refresh job: %v", err)
		return
	}

	log.Println("Stats scheduler started (refreshing nightly at 12:00AM)")
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.service.Refresh(ctx); err != nil {
		log.Printf("Stats refresh failed: %v", err)
		return
	}
	log.Println("Stats refreshed at:", time.Now().Format(time.RFC1123))
}
