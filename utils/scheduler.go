package utils

import (
	"fmt"
	"log"
	"time"

	"learnhub/quiz"

	"github.com/robfig/cron/v3"
)

// sweepGrace is how long past its time budget an abandoned attempt is
// kept before being dropped
const sweepGrace = 10 * time.Minute

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSchedulers starts the background jobs: stale quiz-attempt sweep
// and the hourly live-class feed refresh
func StartSchedulers(sessions *quiz.SessionManager) *cron.Cron {
	c := cron.New()

	c.AddFunc("@every 10m", func() {
		if removed := sessions.SweepExpired(time.Now(), sweepGrace); removed > 0 {
			logScheduler(fmt.Sprintf("Swept %d stale quiz attempts", removed))
		}
	})

	c.AddFunc("@hourly", func() {
		if err := RefreshClassFeed(); err != nil {
			logScheduler("Class feed refresh failed: " + err.Error())
		}
	})

	c.Start()
	logScheduler("Schedulers started")
	return c
}
