package utils

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"
	"learnhub/store"

	"github.com/go-resty/resty/v2"
)

// classFeedEntry mirrors one entry of the remote schedule feed payload
type classFeedEntry struct {
	Title      string    `json:"title"`
	Subject    string    `json:"subject"`
	Instructor string    `json:"instructor"`
	StartTime  time.Time `json:"start_time"`
	Duration   int       `json:"duration"`
	MeetingURL string    `json:"meeting_url"`
}

// RefreshClassFeed pulls the live-class schedule from the configured
// feed and upserts it into the local table. A missing feed URL disables
// the refresh; the portal then serves whatever is already stored.
func RefreshClassFeed() error {
	cfg := config.AppConfig
	if cfg.ClassFeedURL == "" {
		return nil
	}

	client := resty.New()
	req := client.R()
	if cfg.ClassFeedToken != "" {
		req.SetAuthToken(cfg.ClassFeedToken)
	}

	resp, err := req.Get(cfg.ClassFeedURL)
	if err != nil {
		return fmt.Errorf("failed to fetch class feed: %v", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("class feed returned status %d", resp.StatusCode())
	}

	var entries []classFeedEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return fmt.Errorf("invalid class feed response: %v", err)
	}

	classStore := store.NewLiveClassStore(database.Database.Db)
	updated := 0
	for _, entry := range entries {
		if entry.Title == "" || entry.StartTime.IsZero() {
			continue
		}
		err := classStore.UpsertClass(models.LiveClass{
			Title:      entry.Title,
			Subject:    entry.Subject,
			Instructor: entry.Instructor,
			StartTime:  entry.StartTime,
			Duration:   entry.Duration,
			MeetingURL: entry.MeetingURL,
		})
		if err != nil {
			log.Printf("Error upserting live class %q: %v", entry.Title, err)
			continue
		}
		updated++
	}

	log.Printf("Class feed refreshed: %d entries updated", updated)
	return nil
}
