package utils

import (
	"lms/config"
	"lms/database"
	courseModels "lms/models/course"
	"lms/services"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// refreshCategoryCounts recomputes category course counts hourly
func refreshCategoryCounts() {
	if err := services.RefreshCategoryCounts(database.Database.Db); err != nil {
		logScheduler("Error refreshing category counts: " + err.Error())
		return
	}
	logScheduler("Category course counts refreshed")
}

// sendPendingDigest mails the admin a summary of interests still pending
func sendPendingDigest() {
	var pending []courseModels.CourseInterest
	err := database.Database.Db.
		Where("status = ?", courseModels.StatusPending).
		Order("created_at asc").
		Find(&pending).Error
	if err != nil {
		logScheduler("Error fetching pending interests: " + err.Error())
		return
	}

	if len(pending) == 0 {
		logScheduler("No pending interests, digest skipped")
		return
	}

	SendPendingDigestEmail(config.AppConfig.AdminEmail, pending)
	logScheduler("Pending interest digest queued")
}

// StartCategoryCountScheduler runs at the top of every hour
func StartCategoryCountScheduler(c *cron.Cron) {
	c.AddFunc("0 * * * *", func() {
		refreshCategoryCounts()
	})
	logScheduler("Category count scheduler started - runs hourly")
}

// StartPendingDigestScheduler runs at 9:00 AM PKT every weekday
func StartPendingDigestScheduler(c *cron.Cron) {
	c.AddFunc("0 9 * * 1-5", func() {
		sendPendingDigest()
	})
	logScheduler("Pending digest scheduler started - runs at 9:00 AM PKT on weekdays")
}

// InitializeSchedulers initializes all background schedulers
func InitializeSchedulers() *cron.Cron {
	logScheduler("Initializing schedulers...")

	loc, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		loc = time.FixedZone("PKT", 5*60*60)
	}

	c := cron.New(cron.WithLocation(loc))

	StartCategoryCountScheduler(c)
	StartPendingDigestScheduler(c)

	c.Start()

	logScheduler("All schedulers initialized successfully")
	return c
}
