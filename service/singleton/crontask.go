package singleton

import (
	"log"

	"github.com/robfig/cron/v3"
)

var Cron *cron.Cron

// loadCronTasks registers the background jobs: nightly audit-log
// retention and periodic admin pulse refresh.
func loadCronTasks() {
	Cron = cron.New(cron.WithSeconds(), cron.WithLocation(Loc))

	if _, err := Cron.AddFunc("0 0 3 * * *", PurgeStaleActivities); err != nil {
		panic(err)
	}
	if _, err := Cron.AddFunc("0 */10 * * * *", func() {
		if err := RefreshPulse(); err != nil {
			log.Println("AUREM>> pulse refresh failed:", err)
		}
	}); err != nil {
		panic(err)
	}

	Cron.Start()
}
