package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// HoldExpirer cancels pending reservations whose payment deadline has passed.
type HoldExpirer interface {
	ExpireHolds(now time.Time) (int, error)
}

// InitCronJobs schedules the hold sweep. sweepMinutes controls how often
// abandoned pending_payment reservations are cancelled and their rooms
// released.
func InitCronJobs(c *cron.Cron, expirer HoldExpirer, sweepMinutes int) error {
	if sweepMinutes < 1 {
		sweepMinutes = 5
	}

	spec := fmt.Sprintf("@every %dm", sweepMinutes)
	_, err := c.AddFunc(spec, func() {
		released, err := expirer.ExpireHolds(time.Now())
		if err != nil {
			log.Printf("hold sweep failed: %v", err)
			return
		}
		if released > 0 {
			log.Printf("hold sweep: cancelled %d expired reservation(s)", released)
		}
	})
	return err
}
