package jobs

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// ListingCacheRefresher rewarms the cached property listings.
type ListingCacheRefresher interface {
	RefreshListingCache(ctx context.Context) error
}

var listingRefresher ListingCacheRefresher

// SetListingRefresher installs the implementation used by the hourly job.
func SetListingRefresher(r ListingCacheRefresher) {
	listingRefresher = r
}

// InitCronJobs schedules the hourly listing cache rewarm and starts the
// scheduler.
func InitCronJobs(c *cron.Cron) error {
	_, err := c.AddFunc("0 * * * *", func() {
		if listingRefresher == nil {
			return
		}
		if err := listingRefresher.RefreshListingCache(context.Background()); err != nil {
			log.Printf("listing cache rewarm failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("cron jobs initialized")
	return nil
}
