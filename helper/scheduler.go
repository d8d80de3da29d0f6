package helper

import (
	"context"
	"errors"
	"log"
	"time"

	"cinema_storefront/database"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	catalogScheduler gocron.Scheduler
	paymentSweeper   *cron.Cron
)

// StartCatalogScheduler làm mới catalog mỗi ngày lúc 00:05
func StartCatalogScheduler() {
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.FixedZone("ICT", 7*3600)),
	)
	if err != nil {
		log.Fatal(err)
	}

	catalogScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			if err := RefreshCatalog(ctx); err != nil {
				log.Printf("catalog refresh failed: %v", err)
			}
		}),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("catalog scheduler started (00:05 ICT)")
}

func StopCatalogScheduler() {
	if catalogScheduler != nil {
		_ = catalogScheduler.Shutdown()
	}
}

// StartPaymentSweeper dọn các booking chờ thanh toán đã quá hạn.
// Bản ghi tự hết hạn theo TTL; sweeper chỉ dọn index và log lại.
func StartPaymentSweeper() {
	paymentSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := paymentSweeper.AddFunc("*/5 * * * *", sweepExpiredPayments)
	if err != nil {
		log.Printf("payment sweeper init failed: %v", err)
		return
	}

	paymentSweeper.Start()
	log.Println("payment sweeper started (every 5 minutes)")
}

func StopPaymentSweeper() {
	if paymentSweeper != nil {
		paymentSweeper.Stop()
	}
}

func sweepExpiredPayments() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	refs, err := database.Store.SMembers(ctx, pendingIndexKey)
	if err != nil {
		log.Printf("payment sweep: %v", err)
		return
	}

	expired := 0
	for _, txnRef := range refs {
		if _, err := GetPending(ctx, txnRef); errors.Is(err, ErrBookingNotFound) {
			_ = database.Store.SRem(ctx, pendingIndexKey, txnRef)
			expired++
		}
	}
	if expired > 0 {
		log.Printf("payment sweep: %d pending bookings expired", expired)
	}
}
