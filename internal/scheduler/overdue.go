package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

type invoiceMarker interface {
	MarkOverdue(ctx context.Context, cutoff time.Time) (int64, error)
}

// OverdueJob flags stale Pending invoices as Overdue once a day. A zero
// afterDays disables the job entirely, leaving invoice statuses alone.
type OverdueJob struct {
	invoices  invoiceMarker
	afterDays int
	cron      *cron.Cron
}

func NewOverdueJob(invoices invoiceMarker, afterDays int) *OverdueJob {
	return &OverdueJob{
		invoices:  invoices,
		afterDays: afterDays,
		cron:      cron.New(),
	}
}

func (j *OverdueJob) Start() error {
	if j.afterDays <= 0 {
		return nil
	}

	// Run once at startup so a long-stopped server catches up immediately.
	j.Run()

	if _, err := j.cron.AddFunc("0 1 * * *", j.Run); err != nil {
		return err
	}
	j.cron.Start()
	log.Printf("overdue scheduler started, invoices pending longer than %d days will be flagged", j.afterDays)
	return nil
}

func (j *OverdueJob) Stop() {
	j.cron.Stop()
}

func (j *OverdueJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -j.afterDays)
	n, err := j.invoices.MarkOverdue(ctx, cutoff)
	if err != nil {
		log.Printf("overdue sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("overdue sweep flagged %d invoices", n)
	}
}
