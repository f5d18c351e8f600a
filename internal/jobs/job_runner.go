package jobs

import (
	"context"

	"github.com/morem6161/bcsme/internal/config"
	"github.com/morem6161/bcsme/internal/logger"
	"github.com/morem6161/bcsme/internal/service"
)

// JobRunner coordinates the scheduled jobs
type JobRunner struct {
	appSvc   service.ApplicationService
	emailSvc service.EmailService
	config   *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(appSvc service.ApplicationService, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		appSvc:   appSvc,
		emailSvc: emailSvc,
		config:   cfg,
	}
}

// Config exposes the configuration to the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SendPendingReviewDigest emails the admin address a summary of paid
// applications still awaiting board action. Skipped when email or the
// admin address is not configured, and when nothing is pending.
func (jr *JobRunner) SendPendingReviewDigest() {
	jr.runWithRecovery("SendPendingReviewDigest", func() {
		if jr.emailSvc == nil || jr.config.SMTP.AdminEmail == "" {
			logger.Debug("Pending review digest skipped; email not configured")
			return
		}

		ctx := context.Background()
		apps, err := jr.appSvc.ListPendingReview(ctx)
		if err != nil {
			logger.Error("Failed to list applications for digest", "error", err)
			return
		}
		if len(apps) == 0 {
			logger.Debug("No applications awaiting review; digest not sent")
			return
		}

		if err := jr.emailSvc.SendPendingReviewDigest(ctx, jr.config.SMTP.AdminEmail, apps); err != nil {
			logger.Error("Failed to send pending review digest", "error", err)
			return
		}
		logger.Info("Pending review digest sent", "applications", len(apps))
	})
}
