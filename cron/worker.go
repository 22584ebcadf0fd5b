package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"glowdesk/config"
	apptRepo "glowdesk/database/repository/appointment"
	"glowdesk/models"
	"glowdesk/services/booking"
	"glowdesk/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(appts apptRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(booking.TypeAppointmentRemind, handleReminderTask(appts))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleReminderTask fires a reminder for an upcoming appointment. The
// appointment status is re-checked at fire time: a reminder enqueued
// before a cancellation is simply dropped.
func handleReminderTask(appts apptRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger()

		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("reminder: invalid payload", zap.Error(err))
			return err
		}

		appt, err := appts.GetByID(p.AppointmentID)
		if err != nil {
			logger.Warn("reminder: appointment not found",
				zap.String("appointmentID", p.AppointmentID), zap.Error(err))
			return nil
		}
		if appt.Status != models.AppointmentScheduled {
			logger.Debug("reminder: appointment no longer scheduled, skipping",
				zap.String("appointmentID", appt.ID), zap.String("status", appt.Status))
			return nil
		}

		// Notification transport (mail/SMS) hooks in here; for now the
		// reminder is recorded in the log stream.
		logger.Info("appointment reminder",
			zap.String("appointmentID", appt.ID),
			zap.String("businessID", appt.BusinessID),
			zap.String("customerID", appt.CustomerID),
			zap.Time("startsAt", appt.Date))
		return nil
	}
}
