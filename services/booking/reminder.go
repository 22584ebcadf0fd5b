package booking

import (
	"encoding/json"
	"fmt"
	"time"

	"glowdesk/config"
	"glowdesk/models"

	"github.com/hibiken/asynq"
)

// TypeAppointmentRemind is the asynq task type for appointment reminders.
const TypeAppointmentRemind = "appointment:remind"

// ReminderScheduler enqueues a reminder ahead of an appointment's start.
type ReminderScheduler interface {
	ScheduleReminder(appt *models.Appointment) error
}

// AsynqReminderScheduler schedules reminders on the shared Redis-backed
// asynq queue consumed by the cron worker.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	// Lead is how long before the appointment the reminder fires.
	Lead time.Duration
}

// NewAsynqReminderScheduler builds a scheduler on the configured Redis
// reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		Client: client,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
}

func (s *AsynqReminderScheduler) ScheduleReminder(appt *models.Appointment) error {
	fireAt := appt.Date.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		// Too close to the appointment for a useful reminder.
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		BusinessID:    appt.BusinessID,
		CustomerID:    appt.CustomerID,
		StartsAt:      appt.Date.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeAppointmentRemind, payload)
	if _, err := s.Client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
