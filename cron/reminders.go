package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"barberbook/config"
	"barberbook/models"
	"barberbook/services/notification"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// How far ahead of the appointment the reminder fires.
const reminderLead = time.Hour

// ReminderQueue enqueues appointment reminders. Implements
// notification.ReminderScheduler.
type ReminderQueue struct {
	client *asynq.Client
}

// NewReminderQueue builds the enqueue side of the reminder pipeline.
func NewReminderQueue() *ReminderQueue {
	client := asynq.NewClient(redisOpts())
	return &ReminderQueue{client: client}
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueue,
	}
}

// ScheduleAppointmentReminder enqueues a task to fire one hour before the
// appointment starts. Appointments starting sooner than the lead get no
// reminder.
func (q *ReminderQueue) ScheduleAppointmentReminder(apt models.Appointment) error {
	fireAt := apt.StartAt.Add(-reminderLead)
	if !fireAt.After(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: apt.ID,
		ClientID:      apt.ClientID,
		BarberID:      apt.BarberID,
		FireAt:        fireAt.Format(time.RFC3339),
		Title:         "Upcoming appointment",
		Body:          fmt.Sprintf("Your appointment starts at %s.", apt.StartAt.Format("3:04 PM")),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderSend, payload)
	if _, err := q.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReminderSend, handleReminderTask(notifSvc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		data := map[string]string{
			"appointmentId": p.AppointmentID,
			"fireAt":        p.FireAt,
		}

		// Both the client and the barber hear about the upcoming visit.
		if err := notifSvc.SendPush(ctx, p.ClientID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] client push failed: %v", err)
		}
		if err := notifSvc.SendPush(ctx, p.BarberID, p.Title, p.Body, data); err != nil {
			log.Printf("[ReminderHandler] barber push failed: %v", err)
		}
		return nil
	}
}
