package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"campusminds/config"
	"campusminds/models"
	"campusminds/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSessionReminder = "session:reminder"

// reminderLead is how long before the session start the reminder fires.
const reminderLead = 15 * time.Minute

func redisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// ReminderScheduler enqueues session reminder tasks. It satisfies
// booking.ReminderScheduler.
type ReminderScheduler struct {
	client *asynq.Client
}

// NewReminderScheduler creates the asynq client for enqueueing reminders.
func NewReminderScheduler() *ReminderScheduler {
	return &ReminderScheduler{client: asynq.NewClient(redisOpt())}
}

// EnqueueSessionReminder schedules a reminder shortly before the session
// starts; sessions already inside the lead window remind immediately.
func (s *ReminderScheduler) EnqueueSessionReminder(ctx context.Context, payload models.ReminderPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeSessionReminder, data)
	opts := []asynq.Option{asynq.MaxRetry(3)}
	if fireAt, ok := sessionStart(payload.Date, payload.TimeSlot); ok {
		if remindAt := fireAt.Add(-reminderLead); remindAt.After(time.Now()) {
			opts = append(opts, asynq.ProcessAt(remindAt))
		}
	}

	if _, err := s.client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue session reminder: %w", err)
	}
	return nil
}

// sessionStart parses a catalog date/slot pair into a wall-clock time. Slots
// outside the catalog format (e.g. the urgent "NOW" label) report false.
func sessionStart(date, timeSlot string) (time.Time, bool) {
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", date+" "+timeSlot, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	srv := asynq.NewServer(
		redisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleSessionReminder)

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleSessionReminder(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] invalid payload: %v", err)
		return err
	}

	// Push delivery is out of scope; the reminder surfaces in the service log
	// where the dashboard poller picks up current state anyway.
	utils.GetLogger().Info("session reminder",
		zap.String("appointmentId", p.AppointmentID),
		zap.String("counselor", p.CounselorName),
		zap.String("student", p.StudentNickname),
		zap.String("date", p.Date),
		zap.String("timeSlot", p.TimeSlot),
		zap.String("meetingLink", p.MeetingLink),
	)
	return nil
}

// MonitorRedisConnection pings the reminder queue Redis periodically to detect
// failures at runtime.
func MonitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	go func() {
		for {
			if err := client.Ping(ctx).Err(); err != nil {
				log.Printf("[ReminderWorker] Redis connection lost: %v", err)
			}
			time.Sleep(10 * time.Second)
		}
	}()
}
