package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"devbady/db"
	"devbady/models"
	"devbady/rdx"
)

const channel = "devbady-events"

// Event is a notification payload published to Redis. The worker turns it
// into a dashboard feed entry.
type Event struct {
	Name    string `json:"name"`
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// Emit publishes an event to the notification channel. Failures are logged
// and swallowed: notifications are best effort, never in a request's
// critical path.
func Emit(eventName string, content Event) {
	content.Name = eventName

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartNotificationWorker consumes the event channel and records each
// event as a dashboard notification. Runs until the process exits.
func StartNotificationWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[NotificationWorker] Listening for events...")

	for msg := range ch {
		var event Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[NotificationWorker] Failed to parse event: %v", err)
			continue
		}

		notification := models.Notification{
			UserID:    event.UserID,
			Event:     event.Name,
			Message:   event.Message,
			CreatedAt: time.Now(),
		}
		if _, err := db.NotificationsCollection.InsertOne(ctx, notification); err != nil {
			log.Printf("[NotificationWorker] Insert failed for %s: %v", event.Name, err)
		}
	}
}
