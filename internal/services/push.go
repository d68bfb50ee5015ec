package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/arnold/weeklygoals-api/internal/store"
	"github.com/arnold/weeklygoals-api/internal/streak"
)

type messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushService sends streak notifications to the registered device via
// Firebase Cloud Messaging.
type PushService struct {
	client messenger
	store  store.Store
}

// InitPush initializes the Firebase push notification service.
// Returns a disabled service if no service account is configured (dev mode).
func InitPush(ctx context.Context, serviceAccountPath string, st store.Store) *PushService {
	if serviceAccountPath == "" {
		log.Println("FCM: No service account configured, push notifications disabled")
		return &PushService{store: st}
	}

	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(serviceAccountPath))
	if err != nil {
		log.Printf("FCM: Failed to initialize Firebase app: %v", err)
		return &PushService{store: st}
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		log.Printf("FCM: Failed to get messaging client: %v", err)
		return &PushService{store: st}
	}

	log.Println("FCM: Push notifications enabled")
	return &PushService{client: client, store: st}
}

// Enabled reports whether messages are actually sent.
func (p *PushService) Enabled() bool {
	return p != nil && p.client != nil
}

// RegisterDevice stores the device's FCM token.
func (p *PushService) RegisterDevice(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return invalid("token", "Device token is required")
	}
	return p.store.Set(ctx, store.DeviceTokenKey, token)
}

// NotifyCheckIn tells the device how the streak moved.
// No-op if push is not configured or no device is registered.
func (p *PushService) NotifyCheckIn(ctx context.Context, out streak.Outcome) {
	if !p.Enabled() {
		return
	}

	token, ok, err := p.store.Get(ctx, store.DeviceTokenKey)
	if err != nil {
		log.Printf("FCM: Failed to load device token: %v", err)
		return
	}
	if !ok || token == "" {
		return
	}

	title, body := checkInMessage(out)
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"type":          "checked_in",
			"date":          out.Date.String(),
			"result":        string(out.Result),
			"currentStreak": fmt.Sprint(out.CurrentStreak),
		},
	}

	if _, err := p.client.Send(ctx, msg); err != nil {
		log.Printf("FCM: Failed to send check-in for %s: %v", out.Date, err)
	}
}

func checkInMessage(out streak.Outcome) (string, string) {
	switch out.Result {
	case streak.Advanced, streak.Restarted:
		if out.NewRecord {
			return "New record!", fmt.Sprintf("Streak: %d days", out.CurrentStreak)
		}
		return "Checked in!", fmt.Sprintf("Streak: %d days", out.CurrentStreak)
	case streak.Maintained:
		return "Progress recorded", fmt.Sprintf("Streak maintained at %d days", out.CurrentStreak)
	default:
		return "Progress recorded", "Check in fully tomorrow to start a new streak"
	}
}
