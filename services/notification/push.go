package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

// PushSender delivers a push notification to a device token.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// FCMSender sends pushes through Firebase Cloud Messaging.
type FCMSender struct {
	Client *messaging.Client
}

// Send delivers one push message.
func (f *FCMSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if f.Client == nil {
		return fmt.Errorf("fcm client not initialized")
	}
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := f.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send failed: %w", err)
	}
	return nil
}
