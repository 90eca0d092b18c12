package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
)

// SQSAPI is the subset of the SQS client used by the publisher.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// NotificationService enqueues events for asynchronous downstream processing
// (subscriber emails etc.). The consumer side lives outside this service.
type NotificationService struct {
	Client   SQSAPI
	QueueURL string
}

// VideoAddedEvent is the message body published when a video is appended to
// a class.
type VideoAddedEvent struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	ClassID   string    `json:"classId"`
	Timestamp time.Time `json:"timestamp"`
}

// InitializeSQSClient initializes the SQS client
func InitializeSQSClient() *sqs.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}
	return sqs.NewFromConfig(cfg)
}

// PublishVideoAdded enqueues a video-added event for classID.
func (ns *NotificationService) PublishVideoAdded(ctx context.Context, classID string) error {
	event := VideoAddedEvent{
		EventID:   uuid.NewString(),
		Type:      "video-added",
		ClassID:   classID,
		Timestamp: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal video-added event: %w", err)
	}

	_, err = ns.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(ns.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		log.Printf("Failed to publish video-added event for class %s: %v", classID, err)
		return fmt.Errorf("failed to publish video-added event: %w", err)
	}

	log.Printf("Published video-added event %s for class %s", event.EventID, classID)
	return nil
}
