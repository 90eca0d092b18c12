package services

import (
	"context"
	"log"

	"creatorclasses_server/apperror"
	"creatorclasses_server/models"
)

type SubscriptionService struct {
	Dynamo  *DynamoService
	Classes *ClassService
}

// ListSubscribedClasses returns the class documents the user is subscribed
// to. Two sequential lookups: subscription rows first, then each class. A
// class deleted underneath a subscription row is skipped rather than failing
// the whole list.
func (ss *SubscriptionService) ListSubscribedClasses(ctx context.Context, userID string) ([]models.CreatorClass, error) {
	var subscriptions []models.Subscription
	if err := ss.Dynamo.ScanItems(ctx, models.SubscriptionsTable, &subscriptions); err != nil {
		return nil, err
	}

	classes := []models.CreatorClass{}
	for _, sub := range subscriptions {
		if sub.UserID != userID {
			continue
		}
		class, err := ss.Classes.GetClass(ctx, sub.ClassID)
		if err != nil {
			log.Printf("Skipping subscription %s: %v", sub.ID, err)
			continue
		}
		classes = append(classes, *class)
	}
	return classes, nil
}

// Subscribe records the user's interest in a class. The composite key makes a
// repeat subscribe an idempotent upsert.
func (ss *SubscriptionService) Subscribe(ctx context.Context, userID, classID, email string) (*models.Subscription, error) {
	if classID == "" {
		return nil, apperror.ValidationFailed("classId", "classId is required")
	}

	if _, err := ss.Classes.GetClass(ctx, classID); err != nil {
		return nil, err
	}

	subscription := &models.Subscription{
		ID:           models.SubscriptionKey(classID, userID),
		UserID:       userID,
		ClassID:      classID,
		EmailAddress: email,
	}
	if err := ss.Dynamo.PutItem(ctx, models.SubscriptionsTable, subscription); err != nil {
		return nil, err
	}

	log.Printf("User %s subscribed to class %s", userID, classID)
	return subscription, nil
}

// Unsubscribe removes the caller's subscription to a class. The delete is
// scoped to the (class, user) composite key, so a user can only ever remove
// their own row; deleting an absent row is a no-op.
func (ss *SubscriptionService) Unsubscribe(ctx context.Context, userID, classID string) error {
	key := StringKey("id", models.SubscriptionKey(classID, userID))
	if err := ss.Dynamo.DeleteItem(ctx, models.SubscriptionsTable, key); err != nil {
		return err
	}
	log.Printf("User %s unsubscribed from class %s", userID, classID)
	return nil
}
