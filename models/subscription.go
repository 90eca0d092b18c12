package models

import "fmt"

// Subscription records one user's interest in one class. The composite key
// makes a duplicate subscribe for the same (class, user) pair an upsert.
type Subscription struct {
	ID           string `json:"id" dynamodbav:"id"`
	UserID       string `json:"userId" dynamodbav:"userId"`
	ClassID      string `json:"classId" dynamodbav:"classId"`
	EmailAddress string `json:"emailAddress" dynamodbav:"emailAddress"`
}

// SubscriptionDto is the POST /subscriptions payload.
type SubscriptionDto struct {
	ClassID string `json:"classId"`
	Email   string `json:"email"`
}

// SubscriptionKey builds the composite partition key for a (class, user) pair.
func SubscriptionKey(classID, userID string) string {
	return fmt.Sprintf("%s:%s", classID, userID)
}

// SubscriptionsTable is the DynamoDB table name for subscriptions
const SubscriptionsTable = "Subscriptions"
