package services

import (
	"context"

	"vibin_web/models"
)

// DataProvider is the data seam every state model depends on. MockProvider generates
// everything in memory; DynamoProvider reads and writes the same records in DynamoDB.
type DataProvider interface {
	// FetchProfiles returns up to n profiles with ids unique within the call.
	// MockProvider always returns exactly n. A stored directory smaller than n yields
	// every stored profile instead.
	// Ids are not stable across calls and repeated calls may return the same profiles.
	FetchProfiles(ctx context.Context, n int) ([]models.Profile, error)
	// FetchProfile resolves a single profile by id
	FetchProfile(ctx context.Context, id string) (models.Profile, error)
	// FetchMessages returns the conversation log of a match in ascending timestamp order.
	FetchMessages(ctx context.Context, matchID string) ([]models.Message, error)
	SendMessage(ctx context.Context, message models.Message) error
	FetchNotifications(ctx context.Context) ([]models.Notification, error)
}
