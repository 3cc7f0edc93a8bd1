package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibin_web/apperrors"
	"vibin_web/models"
	"vibin_web/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// NotificationRemover is implemented by providers that keep notifications server side
type NotificationRemover interface {
	DeleteNotification(ctx context.Context, id string) error
}

// DynamoProvider serves the DataProvider contract from DynamoDB tables
type DynamoProvider struct {
	Dynamo *DynamoService
	Rand   *Randomizer
	Logger *zap.Logger
	// MaxRetryTime bounds the exponential backoff applied to every call
	MaxRetryTime time.Duration
}

func NewDynamoProvider(dynamo *DynamoService, rng *Randomizer, logger *zap.Logger) *DynamoProvider {
	return &DynamoProvider{Dynamo: dynamo, Rand: rng, Logger: logger, MaxRetryTime: 3 * time.Second}
}

// retry runs op with exponential backoff. Failures that survive the retries are network errors.
func (p *DynamoProvider) retry(ctx context.Context, action string, op func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 50 * time.Millisecond
	b.MaxElapsedTime = p.MaxRetryTime

	err := backoff.RetryNotify(op, backoff.WithContext(b, ctx), func(err error, wait time.Duration) {
		p.Logger.Warn("⚠️ DynamoDB call failed, retrying", zap.String("action", action), zap.Duration("wait", wait), zap.Error(err))
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrItemNotFound) {
		return apperrors.NotFound(action, err)
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	p.Logger.Error("❌ DynamoDB call failed", zap.String("action", action), zap.Error(err))
	return apperrors.Network(fmt.Sprintf("failed to %s", action), err)
}

// FetchProfiles returns n random profiles from the Profiles table. A table holding fewer
// than n rows yields all of them; no error is reported for the shortfall.
func (p *DynamoProvider) FetchProfiles(ctx context.Context, n int) ([]models.Profile, error) {
	var all []models.Profile
	err := p.retry(ctx, "fetch profiles", func() error {
		all = nil
		return p.Dynamo.ScanAll(ctx, models.UserProfilesTable, &all)
	})
	if err != nil {
		return nil, err
	}

	if n > len(all) {
		n = len(all)
	}
	profiles := make([]models.Profile, 0, n)
	for _, i := range p.Rand.Perm(len(all))[:n] {
		profiles = append(profiles, all[i])
	}
	return profiles, nil
}

func (p *DynamoProvider) FetchProfile(ctx context.Context, id string) (models.Profile, error) {
	key := utils.StringKey("id", id)

	var profile models.Profile
	err := p.retry(ctx, "fetch profile", func() error {
		item, err := p.Dynamo.GetItem(ctx, models.UserProfilesTable, key)
		if err != nil {
			if errors.Is(err, ErrItemNotFound) {
				return backoff.Permanent(err)
			}
			return err
		}
		if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
			return backoff.Permanent(apperrors.Internal("failed to parse profile", err))
		}
		return nil
	})
	return profile, err
}

// FetchMessages returns a conversation oldest first
func (p *DynamoProvider) FetchMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	keyCondition := "#matchId = :matchId"
	expressionValues := utils.StringValues(map[string]string{":matchId": matchID})
	expressionNames := map[string]string{
		"#matchId": "matchId",
	}

	var messages []models.Message
	err := p.retry(ctx, "fetch messages", func() error {
		items, err := p.Dynamo.QueryItemsWithOptions(ctx, models.MessagesTable, keyCondition, expressionValues, expressionNames, false)
		if err != nil {
			return err
		}
		messages = nil
		if err := attributevalue.UnmarshalListOfMaps(items, &messages); err != nil {
			return backoff.Permanent(apperrors.Internal("failed to parse messages", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return messages, nil
}

func (p *DynamoProvider) SendMessage(ctx context.Context, message models.Message) error {
	return p.retry(ctx, "send message", func() error {
		return p.Dynamo.PutItem(ctx, models.MessagesTable, message)
	})
}

func (p *DynamoProvider) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	err := p.retry(ctx, "fetch notifications", func() error {
		notifications = nil
		return p.Dynamo.ScanAll(ctx, models.NotificationsTable, &notifications)
	})
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return notifications, nil
}

func (p *DynamoProvider) DeleteNotification(ctx context.Context, id string) error {
	key := utils.StringKey("id", id)
	return p.retry(ctx, "delete notification", func() error {
		return p.Dynamo.DeleteItem(ctx, models.NotificationsTable, key)
	})
}
