package services

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"vibin_web/apperrors"
	"vibin_web/models"
	"vibin_web/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeDynamo is an in-memory DynamoAPI. Scans are paginated two items at a time and the
// first failures calls return errTransient.
type fakeDynamo struct {
	mu       sync.Mutex
	tables   map[string][]map[string]types.AttributeValue
	failures int
	calls    int
}

var (
	_ DataProvider        = (*DynamoProvider)(nil)
	_ NotificationRemover = (*DynamoProvider)(nil)
)

var errTransient = errors.New("ProvisionedThroughputExceededException")

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) fail() error {
	f.calls++
	if f.failures > 0 {
		f.failures--
		return errTransient
	}
	return nil
}

func (f *fakeDynamo) put(t *testing.T, table string, item interface{}) {
	t.Helper()
	av, err := attributevalue.MarshalMap(item)
	require.NoError(t, err)
	f.tables[table] = append(f.tables[table], av)
}

func (f *fakeDynamo) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return nil, err
	}

	items := f.tables[aws.ToString(params.TableName)]
	start := 0
	if params.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(utils.ExtractString(params.ExclusiveStartKey, "offset"))
	}
	end := start + 2
	out := &dynamodb.ScanOutput{}
	if end < len(items) {
		out.LastEvaluatedKey = utils.StringKey("offset", strconv.Itoa(end))
	} else {
		end = len(items)
	}
	out.Items = items[start:end]
	return out, nil
}

func (f *fakeDynamo) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return nil, err
	}

	matchID := utils.ExtractString(params.ExpressionAttributeValues, ":matchId")
	var items []map[string]types.AttributeValue
	for _, item := range f.tables[aws.ToString(params.TableName)] {
		if utils.ExtractString(item, "matchId") == matchID {
			items = append(items, item)
		}
	}
	return &dynamodb.QueryOutput{Items: items}, nil
}

func (f *fakeDynamo) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return nil, err
	}
	table := aws.ToString(params.TableName)
	f.tables[table] = append(f.tables[table], params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return nil, err
	}
	id := utils.ExtractString(params.Key, "id")
	for _, item := range f.tables[aws.ToString(params.TableName)] {
		if utils.ExtractString(item, "id") == id {
			return &dynamodb.GetItemOutput{Item: item}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fail(); err != nil {
		return nil, err
	}
	table := aws.ToString(params.TableName)
	id := utils.ExtractString(params.Key, "id")
	kept := f.tables[table][:0]
	for _, item := range f.tables[table] {
		if utils.ExtractString(item, "id") != id {
			kept = append(kept, item)
		}
	}
	f.tables[table] = kept
	return &dynamodb.DeleteItemOutput{}, nil
}

func newTestDynamoProvider(t *testing.T) (*DynamoProvider, *fakeDynamo) {
	t.Helper()
	fake := newFakeDynamo()
	profiles, err := NewMockProvider(NewRandomizer(1)).FetchProfiles(context.Background(), 5)
	require.NoError(t, err)
	for _, p := range profiles {
		fake.put(t, models.UserProfilesTable, p)
	}
	notifications, err := NewMockProvider(NewRandomizer(1)).FetchNotifications(context.Background())
	require.NoError(t, err)
	for _, n := range notifications {
		fake.put(t, models.NotificationsTable, n)
	}

	p := NewDynamoProvider(&DynamoService{Client: fake, Logger: zap.NewNop()}, NewRandomizer(1), zap.NewNop())
	p.MaxRetryTime = 500 * time.Millisecond
	return p, fake
}

func TestDynamoFetchProfiles(t *testing.T) {
	p, _ := newTestDynamoProvider(t)

	profiles, err := p.FetchProfiles(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, profiles, 3)

	seen := map[string]bool{}
	for _, profile := range profiles {
		assert.False(t, seen[profile.ID], "ids are unique within a call")
		seen[profile.ID] = true
	}

	// fewer rows than requested
	profiles, err = p.FetchProfiles(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, profiles, 5)
}

func TestDynamoRetriesTransientFailures(t *testing.T) {
	p, fake := newTestDynamoProvider(t)
	fake.failures = 2

	notifications, err := p.FetchNotifications(context.Background())
	require.NoError(t, err)
	assert.Len(t, notifications, 6)
	assert.GreaterOrEqual(t, fake.calls, 3)
}

func TestDynamoSurfacesNetworkError(t *testing.T) {
	p, fake := newTestDynamoProvider(t)
	p.MaxRetryTime = 100 * time.Millisecond
	fake.failures = 1 << 20

	_, err := p.FetchProfiles(context.Background(), 2)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNetwork))
	assert.True(t, apperrors.As(err).Retryable())
}

func TestDynamoMalformedRowsAreNotRetried(t *testing.T) {
	p, fake := newTestDynamoProvider(t)
	fake.tables[models.UserProfilesTable] = []map[string]types.AttributeValue{{
		"id":  &types.AttributeValueMemberS{Value: "broken"},
		"age": &types.AttributeValueMemberS{Value: "twenty"},
	}}
	calls := fake.calls

	_, err := p.FetchProfiles(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
	assert.False(t, apperrors.As(err).Retryable())
	assert.Equal(t, calls+1, fake.calls)
}

func TestDynamoMessagesRoundTrip(t *testing.T) {
	p, _ := newTestDynamoProvider(t)
	now := time.Now().UTC().Truncate(time.Second)

	for i, content := range []string{"first", "second"} {
		require.NoError(t, p.SendMessage(context.Background(), models.Message{
			MatchID:   "m1",
			ID:        content,
			Content:   content,
			SenderID:  models.CurrentUserID,
			Timestamp: now.Add(time.Duration(i) * time.Minute),
			Type:      models.MessageTypeText,
		}))
	}

	messages, err := p.FetchMessages(context.Background(), "m1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "first", messages[0].Content)
	assert.True(t, messages[0].Timestamp.Equal(now))

	messages, err = p.FetchMessages(context.Background(), "other")
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.NotNil(t, messages)
}

func TestDynamoFetchProfile(t *testing.T) {
	p, fake := newTestDynamoProvider(t)
	id := utils.ExtractString(fake.tables[models.UserProfilesTable][0], "id")

	profile, err := p.FetchProfile(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)

	calls := fake.calls
	_, err = p.FetchProfile(context.Background(), "missing")
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
	assert.Equal(t, calls+1, fake.calls, "not found is not retried")
}

func TestDynamoDeleteNotification(t *testing.T) {
	p, _ := newTestDynamoProvider(t)

	require.NoError(t, p.DeleteNotification(context.Background(), "4"))
	notifications, err := p.FetchNotifications(context.Background())
	require.NoError(t, err)
	assert.Len(t, notifications, 5)
}

func TestDynamoProviderDrivesASession(t *testing.T) {
	p, _ := newTestDynamoProvider(t)

	s, err := NewSession(context.Background(), context.Background(), "s1", SessionDeps{Provider: p, MatchCount: 3})
	require.NoError(t, err)
	defer s.Close()

	assert.Len(t, s.Matches().Matches, 3)
	require.NoError(t, s.DeleteNotification(context.Background(), "1"))
	items, _ := s.Notifications()
	assert.Len(t, items, 5)

	remaining, err := p.FetchNotifications(context.Background())
	require.NoError(t, err)
	assert.Len(t, remaining, 5)
}
