package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"vibin_web/models"

	"github.com/google/uuid"
)

// Mock services to simulate a backend

const defaultPoolSize = 30

var mockNames = []string{
	"Emma", "Alex", "Sarah", "Maya", "Lucas", "Chloe", "Noah", "Léa", "Hugo", "Inès",
	"Jules", "Camille", "Louis", "Manon", "Arthur", "Zoé", "Gabriel", "Jade", "Raphaël", "Louise",
	"Adam", "Alice", "Nathan", "Lina", "Tom", "Rose", "Leo", "Anna", "Ethan", "Mila",
}

var mockLocations = []string{
	"Paris, France", "Lyon, France", "Marseille, France", "Bordeaux, France", "Lille, France",
	"Nantes, France", "Toulouse, France", "Nice, France", "Strasbourg, France", "Montpellier, France",
}

var mockBios = []string{
	"Passionate photographer and coffee enthusiast ☕📸",
	"Weekend hiker, weekday coder. Looking for someone to share trail mix with 🥾",
	"Foodie who knows every ramen spot in town 🍜",
	"Guitarist in a band nobody has heard of yet 🎸",
	"Yoga in the morning, wine in the evening 🧘‍♀️🍷",
	"Dog parent. My golden retriever has to approve 🐕",
	"Museum hopper and amateur painter 🎨",
	"Always planning the next trip ✈️",
}

var mockGenders = []string{"woman", "man", "non-binary"}

var mockOrientations = []string{"straight", "gay", "lesbian", "bisexual", "pansexual"}

const placeholderPhoto = "/placeholder.svg"

// MockProvider is the in-memory DataProvider. None of its operations can fail.
type MockProvider struct {
	rng  *Randomizer
	pool []models.Profile
	now  func() time.Time
}

// NewMockProvider builds a provider with a fixed pool of generated profiles
func NewMockProvider(rng *Randomizer) *MockProvider {
	p := &MockProvider{rng: rng, now: time.Now}
	p.pool = make([]models.Profile, 0, defaultPoolSize)
	for i := 0; i < defaultPoolSize; i++ {
		p.pool = append(p.pool, p.generateProfile(mockNames[i%len(mockNames)]))
	}
	return p
}

func (p *MockProvider) generateProfile(name string) models.Profile {
	images := make([]string, p.rng.Between(1, 4))
	for i := range images {
		images[i] = placeholderPhoto
	}

	tagIdx := p.rng.Perm(len(models.AvailableTags))[:p.rng.Between(2, 5)]
	tags := make([]string, 0, len(tagIdx))
	for _, i := range tagIdx {
		tags = append(tags, models.AvailableTags[i])
	}

	return models.Profile{
		ID:          uuid.NewString(),
		Name:        name,
		Age:         p.rng.Between(18, 45),
		Images:      images,
		Tags:        tags,
		Bio:         p.rng.Pick(mockBios),
		Location:    p.rng.Pick(mockLocations),
		FameRating:  math.Round(p.rng.Float64()*50) / 10,
		Gender:      p.rng.Pick(mockGenders),
		Orientation: p.rng.Pick(mockOrientations),
		IsOnline:    p.rng.Chance(0.4),
	}
}

// FetchProfiles returns n distinct profiles drawn from the pool, topping up with fresh
// profiles when n exceeds the pool size
func (p *MockProvider) FetchProfiles(ctx context.Context, n int) ([]models.Profile, error) {
	if n <= 0 {
		return []models.Profile{}, nil
	}

	profiles := make([]models.Profile, 0, n)
	for _, i := range p.rng.Perm(len(p.pool)) {
		if len(profiles) == n {
			break
		}
		profiles = append(profiles, cloneProfile(p.pool[i]))
	}
	for len(profiles) < n {
		profiles = append(profiles, p.generateProfile(p.rng.Pick(mockNames)))
	}
	return profiles, nil
}

// FetchMessages returns the five seeded messages of a conversation
func (p *MockProvider) FetchMessages(ctx context.Context, matchID string) ([]models.Message, error) {
	now := p.now()
	seed := []struct {
		content string
		sender  string
		ago     time.Duration
		read    bool
	}{
		{"Hey! I saw we matched, how's it going? 😊", matchID, 24 * time.Hour, true},
		{"Hi! Going great, thanks for asking! Love your photos, are you a photographer?", models.CurrentUserID, 23 * time.Hour, true},
		{"Not professionally, but it's a huge passion of mine! I love capturing moments and emotions 📸", matchID, 22 * time.Hour, true},
		{"That's awesome! I'd love to see more of your work. Maybe we could do a photo walk sometime?", models.CurrentUserID, 21 * time.Hour, true},
		{"I'd really like that! There are some amazing spots around the city I've been wanting to explore 🌟", matchID, 30 * time.Minute, false},
	}

	messages := make([]models.Message, 0, len(seed))
	for i, s := range seed {
		messages = append(messages, models.Message{
			MatchID:   matchID,
			ID:        fmt.Sprintf("%s-%d", matchID, i+1),
			Content:   s.content,
			SenderID:  s.sender,
			Timestamp: now.Add(-s.ago),
			Type:      models.MessageTypeText,
			Read:      s.read,
		})
	}
	return messages, nil
}

// SendMessage accepts every message
func (p *MockProvider) SendMessage(ctx context.Context, message models.Message) error {
	return nil
}

// FetchNotifications returns the six seeded notifications
func (p *MockProvider) FetchNotifications(ctx context.Context) ([]models.Notification, error) {
	return []models.Notification{
		{ID: "1", Type: models.NotificationTypeMatch, Title: "New Match! 💕", Description: "You and Emma both liked each other", Time: "2 minutes ago", Avatar: placeholderPhoto, Username: "Emma", Read: false, ActionURL: "/chat/emma"},
		{ID: "2", Type: models.NotificationTypeLike, Title: "Someone liked you! 💖", Description: "Alex liked your profile", Time: "15 minutes ago", Avatar: placeholderPhoto, Username: "Alex", Read: false, ActionURL: "/profile/alex"},
		{ID: "3", Type: models.NotificationTypeMessage, Title: "New message 💬", Description: `Sarah: "Hey! How was your weekend?"`, Time: "1 hour ago", Avatar: placeholderPhoto, Username: "Sarah", Read: true, ActionURL: "/chat/sarah"},
		{ID: "4", Type: models.NotificationTypeView, Title: "Profile view 👀", Description: "Someone viewed your profile", Time: "2 hours ago", Avatar: placeholderPhoto, Username: "Anonymous", Read: true},
		{ID: "5", Type: models.NotificationTypeSuperlike, Title: "Super Like! ⭐", Description: "Maya super liked you!", Time: "3 hours ago", Avatar: placeholderPhoto, Username: "Maya", Read: true, ActionURL: "/profile/maya"},
		{ID: "6", Type: models.NotificationTypeUnlike, Title: "Someone unmatched 💔", Description: "A match has been removed", Time: "1 day ago", Avatar: placeholderPhoto, Username: "Someone", Read: true},
	}, nil
}

func cloneProfile(p models.Profile) models.Profile {
	c := p
	c.Images = append([]string{}, p.Images...)
	c.Tags = append([]string{}, p.Tags...)
	return c
}

// FetchProfile returns a random profile re-keyed to id; every id resolves
func (p *MockProvider) FetchProfile(ctx context.Context, id string) (models.Profile, error) {
	profile := cloneProfile(p.pool[p.rng.Intn(len(p.pool))])
	profile.ID = id
	return profile, nil
}
