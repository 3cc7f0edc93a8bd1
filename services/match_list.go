package services

import (
	"sort"
	"time"

	"vibin_web/models"
)

const lastMessageWindow = 7 * 24 * time.Hour

// MatchList holds the conversational matches of a session, most recent first.
// It is not safe for concurrent use; Session serializes access.
type MatchList struct {
	matches []*models.Match
}

// NewMatchList wraps each profile in a Match with a canned last message backdated up to
// seven days, 0..4 unread messages and a coin-flip online flag
func NewMatchList(profiles []models.Profile, rng *Randomizer, now time.Time) *MatchList {
	matches := make([]*models.Match, 0, len(profiles))
	for _, profile := range profiles {
		backdate := time.Duration(rng.Float64() * float64(lastMessageWindow))
		matches = append(matches, &models.Match{
			ID:              profile.ID,
			User:            profile,
			LastMessage:     rng.Pick(models.LastMessageSamples),
			LastMessageTime: now.Add(-backdate),
			UnreadCount:     rng.Intn(5),
			Online:          rng.Chance(0.5),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].LastMessageTime.After(matches[j].LastMessageTime)
	})
	return &MatchList{matches: matches}
}

// Matches returns a copy of the list in its current order
func (l *MatchList) Matches() []models.Match {
	out := make([]models.Match, 0, len(l.matches))
	for _, m := range l.matches {
		out = append(out, *m)
	}
	return out
}

func (l *MatchList) Len() int {
	return len(l.matches)
}

// Find returns the match with id
func (l *MatchList) Find(id string) (*models.Match, bool) {
	for _, m := range l.matches {
		if m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// First returns the most recent match
func (l *MatchList) First() (*models.Match, bool) {
	if len(l.matches) == 0 {
		return nil, false
	}
	return l.matches[0], true
}

// ResetUnread clears the unread counter of id and reports whether anything changed
func (l *MatchList) ResetUnread(id string) bool {
	m, ok := l.Find(id)
	if !ok || m.UnreadCount == 0 {
		return false
	}
	m.UnreadCount = 0
	return true
}

// RecordLastMessage updates the last message fields of id in place. The list order is
// only established at creation and is not re-sorted here.
func (l *MatchList) RecordLastMessage(id, text string, at time.Time) {
	if m, ok := l.Find(id); ok {
		m.LastMessage = text
		m.LastMessageTime = at
	}
}

// TotalUnread is the badge count of the messages list
func (l *MatchList) TotalUnread() int {
	total := 0
	for _, m := range l.matches {
		total += m.UnreadCount
	}
	return total
}
