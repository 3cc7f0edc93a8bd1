package services

import (
	"context"
	"sync"
	"time"

	"vibin_web/apperrors"
	"vibin_web/models"

	"go.uber.org/zap"
)

// Timing holds the simulated latencies of the chat models
type Timing struct {
	ReadReceiptDelay time.Duration
	ReplyMinDelay    time.Duration
	ReplyMaxDelay    time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		ReadReceiptDelay: time.Second,
		ReplyMinDelay:    2 * time.Second,
		ReplyMaxDelay:    5 * time.Second,
	}
}

// SessionDeps is everything a Session needs from the outside
type SessionDeps struct {
	Provider       DataProvider
	Rand           *Randomizer
	Timing         Timing
	MatchCount     int
	EnforceFilters bool
	Events         EventSink
	Logger         *zap.Logger
}

func (d SessionDeps) withDefaults() SessionDeps {
	if d.Rand == nil {
		d.Rand = NewRandomizer(0)
	}
	if d.Timing == (Timing{}) {
		d.Timing = DefaultTiming()
	}
	if d.MatchCount <= 0 {
		d.MatchCount = 8
	}
	if d.Events == nil {
		d.Events = nopSink{}
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return d
}

// MatchesSnapshot is the messages list as the view renders it
type MatchesSnapshot struct {
	Matches         []models.Match `json:"matches"`
	TotalUnread     int            `json:"totalUnread"`
	SelectedMatchID string         `json:"selectedMatchId,omitempty"`
	Location        string         `json:"location"`
}

// ConversationSnapshot is the open conversation as the view renders it
type ConversationSnapshot struct {
	MatchID  string           `json:"matchId,omitempty"`
	State    string           `json:"state"`
	Typing   bool             `json:"typing"`
	Draft    string           `json:"draft"`
	Messages []models.Message `json:"messages"`
}

// SearchSnapshot is the search page state
type SearchSnapshot struct {
	Query         string               `json:"query"`
	Filters       models.SearchFilters `json:"filters"`
	ActiveFilters int                  `json:"activeFilters"`
	Results       []models.Profile     `json:"results"`
}

// Session is one signed-in user's state: matches, the open conversation, notifications,
// search, and profiles. All transitions, including timer callbacks, hold mu.
type Session struct {
	ID string

	mu     sync.Mutex
	deps   SessionDeps
	ctx    context.Context
	cancel context.CancelFunc
	now    func() time.Time

	matches       *MatchList
	chat          *ChatSession
	notifications *NotificationList
	search        *SearchModel
	editor        *ProfileEditor
	viewer        *ProfileViewer
	location      string
}

// NewSession seeds a fresh session from the provider. parent bounds the session lifetime.
func NewSession(ctx, parent context.Context, id string, deps SessionDeps) (*Session, error) {
	deps = deps.withDefaults()

	profiles, err := deps.Provider.FetchProfiles(ctx, deps.MatchCount)
	if err != nil {
		return nil, err
	}
	notifications, err := deps.Provider.FetchNotifications(ctx)
	if err != nil {
		return nil, err
	}
	initial, err := deps.Provider.FetchProfiles(ctx, initialResults)
	if err != nil {
		return nil, err
	}

	sctx, cancel := context.WithCancel(parent)
	s := &Session{
		ID:            id,
		deps:          deps,
		ctx:           sctx,
		cancel:        cancel,
		now:           time.Now,
		matches:       NewMatchList(profiles, deps.Rand, time.Now()),
		chat:          NewChatSession(sctx),
		notifications: NewNotificationList(notifications),
		search:        NewSearchModel(initial, deps.EnforceFilters),
		editor:        NewProfileEditor(DemoOwnProfile()),
		viewer:        NewProfileViewer(),
		location:      models.DiscoverLocation,
	}
	return s, nil
}

// Close cancels every pending timer and makes the session inert
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.chat.Leave()
}

// Done is closed once the session is closed
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// schedule runs fn under the session lock after d, unless ctx is cancelled first
func (s *Session) schedule(ctx context.Context, d time.Duration, fn func()) {
	time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		fn()
	})
}

func (s *Session) Location() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.location
}

// ---- match list ----

func (s *Session) Matches() MatchesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchesSnapshot()
}

func (s *Session) matchesSnapshot() MatchesSnapshot {
	return MatchesSnapshot{
		Matches:         s.matches.Matches(),
		TotalUnread:     s.matches.TotalUnread(),
		SelectedMatchID: s.chat.MatchID(),
		Location:        s.location,
	}
}

// SelectMatch opens the conversation of matchID, or of the most recent match when matchID
// is empty. The match's unread counter drops to zero after the read-receipt delay.
func (s *Session) SelectMatch(ctx context.Context, matchID string) (models.Match, ConversationSnapshot, error) {
	s.mu.Lock()
	var match *models.Match
	var ok bool
	if matchID == "" {
		match, ok = s.matches.First()
	} else {
		match, ok = s.matches.Find(matchID)
	}
	var id string
	if ok {
		id = match.ID
	}
	s.mu.Unlock()
	if !ok {
		return models.Match{}, ConversationSnapshot{}, apperrors.NotFound("match", nil)
	}

	messages, err := s.deps.Provider.FetchMessages(ctx, id)
	if err != nil {
		return models.Match{}, ConversationSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return models.Match{}, ConversationSnapshot{}, apperrors.Unauthorized("session closed", nil)
	}

	// the list may have been re-sorted while the log was loading
	match, ok = s.matches.Find(id)
	if !ok {
		return models.Match{}, ConversationSnapshot{}, apperrors.NotFound("match", nil)
	}

	s.chat.Load(id, messages)
	s.location = models.ChatLocation(id)
	s.deps.Logger.Debug("💬 Conversation opened", zap.String("session", s.ID), zap.String("match", id))

	s.schedule(s.ctx, s.deps.Timing.ReadReceiptDelay, func() {
		if s.matches.ResetUnread(id) {
			s.deps.Events.Emit(s.ID, EventUnreadReset, map[string]interface{}{
				"matchId":     id,
				"totalUnread": s.matches.TotalUnread(),
			})
		}
	})

	return *match, s.conversationSnapshot(), nil
}

// ---- chat session ----

func (s *Session) Conversation() ConversationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversationSnapshot()
}

func (s *Session) conversationSnapshot() ConversationSnapshot {
	return ConversationSnapshot{
		MatchID:  s.chat.MatchID(),
		State:    s.chat.State(),
		Typing:   s.chat.Typing(),
		Draft:    s.chat.Draft(),
		Messages: s.chat.Messages(),
	}
}

// SetDraft records the compose field of the open conversation
func (s *Session) SetDraft(text string) ConversationSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat.SetDraft(text)
	return s.conversationSnapshot()
}

// SendMessage appends content (or the draft when content is empty) to the open conversation
// and schedules the counterpart's reply. Blank messages are a no-op and return sent=false.
func (s *Session) SendMessage(ctx context.Context, content string) (models.Message, bool, error) {
	s.mu.Lock()
	if s.chat.MatchID() == "" {
		s.mu.Unlock()
		return models.Message{}, false, apperrors.Validation("no conversation is open", nil)
	}
	if content == "" {
		content = s.chat.Draft()
	}
	now := s.now()
	msg, ok := s.chat.AppendOutgoing(content, now)
	if !ok {
		s.mu.Unlock()
		return models.Message{}, false, nil
	}

	matchID := msg.MatchID
	convCtx := s.chat.Context()
	var previous models.Match
	if m, found := s.matches.Find(matchID); found {
		previous = *m
	}
	s.matches.RecordLastMessage(matchID, content, now)
	s.mu.Unlock()

	if err := s.deps.Provider.SendMessage(ctx, msg); err != nil {
		s.mu.Lock()
		if s.chat.Context() == convCtx {
			s.chat.RemoveOutgoing(msg.ID)
		}
		// a concurrent send may already own the preview
		if m, found := s.matches.Find(matchID); found && m.LastMessage == content && m.LastMessageTime.Equal(now) {
			s.matches.RecordLastMessage(matchID, previous.LastMessage, previous.LastMessageTime)
		}
		s.mu.Unlock()
		s.deps.Logger.Warn("❌ Failed to send message", zap.String("session", s.ID), zap.String("match", matchID), zap.Error(err))
		return models.Message{}, false, err
	}

	delay := s.deps.Rand.Duration(s.deps.Timing.ReplyMinDelay, s.deps.Timing.ReplyMaxDelay)
	reply := s.deps.Rand.Pick(models.ReplySamples)

	s.mu.Lock()
	defer s.mu.Unlock()
	if convCtx.Err() != nil {
		// left or switched while the provider call was in flight
		return msg, true, nil
	}
	s.deps.Events.Emit(s.ID, EventTyping, map[string]interface{}{"matchId": matchID, "typing": true})
	s.schedule(convCtx, delay, func() {
		m := s.chat.AppendReply(reply, s.now())
		s.deps.Events.Emit(s.ID, EventNewMessage, m)
		s.deps.Events.Emit(s.ID, EventTyping, map[string]interface{}{"matchId": matchID, "typing": s.chat.Typing()})
	})
	return msg, true, nil
}

// LeaveChat closes the open conversation. Pending replies are dropped.
func (s *Session) LeaveChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat.Leave()
	s.location = "/chat"
}

// ---- notifications ----

func (s *Session) Notifications() ([]models.Notification, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications.List(), s.notifications.UnreadCount()
}

func (s *Session) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications.MarkRead(id)
}

func (s *Session) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications.MarkAllRead()
}

// DeleteNotification removes id remotely, for providers that store notifications, and then
// locally. A failed remote delete leaves the list untouched so the call can be retried.
// Missing ids are not an error.
func (s *Session) DeleteNotification(ctx context.Context, id string) error {
	s.mu.Lock()
	present := s.notifications.Has(id)
	s.mu.Unlock()
	if !present {
		return nil
	}

	if remover, ok := s.deps.Provider.(NotificationRemover); ok {
		if err := remover.DeleteNotification(ctx, id); err != nil {
			return err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications.Delete(id)
	return nil
}

func (s *Session) NotificationSettings() models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications.Settings()
}

func (s *Session) UpdateNotificationSettings(settings models.NotificationSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications.UpdateSettings(settings)
}

// ---- search ----

func (s *Session) Search() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchSnapshot()
}

func (s *Session) searchSnapshot() SearchSnapshot {
	f := s.search.Filters()
	return SearchSnapshot{
		Query:         s.search.Query(),
		Filters:       f,
		ActiveFilters: f.ActiveCount(),
		Results:       s.search.Results(),
	}
}

// SetFilters replaces the criteria; f must already be validated
func (s *Session) SetFilters(f models.SearchFilters) SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.SetFilters(f)
	return s.searchSnapshot()
}

func (s *Session) ClearFilters() SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.Clear()
	return s.searchSnapshot()
}

func (s *Session) ToggleFilterTag(tag string) SearchSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.ToggleTag(tag)
	return s.searchSnapshot()
}

// ApplyFilters discards the results and fetches a fresh batch of 8..27 profiles
func (s *Session) ApplyFilters(ctx context.Context) (SearchSnapshot, error) {
	s.mu.Lock()
	query := s.search.Query()
	s.mu.Unlock()
	return s.refreshResults(ctx, query, s.deps.Rand.Between(applyMinResults, applyMaxResults))
}

// RunSearch records query and fetches a fresh batch of 5..19 profiles
func (s *Session) RunSearch(ctx context.Context, query string) (SearchSnapshot, error) {
	return s.refreshResults(ctx, query, s.deps.Rand.Between(searchMinResults, searchMaxResults))
}

func (s *Session) refreshResults(ctx context.Context, query string, n int) (SearchSnapshot, error) {
	batch, err := s.deps.Provider.FetchProfiles(ctx, n)
	if err != nil {
		return SearchSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.search.ReplaceResults(query, s.viewer.WithoutBlocked(batch))
	return s.searchSnapshot(), nil
}

// ---- discovery ----

// Discover returns a fresh batch of profiles without the blocked ones
func (s *Session) Discover(ctx context.Context, n int) ([]models.Profile, error) {
	batch, err := s.deps.Provider.FetchProfiles(ctx, n)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.location = models.DiscoverLocation
	return s.viewer.WithoutBlocked(batch), nil
}

// ---- own profile ----

func (s *Session) OwnProfile() models.OwnProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editor.Profile()
}

// UpdateOwnProfile applies an already validated update
func (s *Session) UpdateOwnProfile(u models.ProfileUpdate) (models.OwnProfile, models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.Apply(u)
	return s.editor.Profile(), models.Notice{Title: "Profile updated! ✨", Description: "Your changes have been saved successfully."}
}

func (s *Session) ToggleOwnTag(tag string) models.OwnProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editor.ToggleTag(tag)
	return s.editor.Profile()
}

func (s *Session) AddOwnPhoto(url string) (models.OwnProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editor.AddPhoto(url); err != nil {
		return models.OwnProfile{}, err
	}
	return s.editor.Profile(), nil
}

func (s *Session) RemoveOwnPhoto(index int) (models.OwnProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.editor.RemovePhoto(index); err != nil {
		return models.OwnProfile{}, err
	}
	return s.editor.Profile(), nil
}

// ---- other profiles ----

// ViewProfile resolves userID through the provider and decorates it for the viewer
func (s *Session) ViewProfile(ctx context.Context, userID string) (models.ProfileView, error) {
	profile, err := s.deps.Provider.FetchProfile(ctx, userID)
	if err != nil {
		return models.ProfileView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.viewer.Blocked(userID) {
		return models.ProfileView{}, apperrors.NotFound("profile", nil)
	}
	s.location = "/profile/" + userID
	return s.viewer.Decorate(profile, s.deps.Rand), nil
}

func (s *Session) ToggleLike(userID string) (bool, models.Notice) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer.ToggleLike(userID)
}

// BlockProfile blocks userID and sends the view back to discovery
func (s *Session) BlockProfile(userID string) (models.Notice, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	notice := s.viewer.Block(userID)
	s.location = models.DiscoverLocation
	return notice, s.location
}

func (s *Session) ReportProfile(userID, reason string) models.Notice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewer.Report(userID, reason)
}

// MessageProfile returns the chat location for a liked profile
func (s *Session) MessageProfile(userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	location, err := s.viewer.MessageLocation(userID)
	if err != nil {
		return "", err
	}
	s.location = location
	return location, nil
}
