package models

// ✅ Chat session states
const (
	ChatStateIdle          = "idle"
	ChatStateLoaded        = "loaded"
	ChatStateComposing     = "composing"
	ChatStateAwaitingReply = "awaiting_reply"
)

// ✅ Canned last-message lines for generated matches
var LastMessageSamples = []string{
	"Hey! How's your day going? 😊",
	"That photo from your trip looks amazing!",
	"Coffee later? ☕",
	"Thanks for the like! 💖",
	"You have great taste in music!",
	"Would love to chat more about photography 📸",
}

// ✅ Canned counterpart replies
var ReplySamples = []string{
	"That sounds great! 😊",
	"I totally agree!",
	"Haha, you're funny! 😄",
	"Tell me more about that!",
	"That's so interesting! 🤔",
	"I love your perspective on this! ✨",
}

// ✅ Interest tags offered by search and profile editing
var AvailableTags = []string{
	"Art 🎨", "Coffee ☕", "Hiking 🥾", "Foodie 🍕", "Photography 📸",
	"Tech 💻", "Music 🎵", "Guitar 🎸", "Travel ✈️", "Yoga 🧘‍♀️",
	"Mindfulness 🧠", "Nature 🌲", "Cooking 👨‍🍳", "Dogs 🐕", "Design 🎯",
	"Fitness 💪", "Climbing 🧗‍♂️", "Adventure 🏔️", "Science 🔬",
}

// Caps on the current user's own profile
const (
	MaxProfileTags   = 8
	MaxProfilePhotos = 5
)

// ChatLocation is the navigational path of a conversation
func ChatLocation(matchID string) string {
	return "/chat/" + matchID
}

// DiscoverLocation is where the view goes after blocking someone
const DiscoverLocation = "/discover"
