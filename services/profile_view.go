package services

import (
	"vibin_web/apperrors"
	"vibin_web/models"
)

// ProfileViewer tracks what the user did to other people's profiles during the session
type ProfileViewer struct {
	liked   map[string]bool
	blocked map[string]bool
	reports map[string][]string
}

func NewProfileViewer() *ProfileViewer {
	return &ProfileViewer{
		liked:   map[string]bool{},
		blocked: map[string]bool{},
		reports: map[string][]string{},
	}
}

// Decorate adds the viewer-side fields shown on a profile page
func (v *ProfileViewer) Decorate(profile models.Profile, rng *Randomizer) models.ProfileView {
	return models.ProfileView{
		Profile:       profile,
		Distance:      rng.Between(1, 50),
		MutualFriends: rng.Between(1, 5),
		Verified:      rng.Chance(0.7),
		LastSeen:      "2 hours ago",
		Liked:         v.liked[profile.ID],
	}
}

// ToggleLike flips the like on id and returns the notice to show
func (v *ProfileViewer) ToggleLike(id string) (bool, models.Notice) {
	if v.liked[id] {
		delete(v.liked, id)
		return false, models.Notice{Title: "Like removed 💔", Description: "You've unliked this profile"}
	}
	v.liked[id] = true
	return true, models.Notice{Title: "Profile liked! 💖", Description: "Your like has been sent! If they like you back, you'll match."}
}

func (v *ProfileViewer) Liked(id string) bool {
	return v.liked[id]
}

// Block hides id from discovery and search for the rest of the session
func (v *ProfileViewer) Block(id string) models.Notice {
	v.blocked[id] = true
	delete(v.liked, id)
	return models.Notice{Title: "User blocked 🚫", Description: "This user has been blocked and won't appear in your discoveries."}
}

func (v *ProfileViewer) Blocked(id string) bool {
	return v.blocked[id]
}

func (v *ProfileViewer) Report(id, reason string) models.Notice {
	v.reports[id] = append(v.reports[id], reason)
	return models.Notice{Title: "Report submitted 📋", Description: "Thank you for reporting. We'll review this profile carefully."}
}

func (v *ProfileViewer) Reports(id string) []string {
	return append([]string{}, v.reports[id]...)
}

// MessageLocation returns where the view goes to message id. Only liked profiles can be messaged.
func (v *ProfileViewer) MessageLocation(id string) (string, error) {
	if !v.liked[id] {
		return "", apperrors.Validation("Like first! 💝 You need to like each other to start a conversation.", nil)
	}
	return models.ChatLocation(id), nil
}

// WithoutBlocked drops blocked profiles from a batch
func (v *ProfileViewer) WithoutBlocked(profiles []models.Profile) []models.Profile {
	if len(v.blocked) == 0 {
		return profiles
	}
	out := make([]models.Profile, 0, len(profiles))
	for _, p := range profiles {
		if !v.blocked[p.ID] {
			out = append(out, p)
		}
	}
	return out
}
