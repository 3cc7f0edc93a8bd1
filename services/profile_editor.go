package services

import (
	"vibin_web/apperrors"
	"vibin_web/models"
)

// ProfileEditor holds the signed-in user's own profile
type ProfileEditor struct {
	profile models.OwnProfile
}

// DemoOwnProfile is the profile every fresh session starts with
func DemoOwnProfile() models.OwnProfile {
	return models.OwnProfile{
		Name:        "Emma Martinez",
		Age:         28,
		Bio:         "Passionate about art, coffee, and meaningful conversations. Love exploring new places and trying different cuisines. Looking for someone who shares my curiosity about the world! 🌎",
		Location:    "Paris, France",
		Tags:        []string{"Art 🎨", "Coffee ☕", "Travel ✈️", "Photography 📸"},
		Gender:      "woman",
		Orientation: "straight",
		Photos:      []string{placeholderPhoto, placeholderPhoto, placeholderPhoto},
		Stats: models.ProfileStats{
			ProfileViews: 127,
			Likes:        89,
			FameRating:   4.2,
			Matches:      23,
		},
	}
}

func NewProfileEditor(profile models.OwnProfile) *ProfileEditor {
	return &ProfileEditor{profile: profile}
}

func (e *ProfileEditor) Profile() models.OwnProfile {
	p := e.profile
	p.Tags = append([]string{}, e.profile.Tags...)
	p.Photos = append([]string{}, e.profile.Photos...)
	return p
}

// Apply copies the set fields of an already validated update
func (e *ProfileEditor) Apply(u models.ProfileUpdate) {
	if u.Name != nil {
		e.profile.Name = *u.Name
	}
	if u.Age != nil {
		e.profile.Age = *u.Age
	}
	if u.Bio != nil {
		e.profile.Bio = *u.Bio
	}
	if u.Location != nil {
		e.profile.Location = *u.Location
	}
	if u.Gender != nil {
		e.profile.Gender = *u.Gender
	}
	if u.Orientation != nil {
		e.profile.Orientation = *u.Orientation
	}
}

// ToggleTag removes tag when present, otherwise adds it unless the profile already has
// MaxProfileTags tags
func (e *ProfileEditor) ToggleTag(tag string) {
	for i, t := range e.profile.Tags {
		if t == tag {
			e.profile.Tags = append(e.profile.Tags[:i], e.profile.Tags[i+1:]...)
			return
		}
	}
	if len(e.profile.Tags) >= models.MaxProfileTags {
		return
	}
	e.profile.Tags = append(e.profile.Tags, tag)
}

func (e *ProfileEditor) AddPhoto(url string) error {
	if len(e.profile.Photos) >= models.MaxProfilePhotos {
		return apperrors.Validation("a profile holds at most 5 photos", nil)
	}
	e.profile.Photos = append(e.profile.Photos, url)
	return nil
}

func (e *ProfileEditor) RemovePhoto(index int) error {
	if index < 0 || index >= len(e.profile.Photos) {
		return apperrors.NotFound("photo", nil)
	}
	e.profile.Photos = append(e.profile.Photos[:index], e.profile.Photos[index+1:]...)
	return nil
}
