package services

import (
	"testing"

	"vibin_web/apperrors"
	"vibin_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileEditorTagCap(t *testing.T) {
	e := NewProfileEditor(models.OwnProfile{Name: "Emma", Age: 28})
	for _, tag := range models.AvailableTags[:10] {
		e.ToggleTag(tag)
	}
	tags := e.Profile().Tags
	assert.Len(t, tags, models.MaxProfileTags)
	assert.NotContains(t, tags, models.AvailableTags[8])

	// removing one frees a slot
	e.ToggleTag(models.AvailableTags[0])
	e.ToggleTag(models.AvailableTags[9])
	assert.Contains(t, e.Profile().Tags, models.AvailableTags[9])
}

func TestProfileEditorPhotos(t *testing.T) {
	e := NewProfileEditor(models.OwnProfile{})
	for i := 0; i < models.MaxProfilePhotos; i++ {
		require.NoError(t, e.AddPhoto("/p.jpg"))
	}
	err := e.AddPhoto("/one-too-many.jpg")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	assert.True(t, apperrors.Is(e.RemovePhoto(5), apperrors.KindNotFound))
	assert.True(t, apperrors.Is(e.RemovePhoto(-1), apperrors.KindNotFound))
	require.NoError(t, e.RemovePhoto(0))
	assert.Len(t, e.Profile().Photos, 4)
}

func TestProfileEditorApply(t *testing.T) {
	e := NewProfileEditor(DemoOwnProfile())
	age := 30
	bio := "New bio"
	e.Apply(models.ProfileUpdate{Age: &age, Bio: &bio})

	p := e.Profile()
	assert.Equal(t, 30, p.Age)
	assert.Equal(t, "New bio", p.Bio)
	assert.Equal(t, "Emma Martinez", p.Name)
	assert.Equal(t, 127, p.Stats.ProfileViews)
}

func TestProfileViewer(t *testing.T) {
	v := NewProfileViewer()
	rng := NewRandomizer(5)

	view := v.Decorate(models.Profile{ID: "u1"}, rng)
	assert.GreaterOrEqual(t, view.Distance, 1)
	assert.LessOrEqual(t, view.Distance, 50)
	assert.GreaterOrEqual(t, view.MutualFriends, 1)
	assert.LessOrEqual(t, view.MutualFriends, 5)
	assert.False(t, view.Liked)

	liked, notice := v.ToggleLike("u1")
	assert.True(t, liked)
	assert.Contains(t, notice.Title, "liked")
	assert.True(t, v.Decorate(models.Profile{ID: "u1"}, rng).Liked)

	liked, notice = v.ToggleLike("u1")
	assert.False(t, liked)
	assert.Contains(t, notice.Title, "removed")

	_, err := v.MessageLocation("u1")
	assert.True(t, apperrors.Is(err, apperrors.KindValidation))

	v.ToggleLike("u1")
	location, err := v.MessageLocation("u1")
	require.NoError(t, err)
	assert.Equal(t, "/chat/u1", location)

	v.Block("u1")
	assert.True(t, v.Blocked("u1"))
	assert.False(t, v.Liked("u1"))
	assert.Empty(t, v.WithoutBlocked([]models.Profile{{ID: "u1"}}))

	v.Report("u2", "fake profile")
	v.Report("u2", "spam")
	assert.Equal(t, []string{"fake profile", "spam"}, v.Reports("u2"))
}
