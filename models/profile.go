package models

// Profile is a member record served by the profile directory. Immutable once generated.
type Profile struct {
	ID          string   `dynamodbav:"id" json:"id"`                                       // ✅ Partition Key
	Name        string   `dynamodbav:"name" json:"name"`                                   // Display name
	Age         int      `dynamodbav:"age" json:"age"`                                     // Age in years
	Images      []string `dynamodbav:"images" json:"images"`                               // Photo references
	Tags        []string `dynamodbav:"tags" json:"tags"`                                   // Interest tags
	Bio         string   `dynamodbav:"bio,omitempty" json:"bio,omitempty"`                 // Free text bio
	Location    string   `dynamodbav:"location" json:"location"`                           // Geographic label
	FameRating  float64  `dynamodbav:"fameRating" json:"fameRating"`                       // 0..5 popularity score
	Gender      string   `dynamodbav:"gender,omitempty" json:"gender,omitempty"`           // Gender
	Orientation string   `dynamodbav:"orientation,omitempty" json:"orientation,omitempty"` // Orientation
	IsOnline    bool     `dynamodbav:"isOnline" json:"isOnline"`                           // Presence hint
}

// HasTag reports whether the profile carries tag.
func (p Profile) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ProfileStats are the counters shown on the current user's own profile
type ProfileStats struct {
	ProfileViews int     `json:"profileViews"`
	Likes        int     `json:"likes"`
	FameRating   float64 `json:"fameRating"`
	Matches      int     `json:"matches"`
}

// OwnProfile is the editable profile of the signed-in user
type OwnProfile struct {
	Name        string       `json:"name" validate:"required,max=60"`
	Age         int          `json:"age" validate:"gte=18,lte=99"`
	Bio         string       `json:"bio" validate:"max=500"`
	Location    string       `json:"location" validate:"max=120"`
	Tags        []string     `json:"tags" validate:"max=8"`
	Gender      string       `json:"gender" validate:"omitempty,oneof=woman man non-binary other"`
	Orientation string       `json:"orientation" validate:"omitempty,oneof=straight gay lesbian bisexual pansexual other"`
	Photos      []string     `json:"photos" validate:"max=5"`
	Stats       ProfileStats `json:"stats"`
}

// ProfileUpdate carries the editable fields of OwnProfile. Nil fields are left unchanged.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=60"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,gte=18,lte=99"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=120"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=woman man non-binary other"`
	Orientation *string `json:"orientation,omitempty" validate:"omitempty,oneof=straight gay lesbian bisexual pansexual other"`
}

// ProfileView decorates a Profile with what the viewer sees on someone else's page
type ProfileView struct {
	Profile
	Distance      int    `json:"distance"`      // km
	MutualFriends int    `json:"mutualFriends"` // 1..5
	Verified      bool   `json:"verified"`
	LastSeen      string `json:"lastSeen"`
	Liked         bool   `json:"liked"`
}

// Notice is a transient user-facing message (the client renders it as a toast)
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UserProfilesTable is the DynamoDB table name for directory profiles
const UserProfilesTable = "Profiles"
