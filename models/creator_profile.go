package models

// CreatorProfile is one creator's public profile. ID is the stringified
// CreatorID and doubles as the partition key; UserID links the profile to the
// authenticated principal that owns it (one profile per user).
type CreatorProfile struct {
	ID          string `json:"id" dynamodbav:"id"`
	UserID      string `json:"userId" dynamodbav:"userId"`
	CreatorID   int    `json:"creatorId" dynamodbav:"creatorId"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`
	YoutubeURL  string `json:"youtubeUrl" dynamodbav:"youtubeUrl"`
	ImageSrc    string `json:"imageSrc" dynamodbav:"imageSrc"`
}

// CreatorProfileDto is the POST /creatorProfile payload.
type CreatorProfileDto struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	YoutubeURL  string `json:"youtubeUrl"`
}

// CreatorProfilesTable is the DynamoDB table name for creator profiles
const CreatorProfilesTable = "CreatorProfiles"
