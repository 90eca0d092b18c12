package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"creatorclasses_server/apperror"
	"creatorclasses_server/models"
	"creatorclasses_server/utils"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type CreatorProfileService struct {
	Dynamo *DynamoService
	S3     *S3Service
}

// GetProfileByUserID retrieves the profile owned by the authenticated user.
func (cps *CreatorProfileService) GetProfileByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	profile, err := cps.findProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("creator profile", userID)
	}
	return profile, nil
}

// CreateOrUpdateProfile upserts the caller's profile. A new profile gets the
// next creatorId from the sequence; an existing one keeps its ids and image
// and only overwrites the editable fields.
func (cps *CreatorProfileService) CreateOrUpdateProfile(ctx context.Context, userID string, dto models.CreatorProfileDto) (*models.CreatorProfile, error) {
	existing, err := cps.findProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		existing.Name = dto.Name
		existing.Description = dto.Description
		existing.YoutubeURL = dto.YoutubeURL
		if err := cps.Dynamo.PutItem(ctx, models.CreatorProfilesTable, existing); err != nil {
			return nil, err
		}
		log.Printf("Updated creator profile %s for user %s", existing.ID, userID)
		return existing, nil
	}

	creatorID, err := cps.Dynamo.NextSequence(ctx, models.CountersTable, models.SequenceCreatorID)
	if err != nil {
		return nil, err
	}

	profile := &models.CreatorProfile{
		ID:          strconv.FormatInt(creatorID, 10),
		UserID:      userID,
		CreatorID:   int(creatorID),
		Name:        dto.Name,
		Description: dto.Description,
		YoutubeURL:  dto.YoutubeURL,
	}
	if err := cps.Dynamo.PutItem(ctx, models.CreatorProfilesTable, profile); err != nil {
		return nil, err
	}

	log.Printf("Created creator profile %s for user %s", profile.ID, userID)
	return profile, nil
}

// SetProfilePicture resizes the uploaded image to a 180x180 thumbnail,
// uploads it, and records the resulting URL on the profile.
func (cps *CreatorProfileService) SetProfilePicture(ctx context.Context, userID string, image io.Reader) (string, error) {
	profile, err := cps.GetProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	thumbnail, err := utils.Thumbnail(image, 180, 180)
	if err != nil {
		return "", apperror.ValidationFailed("image", fmt.Sprintf("unreadable image: %v", err))
	}

	key := fmt.Sprintf("creator-pics/%s-%d.jpg", profile.ID, time.Now().Unix())
	url, err := cps.S3.Upload(ctx, key, thumbnail, "image/jpeg")
	if err != nil {
		return "", err
	}

	profile.ImageSrc = url
	if err := cps.Dynamo.PutItem(ctx, models.CreatorProfilesTable, profile); err != nil {
		return "", err
	}

	return url, nil
}

// ListCreators returns every creator profile. Public read.
func (cps *CreatorProfileService) ListCreators(ctx context.Context) ([]models.CreatorProfile, error) {
	var profiles []models.CreatorProfile
	if err := cps.Dynamo.ScanItems(ctx, models.CreatorProfilesTable, &profiles); err != nil {
		return nil, err
	}
	if profiles == nil {
		profiles = []models.CreatorProfile{}
	}
	return profiles, nil
}

// GetCreator retrieves one creator profile by numeric creator id.
func (cps *CreatorProfileService) GetCreator(ctx context.Context, creatorID int) (*models.CreatorProfile, error) {
	item, err := cps.Dynamo.GetItem(ctx, models.CreatorProfilesTable, StringKey("id", strconv.Itoa(creatorID)))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("creator", strconv.Itoa(creatorID))
	}

	var profile models.CreatorProfile
	if err := attributevalue.UnmarshalMap(item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal creator profile: %w", err)
	}
	return &profile, nil
}

// findProfileByUserID scans for the profile owned by userID, returning nil
// when none exists. Profiles are keyed by creatorId, so the owner lookup goes
// through a scan; the table stays small enough that a GSI is not worth it.
func (cps *CreatorProfileService) findProfileByUserID(ctx context.Context, userID string) (*models.CreatorProfile, error) {
	var profiles []models.CreatorProfile
	if err := cps.Dynamo.ScanItems(ctx, models.CreatorProfilesTable, &profiles); err != nil {
		return nil, err
	}
	for i := range profiles {
		if profiles[i].UserID == userID {
			return &profiles[i], nil
		}
	}
	return nil, nil
}
