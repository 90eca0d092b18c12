package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"creatorclasses_server/apperror"
	"creatorclasses_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// maxWriteAttempts bounds the retry loop around version-guarded writes of a
// class aggregate.
const maxWriteAttempts = 3

type ClassService struct {
	Dynamo   *DynamoService
	S3       *S3Service
	Notifier *NotificationService
	Profiles *CreatorProfileService
}

// ListClasses returns every class document with its embedded videos.
func (cs *ClassService) ListClasses(ctx context.Context) ([]models.CreatorClass, error) {
	var classes []models.CreatorClass
	if err := cs.Dynamo.ScanItems(ctx, models.CreatorClassesTable, &classes); err != nil {
		return nil, err
	}
	if classes == nil {
		classes = []models.CreatorClass{}
	}
	return classes, nil
}

// GetClass retrieves a single class by id.
func (cs *ClassService) GetClass(ctx context.Context, classID string) (*models.CreatorClass, error) {
	item, err := cs.Dynamo.GetItem(ctx, models.CreatorClassesTable, StringKey("id", classID))
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NotFound("class", classID)
	}

	var class models.CreatorClass
	if err := attributevalue.UnmarshalMap(item, &class); err != nil {
		return nil, fmt.Errorf("failed to unmarshal class: %w", err)
	}
	return &class, nil
}

// ListClassesByCreator returns all classes owned by one creator, or a
// not-found error when the creator has none.
func (cs *ClassService) ListClassesByCreator(ctx context.Context, creatorID int) ([]models.CreatorClass, error) {
	all, err := cs.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	var classes []models.CreatorClass
	for _, class := range all {
		if class.CreatorID == creatorID {
			classes = append(classes, class)
		}
	}
	if len(classes) == 0 {
		return nil, apperror.NotFound("classes for creator", strconv.Itoa(creatorID))
	}
	return classes, nil
}

// CreateOrUpdateClass upserts a class by the id in the dto. An unknown or
// empty id creates a new class owned by the caller's creator profile, with
// the id issued by the class sequence. An existing id overwrites name and
// description only, and only for the owning creator. Returns the resolved id.
func (cs *ClassService) CreateOrUpdateClass(ctx context.Context, userID string, dto models.CreatorClassDto) (string, error) {
	profile, err := cs.Profiles.findProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", apperror.Forbidden("a creator profile is required to manage classes")
	}

	if dto.ClassID != "" {
		existing, err := cs.GetClass(ctx, dto.ClassID)
		if err == nil {
			if existing.CreatorID != profile.CreatorID {
				return "", apperror.Forbidden("class belongs to another creator")
			}
			existing.Name = dto.Name
			existing.Description = dto.Description
			if err := cs.putClassVersioned(ctx, existing); err != nil {
				return "", err
			}
			log.Printf("Updated class %s for creator %d", existing.ID, profile.CreatorID)
			return existing.ID, nil
		}
		if !errors.Is(err, apperror.ErrNotFound) {
			return "", err
		}
	}

	id, err := cs.Dynamo.NextSequence(ctx, models.CountersTable, models.SequenceClassID)
	if err != nil {
		return "", err
	}

	class := &models.CreatorClass{
		ID:          strconv.FormatInt(id, 10),
		Name:        dto.Name,
		Description: dto.Description,
		CreatorID:   profile.CreatorID,
		Videos:      []models.Video{},
		Version:     1,
	}
	err = cs.Dynamo.PutItemConditional(ctx, models.CreatorClassesTable, class, "attribute_not_exists(id)", nil)
	if err != nil {
		return "", err
	}

	log.Printf("Created class %s for creator %d", class.ID, profile.CreatorID)
	return class.ID, nil
}

// AddVideo appends a video to a class. The new video id is max(existing)+1,
// or 1 for an empty class, and the aggregate write is version-guarded so two
// concurrent appends cannot hand out the same id. After the write commits a
// video-added event is published for subscribers.
func (cs *ClassService) AddVideo(ctx context.Context, userID, classID string, dto models.VideoDto) (*models.Video, error) {
	if dto.Seconds < 0 {
		return nil, apperror.ValidationFailed("seconds", "seconds must not be negative")
	}

	profile, err := cs.Profiles.findProfileByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.Forbidden("a creator profile is required to manage classes")
	}

	var video models.Video
	for attempt := 0; ; attempt++ {
		class, err := cs.GetClass(ctx, classID)
		if err != nil {
			return nil, err
		}
		if class.CreatorID != profile.CreatorID {
			return nil, apperror.Forbidden("class belongs to another creator")
		}

		video = models.Video{
			VideoID:     strconv.Itoa(nextVideoID(class.Videos)),
			Name:        dto.Name,
			Description: dto.Description,
			VideoSrc:    dto.VideoSrc,
			Seconds:     dto.Seconds,
		}
		class.Videos = append(class.Videos, video)

		err = cs.putClassAtVersion(ctx, class)
		if err == nil {
			break
		}
		if IsConditionFailed(err) && attempt < maxWriteAttempts-1 {
			continue
		}
		return nil, err
	}

	if err := cs.Notifier.PublishVideoAdded(ctx, classID); err != nil {
		// The video is already persisted; surface the publish failure as a
		// dependency error instead of pretending the whole call failed.
		return &video, apperror.Dependency("video stored but notification publish failed", err)
	}

	return &video, nil
}

// SetClassPicture uploads the image and records its URL on the class.
func (cs *ClassService) SetClassPicture(ctx context.Context, userID, classID string, image io.Reader, contentType string) (string, error) {
	profile, err := cs.Profiles.findProfileByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	if profile == nil {
		return "", apperror.Forbidden("a creator profile is required to manage classes")
	}

	class, err := cs.GetClass(ctx, classID)
	if err != nil {
		return "", err
	}
	if class.CreatorID != profile.CreatorID {
		return "", apperror.Forbidden("class belongs to another creator")
	}

	key := fmt.Sprintf("class-pics/%s-%d", classID, time.Now().Unix())
	url, err := cs.S3.Upload(ctx, key, image, contentType)
	if err != nil {
		return "", err
	}

	class.ImageSrc = url
	if err := cs.putClassVersioned(ctx, class); err != nil {
		return "", err
	}
	return url, nil
}

// putClassVersioned performs one version-guarded write and maps a lost race
// to a conflict error the caller can retry against a fresh read.
func (cs *ClassService) putClassVersioned(ctx context.Context, class *models.CreatorClass) error {
	err := cs.putClassAtVersion(ctx, class)
	if err != nil && IsConditionFailed(err) {
		return apperror.Conflict("class", class.ID)
	}
	return err
}

// putClassAtVersion writes the class only if the stored version still matches
// the version it was read at, then bumps it.
func (cs *ClassService) putClassAtVersion(ctx context.Context, class *models.CreatorClass) error {
	readVersion := class.Version
	class.Version++
	err := cs.Dynamo.PutItemConditional(ctx, models.CreatorClassesTable, class,
		"version = :v",
		map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(readVersion, 10)},
		})
	if err != nil {
		class.Version = readVersion
	}
	return err
}

// nextVideoID computes max(existing video ids)+1, or 1 for an empty class.
func nextVideoID(videos []models.Video) int {
	max := 0
	for _, v := range videos {
		if id, err := strconv.Atoi(v.VideoID); err == nil && id > max {
			max = id
		}
	}
	return max + 1
}
