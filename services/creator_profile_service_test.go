package services

import (
	"bytes"
	"context"
	"image"
	_ "image/jpeg"
	"image/png"
	"testing"

	"creatorclasses_server/apperror"
	"creatorclasses_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrUpdateProfile_FirstProfileGetsCreatorIDOne(t *testing.T) {
	env := newTestEnv()

	profile, err := env.profiles.CreateOrUpdateProfile(context.Background(), "user-1", models.CreatorProfileDto{
		Name: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, profile.CreatorID)
	assert.Equal(t, "1", profile.ID)
	assert.Equal(t, "user-1", profile.UserID)
}

func TestCreateOrUpdateProfile_SubsequentProfilesIncrement(t *testing.T) {
	env := newTestEnv()
	env.mustCreateProfile(t, "user-1", "Alice")

	second, err := env.profiles.CreateOrUpdateProfile(context.Background(), "user-2", models.CreatorProfileDto{Name: "Bob"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.CreatorID)
}

func TestCreateOrUpdateProfile_UpsertKeepsIdentity(t *testing.T) {
	env := newTestEnv()
	created := env.mustCreateProfile(t, "user-1", "Alice")

	updated, err := env.profiles.CreateOrUpdateProfile(context.Background(), "user-1", models.CreatorProfileDto{
		Name:        "Alice Updated",
		Description: "now with videos",
		YoutubeURL:  "https://youtube.com/@alice",
	})
	require.NoError(t, err)
	assert.Equal(t, created.CreatorID, updated.CreatorID)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Alice Updated", updated.Name)
	assert.Equal(t, "https://youtube.com/@alice", updated.YoutubeURL)
}

func TestGetProfileByUserID_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.profiles.GetProfileByUserID(context.Background(), "nobody")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestGetCreator(t *testing.T) {
	env := newTestEnv()
	created := env.mustCreateProfile(t, "user-1", "Alice")

	creator, err := env.profiles.GetCreator(context.Background(), created.CreatorID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", creator.Name)

	_, err = env.profiles.GetCreator(context.Background(), 999999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListCreators(t *testing.T) {
	env := newTestEnv()
	creators, err := env.profiles.ListCreators(context.Background())
	require.NoError(t, err)
	assert.Empty(t, creators)

	env.mustCreateProfile(t, "user-1", "Alice")
	env.mustCreateProfile(t, "user-2", "Bob")

	creators, err = env.profiles.ListCreators(context.Background())
	require.NoError(t, err)
	assert.Len(t, creators, 2)
}

func TestSetProfilePicture_UploadsThumbnail(t *testing.T) {
	env := newTestEnv()
	env.mustCreateProfile(t, "user-1", "Alice")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 400, 300))))

	url, err := env.profiles.SetProfilePicture(context.Background(), "user-1", &buf)
	require.NoError(t, err)
	assert.Contains(t, url, "creator-pics/")

	profile, err := env.profiles.GetProfileByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, url, profile.ImageSrc)

	// The stored object is the re-encoded 180x180 JPEG.
	require.Len(t, env.s3.Objects, 1)
	for _, data := range env.s3.Objects {
		img, _, err := image.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 180, img.Bounds().Dx())
		assert.Equal(t, 180, img.Bounds().Dy())
	}
}

func TestSetProfilePicture_RequiresProfile(t *testing.T) {
	env := newTestEnv()

	_, err := env.profiles.SetProfilePicture(context.Background(), "nobody", bytes.NewReader(nil))
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSetProfilePicture_RejectsBadImage(t *testing.T) {
	env := newTestEnv()
	env.mustCreateProfile(t, "user-1", "Alice")

	_, err := env.profiles.SetProfilePicture(context.Background(), "user-1", bytes.NewReader([]byte("not an image")))
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
