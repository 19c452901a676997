package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const outfitFolder = "outfits"

// CloudinaryPhotoStore implements PhotoStore on Cloudinary. The public ID
// is derived from the owner, so re-saving overwrites the previous photo.
type CloudinaryPhotoStore struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryPhotoStore creates a PhotoStore over the given client.
func NewCloudinaryPhotoStore(cld *cloudinary.Cloudinary) *CloudinaryPhotoStore {
	return &CloudinaryPhotoStore{cld: cld}
}

func photoID(owner string) string {
	return outfitFolder + "/" + owner
}

// Save uploads the photo, replacing any previous one for the owner.
func (s *CloudinaryPhotoStore) Save(ctx context.Context, owner string, jpeg []byte) error {
	overwrite := true
	_, err := s.cld.Upload.Upload(ctx, bytes.NewReader(jpeg), uploader.UploadParams{
		PublicID:  photoID(owner),
		Overwrite: api.Bool(overwrite),
	})
	if err != nil {
		return fmt.Errorf("photo store: failed to upload: %w", err)
	}
	return nil
}

// Load fetches the owner's retained photo bytes.
func (s *CloudinaryPhotoStore) Load(ctx context.Context, owner string) ([]byte, error) {
	img, err := s.cld.Image(photoID(owner))
	if err != nil {
		return nil, fmt.Errorf("photo store: failed to build asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return nil, fmt.Errorf("photo store: failed to build URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("photo store: failed to build request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("photo store: failed to fetch photo: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("photo store: no retained photo (status %d)", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Delete removes the owner's retained photo.
func (s *CloudinaryPhotoStore) Delete(ctx context.Context, owner string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: photoID(owner)})
	if err != nil {
		return fmt.Errorf("photo store: failed to delete: %w", err)
	}
	return nil
}
