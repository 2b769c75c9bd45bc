package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"hotelinfo/metrics"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// BlobStore uploads binary content and returns its public URL. Delete removes
// a blob stored under the same folder and name.
type BlobStore interface {
	Upload(ctx context.Context, folder, name string, content io.Reader) (string, error)
	Delete(ctx context.Context, folder, name string) error
}

type CloudinaryStore struct {
	cld        *cloudinary.Cloudinary
	rootFolder string
}

func NewCloudinaryStore(cld *cloudinary.Cloudinary, rootFolder string) *CloudinaryStore {
	return &CloudinaryStore{cld: cld, rootFolder: rootFolder}
}

func (s *CloudinaryStore) Upload(ctx context.Context, folder, name string, content io.Reader) (string, error) {
	if s.cld == nil {
		return "", fmt.Errorf("cloudinary is not configured")
	}
	resp, err := s.cld.Upload.Upload(ctx, content, uploader.UploadParams{
		Folder:   s.folderPath(folder),
		PublicID: blobID(name),
	})
	metrics.ObserveUpload(err)
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, folder, name string) error {
	if s.cld == nil {
		return fmt.Errorf("cloudinary is not configured")
	}
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: s.publicID(folder, name)})
	if err != nil {
		return err
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return nil
}

// publicID is the id cloudinary assigns to name uploaded into folder.
func (s *CloudinaryStore) publicID(folder, name string) string {
	return s.folderPath(folder) + "/" + blobID(name)
}

func blobID(name string) string {
	return strings.TrimSuffix(name, ".jpg")
}

func (s *CloudinaryStore) folderPath(folder string) string {
	if s.rootFolder == "" {
		return folder
	}
	return s.rootFolder + "/" + folder
}

// NewBlobName returns a unique blob name for an uploaded image.
func NewBlobName() string {
	return uuid.NewString() + ".jpg"
}
