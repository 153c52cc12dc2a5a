package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// LocalImageStore writes images to a directory served under URLPrefix.
type LocalImageStore struct {
	dir       string
	urlPrefix string
}

func NewLocalImageStore(dir, urlPrefix string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalImageStore{dir: dir, urlPrefix: strings.TrimRight(urlPrefix, "/")}, nil
}

func (s *LocalImageStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	path := filepath.Join(s.dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return s.urlPrefix + "/" + name, nil
}

func (s *LocalImageStore) Remove(ctx context.Context, name string) error {
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return ErrImageNotFound
		}
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GCSImageStore keeps images as public objects in a Cloud Storage bucket.
type GCSImageStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func NewGCSImageStore(client *storage.Client, bucket, prefix string) *GCSImageStore {
	return &GCSImageStore{client: client, bucket: bucket, prefix: strings.Trim(prefix, "/")}
}

func (s *GCSImageStore) objectName(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func (s *GCSImageStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	object := s.objectName(name)
	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "public, max-age=86400"

	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("gcs write %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("gcs close %s: %w", object, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}

func (s *GCSImageStore) Remove(ctx context.Context, name string) error {
	err := s.client.Bucket(s.bucket).Object(s.objectName(name)).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return ErrImageNotFound
	}
	return err
}

// CloudinaryImageStore uploads images to a Cloudinary folder.
type CloudinaryImageStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryImageStore(cloudName, apiKey, apiSecret, folder string) (*CloudinaryImageStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryImageStore{cld: cld, folder: strings.Trim(folder, "/")}, nil
}

func publicID(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

func (s *CloudinaryImageStore) Put(ctx context.Context, name, contentType string, r io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		PublicID:     publicID(name),
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to Cloudinary: %w", err)
	}
	if res.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", res.Error.Message)
	}
	return res.SecureURL, nil
}

func (s *CloudinaryImageStore) Remove(ctx context.Context, name string) error {
	id := publicID(name)
	if s.folder != "" {
		id = s.folder + "/" + id
	}
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: id})
	if err != nil {
		return fmt.Errorf("failed to delete from Cloudinary: %w", err)
	}
	if res.Result == "not found" {
		return ErrImageNotFound
	}
	return nil
}
