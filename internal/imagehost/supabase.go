// Package imagehost uploads user-submitted profile images to Supabase
// Storage and hands back their public URLs.
package imagehost

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

var ErrNotConfigured = errors.New("image hosting is not configured")

type Uploader interface {
	UploadBase64(base64Image string) (string, error)
}

type SupabaseUploader struct {
	client *storage.Client
	url    string
	bucket string
}

// NewSupabaseUploader returns nil when url/key are unset; callers treat a nil
// uploader as "no image hosting available".
func NewSupabaseUploader(url, key, bucket string) *SupabaseUploader {
	if url == "" || key == "" {
		return nil
	}
	return &SupabaseUploader{
		client: storage.NewClient(url+"/storage/v1", key, nil),
		url:    url,
		bucket: bucket,
	}
}

// UploadBase64 decodes a base64 image (with or without a data-URL prefix),
// stores it under a fresh UUID and returns the public URL.
func (u *SupabaseUploader) UploadBase64(base64Image string) (string, error) {
	if u == nil {
		return "", ErrNotConfigured
	}

	imageData := base64Image
	if i := strings.Index(imageData, "base64,"); i != -1 {
		imageData = imageData[i+len("base64,"):]
	}

	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	contentType := http.DetectContentType(raw)
	ext := "bin"
	switch contentType {
	case "image/jpeg":
		ext = "jpg"
	case "image/png":
		ext = "png"
	case "image/gif":
		ext = "gif"
	case "image/webp":
		ext = "webp"
	}

	objectPath := fmt.Sprintf("images/%s.%s", uuid.New().String(), ext)
	options := storage.FileOptions{ContentType: &contentType}

	if _, err := u.client.UploadFile(u.bucket, objectPath, bytes.NewReader(raw), options); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	publicURL := fmt.Sprintf("%s/storage/v1/object/public/%s/%s", strings.TrimRight(u.url, "/"), u.bucket, objectPath)
	return publicURL, nil
}
