package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	uploadDir    = "uploads/profile"
	maxPhotoEdge = 512
)

// SaveProfilePhoto decodes the upload, squares it down to a small avatar
// and writes it as webp. Returns the public URL path.
func SaveProfilePhoto(admissionNumber string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	img = imaging.Fit(img, maxPhotoEdge, maxPhotoEdge, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := fmt.Sprintf("%s-%s-%s.webp",
		time.Now().Format("20060102"), admissionNumber, uuid.New().String())
	fullPath := filepath.Join(uploadDir, filename)
	if err := os.WriteFile(fullPath, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write photo: %w", err)
	}

	return "/" + filepath.ToSlash(fullPath), nil
}

// RemoveProfilePhoto deletes a previously stored avatar. A missing file is
// not an error; the pointer may be stale.
func RemoveProfilePhoto(publicURL string) error {
	if publicURL == "" {
		return nil
	}
	rel := filepath.Clean(publicURL)
	if len(rel) > 0 && rel[0] == '/' {
		rel = rel[1:]
	}
	if !filepath.IsLocal(rel) || filepath.Dir(filepath.Dir(rel)) != "uploads" {
		return fmt.Errorf("refusing to delete outside upload dir: %s", publicURL)
	}
	if err := os.Remove(rel); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
