package services

import (
	"errors"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nfnt/resize"

	"github.com/The-AI-Consultant/LA-RIDE-DU-SASQUATCH/utils"
)

const (
	// MaxUploadBytes mirrors the client-side limit communicated to teams.
	MaxUploadBytes = 10 << 20

	thumbnailSize    = 480
	thumbnailQuality = 85
)

var (
	ErrNotImage = errors.New("only image files are allowed")
	ErrTooLarge = errors.New("file exceeds the 10MB limit")
)

// Uploader writes incoming images into the public upload directory and
// produces a gallery thumbnail next to each original.
type Uploader struct {
	Dir string
}

func NewUploader(dir string) *Uploader {
	return &Uploader{Dir: dir}
}

// Save validates and stores one uploaded image, returning the
// server-relative URL ("/uploads/<name>") it will be served under.
// Validation failures are ErrNotImage / ErrTooLarge; anything else is an
// I/O problem.
func (u *Uploader) Save(c *gin.Context, file *multipart.FileHeader, prefix string) (string, error) {
	if file.Size > MaxUploadBytes {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return "", ErrNotImage
	}

	if err := os.MkdirAll(u.Dir, 0o755); err != nil {
		return "", err
	}

	name := utils.UploadFilename(prefix, file.Filename)
	dst := filepath.Join(u.Dir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}

	u.writeThumbnail(dst)

	return "/uploads/" + name, nil
}

// Remove deletes a previously saved upload and its thumbnail; used to
// clean up when the database write after a successful save fails.
func (u *Uploader) Remove(url string) {
	name := filepath.Base(url)
	_ = os.Remove(filepath.Join(u.Dir, name))
	_ = os.Remove(filepath.Join(u.Dir, thumbnailName(name)))
}

// writeThumbnail renders <name>_thumb.jpg beside the original. A photo
// that cannot be decoded simply has no thumbnail; the upload stands.
func (u *Uploader) writeThumbnail(path string) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		log.Printf("thumbnail skipped for %s: %v", filepath.Base(path), err)
		return
	}

	thumb := resize.Thumbnail(thumbnailSize, thumbnailSize, img, resize.Lanczos3)

	out, err := os.Create(filepath.Join(u.Dir, thumbnailName(filepath.Base(path))))
	if err != nil {
		return
	}
	defer out.Close()

	if err := jpeg.Encode(out, thumb, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		log.Printf("thumbnail encode failed for %s: %v", filepath.Base(path), err)
	}
}

func thumbnailName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "_thumb.jpg"
}
