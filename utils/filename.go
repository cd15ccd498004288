package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadFilename builds a collision-safe name for a stored upload:
// <prefix>-<unix-millis>-<random>.<ext>, extension preserved from the
// original name and lowercased.
func UploadFilename(prefix, original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	suffix := strings.Replace(uuid.New().String(), "-", "", -1)[:12]
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixMilli(), suffix, ext)
}
