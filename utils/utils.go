package utils

import (
	rndm "math/rand"
	"os"
	"slices"
	"strconv"
	"time"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

// TimestampID returns the current time in milliseconds as a string.
// Catalog entries use this as their id, matching what the admin form
// has always produced.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// --- Slice Helpers ---

func Contains(slice []string, value string) bool {
	return slices.Contains(slice, value)
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
