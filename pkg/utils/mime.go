package utils

import "strings"

// mimeTypeToExtension maps the MIME types this service serves to their typical
// file extensions.
var mimeTypeToExtension = map[string]string{
	"application/octet-stream": ".bin",
	"audio/aac":                ".aac",
	"audio/flac":               ".flac",
	"audio/mp4":                ".m4a",
	"audio/mpeg":               ".mp3",
	"audio/ogg":                ".ogg",
	"audio/wav":                ".wav",
	"audio/webm":               ".webm",
	"image/bmp":                ".bmp",
	"image/gif":                ".gif",
	"image/jpeg":               ".jpg",
	"image/png":                ".png",
	"image/svg+xml":            ".svg",
	"image/tiff":               ".tif",
	"image/webp":               ".webp",
}

// GetExtensionFromMimeType returns a common file extension for a given MIME type.
// If no specific extension is found, it defaults to ".bin".
func GetExtensionFromMimeType(mimeType string) string {
	// Remove charset if present (e.g., "audio/mpeg; charset=binary")
	cleanedMimeType := strings.Split(mimeType, ";")[0]
	if ext, ok := mimeTypeToExtension[strings.TrimSpace(cleanedMimeType)]; ok {
		return ext
	}

	return ".bin"
}

// IsAudio reports whether the MIME type belongs to the audio family.
func IsAudio(mimeType string) bool {
	return strings.HasPrefix(mimeType, "audio/")
}

// IsImage reports whether the MIME type belongs to the image family.
func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, "image/")
}
