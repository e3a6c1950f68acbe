package transcribe

import (
	"context"
	"path/filepath"
	"strings"
)

// Transcriber converts a recorded audio file into text.
type Transcriber interface {
	// Transcribe reads the audio file at path and returns the transcript.
	// mimeType is the declared content type of the upload.
	Transcribe(ctx context.Context, path string, mimeType string) (string, error)
}

// AllowedMIME lists the audio uploads the speech endpoint accepts.
var AllowedMIME = map[string]bool{
	"audio/mpeg":  true,
	"audio/wav":   true,
	"audio/x-wav": true,
	"audio/webm":  true,
	"audio/ogg":   true,
	"audio/x-m4a": true,
	"audio/mp4":   true,
}

var extByMIME = map[string]string{
	"audio/webm":  ".webm",
	"audio/wav":   ".wav",
	"audio/x-wav": ".wav",
	"audio/ogg":   ".ogg",
	"audio/mpeg":  ".mp3",
	"audio/x-m4a": ".m4a",
	"audio/mp4":   ".mp4",
}

// ExtForMIME maps a MIME type to a file extension for temp files.
func ExtForMIME(mimeType string) string {
	if ext, ok := extByMIME[mimeType]; ok {
		return ext
	}
	return ".webm"
}

// MIMEForFilename guesses the MIME type from an uploaded filename when the
// client did not declare one. Returns "" when unknown.
func MIMEForFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		return "audio/wav"
	case ".mp3":
		return "audio/mpeg"
	case ".webm":
		return "audio/webm"
	case ".ogg":
		return "audio/ogg"
	case ".m4a":
		return "audio/x-m4a"
	case ".mp4":
		return "audio/mp4"
	}
	return ""
}
