package handlers

import (
	"encoding/base64"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"movebot/services/assistant"
	"movebot/services/transcribe"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type speechJSONRequest struct {
	Audio     string `json:"audio"` // base64
	MimeType  string `json:"mime_type"`
	SessionID string `json:"session_id"`
}

// SpeechChat accepts an audio upload, transcribes it and runs the transcript
// through the chat flow. Audio arrives either as multipart form-data (field
// "file" or "audio") or as JSON with base64 audio.
func SpeechChat(transcriber transcribe.Transcriber, svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			tmpPath   string
			mimeType  string
			sessionID string
		)

		if file, err := formAudioFile(c); err == nil && file != nil {
			sessionID = c.PostForm("session_id")
			mimeType = file.Header.Get("Content-Type")
			if mimeType == "" || mimeType == "application/octet-stream" {
				mimeType = transcribe.MIMEForFilename(file.Filename)
			}
			if mimeType == "" {
				utils.GetLogger().Error("Cannot determine MIME type", zap.String("filename", file.Filename))
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot determine audio format"})
				return
			}
			if !transcribe.AllowedMIME[mimeType] {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported audio type: %s", mimeType)})
				return
			}

			tmpPath = tempAudioPath("_" + filepath.Base(file.Filename))
			if err := c.SaveUploadedFile(file, tmpPath); err != nil {
				utils.GetLogger().Error("Failed to save audio upload", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save audio upload"})
				return
			}
		} else {
			var req speechJSONRequest
			if err := c.ShouldBindJSON(&req); err != nil || req.Audio == "" {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": `No audio file provided. Send form-data with "file" or "audio" field, or JSON with "audio" (base64) field`,
				})
				return
			}
			if req.MimeType == "" {
				c.JSON(http.StatusBadRequest, gin.H{"error": "mime_type required in JSON request"})
				return
			}
			if !transcribe.AllowedMIME[req.MimeType] {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Unsupported audio type: %s", req.MimeType)})
				return
			}

			audioBytes, err := base64.StdEncoding.DecodeString(req.Audio)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Failed to decode audio data: %v", err)})
				return
			}
			mimeType = req.MimeType
			sessionID = req.SessionID

			tmpPath = tempAudioPath(transcribe.ExtForMIME(mimeType))
			if err := os.WriteFile(tmpPath, audioBytes, 0o600); err != nil {
				utils.GetLogger().Error("Failed to write decoded audio", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save audio upload"})
				return
			}
		}
		defer func() {
			if err := os.Remove(tmpPath); err != nil {
				utils.GetLogger().Warn("Failed to remove temp audio file", zap.String("path", tmpPath), zap.Error(err))
			}
		}()

		transcript, err := transcriber.Transcribe(c.Request.Context(), tmpPath, mimeType)
		if err != nil {
			utils.GetLogger().Error("Transcription failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Transcription failed: %v", err)})
			return
		}

		resp, err := svc.Chat(c.Request.Context(), sessionID, transcript)
		if err != nil {
			utils.GetLogger().Error("Speech chat error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Speech processing failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"transcript": transcript,
			"response":   resp.Response,
			"session_id": resp.SessionID,
		})
	}
}

// formAudioFile accepts both "file" and "audio" as the form field name.
func formAudioFile(c *gin.Context) (*multipart.FileHeader, error) {
	if file, err := c.FormFile("file"); err == nil {
		return file, nil
	}
	return c.FormFile("audio")
}

func tempAudioPath(suffix string) string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("upload_%d%s", time.Now().UnixMilli(), suffix))
}
