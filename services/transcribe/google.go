package transcribe

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	speech "cloud.google.com/go/speech/apiv1"
	"google.golang.org/api/option"
	speechpb "google.golang.org/genproto/googleapis/cloud/speech/v1"
)

// GoogleTranscriber uses Google Cloud Speech-to-Text. Uploads are normalized
// to LINEAR16 16 kHz mono with ffmpeg before recognition.
type GoogleTranscriber struct {
	CredentialsFile string
	Language        string
}

func NewGoogleTranscriber(credentialsFile string) *GoogleTranscriber {
	return &GoogleTranscriber{
		CredentialsFile: credentialsFile,
		Language:        "en-US",
	}
}

func convertAudio(inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found in system PATH: %v", err)
	}

	cmd := exec.Command("ffmpeg",
		"-y",
		"-i", inputPath,
		"-acodec", "pcm_s16le",
		"-ac", "1",
		"-ar", "16000",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %s", stderr.String())
	}
	return nil
}

func (t *GoogleTranscriber) Transcribe(ctx context.Context, path string, mimeType string) (string, error) {
	if !AllowedMIME[mimeType] {
		return "", fmt.Errorf("unsupported audio MIME type: %s", mimeType)
	}

	converted, err := os.CreateTemp("", "converted-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(converted.Name())
	converted.Close()

	if err := convertAudio(path, converted.Name()); err != nil {
		return "", err
	}

	audioData, err := os.ReadFile(converted.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read converted audio: %w", err)
	}

	var opts []option.ClientOption
	if t.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(t.CredentialsFile))
	}
	client, err := speech.NewClient(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to initialize speech client: %w", err)
	}
	defer client.Close()

	resp, err := client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   16000,
			LanguageCode:      t.Language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{
				Content: audioData,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}

	var transcript strings.Builder
	for _, result := range resp.Results {
		for _, alt := range result.Alternatives {
			transcript.WriteString(alt.Transcript + " ")
		}
	}
	text := strings.TrimSpace(transcript.String())
	if text == "" {
		return "", fmt.Errorf("empty transcription result")
	}
	return text, nil
}
