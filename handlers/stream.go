package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"movebot/services/assistant"
	"movebot/services/transcribe"
	"movebot/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var speechUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// Origin filtering happens in the CORS middleware for the REST routes;
	// the widget connects cross-origin here too.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// streamEvent is a single client message on the speech websocket.
type streamEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"session_id,omitempty"`
	Mime      string `json:"mime,omitempty"`
	Chunk     string `json:"chunk,omitempty"` // base64 audio
}

type audioStream struct {
	mime   string
	ext    string
	chunks []string
}

// SpeechStream runs the realtime speech loop over a websocket. The client
// sends start_stream, any number of audio_chunk events carrying base64 audio,
// then stop_stream; the server reassembles the audio, transcribes it, runs the
// transcript through the chat flow and emits a speech_result with the reply.
func SpeechStream(transcriber transcribe.Transcriber, svc assistant.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := speechUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			utils.GetLogger().Error("Websocket upgrade failed", zap.Error(err))
			return
		}
		defer conn.Close()

		streamWrite(conn, gin.H{"event": "connected", "ok": true})

		// Streams are scoped to the connection; a widget holds one socket.
		streams := make(map[string]*audioStream)

		for {
			var ev streamEvent
			if err := conn.ReadJSON(&ev); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					utils.GetLogger().Warn("Speech stream closed unexpectedly", zap.Error(err))
				}
				return
			}

			sessionID := ev.SessionID
			if sessionID == "" {
				sessionID = "default"
			}

			switch ev.Event {
			case "start_stream":
				mime := ev.Mime
				if mime == "" {
					mime = "audio/webm"
				}
				if !transcribe.AllowedMIME[mime] {
					streamError(conn, fmt.Sprintf("Unsupported audio type: %s", mime))
					continue
				}
				streams[sessionID] = &audioStream{mime: mime, ext: transcribe.ExtForMIME(mime)}
				streamWrite(conn, gin.H{"event": "stream_started", "session_id": sessionID})

			case "audio_chunk":
				if ev.Chunk == "" {
					continue
				}
				stream, ok := streams[sessionID]
				if !ok {
					streamError(conn, "Stream not initialized")
					continue
				}
				stream.chunks = append(stream.chunks, ev.Chunk)
				streamWrite(conn, gin.H{"event": "chunk_ack", "session_id": sessionID, "chunks": len(stream.chunks)})

			case "stop_stream":
				stream, ok := streams[sessionID]
				if !ok {
					streamError(conn, "No active stream")
					continue
				}
				delete(streams, sessionID)
				finalizeStream(c, conn, transcriber, svc, sessionID, stream)

			default:
				streamError(conn, fmt.Sprintf("Unknown event: %s", ev.Event))
			}
		}
	}
}

// finalizeStream reassembles the buffered audio, transcribes it and emits the
// assistant reply.
func finalizeStream(c *gin.Context, conn *websocket.Conn, transcriber transcribe.Transcriber, svc assistant.Service, sessionID string, stream *audioStream) {
	audioBytes, err := base64.StdEncoding.DecodeString(strings.Join(stream.chunks, ""))
	if err != nil {
		utils.GetLogger().Error("Failed to decode streamed audio", zap.Error(err))
		streamError(conn, "Failed to finalize speech")
		return
	}

	tmpPath := filepath.Join(os.TempDir(), fmt.Sprintf("realtime_%d%s", time.Now().UnixMilli(), stream.ext))
	if err := os.WriteFile(tmpPath, audioBytes, 0o600); err != nil {
		utils.GetLogger().Error("Failed to write streamed audio", zap.Error(err))
		streamError(conn, "Failed to finalize speech")
		return
	}
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			utils.GetLogger().Warn("Failed to remove temp audio file", zap.String("path", tmpPath), zap.Error(err))
		}
	}()

	transcript, err := transcriber.Transcribe(c.Request.Context(), tmpPath, stream.mime)
	if err != nil {
		utils.GetLogger().Error("Stream transcription failed", zap.Error(err))
		streamError(conn, "Failed to finalize speech")
		return
	}

	resp, err := svc.Chat(c.Request.Context(), sessionID, transcript)
	if err != nil {
		utils.GetLogger().Error("Stream chat error", zap.Error(err))
		streamError(conn, "Failed to finalize speech")
		return
	}

	streamWrite(conn, gin.H{
		"event":      "speech_result",
		"session_id": resp.SessionID,
		"transcript": transcript,
		"response":   resp.Response,
	})
}

func streamError(conn *websocket.Conn, message string) {
	streamWrite(conn, gin.H{"event": "error", "message": message})
}

func streamWrite(conn *websocket.Conn, payload gin.H) {
	if err := conn.WriteJSON(payload); err != nil {
		utils.GetLogger().Warn("Websocket write failed", zap.Error(err))
	}
}
