package interfaces

import "context"

// Transcriber converts recorded audio into UTF-8 text. The pipeline never
// inspects audio itself; transcription is an external collaborator.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}
