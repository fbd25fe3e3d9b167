package fileshare

import (
	"context"
	"encoding/json"
	"time"
)

// The transfer is simulated: there is no remote drive behind it, only a
// paced progress script with the same stages the storefront has always
// shown. The pacing loop stops the moment its context is cancelled, so a
// client navigating away mid-upload aborts the simulation instead of
// leaving a timer running.

var defaultStages = []string{
	"Establishing SSL/TLS Handshake...",
	"Allocating Cloud Buffer...",
	"Encrypting Data Blocks...",
	"Syncing with Google Drive API...",
	"Finalizing Permissions...",
}

const (
	progressStep = 2
	tickInterval = 80 * time.Millisecond
)

// ProgressEvent is one frame of the upload progress stream.
type ProgressEvent struct {
	UploadID string `json:"uploadId"`
	Percent  int    `json:"percent"`
	Stage    string `json:"stage"`
	Done     bool   `json:"done"`
}

// StageFor maps a percentage onto its stage label: one stage per 20%.
func StageFor(stages []string, percent int) string {
	if len(stages) == 0 {
		return ""
	}
	idx := percent / 20
	if idx >= len(stages) {
		idx = len(stages) - 1
	}
	return stages[idx]
}

// runSimulation paces 0→100 in fixed steps, broadcasting each frame to the
// upload's room. Returns false if ctx was cancelled before completion.
func runSimulation(ctx context.Context, hub *Hub, uploadID string, stages []string) bool {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for percent := 0; percent <= 100; percent += progressStep {
		select {
		case <-ctx.Done():
			return false
		case <-ticker.C:
		}

		event := ProgressEvent{
			UploadID: uploadID,
			Percent:  percent,
			Stage:    StageFor(stages, percent),
			Done:     percent == 100,
		}
		if data, err := json.Marshal(event); err == nil && hub != nil {
			hub.Broadcast(uploadID, data)
		}
	}
	return true
}
