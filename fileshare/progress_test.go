package fileshare

import (
	"context"
	"testing"
	"time"
)

func TestStageFor(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "Establishing SSL/TLS Handshake..."},
		{19, "Establishing SSL/TLS Handshake..."},
		{20, "Allocating Cloud Buffer..."},
		{40, "Encrypting Data Blocks..."},
		{60, "Syncing with Google Drive API..."},
		{80, "Finalizing Permissions..."},
		{100, "Finalizing Permissions..."}, // clamps at the last stage
	}
	for _, tt := range tests {
		if got := StageFor(defaultStages, tt.percent); got != tt.want {
			t.Errorf("StageFor(%d) = %q, want %q", tt.percent, got, tt.want)
		}
	}

	if got := StageFor(nil, 50); got != "" {
		t.Errorf("StageFor with no stages should be empty, got %q", got)
	}
}

func TestRunSimulationStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already cancelled: the loop must exit on its first tick

	done := make(chan bool, 1)
	go func() {
		done <- runSimulation(ctx, nil, "upl-1", defaultStages)
	}()

	select {
	case completed := <-done:
		if completed {
			t.Fatal("cancelled simulation reported completion")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("simulation did not stop after cancellation")
	}
}

func TestHubBroadcastToWatcher(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "upl-42",
	}
	hub.register <- client

	hub.Broadcast("upl-42", []byte(`{"percent":50}`))

	select {
	case got := <-client.Send:
		if string(got) != `{"percent":50}` {
			t.Fatalf("unexpected payload: %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for broadcast")
	}
}
