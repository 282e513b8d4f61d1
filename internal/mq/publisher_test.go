package mq

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
)

func TestNewMessage(t *testing.T) {
	payload := CatalogImportedPayload{BatchID: uuid.New(), Source: "MPCORB.DAT", Rows: 10}
	msg := NewMessage(MessageTypeCatalogImported, payload)

	if _, err := uuid.Parse(msg.ID); err != nil {
		t.Errorf("message ID should be a UUID: %v", err)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp should be set")
	}

	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Type != "catalog.imported" {
		t.Errorf("expected catalog.imported, got %s", decoded.Type)
	}
	if decoded.Payload["rows"] != float64(10) {
		t.Errorf("expected rows=10, got %v", decoded.Payload["rows"])
	}
}

func TestConnect_NotConfigured(t *testing.T) {
	t.Setenv("RABBITMQ_URL", "")

	conn, pub := Connect(context.Background(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	if conn != nil || pub != nil {
		t.Error("expected nil connection and publisher without RABBITMQ_URL")
	}
}

func TestConnection_ClosedRejectsChannel(t *testing.T) {
	c := &Connection{logger: slog.New(slog.NewTextHandler(io.Discard, nil)), closed: true}

	err := c.WithChannel(context.Background(), nil)
	if !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
