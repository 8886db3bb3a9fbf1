package n8n

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleEvent() AiApplyEvent {
	resume := "r1"
	return AiApplyEvent{
		Event: EventAiApplyRequested,
		Client: EventClient{
			ID:          "c1",
			Name:        "Jane Doe",
			Email:       "jane@x.com",
			Phone:       "+1 555 000",
			LinkedinURL: "https://linkedin.com/in/janedoe",
		},
		Context: EventContext{
			WorkerID:         "w1",
			JobPreferenceIDs: []string{},
			ResumeID:         &resume,
			RequestedAt:      "2026-09-01T10:00:00Z",
		},
	}
}

func TestForwardSendsJSONPayload(t *testing.T) {
	var gotContentType, gotAuth string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	err := client.Forward(context.Background(), sampleEvent())

	assert.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Empty(t, gotAuth)

	var decoded AiApplyEvent
	assert.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, "ai_apply_requested", decoded.Event)
	assert.Equal(t, "c1", decoded.Client.ID)
	assert.Equal(t, "w1", decoded.Context.WorkerID)
	assert.Equal(t, "r1", *decoded.Context.ResumeID)
	assert.Nil(t, decoded.Context.Note)
}

func TestForwardBasicAuthWhenBothCredentialsSet(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "n8n-user", "s3cret")

	err := client.Forward(context.Background(), sampleEvent())

	assert.NoError(t, err)
	// base64("n8n-user:s3cret")
	assert.Equal(t, "Basic bjhuLXVzZXI6czNjcmV0", gotAuth)
}

func TestForwardSuppressesPartialCredentials(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// user without password: no header at all, never a half-built one
	client := NewClient(server.URL, "n8n-user", "")

	err := client.Forward(context.Background(), sampleEvent())

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestForwardRemoteRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("workflow not active"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", "")

	err := client.Forward(context.Background(), sampleEvent())

	var remoteErr *RemoteError
	assert.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadRequest, remoteErr.StatusCode)
	assert.Equal(t, "workflow not active", remoteErr.Body)
}

func TestForwardTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	client := NewClient(server.URL, "", "")

	err := client.Forward(context.Background(), sampleEvent())

	assert.Error(t, err)
	var remoteErr *RemoteError
	assert.False(t, errors.As(err, &remoteErr))
}

func TestForwardUnconfigured(t *testing.T) {
	client := NewClient("", "user", "pass")

	assert.False(t, client.Configured())
	assert.ErrorIs(t, client.Forward(context.Background(), sampleEvent()), ErrNotConfigured)
}
