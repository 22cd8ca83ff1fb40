package steam_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bapplebo/steamclipexporter/internal/steam"
)

func TestNewRequiresBaseURL(t *testing.T) {
	if _, err := steam.New("  ", time.Second); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestLookupSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/appdetails" {
			t.Fatalf("unexpected path %q", r.URL.Path)
		}
		if r.URL.Query().Get("appids") != "238960" {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"238960":{"success":true,"data":{"name":"Path of Exile"}}}`))
	}))
	t.Cleanup(server.Close)

	client, err := steam.New(server.URL, time.Second)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	details, err := client.Lookup(context.Background(), 238960)
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if details.Name != "Path of Exile" || details.AppID != 238960 {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestLookupUnresolvedVariants(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusInternalServerError, ""},
		{"success false", http.StatusOK, `{"238960":{"success":false}}`},
		{"missing entry", http.StatusOK, `{"999":{"success":true,"data":{"name":"Other"}}}`},
		{"missing name", http.StatusOK, `{"238960":{"success":true,"data":{}}}`},
		{"malformed json", http.StatusOK, `{"238960":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(server.Close)

			client, err := steam.New(server.URL, time.Second)
			if err != nil {
				t.Fatal(err)
			}
			_, err = client.Lookup(context.Background(), 238960)
			if !errors.Is(err, steam.ErrUnresolved) {
				t.Fatalf("error = %v, want ErrUnresolved", err)
			}
		})
	}
}

func TestLookupTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force connection refused

	client, err := steam.New(server.URL, time.Second)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := client.Lookup(context.Background(), 1); !errors.Is(err, steam.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
}
