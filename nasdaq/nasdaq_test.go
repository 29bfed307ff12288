package nasdaq

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/safehaven/date"
)

const sampleDataset = `{
  "dataset": {
    "dataset_code": "SP500_REAL_PRICE_MONTH",
    "column_names": ["Date", "Value"],
    "data": [
      ["1900-01-01", 6.10],
      ["1900-02-01", 6.21],
      ["1901-01-01", 6.84],
      ["1901-02-01", null]
    ]
  }
}`

// newTestClient returns a client pointed at the test server, without the
// disk cache so each test request really hits the handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{Key: "test-key", BaseURL: srv.URL, HTTP: srv.Client()}
}

func TestClient_Dataset(t *testing.T) {
	var gotPath, gotToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("api_token")
		fmt.Fprint(w, sampleDataset)
	})

	history, err := client.Dataset(PriceCode, date.Years(1900, 1901))
	if err != nil {
		t.Fatalf("Dataset() unexpected error: %v", err)
	}

	if want := "/datasets/" + PriceCode + ".json"; gotPath != want {
		t.Errorf("request path = %q, want %q", gotPath, want)
	}
	if gotToken != "test-key" {
		t.Errorf("api_token = %q, want %q", gotToken, "test-key")
	}

	// The null observation is skipped.
	if history.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", history.Len())
	}
	if v, ok := history.Get(date.MustParse("1901-01-01")); !ok || v != 6.84 {
		t.Errorf("Get(1901-01-01) = %v, %v, want 6.84, true", v, ok)
	}
}

func TestClient_Dataset_httpError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	})
	if _, err := client.Dataset(PriceCode, date.Years(1900, 1901)); err == nil {
		t.Fatal("Dataset() expected an error on 429")
	}
}

func TestClient_NewestAvailable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"dataset": {"dataset_code": "SP500_REAL_PRICE_MONTH", "newest_available_date": "2023-12-31"}}`)
	})
	got, err := client.NewestAvailable(PriceCode)
	if err != nil {
		t.Fatalf("NewestAvailable() unexpected error: %v", err)
	}
	if got.String() != "2023-12-31" {
		t.Errorf("NewestAvailable() = %s, want 2023-12-31", got)
	}
}

func TestReadKeyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.txt")
	content := "# Nasdaq Data Link API key\n\n  sEcReT-kEy  \n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	key, err := ReadKeyFile(path)
	if err != nil {
		t.Fatalf("ReadKeyFile() unexpected error: %v", err)
	}
	if key != "sEcReT-kEy" {
		t.Errorf("ReadKeyFile() = %q, want %q", key, "sEcReT-kEy")
	}
}

func TestReadKeyFile_empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "credentials.txt")
	if err := os.WriteFile(path, []byte("# only a comment\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadKeyFile(path); err == nil {
		t.Fatal("ReadKeyFile() expected an error on a key-less file")
	}
}
