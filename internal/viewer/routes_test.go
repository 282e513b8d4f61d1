package viewer

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestPlot_RangesWithoutOverlay(t *testing.T) {
	server, _ := newTestServer(t)

	// Диапазоны, где нет ни точек, ни линий оверлея
	ranges := [][2]float64{{0, 0}, {6, 6}, {7, 7}, {10, 10}, {6, 9}, {0, 0.2}}

	for _, path := range []string{"/plot.png", "/plot.svg"} {
		for _, r := range ranges {
			url := fmt.Sprintf("%s%s?x1=%g&x2=%g", server.URL, path, r[0], r[1])
			resp, err := http.Get(url)
			if err != nil {
				t.Fatal(err)
			}
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()

			if resp.StatusCode != http.StatusOK {
				t.Errorf("%s x1=%g x2=%g: expected 200, got %d: %s", path, r[0], r[1], resp.StatusCode, body)
				continue
			}
			if len(body) == 0 {
				t.Errorf("%s x1=%g x2=%g: empty body", path, r[0], r[1])
			}
		}
	}
}

func TestServiceRoutes(t *testing.T) {
	server, _ := newTestServer(t)

	mux := http.NewServeMux()
	RegisterServiceRoutes(mux)
	service := httptest.NewServer(mux)
	t.Cleanup(service.Close)

	resp, err := http.Get(service.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("healthz: expected 200, got %d", resp.StatusCode)
	}
	if string(body) != "ok" {
		t.Errorf("healthz: expected \"ok\", got %q", body)
	}

	// Запрос к viewer, чтобы счётчик запросов появился в выдаче
	resp, err = http.Get(server.URL + "/api/v1/stats")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	resp, err = http.Get(service.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "asteroidgraph_viewer_http_requests_total") {
		t.Error("metrics: viewer request counter missing")
	}
}
