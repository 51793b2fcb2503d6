// Command seeder walks a running API through a short view-state session so
// view events reach the configured sink.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Config
const (
	DefaultAPIURL = "http://localhost:8080/api/v1"
)

// viewState mirrors models.ViewState on the wire
type viewState struct {
	ID              string `json:"id"`
	Region          string `json:"region"`
	SelectedMatchup *int   `json:"selected_matchup"`
	View            string `json:"view"`
}

func main() {
	apiURL := DefaultAPIURL
	if v := os.Getenv("API_URL"); v != "" {
		apiURL = v
	}
	client := &http.Client{Timeout: 5 * time.Second}

	var state viewState
	if err := call(client, http.MethodPost, apiURL+"/views", nil, &state); err != nil {
		log.Fatalf("Failed to create view: %v", err)
	}
	fmt.Printf("Created view %s (%s, %s)\n", state.ID, state.Region, state.View)

	// Each step changes one selection, like a user clicking through the dashboard
	steps := []map[string]interface{}{
		{"region": "South"},
		{"selected_matchup": 4},
		{"view": "stats"},
		{"region": "Midwest", "view": "upsets"},
		{"selected_matchup": 1},
		{"clear_matchup": true},
	}

	for i, step := range steps {
		if err := call(client, http.MethodPut, apiURL+"/views/"+state.ID, step, &state); err != nil {
			log.Fatalf("Step %d failed: %v", i+1, err)
		}
		matchup := "none"
		if state.SelectedMatchup != nil {
			matchup = fmt.Sprint(*state.SelectedMatchup)
		}
		fmt.Printf("Step %d: region=%s matchup=%s view=%s\n", i+1, state.Region, matchup, state.View)
	}

	fmt.Println("Session complete")
}

func call(client *http.Client, method, url string, body interface{}, out interface{}) error {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal: %w", err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, url, payload)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %s: %s", method, url, resp.Status, data)
	}
	return json.Unmarshal(data, out)
}
