package page

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Fetch issues one blocking GET against url and returns the page text.
// Anything other than a 200 response carrying a complete HTML document
// (the closing </html> tag must be present) is an error.
func Fetch(url string, timeout time.Duration) (string, error) {
	client := &http.Client{Timeout: timeout}

	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response from %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching %s: expected status 200, got %s", url, resp.Status)
	}

	text := string(body)
	if !strings.Contains(text, "</html>") {
		return "", fmt.Errorf("fetching %s: closing </html> tag not found in response", url)
	}

	return text, nil
}
