package openweather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-api/internal/domain/weather"
)

// Client fetches current weather from the OpenWeatherMap current-weather
// endpoint. It implements weather.Provider and returns the raw response
// body without parsing it.
type Client struct {
	baseURL string
	appID   string
	http    *http.Client
}

func New(baseURL, appID string) *Client {
	return &Client{
		baseURL: baseURL,
		appID:   appID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) FetchByZip(ctx context.Context, zipCode string) (string, error) {
	u := fmt.Sprintf("%s?zip=%s&appid=%s&units=imperial",
		c.baseURL, url.QueryEscape(zipCode), url.QueryEscape(c.appID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("%w: unexpected error occurred while fetching weather data: %v", weather.ErrFetch, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: unexpected error occurred while fetching weather data: %v", weather.ErrFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: unexpected error occurred while fetching weather data: %v", weather.ErrFetch, err)
	}

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		// provider rejected the request (bad zip, bad key); surface its message
		return "", fmt.Errorf("%w: error fetching weather data: %s", weather.ErrFetch, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected error occurred while fetching weather data: status %d", weather.ErrFetch, resp.StatusCode)
	}

	return string(body), nil
}
