package api

import (
	"net/http"
	"time"

	"weather-api/internal/metrics"
	"weather-api/internal/validate"
)

type weatherResponse struct {
	Email          string     `json:"email,omitempty"`
	ZipCode        string     `json:"zipCode,omitempty"`
	WeatherDetails string     `json:"weatherDetails,omitempty"`
	Timestamp      *time.Time `json:"timestamp,omitempty"`
}

// @Summary     Get current weather
// @Description Fetches current weather for a US zip code on behalf of a registered, active user and records the request.
// @Tags        weather
// @Produce     json
// @Param       email    query     string  true  "Registered email"
// @Param       zipCode  query     string  true  "US zip code (NNNNN or NNNNN-NNNN)"
// @Success     200      {object}  weatherResponse
// @Failure     400      {object}  weatherResponse    "user not registered or invalid zip"
// @Failure     403      {object}  weatherResponse    "user is inactive"
// @Failure     500      {object}  map[string]string  "provider call failed"
// @Router      /api/v1/users/weather [get]
func (h *Handler) handleWeather(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	zipCode := r.URL.Query().Get("zipCode")

	u, err := h.userSvc.GetByEmail(r.Context(), email)
	if err != nil {
		errorResponse(w, err)
		return
	}
	if u == nil {
		writeJSON(w, http.StatusBadRequest, weatherResponse{
			WeatherDetails: "User not found. Please register and then use the API.",
		})
		return
	}
	if !u.Active {
		writeJSON(w, http.StatusForbidden, weatherResponse{
			WeatherDetails: "User is inactive. Please activate your account to use the API.",
		})
		return
	}

	if !validate.IsValidUSZipCode(zipCode) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	details, err := h.weatherSvc.Fetch(r.Context(), zipCode)
	if err != nil {
		metrics.IncFetch("error")
		errorResponse(w, err)
		return
	}
	metrics.IncFetch("ok")

	entry, err := h.weatherSvc.LogRequest(r.Context(), email, zipCode, details)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, weatherResponse{
		Email:          email,
		ZipCode:        zipCode,
		WeatherDetails: details,
		Timestamp:      &entry.Timestamp,
	})
}

// @Summary     Get weather request history
// @Tags        weather
// @Produce     json
// @Param       zipCode  query     string  false  "Filter by zip code"
// @Param       email    query     string  false  "Filter by email"
// @Success     200      {array}   weatherResponse
// @Router      /api/v1/users/history [get]
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	zipCode := r.URL.Query().Get("zipCode")
	email := r.URL.Query().Get("email")

	entries, err := h.weatherSvc.History(r.Context(), zipCode, email)
	if err != nil {
		errorResponse(w, err)
		return
	}

	res := make([]weatherResponse, 0, len(entries))
	for i := range entries {
		res = append(res, weatherResponse{
			Email:          entries[i].Email,
			ZipCode:        entries[i].ZipCode,
			WeatherDetails: entries[i].WeatherDetails,
			Timestamp:      &entries[i].Timestamp,
		})
	}

	writeJSON(w, http.StatusOK, res)
}
