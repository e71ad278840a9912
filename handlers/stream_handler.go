package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghs-carnival/carnival-server/live"
)

// StreamHandler serves server-sent event feeds backed by the timer-pull
// streamer. Clients that cannot hold a websocket use these endpoints.
type StreamHandler struct {
	streamer *live.Streamer
	log      *slog.Logger
}

func NewStreamHandler(streamer *live.Streamer, log *slog.Logger) *StreamHandler {
	return &StreamHandler{streamer: streamer, log: log}
}

// StreamSport emits a sport snapshot every interval until the client goes
// away. The first event fires immediately.
func (h *StreamHandler) StreamSport(w http.ResponseWriter, r *http.Request) {
	h.streamSport(w, r, chi.URLParam(r, "sportSlug"))
}

// StreamLive is the all-sports feed. An optional sport_slug query parameter
// narrows it to one sport; left empty, the snapshot spans every sport.
func (h *StreamHandler) StreamLive(w http.ResponseWriter, r *http.Request) {
	h.streamSport(w, r, r.URL.Query().Get("sport_slug"))
}

func (h *StreamHandler) streamSport(w http.ResponseWriter, r *http.Request, sportSlug string) {
	interval, err := parseInterval(r, "interval")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	upcomingLimit := live.DefaultUpcomingLimit
	if limitStr := r.URL.Query().Get("upcoming_limit"); limitStr != "" {
		upcomingLimit, err = parsePositiveInt(limitStr, "upcoming_limit")
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		serverErrorResponse(w, r, errors.New("streaming unsupported by connection"))
		return
	}

	snapshots, err := h.streamer.SubscribeSport(r.Context(), sportSlug, interval, upcomingLimit)
	if err != nil {
		mapStreamErrorToHTTP(w, r, err)
		return
	}

	writeSSEHeaders(w)

	for snapshot := range snapshots {
		if err := writeSSEEvent(w, flusher, snapshot); err != nil {
			h.log.Debug("sport stream closed", "sport_slug", sportSlug, "error", err)
			return
		}
	}
}

// StreamMatch emits match snapshots until the match completes, disappears,
// or the client goes away. A final:true snapshot is the last event.
func (h *StreamHandler) StreamMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := getIDFromURL(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	interval, err := parseInterval(r, "interval")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		serverErrorResponse(w, r, errors.New("streaming unsupported by connection"))
		return
	}

	snapshots := h.streamer.SubscribeMatch(r.Context(), matchID, interval)

	writeSSEHeaders(w)

	for snapshot := range snapshots {
		if err := writeSSEEvent(w, flusher, snapshot); err != nil {
			h.log.Debug("match stream closed", "match_id", matchID, "error", err)
			return
		}
		if snapshot.Final {
			return
		}
	}
}

func parseInterval(r *http.Request, name string) (time.Duration, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	seconds, err := parsePositiveInt(value, name)
	if err != nil {
		return 0, err
	}
	return time.Duration(seconds) * time.Second, nil
}

func writeSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	// Disable proxy buffering so events reach clients without delay.
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
}

func writeSSEEvent(w http.ResponseWriter, flusher http.Flusher, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
		return err
	}
	flusher.Flush()
	return nil
}

func mapStreamErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, live.ErrSportNotFound) {
		notFoundResponse(w, r)
		return
	}
	serverErrorResponse(w, r, err)
}
