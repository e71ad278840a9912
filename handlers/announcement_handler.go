package handlers

import (
	"net/http"

	"github.com/ghs-carnival/carnival-server/services"
)

type AnnouncementHandler struct {
	announcementService services.AnnouncementService
}

func NewAnnouncementHandler(announcementService services.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

func (h *AnnouncementHandler) ListAnnouncements(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := parsePositiveInt(limitStr, "limit")
		if err != nil {
			badRequestResponse(w, r, err)
			return
		}
		limit = parsed
	}

	announcements, err := h.announcementService.ListAnnouncements(r.Context(), limit)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"items": announcements}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AnnouncementHandler) CreateAnnouncement(w http.ResponseWriter, r *http.Request) {
	var input services.AnnouncementInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	announcement, err := h.announcementService.CreateAnnouncement(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"item": announcement}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AnnouncementHandler) UpdateAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcementID, err := getIDFromURL(r, "announcementID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.AnnouncementInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	announcement, err := h.announcementService.UpdateAnnouncement(r.Context(), announcementID, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"item": announcement}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AnnouncementHandler) DeleteAnnouncement(w http.ResponseWriter, r *http.Request) {
	announcementID, err := getIDFromURL(r, "announcementID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.announcementService.DeleteAnnouncement(r.Context(), announcementID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "announcement deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
