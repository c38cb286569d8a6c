package handler

import "net/http"

// GetSubjectsHandler - объединённый список предметов из MySQL и MongoDB
func (h *Handler) GetSubjectsHandler(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjects.FetchAllSubjects(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, subjects)
}
