package http

import (
	"encoding/json"
	"net/http"

	"github.com/morem6161/bcsme/internal/service"
)

type paymentConfirmRequest struct {
	ApplicationID int64  `json:"applicationId"`
	PaymentID     string `json:"paymentId"`
	PayerEmail    string `json:"payerEmail"`
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var sub service.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.appSvc.Submit(r.Context(), &sub)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":          true,
		"applicationId":    result.ApplicationID,
		"category":         result.Category,
		"fee":              result.Fee,
		"hasSponsorIssues": result.HasSponsorIssues,
	})
}

func (s *Server) handlePaymentConfirm(w http.ResponseWriter, r *http.Request) {
	var req paymentConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ApplicationID == 0 || req.PaymentID == "" {
		writeError(w, http.StatusBadRequest, "applicationId and paymentId are required")
		return
	}

	if err := s.appSvc.ConfirmPayment(r.Context(), req.ApplicationID, req.PaymentID, req.PayerEmail); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
