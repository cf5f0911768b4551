package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Lilianobi/audiophile/internal/email"
)

type EmailsHandler struct {
	mailer  email.Mailer
	timeout time.Duration
}

func NewEmailsHandler(mailer email.Mailer, timeout time.Duration) *EmailsHandler {
	return &EmailsHandler{
		mailer:  mailer,
		timeout: timeout,
	}
}

type SendEmailRequestDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// POST /api/send-emails
func (h *EmailsHandler) Send(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SendEmailRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.To == "" || req.Subject == "" {
		respondError(w, http.StatusBadRequest, "missing_fields", "to and subject are required")
		return
	}

	if err := h.mailer.Send(ctx, req.To, req.Subject, req.HTML); err != nil {
		log.Printf("email send error (request %s): %v", getRequestID(r.Context()), err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Failed to send email"})
		return
	}

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
