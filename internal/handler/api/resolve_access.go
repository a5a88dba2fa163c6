package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fharvey/fileaccess-ms-go/internal/logger"
	"github.com/fharvey/fileaccess-ms-go/internal/port"
	"github.com/fharvey/fileaccess-ms-go/internal/usecase/file"
	"github.com/fharvey/fileaccess-ms-go/internal/validation"
	"github.com/go-chi/chi/v5"
)

type ResolveAccessRequest struct {
	FileName string `json:"fileName" validate:"required,max=255,objkeypart"`
	Owner    string `json:"owner" validate:"required,max=128,objkeypart"`
	User     string `json:"user" validate:"required,max=128"`
}

// ResolveAccessHandler serves GET /{fileName}?owner=&user=. A user on the
// file's allow-list is redirected to a presigned download link; everyone
// else gets a 403. Store failures, not-found included, all collapse to a
// 500 so callers cannot probe which files exist.
func ResolveAccessHandler(svc port.AccessResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := ResolveAccessRequest{
			FileName: chi.URLParam(r, "fileName"),
			Owner:    r.URL.Query().Get("owner"),
			User:     r.URL.Query().Get("user"),
		}

		if req.FileName == "" || req.Owner == "" || req.User == "" {
			WriteError(w, http.StatusBadRequest, "Missing fileName, owner, or user parameters", nil)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "Validation error (could not encode details)", fmt.Errorf("encoding validation errors: %w", err))
				return
			}

			// return the validation errors payload directly
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			logger.Warnf(r.Context(), "❌  Validation failed: %s", errsJSON)
			return
		}

		in := port.ResolveAccessInput{
			FileName: req.FileName,
			OwnerID:  req.Owner,
			UserID:   req.User,
		}
		out, err := svc.ResolveAccess(r.Context(), in)
		if err != nil {
			if errors.Is(err, file.ErrAccessDenied) {
				WriteError(w, http.StatusForbidden, "Access denied", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Internal server error", err)
			return
		}

		http.Redirect(w, r, out.URL, http.StatusFound)
		logger.Infof(r.Context(), "✅  Issued download link for %q (owner %q), valid until %s", req.FileName, req.Owner, out.ValidUntil.Format("2006-01-02 15:04:05 MST"))
	}
}
