// internal/handlers/labels.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alsaqri/phoneshop/internal/core/domain"
	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// StoredLabel is returned when a label is kept in blob storage instead of streamed.
type StoredLabel struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type labelFunc func(r *http.Request, opts domain.LabelOptions) (*domain.LabelArtifact, error)

// serveLabel renders a label and either streams it or, with ?store=true,
// uploads it and answers with a signed URL. width_mm, height_mm and dpi
// override the configured sticker size.
func (h responder) serveLabel(w http.ResponseWriter, r *http.Request, labels ports.LabelService, render labelFunc) {
	ctx := r.Context()

	q := r.URL.Query()
	format, err := domain.ParseLabelFormat(q.Get("format"))
	if err != nil {
		h.respondServiceError(w, r, err, "render label")
		return
	}
	size, err := domain.ParseLabelSize(q.Get("width_mm"), q.Get("height_mm"), q.Get("dpi"))
	if err != nil {
		h.respondServiceError(w, r, err, "render label")
		return
	}

	artifact, err := render(r, domain.LabelOptions{Format: format, Size: size})
	if err != nil {
		h.respondServiceError(w, r, err, "render label")
		return
	}

	if store, _ := strconv.ParseBool(q.Get("store")); store {
		key, err := labels.Store(ctx, artifact)
		if err != nil {
			h.respondServiceError(w, r, err, "store label")
			return
		}
		url, err := labels.URL(ctx, key)
		if err != nil {
			h.respondServiceError(w, r, err, "sign label url")
			return
		}
		h.respondJSON(w, http.StatusCreated, StoredLabel{Key: key, URL: url})
		return
	}

	w.Header().Set("Content-Type", artifact.Format.ContentType())
	w.Header().Set("Content-Disposition", `inline; filename="`+artifact.Filename()+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		h.logger.WarnContext(ctx, "failed to write label",
			slog.String("error", err.Error()))
	}
}
