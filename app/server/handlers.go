package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	competitiondomain "github.com/ksicht/standings/app/modules/competition/domain"
	stickerservice "github.com/ksicht/standings/app/modules/stickers/application"
	"github.com/ksicht/standings/app/observability/attr"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Enqueuer schedules background sticker resolution.
type Enqueuer interface {
	EnqueueResolve(ctx context.Context, seriesID competitiondomain.SeriesID) (int64, error)
}

type stickerAPI struct {
	service stickerservice.Service
	queue   Enqueuer
	logger  *slog.Logger
}

func (a *stickerAPI) seriesResults(w http.ResponseWriter, r *http.Request) {
	seriesID, ok := seriesParam(w, r)
	if !ok {
		return
	}
	result, err := a.service.GetSeriesResults(r.Context(), seriesID, r.URL.Query().Get("all") != "true")
	if err != nil {
		a.internalError(w, r, err)
		return
	}
	if result.IsFailure() {
		failure := *result.Failure
		status := http.StatusNotFound
		if strings.HasPrefix(failure.Reason, stickerservice.ErrResultsNotPublished.Error()) {
			status = http.StatusForbidden
		}
		writeJSON(w, status, map[string]string{"error": failure.Reason})
		return
	}
	writeJSON(w, http.StatusOK, *result.Success)
}

func (a *stickerAPI) seriesResultsXLSX(w http.ResponseWriter, r *http.Request) {
	seriesID, ok := seriesParam(w, r)
	if !ok {
		return
	}
	body, err := a.service.ExportSeriesResults(r.Context(), seriesID)
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "results-"+seriesID.String()+".xlsx"))
	_, _ = w.Write(body)
}

func (a *stickerAPI) progressChart(w http.ResponseWriter, r *http.Request) {
	seriesID, ok := seriesParam(w, r)
	if !ok {
		return
	}
	appID, err := competitiondomain.ParseApplicationID(chi.URLParam(r, "applicationID"))
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}
	body, err := a.service.ScoreProgressChart(r.Context(), seriesID, appID)
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(body)
}

func (a *stickerAPI) envelopes(w http.ResponseWriter, r *http.Request) {
	seriesID, ok := seriesParam(w, r)
	if !ok {
		return
	}
	envelopes, err := a.service.SeriesEnvelopes(r.Context(), seriesID)
	if err != nil {
		a.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, envelopes)
}

func (a *stickerAPI) stickers(w http.ResponseWriter, r *http.Request) {
	stickers, err := a.service.ListStickers(r.Context())
	if err != nil {
		a.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stickers)
}

func (a *stickerAPI) enqueueResolve(w http.ResponseWriter, r *http.Request) {
	seriesID, ok := seriesParam(w, r)
	if !ok {
		return
	}
	if a.queue == nil {
		http.Error(w, "job queue disabled", http.StatusServiceUnavailable)
		return
	}
	jobID, err := a.queue.EnqueueResolve(r.Context(), seriesID)
	if err != nil {
		a.internalError(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]int64{"job_id": jobID})
}

// serviceError maps not-found sentinels to 404.
func (a *stickerAPI) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, stickerservice.ErrSeriesNotFound),
		errors.Is(err, stickerservice.ErrGradeNotFound),
		errors.Is(err, stickerservice.ErrApplicationNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		a.internalError(w, r, err)
	}
}

func (a *stickerAPI) internalError(w http.ResponseWriter, r *http.Request, err error) {
	a.logger.ErrorContext(r.Context(), "Request failed",
		attr.String("path", r.URL.Path),
		attr.Error(err),
	)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func seriesParam(w http.ResponseWriter, r *http.Request) (competitiondomain.SeriesID, bool) {
	id, err := competitiondomain.ParseSeriesID(chi.URLParam(r, "seriesID"))
	if err != nil {
		http.Error(w, "invalid series id", http.StatusBadRequest)
		return competitiondomain.SeriesID{}, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
