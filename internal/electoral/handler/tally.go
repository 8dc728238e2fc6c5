package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"escrutinio/internal/electoral/results"
	id "escrutinio/pkg/domain"
	"escrutinio/pkg/platform/httputil"
	"escrutinio/pkg/requestcontext"
)

func (h *Handler) handleReviewTallySheets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := results.SheetFilter{Province: q.Get("province")}
	if raw := q.Get("status"); raw != "" {
		status, err := id.ParseTallyStatus(raw)
		if err != nil {
			h.fail(w, r, "invalid status filter", err)
			return
		}
		f.Status = status
	}

	review, err := h.service.ReviewTallySheets(r.Context(), f)
	if err != nil {
		h.fail(w, r, "review tally sheets failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, review)
}

func (h *Handler) handleGetTallySheet(w http.ResponseWriter, r *http.Request) {
	sheetID, err := id.ParseTallySheetID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid tally sheet id", err)
		return
	}
	sheet, err := h.service.GetTallySheet(r.Context(), sheetID)
	if err != nil {
		h.fail(w, r, "get tally sheet failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sheet)
}

func (h *Handler) handleSetTallySheetStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sheetID, err := id.ParseTallySheetID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid tally sheet id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[StatusRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	sheet, err := h.service.SetTallySheetStatus(ctx, sheetID, id.TallyStatus(req.Status))
	if err != nil {
		h.fail(w, r, "set tally sheet status failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, sheet)
}

func (h *Handler) handleResults(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	summary, err := h.service.Results(r.Context(), results.Filter{
		Province:    q.Get("province"),
		District:    q.Get("district"),
		Locale:      q.Get("locale"),
		TableNumber: q.Get("table_number"),
	})
	if err != nil {
		h.fail(w, r, "results failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) handleAssignments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	overview, err := h.service.Assignments(r.Context(), results.AgentFilter{
		Search:   q.Get("search"),
		State:    results.AssignmentState(q.Get("state")),
		Province: q.Get("province"),
	})
	if err != nil {
		h.fail(w, r, "assignments failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, overview)
}

func (h *Handler) handleListProvinces(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListProvinces(r.Context()))
}

func (h *Handler) handleListDistricts(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.ListDistricts(r.Context(), r.URL.Query().Get("province")))
}

func (h *Handler) handleMyTallySheet(w http.ResponseWriter, r *http.Request) {
	ws, err := h.service.MyTallySheet(r.Context())
	if err != nil {
		h.fail(w, r, "agent workspace failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ws)
}

func (h *Handler) handleSubmitTallySheet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[TallySheetRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	sheet, err := h.service.SubmitTallySheet(ctx, req.toModel())
	if err != nil {
		h.fail(w, r, "submit tally sheet failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, sheet)
}
