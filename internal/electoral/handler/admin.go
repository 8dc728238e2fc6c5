package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	id "escrutinio/pkg/domain"
	"escrutinio/pkg/platform/httputil"
	"escrutinio/pkg/requestcontext"
)

func (h *Handler) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.service.ListCandidates(r.Context())
	if err != nil {
		h.fail(w, r, "list candidates failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, candidates)
}

func (h *Handler) handleAddCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[CandidateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.service.AddCandidate(ctx, req.toModel())
	if err != nil {
		h.fail(w, r, "add candidate failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleEditCandidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	candidateID, err := id.ParseCandidateID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid candidate id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[CandidateRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	c, err := h.service.EditCandidate(ctx, candidateID, req.toModel())
	if err != nil {
		h.fail(w, r, "edit candidate failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	candidateID, err := id.ParseCandidateID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid candidate id", err)
		return
	}
	if err := h.service.DeleteCandidate(r.Context(), candidateID); err != nil {
		h.fail(w, r, "delete candidate failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.service.ListTables(r.Context())
	if err != nil {
		h.fail(w, r, "list tables failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, tables)
}

func (h *Handler) handleAddTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[TableRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	t, err := h.service.AddTable(ctx, req.toModel())
	if err != nil {
		h.fail(w, r, "add table failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) handleEditTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tableID, err := id.ParseTableID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid table id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[TableRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	t, err := h.service.EditTable(ctx, tableID, req.toModel())
	if err != nil {
		h.fail(w, r, "edit table failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) handleDeleteTable(w http.ResponseWriter, r *http.Request) {
	tableID, err := id.ParseTableID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid table id", err)
		return
	}
	if err := h.service.DeleteTable(r.Context(), tableID); err != nil {
		h.fail(w, r, "delete table failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.service.ListAgents(r.Context())
	if err != nil {
		h.fail(w, r, "list agents failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, agents)
}

func (h *Handler) handleAddAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[AgentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.AddAgent(ctx, req.toModel())
	if err != nil {
		h.fail(w, r, "add agent failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, a)
}

func (h *Handler) handleEditAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	agentID, err := id.ParseAgentID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid agent id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[AgentRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.EditAgent(ctx, agentID, req.toModel())
	if err != nil {
		h.fail(w, r, "edit agent failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (h *Handler) handleDeleteAgent(w http.ResponseWriter, r *http.Request) {
	agentID, err := id.ParseAgentID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid agent id", err)
		return
	}
	if err := h.service.DeleteAgent(r.Context(), agentID); err != nil {
		h.fail(w, r, "delete agent failed", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAssignTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	agentID, err := id.ParseAgentID(chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, "invalid agent id", err)
		return
	}
	req, ok := httputil.DecodeAndPrepare[AssignTableRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	a, err := h.service.AssignTable(ctx, agentID, id.TableID(req.TableID))
	if err != nil {
		h.fail(w, r, "assign table failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}
