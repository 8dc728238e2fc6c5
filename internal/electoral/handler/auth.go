package handler

import (
	"net/http"

	"escrutinio/pkg/platform/httputil"
	"escrutinio/pkg/requestcontext"
)

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[LoginRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}

	res, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.fail(w, r, "login failed", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, res)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	identity, err := h.service.CurrentIdentity(r.Context())
	if err != nil {
		h.fail(w, r, "no session", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, identity)
}
