package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blogapi/internal/httputil"
	"blogapi/internal/model"
	"blogapi/internal/transport/http/middleware"
)

// pathID parses a positive integer URL parameter, writing a 422 on failure.
func pathID(w http.ResponseWriter, r *http.Request, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteValidationError(w, "Invalid "+label+" ID")
		return 0, false
	}
	return id, true
}

// currentUser returns the authenticated caller, writing a 401 if absent.
func currentUser(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		httputil.WriteUnauthorized(w, "Not authenticated")
		return nil, false
	}
	return user, true
}

func listOptions(w http.ResponseWriter, r *http.Request) (model.ListOptions, bool) {
	opts, err := httputil.ParseListOptions(r.URL.Query())
	if err != nil {
		httputil.WriteValidationError(w, err.Error())
		return opts, false
	}
	return opts, true
}
