package http

import (
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pfd-lab/meshirec/pkg/domain/model/errs"
	"github.com/pfd-lab/meshirec/pkg/utils/logging"
)

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)

	case goerr.HasTag(err, errs.TagValidation):
		logger.Warn("Bad Request", "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)

	case goerr.HasTag(err, errs.TagExternal), goerr.HasTag(err, errs.TagNotionError):
		logger.Error("External Service Error", "error", err)
		http.Error(w, err.Error(), http.StatusBadGateway)

	case goerr.HasTag(err, errs.TagInvalidState):
		logger.Warn("Service Unavailable", "error", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)

	default:
		errs.Handle(r.Context(), err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
