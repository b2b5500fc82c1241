package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"board-game-reviews/internal/apperror"
	"board-game-reviews/pkg/utils"

	"go.uber.org/zap"
)

// classifier inspects a failure and claims it by returning ok=true.
type classifier func(err error) (*apperror.Error, bool)

// classifyStorage claims store-side malformed input (bad identifier syntax).
func classifyStorage(err error) (*apperror.Error, bool) {
	appErr, ok := apperror.As(apperror.FromStorage(err))
	if !ok || appErr.Kind != apperror.KindBadInput {
		return nil, false
	}
	return appErr, true
}

// classifyApplication claims failures raised by services and handlers.
func classifyApplication(err error) (*apperror.Error, bool) {
	return apperror.As(err)
}

// ErrorHandler is the only place failures are turned into responses.
type ErrorHandler struct {
	chain []classifier
	log   *zap.Logger
}

func NewErrorHandler(log *zap.Logger) *ErrorHandler {
	return &ErrorHandler{
		chain: []classifier{classifyStorage, classifyApplication},
		log:   log.With(zap.String("handler", "error")),
	}
}

// Classify runs the chain; a failure nobody claims becomes Internal.
func (h *ErrorHandler) Classify(err error) *apperror.Error {
	for _, c := range h.chain {
		if appErr, ok := c(err); ok {
			return appErr
		}
	}
	return apperror.Internal(err)
}

// Handle writes the response for err.
func (h *ErrorHandler) Handle(w http.ResponseWriter, r *http.Request, err error) {
	appErr := h.Classify(err)

	fields := []zap.Field{
		zap.String("kind", appErr.Kind.String()),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if id, ok := utils.GetRequestIDFromContext(r.Context()); ok {
		fields = append(fields, zap.String("request_id", id))
	}

	switch appErr.Kind {
	case apperror.KindBadInput:
		h.log.Warn("Malformed input", append(fields, zap.Error(err))...)
		utils.ResponseMessage(w, appErr.Status, appErr.Msg)

	case apperror.KindBadRequest, apperror.KindNotFound:
		h.log.Warn(appErr.Msg, fields...)
		utils.ResponseStatusMessage(w, appErr.Status, appErr.Msg)

	case apperror.KindRouteNotFound:
		h.log.Debug("No route matched", fields...)
		utils.ResponseMessage(w, appErr.Status, appErr.Msg)

	case apperror.KindInternal:
		h.log.Error("Unhandled failure", append(fields, zap.Error(err))...)
		utils.ResponseInternalError(w)
	}
}

// RouteNotFound answers requests that no route (or no method on a route)
// matched.
func (h *ErrorHandler) RouteNotFound(w http.ResponseWriter, r *http.Request) {
	h.Handle(w, r, apperror.RouteNotFound())
}

// decodeJSON reads the request body into dst. An empty body leaves dst at
// its zero value; unknown keys are ignored.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return apperror.BadInput(err)
}
