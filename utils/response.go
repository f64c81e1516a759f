package utils

import (
	"encoding/json"
	"net/http"

	"heartwave_server/apperrors"

	"go.uber.org/zap"
)

// WriteJSONResponse writes data as JSON with the given status.
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError renders err as {"code","message"} with its mapped status.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	appErr := apperrors.As(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Error(err))
	} else {
		logger.Debug("request rejected", zap.String("code", string(appErr.Code)), zap.String("message", appErr.Message))
	}
	WriteJSONResponse(w, appErr.Status, appErr)
}

// DecodeJSON decodes the request body into dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.InvalidRequest("Invalid request payload")
	}
	return nil
}
