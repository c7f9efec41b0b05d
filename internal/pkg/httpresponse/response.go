// Package httpresponse единая точка записи JSON ответов и ошибок REST API.
package httpresponse

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-network/internal/pkg/apperr"
	"courier-network/pkg/logger"
)

var ErrInvalidBody = apperr.Validation("invalid request body")

type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, log handlerLogger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

// Error переводит ошибку в {success:false, message}. Неизвестные ошибки
// логируются и наружу уходят как 500 без подробностей.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	kind := apperr.KindOf(err)
	status := kind.HTTPStatus()

	switch {
	case kind == apperr.KindUnknown:
		log.With(
			logger.NewField("error", err),
		).Error("unhandled error")
	case errors.Is(err, ErrInvalidBody):
		log.With(
			logger.NewField("error", err),
		).Warn("bad request body")
	}

	JSON(w, log, status, errorBody{
		Success: false,
		Message: apperr.Message(err),
	})
}

// Message ответ без данных, например при удалении.
func Message(w http.ResponseWriter, log handlerLogger, status int, msg string) {
	JSON(w, log, status, Envelope{
		Success: true,
		Message: msg,
	})
}

// Decode читает JSON тело запроса. Ошибка разбора отдается как ValidationError.
func Decode(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil {
		return ErrInvalidBody.Withf("invalid request body: %s", err.Error())
	}
	return nil
}
