package viewer

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// ErrorCode — машиночитаемый код ошибки в ответе viewer.
type ErrorCode string

const (
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// ErrorResponse — тело ответа с ошибкой: {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail описывает ошибку. Param заполнен, если виноват
// конкретный query-параметр (x1 или x2).
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Param   string    `json:"param,omitempty"`
}

// DataResponse — тело успешного ответа: {"data": ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// paramError — невалидное значение query-параметра.
type paramError struct {
	param string
	msg   string
}

func (e *paramError) Error() string { return e.msg }

// JSON пишет v как JSON со статусом status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Success пишет 200 с обёрткой data.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, DataResponse{Data: data})
}

// Error пишет ошибку с заданным статусом.
func Error(w http.ResponseWriter, status int, detail ErrorDetail) {
	JSON(w, status, ErrorResponse{Error: detail})
}

// BadRequest пишет 400. Для paramError в ответ попадает имя параметра.
func BadRequest(w http.ResponseWriter, err error) {
	detail := ErrorDetail{Code: ErrCodeBadRequest, Message: err.Error()}

	var pe *paramError
	if errors.As(err, &pe) {
		detail.Param = pe.param
	}
	Error(w, http.StatusBadRequest, detail)
}

// InternalError логирует err и пишет 500 без подробностей.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("request failed", "error", err)
	Error(w, http.StatusInternalServerError, ErrorDetail{
		Code:    ErrCodeInternalError,
		Message: "internal server error",
	})
}
