package api

import (
	"encoding/json"
	"log"
	"mime"
	"net/http"
	"strings"

	"socialcal/shared"
)

// backendError is the error body the backend sends: detail is either a
// message or a list of field errors.
type backendError struct {
	Detail json.RawMessage `json:"detail"`
}

type backendFieldError struct {
	Loc []interface{} `json:"loc"`
	Msg string        `json:"msg"`
}

func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	errType := shared.ApiErrorTypeOther
	if r.StatusCode == http.StatusUnauthorized {
		errType = shared.ApiErrorTypeUnauthorized
	} else if r.StatusCode >= 400 && r.StatusCode < 500 {
		errType = shared.ApiErrorTypeValidation
	}

	msg := errorMessage(r, errBody)
	if msg == "" {
		if errType == shared.ApiErrorTypeUnauthorized {
			msg = shared.UnauthorizedMsg
		} else {
			msg = shared.RequestFailedMsg
		}
	}

	return &shared.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func errorMessage(r *http.Response, errBody []byte) string {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return strings.TrimSpace(string(errBody))
	}

	var be backendError
	if err := json.Unmarshal(errBody, &be); err != nil {
		log.Printf("Error unmarshalling JSON: %v\n", err)
		return strings.TrimSpace(string(errBody))
	}

	if len(be.Detail) == 0 {
		return ""
	}

	var detail string
	if err := json.Unmarshal(be.Detail, &detail); err == nil {
		return detail
	}

	var fieldErrs []backendFieldError
	if err := json.Unmarshal(be.Detail, &fieldErrs); err == nil && len(fieldErrs) > 0 {
		var msgs []string
		for _, fe := range fieldErrs {
			if field := fieldName(fe.Loc); field != "" {
				msgs = append(msgs, field+": "+fe.Msg)
			} else {
				msgs = append(msgs, fe.Msg)
			}
		}
		return strings.Join(msgs, "; ")
	}

	return strings.TrimSpace(string(be.Detail))
}

// fieldName drops the leading "body"/"query" segment of a validation loc.
func fieldName(loc []interface{}) string {
	var parts []string
	for i, p := range loc {
		s, ok := p.(string)
		if !ok {
			continue
		}
		if i == 0 && (s == "body" || s == "query" || s == "path") {
			continue
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ".")
}

// handleUnauthorized is the one cross-cutting error policy: a 401 drops the
// stored session and sends the user back to sign-in. Concurrent 401s for the
// same session run it once.
func (a *Api) handleUnauthorized() {
	a.unauthorizedMu.Lock()
	defer a.unauthorizedMu.Unlock()

	session, err := a.store.Load()
	if err == nil && session == nil {
		return
	}

	err = a.store.Clear()
	if err != nil {
		log.Printf("error clearing session after 401: %v\n", err)
	}

	if a.onUnauthorized != nil {
		a.onUnauthorized()
	}
}

func networkError(err error) *shared.ApiError {
	log.Printf("error sending request: %v\n", err)
	return &shared.ApiError{Type: shared.ApiErrorTypeNetwork, Msg: shared.NetworkErrorMsg}
}

func validationError(format string, err error) *shared.ApiError {
	return &shared.ApiError{Type: shared.ApiErrorTypeValidation, Msg: strings.TrimSpace(format + ": " + err.Error())}
}
