package domain

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ClassifyFault maps the free-text reason of an RPC-over-HTTP fault onto the
// taxonomy. The legacy backend reports everything through fault strings, so
// classification is substring-based; unrecognized reasons keep their text
// verbatim under KindUnknown for diagnostics.
func ClassifyFault(reason string) *Error {
	lower := strings.ToLower(reason)
	switch {
	case strings.Contains(lower, "not found"), strings.Contains(lower, "id found"):
		return &Error{Kind: KindNotFound, Message: reason}
	case strings.Contains(lower, "already exists"):
		return &Error{Kind: KindAlreadyExists, Message: reason}
	case strings.Contains(lower, "required"),
		strings.Contains(lower, "must be between"),
		strings.Contains(lower, "invalid"):
		return &Error{
			Kind:    KindValidation,
			Message: "validation failed",
			Fields:  faultFields(reason),
		}
	default:
		return &Error{Kind: KindUnknown, Message: reason}
	}
}

// faultFields extracts a field name from a "Field: message" shaped reason.
// Anything else is aggregated under the generic "request" key.
func faultFields(reason string) map[string][]string {
	if field, msg, ok := strings.Cut(reason, ":"); ok {
		field = strings.TrimSpace(field)
		msg = strings.TrimSpace(msg)
		if field != "" && !strings.ContainsAny(field, " \t") && msg != "" {
			return map[string][]string{strings.ToLower(field): {msg}}
		}
	}
	return map[string][]string{"request": {reason}}
}

// ClassifyRPC maps a gRPC call failure onto the taxonomy using the status
// code carried by the error.
func ClassifyRPC(err error) *Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	st, ok := status.FromError(err)
	if !ok {
		return ClassifyTransport(err)
	}
	switch st.Code() {
	case codes.NotFound:
		return &Error{Kind: KindNotFound, Message: st.Message()}
	case codes.AlreadyExists:
		return &Error{Kind: KindAlreadyExists, Message: st.Message()}
	case codes.InvalidArgument:
		return &Error{
			Kind:    KindValidation,
			Message: "validation failed",
			Fields:  faultFields(st.Message()),
		}
	case codes.Unavailable, codes.DeadlineExceeded:
		return &Error{Kind: KindUnavailable, Message: st.Message()}
	default:
		return &Error{Kind: KindUnknown, Message: st.Message()}
	}
}

// ClassifyHTTP maps a non-2xx status from the plain REST backend onto the
// taxonomy. message is the body the backend returned, kept for diagnostics.
func ClassifyHTTP(statusCode int, message string) *Error {
	switch statusCode {
	case http.StatusNotFound:
		return &Error{Kind: KindNotFound, Message: message}
	case http.StatusConflict:
		return &Error{Kind: KindAlreadyExists, Message: message}
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return &Error{
			Kind:    KindValidation,
			Message: "validation failed",
			Fields:  faultFields(message),
		}
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return &Error{Kind: KindUnavailable, Message: message}
	default:
		return &Error{Kind: KindUnknown, Message: message}
	}
}

// ClassifyTransport maps connectivity-level failures (refused connection,
// timeout, cancelled context) onto KindUnavailable. The facade never retries
// these itself; they surface to the caller with the cause preserved.
func ClassifyTransport(err error) *Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	if strings.Contains(err.Error(), "connection refused") {
		return &Error{Kind: KindUnavailable, Message: err.Error()}
	}
	return &Error{Kind: KindUnknown, Message: err.Error()}
}

// Upgrade re-reads an error whose message carries a recognizable condition
// the original classification missed, e.g. an Unknown wrapping an "already
// exists" fault raced past the duplicate probe. Precision is only ever
// raised, never lowered.
func Upgrade(err error) error {
	var de *Error
	if !errors.As(err, &de) || de.Kind != KindUnknown {
		return err
	}
	lower := strings.ToLower(de.Message)
	switch {
	case strings.Contains(lower, "already exists"):
		return &Error{Kind: KindAlreadyExists, Message: de.Message}
	case strings.Contains(lower, "not found"):
		return &Error{Kind: KindNotFound, Message: de.Message}
	default:
		return err
	}
}
