package errors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
)

var (
	// ErrAuthRequired 未登入, 屬於被擋下的 no-op, 不是錯誤路徑
	ErrAuthRequired = errors.New("authentication required")
	// ErrNetworkFailure 連線失敗 / 逾時
	ErrNetworkFailure = errors.New("network failure")
	// ErrServerRejected 後端回應 4xx/5xx
	ErrServerRejected = errors.New("server rejected request")
	// ErrNotFound 分類或訂單不存在
	ErrNotFound = errors.New("resource not found")
	// ErrNoPendingOrder confirm/cancel 時後端沒有待處理訂單
	ErrNoPendingOrder = errors.New("no pending order")
	// ErrInvalidateParameter 參數錯誤
	ErrInvalidateParameter = errors.New("invalidate parameter")
)

type Kind string

const (
	KindNone           Kind = ""
	KindAuthRequired   Kind = "auth_required"
	KindNetworkFailure Kind = "network_failure"
	KindServerRejected Kind = "server_rejected"
	KindNotFound       Kind = "not_found"
	KindUnknown        Kind = "unknown"
)

// BackendError 代表一次後端呼叫的失敗
type BackendError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *BackendError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("backend operation %s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("backend operation %s failed: %v", e.Operation, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Is 只比對有設定的欄位, 方便用 errors.Is 找特定操作
func (e *BackendError) Is(target error) bool {
	t, ok := target.(*BackendError)
	if !ok {
		return false
	}
	if t.Operation != "" && t.Operation != e.Operation {
		return false
	}
	if t.StatusCode != 0 && t.StatusCode != e.StatusCode {
		return false
	}
	return true
}

func NewBackendError(operation string, statusCode int, err error) error {
	return &BackendError{
		Operation:  operation,
		StatusCode: statusCode,
		Err:        err,
	}
}

// FromStatus 依 http status 決定包裝哪個 sentinel
func FromStatus(operation string, statusCode int, body string) error {
	var base error
	switch {
	case statusCode == http.StatusUnauthorized:
		base = ErrAuthRequired
	case statusCode == http.StatusNotFound:
		base = ErrNotFound
	default:
		base = ErrServerRejected
	}
	body = strings.TrimSpace(body)
	if body != "" {
		base = fmt.Errorf("%w: %s", base, body)
	}
	return NewBackendError(operation, statusCode, base)
}

// Classify 把任意錯誤歸類到錯誤分類
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrAuthRequired):
		return KindAuthRequired
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNoPendingOrder):
		return KindNotFound
	case errors.Is(err, ErrServerRejected):
		return KindServerRejected
	case IsNetworkFailure(err):
		return KindNetworkFailure
	default:
		return KindUnknown
	}
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrNoPendingOrder)
}

func IsServerRejected(err error) bool {
	return errors.Is(err, ErrServerRejected)
}

// IsNetworkFailure 判斷是否為連線層的錯誤
func IsNetworkFailure(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrNetworkFailure) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "connection reset by peer") ||
		strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "i/o timeout") ||
		strings.Contains(errStr, "no route to host")
}
