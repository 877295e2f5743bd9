package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func wrapError(err error, layer int) error {
	return fmt.Errorf("layer %d: %w", layer, err)
}

func TestErrorWrapping(t *testing.T) {
	err := FromStatus("GetCategory", http.StatusNotFound, "category 9 not found")
	for i := 1; i <= 3; i++ {
		err = wrapError(err, i)
	}

	// 多層包裝後仍能識別
	require.True(t, errors.Is(err, ErrNotFound))
	require.True(t, IsNotFound(err))

	// 只比對操作名稱
	require.True(t, errors.Is(err, &BackendError{Operation: "GetCategory"}))
	require.False(t, errors.Is(err, &BackendError{Operation: "ListProducts"}))
	require.True(t, errors.Is(err, &BackendError{StatusCode: http.StatusNotFound}))
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindNone},
		{name: "unauthorized", err: FromStatus("FindPendingOrder", http.StatusUnauthorized, ""), want: KindAuthRequired},
		{name: "not found", err: FromStatus("GetCategory", http.StatusNotFound, ""), want: KindNotFound},
		{name: "no pending order", err: NewBackendError("ConfirmPendingOrder", http.StatusConflict, ErrNoPendingOrder), want: KindNotFound},
		{name: "server error", err: FromStatus("ListProducts", http.StatusInternalServerError, "boom"), want: KindServerRejected},
		{name: "bad request", err: FromStatus("ListProducts", http.StatusBadRequest, ""), want: KindServerRejected},
		{name: "network", err: NewBackendError("ListProducts", 0, ErrNetworkFailure), want: KindNetworkFailure},
		{name: "deadline", err: wrapError(context.DeadlineExceeded, 1), want: KindNetworkFailure},
		{name: "connection refused text", err: errors.New("dial tcp 127.0.0.1:1: connect: connection refused"), want: KindNetworkFailure},
		{name: "unknown", err: errors.New("something else"), want: KindUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestBackendErrorMessage(t *testing.T) {
	err := FromStatus("ConfirmPendingOrder", http.StatusBadGateway, "  upstream down \n")
	require.Equal(t, "backend operation ConfirmPendingOrder failed with status 502: server rejected request: upstream down", err.Error())

	err = NewBackendError("ListProducts", 0, ErrNetworkFailure)
	require.Equal(t, "backend operation ListProducts failed: network failure", err.Error())
}
