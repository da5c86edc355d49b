package types

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseServiceError(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
		code   string
		fault  ErrorFault
	}{
		{
			name:   "code decides the shape",
			status: http.StatusBadRequest,
			body:   `{"Code":"NotFound","Message":"no such channel"}`,
			code:   "NotFoundException",
			fault:  FaultClient,
			check: func(t *testing.T, err error) {
				var nf *NotFoundException
				require.ErrorAs(t, err, &nf)
				assert.Equal(t, ErrorCodeNotFound, nf.Code)
				assert.Equal(t, "NotFound", nf.RawCode)
				assert.Equal(t, "no such channel", nf.ErrorMessage())
				assert.Equal(t, "NotFoundException: no such channel", nf.Error())
			},
		},
		{
			name:   "throttling alias",
			status: http.StatusBadRequest,
			body:   `{"Code":"Throttling"}`,
			code:   "ThrottledClientException",
			fault:  FaultClient,
		},
		{
			name:   "access denied is forbidden",
			status: http.StatusForbidden,
			body:   `{"Code":"AccessDenied"}`,
			code:   "ForbiddenException",
			fault:  FaultClient,
		},
		{
			name:   "status fallback for unknown code",
			status: http.StatusServiceUnavailable,
			body:   `{"Code":"SomethingNew","Message":"later"}`,
			code:   "ServiceUnavailableException",
			fault:  FaultServer,
			check: func(t *testing.T, err error) {
				var su *ServiceUnavailableException
				require.ErrorAs(t, err, &su)
				assert.Empty(t, su.Code)
				assert.Equal(t, "SomethingNew", su.RawCode)
				assert.Equal(t, "ServiceUnavailableException (SomethingNew): later", su.Error())
			},
		},
		{
			name:   "status fallback for non-JSON body",
			status: http.StatusConflict,
			body:   `<html>`,
			code:   "ConflictException",
			fault:  FaultClient,
		},
		{
			name:   "resource limit",
			status: http.StatusBadRequest,
			body:   `{"Code":"ResourceLimitExceeded"}`,
			code:   "ResourceLimitExceededException",
			fault:  FaultClient,
		},
		{
			name:   "generic for unmapped status",
			status: http.StatusTeapot,
			body:   `{"Code":"Teapot"}`,
			code:   "Teapot",
			fault:  FaultClient,
			check: func(t *testing.T, err error) {
				var g *GenericAPIError
				require.ErrorAs(t, err, &g)
				assert.Equal(t, http.StatusTeapot, g.StatusCode)
				assert.Equal(t, "I'm a teapot", g.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ParseServiceError(tt.status, []byte(tt.body))
			require.Error(t, err)

			var apiErr APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.code, apiErr.ErrorCode())
			assert.Equal(t, tt.fault, apiErr.ErrorFault())
			if tt.check != nil {
				tt.check(t, err)
			}
		})
	}
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"throttled", &ThrottledClientException{}, true},
		{"unavailable", &ServiceUnavailableException{}, true},
		{"failure", &ServiceFailureException{}, true},
		{"wrapped throttled", fmt.Errorf("send: %w", &ThrottledClientException{}), true},
		{"generic 502", &GenericAPIError{StatusCode: http.StatusBadGateway}, true},
		{"generic 418", &GenericAPIError{StatusCode: http.StatusTeapot}, false},
		{"bad request", &BadRequestException{}, false},
		{"forbidden", &ForbiddenException{}, false},
		{"plain error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryableError(tt.err))
		})
	}
}

func TestErrorFaultString(t *testing.T) {
	assert.Equal(t, "client", FaultClient.String())
	assert.Equal(t, "server", FaultServer.String())
	assert.Equal(t, "unknown", FaultUnknown.String())
}
