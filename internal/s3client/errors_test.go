package s3client

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/stretchr/testify/require"
)

func TestClassifyNoCredentials(t *testing.T) {
	opErr := &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "PutObject",
		Err:           errors.New("get identity: get credentials: failed to refresh cached credentials, no EC2 IMDS role found"),
	}

	got := classify(fmt.Errorf("ошибка загрузки: %w", opErr))
	require.ErrorIs(t, got, ErrNoCredentials)
}

func TestClassifyServiceRejection(t *testing.T) {
	opErr := &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "PutObject",
		Err: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{
				Response: &http.Response{StatusCode: 403},
			},
			Err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "Access Denied"},
		},
	}

	got := classify(fmt.Errorf("ошибка загрузки: %w", opErr))
	var rej *RejectedError
	require.ErrorAs(t, got, &rej)
	require.Equal(t, 403, rej.Status)
	require.Equal(t, "AccessDenied", rej.Code)
	require.Equal(t, "Access Denied", rej.Message)
	require.Contains(t, rej.Error(), "AccessDenied")
	require.Contains(t, rej.Error(), "403")
}

func TestClassifyAPIErrorWithoutResponse(t *testing.T) {
	opErr := &smithy.OperationError{
		ServiceID:     "S3",
		OperationName: "PutObject",
		Err:           &smithy.GenericAPIError{Code: "NoSuchBucket", Message: "The specified bucket does not exist"},
	}

	got := classify(opErr)
	var rej *RejectedError
	require.ErrorAs(t, got, &rej)
	require.Equal(t, "NoSuchBucket", rej.Code)
}

func TestClassifyPassesThroughUnknown(t *testing.T) {
	plain := errors.New("connection reset by peer")
	got := classify(plain)
	require.Equal(t, plain, got)

	require.NoError(t, classify(nil))
}
