package s3client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// ErrNoCredentials — SDK не нашёл рабочих кредов ни в одном из источников.
var ErrNoCredentials = errors.New("учётные данные AWS не найдены")

// RejectedError — сервис явно отказал: нет прав, нет бакета и т.п.
// Детали сервиса отдаём как есть.
type RejectedError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *RejectedError) Error() string {
	switch {
	case e.Code != "" && e.Status != 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Code, e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	default:
		return fmt.Sprintf("HTTP %d", e.Status)
	}
}

func (e *RejectedError) Unwrap() error { return e.Err }

// classify — привести ошибку SDK к одному из исходов загрузки.
// Порядок важен: если кредов нет, запрос не уходил и ответа сервиса в цепочке нет.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if isNoCredentials(err) {
		return fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}

	rej := &RejectedError{Err: err}
	var re *smithyhttp.ResponseError
	if errors.As(err, &re) {
		rej.Status = re.HTTPStatusCode()
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		rej.Code = ae.ErrorCode()
		rej.Message = ae.ErrorMessage()
	}
	if rej.Status != 0 || rej.Code != "" {
		return rej
	}
	return err
}

// Типизированной ошибки «кредов нет вообще» у SDK нет, текст цепочки гуляет
// между версиями. Ловим по характерным кускам из smithy.OperationError.
func isNoCredentials(err error) bool {
	var oe *smithy.OperationError
	if !errors.As(err, &oe) {
		return false
	}
	msg := oe.Error()
	return strings.Contains(msg, "failed to retrieve credentials") ||
		strings.Contains(msg, "failed to refresh cached credentials") ||
		strings.Contains(msg, "get credentials")
}
