package notify

import (
	"fmt"
)

// SignError 签名计算失败
type SignError struct {
	Err error
}

func (e *SignError) Error() string {
	return fmt.Sprintf("notify: sign failed: %v", e.Err)
}

func (e *SignError) Unwrap() error {
	return e.Err
}

// DeliveryError 投递失败：传输层错误，或 webhook 协议层拒绝。
// 携带状态码与响应体用于排障，内部不做重试
type DeliveryError struct {
	StatusCode int    // HTTP 状态码，传输层失败时为 0
	Code       int    // webhook 响应 code，协议层拒绝时非 0
	Body       string // 响应体原文
	Timeout    bool
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.Err != nil {
		if e.Timeout {
			return fmt.Sprintf("notify: delivery timed out: %v", e.Err)
		}
		return fmt.Sprintf("notify: delivery failed: %v", e.Err)
	}
	if e.Code != 0 {
		return fmt.Sprintf("notify: webhook rejected request code %d body %s", e.Code, e.Body)
	}
	return fmt.Sprintf("notify: webhook returned status %d body %s", e.StatusCode, e.Body)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
