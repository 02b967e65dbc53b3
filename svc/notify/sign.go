package notify

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// GenSign 按飞书自定义机器人签名规则生成签名：
// 以 "{timestamp}\n{secret}" 作为密钥对空消息做 HMAC-SHA256，结果 base64 编码。
// 同一 (secret, timestamp) 输入结果确定；签名与时间戳成对使用，换时间戳即失效
func GenSign(secret string, timestamp int64) (string, error) {
	if len(secret) == 0 {
		return "", &SignError{Err: errors.New("notify.GenSign secret empty")}
	}

	key := fmt.Sprintf("%d\n%s", timestamp, secret)
	mac := hmac.New(sha256.New, []byte(key))
	if _, err := mac.Write([]byte{}); err != nil {
		return "", &SignError{Err: fmt.Errorf("notify.GenSign hmac write error: %w", err)}
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
