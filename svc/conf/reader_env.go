package conf

import (
	"os"
	"strings"
)

type envReader struct {
}

// env 层：lark_webhook_url 对应环境变量 LARK_WEBHOOK_URL
func newEnvReader() Reader {
	return &envReader{}
}

func (r *envReader) Get(k string) (string, error) {
	return os.Getenv(strings.ToUpper(k)), nil
}

func (r *envReader) Name() string {
	return "env"
}
