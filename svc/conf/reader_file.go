package conf

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type fileReader struct {
	handler *viper.Viper
}

// file 层：文件不存在时返回空读取器（非致命）；存在但解析失败返回 ConfigError
func newFileReader(filePath string) (Reader, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return &fileReader{}, nil
	}

	handler := viper.New()
	handler.SetConfigFile(filePath)
	if err := handler.ReadInConfig(); err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("conf.newFileReader read %s error: %w", filePath, err)}
	}

	return &fileReader{handler: handler}, nil
}

func (r *fileReader) Get(k string) (string, error) {
	if r.handler == nil {
		return "", nil
	}
	return r.handler.GetString(k), nil
}

func (r *fileReader) Name() string {
	return "file"
}
