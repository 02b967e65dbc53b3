package notify

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/valyala/fasthttp"
)

const (
	// DefaultTimeout 默认单次请求超时时间
	DefaultTimeout = 5 * time.Second
	// DefaultMaxConnsPerHost 每个主机的最大连接数
	DefaultMaxConnsPerHost = 512
	// DefaultMaxIdleConnDuration 空闲连接持续时间，必须短于服务器端的连接超时时间
	DefaultMaxIdleConnDuration = 10 * time.Second
	// DefaultMaxConnWaitTimeout 连接用完后等待连接时间
	DefaultMaxConnWaitTimeout = 5 * time.Second
)

type (
	// Transport 基于 fasthttp 的投递客户端
	Transport struct {
		client  *fasthttp.Client
		timeout time.Duration
	}

	// TransportOptionFunc 客户端配置函数
	TransportOptionFunc func(config *transportConf)

	transportConf struct {
		Timeout             time.Duration
		MaxConnsPerHost     int
		MaxIdleConnDuration time.Duration
		MaxConnWaitTimeout  time.Duration
	}

	// RetryConf 重试配置。通知投递固定单次尝试，重试入口留给其他调用方
	RetryConf struct {
		MaxAttempts  uint
		InitialDelay time.Duration
		MaxDelay     time.Duration
		DelayType    retry.DelayTypeFunc
	}
)

// NewTransport 创建投递客户端
func NewTransport(opts ...TransportOptionFunc) *Transport {
	config := &transportConf{
		Timeout:             DefaultTimeout,
		MaxConnsPerHost:     DefaultMaxConnsPerHost,
		MaxIdleConnDuration: DefaultMaxIdleConnDuration,
		MaxConnWaitTimeout:  DefaultMaxConnWaitTimeout,
	}
	for _, opt := range opts {
		opt(config)
	}

	return &Transport{
		client: &fasthttp.Client{
			// 读超时时间，不设置 read 超时可能会造成连接复用失效
			ReadTimeout:         config.Timeout,
			WriteTimeout:        config.Timeout,
			MaxConnsPerHost:     config.MaxConnsPerHost,
			MaxIdleConnDuration: config.MaxIdleConnDuration,
			MaxConnWaitTimeout:  config.MaxConnWaitTimeout,
		},
		timeout: config.Timeout,
	}
}

// WithTransportTimeout 设置单次请求超时时间
func WithTransportTimeout(timeout time.Duration) TransportOptionFunc {
	return func(config *transportConf) {
		if timeout > 0 {
			config.Timeout = timeout
		}
	}
}

// WithMaxConnsPerHost 设置每个主机的最大连接数
func WithMaxConnsPerHost(maxConns int) TransportOptionFunc {
	return func(config *transportConf) {
		if maxConns > 0 {
			config.MaxConnsPerHost = maxConns
		}
	}
}

// WithMaxIdleConnDuration 设置空闲连接持续时间
func WithMaxIdleConnDuration(duration time.Duration) TransportOptionFunc {
	return func(config *transportConf) {
		if duration > 0 {
			config.MaxIdleConnDuration = duration
		}
	}
}

// PostJSON 单次尝试发送 JSON POST，返回状态码与响应体
func (t *Transport) PostJSON(url string, body []byte) (int, []byte, error) {
	return t.postJSONWithRetry(url, body, &RetryConf{MaxAttempts: 1})
}

// PostJSONWithRetry 按给定重试配置发送 JSON POST
func (t *Transport) PostJSONWithRetry(url string, body []byte, retryConfig *RetryConf) (int, []byte, error) {
	if retryConfig == nil || retryConfig.MaxAttempts == 0 {
		retryConfig = &RetryConf{MaxAttempts: 1}
	}
	return t.postJSONWithRetry(url, body, retryConfig)
}

func (t *Transport) postJSONWithRetry(url string, body []byte, retryConfig *RetryConf) (int, []byte, error) {
	if t == nil {
		return 0, nil, fmt.Errorf("notify.postJSONWithRetry transport is nil")
	}

	var (
		statusCode int
		respBody   []byte
	)

	retryOpts := []retry.Option{
		retry.Attempts(retryConfig.MaxAttempts),
		retry.LastErrorOnly(true),
	}
	if retryConfig.InitialDelay > 0 {
		retryOpts = append(retryOpts, retry.Delay(retryConfig.InitialDelay))
	}
	if retryConfig.MaxDelay > 0 {
		retryOpts = append(retryOpts, retry.MaxDelay(retryConfig.MaxDelay))
	}
	if retryConfig.DelayType != nil {
		retryOpts = append(retryOpts, retry.DelayType(retryConfig.DelayType))
	}

	err := retry.Do(
		func() error {
			// 从请求池中分别获取一个 request、response 实例
			req, resp := fasthttp.AcquireRequest(), fasthttp.AcquireResponse()
			// 回收实例到请求池
			defer func() {
				fasthttp.ReleaseRequest(req)
				fasthttp.ReleaseResponse(resp)
			}()

			req.Header.SetMethod(fasthttp.MethodPost)
			req.SetRequestURI(url)
			req.Header.SetContentType("application/json")
			req.SetBodyRaw(body)

			if err := t.client.DoTimeout(req, resp, t.timeout); err != nil {
				return err
			}

			statusCode = resp.StatusCode()
			respBody = make([]byte, len(resp.Body()))
			copy(respBody, resp.Body())
			return nil
		},
		retryOpts...,
	)
	if err != nil {
		return 0, nil, err
	}

	return statusCode, respBody, nil
}
