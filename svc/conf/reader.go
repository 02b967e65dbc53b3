package conf

// Reader 配置读取器接口，按 key 返回配置值，未命中返回空串
type Reader interface {
	Get(k string) (string, error)
	Name() string
}
