package conf

import (
	"errors"
	"fmt"
)

type (
	comboReader struct {
		readers []Reader
	}
)

// Get 按优先级顺序遍历各层，取第一个非空值
func (c *comboReader) Get(k string) (string, error) {
	var errs []error

	for _, r := range c.readers {
		v, e := r.Get(k)
		if e == nil && len(v) > 0 {
			return v, nil
		}
		if e != nil {
			errs = append(errs, fmt.Errorf("reader[%s]: %w", r.Name(), e))
		}
	}

	if len(errs) > 0 {
		return "", fmt.Errorf("conf.Get key %s failed from all readers: %w", k, errors.Join(errs...))
	}
	return "", nil
}

func (c *comboReader) Name() string {
	return "combo"
}
