package conf

type explicitReader struct {
	values map[string]string
}

// explicit
func newExplicitReader(e Explicit) Reader {
	return &explicitReader{values: map[string]string{
		KeyWebhookURL:      e.WebhookURL,
		KeyWebhookSecret:   e.WebhookSecret,
		KeyDefaultTemplate: e.DefaultTemplate,
	}}
}

func (r *explicitReader) Get(k string) (string, error) {
	return r.values[k], nil
}

func (r *explicitReader) Name() string {
	return "explicit"
}
