package notify

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/zhuud/lark-webhook-notify/svc/card"
	"github.com/zhuud/lark-webhook-notify/svc/conf"
	"github.com/zhuud/lark-webhook-notify/svc/template"
)

type stubPoster struct {
	status  int
	body    []byte
	err     error
	gotURL  string
	gotBody []byte
	calls   int
}

func (s *stubPoster) PostJSON(url string, body []byte) (int, []byte, error) {
	s.calls++
	s.gotURL = url
	s.gotBody = body
	if s.err != nil {
		return 0, nil, s.err
	}
	return s.status, s.body, nil
}

type sentEnvelope struct {
	Timestamp string         `json:"timestamp"`
	Sign      string         `json:"sign"`
	MsgType   string         `json:"msg_type"`
	Card      map[string]any `json:"card"`
	Content   map[string]any `json:"content"`
}

func newTestNotifier(t *testing.T, explicit conf.Explicit, stub *stubPoster) *Notifier {
	t.Helper()
	t.Setenv("LARK_WEBHOOK_URL", "")
	t.Setenv("LARK_WEBHOOK_SECRET", "")
	t.Setenv("LARK_DEFAULT_TEMPLATE", "")

	n, err := New(explicit, WithFilePath(filepath.Join(t.TempDir(), "absent.toml")))
	require.NoError(t, err)
	n.poster = stub
	return n
}

func decodeEnvelope(t *testing.T, body []byte) sentEnvelope {
	t.Helper()
	var env sentEnvelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func okStub() *stubPoster {
	return &stubPoster{status: 200, body: []byte(`{"code":0,"msg":"success"}`)}
}

func TestSendMessageEndToEnd(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{
		WebhookURL:    "https://x/hook/abc",
		WebhookSecret: "s3cr3t",
	}, stub)

	before := time.Now().Unix()
	require.NoError(t, n.SendMessage("Build Complete", "v2.1.0", "green"))
	after := time.Now().Unix()

	assert.Equal(t, "https://x/hook/abc", stub.gotURL)

	env := decodeEnvelope(t, stub.gotBody)
	assert.Equal(t, "interactive", env.MsgType)

	// 时间戳在发送时生成，必须落在调用时间窗口内
	tsInt, err := strconv.ParseInt(env.Timestamp, 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, tsInt, before)
	assert.LessOrEqual(t, tsInt, after)

	// 签名与时间戳成对匹配
	expected, err := GenSign("s3cr3t", tsInt)
	require.NoError(t, err)
	assert.Equal(t, expected, env.Sign)

	hdr := env.Card["header"].(map[string]any)
	assert.Equal(t, "green", hdr["template"])
	assert.Equal(t, "Build Complete", hdr["title"].(map[string]any)["content"])

	elements := env.Card["body"].(map[string]any)["elements"].([]any)
	require.Len(t, elements, 1)
	md := elements[0].(map[string]any)
	assert.Equal(t, "markdown", md["tag"])
	assert.Equal(t, "v2.1.0", md["content"])
}

func TestSendRawPassthrough(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	payload := card.Card(
		[]card.Block{
			card.Markdown("custom"),
			card.ColumnSet([]card.Block{card.Column([]card.Block{card.Markdown("a")})}),
		},
		card.WithHeader(card.Header("Raw", "purple")),
	)
	require.NoError(t, n.SendRaw(payload))

	var sent map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(stub.gotBody, &sent))

	// content 原样透传，序列化结果逐字节一致
	expected, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, string(expected), string(sent["card"]))
}

func TestSendLegacyShape(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	require.NoError(t, n.SendLegacy("deploy", "done"))

	env := decodeEnvelope(t, stub.gotBody)
	assert.Equal(t, "text", env.MsgType)
	assert.Nil(t, env.Card)
	assert.Equal(t, map[string]any{"text": "deploy\ndone"}, env.Content)
}

func TestSendTaskPipeline(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	status := 0
	require.NoError(t, n.SendTask(template.TaskInput{
		Name:        "nightly-build",
		Status:      &status,
		Description: "all good",
		Group:       "ci",
		Prefix:      "s3://ci/",
	}))

	env := decodeEnvelope(t, stub.gotBody)
	hdr := env.Card["header"].(map[string]any)
	assert.Equal(t, "green", hdr["template"])
}

func TestSendTaskInvalidStatusNoRequest(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	status := -2
	err := n.SendTask(template.TaskInput{Name: "x", Status: &status})

	var te *template.TemplateError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, stub.calls)
}

func TestSendAlertUnknownSeverity(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	err := n.SendAlert("t", "m", template.Severity("unknown"))

	var te *template.TemplateError
	require.True(t, errors.As(err, &te))
	assert.Zero(t, stub.calls)
}

func TestSendMissingConfig(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{}, stub)

	err := n.SendMessage("t", "c", "blue")

	var ce *conf.ConfigError
	require.True(t, errors.As(err, &ce))
	assert.ElementsMatch(t, []string{conf.KeyWebhookURL, conf.KeyWebhookSecret}, ce.MissingKeys)
	assert.Zero(t, stub.calls)
}

func TestSendDeliveryFailures(t *testing.T) {
	testCases := []struct {
		name       string
		stub       *stubPoster
		statusCode int
		code       int
		timeout    bool
		wrapped    bool
	}{
		{
			name:    "transport error",
			stub:    &stubPoster{err: errors.New("connection refused")},
			wrapped: true,
		},
		{
			name:    "timeout",
			stub:    &stubPoster{err: fasthttp.ErrTimeout},
			timeout: true,
			wrapped: true,
		},
		{
			name:       "http error status",
			stub:       &stubPoster{status: 500, body: []byte(`internal error`)},
			statusCode: 500,
		},
		{
			name:       "protocol rejection",
			stub:       &stubPoster{status: 200, body: []byte(`{"code":19021,"msg":"sign match fail"}`)},
			statusCode: 200,
			code:       19021,
		},
		{
			name:       "legacy rejection fields",
			stub:       &stubPoster{status: 200, body: []byte(`{"StatusCode":1,"StatusMessage":"failed"}`)},
			statusCode: 200,
			code:       1,
		},
		{
			name:       "unparsable success body",
			stub:       &stubPoster{status: 200, body: []byte(`not json`)},
			statusCode: 200,
			wrapped:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, tc.stub)

			err := n.SendMessage("t", "c", "blue")

			var de *DeliveryError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.statusCode, de.StatusCode)
			assert.Equal(t, tc.code, de.Code)
			assert.Equal(t, tc.timeout, de.Timeout)
			if tc.wrapped {
				assert.Error(t, de.Err)
			}
			// 单次尝试，不重试
			assert.Equal(t, 1, tc.stub.calls)
		})
	}
}

func TestTestUsesFixedPayload(t *testing.T) {
	stub := okStub()
	n := newTestNotifier(t, conf.Explicit{WebhookURL: "https://x/hook", WebhookSecret: "s"}, stub)

	require.NoError(t, n.Test())

	env := decodeEnvelope(t, stub.gotBody)
	assert.Equal(t, "interactive", env.MsgType)
	elements := env.Card["body"].(map[string]any)["elements"].([]any)
	require.Len(t, elements, 1)
	assert.Contains(t, elements[0].(map[string]any)["content"], "connectivity test")
}

func TestSettingsResolution(t *testing.T) {
	t.Setenv("LARK_WEBHOOK_URL", "")
	t.Setenv("LARK_WEBHOOK_SECRET", "env-secret")
	t.Setenv("LARK_DEFAULT_TEMPLATE", "")

	n, err := New(conf.Explicit{WebhookURL: "https://explicit"},
		WithFilePath(filepath.Join(t.TempDir(), "absent.toml")))
	require.NoError(t, err)

	s := n.Settings()
	assert.Equal(t, "https://explicit", s.WebhookURL)
	assert.Equal(t, "env-secret", s.WebhookSecret)
}
