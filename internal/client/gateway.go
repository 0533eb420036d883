package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"

	"petshop/catalog/internal/config"
	"petshop/catalog/internal/domain"
)

// Generic texts used when the server gives no message of its own.
const (
	MessageNetwork  = "Connection error, please try again"
	MessageRejected = "The request was rejected by the server"
)

// Kind classifies the outcome of a gateway call.
type Kind int

const (
	KindOK       Kind = iota // server answered success=true
	KindBusiness             // server answered success=false
	KindNetwork              // no usable answer
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindBusiness:
		return "business"
	case KindNetwork:
		return "network"
	default:
		return "unknown"
	}
}

// Operation describes one REST call.
type Operation struct {
	Name   string // e.g. "sizes.reorder", for logs
	Method string
	Path   string
	Query  map[string]string
}

// Result is the normalized outcome of a call. Every call produces one.
type Result struct {
	Kind     Kind
	Data     json.RawMessage
	Message  string
	Metadata *domain.Metadata
}

func (r Result) OK() bool {
	return r.Kind == KindOK
}

// HasData reports whether the envelope carried a non-null data field.
func (r Result) HasData() bool {
	return len(r.Data) > 0 && string(r.Data) != "null"
}

// Decode unmarshals the data field of an OK result.
func Decode[T any](r Result) (T, error) {
	var v T
	if !r.HasData() {
		return v, errors.New("response carries no data")
	}
	if err := json.Unmarshal(r.Data, &v); err != nil {
		return v, fmt.Errorf("failed to decode %T: %w", v, err)
	}
	return v, nil
}

// envelope is the uniform wire shape of every endpoint.
type envelope struct {
	Success  *bool            `json:"success"`
	Data     json.RawMessage  `json:"data"`
	Message  *string          `json:"message"`
	Metadata *domain.Metadata `json:"metadata"`
}

// Gateway performs single REST calls and folds every outcome into a Result.
type Gateway interface {
	Call(ctx context.Context, op Operation, payload any) Result
}

type restyGateway struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
}

func NewGateway(cfg config.APIConfig) Gateway {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}
	if cfg.Token != "" {
		client.SetAuthToken(cfg.Token)
	}
	if cfg.Proxy != "" {
		client.SetProxy(cfg.Proxy)
		log.Infof("🔗 Using proxy: %s", cfg.Proxy)
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &restyGateway{
		rl:         rl,
		httpClient: client,
	}
}

func (g *restyGateway) Call(ctx context.Context, op Operation, payload any) Result {
	g.rl.Take()

	req := g.httpClient.R().SetContext(ctx)
	if len(op.Query) > 0 {
		req.SetQueryParams(op.Query)
	}
	if payload != nil {
		req.SetBody(payload)
	}

	resp, err := req.Execute(op.Method, op.Path)
	if err != nil {
		if ctx.Err() != nil {
			log.Warnf("Request %s cancelled: %v", op.Name, ctx.Err())
		} else {
			log.Warnf("Request %s failed: %v", op.Name, err)
		}
		return Result{Kind: KindNetwork, Message: MessageNetwork}
	}

	log.Debugf("%s %s -> %d", op.Method, op.Path, resp.StatusCode())
	return normalize(op, resp.StatusCode(), resp.IsError(), resp.String())
}

// normalize maps a raw HTTP answer onto a Result. A parseable envelope with
// success=false is a business error whatever the status code; an error status
// without one is treated as a transport failure.
func normalize(op Operation, status int, isError bool, body string) Result {
	var env envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil || env.Success == nil {
		log.Warnf("Request %s returned an unreadable body (HTTP %d)", op.Name, status)
		return Result{Kind: KindNetwork, Message: MessageNetwork}
	}

	message := ""
	if env.Message != nil {
		message = *env.Message
	}

	if !*env.Success {
		if message == "" {
			message = MessageRejected
		}
		log.Warnf("Request %s rejected (HTTP %d): %s", op.Name, status, message)
		return Result{Kind: KindBusiness, Message: message, Metadata: env.Metadata}
	}

	if isError {
		log.Warnf("Request %s returned HTTP %d with a success envelope", op.Name, status)
		return Result{Kind: KindNetwork, Message: MessageNetwork}
	}

	return Result{
		Kind:     KindOK,
		Data:     env.Data,
		Message:  message,
		Metadata: env.Metadata,
	}
}
