// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/net/http/httpguts"
)

var template, _ = http.NewRequest("GET", "/", nil)

// A Spec is an immutable description of one logical HTTP call, including
// the retry budget and hooks the executors consult while running it.
//
// A Spec may translate into several lower-level http.Request attempts if
// earlier attempts need to be retried. Specs are produced by a Builder;
// once a Spec has been handed to an executor it must not be modified.
// The same Spec may be enqueued into a batch queue any number of times,
// but it must belong to at most one in-flight queue at a time.
type Spec struct {
	// Method is the HTTP method. The Builder defaults it to GET.
	Method string

	// URL is the fully resolved target of the call, with any query
	// pairs added through Builder.Query already appended.
	URL *urlpkg.URL

	// Header contains the request headers. Within one key, the last
	// value written through the Builder wins.
	Header map[string]string

	// Body is the pre-buffered request body. A nil or empty body means
	// no body is sent.
	Body []byte

	// Retries is the number of additional attempts allowed beyond the
	// first. Zero means a single attempt.
	Retries int

	// Hooks holds the optional before/after callbacks for this call.
	Hooks Hooks

	// ID uniquely identifies the Spec. It is assigned by Build and is
	// useful for correlating hook and log output across attempts.
	ID string
}

// Target returns the effective request target: the URL including any
// appended query string.
func (s *Spec) Target() string {
	return s.URL.String()
}

// NewRequest materializes one HTTP request attempt from the Spec. The
// context is attached to the request as-is; the engine imposes no
// deadline of its own.
//
// Each call returns an independent request with a fresh header map, so
// attempts never observe another attempt's mutations.
func (s *Spec) NewRequest(ctx context.Context) *http.Request {
	r := template.WithContext(ctx)
	r.Method = s.Method
	r.URL = s.URL
	r.Host = s.URL.Host
	r.Header = make(http.Header, len(s.Header))
	for k, v := range s.Header {
		r.Header.Set(k, v)
	}
	if len(s.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(s.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(s.Body)), nil
		}
		r.ContentLength = int64(len(s.Body))
	}
	return r
}

// A Builder accumulates the parts of a Spec through a fluent chain and
// validates them in Build. Builders are not safe for concurrent use.
//
//	spec, err := request.New("POST", "https://api.example.com/items").
//		Header("Authorization", "Bearer "+token).
//		Query("dry_run", "true").
//		JSON(item).
//		Retries(2).
//		Build()
type Builder struct {
	method  string
	url     string
	header  map[string]string
	query   []param
	body    interface{}
	json    bool
	retries int
	hooks   Hooks
}

type param struct {
	key, value string
}

// New starts a Builder for the given method and URL. An empty method
// means GET. The URL must be absolute by the time Build is called.
func New(method, url string) *Builder {
	return &Builder{method: method, url: url}
}

// Header sets a request header. Setting the same key again replaces the
// earlier value.
func (b *Builder) Header(key, value string) *Builder {
	if b.header == nil {
		b.header = make(map[string]string)
	}
	b.header[key] = value
	return b
}

// Query appends a query parameter. Pairs are percent-encoded as they
// are added and keep their insertion order in the final URL. Repeated
// keys are allowed.
func (b *Builder) Query(key, value string) *Builder {
	b.query = append(b.query, param{
		key:   urlpkg.QueryEscape(key),
		value: urlpkg.QueryEscape(value),
	})
	return b
}

// Body sets the request body. The body may be nil, a string, a []byte,
// an io.Reader, or an io.ReadCloser; readers are fully buffered (and
// closed, if applicable) during Build.
func (b *Builder) Body(body interface{}) *Builder {
	b.body = body
	b.json = false
	return b
}

// JSON sets the request body to the JSON encoding of v and, unless the
// caller sets one explicitly, a Content-Type of application/json. The
// encoding leaves Unicode and slashes unescaped.
func (b *Builder) JSON(v interface{}) *Builder {
	b.body = v
	b.json = true
	return b
}

// Retries sets the retry budget: the number of additional attempts
// allowed beyond the first. Build rejects negative values.
func (b *Builder) Retries(n int) *Builder {
	b.retries = n
	return b
}

// Before installs the hook invoked before every attempt of the Spec.
func (b *Builder) Before(h BeforeHook) *Builder {
	b.hooks.Before = h
	return b
}

// After installs the hook invoked after every attempt of the Spec.
func (b *Builder) After(h AfterHook) *Builder {
	b.hooks.After = h
	return b
}

// Build validates the accumulated state and returns the finished Spec.
//
// Build copies the header and query state out of the Builder, so
// mutating the Builder after Build does not affect the returned Spec.
// A []byte body is adopted as-is and must not be modified afterwards.
func (b *Builder) Build() (*Spec, error) {
	method := b.method
	if method == "" {
		method = "GET"
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("fetchx/request: invalid method %q", method)
	}
	if b.retries < 0 {
		return nil, fmt.Errorf("fetchx/request: negative retry budget %d", b.retries)
	}
	u, err := urlpkg.Parse(b.url)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("fetchx/request: URL %q is not absolute", b.url)
	}
	u.Host = removeEmptyPort(u.Host)
	if qs := encodeQuery(b.query); qs != "" {
		if u.RawQuery != "" {
			u.RawQuery += "&" + qs
		} else {
			u.RawQuery = qs
		}
	}

	header := make(map[string]string, len(b.header)+1)
	for k, v := range b.header {
		if !httpguts.ValidHeaderFieldName(k) {
			return nil, fmt.Errorf("fetchx/request: invalid header name %q", k)
		}
		if !httpguts.ValidHeaderFieldValue(v) {
			return nil, fmt.Errorf("fetchx/request: invalid header value for %q", k)
		}
		header[k] = v
	}

	var body []byte
	if b.json {
		body, err = jsonBody(b.body)
		if err != nil {
			return nil, err
		}
		if _, ok := header["Content-Type"]; !ok {
			header["Content-Type"] = "application/json"
		}
	} else {
		body, err = BodyBytes(b.body)
		if err != nil {
			return nil, err
		}
	}

	return &Spec{
		Method:  method,
		URL:     u,
		Header:  header,
		Body:    body,
		Retries: b.retries,
		Hooks:   b.hooks,
		ID:      uuid.NewString(),
	}, nil
}

func encodeQuery(params []param) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, p := range params {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(p.key)
		sb.WriteByte('=')
		sb.WriteString(p.value)
	}
	return sb.String()
}

// validMethod reports whether method is a valid RFC 7230 token. The
// token grammar is the same one header field names use, so the check
// is delegated to httpguts.
func validMethod(method string) bool {
	return httpguts.ValidHeaderFieldName(method)
}

// hasPort is lifted verbatim from net/http/http.go
//
// Given a string of the form "host", "host:port", or "[ipv6::address]:port",
// return true if the string includes a port.
func hasPort(s string) bool { return strings.LastIndex(s, ":") > strings.LastIndex(s, "]") }

// removeEmptyPort is lifted verbatim from net/http/http.go
//
// removeEmptyPort strips the empty port in ":port" to ""
// as mandated by RFC 3986 Section 6.2.3.
func removeEmptyPort(host string) string {
	if hasPort(host) {
		return strings.TrimSuffix(host, ":")
	}
	return host
}
