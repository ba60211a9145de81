// Copyright 2026 The fetchx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package fetchx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"

	"github.com/gofrost/fetchx/request"
)

var httpServer = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))
var http2Server = httptest.NewUnstartedServer(http.HandlerFunc(serverHandler))

func TestMain(m *testing.M) {
	httpServer.Start()
	defer httpServer.Close()
	http2Server.EnableHTTP2 = true
	http2Server.StartTLS()
	defer http2Server.Close()
	os.Exit(m.Run())
}

// echo is the shape the test server answers with.
type echo struct {
	Method string `json:"method"`
	Proto  string `json:"proto"`
	Query  string `json:"query"`
	Body   string `json:"body"`
}

var (
	failLock   sync.Mutex
	failCounts = make(map[string]int)
)

// serverHandler echoes the request back as JSON. Two query parameters
// steer it: status sets the response code, and fails=N (keyed by the
// key parameter) makes the first N hits for that key answer 500.
func serverHandler(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	if s := r.URL.Query().Get("status"); s != "" {
		status, _ = strconv.Atoi(s)
	}
	if f := r.URL.Query().Get("fails"); f != "" {
		n, _ := strconv.Atoi(f)
		key := r.URL.Query().Get("key")
		failLock.Lock()
		failCounts[key]++
		hit := failCounts[key]
		failLock.Unlock()
		if hit <= n {
			status = http.StatusInternalServerError
		}
	}

	body, _ := io.ReadAll(r.Body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(echo{
		Method: r.Method,
		Proto:  r.Proto,
		Query:  r.URL.RawQuery,
		Body:   string(body),
	})
}

func TestServerSend(t *testing.T) {
	t.Parallel()
	c := &Client{HTTPDoer: httpServer.Client()}

	s, err := request.New("POST", httpServer.URL+"/echo").
		Query("page", "2").
		Body("ping").
		Build()
	require.NoError(t, err)

	res, err := c.Send(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var e echo
	require.NoError(t, res.Unmarshal(&e))
	assert.Equal(t, "POST", e.Method)
	assert.Equal(t, "page=2", e.Query)
	assert.Equal(t, "ping", e.Body)
}

func TestServerSendRetries(t *testing.T) {
	t.Parallel()
	c := &Client{HTTPDoer: httpServer.Client()}

	s, err := request.New("GET", httpServer.URL+"/unstable").
		Query("fails", "2").
		Query("key", "send-retries").
		Retries(2).
		Build()
	require.NoError(t, err)

	res, err := c.Send(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 3, res.Attempts())
}

func TestServerBatch(t *testing.T) {
	t.Parallel()
	c := &Client{HTTPDoer: httpServer.Client(), Concurrency: 4}

	var q Queue
	steady, err := request.New("GET", httpServer.URL+"/steady").Build()
	require.NoError(t, err)
	flaky, err := request.New("GET", httpServer.URL+"/unstable").
		Query("fails", "1").
		Query("key", "batch-flaky").
		Retries(1).
		Build()
	require.NoError(t, err)
	missing, err := request.New("GET", httpServer.URL+"/missing").
		Query("status", "404").
		Build()
	require.NoError(t, err)
	q.Add(steady)
	q.Add(flaky)
	q.Add(missing)

	out, err := c.DoBatch(context.Background(), &q)
	require.NoError(t, err)
	require.Len(t, out, 3)

	bySpec := make(map[*request.Spec]*request.Result)
	for _, res := range out {
		bySpec[res.Spec] = res
	}
	assert.Equal(t, http.StatusOK, bySpec[steady].StatusCode)
	assert.Equal(t, 1, bySpec[steady].Attempts())
	assert.Equal(t, http.StatusOK, bySpec[flaky].StatusCode)
	assert.Equal(t, 2, bySpec[flaky].Attempts())
	assert.Equal(t, http.StatusNotFound, bySpec[missing].StatusCode)
	assert.Equal(t, 1, bySpec[missing].Attempts())
}

func TestServerHTTP2(t *testing.T) {
	t.Parallel()
	base, ok := http2Server.Client().Transport.(*http.Transport)
	require.True(t, ok)
	tr := &http.Transport{TLSClientConfig: base.TLSClientConfig}
	require.NoError(t, http2.ConfigureTransport(tr))
	c := &Client{HTTPDoer: &http.Client{Transport: tr}}

	res, err := c.Get(context.Background(), http2Server.URL+"/echo")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var e echo
	require.NoError(t, res.Unmarshal(&e))
	assert.Equal(t, "HTTP/2.0", e.Proto)
}
