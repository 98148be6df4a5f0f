package memora_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/memora/pkg/domain/interfaces"
	"github.com/secmon-lab/memora/pkg/domain/model"
	"github.com/secmon-lab/memora/pkg/domain/types"
	"github.com/secmon-lab/memora/pkg/service/memora"
	"golang.org/x/sync/errgroup"
)

var _ interfaces.MemoraClient = (*memora.Client)(nil)

type server struct {
	*httptest.Server
	hits atomic.Int32
}

func newServer(t *testing.T, routes func(r chi.Router)) *server {
	t.Helper()
	s := &server{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			s.hits.Add(1)
			next.ServeHTTP(w, req)
		})
	})
	routes(r)
	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func newClient(t *testing.T, baseURL string, opts ...memora.Option) *memora.Client {
	t.Helper()
	c, err := memora.New(baseURL, opts...)
	gt.NoError(t, err).Required()
	return c
}

func asAPIError(t *testing.T, err error) *memora.APIError {
	t.Helper()
	var apiErr *memora.APIError
	gt.Bool(t, errors.As(err, &apiErr)).True()
	return apiErr
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    string
		wantErr bool
	}{
		{name: "plain", baseURL: "http://localhost:8080", want: "http://localhost:8080"},
		{name: "trailing slash", baseURL: "http://localhost:8080/", want: "http://localhost:8080"},
		{name: "path prefix", baseURL: "https://example.com/memora/", want: "https://example.com/memora"},
		{name: "query dropped", baseURL: "http://localhost:8080?x=1", want: "http://localhost:8080"},
		{name: "unsupported scheme", baseURL: "ftp://localhost", wantErr: true},
		{name: "no host", baseURL: "http://", wantErr: true},
		{name: "not a url", baseURL: "://bad", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := memora.New(tt.baseURL)
			if tt.wantErr {
				gt.Value(t, err).NotNil()
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, c.BaseURL()).Equal(tt.want)
		})
	}
}

func TestOperationTable(t *testing.T) {
	tests := []struct {
		op      memora.Operation
		method  string
		timeout time.Duration
	}{
		{memora.OpSearch, http.MethodPost, 120 * time.Second},
		{memora.OpThink, http.MethodPost, 120 * time.Second},
		{memora.OpPutMemories, http.MethodPost, 120 * time.Second},
		{memora.OpPutMemoriesAsync, http.MethodPost, 120 * time.Second},
		{memora.OpDeleteMemory, http.MethodDelete, 30 * time.Second},
		{memora.OpListAgents, http.MethodGet, 30 * time.Second},
		{memora.OpGetProfile, http.MethodGet, 30 * time.Second},
		{memora.OpUpdatePersonality, http.MethodPut, 30 * time.Second},
		{memora.OpAddBackground, http.MethodPost, 60 * time.Second},
		{memora.OpGetStats, http.MethodGet, 30 * time.Second},
		{memora.OpListDocuments, http.MethodGet, 30 * time.Second},
		{memora.OpGetDocument, http.MethodGet, 30 * time.Second},
		{memora.OpDeleteDocument, http.MethodDelete, 30 * time.Second},
		{memora.OpListOperations, http.MethodGet, 30 * time.Second},
		{memora.OpCancelOperation, http.MethodDelete, 30 * time.Second},
		{memora.OpListDirectives, http.MethodGet, 30 * time.Second},
		{memora.OpGetDirective, http.MethodGet, 30 * time.Second},
		{memora.OpCreateDirective, http.MethodPost, 60 * time.Second},
		{memora.OpUpdateDirective, http.MethodPatch, 60 * time.Second},
		{memora.OpDeleteDirective, http.MethodDelete, 30 * time.Second},
		{memora.OpListReflections, http.MethodGet, 30 * time.Second},
		{memora.OpGetReflection, http.MethodGet, 30 * time.Second},
		{memora.OpCreateReflection, http.MethodPost, 60 * time.Second},
		{memora.OpUpdateReflection, http.MethodPatch, 60 * time.Second},
		{memora.OpDeleteReflection, http.MethodDelete, 30 * time.Second},
		{memora.OpRefreshReflection, http.MethodPost, 60 * time.Second},
	}

	gt.Array(t, memora.AllOperations()).Length(len(tests))
	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			gt.Value(t, tt.op.Method()).Equal(tt.method)
			gt.Value(t, tt.op.Timeout()).Equal(tt.timeout)
		})
	}

	t.Run("unknown operation falls back to default", func(t *testing.T) {
		gt.Value(t, memora.Operation("nope").Timeout()).Equal(memora.DefaultTimeout)
	})

	t.Run("override applies to one operation", func(t *testing.T) {
		c := newClient(t, "http://localhost:8080", memora.WithTimeout(memora.OpGetStats, time.Second))
		gt.Value(t, c.TimeoutOf(memora.OpGetStats)).Equal(time.Second)
		gt.Value(t, c.TimeoutOf(memora.OpGetProfile)).Equal(memora.ReadTimeout)
	})
}

func TestSearch(t *testing.T) {
	var (
		got    map[string]any
		header http.Header
	)
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/v1/agents/{agentID}/memories/search", func(w http.ResponseWriter, req *http.Request) {
			header = req.Header.Clone()
			gt.NoError(t, json.NewDecoder(req.Body).Decode(&got)).Required()
			respond(w, http.StatusOK, `{
				"results": [
					{"id": "f1", "text": "Alice moved to Paris", "type": "world", "activation": 0.7, "event_date": "2024-03-01"}
				],
				"trace": {"total_time": 0.12}
			}`)
		})
	})

	c := newClient(t, srv.URL, memora.WithAPIKey("k-1"), memora.WithUserAgent("memora/test"))
	resp, err := c.Search(context.Background(), "alice", model.SearchRequest{
		Query:          "where is alice",
		FactType:       []types.FactType{types.FactTypeWorld},
		ThinkingBudget: 100,
		MaxTokens:      4096,
	}, false)
	gt.NoError(t, err).Required()

	gt.Array(t, resp.Results).Length(1)
	gt.Value(t, resp.Results[0].Text).Equal("Alice moved to Paris")
	gt.Value(t, *resp.Results[0].FactType).Equal(types.FactTypeWorld)
	gt.Value(t, *resp.Results[0].EventDate).Equal("2024-03-01")
	gt.Value(t, resp.Results[0].Context).Nil()
	gt.Value(t, *resp.Trace.TotalTime).Equal(0.12)
	gt.Value(t, resp.Trace.ActivationCount).Nil()

	gt.Value(t, got["query"]).Equal("where is alice")
	gt.Value(t, got["fact_type"]).Equal([]any{"world"})
	gt.Value(t, got["trace"]).Equal(false)

	gt.Value(t, header.Get("Accept")).Equal("application/json")
	gt.Value(t, header.Get("Content-Type")).Equal("application/json")
	gt.Value(t, header.Get("Authorization")).Equal("Bearer k-1")
	gt.Value(t, header.Get("User-Agent")).Equal("memora/test")
	_, err = uuid.Parse(header.Get("X-Request-ID"))
	gt.NoError(t, err)
}

func TestStatusError(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/v1/agents/{agentID}/documents/{documentID}", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusNotFound, `{"error":"not found"}`)
		})
	})

	c := newClient(t, srv.URL)
	_, err := c.GetDocument(context.Background(), "alice", "doc-1", false)
	gt.Error(t, err).Is(memora.ErrStatus)

	apiErr := asAPIError(t, err)
	gt.Value(t, apiErr.Kind).Equal(memora.KindStatus)
	gt.Value(t, apiErr.Method).Equal(http.MethodGet)
	gt.Value(t, apiErr.URL).Equal(srv.URL + "/api/v1/agents/alice/documents/doc-1")
	gt.Value(t, apiErr.RequestBody).Equal("")

	status, ok := apiErr.StatusCode()
	gt.Bool(t, ok).True()
	gt.Value(t, status).Equal(404)
	body, ok := apiErr.Body()
	gt.Bool(t, ok).True()
	gt.Value(t, body).Equal(`{"error":"not found"}`)
	gt.String(t, err.Error()).Contains("404")
}

func TestRequestBodyCapturedOnFailure(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/v1/agents/{agentID}/think", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusInternalServerError, `boom`)
		})
	})

	c := newClient(t, srv.URL)
	_, err := c.Think(context.Background(), "alice", model.ThinkRequest{Query: "why", ThinkingBudget: 50}, false)
	apiErr := asAPIError(t, err)
	gt.String(t, apiErr.RequestBody).Contains(`"query":"why"`)
	gt.Value(t, *apiErr.ResponseBody).Equal("boom")
}

func TestListAgents(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		want     []model.Agent
		wantKind memora.ErrorKind
		wantMsg  string
	}{
		{
			name: "success",
			body: `{"agents":["a1","a2"]}`,
			want: []model.Agent{{AgentID: "a1"}, {AgentID: "a2"}},
		},
		{
			name: "empty list",
			body: `{"agents":[]}`,
			want: []model.Agent{},
		},
		{
			name: "both fields prefer success",
			body: `{"agents":["a1"],"error":"partial"}`,
			want: []model.Agent{{AgentID: "a1"}},
		},
		{
			name:     "remote failure",
			body:     `{"error":"db down"}`,
			wantKind: memora.KindRemote,
			wantMsg:  "db down",
		},
		{
			name:     "unknown shape",
			body:     `{"status":"ok"}`,
			wantKind: memora.KindDecode,
		},
		{
			name:     "not an object",
			body:     `["a1"]`,
			wantKind: memora.KindDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newServer(t, func(r chi.Router) {
				r.Get("/api/v1/agents", func(w http.ResponseWriter, req *http.Request) {
					respond(w, http.StatusOK, tt.body)
				})
			})

			agents, err := newClient(t, srv.URL).ListAgents(context.Background(), false)
			if tt.wantKind != 0 {
				apiErr := asAPIError(t, err)
				gt.Value(t, apiErr.Kind).Equal(tt.wantKind)
				gt.Value(t, apiErr.Message).Equal(tt.wantMsg)
				gt.Value(t, *apiErr.Status).Equal(200)
				return
			}
			gt.NoError(t, err).Required()
			gt.Value(t, agents).Equal(tt.want)
		})
	}
}

func TestDecodeError(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/v1/agents/{agentID}/profile", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusOK, `{"agent_id":"alice","name":"Alice"}`)
		})
	})

	_, err := newClient(t, srv.URL).GetProfile(context.Background(), "alice", false)
	gt.Error(t, err).Is(memora.ErrDecode)
	gt.Error(t, err).Is(model.ErrMissingField)

	apiErr := asAPIError(t, err)
	gt.Value(t, *apiErr.Status).Equal(200)
	gt.String(t, *apiErr.ResponseBody).Contains(`"name":"Alice"`)
}

func TestTransportErrors(t *testing.T) {
	t.Run("timeout override fails fast", func(t *testing.T) {
		release := make(chan struct{})
		srv := newServer(t, func(r chi.Router) {
			r.Get("/api/v1/agents/{agentID}/stats", func(w http.ResponseWriter, req *http.Request) {
				select {
				case <-req.Context().Done():
				case <-release:
				}
			})
		})
		defer close(release)

		c := newClient(t, srv.URL, memora.WithTimeout(memora.OpGetStats, 50*time.Millisecond))
		start := time.Now()
		_, err := c.GetStats(context.Background(), "alice", false)
		gt.Bool(t, time.Since(start) < 5*time.Second).True()

		gt.Error(t, err).Is(memora.ErrTransport)
		apiErr := asAPIError(t, err)
		gt.Value(t, apiErr.Status).Nil()
		gt.Value(t, apiErr.ResponseBody).Nil()
		gt.String(t, err.Error()).Contains("timed out")
	})

	t.Run("connection refused", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		_, err := newClient(t, url).ListAgents(context.Background(), false)
		gt.Error(t, err).Is(memora.ErrTransport)
		_, ok := asAPIError(t, err).StatusCode()
		gt.Bool(t, ok).False()
	})

	t.Run("caller cancellation", func(t *testing.T) {
		srv := newServer(t, func(r chi.Router) {})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newClient(t, srv.URL).ListAgents(ctx, false)
		gt.Error(t, err).Is(memora.ErrTransport)
	})
}

func TestPercentEncoding(t *testing.T) {
	var (
		path  string
		query string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		path = req.URL.EscapedPath()
		query = req.URL.RawQuery
		switch req.Method {
		case http.MethodGet:
			respond(w, http.StatusOK, `{"items":[],"total":0,"limit":5,"offset":0}`)
		default:
			respond(w, http.StatusOK, `{"success":true,"message":"ok"}`)
		}
	}))
	t.Cleanup(srv.Close)
	c := newClient(t, srv.URL)

	t.Run("path segments", func(t *testing.T) {
		_, err := c.DeleteDocument(context.Background(), "a/b c", "x?y#z", false)
		gt.NoError(t, err).Required()
		gt.Value(t, path).Equal("/api/v1/agents/a%2Fb%20c/documents/x%3Fy%23z")
	})

	t.Run("query values", func(t *testing.T) {
		q, limit := "a&b=c", 5
		_, err := c.ListDocuments(context.Background(), "alice", model.ListDocumentsQuery{Query: &q, Limit: &limit}, false)
		gt.NoError(t, err).Required()
		gt.Value(t, query).Equal("limit=5&q=a%26b%3Dc")
	})

	t.Run("unset query values are omitted", func(t *testing.T) {
		_, err := c.ListDocuments(context.Background(), "alice", model.ListDocumentsQuery{}, false)
		gt.NoError(t, err).Required()
		gt.Value(t, query).Equal("")
	})
}

func TestVerboseTrace(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/v1/agents/{agentID}/background", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusOK, `{"background":"likes tea"}`)
		})
		r.Get("/api/v1/agents/{agentID}/stats", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusInternalServerError, `{"error":"stats unavailable"}`)
		})
	})

	t.Run("success", func(t *testing.T) {
		var trace bytes.Buffer
		c := newClient(t, srv.URL, memora.WithTraceWriter(&trace))
		resp, err := c.AddBackground(context.Background(), "alice", model.AddBackgroundRequest{Content: "likes tea"}, true)
		gt.NoError(t, err).Required()
		gt.Value(t, resp.Personality).Nil()

		out := trace.String()
		gt.String(t, out).Contains("Request URL: POST " + srv.URL + "/api/v1/agents/alice/background")
		gt.String(t, out).Contains("Request body:")
		gt.String(t, out).Contains(`"content": "likes tea"`)
		gt.String(t, out).Contains("Response status: 200 OK")
		gt.String(t, out).Contains("Response body:")
	})

	t.Run("failure", func(t *testing.T) {
		var trace bytes.Buffer
		c := newClient(t, srv.URL, memora.WithTraceWriter(&trace))
		_, err := c.GetStats(context.Background(), "alice", true)
		gt.Error(t, err).Is(memora.ErrStatus)

		out := trace.String()
		gt.String(t, out).Contains("Request URL: GET")
		gt.String(t, out).Contains("Response status: 500")
		gt.String(t, out).Contains("Error response body:")
		gt.String(t, out).Contains("stats unavailable")
	})

	t.Run("rejected", func(t *testing.T) {
		var trace bytes.Buffer
		c := newClient(t, srv.URL, memora.WithTraceWriter(&trace))
		_, err := c.UpdateReflection(context.Background(), "alice", "r-1", model.UpdateReflectionRequest{}, true)
		gt.Error(t, err).Is(memora.ErrValidation)

		out := trace.String()
		gt.String(t, out).Contains("Request URL: PATCH " + srv.URL + "/api/v1/agents/alice/reflections/r-1")
		gt.String(t, out).Contains("Request rejected: invalid reflection update")
		gt.String(t, out).NotContains("Response status:")
	})

	t.Run("quiet", func(t *testing.T) {
		var trace bytes.Buffer
		c := newClient(t, srv.URL, memora.WithTraceWriter(&trace))
		_, err := c.AddBackground(context.Background(), "alice", model.AddBackgroundRequest{Content: "x"}, false)
		gt.NoError(t, err).Required()
		gt.Value(t, trace.Len()).Equal(0)
	})
}

func TestLocalValidation(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {})
	c := newClient(t, srv.URL)
	ctx := context.Background()

	t.Run("empty directive update", func(t *testing.T) {
		_, err := c.UpdateDirective(ctx, "alice", "d-1", model.UpdateDirectiveRequest{}, false)
		gt.Error(t, err).Is(memora.ErrValidation)
		gt.Error(t, err).Is(model.ErrNoFieldsToUpdate)
		gt.Value(t, asAPIError(t, err).Method).Equal(http.MethodPatch)
	})

	t.Run("reflection update without name", func(t *testing.T) {
		_, err := c.UpdateReflection(ctx, "alice", "r-1", model.UpdateReflectionRequest{}, false)
		gt.Error(t, err).Is(memora.ErrValidation)
		gt.Error(t, err).Is(model.ErrNoFieldsToUpdate)

		apiErr := asAPIError(t, err)
		gt.Value(t, apiErr.Method).Equal(http.MethodPatch)
		gt.Value(t, apiErr.Operation).Equal(memora.OpUpdateReflection)
		gt.Value(t, apiErr.Status).Nil()
	})

	t.Run("dot segment identifiers", func(t *testing.T) {
		_, err := c.GetStats(ctx, "..", false)
		gt.Error(t, err).Is(memora.ErrValidation)

		_, err = c.GetDocument(ctx, "alice", ".", false)
		gt.Error(t, err).Is(memora.ErrValidation)

		_, err = c.RefreshReflection(ctx, "alice", "..", false)
		gt.Error(t, err).Is(memora.ErrValidation)
	})

	t.Run("blank identifiers", func(t *testing.T) {
		_, err := c.GetDocument(ctx, "alice", "", false)
		gt.Error(t, err).Is(memora.ErrValidation)

		_, err = c.GetStats(ctx, "", false)
		gt.Error(t, err).Is(memora.ErrValidation)

		_, err = c.CancelOperation(ctx, "alice", " ", false)
		gt.Error(t, err).Is(memora.ErrValidation)
	})

	gt.Number(t, srv.hits.Load()).Equal(0)
}

func TestDirectiveDefaults(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/v1/agents/{agentID}/directives", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			gt.NoError(t, json.NewDecoder(req.Body).Decode(&body)).Required()
			gt.Value(t, body["tags"]).Equal([]any{})
			respond(w, http.StatusOK, `{"id":"d-1","name":"n","content":"c","priority":0}`)
		})
	})

	d, err := newClient(t, srv.URL).CreateDirective(context.Background(), "alice", model.CreateDirectiveRequest{
		Name: "n", Content: "c", IsActive: true, Tags: []string{},
	}, false)
	gt.NoError(t, err).Required()
	gt.Bool(t, d.IsActive).True()
	gt.Value(t, d.ID).Equal(types.DirectiveID("d-1"))
}

func TestReflectionCreateDefaults(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Post("/api/v1/agents/{agentID}/reflections", func(w http.ResponseWriter, req *http.Request) {
			var body map[string]any
			gt.NoError(t, json.NewDecoder(req.Body).Decode(&body)).Required()
			gt.Value(t, body["max_tokens"]).Equal(float64(model.DefaultReflectionMaxTokens))
			gt.Value(t, body["tags"]).Equal([]any{})
			gt.Value(t, body["source_query"]).Equal("what did alice do")
			respond(w, http.StatusOK, `{"operation_id":"op-9"}`)
		})
	})

	op, err := newClient(t, srv.URL).CreateReflection(context.Background(), "alice", model.CreateReflectionRequest{
		Name: "weekly", SourceQuery: "what did alice do",
	}, false)
	gt.NoError(t, err).Required()
	gt.Value(t, op.OperationID).Equal(types.OperationID("op-9"))
	gt.Value(t, op.Status).Nil()
}

func TestConcurrentUse(t *testing.T) {
	srv := newServer(t, func(r chi.Router) {
		r.Get("/api/v1/agents/{agentID}/operations", func(w http.ResponseWriter, req *http.Request) {
			respond(w, http.StatusOK, `{"agent_id":"`+chi.URLParam(req, "agentID")+`","operations":[]}`)
		})
	})

	var trace bytes.Buffer
	c := newClient(t, srv.URL, memora.WithTraceWriter(&trace))

	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		agentID := types.AgentID("agent-" + string(rune('a'+i)))
		eg.Go(func() error {
			resp, err := c.ListOperations(context.Background(), agentID, true)
			if err != nil {
				return err
			}
			if resp.AgentID != agentID {
				return errors.New("response for wrong agent: " + resp.AgentID.String())
			}
			return nil
		})
	}
	gt.NoError(t, eg.Wait())
	gt.Number(t, srv.hits.Load()).Equal(16)
}

func TestEndpoints(t *testing.T) {
	const (
		profile = `{"agent_id":"alice","name":"Alice","background":"likes tea","personality":{"openness":0.1,"conscientiousness":0.2,"extraversion":0.3,"agreeableness":0.4,"neuroticism":0.5,"bias_strength":0.6}}`
		deleted = `{"success":true,"message":"deleted"}`
	)
	name := "renamed"
	priority := 7

	tests := []struct {
		op      memora.Operation
		pattern string
		params  map[string]string
		body    string
		call    func(ctx context.Context, c *memora.Client) (any, error)
		want    any
	}{
		{
			op:      memora.OpSearch,
			pattern: "/api/v1/agents/{agentID}/memories/search",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"results":[{"text":"Alice moved to Paris"}]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.Search(ctx, "alice", model.SearchRequest{Query: "q"}, false)
				if err != nil {
					return nil, err
				}
				return resp.Results[0].Text, nil
			},
			want: "Alice moved to Paris",
		},
		{
			op:      memora.OpThink,
			pattern: "/api/v1/agents/{agentID}/think",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"text":"she is in Paris","based_on":[],"new_opinions":["Paris suits her"]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.Think(ctx, "alice", model.ThinkRequest{Query: "where", ThinkingBudget: 50}, false)
				if err != nil {
					return nil, err
				}
				return resp.Text, nil
			},
			want: "she is in Paris",
		},
		{
			op:      memora.OpPutMemories,
			pattern: "/api/v1/agents/{agentID}/memories",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"success":true,"stored_count":2}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.PutMemories(ctx, "alice", model.BatchMemoryRequest{Items: []model.MemoryItem{{Content: "a"}, {Content: "b"}}}, false, false)
				if err != nil {
					return nil, err
				}
				return *resp.StoredCount, nil
			},
			want: 2,
		},
		{
			op:      memora.OpPutMemoriesAsync,
			pattern: "/api/v1/agents/{agentID}/memories/async",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"success":true,"job_id":"job-1"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.PutMemories(ctx, "alice", model.BatchMemoryRequest{Items: []model.MemoryItem{{Content: "a"}}}, true, false)
				if err != nil {
					return nil, err
				}
				return *resp.JobID, nil
			},
			want: "job-1",
		},
		{
			op:      memora.OpDeleteMemory,
			pattern: "/api/v1/agents/{agentID}/memories/{unitID}",
			params:  map[string]string{"agentID": "alice", "unitID": "unit-1"},
			body:    deleted,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.DeleteMemory(ctx, "alice", "unit-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Message, nil
			},
			want: "deleted",
		},
		{
			op:      memora.OpListAgents,
			pattern: "/api/v1/agents",
			params:  map[string]string{},
			body:    `{"agents":["alice","bob"]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				agents, err := c.ListAgents(ctx, false)
				if err != nil {
					return nil, err
				}
				return len(agents), nil
			},
			want: 2,
		},
		{
			op:      memora.OpGetProfile,
			pattern: "/api/v1/agents/{agentID}/profile",
			params:  map[string]string{"agentID": "alice"},
			body:    profile,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.GetProfile(ctx, "alice", false)
				if err != nil {
					return nil, err
				}
				return resp.Background, nil
			},
			want: "likes tea",
		},
		{
			op:      memora.OpUpdatePersonality,
			pattern: "/api/v1/agents/{agentID}/profile",
			params:  map[string]string{"agentID": "alice"},
			body:    profile,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.UpdatePersonality(ctx, "alice", model.PersonalityTraits{Openness: 0.1}, false)
				if err != nil {
					return nil, err
				}
				return resp.Name, nil
			},
			want: "Alice",
		},
		{
			op:      memora.OpAddBackground,
			pattern: "/api/v1/agents/{agentID}/background",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"background":"likes tea"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.AddBackground(ctx, "alice", model.AddBackgroundRequest{Content: "likes tea"}, false)
				if err != nil {
					return nil, err
				}
				return resp.Background, nil
			},
			want: "likes tea",
		},
		{
			op:      memora.OpGetStats,
			pattern: "/api/v1/agents/{agentID}/stats",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"agent_id":"alice","total_nodes":3,"total_links":1,"total_documents":1,"nodes_by_fact_type":{"world":3},"links_by_link_type":{},"links_by_fact_type":{},"links_breakdown":{},"pending_operations":0,"failed_operations":0}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.GetStats(ctx, "alice", false)
				if err != nil {
					return nil, err
				}
				return resp.TotalNodes, nil
			},
			want: 3,
		},
		{
			op:      memora.OpListDocuments,
			pattern: "/api/v1/agents/{agentID}/documents",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"items":[],"total":4,"limit":10,"offset":0}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.ListDocuments(ctx, "alice", model.ListDocumentsQuery{}, false)
				if err != nil {
					return nil, err
				}
				return resp.Total, nil
			},
			want: 4,
		},
		{
			op:      memora.OpGetDocument,
			pattern: "/api/v1/agents/{agentID}/documents/{documentID}",
			params:  map[string]string{"agentID": "alice", "documentID": "doc-1"},
			body:    `{"id":"doc-1","agent_id":"alice","original_text":"hello","created_at":"c","updated_at":"u","memory_unit_count":2}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.GetDocument(ctx, "alice", "doc-1", false)
				if err != nil {
					return nil, err
				}
				return resp.OriginalText, nil
			},
			want: "hello",
		},
		{
			op:      memora.OpDeleteDocument,
			pattern: "/api/v1/agents/{agentID}/documents/{documentID}",
			params:  map[string]string{"agentID": "alice", "documentID": "doc-1"},
			body:    deleted,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.DeleteDocument(ctx, "alice", "doc-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Success, nil
			},
			want: true,
		},
		{
			op:      memora.OpListOperations,
			pattern: "/api/v1/agents/{agentID}/operations",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"agent_id":"alice","operations":[]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.ListOperations(ctx, "alice", false)
				if err != nil {
					return nil, err
				}
				return resp.AgentID, nil
			},
			want: types.AgentID("alice"),
		},
		{
			op:      memora.OpCancelOperation,
			pattern: "/api/v1/agents/{agentID}/operations/{operationID}",
			params:  map[string]string{"agentID": "alice", "operationID": "op-1"},
			body:    `{"success":true,"message":"cancelled"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.CancelOperation(ctx, "alice", "op-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Message, nil
			},
			want: "cancelled",
		},
		{
			op:      memora.OpListDirectives,
			pattern: "/api/v1/agents/{agentID}/directives",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"items":[{"id":"d-1","name":"n","content":"c"}]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.ListDirectives(ctx, "alice", false)
				if err != nil {
					return nil, err
				}
				return resp.Items[0].ID, nil
			},
			want: types.DirectiveID("d-1"),
		},
		{
			op:      memora.OpGetDirective,
			pattern: "/api/v1/agents/{agentID}/directives/{directiveID}",
			params:  map[string]string{"agentID": "alice", "directiveID": "d-1"},
			body:    `{"id":"d-1","name":"tone","content":"be brief","priority":3}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.GetDirective(ctx, "alice", "d-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Priority, nil
			},
			want: 3,
		},
		{
			op:      memora.OpCreateDirective,
			pattern: "/api/v1/agents/{agentID}/directives",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"id":"d-2","name":"tone","content":"be brief"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.CreateDirective(ctx, "alice", model.CreateDirectiveRequest{Name: "tone", Content: "be brief", IsActive: true}, false)
				if err != nil {
					return nil, err
				}
				return resp.ID, nil
			},
			want: types.DirectiveID("d-2"),
		},
		{
			op:      memora.OpUpdateDirective,
			pattern: "/api/v1/agents/{agentID}/directives/{directiveID}",
			params:  map[string]string{"agentID": "alice", "directiveID": "d-1"},
			body:    `{"id":"d-1","name":"tone","content":"be brief","priority":7}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.UpdateDirective(ctx, "alice", "d-1", model.UpdateDirectiveRequest{Priority: &priority}, false)
				if err != nil {
					return nil, err
				}
				return resp.Priority, nil
			},
			want: 7,
		},
		{
			op:      memora.OpDeleteDirective,
			pattern: "/api/v1/agents/{agentID}/directives/{directiveID}",
			params:  map[string]string{"agentID": "alice", "directiveID": "d-1"},
			body:    deleted,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.DeleteDirective(ctx, "alice", "d-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Success, nil
			},
			want: true,
		},
		{
			op:      memora.OpListReflections,
			pattern: "/api/v1/agents/{agentID}/reflections",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"items":[{"id":"r-1","name":"weekly","source_query":"q","content":""}]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.ListReflections(ctx, "alice", false)
				if err != nil {
					return nil, err
				}
				return resp.Items[0].ID, nil
			},
			want: types.ReflectionID("r-1"),
		},
		{
			op:      memora.OpGetReflection,
			pattern: "/api/v1/agents/{agentID}/reflections/{reflectionID}",
			params:  map[string]string{"agentID": "alice", "reflectionID": "r-1"},
			body:    `{"id":"r-1","name":"weekly","source_query":"q","content":"Alice travelled","tags":["travel"]}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.GetReflection(ctx, "alice", "r-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Content, nil
			},
			want: "Alice travelled",
		},
		{
			op:      memora.OpCreateReflection,
			pattern: "/api/v1/agents/{agentID}/reflections",
			params:  map[string]string{"agentID": "alice"},
			body:    `{"operation_id":"op-5"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.CreateReflection(ctx, "alice", model.CreateReflectionRequest{Name: "weekly", SourceQuery: "q"}, false)
				if err != nil {
					return nil, err
				}
				return resp.OperationID, nil
			},
			want: types.OperationID("op-5"),
		},
		{
			op:      memora.OpUpdateReflection,
			pattern: "/api/v1/agents/{agentID}/reflections/{reflectionID}",
			params:  map[string]string{"agentID": "alice", "reflectionID": "r-1"},
			body:    `{"id":"r-1","name":"renamed","source_query":"q","content":""}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.UpdateReflection(ctx, "alice", "r-1", model.UpdateReflectionRequest{Name: &name}, false)
				if err != nil {
					return nil, err
				}
				return resp.Name, nil
			},
			want: "renamed",
		},
		{
			op:      memora.OpDeleteReflection,
			pattern: "/api/v1/agents/{agentID}/reflections/{reflectionID}",
			params:  map[string]string{"agentID": "alice", "reflectionID": "r-1"},
			body:    deleted,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.DeleteReflection(ctx, "alice", "r-1", false)
				if err != nil {
					return nil, err
				}
				return resp.Success, nil
			},
			want: true,
		},
		{
			op:      memora.OpRefreshReflection,
			pattern: "/api/v1/agents/{agentID}/reflections/{reflectionID}/refresh",
			params:  map[string]string{"agentID": "alice", "reflectionID": "r-1"},
			body:    `{"operation_id":"op-6","status":"pending"}`,
			call: func(ctx context.Context, c *memora.Client) (any, error) {
				resp, err := c.RefreshReflection(ctx, "alice", "r-1", false)
				if err != nil {
					return nil, err
				}
				return *resp.Status, nil
			},
			want: types.OperationStatusPending,
		},
	}

	covered := make(map[memora.Operation]bool, len(tests))
	for _, tt := range tests {
		covered[tt.op] = true
	}
	for _, op := range memora.AllOperations() {
		gt.Bool(t, covered[op]).True()
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			var (
				method string
				params = map[string]string{}
			)
			srv := newServer(t, func(r chi.Router) {
				r.MethodFunc(tt.op.Method(), tt.pattern, func(w http.ResponseWriter, req *http.Request) {
					method = req.Method
					for key := range tt.params {
						params[key] = chi.URLParam(req, key)
					}
					respond(w, http.StatusOK, tt.body)
				})
			})

			got, err := tt.call(context.Background(), newClient(t, srv.URL))
			gt.NoError(t, err).Required()
			gt.Value(t, got).Equal(tt.want)
			gt.Value(t, method).Equal(tt.op.Method())
			gt.Value(t, params).Equal(tt.params)
			gt.Number(t, srv.hits.Load()).Equal(1)
		})
	}
}
