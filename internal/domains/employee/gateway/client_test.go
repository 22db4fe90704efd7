package gateway

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"employee-facade/internal/domains/employee/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resource = "/api/v1/employee"

type upstream struct {
	calls   atomic.Int32
	handler http.HandlerFunc
	server  *httptest.Server
}

func newUpstream(t *testing.T, handler http.HandlerFunc) (*upstream, *Client) {
	t.Helper()

	u := &upstream{handler: handler}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.calls.Add(1)
		u.handler(w, r)
	}))
	t.Cleanup(u.server.Close)

	client, err := New(Options{BaseURL: u.server.URL + "/", EmployeeResource: resource, Timeout: 2 * time.Second})
	require.NoError(t, err)
	return u, client
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func employee(name string, salary int) model.Employee {
	return model.Employee{
		ID:     uuid.NewString(),
		Name:   name,
		Salary: salary,
		Age:    30,
		Title:  "Engineer",
		Email:  name + "@company.com",
	}
}

func TestNew(t *testing.T) {
	_, err := New(Options{BaseURL: " ", EmployeeResource: resource})
	assert.Error(t, err)

	_, err = New(Options{BaseURL: "http://localhost:8112", EmployeeResource: ""})
	assert.Error(t, err)

	c, err := New(Options{BaseURL: "http://localhost:8112/", EmployeeResource: "api/v1/employee/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8112/api/v1/employee", c.collectionURL)
	assert.Equal(t, "http://localhost:8112/api/v1/employee/a%2Fb", c.itemURL("a/b"))
}

func TestClient_FetchAll(t *testing.T) {
	t.Run("success keeps upstream order", func(t *testing.T) {
		alice, bob := employee("Alice", 50000), employee("Bob", 90000)
		u, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, resource, r.URL.Path)
			writeJSON(w, http.StatusOK, model.ListEnvelope{Status: "Successfully processed request.", Data: []model.Employee{alice, bob}})
		})

		got, err := c.FetchAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []model.Employee{alice, bob}, got)
		assert.EqualValues(t, 1, u.calls.Load())
	})

	t.Run("null data is an empty list", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"ok","data":null}`)
		})

		got, err := c.FetchAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		u, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.FetchAll(context.Background())
		require.Error(t, err)
		assert.True(t, model.IsRateLimited(err))
		assert.EqualValues(t, 1, u.calls.Load())
	})

	t.Run("500 is an integration fault carrying the status", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})

		_, err := c.FetchAll(context.Background())
		require.Error(t, err)
		assert.Equal(t, model.KindIntegration, model.KindOf(err))

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusInternalServerError, httpErr.StatusCode)
	})

	t.Run("malformed body is an integration fault", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"data": [`)
		})

		_, err := c.FetchAll(context.Background())
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})

	t.Run("record without email is rejected", func(t *testing.T) {
		broken := employee("Alice", 1)
		broken.Email = ""
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, model.ListEnvelope{Data: []model.Employee{broken}})
		})

		_, err := c.FetchAll(context.Background())
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})

	t.Run("transport fault is an integration fault", func(t *testing.T) {
		c, err := New(Options{BaseURL: "http://127.0.0.1:1", EmployeeResource: resource, Timeout: time.Second})
		require.NoError(t, err)

		_, err = c.FetchAll(context.Background())
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})
}

func TestClient_FetchByID(t *testing.T) {
	t.Run("returns the requested record", func(t *testing.T) {
		want := employee("Cara", 90000)
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, resource+"/"+want.ID, r.URL.Path)
			writeJSON(w, http.StatusOK, model.SingleEnvelope{Data: &want})
		})

		got, err := c.FetchByID(context.Background(), want.ID)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	})

	t.Run("blank id makes no call", func(t *testing.T) {
		u, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})

		for _, id := range []string{"", "   "} {
			_, err := c.FetchByID(context.Background(), id)
			assert.True(t, model.IsInvalidArgument(err))
		}
		assert.EqualValues(t, 0, u.calls.Load())
	})

	t.Run("404 is not found", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := c.FetchByID(context.Background(), uuid.NewString())
		assert.True(t, model.IsNotFound(err))
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.FetchByID(context.Background(), uuid.NewString())
		assert.True(t, model.IsRateLimited(err))
	})

	t.Run("mismatched id is an integration fault", func(t *testing.T) {
		other := employee("Dan", 1)
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, model.SingleEnvelope{Data: &other})
		})

		_, err := c.FetchByID(context.Background(), uuid.NewString())
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})

	t.Run("null data is an integration fault", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"status":"ok","data":null}`)
		})

		_, err := c.FetchByID(context.Background(), uuid.NewString())
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})

	t.Run("zero salary is an integration fault", func(t *testing.T) {
		unpaid := employee("Eve", 0)
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, model.SingleEnvelope{Data: &unpaid})
		})

		_, err := c.FetchByID(context.Background(), unpaid.ID)
		assert.Equal(t, model.KindIntegration, model.KindOf(err))
	})
}

func TestClient_Create(t *testing.T) {
	req := model.CreateEmployeeRequest{Name: "Jane", Salary: 85000, Age: 34, Title: "Engineer"}

	t.Run("posts the request body", func(t *testing.T) {
		created := model.Employee{ID: uuid.NewString(), Name: "Jane", Salary: 85000, Age: 34, Title: "Engineer", Email: "jane@company.com"}
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"name": "Jane", "salary": float64(85000), "age": float64(34), "title": "Engineer"}, body)

			writeJSON(w, http.StatusOK, model.SingleEnvelope{Data: &created})
		})

		got, err := c.Create(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, created, *got)
	})

	t.Run("age outside gateway bounds makes no call", func(t *testing.T) {
		u, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})

		young := req
		young.Age = 10
		_, err := c.Create(context.Background(), young)
		assert.True(t, model.IsInvalidArgument(err))
		assert.EqualValues(t, 0, u.calls.Load())
	})

	t.Run("429 is rate limited", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.Create(context.Background(), req)
		assert.True(t, model.IsRateLimited(err))
	})

	t.Run("other status is creation failed", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		_, err := c.Create(context.Background(), req)
		assert.True(t, model.IsCreationFailed(err))
	})
}

func TestClient_DeleteByName(t *testing.T) {
	t.Run("sends the name in the body", func(t *testing.T) {
		_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, resource, r.URL.Path)

			var body model.DeleteByNameRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Bob", body.Name)

			_, _ = io.WriteString(w, `{"status":"ok","data":true}`)
		})

		assert.NoError(t, c.DeleteByName(context.Background(), "Bob"))
	})

	tests := []struct {
		name   string
		status int
		body   string
		check  func(error) bool
	}{
		{"false flag", http.StatusOK, `{"status":"ok","data":false}`, model.IsDeletionFailed},
		{"missing flag", http.StatusOK, `{"status":"ok"}`, model.IsDeletionFailed},
		{"undecodable body", http.StatusOK, `not json`, model.IsDeletionFailed},
		{"server error", http.StatusInternalServerError, ``, model.IsDeletionFailed},
		{"rate limited", http.StatusTooManyRequests, ``, model.IsRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			err := c.DeleteByName(context.Background(), "Bob")
			require.Error(t, err)
			assert.True(t, tt.check(err), "unexpected error: %v", err)
		})
	}

	t.Run("blank name makes no call", func(t *testing.T) {
		u, c := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {})

		assert.True(t, model.IsInvalidArgument(c.DeleteByName(context.Background(), " ")))
		assert.EqualValues(t, 0, u.calls.Load())
	})
}

func TestHTTPError_TruncatesBody(t *testing.T) {
	body := make([]byte, 2000)
	for i := range body {
		body[i] = 'x'
	}
	err := newHTTPError(http.MethodGet, "http://upstream/api", http.StatusBadGateway, body)

	assert.Contains(t, err.Error(), "status=502")
	assert.Less(t, len(err.Error()), 700)
}

func TestSnippet_KeepsRunesWhole(t *testing.T) {
	// "é" is two bytes, so a cut at byte 4 lands inside the second one
	got := snippet([]byte("aéé"), 4)
	assert.Equal(t, "aé...", got)
	assert.True(t, utf8.ValidString(got))

	assert.Equal(t, "aéé", snippet([]byte("  aéé  "), 5))
	assert.Equal(t, "...", snippet([]byte("éé"), 1))
}
