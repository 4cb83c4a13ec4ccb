package middleware

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"
)

func tracing(trace *[]string, name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*trace = append(*trace, name+">")
			next.ServeHTTP(w, r)
			*trace = append(*trace, "<"+name)
		})
	}
}

func TestChain(t *testing.T) {
	tests := []struct {
		name  string
		build func(trace *[]string) []Middleware
		want  []string
	}{
		{
			name:  "empty",
			build: func(*[]string) []Middleware { return nil },
			want:  []string{"h"},
		},
		{
			name: "first is outermost",
			build: func(tr *[]string) []Middleware {
				return []Middleware{tracing(tr, "auth"), tracing(tr, "limit")}
			},
			want: []string{"auth>", "limit>", "h", "<limit", "<auth"},
		},
		{
			name: "nil entries skipped",
			build: func(tr *[]string) []Middleware {
				return []Middleware{nil, tracing(tr, "auth"), nil}
			},
			want: []string{"auth>", "h", "<auth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trace []string
			h := Chain(tt.build(&trace)...)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				trace = append(trace, "h")
				w.WriteHeader(http.StatusAccepted)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/records", nil))

			if !slices.Equal(trace, tt.want) {
				t.Errorf("trace = %v, want %v", trace, tt.want)
			}
			if rec.Code != http.StatusAccepted {
				t.Errorf("status = %d", rec.Code)
			}
		})
	}
}
