// Package handlers validates gateway requests and forwards the valid ones to
// the server tier.
package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ghuser/shareit/pkg/auth"
	"github.com/ghuser/shareit/pkg/errhttp"
	"github.com/ghuser/shareit/pkg/logger"
	"github.com/ghuser/shareit/services/gateway/infrastructure/upstream"
)

// Upstream is the server-tier client. *upstream.Client satisfies it.
type Upstream interface {
	Do(ctx context.Context, req upstream.Request) (*upstream.Response, error)
}

// Proxy turns a chain of checks into a forwarding handler.
type Proxy struct {
	up  Upstream
	log logger.Logger
}

func NewProxy(up Upstream, log logger.Logger) *Proxy {
	return &Proxy{up: up, log: log.With("component", "gateway")}
}

// Handle runs checks in order. The first failing check writes the error
// response; otherwise the request is forwarded with the accumulated query
// and body.
func (p *Proxy) Handle(checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fwd := Forward{Query: url.Values{}}
		for _, check := range checks {
			if !check(w, r, &fwd) {
				return
			}
		}
		p.forward(w, r, fwd)
	}
}

func (p *Proxy) forward(w http.ResponseWriter, r *http.Request, fwd Forward) {
	req := upstream.Request{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  fwd.Query,
		Body:   fwd.Body,
	}
	if id, err := auth.UserIDFromCtx(r.Context()); err == nil {
		req.UserID = id
	}

	resp, err := p.up.Do(r.Context(), req)
	if err != nil {
		p.log.ErrorContext(r.Context(), "upstream call failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
		errhttp.WriteStatus(w, http.StatusInternalServerError, "server unavailable")
		return
	}

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	if len(resp.Body) > 0 {
		if _, err := w.Write(resp.Body); err != nil {
			p.log.WarnContext(r.Context(), "relay response failed", "path", r.URL.Path, "error", err)
		}
	}
}
