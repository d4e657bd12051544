package api

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/platinummonkey/mxlint/pkg/httputil"
	"github.com/platinummonkey/mxlint/pkg/linter"
	"github.com/platinummonkey/mxlint/pkg/mxgraph"
)

// handleLint lints a raw diagram XML body.
func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.metrics.lintRequests.WithLabelValues("rejected").Inc()
		httputil.WriteBadRequest(w, "failed to read request body")
		return
	}
	if len(bytes.TrimSpace(body)) == 0 {
		s.metrics.lintRequests.WithLabelValues("rejected").Inc()
		httputil.WriteBadRequest(w, "request body is empty")
		return
	}

	key := s.cache.key(body)
	if result, ok := s.cache.get(key); ok {
		s.metrics.cacheHits.Inc()
		s.metrics.lintRequests.WithLabelValues("ok").Inc()
		httputil.WriteSuccess(w, lintResponse(result, true))
		return
	}
	s.metrics.cacheMisses.Inc()

	doc, err := mxgraph.Parse(bytes.NewReader(body))
	if err != nil {
		var parseErr *mxgraph.ParseError
		if errors.As(err, &parseErr) {
			s.metrics.lintRequests.WithLabelValues("malformed").Inc()
			httputil.WriteBadRequest(w, "malformed XML: "+parseErr.Err.Error())
			return
		}
		s.metrics.lintRequests.WithLabelValues("error").Inc()
		httputil.WriteInternalError(w, err)
		return
	}

	start := time.Now()
	result := s.engine.Validate(doc)
	s.metrics.lintDuration.Observe(time.Since(start).Seconds())

	s.metrics.findings.WithLabelValues(string(linter.SeverityError)).Add(float64(len(result.Errors)))
	s.metrics.findings.WithLabelValues(string(linter.SeverityWarning)).Add(float64(len(result.Warnings)))
	s.metrics.lintRequests.WithLabelValues("ok").Inc()

	s.cache.set(key, result)

	httputil.WriteSuccess(w, lintResponse(result, false))
}

// handleListRules lists the registered rules in battery order.
func (s *Server) handleListRules(w http.ResponseWriter, r *http.Request) {
	all := s.engine.Registry().AllRules()

	infos := make([]RuleInfo, 0, len(all))
	for _, rule := range all {
		infos = append(infos, RuleInfo{
			Name:        rule.Name(),
			Severity:    rule.Severity(),
			Description: rule.Description(),
		})
	}

	httputil.WriteSuccess(w, infos)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, HealthResponse{Status: "ok"})
}
