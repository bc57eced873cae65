package server

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/matzehuels/ganttline/pkg/buildinfo"
	"github.com/matzehuels/ganttline/pkg/chart"
	"github.com/matzehuels/ganttline/pkg/errors"
	chartio "github.com/matzehuels/ganttline/pkg/io"
	"github.com/matzehuels/ganttline/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	s.serve(w, r, format)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	s.serve(w, r, pipeline.FormatJSON)
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request, format string) {
	c, err := readChart(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := s.requestOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus(res.CacheInfo))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// requestOptions layers the query parameters over the server defaults.
func (s *Server) requestOptions(r *http.Request, format string) (pipeline.Options, error) {
	opts := s.opts.Defaults
	opts.Formats = []string{format}
	q := r.URL.Query()

	if v := q.Get("view"); v != "" {
		mode, err := chart.ParseViewMode(v)
		if err != nil {
			return opts, err
		}
		opts.ViewMode = mode
	}
	if v := q.Get("rtl"); v != "" {
		rtl, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid rtl %q", v)
		}
		opts.Scene.RTL = rtl
	}
	if v := q.Get("now"); v != "" {
		now, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid now %q (want RFC 3339)", v)
		}
		opts.Now = now
	}
	return opts, nil
}

// readChart decodes the body in the encoding named by Content-Type.
func readChart(w http.ResponseWriter, r *http.Request) (*chart.Chart, error) {
	format := chartio.JSON
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid Content-Type %q", ct)
		}
		switch mt {
		case "application/json":
		case "application/yaml", "application/x-yaml", "text/yaml":
			format = chartio.YAML
		case "application/toml", "text/toml":
			format = chartio.TOML
		default:
			return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported Content-Type %q", mt)
		}
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errors.Wrap(errors.ErrCodeTooLarge, err, "chart body exceeds %d bytes", tooLarge.Limit)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read request body")
	}
	return chartio.ReadChart(bytes.NewReader(data), format)
}

func cacheStatus(ci pipeline.CacheInfo) string {
	if ci.RenderHit {
		return "HIT"
	}
	return "MISS"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "err", err)
	}
	body := map[string]string{"error": errors.UserMessage(err)}
	if code := errors.GetCode(err); code != "" {
		body["code"] = string(code)
	}
	writeJSON(w, status, body)
}
