// Package server exposes timetable parsing over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/exporter"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/ingest"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/reader"
	"github.com/Samwelabuyeka/hallpass-hq-sub000/pkg/timetable"
)

// maxUpload bounds the multipart body; registrar sheets are well below it.
const maxUpload = 16 << 20

// Server handles timetable uploads.
type Server struct {
	router   *chi.Mux
	importer *ingest.Importer
	log      *slog.Logger
	defaults timetable.Params
	options  reader.Options
}

// New creates a server. defaults fill in form fields the client omits.
func New(importer *ingest.Importer, log *slog.Logger, defaults timetable.Params, opts reader.Options) *Server {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Server{
		router:   chi.NewRouter(),
		importer: importer,
		log:      log,
		defaults: defaults,
		options:  opts,
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Recoverer)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)
	s.router.Post("/timetables/parse", s.handleParse)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	if err := r.ParseMultipartForm(maxUpload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read upload")
		return
	}

	params, err := s.formParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.importer.ImportBytes(header.Filename, data, params, s.options)
	if err != nil {
		s.log.Warn("import rejected", "file", header.Filename,
			"request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, statusFor(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := exporter.WriteJSON(res, w); err != nil {
		s.log.Error("failed to write response", "error", err)
	}
}

// formParams reads semester, year and institution_id, falling back to the
// server defaults for absent fields.
func (s *Server) formParams(r *http.Request) (timetable.Params, error) {
	p := s.defaults
	if v := strings.TrimSpace(r.FormValue("semester")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return p, errors.New("semester must be a positive integer")
		}
		p.Semester = n
	}
	if v := strings.TrimSpace(r.FormValue("year")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1900 {
			return p, errors.New("year must be a four digit year")
		}
		p.Year = n
	}
	if v := strings.TrimSpace(r.FormValue("institution_id")); v != "" {
		p.InstitutionID = v
	}
	return p, nil
}

// statusFor maps an import failure to a response code. Empty and
// unrecognized grids, and files that fail to decode, are all 422.
func statusFor(err error) int {
	if errors.Is(err, reader.ErrUnsupportedFormat) {
		return http.StatusUnsupportedMediaType
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
