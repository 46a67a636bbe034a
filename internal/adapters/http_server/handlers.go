package httpserver

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"smart_search/internal/app"
	"smart_search/internal/domain"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTmpl = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{"markers": markersJS}).
		ParseFS(templatesFS, "templates/dashboard.html"),
)

// markers serializes the mappable places for the Leaflet init script.
func markersJS(places []domain.Place) template.JS {
	b, err := json.Marshal(places)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal map markers")
		return template.JS("[]")
	}
	return template.JS(b)
}

type Handlers struct{ S *app.SearchService }

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.dashboard)
	s.mux.Get("/search", h.searchHTML)
	s.mux.Get("/v1/search", h.searchJSON)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// pageData is everything the dashboard template renders: the sticky form
// values, an optional input problem, and the search view when a query ran.
type pageData struct {
	Query   string
	Display int
	Sort    domain.SortMode
	Problem string
	View    *app.DashboardView
}

// parseRequest reads the form values with the same defaults the form shows.
func parseRequest(r *http.Request) app.SearchRequest {
	req := app.SearchRequest{
		Query:   r.URL.Query().Get("q"),
		Display: 5,
		Sort:    domain.SortRelevance,
	}
	if ds := r.URL.Query().Get("display"); ds != "" {
		if d, err := strconv.Atoi(ds); err == nil {
			req.Display = d
		}
	}
	if sm := r.URL.Query().Get("sort"); sm != "" {
		req.Sort = domain.SortMode(sm)
	}
	return req
}

func (h *Handlers) dashboard(w http.ResponseWriter, r *http.Request) {
	renderDashboard(w, pageData{Display: 5, Sort: domain.SortRelevance})
}

func (h *Handlers) searchHTML(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)
	data := pageData{Query: req.Query, Display: req.Display, Sort: req.Sort}

	view, err := h.S.Search(r.Context(), req)
	if err != nil {
		if req.Query == "" {
			data.Problem = "검색어를 입력해주세요."
		} else {
			data.Problem = "잘못된 검색 옵션입니다."
		}
		renderDashboard(w, data)
		return
	}
	data.View = &view
	renderDashboard(w, data)
}

func (h *Handlers) searchJSON(w http.ResponseWriter, r *http.Request) {
	req := parseRequest(r)
	view, err := h.S.Search(r.Context(), req)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid search request", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(view); err != nil {
		log.Error().Err(err).Msg("failed to write search response")
	}
}

func renderDashboard(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, data); err != nil {
		log.Error().Err(err).Msg("failed to render dashboard")
	}
}
