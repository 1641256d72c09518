// Package web serves the tip calculator as a server-rendered HTML page.
//
// The widget keeps no server state: the three fields round-trip through the
// query string (bill, tip, people), preset buttons submit preset=<n>, and
// the reset link redirects to the bare page.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/mmynk/tiptop/internal/calculator"
	"github.com/mmynk/tiptop/internal/form"
	"github.com/mmynk/tiptop/internal/metrics"
	"github.com/mmynk/tiptop/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Query parameters read by the widget.
const (
	ParamBill   = "bill"
	ParamTip    = "tip"
	ParamPeople = "people"
	ParamPreset = "preset"
	ParamReset  = "reset"
)

// Handler renders the widget.
type Handler struct {
	templates *template.Template
	metrics   *metrics.Metrics
}

type presetView struct {
	Percent  int
	Selected bool
}

type widgetView struct {
	Inputs  models.Inputs
	Result  calculator.Result
	Presets []presetView
}

// NewHandler parses the embedded templates. m may be nil.
func NewHandler(m *metrics.Metrics) (*Handler, error) {
	t, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Handler{templates: t, metrics: m}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	q := r.URL.Query()
	if q.Get(ParamReset) != "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	f := FormFromQuery(q)
	result := f.Result()
	h.metrics.ObserveCalculation(metrics.SourceWeb, result)

	selected, hasSelected := f.SelectedPreset()
	view := widgetView{Inputs: f.Inputs(), Result: result}
	for _, p := range calculator.Presets() {
		view.Presets = append(view.Presets, presetView{Percent: p, Selected: hasSelected && p == selected})
	}

	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, "widget.html", view); err != nil {
		slog.ErrorContext(r.Context(), "Widget template execution failed", "error", err, "template", "widget.html")
		http.Error(w, "failed to render widget", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}

// FormFromQuery rebuilds the widget state from query parameters.
// Absent parameters keep their defaults; a preset overrides the tip text.
func FormFromQuery(q url.Values) *form.Form {
	f := form.New()

	if v, ok := q[ParamBill]; ok && len(v) > 0 {
		f.SetBill(v[0])
	}
	if v, ok := q[ParamTip]; ok && len(v) > 0 {
		f.SetTipPercentage(v[0])
	}
	if v, ok := q[ParamPeople]; ok && len(v) > 0 {
		f.SetPartyCount(v[0])
	}
	if v, ok := q[ParamPreset]; ok && len(v) > 0 {
		percent, err := strconv.Atoi(v[0])
		if err == nil {
			err = f.SelectPreset(percent)
		}
		if err != nil {
			slog.Debug("Ignoring preset", "preset", v[0], "error", err)
		}
	}
	return f
}
