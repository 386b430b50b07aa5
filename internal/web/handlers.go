package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"

	"github.com/evcraddock/lease-desk/internal/form"
)

type pageData struct {
	Fields form.Fields
	Output string
	Notice string
	Failed bool
}

// handleForm renders the entry form with the current output.
func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.render(w, r, http.StatusOK, pageData{Output: s.form.Output()})
}

// handleCreate builds a new property, tenant and lease from the posted form.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	fields := formFields(r)

	out, err := s.form.Create(fields)
	if err != nil {
		var ve *form.ValidationError
		if !errors.As(err, &ve) {
			http.Error(w, fmt.Sprintf("Error creating lease: %v", err), http.StatusInternalServerError)
			return
		}
		// htmx discards 4xx bodies, so the partial carrying the notice goes out as 200.
		status := http.StatusUnprocessableEntity
		if isHTMX(r) {
			status = http.StatusOK
		}
		s.render(w, r, status, pageData{
			Fields: fields,
			Output: s.form.Output(),
			Notice: form.InvalidInputNotice,
			Failed: true,
		})
		return
	}

	s.render(w, r, http.StatusOK, pageData{Fields: fields, Output: out})
}

// handlePay marks the current lease paid. Without a lease it just re-renders.
func (s *Server) handlePay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	data := pageData{Fields: formFields(r)}
	out, ok := s.form.MarkPaid()
	data.Output = out
	if ok {
		data.Notice = form.PaidNotice
	}

	s.render(w, r, http.StatusOK, data)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// render writes the full page, or only the output partial for HTMX requests.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	name := "page"
	if isHTMX(r) {
		name = "output-partial"
	}

	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, fmt.Sprintf("Error rendering template: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// formFields reads the posted field values.
func formFields(r *http.Request) form.Fields {
	return form.Fields{
		Type:       r.FormValue("type"),
		Address:    r.FormValue("address"),
		Price:      r.FormValue("price"),
		Area:       r.FormValue("area"),
		Status:     r.FormValue("status"),
		Amenities:  r.FormValue("amenities"),
		TenantName: r.FormValue("tenant_name"),
		Contact:    r.FormValue("contact"),
		Rent:       r.FormValue("rent"),
		Deposit:    r.FormValue("deposit"),
	}
}
