package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/budgetbox/budgetbox-go/logging"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/output"
	"github.com/budgetbox/budgetbox-go/pkg/budgetbox/transform"
)

const maxFileSize = 10 << 20 // 10MB

type reviewData struct {
	Session *Session
}

func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" || r.Method != http.MethodGet {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := uploadTemplate.Execute(w, nil); err != nil {
		logging.Logger().Error("template error", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) uploadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := r.ParseMultipartForm(maxFileSize); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Failed to read file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := strings.ToLower(header.Filename)
	if !strings.HasSuffix(filename, ".csv") &&
		!strings.HasSuffix(filename, ".xlsx") &&
		!strings.HasSuffix(filename, ".xls") {
		http.Error(w, "Invalid file type", http.StatusBadRequest)
		return
	}

	opts := s.opts
	if hr, err := strconv.Atoi(r.FormValue("header_row")); err == nil && hr > 0 {
		opts.HeaderRow = hr
	}

	table, err := budgetbox.LoadReader(file, header.Filename, opts)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to parse file: %v", err), http.StatusBadRequest)
		return
	}
	segments, err := budgetbox.Split(table, opts)
	if err != nil {
		http.Error(w, fmt.Sprintf("No tables found: %v", err), http.StatusBadRequest)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = strings.TrimSuffix(header.Filename, filepath.Ext(header.Filename))
	}

	sess := s.store.Create(title, opts, segments)
	http.Redirect(w, r, "/session?id="+sess.ID, http.StatusSeeOther)
}

func (s *Server) sessionHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.store.Get(r.URL.Query().Get("id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	if err := reviewTemplate.Execute(w, reviewData{Session: sess}); err != nil {
		logging.Logger().Error("template error", "error", err)
		http.Error(w, "Failed to display session", http.StatusInternalServerError)
	}
}

// removeHandler drops a row or column from one segment's working copy.
func (s *Server) removeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	id := r.FormValue("id")
	ok := s.store.Update(id, func(sess *Session) {
		seg := sess.Segment(r.FormValue("table"))
		if seg == nil {
			return
		}
		switch r.FormValue("mode") {
		case "column":
			seg.Table = transform.RemoveColumn(seg.Table, r.FormValue("column"))
		case "row":
			if idx, err := strconv.Atoi(r.FormValue("row")); err == nil {
				seg.Table = transform.RemoveRow(seg.Table, idx)
			}
		}
	})
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/session?id="+id, http.StatusSeeOther)
}

// annotateHandler appends hyperlink markup to one cell. Out-of-range targets
// are a no-op by contract, so this never reports an error for them.
func (s *Server) annotateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	id := r.FormValue("id")
	ok := s.store.Update(id, func(sess *Session) {
		seg := sess.Segment(r.FormValue("table"))
		if seg == nil {
			return
		}
		row, err := strconv.Atoi(r.FormValue("row"))
		if err != nil {
			return
		}
		seg.Table = transform.Annotate(seg.Table, r.FormValue("column"), row, r.FormValue("url"))
	})
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/session?id="+id, http.StatusSeeOther)
}

// generateHandler reconciles the session's segments and streams the PDF.
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	sess, ok := s.store.Get(r.FormValue("id"))
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" {
		title = sess.Title
	}

	doc := output.Document{
		Title:       title,
		Segments:    budgetbox.Reconcile(sess.Segments, sess.Opts),
		LabelColumn: sess.Opts.EffectiveLabelColumn(),
		Policy:      sess.Opts.EffectivePolicy(),
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", title+".pdf"))
	if err := output.RenderPDF(w, doc); err != nil {
		logging.Logger().Error("pdf generation failed", "error", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
