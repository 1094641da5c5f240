package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/attendo-app/attendo-backend-go/internal/handler/http/response"
	"github.com/attendo-app/attendo-backend-go/internal/pkg/export"
	exportsvc "github.com/attendo-app/attendo-backend-go/internal/service/export"
)

// Exporter builds the per-feature download tables.
type Exporter = exportsvc.ExportService

// writeExport streams a table in whichever format the query asked for, with
// a feature-and-date-stamped filename.
func writeExport(w http.ResponseWriter, r *http.Request, feature string, table export.Table) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("%s-%s%s", feature, time.Now().Format("2006-01-02"), format.Ext())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.Write(w, format, table); err != nil {
		// Headers are already out; all we can do is log.
		slog.Error("Export write error", "feature", feature, "format", format, "error", err)
	}
}
