package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/ukaji3/menubcg-go/pkg/menubcg/matrix"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/models"
	"github.com/ukaji3/menubcg-go/pkg/menubcg/output"
)

// visibleItems applies the search filter and sort order of out.
func visibleItems(items []models.ClassifiedItem, out outputSettings) []models.ClassifiedItem {
	if out.Search != "" {
		items = matrix.Search(items, out.Search)
	}
	if out.Sort != "" {
		key, _ := matrix.ParseSortKey(out.Sort)
		items = matrix.Sort(items, key, !out.Asc)
	}
	return items
}

func render(a *models.Analysis, out outputSettings) ([]byte, error) {
	switch out.Format {
	case "csv":
		return output.ToCSV(visibleItems(a.Matrix.Items, out)), nil
	case "table":
		var buf bytes.Buffer
		writeSummary(&buf, a)
		buf.WriteString(output.RenderTable(visibleItems(a.Matrix.Items, out)))
		buf.WriteString("\n")
		return buf.Bytes(), nil
	default:
		return output.ToJSON(a, out.Pretty)
	}
}

func writeSummary(w io.Writer, a *models.Analysis) {
	if a.BookName != "" {
		fmt.Fprintf(w, "%s", a.BookName)
		if a.SheetName != "" {
			fmt.Fprintf(w, " [%s %s]", a.SheetName, a.DataRange)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, a.Ingest.Note)
	if a.Ingest.Skipped.Total > 0 {
		fmt.Fprintf(w, "skipped rows: %d %v\n", a.Ingest.Skipped.Total, a.Ingest.Skipped.Rows)
	}

	m := a.Matrix
	fmt.Fprintf(w, "share threshold: %.1f%%  CoS threshold: %.1f%%\n", m.ShareThreshold*100, m.CostThreshold)

	legend := matrix.Legend(a.Config)
	for _, c := range models.Categories {
		fmt.Fprintf(w, "  %-12s %3d  %s\n", c, m.Counts[c], legend[c])
	}
}

func writeResult(w io.Writer, a *models.Analysis, out outputSettings) error {
	data, err := render(a, out)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if out.Path != "" {
		if err := os.WriteFile(out.Path, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	if _, err := w.Write(data); err != nil {
		return err
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		_, err = io.WriteString(w, "\n")
	}
	return err
}

// sortedReasons lists skip reasons in a stable order for logging.
func sortedReasons(byReason map[string]int) []string {
	reasons := make([]string, 0, len(byReason))
	for r := range byReason {
		reasons = append(reasons, r)
	}
	sort.Strings(reasons)
	return reasons
}
