// Package report formats a matching run's outcome for a human or another
// tool: the three summary statistics (matched/total for classes, methods,
// fields) plus a run identity and timestamp, exported as either JSON for
// tools or a short text summary for a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	obferrors "github.com/vantines/obfmatch/internal/errors"
	"github.com/vantines/obfmatch/internal/matcher"
)

// MatchReport is the exported shape of one engine run.
type MatchReport struct {
	RunID     uuid.UUID `json:"run_id"`
	Generated time.Time `json:"generated"`

	Classes matcher.Stat `json:"classes"`
	Methods matcher.Stat `json:"methods"`
	Fields  matcher.Stat `json:"fields"`
}

// New wraps a matcher.Result with a fresh run identity and timestamp.
func New(runID uuid.UUID, generated time.Time, result *matcher.Result) *MatchReport {
	return &MatchReport{
		RunID:     runID,
		Generated: generated,
		Classes:   result.Classes,
		Methods:   result.Methods,
		Fields:    result.Fields,
	}
}

func (s statPercent) String() string { return fmt.Sprintf("%d/%d (%.1f%%)", s.matched, s.total, s.pct()) }

type statPercent struct {
	matched, total int
}

func (s statPercent) pct() float64 {
	if s.total == 0 {
		return 100.0
	}
	return 100.0 * float64(s.matched) / float64(s.total)
}

// WriteText renders a short human-readable summary.
func (r *MatchReport) WriteText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "run %s (%s)\n", r.RunID, r.Generated.Format(time.RFC3339))
	fmt.Fprintf(&sb, "  classes: %s\n", statPercent{r.Classes.Matched, r.Classes.Total})
	fmt.Fprintf(&sb, "  methods: %s\n", statPercent{r.Methods.Matched, r.Methods.Total})
	fmt.Fprintf(&sb, "  fields:  %s\n", statPercent{r.Fields.Matched, r.Fields.Total})
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON renders the report as indented JSON.
func (r *MatchReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Export writes both <runID>.json and <runID>.txt directly under dir,
// creating dir if necessary.
func (r *MatchReport) Export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return obferrors.Wrap(obferrors.KindReport, err, "create export directory")
	}
	jsonPath := filepath.Join(dir, r.RunID.String()+".json")
	jf, err := os.Create(jsonPath)
	if err != nil {
		return obferrors.Wrapf(obferrors.KindReport, err, "create %s", jsonPath)
	}
	defer jf.Close()
	if err := r.WriteJSON(jf); err != nil {
		return obferrors.Wrap(obferrors.KindReport, err, "write json report")
	}

	txtPath := filepath.Join(dir, r.RunID.String()+".txt")
	tf, err := os.Create(txtPath)
	if err != nil {
		return obferrors.Wrapf(obferrors.KindReport, err, "create %s", txtPath)
	}
	defer tf.Close()
	if err := r.WriteText(tf); err != nil {
		return obferrors.Wrap(obferrors.KindReport, err, "write text report")
	}
	return nil
}
