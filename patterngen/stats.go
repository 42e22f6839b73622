package patterngen

import (
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/patterntree/pattern"
)

// Stats is the statistics report surfaced to collaborators (§6.2):
// pattern/link counts, the shape of the tree, an estimated memory
// footprint, and the wall-clock time the build itself took.
type Stats struct {
	NPatterns          int
	NLinks             int
	MaxChildListLength int
	MaxHashDepth       int
	NBytes             uint64
	NHashBytes         uint64
	BuildTime          time.Duration
}

// ReportMode selects how WriteReport renders a Tree. The default
// summary prints only the aggregate Stats; ReportDump additionally
// walks every unique node, printing its bin vector.
type ReportMode byte

const (
	// ReportSummary prints only the aggregate statistics.
	ReportSummary ReportMode = 0
	// ReportDump additionally lists every unique pattern's bins.
	ReportDump ReportMode = 'D'
)

// WriteReport renders t's statistics to w. mode selects whether every
// unique node is also dumped (ReportDump) or only the summary is
// printed (ReportSummary, the default).
func WriteReport(w io.Writer, t *Tree, mode ReportMode) error {
	s := t.stats
	if _, err := fmt.Fprintf(w,
		"nPatterns=%d nLinks=%d maxChildListLength=%d maxHashDepth=%d nBytes=%d nHashBytes=%d buildTime=%s\n",
		s.NPatterns, s.NLinks, s.MaxChildListLength, s.MaxHashDepth, s.NBytes, s.NHashBytes, s.BuildTime,
	); err != nil {
		return err
	}
	if mode != ReportDump {
		return nil
	}
	return dumpNodes(w, t.index)
}

// dumpNodes walks every bucket of idx exactly once, printing one line
// per unique stored Pattern's bin vector.
func dumpNodes(w io.Writer, idx *pattern.Index) error {
	return idx.Walk(func(p *pattern.Pattern) error {
		_, err := fmt.Fprintf(w, "%v\n", p.Bins())
		return err
	})
}
