package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/mchmarny/modelrep/pkg/metric"
	"github.com/mchmarny/modelrep/pkg/score"
	"gopkg.in/yaml.v3"
)

// render writes the score board in the selected output format.
// Text output is the human-readable breakdown; ndjson emits one record per
// metric result for machine consumption.
func render(w io.Writer, board *score.Board, results []metric.Result) error {
	switch outputFormat {
	case formatNDJSON:
		return metric.WriteNDJSON(w, results)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(board)
	case formatYAML:
		return yaml.NewEncoder(w).Encode(board)
	default:
		return renderText(w, board)
	}
}

func renderText(w io.Writer, board *score.Board) error {
	names := make([]string, 0, len(board.Scores))
	for name := range board.Scores {
		if name != score.NetScoreKey {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%s: %.2f\n", name, board.Scores[name]); err != nil {
			return err
		}
	}

	tiers := make([]string, 0, len(board.SizeTiers))
	for tier := range board.SizeTiers {
		tiers = append(tiers, tier)
	}
	sort.Strings(tiers)
	for _, tier := range tiers {
		if _, err := fmt.Fprintf(w, "size.%s: %.2f\n", tier, board.SizeTiers[tier]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "%s: %.3f\n", score.NetScoreKey, board.NetScore)
	return err
}
