package snapshot

import (
	"io"

	"klondike/searcher"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type rankedMove struct {
	Move    string  `yaml:"move"`
	Visits  int     `yaml:"visits"`
	Wins    int     `yaml:"wins"`
	WinRate float64 `yaml:"win_rate"`
}

type resultFile struct {
	Best         string       `yaml:"best,omitempty"`
	Visits       int          `yaml:"visits"`
	Wins         int          `yaml:"wins"`
	BestWinRate  float64      `yaml:"best_win_rate"`
	WorstWinRate float64      `yaml:"worst_win_rate"`
	Winnable     bool         `yaml:"winnable"`
	Moves        []rankedMove `yaml:"moves"`
}

// EncodeResult writes the moves of a search ranked by win rate.
func EncodeResult(w io.Writer, result *searcher.Result) error {
	out := resultFile{
		Visits:       result.Visits,
		Wins:         result.Wins,
		BestWinRate:  result.BestWinRate,
		WorstWinRate: result.WorstWinRate,
		Winnable:     result.Winnable(),
		Moves: lo.Map(result.Ranked(), func(n *searcher.Node, _ int) rankedMove {
			rate, _ := n.WinRate()
			return rankedMove{Move: n.Move.Name, Visits: n.Visits(), Wins: n.Wins(), WinRate: rate}
		}),
	}
	if result.HasBestMove() {
		out.Best = result.BestMove.Name
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
