package output

import (
	"strings"

	"github.com/lgbarn/chessctrl-go/internal/worker"
)

// JSONAnalysis represents one analysed position in JSON format.
type JSONAnalysis struct {
	Index    int    `json:"index"`
	Label    string `json:"label,omitempty"`
	Side     string `json:"side"` // "white" or "black"
	Found    bool   `json:"found"`
	UCI      string `json:"uci,omitempty"`
	From     string `json:"from,omitempty"`
	To       string `json:"to,omitempty"`
	Captured string `json:"captured,omitempty"`
	Score    int    `json:"score"`
	Nodes    int    `json:"nodes"`
	Error    string `json:"error,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Positions []*JSONAnalysis `json:"positions"`
}

// ResultToJSON converts a worker result to JSON format.
func ResultToJSON(res worker.ProcessResult) *JSONAnalysis {
	ja := &JSONAnalysis{
		Index: res.Index,
		Label: res.Label,
		Side:  strings.ToLower(res.Side.String()),
		Found: res.Found,
		Score: res.Move.Score,
		Nodes: res.Move.Nodes,
	}
	if res.Found {
		ja.UCI = res.Move.Move().UCI()
		ja.From = res.Move.From.String()
		ja.To = res.Move.To.String()
		ja.Captured = res.Move.Captured.String()
	}
	if res.Error != nil {
		ja.Error = res.Error.Error()
	}
	return ja
}
