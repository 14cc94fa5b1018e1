package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/mcoot/seabattle-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Report:
		o.printReport(v)
	case BoardView:
		o.printBoardView(v)
	case VersionInfo:
		fmt.Fprintf(o.w, "seabattle %s\n", v.Version)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Report lists finished games with win totals
type Report struct {
	Games        []*model.GameSummary `json:"games"`
	HumanWins    int                  `json:"human_wins"`
	OpponentWins int                  `json:"opponent_wins"`
}

// NewReport tallies the winners of summaries
func NewReport(summaries []*model.GameSummary) Report {
	r := Report{Games: summaries}
	if r.Games == nil {
		r.Games = []*model.GameSummary{}
	}
	for _, s := range summaries {
		switch s.Winner {
		case model.SideHuman:
			r.HumanWins++
		case model.SideOpponent:
			r.OpponentWins++
		}
	}
	return r
}

// BoardView is a board as drawn for its owner
type BoardView struct {
	Size  int      `json:"size"`
	Rows  []string `json:"rows"`
	Ships int      `json:"ships"`
	board *model.Board
}

// NewBoardView captures the owner's view of b
func NewBoardView(b *model.Board) BoardView {
	return BoardView{
		Size:  b.Size(),
		Rows:  RenderRows(b, false),
		Ships: len(b.Ships()),
		board: b,
	}
}

// VersionInfo is printed by the version command
type VersionInfo struct {
	Version string `json:"version"`
}

func (o *Output) printReport(r Report) {
	fmt.Fprintf(o.w, "Games played: %d (human won %d, opponent won %d)\n",
		len(r.Games), r.HumanWins, r.OpponentWins)
	for i, s := range r.Games {
		fmt.Fprintf(o.w, "  %d. winner: %-8s turns: %-3d shots: %d/%d  ships left: %d/%d  time: %s\n",
			i+1, s.Winner, s.Turns,
			s.HumanShots, s.OpponentShots,
			s.HumanShips, s.OpponentShips,
			s.Duration.Round(time.Second),
		)
	}
}

func (o *Output) printBoardView(v BoardView) {
	RenderBoard(o.w, v.board, false)
	fmt.Fprintf(o.w, "Ships: %d\n", v.Ships)
}
