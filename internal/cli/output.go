package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Vault:
		o.printVault(v)
	case Player:
		o.printPlayer(v)
	case Game:
		o.printGame(v)
	case MintResult:
		o.printMintResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult is the API auth response
type AuthResult struct {
	Identity     string `json:"identity"`
	SessionToken string `json:"session_token"`
}

// Vault response type (matches API)
type Vault struct {
	Address string `json:"address"`
	Creator string `json:"creator"`
	Balance uint64 `json:"balance"`
}

// Player response type
type Player struct {
	Address     string  `json:"address"`
	Owner       string  `json:"owner"`
	Balance     uint64  `json:"balance"`
	Games       uint64  `json:"games"`
	CurrentGame *string `json:"current_game"`
}

// Drawing response type
type Drawing struct {
	Participant string `json:"participant"`
	Ref         string `json:"ref"`
}

// Game response type
type Game struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	Host         string    `json:"host"`
	Status       string    `json:"status"`
	Capacity     int       `json:"capacity"`
	Participants []string  `json:"participants"`
	Story        string    `json:"story,omitempty"`
	Drawings     []Drawing `json:"drawings"`
	WinnerIndex  *uint32   `json:"winner_index,omitempty"`
}

// MintResult response type
type MintResult struct {
	Game     Game   `json:"game"`
	AssetRef string `json:"asset_ref"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	fmt.Printf("Identity: %s\n", a.Identity)
	fmt.Printf("Session token: %s (saved)\n", a.SessionToken)
}

func (o *Output) printVault(v Vault) {
	fmt.Printf("Vault %s\n", v.Address)
	fmt.Printf("  Creator: %s\n", v.Creator)
	fmt.Printf("  Balance: %d\n", v.Balance)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player %s\n", p.Address)
	fmt.Printf("  Owner:   %s\n", p.Owner)
	fmt.Printf("  Balance: %d\n", p.Balance)
	fmt.Printf("  Games:   %d\n", p.Games)
	if p.CurrentGame != nil {
		fmt.Printf("  In game: %s\n", *p.CurrentGame)
	} else {
		fmt.Printf("  In game: (none)\n")
	}
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game %s [%s]\n", g.ID, g.Status)
	fmt.Printf("  Host:         %s\n", g.Host)
	fmt.Printf("  Capacity:     %d\n", g.Capacity)
	fmt.Printf("  Participants: %s\n", joinOrNone(g.Participants))
	if g.Story != "" {
		fmt.Printf("  Story:        %s\n", g.Story)
	}
	for i, d := range g.Drawings {
		marker := " "
		if g.WinnerIndex != nil && uint32(i) == *g.WinnerIndex {
			marker = "*"
		}
		fmt.Printf("  Drawing %d%s    %s (by %s)\n", i, marker, d.Ref, d.Participant)
	}
}

func (o *Output) printMintResult(m MintResult) {
	o.printGame(m.Game)
	fmt.Printf("  Minted:       %s\n", m.AssetRef)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
