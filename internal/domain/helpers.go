package domain

// LabelPayload carries the values advertised in the match listing label.
type LabelPayload struct {
	Open  bool   `json:"open"`
	Game  string `json:"game"`
	Phase string `json:"phase"`
}

// ComputeLabel derives the advertised label from match state. maxSeats is the
// table capacity of the hosting match handler.
func ComputeLabel(g *Game, seated, maxSeats int) LabelPayload {
	open := (g == nil || g.Phase == PhaseLobby) && seated < maxSeats
	phase := PhaseLobby
	if g != nil {
		phase = g.Phase
	}
	return LabelPayload{Open: open, Game: "tombola", Phase: string(phase)}
}
