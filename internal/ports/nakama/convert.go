package nakama

import (
	"encoding/json"

	"tombola/internal/app"
	"tombola/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// eventOpCodes maps app events to the wire opcodes clients listen on.
var eventOpCodes = map[app.EventKind]int64{
	app.EventPlayerJoined:  OpPlayerJoined,
	app.EventPlayerLeft:    OpPlayerLeft,
	app.EventMatchStarted:  OpMatchStarted,
	app.EventCardsDealt:    OpCardsDealt,
	app.EventNumberDrawn:   OpNumberDrawn,
	app.EventNumberMarked:  OpNumberMarked,
	app.EventPrizeAwarded:  OpPrizeAwarded,
	app.EventClaimRejected: OpClaimRejected,
	app.EventMatchEnded:    OpMatchEnded,
}

// encodeEvent maps an app event to its opcode and JSON payload.
func encodeEvent(ev app.Event) (int64, []byte, bool) {
	opCode, ok := eventOpCodes[ev.Kind]
	if !ok {
		return 0, nil, false
	}
	data, err := json.Marshal(ev.Payload)
	if err != nil {
		return 0, nil, false
	}
	return opCode, data, true
}

// marshalLabel renders the advertised match label. The label goes through
// protojson so listing queries see plain JSON booleans and strings.
func marshalLabel(payload domain.LabelPayload) (string, error) {
	label, err := structpb.NewStruct(map[string]interface{}{
		"open":  payload.Open,
		"game":  payload.Game,
		"phase": payload.Phase,
	})
	if err != nil {
		return "", err
	}
	bytes, err := (protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
