package nakama

import (
	"context"
	"database/sql"
	"encoding/json"

	"tombola/internal/app"

	"github.com/heroiclabs/nakama-common/runtime"
)

// rpcVoiceToken issues a signed token for the table voice channel. Voice is
// how screen-reader players follow the table, so the RPC is part of the core
// loop, not an extra.
//
// Payload: {"action": "login" | "join", "channel": "<match id>"}
func rpcVoiceToken(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", 16) // UNAUTHENTICATED
	}

	var req struct {
		Action  string `json:"action"`
		Channel string `json:"channel"`
	}
	if err := json.Unmarshal([]byte(payload), &req); err != nil {
		return "", runtime.NewError("Invalid payload", 3) // INVALID_ARGUMENT
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	issuer := env["voice_issuer"]
	secret := env["voice_secret"]
	domain := env["voice_domain"]
	if issuer == "" || secret == "" || domain == "" {
		issuer = "test-issuer"
		secret = "test-secret"
		domain = "test-domain"
		logger.Warn("Voice credentials missing from env, using test defaults.")
	}

	service := app.NewVoiceService(secret, issuer, domain)
	token, err := service.GenerateToken(userID, req.Action, req.Channel)
	if err != nil {
		logger.Warn("Failed to generate voice token for %s: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3)
	}

	res := map[string]string{"token": token}
	resBytes, _ := json.Marshal(res)
	return string(resBytes), nil
}
