package app

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func decodeVoiceClaims(t *testing.T, token string) map[string]any {
	t.Helper()
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("token has %d segments, want 3", len(parts))
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	claims := map[string]any{}
	if err := json.Unmarshal(payload, &claims); err != nil {
		t.Fatalf("unmarshal claims: %v", err)
	}
	return claims
}

func TestGenerateLoginToken(t *testing.T) {
	svc := NewVoiceService("secret", "issuer", "voice.example.com")

	token, err := svc.GenerateToken("user-1", VoiceTokenActionLogin, "")
	if err != nil {
		t.Fatal(err)
	}

	claims := decodeVoiceClaims(t, token)
	if claims["iss"] != "issuer" || claims["sub"] != "user-1" || claims["vxa"] != VoiceTokenActionLogin {
		t.Fatalf("claims = %v", claims)
	}
	wantURI := "sip:.issuer.user-1.@voice.example.com"
	if claims["f"] != wantURI || claims["t"] != wantURI {
		t.Fatalf("login token must target the user URI, got f=%v t=%v", claims["f"], claims["t"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok || int64(exp) <= time.Now().Unix() {
		t.Fatalf("exp = %v, want a future timestamp", claims["exp"])
	}
	if claims["vxi"] == "" {
		t.Fatal("expected a token id")
	}
}

func TestGenerateJoinToken(t *testing.T) {
	svc := NewVoiceService("secret", "issuer", "voice.example.com")

	token, err := svc.GenerateToken("user-1", VoiceTokenActionJoin, "match-42")
	if err != nil {
		t.Fatal(err)
	}

	claims := decodeVoiceClaims(t, token)
	if claims["vxa"] != VoiceTokenActionJoin {
		t.Fatalf("vxa = %v", claims["vxa"])
	}
	if claims["t"] != "sip:confctl-g-match-42@voice.example.com" {
		t.Fatalf("join target = %v", claims["t"])
	}
}

func TestGenerateTokenValidation(t *testing.T) {
	tests := []struct {
		name    string
		svc     *VoiceService
		user    string
		action  string
		channel string
	}{
		{"nil service", nil, "user-1", VoiceTokenActionLogin, ""},
		{"empty user", NewVoiceService("s", "i", "d"), "", VoiceTokenActionLogin, ""},
		{"missing secret", NewVoiceService("", "i", "d"), "user-1", VoiceTokenActionLogin, ""},
		{"missing issuer", NewVoiceService("s", "", "d"), "user-1", VoiceTokenActionLogin, ""},
		{"missing domain", NewVoiceService("s", "i", ""), "user-1", VoiceTokenActionLogin, ""},
		{"join without channel", NewVoiceService("s", "i", "d"), "user-1", VoiceTokenActionJoin, ""},
		{"unknown action", NewVoiceService("s", "i", "d"), "user-1", "mute", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.svc.GenerateToken(tt.user, tt.action, tt.channel); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
