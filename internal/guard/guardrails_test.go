package guard

import (
	"strings"
	"testing"
)

func TestValidateChatRequest(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		if err := ValidateChatRequest(ChatRequest{Message: "quiero ahorrar", UserID: "web_user-1"}, 100); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
	})

	t.Run("ok without user", func(t *testing.T) {
		if err := ValidateChatRequest(ChatRequest{Message: "hola"}, 0); err != nil {
			t.Fatalf("unexpected: %v", err)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		err := ValidateChatRequest(ChatRequest{}, 100)
		if err == nil || !strings.Contains(err.Error(), "message") {
			t.Fatalf("expected missing message error, got %v", err)
		}
	})

	t.Run("blank message", func(t *testing.T) {
		if err := ValidateChatRequest(ChatRequest{Message: "  \n\t"}, 100); err == nil {
			t.Fatalf("expected error for blank message")
		}
	})

	t.Run("invalid user id", func(t *testing.T) {
		err := ValidateChatRequest(ChatRequest{Message: "hola", UserID: "../etc/passwd"}, 100)
		if err == nil || !strings.Contains(err.Error(), "user_id") {
			t.Fatalf("expected user_id error, got %v", err)
		}
	})

	t.Run("too long counts runes", func(t *testing.T) {
		if err := ValidateChatRequest(ChatRequest{Message: "ñññ"}, 3); err != nil {
			t.Fatalf("3 runes should fit: %v", err)
		}
		if err := ValidateChatRequest(ChatRequest{Message: "ññññ"}, 3); err == nil {
			t.Fatalf("expected error for message over limit")
		}
	})

	t.Run("invalid utf8", func(t *testing.T) {
		if err := ValidateChatRequest(ChatRequest{Message: "hola \xff"}, 100); err == nil {
			t.Fatalf("expected error for invalid utf8")
		}
	})
}

func TestValidIdentity(t *testing.T) {
	for _, id := range []string{"a", "user_1", "5491122334455", strings.Repeat("x", 64)} {
		if !ValidIdentity(id) {
			t.Fatalf("expected %q to be valid", id)
		}
	}
	for _, id := range []string{"", "con espacio", "a/b", strings.Repeat("x", 65)} {
		if ValidIdentity(id) {
			t.Fatalf("expected %q to be invalid", id)
		}
	}
}
