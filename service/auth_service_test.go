package service

import "testing"

func TestHashTokenIsDeterministic(t *testing.T) {
	a := HashToken("token-one")
	b := HashToken("token-one")
	if a != b {
		t.Fatalf("same token hashed differently: %s / %s", a, b)
	}
	if len(a) != 64 {
		t.Fatalf("expected a 64-char hex digest, got %d chars", len(a))
	}
	if HashToken("token-two") == a {
		t.Fatalf("different tokens must not collide")
	}
}

func TestNewTokenIsUnique(t *testing.T) {
	a, err := newToken()
	if err != nil {
		t.Fatalf("newToken: %v", err)
	}
	b, err := newToken()
	if err != nil {
		t.Fatalf("newToken: %v", err)
	}
	if a == b {
		t.Fatalf("two fresh tokens were identical")
	}
	if len(a) != 64 {
		t.Fatalf("expected a 64-char token, got %d chars", len(a))
	}
}
