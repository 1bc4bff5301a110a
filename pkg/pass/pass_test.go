package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	if hash == "secret123" {
		t.Error("пароль не должен храниться в открытом виде")
	}
	if !VerifyPassword(hash, "secret123") {
		t.Error("верный пароль не прошел проверку")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("неверный пароль прошел проверку")
	}
}
