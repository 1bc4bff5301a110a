package token

import "testing"

func TestRefreshTokenRoundTrip(t *testing.T) {
	tok, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	hash := HashRefreshToken(tok)
	if hash == tok {
		t.Error("хэш совпал с токеном")
	}
	if !VerifyRefreshToken(tok, hash) {
		t.Error("токен не прошел проверку по своему хэшу")
	}
	if VerifyRefreshToken("another", hash) {
		t.Error("чужой токен прошел проверку")
	}
}

func TestRefreshTokensUnique(t *testing.T) {
	a, _ := GenerateRefreshToken()
	b, _ := GenerateRefreshToken()
	if a == b {
		t.Error("два сгенерированных токена совпали")
	}
}
