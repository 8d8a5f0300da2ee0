package resettokengenerator

import (
	"crypto/rand"
	"deepscan/internal/core/domain/user"
	"encoding/hex"
)

const tokenByteCount = 20

// Generator produces password reset tokens from the OS entropy source.
// Tokens are single-use credentials, so math/rand is not good enough here.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) GenerateToken() user.PasswordResetToken {
	b := make([]byte, tokenByteCount)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return user.PasswordResetToken(hex.EncodeToString(b))
}
