package utils

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateLoginCode generates a 6-digit login code
func GenerateLoginCode() string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	code := ""
	for i := 0; i < 6; i++ {
		code += fmt.Sprintf("%d", rng.Intn(10))
	}
	return code
}
