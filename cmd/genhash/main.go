// cmd/genhash/main.go — Imprime el hash argon2id de una contrasena.
// Uso: go run ./cmd/genhash <password>
package main

import (
	"fmt"
	"os"

	"github.com/duvanmesal/gestionguias-api-sub001/internal/security"
)

func main() {
	password := "Guias2025*"
	if len(os.Args) > 1 {
		password = os.Args[1]
	}
	hasher := security.NewHasher(os.Getenv("PASSWORD_PEPPER"))
	h, err := hasher.Hash(password)
	if err != nil {
		panic(err)
	}
	fmt.Println(h)
}
