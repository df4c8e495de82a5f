package main

import (
	"encoding/base64"
	"fmt"
	"log"
	"os"
	"strings"

	"aidanwoods.dev/go-paseto"
)

func main() {
	secretKey := paseto.NewV4AsymmetricSecretKey()
	publicKey := secretKey.Public()

	privateKeyBase64 := base64.StdEncoding.EncodeToString(secretKey.ExportBytes())
	publicKeyBase64 := base64.StdEncoding.EncodeToString(publicKey.ExportBytes())

	fmt.Printf("Generated PASETO v4 key pair:\n\n")
	fmt.Printf("Private Key (keep this secret!):\n%s\n\n", privateKeyBase64)
	fmt.Printf("Public Key:\n%s\n\n", publicKeyBase64)

	// If .env file exists, offer to update it
	if _, err := os.Stat(".env"); err == nil {
		fmt.Print("Would you like to update the .env file with these keys? [y/N]: ")
		var response string
		fmt.Scanln(&response)
		if response == "y" || response == "Y" {
			content, err := os.ReadFile(".env")
			if err != nil {
				log.Fatalf("Failed to read .env file: %v", err)
			}

			updated := updateEnvContent(string(content), privateKeyBase64, publicKeyBase64)

			if err := os.WriteFile(".env", []byte(updated), 0644); err != nil {
				log.Fatalf("Failed to write .env file: %v", err)
			}
			fmt.Println("Updated .env file with new keys")
		}
	} else {
		fmt.Println("Note: Copy these values to your .env file:")
		fmt.Printf("PASETO_PRIVATE_KEY=%s\n", privateKeyBase64)
		fmt.Printf("PASETO_PUBLIC_KEY=%s\n", publicKeyBase64)
	}
}

// updateEnvContent replaces the PASETO key entries in an env file, appending
// them when absent. Comments and unrelated entries are kept as they are.
func updateEnvContent(content, privateKey, publicKey string) string {
	var builder strings.Builder
	var foundPrivate, foundPublic bool

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "PASETO_PRIVATE_KEY"):
			fmt.Fprintf(&builder, "PASETO_PRIVATE_KEY=%s\n", privateKey)
			foundPrivate = true
		case strings.HasPrefix(line, "PASETO_PUBLIC_KEY"):
			fmt.Fprintf(&builder, "PASETO_PUBLIC_KEY=%s\n", publicKey)
			foundPublic = true
		default:
			builder.WriteString(line + "\n")
		}
	}

	if !foundPrivate {
		fmt.Fprintf(&builder, "PASETO_PRIVATE_KEY=%s\n", privateKey)
	}
	if !foundPublic {
		fmt.Fprintf(&builder, "PASETO_PUBLIC_KEY=%s\n", publicKey)
	}

	return builder.String()
}
