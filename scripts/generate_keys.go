//go:build ignore

// This script generates secure random keys and catalog admin tokens.
//
//	go run scripts/generate_keys.go                      # new JWT secret and API key
//	go run scripts/generate_keys.go -token -subject ops  # token signed with JWT_SECRET_KEY
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/guttosm/coffee-builder/config"
	"github.com/guttosm/coffee-builder/internal/service"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(bytes), nil
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	issueToken := flag.Bool("token", false, "issue a catalog:write token instead of generating keys")
	subject := flag.String("subject", "admin", "token subject, recorded as the catalog publisher")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_TOKEN_TTL)")
	flag.Parse()

	if *issueToken {
		printToken(*subject, *ttl)
		return
	}
	printKeys()
}

func printToken(subject string, ttl time.Duration) {
	cfg := config.Load()
	if ttl <= 0 {
		ttl = cfg.Auth.TokenTTL
	}

	tokens, err := service.NewTokenService(service.TokenConfig{
		SecretKey: cfg.Auth.JWTSecretKey,
		Issuer:    cfg.Auth.JWTIssuer,
		TTL:       ttl,
	})
	if err != nil {
		fail("Error: %v (set JWT_SECRET_KEY)", err)
	}

	token, expiresAt, err := tokens.Issue(subject, service.ScopeCatalogWrite)
	if err != nil {
		fail("Error issuing token: %v", err)
	}

	fmt.Printf("# %s token for %q, expires %s\n", service.ScopeCatalogWrite, subject, expiresAt.Format(time.RFC3339))
	fmt.Printf("Authorization: Bearer %s\n", token)
}

func printKeys() {
	fmt.Println("=== Coffee Builder Key Generator ===")
	fmt.Println()

	// JWT secret (32 bytes = 256 bits)
	jwtSecret, err := generateSecureKey(32)
	if err != nil {
		fail("Error generating JWT secret: %v", err)
	}

	// API key for the builder front-end (24 bytes)
	apiKey, err := generateSecureKey(24)
	if err != nil {
		fail("Error generating API key: %v", err)
	}

	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# Catalog admin tokens")
	fmt.Printf("JWT_SECRET_KEY=%s\n", jwtSecret)
	fmt.Println()
	fmt.Println("# API key for the builder front-end")
	fmt.Printf("API_KEYS=%s\n", apiKey)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Use different keys for each environment")
	fmt.Println("- Store production keys in a secure secret manager")
}
