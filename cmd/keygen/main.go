package main

import (
	"flag"
	"fmt"
	"log"

	"dayflow/config"
	"dayflow/internal/provider"

	"github.com/joho/godotenv"
)

// keygen prints the anon and service API keys for the signing secret.
func main() {
	_ = godotenv.Load()
	secret := flag.String("secret", config.GetEnv("DAYFLOW_JWT_SECRET", ""), "signing secret (defaults to DAYFLOW_JWT_SECRET)")
	flag.Parse()

	if *secret == "" {
		log.Fatal("a signing secret is required: pass -secret or set DAYFLOW_JWT_SECRET")
	}

	anon, err := provider.MintAPIKey(*secret, provider.RoleAnon)
	if err != nil {
		log.Fatal(err)
	}
	service, err := provider.MintAPIKey(*secret, provider.RoleServiceRole)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("DAYFLOW_ANON_KEY=%s\n", anon)
	fmt.Printf("DAYFLOW_SERVICE_KEY=%s\n", service)
}
