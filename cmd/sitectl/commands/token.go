package commands

import (
	"flag"
	"fmt"
	"os"

	"iscol-site/internal/auth"
	"iscol-site/internal/config"
)

// TokenCommand mints an admin JWT for the operational endpoints after
// checking the operator key against the configured bcrypt hash. With -hash it
// instead prints the hash for a new key, for the admin.key_hash config entry.
func TokenCommand(args []string) {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	key := fs.String("key", "", "Operator key")
	subject := fs.String("subject", "operator", "Token subject")
	hashOnly := fs.Bool("hash", false, "Print the bcrypt hash of the key and exit")
	fs.Parse(args)

	if *key == "" {
		fmt.Println("Missing -key")
		os.Exit(1)
	}

	if *hashOnly {
		hash, err := auth.HashOperatorKey(*key)
		if err != nil {
			fmt.Printf("Failed to hash key: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	cfg := config.Load()
	if cfg.Admin.KeyHash == "" {
		fmt.Println("admin.key_hash is not configured")
		os.Exit(1)
	}

	if err := auth.VerifyOperatorKey(cfg.Admin.KeyHash, *key); err != nil {
		fmt.Println("Operator key rejected")
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(cfg).Generate(*subject)
	if err != nil {
		fmt.Printf("Failed to mint token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
