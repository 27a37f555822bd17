package main

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/avdeev99/mint-sniper/internal/walletstore"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: walletctl <command> [args]

commands:
  add <name>      add a wallet (prompts for private key and passphrase)
  list            list stored wallets with stats
  address <name>  print a wallet's address
  remove <name>   delete a wallet file`)
	os.Exit(2)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Overload(".env.local")

	if len(os.Args) < 2 {
		usage()
	}

	dir := strings.TrimSpace(os.Getenv("WALLET_DIR"))
	if dir == "" {
		dir = "wallets"
	}
	store, err := walletstore.Open(dir)
	if err != nil {
		die(err.Error())
	}

	switch os.Args[1] {
	case "add":
		if len(os.Args) != 3 {
			usage()
		}
		cmdAdd(store, os.Args[2])
	case "list":
		cmdList(store)
	case "address":
		if len(os.Args) != 3 {
			usage()
		}
		rec, err := store.Get(os.Args[2])
		if err != nil {
			die(err.Error())
		}
		fmt.Println(rec.Address)
	case "remove":
		if len(os.Args) != 3 {
			usage()
		}
		if err := store.Remove(os.Args[2]); err != nil {
			die(err.Error())
		}
		fmt.Printf("wallet %q removed\n", os.Args[2])
	default:
		usage()
	}
}

func cmdAdd(store *walletstore.Store, name string) {
	pk := readSecret("Private key (hex): ")
	pass := readSecret("Passphrase: ")
	again := readSecret("Passphrase (again): ")
	if pass != again {
		die("passphrases do not match")
	}
	rec, err := store.Add(name, pk, pass)
	if err != nil {
		die(err.Error())
	}
	fmt.Printf("wallet %q added\n", rec.Name)
	fmt.Println("  address:", rec.Address)
}

func cmdList(store *walletstore.Store) {
	recs, err := store.List()
	if err != nil {
		die(err.Error())
	}
	if len(recs) == 0 {
		fmt.Println("no wallets stored")
		return
	}
	for i, r := range recs {
		fmt.Printf("%d. %s\n", i+1, r.Name)
		fmt.Printf("   address: %s\n", r.Address)
		fmt.Printf("   created: %s\n", r.CreatedAt.Format("2006-01-02"))
		fmt.Printf("   attempts: %d (%d ok, %d failed, %.1f%%)\n",
			r.TotalAttempts, r.Successful, r.Failed, r.SuccessRate())
		if r.LastUsed != nil {
			fmt.Printf("   last used: %s\n", r.LastUsed.Format("2006-01-02 15:04"))
		}
	}
}

func readSecret(prompt string) string {
	fmt.Print(prompt)
	b, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		die("failed to read input: " + err.Error())
	}
	return strings.TrimSpace(string(b))
}

func die(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
