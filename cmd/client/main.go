// Command client is a small command-line client for the user API server.
//
// Usage:
//
//	client -s http://localhost:8080 list
//	client -s http://localhost:8080 get <login>
//	client -s http://localhost:8080 create <nome> <login> <senha>
//	client -s http://localhost:8080 update <login> <nome> <new-login> <senha>
//	client -s http://localhost:8080 delete <login>
//	client -s http://localhost:8080 version
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/go-user-api/internal/adapter"
	"github.com/MKhiriev/go-user-api/internal/logger"
	"github.com/MKhiriev/go-user-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-user-client")

	serverURL := flag.String("s", "http://localhost:8080", "base URL of the user API server")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		log.Fatal().Msg("no command given, expected one of: list, get, create, update, delete, version")
	}

	client := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{BaseURL: *serverURL})
	ctx := context.Background()

	if err := run(ctx, client, args); err != nil {
		log.Fatal().Err(err).Str("command", args[0]).Msg("command failed")
	}
}

func run(ctx context.Context, client adapter.ServerAdapter, args []string) error {
	switch command := args[0]; command {
	case "list":
		users, err := client.GetAllUsers(ctx)
		if err != nil {
			return err
		}
		for _, user := range users {
			fmt.Printf("%s\t%s\n", user.Login, user.Nome)
		}
		return nil

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get <login>")
		}
		user, err := client.GetUser(ctx, args[1])
		if err != nil {
			return err
		}
		fmt.Printf("nome: %s\nlogin: %s\nsenha: %s\n", user.Nome, user.Login, user.Senha)
		return nil

	case "create":
		if len(args) != 4 {
			return fmt.Errorf("usage: create <nome> <login> <senha>")
		}
		return client.CreateUser(ctx, models.User{Nome: args[1], Login: args[2], Senha: args[3]})

	case "update":
		if len(args) != 5 {
			return fmt.Errorf("usage: update <login> <nome> <new-login> <senha>")
		}
		return client.UpdateUser(ctx, args[1], models.User{Nome: args[2], Login: args[3], Senha: args[4]})

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: delete <login>")
		}
		return client.DeleteUser(ctx, args[1])

	case "version":
		version, err := client.GetServerVersion(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil

	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Fprintf(os.Stderr, "Build version: %s\n", buildVersion)
	fmt.Fprintf(os.Stderr, "Build date: %s\n", buildDate)
	fmt.Fprintf(os.Stderr, "Build commit: %s\n", buildCommit)
}
