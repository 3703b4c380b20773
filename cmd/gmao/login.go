package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/Radek987976/hyperbare-manager/internal/clients/gmao"
	"github.com/Radek987976/hyperbare-manager/internal/entity"
	"github.com/Radek987976/hyperbare-manager/internal/guard"
)

func (a *app) handleLogin(ctx context.Context, args []string) {
	a.requireView(guard.Route{Public: true})

	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "adresse email")
	_ = fs.Parse(args)

	if *email == "" {
		*email = prompt("Email: ")
	}

	password, err := promptPassword("Mot de passe: ")
	panicOnErr("read password", err)

	user, err := a.store.Login(ctx, *email, password)
	if err != nil {
		exitWithAPIError(err)
	}

	fmt.Printf("Connecté: %s %s (%s)\n", user.Prenom, user.Nom, entity.RoleLabel(user.Role))
}

func (a *app) handleRegister(ctx context.Context, args []string) {
	a.requireView(guard.Route{Public: true})

	fs := flag.NewFlagSet("register", flag.ExitOnError)
	email := fs.String("email", "", "adresse email")
	nom := fs.String("nom", "", "nom de famille")
	prenom := fs.String("prenom", "", "prénom")
	_ = fs.Parse(args)

	if *email == "" {
		*email = prompt("Email: ")
	}

	if *nom == "" {
		*nom = prompt("Nom: ")
	}

	if *prenom == "" {
		*prenom = prompt("Prénom: ")
	}

	password, err := promptPassword("Mot de passe: ")
	panicOnErr("read password", err)

	user, pending, err := a.store.Register(ctx, gmao.RegisterRequest{
		Email:    *email,
		Password: password,
		Nom:      *nom,
		Prenom:   *prenom,
	})
	if err != nil {
		exitWithAPIError(err)
	}

	if pending != nil {
		fmt.Println(pending.Message)
		return
	}

	fmt.Printf("Compte créé, connecté: %s %s (%s)\n", user.Prenom, user.Nom, entity.RoleLabel(user.Role))
}

func (a *app) handleLogout() {
	err := a.store.Logout()
	panicOnErr("logout", err)

	fmt.Println("Déconnecté.")
}

func prompt(label string) string {
	fmt.Print(label)

	reader := bufio.NewReader(os.Stdin)

	line, err := reader.ReadString('\n')
	panicOnErr("read input", err)

	return strings.TrimSpace(line)
}

func promptPassword(label string) (string, error) {
	fmt.Print(label)

	b, err := term.ReadPassword(int(os.Stdin.Fd()))

	fmt.Println()

	if err != nil {
		return "", err
	}

	if len(b) == 0 {
		return "", errors.New("empty password")
	}

	return string(b), nil
}

func exitWithAPIError(err error) {
	if apiErr, ok := entity.AsAPIError(err); ok {
		fmt.Fprintln(os.Stderr, apiErr.Detail)
		os.Exit(1)
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
