package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Radek987976/hyperbare-manager/internal/clients/gmao"
	"github.com/Radek987976/hyperbare-manager/internal/entity"
	"github.com/Radek987976/hyperbare-manager/internal/guard"
	"github.com/Radek987976/hyperbare-manager/internal/repository"
	"github.com/Radek987976/hyperbare-manager/internal/session"
	"github.com/Radek987976/hyperbare-manager/pkg/config"
	"github.com/Radek987976/hyperbare-manager/pkg/logger"
	"github.com/Radek987976/hyperbare-manager/pkg/transport"
)

type app struct {
	api   *gmao.Client
	store *session.Store
}

func main() {
	ctx := context.Background()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	repo, err := repository.Open(cfg.Session.DBPath)
	panicOnErr("open session storage", err)

	defer repo.Close()

	rt := transport.NewSessionRoundTripper(http.DefaultTransport, repo)
	api := gmao.NewClient(cfg.BackendURL, rt)
	store := session.New(repo, api)

	rt.OnAuthExpired(func() {
		store.Invalidate()
		fmt.Fprintln(os.Stderr, "Session expirée. Reconnectez-vous avec 'gmao login'.")
	})

	err = store.Bootstrap(ctx)
	panicOnErr("bootstrap session", err)

	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		os.Exit(2)
	}

	a := &app{api: api, store: store}

	switch args[0] {
	case "login":
		a.handleLogin(ctx, args[1:])
	case "register":
		a.handleRegister(ctx, args[1:])
	case "logout":
		a.handleLogout()
	case "whoami":
		a.handleWhoAmI(ctx)
	case "equipments":
		a.handleEquipments(ctx, args[1:])
	case "workorders":
		a.handleWorkOrders(ctx, args[1:])
	case "dashboard":
		a.handleDashboard(ctx)
	case "export":
		a.handleExport(ctx, args[1:])
	case "users":
		a.handleUsers(ctx, args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(2)
	}
}

// requireView asks the route guard before rendering a view, mirroring
// what the web front-end does per navigation.
func (a *app) requireView(route guard.Route) {
	err := guard.Resolve(a.store.Snapshot(), route).Err()
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, entity.ErrNotAuthenticated):
		fmt.Fprintln(os.Stderr, "Authentification requise. Lancez 'gmao login'.")
	case route.Public:
		fmt.Fprintln(os.Stderr, "Vous êtes déjà connecté. Lancez 'gmao logout' d'abord.")
	default:
		fmt.Fprintln(os.Stderr, "Accès réservé aux administrateurs.")
	}

	os.Exit(1)
}

func printUsage() {
	fmt.Print(`Usage: gmao <command> [options]

Commands:
  login       Se connecter (email + mot de passe)
  register    Créer un compte
  logout      Se déconnecter
  whoami      Afficher l'identité et les permissions courantes
  equipments  Lister les équipements
  workorders  Lister les ordres de travail
  dashboard   Afficher les statistiques et alertes
  export      Télécharger un export CSV d'une collection
  users       Gérer les comptes (réservé aux administrateurs)

Environment:
  BACKEND_URL  Base URL of the GMAO API (required)
  LOG_LEVEL    Log level (default: info)
  SESSION_DB   Session storage path (default: .gmao/session.db)
`)
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
