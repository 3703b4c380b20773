package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Radek987976/hyperbare-manager/internal/clients/gmao"
	"github.com/Radek987976/hyperbare-manager/internal/entity"
	"github.com/Radek987976/hyperbare-manager/internal/guard"
)

func (a *app) handleWhoAmI(ctx context.Context) {
	a.requireView(guard.Route{})

	user, err := a.api.Me(ctx)
	if err != nil {
		exitWithAPIError(err)
	}

	perms := entity.PermissionsForRole(user.Role)

	fmt.Printf("Identité:  %s %s <%s>\n", user.Prenom, user.Nom, user.Email)
	fmt.Printf("Rôle:      %s\n", entity.RoleLabel(user.Role))
	fmt.Println("\nPermissions:")

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  créer\t%s\n", yesNo(perms.CanCreate))
	fmt.Fprintf(w, "  modifier\t%s\n", yesNo(perms.CanModify))
	fmt.Fprintf(w, "  supprimer\t%s\n", yesNo(perms.CanDelete))
	fmt.Fprintf(w, "  exporter\t%s\n", yesNo(perms.CanExport))
	fmt.Fprintf(w, "  gérer les utilisateurs\t%s\n", yesNo(perms.CanManageUsers))
	_ = w.Flush()
}

func (a *app) handleEquipments(ctx context.Context, args []string) {
	a.requireView(guard.Route{})

	fs := flag.NewFlagSet("equipments", flag.ExitOnError)
	statut := fs.String("statut", "", "filtrer par statut")
	criticite := fs.String("criticite", "", "filtrer par criticité")
	typ := fs.String("type", "", "filtrer par type")
	_ = fs.Parse(args)

	equipments, err := a.api.Equipments(ctx, gmao.EquipmentFilter{
		Type:      *typ,
		Statut:    *statut,
		Criticite: *criticite,
	})
	if err != nil {
		exitWithAPIError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "REFERENCE\tTYPE\tSTATUT\tCRITICITE")

	for _, e := range equipments {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Reference, e.Type, e.Statut, e.Criticite)
	}

	_ = w.Flush()
}

func (a *app) handleWorkOrders(ctx context.Context, args []string) {
	a.requireView(guard.Route{})

	fs := flag.NewFlagSet("workorders", flag.ExitOnError)
	statut := fs.String("statut", "", "filtrer par statut")
	_ = fs.Parse(args)

	orders, err := a.api.WorkOrders(ctx, gmao.WorkOrderFilter{Statut: *statut})
	if err != nil {
		exitWithAPIError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TITRE\tTYPE\tPRIORITE\tSTATUT\tDATE PREVUE")

	for _, o := range orders {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", o.Titre, o.TypeMaintenance, o.Priorite, o.Statut, o.DatePlanifiee)
	}

	_ = w.Flush()
}

func (a *app) handleDashboard(ctx context.Context) {
	a.requireView(guard.Route{})

	stats, err := a.api.DashboardStats(ctx)
	if err != nil {
		exitWithAPIError(err)
	}

	fmt.Printf("Équipements: %d (en service: %d, maintenance: %d, hors service: %d)\n",
		stats.EquipmentStats.Total, stats.EquipmentStats.EnService,
		stats.EquipmentStats.Maintenance, stats.EquipmentStats.HorsService)
	fmt.Printf("Ordres de travail: %d (planifiés: %d, en cours: %d, terminés: %d)\n",
		stats.WorkOrderStats.Total, stats.WorkOrderStats.Planifiee,
		stats.WorkOrderStats.EnCours, stats.WorkOrderStats.Terminee)
	fmt.Printf("Pièces détachées: %d (stock bas: %d)\n", stats.TotalSpareParts, stats.LowStockCount)

	alerts, err := a.api.Alerts(ctx)
	if err != nil {
		exitWithAPIError(err)
	}

	if len(alerts) > 0 {
		fmt.Println("\nAlertes:")

		for _, alert := range alerts {
			fmt.Printf("  [%s] %s: %s\n", alert.Severity, alert.Title, alert.Description)
		}
	}
}

func (a *app) handleExport(ctx context.Context, args []string) {
	a.requireView(guard.Route{})

	if !a.store.CanExport() {
		fmt.Fprintln(os.Stderr, "Votre rôle ne permet pas l'export.")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("export", flag.ExitOnError)
	collection := fs.String("collection", "equipments", "collection à exporter")
	out := fs.String("out", "", "fichier de sortie (défaut: <collection>.csv)")
	_ = fs.Parse(args)

	data, err := a.api.ExportCSV(ctx, *collection)
	if err != nil {
		exitWithAPIError(err)
	}

	path := *out
	if path == "" {
		path = *collection + ".csv"
	}

	err = os.WriteFile(path, data, 0o644)
	panicOnErr("write export", err)

	fmt.Printf("Export écrit: %s (%d octets)\n", path, len(data))
}

func (a *app) handleUsers(ctx context.Context, args []string) {
	a.requireView(guard.Route{AdminOnly: true})

	if !a.store.CanManageUsers() {
		fmt.Fprintln(os.Stderr, "Votre rôle ne permet pas la gestion des utilisateurs.")
		os.Exit(1)
	}

	fs := flag.NewFlagSet("users", flag.ExitOnError)
	pending := fs.Bool("pending", false, "lister les comptes en attente d'approbation")
	approve := fs.String("approve", "", "approuver le compte (id)")
	reject := fs.String("reject", "", "rejeter le compte (id)")
	suspend := fs.String("suspend", "", "suspendre le compte (id)")
	activate := fs.String("activate", "", "réactiver le compte (id)")
	remove := fs.String("delete", "", "supprimer le compte (id)")
	role := fs.String("role", "", "nouveau rôle (admin|technicien), avec -id")
	id := fs.String("id", "", "compte visé par -role")
	_ = fs.Parse(args)

	switch {
	case *approve != "":
		printActionResult(a.api.ApproveUser(ctx, *approve))
	case *reject != "":
		printActionResult(a.api.RejectUser(ctx, *reject))
	case *suspend != "":
		printActionResult(a.api.SuspendUser(ctx, *suspend))
	case *activate != "":
		printActionResult(a.api.ActivateUser(ctx, *activate))
	case *remove != "":
		err := a.api.DeleteUser(ctx, *remove)
		if err != nil {
			exitWithAPIError(err)
		}

		fmt.Println("Utilisateur supprimé.")
	case *role != "":
		if *id == "" {
			fmt.Fprintln(os.Stderr, "-role requiert -id")
			os.Exit(2)
		}

		printActionResult(a.api.UpdateUserRole(ctx, *id, *role))
	default:
		a.listUsers(ctx, *pending)
	}
}

func (a *app) listUsers(ctx context.Context, pending bool) {
	var (
		accounts []entity.Account
		err      error
	)

	if pending {
		accounts, err = a.api.PendingUsers(ctx)
	} else {
		accounts, err = a.api.Users(ctx)
	}

	if err != nil {
		exitWithAPIError(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNOM\tPRENOM\tROLE\tACTIF")

	for _, u := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Email, u.Nom, u.Prenom, entity.RoleLabel(u.Role), yesNo(u.IsActive))
	}

	_ = w.Flush()
}

func printActionResult(msg string, err error) {
	if err != nil {
		exitWithAPIError(err)
	}

	fmt.Println(msg)
}

func yesNo(v bool) string {
	if v {
		return "oui"
	}

	return "non"
}
