package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orchid/config"
	"orchid/internal/delivery/cli"
	"orchid/internal/domain/entity"
	"orchid/internal/domain/service"
	"orchid/internal/infra/api"
	logs "orchid/internal/infra/log"
	"orchid/internal/infra/qrcode"
	"orchid/internal/infra/storage"
	"orchid/internal/notify"
	"orchid/internal/usecase"
	"orchid/internal/usecase/impl"

	"go.uber.org/fx"
)

// Supported subcommands:
// - accounts / account-create / account-update / account-delete
// - categories / category-create / category-update / category-delete
// - orchid-create / orchid-update / orchid-delete
// - order-status

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var console *cli.AdminConsole
	app := fx.New(
		// fx's own event log would interleave with command output.
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Provide(cli.NewAdminConsole),
		fx.Populate(&console),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := runSubcommand(ctx, console, os.Args[1], os.Args[2:])
	if err := app.Stop(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		storage.New,
		func() notify.Notifier {
			return notify.NewTerminal(os.Stderr)
		},
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			api.New,
			func(c *api.Client) service.CatalogAPI { return c },
			func(c *api.Client) service.OrderAPI { return c },
			func(c *api.Client) service.AccountAPI { return c },
			func(c *api.Client) service.CategoryAPI { return c },
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewOrderService,
			impl.NewAdminService,
		),
	)
}

func runSubcommand(ctx context.Context, console *cli.AdminConsole, name string, args []string) error {
	switch name {
	case "accounts":
		return console.Accounts(ctx)

	case "account-create":
		cmd := flag.NewFlagSet("account-create", flag.ExitOnError)
		form := accountFlags(cmd)
		cmd.Parse(args)

		return console.CreateAccount(ctx, form())

	case "account-update":
		cmd := flag.NewFlagSet("account-update", flag.ExitOnError)
		id := cmd.String("id", "", "Account id")
		form := accountFlags(cmd)
		cmd.Parse(args)

		return console.UpdateAccount(ctx, *id, form())

	case "account-delete":
		cmd := flag.NewFlagSet("account-delete", flag.ExitOnError)
		id := cmd.String("id", "", "Account id")
		cmd.Parse(args)

		return console.DeleteAccount(ctx, *id)

	case "categories":
		return console.Categories(ctx)

	case "category-create":
		cmd := flag.NewFlagSet("category-create", flag.ExitOnError)
		name := cmd.String("name", "", "Category name")
		cmd.Parse(args)

		return console.CreateCategory(ctx, *name)

	case "category-update":
		cmd := flag.NewFlagSet("category-update", flag.ExitOnError)
		id := cmd.String("id", "", "Category id")
		name := cmd.String("name", "", "New category name")
		cmd.Parse(args)

		return console.UpdateCategory(ctx, *id, *name)

	case "category-delete":
		cmd := flag.NewFlagSet("category-delete", flag.ExitOnError)
		id := cmd.String("id", "", "Category id")
		cmd.Parse(args)

		return console.DeleteCategory(ctx, *id)

	case "orchid-create":
		cmd := flag.NewFlagSet("orchid-create", flag.ExitOnError)
		form := orchidFlags(cmd)
		cmd.Parse(args)

		return console.CreateOrchid(ctx, form())

	case "orchid-update":
		cmd := flag.NewFlagSet("orchid-update", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		form := orchidFlags(cmd)
		cmd.Parse(args)

		return console.UpdateOrchid(ctx, *id, form())

	case "orchid-delete":
		cmd := flag.NewFlagSet("orchid-delete", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		cmd.Parse(args)

		return console.DeleteOrchid(ctx, *id)

	case "order-status":
		cmd := flag.NewFlagSet("order-status", flag.ExitOnError)
		id := cmd.String("id", "", "Order id")
		status := cmd.String("status", "", "New status (PENDING, PROCESSING, SHIPPED, COMPLETED, CANCELLED)")
		cmd.Parse(args)

		return console.OrderStatus(ctx, *id, entity.OrderStatus(*status))

	default:
		printUsage()

		return fmt.Errorf("unknown subcommand %q", name)
	}
}

func accountFlags(cmd *flag.FlagSet) func() usecase.AccountForm {
	name := cmd.String("name", "", "Display name")
	email := cmd.String("email", "", "Account email")
	password := cmd.String("password", "", "Password (min 6 characters, optional on update)")
	role := cmd.String("role", "ROLE_USER", "Role (ROLE_USER or ROLE_ADMIN)")

	return func() usecase.AccountForm {
		return usecase.AccountForm{
			Name:     *name,
			Email:    *email,
			Password: *password,
			Role:     entity.ParseRole(*role),
		}
	}
}

func orchidFlags(cmd *flag.FlagSet) func() usecase.OrchidForm {
	name := cmd.String("name", "", "Orchid name")
	description := cmd.String("description", "", "Description")
	imageURL := cmd.String("image", "", "Image URL")
	price := cmd.Float64("price", 0, "Price")
	natural := cmd.Bool("natural", false, "Naturally grown")
	categoryID := cmd.String("category", "", "Category id")

	return func() usecase.OrchidForm {
		return usecase.OrchidForm{
			Name:        *name,
			Description: *description,
			ImageURL:    *imageURL,
			Price:       *price,
			Natural:     *natural,
			CategoryID:  *categoryID,
		}
	}
}

func printUsage() {
	fmt.Println("Orchid admin console")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  orchidadmin <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Accounts:")
	fmt.Println("  accounts")
	fmt.Println("  account-create -name <name> -email <email> -password <password> [-role <role>]")
	fmt.Println("  account-update -id <id> -name <name> -email <email> [-password <password>] [-role <role>]")
	fmt.Println("  account-delete -id <id>")
	fmt.Println()
	fmt.Println("Categories:")
	fmt.Println("  categories")
	fmt.Println("  category-create -name <name>")
	fmt.Println("  category-update -id <id> -name <name>")
	fmt.Println("  category-delete -id <id>")
	fmt.Println()
	fmt.Println("Orchids:")
	fmt.Println("  orchid-create -name <name> -image <url> -price <price> -category <id> [-natural] [-description <text>]")
	fmt.Println("  orchid-update -id <id> -name <name> -image <url> -price <price> -category <id> [-natural]")
	fmt.Println("  orchid-delete -id <id>")
	fmt.Println()
	fmt.Println("Orders:")
	fmt.Println("  order-status -id <id> -status <status>")
}
