package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orchid/config"
	"orchid/internal/delivery/cli"
	"orchid/internal/domain/service"
	"orchid/internal/domain/storage"
	"orchid/internal/infra/api"
	logs "orchid/internal/infra/log"
	"orchid/internal/infra/qrcode"
	blobstore "orchid/internal/infra/storage"
	"orchid/internal/notify"
	"orchid/internal/usecase"
	"orchid/internal/usecase/impl"

	"go.uber.org/fx"
)

// Supported subcommands:
// - login / register / logout / whoami: session
// - browse / show / categories:         catalog
// - cart / cart-add / cart-remove / cart-update / cart-clear
// - checkout / orders / order:          orders

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var (
		front   *cli.Storefront
		session usecase.SessionUsecase
		cart    usecase.CartUsecase
		store   storage.Store
	)
	app := fx.New(
		// fx's own event log would interleave with command output.
		fx.NopLogger,
		injectInfra(),
		injectService(),
		injectUsecase(),
		fx.Provide(cli.NewStorefront),
		fx.Populate(&front, &session, &cart, &store),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	statusLine := cli.NewStatusLine(session, cart, os.Stderr)
	detach := statusLine.Attach(ctx, store)

	runErr := runSubcommand(ctx, front, os.Args[1], os.Args[2:])
	detach()
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
		blobstore.New,
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
		),
	)
}

func runSubcommand(ctx context.Context, front *cli.Storefront, name string, args []string) error {
	switch name {
	case "login":
		cmd := flag.NewFlagSet("login", flag.ExitOnError)
		email := cmd.String("email", "", "Account email")
		password := cmd.String("password", "", "Account password")
		cmd.Parse(args)

		return front.Login(ctx, *email, *password)

	case "register":
		cmd := flag.NewFlagSet("register", flag.ExitOnError)
		name := cmd.String("name", "", "Display name")
		email := cmd.String("email", "", "Account email")
		password := cmd.String("password", "", "Account password (min 6 characters)")
		cmd.Parse(args)

		return front.Register(ctx, *name, *email, *password)

	case "logout":
		return front.Logout(ctx)

	case "whoami":
		return front.WhoAmI(ctx)

	case "browse":
		return front.Browse(ctx)

	case "show":
		cmd := flag.NewFlagSet("show", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		cmd.Parse(args)

		return front.Show(ctx, *id)

	case "categories":
		return front.Categories(ctx)

	case "cart":
		return front.CartShow(ctx)

	case "cart-add":
		cmd := flag.NewFlagSet("cart-add", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		quantity := cmd.Int("qty", 1, "Quantity to add")
		cmd.Parse(args)

		return front.CartAdd(ctx, *id, *quantity)

	case "cart-remove":
		cmd := flag.NewFlagSet("cart-remove", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		cmd.Parse(args)

		return front.CartRemove(ctx, *id)

	case "cart-update":
		cmd := flag.NewFlagSet("cart-update", flag.ExitOnError)
		id := cmd.String("id", "", "Orchid id")
		delta := cmd.Int("delta", 0, "Quantity change, negative to decrement")
		cmd.Parse(args)

		return front.CartUpdate(ctx, *id, *delta)

	case "cart-clear":
		return front.CartClear(ctx)

	case "checkout":
		cmd := flag.NewFlagSet("checkout", flag.ExitOnError)
		address := cmd.String("address", "", "Shipping address")
		note := cmd.String("note", "", "Delivery note")
		qrPath := cmd.String("qr", "", "Write a tracking QR PNG to this path")
		cmd.Parse(args)

		return front.Checkout(ctx, *address, *note, *qrPath)

	case "orders":
		return front.Orders(ctx)

	case "order":
		cmd := flag.NewFlagSet("order", flag.ExitOnError)
		id := cmd.String("id", "", "Order id")
		cmd.Parse(args)

		return front.Order(ctx, *id)

	default:
		printUsage()

		return fmt.Errorf("unknown subcommand %q", name)
	}
}

func printUsage() {
	fmt.Println("Orchid storefront")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  orchid <subcommand> [flags]")
	fmt.Println()
	fmt.Println("Session:")
	fmt.Println("  login -email <email> -password <password>")
	fmt.Println("  register -name <name> -email <email> -password <password>")
	fmt.Println("  logout")
	fmt.Println("  whoami")
	fmt.Println()
	fmt.Println("Catalog:")
	fmt.Println("  browse")
	fmt.Println("  show -id <orchid-id>")
	fmt.Println("  categories")
	fmt.Println()
	fmt.Println("Cart:")
	fmt.Println("  cart")
	fmt.Println("  cart-add -id <orchid-id> [-qty <n>]")
	fmt.Println("  cart-remove -id <orchid-id>")
	fmt.Println("  cart-update -id <orchid-id> -delta <n>")
	fmt.Println("  cart-clear")
	fmt.Println()
	fmt.Println("Orders:")
	fmt.Println("  checkout -address <address> [-note <note>] [-qr <path>]")
	fmt.Println("  orders")
	fmt.Println("  order -id <order-id>")
}
