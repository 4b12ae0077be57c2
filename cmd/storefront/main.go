package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"bella-boutique/internal/cart"
	"bella-boutique/internal/catalog"
	"bella-boutique/internal/config"
	"bella-boutique/internal/logger"
	"bella-boutique/internal/pricing"
	"bella-boutique/internal/store"
)

func main() {
	dbPath := pflag.String("db", "", "cart database path (overrides CART_DB_PATH)")
	ephemeral := pflag.Bool("ephemeral", false, "keep the cart in memory only")
	pflag.Parse()

	cfg := config.LoadConfig()
	if *dbPath != "" {
		cfg.CartDBPath = *dbPath
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	ctx, sessionID := logger.NewSessionContext(context.Background())
	log := logger.FromCtx(ctx)
	log.Info("storefront session started", zap.String("session_id", sessionID))

	var slot store.Slot
	if *ephemeral {
		slot = store.NewMemory()
	} else {
		sqliteSlot, err := store.OpenSQLite(cfg.CartDBPath)
		if err != nil {
			log.Fatal("failed to open cart store", zap.Error(err))
		}
		slot = sqliteSlot
	}
	defer slot.Close()

	catalogSvc := catalog.NewService(catalog.Products)

	cartSvc, err := cart.NewService(ctx, slot, cart.Options{
		SlotKey:               cfg.CartSlotKey,
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		ShippingFlatFee:       cfg.ShippingFlatFee,
	})
	if err != nil {
		// Already recovered: the cart starts empty and the session continues.
		log.Warn("cart restored empty", zap.Error(err))
	}

	shop := &shell{
		catalog: catalogSvc,
		cart:    cartSvc,
		cfg:     cfg,
		state:   catalog.DefaultFilterState(catalogSvc.PriceBounds()),
	}

	token := cartSvc.Subscribe(func(snap cart.Snapshot) {
		fmt.Printf("cart updated: %d item(s), subtotal %s\n",
			snap.Totals.ItemCount, pricing.Format(snap.Totals.Subtotal))
	})
	defer cartSvc.Unsubscribe(token)

	shop.run(ctx)
}

// shell is a minimal stand-in for the shop page: it holds the transient
// filter state and drives the catalog and cart services from stdin commands.
type shell struct {
	catalog catalog.Service
	cart    cart.Service
	cfg     *config.Config
	state   catalog.FilterState
}

func (sh *shell) run(ctx context.Context) {
	fmt.Println("bella boutique — type 'help' for commands")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			sh.printHelp()
		case "list":
			sh.printProducts(sh.catalog.Search(ctx, sh.state))
		case "search":
			sh.state.SearchTerm = strings.Join(args, " ")
			sh.printProducts(sh.catalog.Search(ctx, sh.state))
		case "category":
			if len(args) != 1 {
				fmt.Println("usage: category All|Bags|Dresses|Accessories")
				continue
			}
			sh.state.Category = catalog.Category(args[0])
			sh.printProducts(sh.catalog.Search(ctx, sh.state))
		case "sort":
			if len(args) != 1 {
				fmt.Println("usage: sort featured|price-low|price-high|name|newest|rating")
				continue
			}
			sh.state.SortKey = catalog.SortKey(args[0])
			sh.printProducts(sh.catalog.Search(ctx, sh.state))
		case "clear-filters":
			sh.state.Reset(sh.catalog.PriceBounds())
			sh.printProducts(sh.catalog.Search(ctx, sh.state))
		case "show":
			sh.showProduct(args)
		case "add":
			sh.addToCart(ctx, args)
		case "qty":
			sh.setQuantity(ctx, args)
		case "remove":
			if len(args) != 1 {
				fmt.Println("usage: remove <product-id>")
				continue
			}
			if err := sh.cart.RemoveItem(ctx, args[0]); err != nil {
				fmt.Println("remove failed:", err)
			}
		case "clear":
			if err := sh.cart.Clear(ctx); err != nil {
				fmt.Println("clear failed:", err)
			}
		case "cart":
			sh.printCart()
		case "quit", "exit":
			return
		default:
			fmt.Printf("unknown command %q, try 'help'\n", cmd)
		}
	}
}

func (sh *shell) printHelp() {
	fmt.Print(`commands:
  list                     show products under the current filters
  search <term>            filter by name or tag
  category <name>          filter by category (All clears it)
  sort <key>               featured|price-low|price-high|name|newest|rating
  clear-filters            reset filters to defaults
  show <product-id>        product details
  add <product-id> [qty]   add to cart
  qty <product-id> <n>     set line quantity (0 removes)
  remove <product-id>      remove a line
  clear                    empty the cart
  cart                     show cart and totals
  quit                     leave
`)
}

func (sh *shell) printProducts(products []catalog.Product) {
	if len(products) == 0 {
		fmt.Println("no products match")
		return
	}
	for _, p := range products {
		badges := ""
		if p.IsNew {
			badges += " [new]"
		}
		if p.OnSale && p.OriginalPrice != nil {
			badges += fmt.Sprintf(" [sale, was %s]", pricing.Format(*p.OriginalPrice))
		}
		fmt.Printf("%3s  %-24s %-12s %10s  %.1f★%s\n",
			p.ID, p.Name, p.Category, pricing.Format(p.Price), p.Rating, badges)
	}
}

func (sh *shell) showProduct(args []string) {
	if len(args) != 1 {
		fmt.Println("usage: show <product-id>")
		return
	}

	p, ok := sh.catalog.ByID(args[0])
	if !ok {
		fmt.Println("no such product")
		return
	}

	sel := catalog.NewSelection(p)
	fmt.Printf("%s — %s\n%s\n", p.Name, pricing.Format(p.Price), p.Description)
	if len(p.Colors) > 0 {
		fmt.Printf("colors: %s (selected: %s)\n", strings.Join(p.Colors, ", "), sel.Color)
	}
	if len(p.Sizes) > 0 {
		fmt.Printf("sizes:  %s (selected: %s)\n", strings.Join(p.Sizes, ", "), sel.Size)
	}
}

func (sh *shell) addToCart(ctx context.Context, args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Println("usage: add <product-id> [qty]")
		return
	}

	p, ok := sh.catalog.ByID(args[0])
	if !ok {
		fmt.Println("no such product")
		return
	}

	quantity := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Println("quantity must be a number")
			return
		}
		quantity = n
	}

	if err := sh.cart.AddItem(ctx, p, quantity); err != nil {
		fmt.Println("add failed:", err)
	}
}

func (sh *shell) setQuantity(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: qty <product-id> <n>")
		return
	}

	n, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Println("quantity must be a number")
		return
	}

	if err := sh.cart.SetQuantity(ctx, args[0], n); err != nil {
		fmt.Println("update failed:", err)
	}
}

func (sh *shell) printCart() {
	lines := sh.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("your cart is empty")
		return
	}

	for _, l := range lines {
		fmt.Printf("%3s  %-24s %2d × %10s = %s\n",
			l.ID, l.Name, l.Quantity, pricing.Format(l.Price), pricing.Format(l.Price*l.Quantity))
	}

	totals := sh.cart.Totals()
	fmt.Printf("subtotal: %s\n", pricing.Format(totals.Subtotal))
	if totals.Shipping == 0 {
		fmt.Println("shipping: free")
	} else {
		fmt.Printf("shipping: %s\n", pricing.Format(totals.Shipping))
		if gap := pricing.FreeShippingGap(totals.Subtotal, sh.cfg.FreeShippingThreshold); gap > 0 {
			fmt.Printf("add %s more for free shipping\n", pricing.Format(gap))
		}
	}
	fmt.Printf("total:    %s\n", pricing.Format(totals.Total))
}
