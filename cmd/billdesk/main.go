package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"
	"github.com/shopspring/decimal"

	"github.com/kmutua/billdesk/internal/application/service"
	"github.com/kmutua/billdesk/internal/config"
	"github.com/kmutua/billdesk/internal/domain/enum"
	"github.com/kmutua/billdesk/internal/infrastructure/api"
	"github.com/kmutua/billdesk/internal/presentation/view"
	"github.com/kmutua/billdesk/pkg/apperror"
	"github.com/kmutua/billdesk/pkg/busy"
	"github.com/kmutua/billdesk/pkg/pagination"
	"github.com/kmutua/billdesk/pkg/printer"
)

const usage = `billdesk - point-of-sale billing terminal

Usage:
  billdesk products                      list the sellable catalog
  billdesk customers                     list customers
  billdesk bills [-page N] [-size N] [-search TERM]
  billdesk bill <id>                     show bill details
  billdesk create -item ID:QTY [-item ...] [-customer ID] [-discount AMT]
  billdesk pay <billId> -mode CASH|UPI|CARD [-ref REF]
  billdesk cancel <billId>
  billdesk print <billId>
  billdesk dashboard                     show the sales summary
`

// app bundles the wired services for the command handlers.
type app struct {
	catalog   *service.CatalogService
	products  *service.ProductService
	customers *service.CustomerService
	bills     *service.BillService
	payments  *service.PaymentService
	dashboard *service.DashboardService
	composer  *service.Composer
}

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	// The busy tracker is the application-wide in-flight request gate. In a
	// terminal it degrades to a log signal, but the refcount semantics are
	// the same as the UI spinner's.
	tracker := busy.New(func(active bool, count int) {
		logger.Debug("busy", "active", active, "in_flight", count)
	})

	client := api.New(cfg.API.BaseURL, cfg.API.Timeout, tracker, logger)

	p, err := printer.FromConfig(cfg.Printer.Type, cfg.Printer.Device, cfg.Printer.Address)
	if err != nil {
		logger.Error("printer configuration invalid", "error", err)
		os.Exit(1)
	}
	defer p.Close()

	productAPI := api.NewProductAPI(client)
	customerAPI := api.NewCustomerAPI(client)
	billAPI := api.NewBillAPI(client)
	paymentAPI := api.NewPaymentAPI(client)
	dashboardAPI := api.NewDashboardAPI(client)

	catalog := service.NewCatalogService(productAPI)

	a := &app{
		catalog:   catalog,
		products:  service.NewProductService(productAPI),
		customers: service.NewCustomerService(customerAPI),
		bills:     service.NewBillService(billAPI, paymentAPI, p),
		payments:  service.NewPaymentService(paymentAPI),
		dashboard: service.NewDashboardService(dashboardAPI),
		composer:  service.NewComposer(catalog, billAPI, cfg.API.RequireCustomer),
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		appErr := apperror.GetAppError(err)
		logger.Error(appErr.Message, "kind", appErr.Kind.String())
		for _, fe := range appErr.Errors {
			logger.Error("field error", "field", fe.Field, "message", fe.Message)
		}
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if cfg.App.Debug {
		level = slog.LevelDebug
	}

	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "products":
		return a.listProducts(ctx)
	case "customers":
		return a.listCustomers(ctx)
	case "bills":
		return a.listBills(ctx, args)
	case "bill":
		return a.showBill(ctx, args)
	case "create":
		return a.createBill(ctx, args)
	case "pay":
		return a.payBill(ctx, args)
	case "cancel":
		return a.cancelBill(ctx, args)
	case "print":
		return a.printBill(ctx, args)
	case "dashboard":
		return a.showDashboard(ctx)
	default:
		fmt.Fprint(os.Stderr, usage)
		return apperror.NewValidationMessage("Unknown command: " + command)
	}
}

func (a *app) listProducts(ctx context.Context) error {
	products, err := a.products.ListActive(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tGST%\tSTOCK\t")
	for _, p := range products {
		badge, _ := view.StockBadge(p.StockQuantity)
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d %s\t\n",
			p.ID, p.Name, p.SellingPrice.StringFixed(2), p.TaxPercent.String(), p.StockQuantity, badge)
	}
	return w.Flush()
}

func (a *app) listCustomers(ctx context.Context) error {
	customers, err := a.customers.ListCustomers(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\t")
	for _, c := range customers {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", c.ID, c.Name, c.Phone, c.Email)
	}
	return w.Flush()
}

func (a *app) listBills(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bills", flag.ExitOnError)
	page := fs.Int("page", 0, "0-based page index")
	size := fs.Int("size", pagination.DefaultSize, "page size (5, 10, or 20)")
	search := fs.String("search", "", "search term")
	_ = fs.Parse(args)

	result, err := a.bills.List(ctx, pagination.PageRequest{Page: *page, Size: *size, Search: *search})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBILL NO\tDATE\tCUSTOMER\tTOTAL\tSTATUS\t")
	for _, b := range result.Content {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t\n",
			b.ID, b.BillNumber, b.BillDate.Format("02-01-2006"), b.CustomerName,
			b.Total.StringFixed(2), b.Status)
	}
	w.Flush()

	pager := view.Pager{
		Page:          *page,
		Size:          *size,
		TotalPages:    result.TotalPages,
		TotalElements: result.TotalElements,
	}
	fmt.Println(pager.Showing())
	return nil
}

func (a *app) showBill(ctx context.Context, args []string) error {
	id, err := argID(args, "bill")
	if err != nil {
		return err
	}

	bill, err := a.bills.GetDetails(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Bill %s  (%s)  %s\n", bill.BillNumber, bill.Status, bill.BillDate.Format("02-01-2006"))
	if bill.CustomerName != "" {
		fmt.Printf("Customer: %s\n", bill.CustomerName)
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRODUCT\tQTY\tPRICE\tGST\tLINE TOTAL\t")
	for _, item := range bill.Items {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t\n",
			item.ProductName, item.Quantity, item.Price.StringFixed(2),
			item.GSTAmount.StringFixed(2), item.LineTotal.StringFixed(2))
	}
	w.Flush()

	fmt.Printf("Subtotal: %s  Discount: %s  GST: %s  Total: %s\n",
		bill.Subtotal.StringFixed(2), bill.Discount.StringFixed(2),
		bill.GSTAmount.StringFixed(2), bill.Total.StringFixed(2))

	actions := view.BillActionsFor(bill.Status)
	if actions.ShowPaymentDetails {
		payment, err := a.payments.GetForBill(ctx, bill.ID)
		if err == nil {
			fmt.Printf("Paid by %s on %s", payment.PaymentMode, payment.PaymentDate.Format("02-01-2006"))
			if payment.TransactionRef != "" {
				fmt.Printf(" (ref %s)", payment.TransactionRef)
			}
			fmt.Println()
		}
	}
	return nil
}

// itemFlags collects repeated -item ID:QTY flags.
type itemFlags []string

func (f *itemFlags) String() string { return strings.Join(*f, ",") }

func (f *itemFlags) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func (a *app) createBill(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	var items itemFlags
	fs.Var(&items, "item", "line item as productId:quantity (repeatable)")
	customerID := fs.Int64("customer", 0, "customer id")
	discount := fs.String("discount", "0", "flat discount amount")
	_ = fs.Parse(args)

	// The catalog is loaded once on entry to the create flow. When the load
	// fails the cart stays unusable and the failure is surfaced; nothing is
	// retried automatically.
	if _, err := a.catalog.Load(ctx); err != nil {
		return err
	}

	for _, spec := range items {
		productID, quantity, err := parseItem(spec)
		if err != nil {
			return err
		}
		if !a.composer.AddItem(productID, quantity) {
			return apperror.NewValidationMessage("Unknown product or invalid quantity: " + spec)
		}
	}

	d, err := decimal.NewFromString(*discount)
	if err != nil {
		return apperror.NewValidationMessage("Invalid discount amount: " + *discount)
	}
	a.composer.SetDiscount(d)

	if *customerID != 0 {
		a.composer.SetCustomer(customerID)
	}

	totals := a.composer.Totals()
	fmt.Printf("Subtotal: %s  GST: %s  Total: %s\n",
		totals.Subtotal.StringFixed(2), totals.TotalTax.StringFixed(2), totals.Total.StringFixed(2))

	bill, err := a.composer.Submit(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Created bill %s (id %d), total %s\n", bill.BillNumber, bill.ID, bill.Total.StringFixed(2))
	return nil
}

func (a *app) payBill(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return apperror.NewValidationMessage("Usage: billdesk pay <billId> -mode CASH|UPI|CARD [-ref REF]")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("pay", flag.ExitOnError)
	mode := fs.String("mode", "", "payment mode: CASH, UPI, or CARD")
	ref := fs.String("ref", "", "transaction reference (UPI/CARD)")
	_ = fs.Parse(args[1:])

	bill, err := a.bills.GetDetails(ctx, id)
	if err != nil {
		return err
	}

	payment, err := a.payments.RecordPayment(ctx, bill, enum.PaymentMode(strings.ToUpper(*mode)), *ref)
	if err != nil {
		return err
	}

	fmt.Printf("Recorded %s payment of %s for bill %s\n",
		payment.PaymentMode, payment.Amount.StringFixed(2), bill.BillNumber)
	return nil
}

func (a *app) cancelBill(ctx context.Context, args []string) error {
	id, err := argID(args, "cancel")
	if err != nil {
		return err
	}

	bill, err := a.bills.Cancel(ctx, id)
	if err != nil {
		return err
	}

	fmt.Printf("Cancelled bill %s; stock restored\n", bill.BillNumber)
	return nil
}

func (a *app) printBill(ctx context.Context, args []string) error {
	id, err := argID(args, "print")
	if err != nil {
		return err
	}
	if err := a.bills.Print(ctx, id); err != nil {
		return err
	}
	fmt.Println("Receipt sent to printer")
	return nil
}

func (a *app) showDashboard(ctx context.Context) error {
	summary, err := a.dashboard.GetSummary(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Today's revenue:   %s\n", summary.TodayRevenue.StringFixed(2))
	fmt.Printf("Monthly revenue:   %s (%s%% vs last month)\n",
		summary.MonthlyRevenue.StringFixed(2), summary.RevenueGrowthPercent())
	fmt.Printf("Paid amount:       %s\n", summary.PaidAmount.StringFixed(2))
	fmt.Printf("Pending amount:    %s\n", summary.PendingAmount.StringFixed(2))
	fmt.Printf("Total bills:       %d\n", summary.TotalBills)

	if len(summary.Last7Days) > 0 {
		fmt.Println("\nLast 7 days:")
		for _, day := range summary.Last7Days {
			fmt.Printf("  %s  %s\n", day.Date, day.Amount.StringFixed(2))
		}
	}

	if len(summary.RecentBills) > 0 {
		fmt.Println("\nRecent bills:")
		w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  BILL NO\tCUSTOMER\tTOTAL\tSTATUS\t")
		for _, b := range summary.RecentBills {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t\n", b.BillNumber, b.CustomerName, b.Total.StringFixed(2), b.Status)
		}
		w.Flush()
	}
	return nil
}

func argID(args []string, command string) (int64, error) {
	if len(args) < 1 {
		return 0, apperror.NewValidationMessage("Usage: billdesk " + command + " <id>")
	}
	return parseID(args[0])
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationMessage("Invalid id: " + s)
	}
	return id, nil
}

func parseItem(spec string) (productID int64, quantity int, err error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, 0, apperror.NewValidationMessage("Invalid item (want productId:quantity): " + spec)
	}
	productID, err = strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, apperror.NewValidationMessage("Invalid product id: " + parts[0])
	}
	quantity, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, apperror.NewValidationMessage("Invalid quantity: " + parts[1])
	}
	return productID, quantity, nil
}
