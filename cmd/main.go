package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"

	"invoiceBack/internal/config"
	"invoiceBack/internal/controllers"
	"invoiceBack/internal/repositories"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	configPath := flag.String("config", "config/config.yaml", "path to config file")
	demo := flag.Bool("demo", false, "create the fixed demo invoice")
	create := flag.String("create", "", `create an invoice from comma-separated "product:quantity:price" specs`)
	list := flag.Bool("list", false, "print all stored invoices")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	cfg := config.LoadConfig(*configPath)

	dsn := os.Getenv("INVOICE_DB")
	if dsn == "" {
		dsn = cfg.Database.DSN
	}

	db, err := repositories.OpenDB(dsn)
	if err != nil {
		errorLog.Fatal(err)
	}
	defer db.Close()

	app := initializeApp(db, cfg, errorLog, infoLog)
	app.publisher.Register(&logObserver{infoLog: infoLog})

	ctx := context.Background()
	switch {
	case *demo:
		app.runDemo(ctx)
	case *create != "":
		app.runCreate(ctx, *create)
	case *list:
		app.runList(ctx)
	default:
		flag.Usage()
	}
}

func (app *application) runDemo(ctx context.Context) {
	inv, done := app.invoiceController.GenerateInvoice(ctx)
	if err := <-done; err != nil {
		app.errorLog.Fatalf("could not save invoice %s", inv.ID)
	}
	app.infoLog.Printf("invoice %s saved, total %.2f", inv.ID, inv.Total)
}

func (app *application) runCreate(ctx context.Context, specs string) {
	items, err := controllers.ParseItems(specs)
	if err != nil {
		app.errorLog.Fatalf("invalid input: %v", err)
	}
	inv, done, err := app.invoiceController.GenerateRealInvoice(ctx, items)
	if err != nil {
		app.errorLog.Fatalf("invalid input: %v", err)
	}
	if err := <-done; err != nil {
		app.errorLog.Fatalf("could not save invoice %s", inv.ID)
	}
	app.infoLog.Printf("invoice %s saved, total %.2f", inv.ID, inv.Total)
}

func (app *application) runList(ctx context.Context) {
	invoices, err := app.invoiceController.GetAllInvoices(ctx)
	if err != nil {
		app.errorLog.Fatal("could not load invoices")
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()
	w.Write([]byte("ID\tDATE\tTOTAL\tITEMS\n"))
	for _, inv := range invoices {
		var products []string
		for _, item := range inv.Items {
			products = append(products, item.Product)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", inv.ID, inv.Date.Format("2006-01-02"), inv.Total, strings.Join(products, ", "))
	}
}
