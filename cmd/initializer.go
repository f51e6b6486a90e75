package main

import (
	"database/sql"
	"log"

	"invoiceBack/internal/config"
	"invoiceBack/internal/controllers"
	"invoiceBack/internal/events"
	"invoiceBack/internal/repositories"
	"invoiceBack/internal/services"
)

type application struct {
	errorLog          *log.Logger
	infoLog           *log.Logger
	db                *sql.DB
	publisher         *events.Publisher
	invoiceRepo       *repositories.InvoiceRepository
	invoiceService    *services.InvoiceService
	invoiceController *controllers.InvoiceController
}

func initializeApp(db *sql.DB, cfg config.Config, errorLog, infoLog *log.Logger) *application {
	publisher := events.NewPublisher()
	invoiceRepo := &repositories.InvoiceRepository{DB: db}
	invoiceService := &services.InvoiceService{
		InvoiceRepo: invoiceRepo,
		Publisher:   publisher,
		CreateDelay: cfg.ProcessingDelay(),
		ErrorLog:    errorLog,
	}
	invoiceController := &controllers.InvoiceController{
		Service: invoiceService,
		InfoLog: infoLog,
	}

	return &application{
		errorLog:          errorLog,
		infoLog:           infoLog,
		db:                db,
		publisher:         publisher,
		invoiceRepo:       invoiceRepo,
		invoiceService:    invoiceService,
		invoiceController: invoiceController,
	}
}
