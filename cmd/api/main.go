package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/storefronthq/storefront-backend/internal/modules/customer"
	"github.com/storefronthq/storefront-backend/internal/modules/order"
	"github.com/storefronthq/storefront-backend/internal/modules/product"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Customers ───────────────────────────────────────────
	customerRepo := customer.NewPostgresRepository(db)
	customerService := customer.NewService(customerRepo)
	customer.NewHandler(customerService).RegisterRoutes(router)

	// ── Catalog ─────────────────────────────────────────────
	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)
	product.NewHandler(productService).RegisterRoutes(router)

	// ── Orders ──────────────────────────────────────────────
	orderRepo := order.NewPostgresRepository(db)
	orderService := order.NewService(orderRepo, productRepo, customerRepo)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Storefront API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
