package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/iamlimeu/employeeProjectRestAPI/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var customerID int64
	err = db.QueryRow(`
		INSERT INTO customers (first_name, last_name, email, phone_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET first_name=EXCLUDED.first_name
		RETURNING id
	`, "Alice", "Anderson", "alice@example.com", "+15550100001").Scan(&customerID)
	if err != nil {
		log.Fatalf("failed to seed customer: %v", err)
	}
	fmt.Printf("seeded customer: id=%d\n", customerID)

	var employeeID int64
	err = db.QueryRow(`
		INSERT INTO employees (first_name, last_name, email, password, role)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET role=EXCLUDED.role
		RETURNING id
	`, "Mark", "Miller", "mark@example.com", "password123", "MANAGER").Scan(&employeeID)
	if err != nil {
		log.Fatalf("failed to seed employee: %v", err)
	}
	fmt.Printf("seeded employee: id=%d\n", employeeID)

	products := []struct {
		name, description, price string
	}{
		{"Keyboard", "Mechanical keyboard", "89.99"},
		{"Monitor", "27 inch display", "249.00"},
	}
	productIDs := make([]int64, 0, len(products))
	for _, p := range products {
		var id int64
		err = db.QueryRow(`
			INSERT INTO products (name, description, price)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO UPDATE SET price=EXCLUDED.price
			RETURNING id
		`, p.name, p.description, p.price).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed product %s: %v", p.name, err)
		}
		productIDs = append(productIDs, id)
	}
	fmt.Printf("seeded products: %v\n", productIDs)

	var orderID int64
	err = db.QueryRow(`
		INSERT INTO orders (created_date, status, customer_id)
		VALUES (now(), 'NEW', $1)
		RETURNING id
	`, customerID).Scan(&orderID)
	if err != nil {
		log.Fatalf("failed to seed order: %v", err)
	}
	for _, pid := range productIDs {
		if _, err := db.Exec(`
			INSERT INTO order_products (order_id, product_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, orderID, pid); err != nil {
			log.Fatalf("failed to link product %d: %v", pid, err)
		}
	}
	fmt.Printf("seeded order: id=%d with %d products\n", orderID, len(productIDs))
}
