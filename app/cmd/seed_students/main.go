package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"

	"csc-payments/app/config"
	"csc-payments/app/database"
)

// Seeds the students table from a CSV file with rows "reg_number,name".
// Usage: go run ./app/cmd/seed_students students.csv
func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: seed_students <students.csv>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatal("Failed to open students file:", err)
	}
	defer f.Close()

	config.Load()
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	reader := csv.NewReader(f)
	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal("Failed to read CSV:", err)
		}
		if len(row) < 2 || row[0] == "reg_number" {
			continue
		}

		if err := database.CreateStudent(db, row[0], row[1]); err != nil {
			log.Printf("Failed to seed student %s: %v", row[0], err)
			continue
		}
		count++
	}

	log.Printf("Seeded %d students", count)
}
