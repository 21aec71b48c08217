// Package loader materializes the raw transaction feed and product catalog the
// dataset builder consumes. Three interchangeable sources exist: CSV files, a
// deterministic generated sample set, and a Postgres database. The rest of the
// system never knows which one supplied the data.
package loader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"shopsight/config"
	"shopsight/models"
)

// Feed is the materialized raw input handed to the dataset builder.
type Feed struct {
	Transactions []models.RawTransaction
	Catalog      map[string]models.RawArticle
}

// Open materializes the feed from the first configured source: Postgres when
// DATABASE_URL is set, CSV files when both paths are set, generated sample
// data otherwise.
func Open(ctx context.Context, cfg config.Config) (*Feed, error) {
	switch {
	case cfg.DatabaseURL != "":
		log.Println("Loading transaction feed from Postgres")
		return OpenPostgres(ctx, cfg.DatabaseURL)
	case cfg.TransactionsCSV != "" && cfg.CatalogCSV != "":
		log.Printf("Loading transaction feed from %s / %s", cfg.TransactionsCSV, cfg.CatalogCSV)
		return OpenCSV(cfg.TransactionsCSV, cfg.CatalogCSV)
	default:
		log.Println("No feed source configured, generating sample data")
		return Sample(), nil
	}
}

// OpenCSV reads the transaction feed and catalog from two CSV files. Both
// files carry a header row; columns are located by name so ordering is free.
func OpenCSV(transactionsPath, catalogPath string) (*Feed, error) {
	catalog, err := readCatalogCSV(catalogPath)
	if err != nil {
		return nil, err
	}
	transactions, err := readTransactionsCSV(transactionsPath)
	if err != nil {
		return nil, err
	}
	return &Feed{Transactions: transactions, Catalog: catalog}, nil
}

func readTransactionsCSV(path string) ([]models.RawTransaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transactions: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read transactions header: %w", err)
	}
	cols, err := columnIndex(header, "article_id", "category", "price", "quantity", "date")
	if err != nil {
		return nil, fmt.Errorf("transactions %s: %w", path, err)
	}

	var out []models.RawTransaction
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read transactions row %d: %w", line, err)
		}
		line++

		price, err := strconv.ParseFloat(row[cols["price"]], 64)
		if err != nil {
			log.Printf("Skipping transaction row %d: bad price %q", line, row[cols["price"]])
			continue
		}
		quantity, err := strconv.Atoi(row[cols["quantity"]])
		if err != nil {
			log.Printf("Skipping transaction row %d: bad quantity %q", line, row[cols["quantity"]])
			continue
		}
		date, err := time.Parse("2006-01-02", row[cols["date"]])
		if err != nil {
			log.Printf("Skipping transaction row %d: bad date %q", line, row[cols["date"]])
			continue
		}

		out = append(out, models.RawTransaction{
			ArticleID: row[cols["article_id"]],
			Category:  row[cols["category"]],
			UnitPrice: price,
			Quantity:  quantity,
			Date:      date,
		})
	}
	return out, nil
}

func readCatalogCSV(path string) (map[string]models.RawArticle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols, err := columnIndex(header, "article_id", "name", "category", "description")
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	catalog := make(map[string]models.RawArticle)
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		id := row[cols["article_id"]]
		catalog[id] = models.RawArticle{
			ArticleID:   id,
			Name:        row[cols["name"]],
			Category:    row[cols["category"]],
			Description: row[cols["description"]],
		}
	}
	return catalog, nil
}

func columnIndex(header []string, names ...string) (map[string]int, error) {
	cols := make(map[string]int, len(names))
	for i, h := range header {
		cols[strings.TrimSpace(strings.ToLower(h))] = i
	}
	for _, name := range names {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q", name)
		}
	}
	return cols, nil
}
