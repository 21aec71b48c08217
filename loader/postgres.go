package loader

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"shopsight/models"
)

// OpenPostgres reads the raw feed from a Postgres database holding the
// upstream retail tables. The pool exists only for the startup read; the
// snapshot never touches the database again.
func OpenPostgres(ctx context.Context, databaseURL string) (*Feed, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	catalog, err := readArticles(ctx, pool)
	if err != nil {
		return nil, err
	}
	transactions, err := readTransactions(ctx, pool)
	if err != nil {
		return nil, err
	}

	log.Printf("Loaded %d transactions and %d articles from Postgres", len(transactions), len(catalog))
	return &Feed{Transactions: transactions, Catalog: catalog}, nil
}

func readArticles(ctx context.Context, pool *pgxpool.Pool) (map[string]models.RawArticle, error) {
	query := `
		SELECT article_id, prod_name, category, COALESCE(detail_desc, '')
		FROM articles
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	catalog := make(map[string]models.RawArticle)
	for rows.Next() {
		var art models.RawArticle
		if err := rows.Scan(&art.ArticleID, &art.Name, &art.Category, &art.Description); err != nil {
			log.Printf("Error scanning article: %v", err)
			continue
		}
		catalog[art.ArticleID] = art
	}
	return catalog, rows.Err()
}

func readTransactions(ctx context.Context, pool *pgxpool.Pool) ([]models.RawTransaction, error) {
	query := `
		SELECT article_id, category, price, quantity, t_dat
		FROM transactions
	`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.RawTransaction
	for rows.Next() {
		var tx models.RawTransaction
		if err := rows.Scan(&tx.ArticleID, &tx.Category, &tx.UnitPrice, &tx.Quantity, &tx.Date); err != nil {
			log.Printf("Error scanning transaction: %v", err)
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}
