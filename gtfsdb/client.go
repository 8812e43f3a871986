package gtfsdb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Client is the main entry point for the schedule store. Answering-side
// callers only read through it; the import side writes once at build time.
type Client struct {
	config        Config
	DB            *sql.DB
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, fmt.Errorf("error creating schedule database: %w", err)
	}

	client := &Client{
		config: config,
		DB:     db,
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// DownloadAndStore downloads a GTFS zip from the given URL and stores it in the database
func (c *Client) DownloadAndStore(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint:errcheck

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return c.processAndStoreGTFSData(ctx, b)
}

// ImportFromFile imports GTFS data from a local zip file into the database
func (c *Client) ImportFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return c.processAndStoreGTFSData(ctx, data)
}
