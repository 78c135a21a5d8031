// Command store_inspect dumps the moderation stores of a renderd badger
// database as a table. It opens the database read-only so it can run next to
// a live renderd process.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"chat-render/repositories"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "", "Path to badger DB")
	prefix := flag.String("prefix", "mute:", "Prefix to scan (mute: or ignore:)")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required")
	}

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			item := it.Item()
			key := string(item.Key())

			err := item.Value(func(v []byte) error {
				table.Append([]string{key, rowType(key), detail(key, v)})
				return nil
			})
			if err != nil {
				fmt.Printf("Error reading key %s: %v\n", key, err)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal("Scan failed: ", err)
	}

	table.Render()
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)
	return badger.Open(opts)
}

func rowType(key string) string {
	switch {
	case strings.HasPrefix(key, "mute:"):
		return "MUTE"
	case strings.HasPrefix(key, "ignore:"):
		return "IGNORE"
	default:
		return "RAW"
	}
}

func detail(key string, val []byte) string {
	if strings.HasPrefix(key, "mute:") {
		var record repositories.MuteRecord
		if err := json.Unmarshal(val, &record); err != nil {
			return fmt.Sprintf("unreadable (%d bytes)", len(val))
		}
		expiry := "permanent"
		if !record.ExpiresAt.IsZero() {
			expiry = "until " + record.ExpiresAt.Format(time.RFC822)
		}
		return fmt.Sprintf("by %s, %s, reason: %s", record.By, expiry, record.Reason)
	}
	return string(val)
}
