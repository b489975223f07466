package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/mmynk/tabsplit/internal/models"
	"github.com/mmynk/tabsplit/internal/receipt"
)

// text accepts either a JSON string or a JSON number.
type text string

func (t *text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*t = text(n.String())
	return nil
}

// billFile is the JSON document read by "tabsplit calc".
type billFile struct {
	Title        string `json:"title"`
	Tax          text   `json:"tax"`
	Service      text   `json:"service"`
	Total        text   `json:"total"`
	Participants []struct {
		Name  string `json:"name"`
		Items []struct {
			Name  string `json:"name"`
			Price text   `json:"price"`
		} `json:"items"`
	} `json:"participants"`
}

// loadBill reads a bill from path, or from stdin when path is "-".
func loadBill(path string, stdin io.Reader) (*billFile, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open bill: %w", err)
		}
		defer f.Close()
		r = f
	}

	var bill billFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&bill); err != nil {
		return nil, fmt.Errorf("failed to parse bill: %w", err)
	}
	return &bill, nil
}

// toReceipt replays the bill through the same edits the service applies,
// so invalid entries are dropped the same way.
func (b *billFile) toReceipt() *models.Receipt {
	r := receipt.New(b.Title)
	// Fields missing from the file keep the receipt defaults.
	if b.Tax != "" {
		r.TaxPercent = string(b.Tax)
	}
	if b.Service != "" {
		r.ServicePercent = string(b.Service)
	}
	r.DeclaredTotal = string(b.Total)

	for i, p := range b.Participants {
		added := receipt.AddParticipant(r, p.Name)
		if added == nil {
			slog.Debug("Skipping participant without a name", "index", i)
			continue
		}
		id := added.ID
		for j, it := range p.Items {
			if !receipt.AddItem(r, id, it.Name, string(it.Price)) {
				slog.Debug("Skipping invalid item",
					"participant", p.Name,
					"index", j,
					"name", it.Name,
					"price", strconv.Quote(string(it.Price)),
				)
			}
		}
	}
	return r
}
