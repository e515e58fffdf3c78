// Package quote refreshes the ticker table of a portfolio from a remote JSON
// endpoint and persists the latest snapshot.
//
// A refresh never clears the table: when a symbol cannot be fetched, the
// failure is logged and the previous ticker of that symbol is kept, so the
// calculations go on with stale but valid data.
package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/folio"
	"github.com/phuslu/log"
	"github.com/shopspring/decimal"
)

// Paths holds the JSONPath expression of each ticker field in the endpoint
// response. Empty expressions are not read.
type Paths struct {
	Price         string `toml:"price"`
	PreviousClose string `toml:"previous_close"`
	High52        string `toml:"high52"`
	Low52         string `toml:"low52"`
	Name          string `toml:"name"`
	Sector        string `toml:"sector"`
	AssetType     string `toml:"asset_type"`
	Logo          string `toml:"logo"`
}

// DefaultPaths reads a flat JSON object.
var DefaultPaths = Paths{
	Price:         "$.price",
	PreviousClose: "$.previousClose",
	High52:        "$.fiftyTwoWeekHigh",
	Low52:         "$.fiftyTwoWeekLow",
	Name:          "$.name",
	Sector:        "$.sector",
	AssetType:     "$.assetType",
	Logo:          "$.logo",
}

// Fetcher fetches tickers from a JSON endpoint.
type Fetcher struct {
	Client *http.Client
	URL    string // URL template, %s is replaced by the escaped symbol
	Paths  Paths
	Logger *log.Logger // defaults to log.DefaultLogger
}

func (f *Fetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *Fetcher) logger() *log.Logger {
	if f.Logger == nil {
		return &log.DefaultLogger
	}
	return f.Logger
}

// Fetch retrieves the ticker of symbol.
func (f *Fetcher) Fetch(ctx context.Context, symbol string) (folio.Ticker, error) {
	if !strings.Contains(f.URL, "%s") {
		return folio.Ticker{}, fmt.Errorf("quote URL %q has no %%s placeholder for the symbol", f.URL)
	}
	addr := fmt.Sprintf(f.URL, url.PathEscape(symbol))

	var jobj any
	if err := jwget(ctx, f.client(), addr, &jobj); err != nil {
		return folio.Ticker{}, fmt.Errorf("error fetching %q: %w", symbol, err)
	}

	t := folio.Ticker{Symbol: symbol}
	price, err := readDecimal(jobj, f.Paths.Price)
	if err != nil {
		return folio.Ticker{}, fmt.Errorf("error reading %q price: %w", symbol, err)
	}
	if price == nil || !price.IsPositive() {
		return folio.Ticker{}, fmt.Errorf("no price for %q", symbol)
	}
	t.Price = *price

	// optional fields: a missing value stays unknown.
	t.PreviousClose, _ = readDecimal(jobj, f.Paths.PreviousClose)
	t.High52, _ = readDecimal(jobj, f.Paths.High52)
	t.Low52, _ = readDecimal(jobj, f.Paths.Low52)
	t.Name = readString(jobj, f.Paths.Name)
	t.Sector = readString(jobj, f.Paths.Sector)
	t.AssetType = readString(jobj, f.Paths.AssetType)
	t.Logo = readString(jobj, f.Paths.Logo)
	return t, nil
}

// Refresh fetches every symbol and returns a new table built on previous.
// Symbols that fail keep their previous ticker; the failures are logged and
// returned joined, the table is always usable.
func (f *Fetcher) Refresh(ctx context.Context, symbols []string, previous *folio.Quotes) (*folio.Quotes, error) {
	quotes := previous.Clone()
	var errs error
	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return quotes, errors.Join(errs, err)
		}
		t, err := f.Fetch(ctx, symbol)
		if err != nil {
			f.logger().Warn().Str("symbol", symbol).Bool("stale", previous.Has(symbol)).Err(err).Msg("quote refresh failed, keeping previous ticker")
			errs = errors.Join(errs, err)
			continue
		}
		f.logger().Debug().Str("symbol", symbol).Str("price", t.Price.String()).Msg("quote refreshed")
		quotes.Set(t)
	}
	return quotes, errs
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}

// read evaluates path on jobj. An empty path or a missing value returns nil.
func read(jobj any, path string) any {
	if path == "" {
		return nil
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil
	}
	// because jsonpath is never clear about wheter it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil
		}
		jval = jlist[0]
	}
	return jval
}

// readDecimal reads a number, possibly written as a string. It returns nil
// when the value is missing.
func readDecimal(jobj any, path string) (*decimal.Decimal, error) {
	switch v := read(jobj, path).(type) {
	case nil:
		return nil, nil
	case float64:
		d := decimal.NewFromFloat(v)
		return &d, nil
	case string:
		// sometimes APIs return the value as a string
		v = strings.ReplaceAll(strings.TrimSpace(v), ",", "")
		if v == "" {
			return nil, nil
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q at %s: %w", v, path, err)
		}
		return &d, nil
	default:
		return nil, fmt.Errorf("value at %s is not a number: %v", path, v)
	}
}

func readString(jobj any, path string) string {
	if s, ok := read(jobj, path).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
