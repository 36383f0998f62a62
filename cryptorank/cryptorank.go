// Package cryptorank implements a client for the cryptorank.io currency
// catalog, the data source behind the converter screen. It only extracts
// what the converter needs: identity and display metadata, and the USD
// quote block.
package cryptorank

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/converter"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.cryptorank.io/"

// SortOrder selects the catalog ordering of a paged query.
type SortOrder string

const (
	ByPrice     SortOrder = "price"
	ByPriceDesc SortOrder = "-price"
	ByRank      SortOrder = "rank"
	ByRankDesc  SortOrder = "-rank"
)

// Client queries the cryptorank currencies API.
//
// The zero BaseURL means DefaultBaseURL and the zero HTTPClient means a
// client with a daily disk cache, so repeated CLI invocations within a day
// do not hammer the API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a production client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

// ListParams narrows a paged catalog query.
type ListParams struct {
	Limit   int       // page size, the API default applies when 0
	Offset  int       // absolute offset of the page
	Sort    SortOrder // catalog ordering, the API default applies when empty
	Symbols []string  // restrict to these ticker symbols
}

// Page is one page of catalog currencies.
type Page struct {
	Currencies []converter.Currency
	Total      int // total matching currencies reported by the API
	Offset     int // offset this page was fetched at
}

// HasMore reports whether another page follows this one.
func (p *Page) HasMore() bool {
	return p.Offset+len(p.Currencies) < p.Total
}

// apiResponse matches the envelope of the currencies endpoint.
type apiResponse struct {
	Data []apiCurrency `json:"data"`
	Meta struct {
		Count int `json:"count"`
	} `json:"meta"`
}

// apiCurrency matches a single catalog item. The quote block is kept raw:
// its shape varies per listing (quotes may be partial or missing entirely),
// so it is probed by path instead of decoded into a rigid struct.
type apiCurrency struct {
	ID          int64           `json:"id"`
	Rank        int             `json:"rank"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Type        string          `json:"type"`
	Values      json.RawMessage `json:"values"`
	LastUpdated string          `json:"lastUpdated"`
}

// List fetches one page of the catalog.
func (c *Client) List(params ListParams) (*Page, error) {
	q := url.Values{}
	q.Set("api_key", c.APIKey)
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}
	if params.Sort != "" {
		q.Set("sort", string(params.Sort))
	}
	if len(params.Symbols) > 0 {
		q.Set("symbols", strings.Join(params.Symbols, ","))
	}
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	addr := base + "v1/currencies?" + q.Encode()

	var resp apiResponse
	if err := c.getJSON(addr, &resp); err != nil {
		return nil, fmt.Errorf("cannot list currencies: %w", err)
	}
	page := &Page{
		Currencies: make([]converter.Currency, 0, len(resp.Data)),
		Total:      resp.Meta.Count,
		Offset:     params.Offset,
	}
	for _, item := range resp.Data {
		page.Currencies = append(page.Currencies, item.currency())
	}
	return page, nil
}

// BySymbol fetches the given symbols and indexes them by upper-cased symbol.
// Symbols unknown to the catalog are simply absent from the result.
func (c *Client) BySymbol(symbols ...string) (map[string]converter.Currency, error) {
	page, err := c.List(ListParams{Symbols: symbols, Limit: len(symbols)})
	if err != nil {
		return nil, err
	}
	index := make(map[string]converter.Currency, len(page.Currencies))
	for _, cur := range page.Currencies {
		index[strings.ToUpper(cur.Symbol)] = cur
	}
	return index, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return daily()
}

// getJSON performs an HTTP GET and unmarshals the JSON response body.
func (c *Client) getJSON(addr string, data any) error {
	resp, err := c.httpClient().Get(addr)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog answered %s for %s", resp.Status, resp.Request.URL.Path)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// currency converts a catalog item, probing the USD quote block by path.
func (a apiCurrency) currency() converter.Currency {
	cur := converter.Currency{
		ID:          a.ID,
		Rank:        a.Rank,
		Slug:        a.Slug,
		Name:        a.Name,
		Symbol:      a.Symbol,
		Type:        a.Type,
		LastUpdated: a.LastUpdated,
	}
	var jobj any
	if len(a.Values) == 0 || json.Unmarshal(a.Values, &jobj) != nil {
		return cur
	}
	cur.USDPrice = decimal.NewFromFloat(jfloat(jobj, "$.USD.price"))
	cur.MarketCapUSD = decimal.NewFromFloat(jfloat(jobj, "$.USD.marketCap"))
	cur.Volume24hUSD = decimal.NewFromFloat(jfloat(jobj, "$.USD.volume24h"))
	cur.PercentChange24h = jfloat(jobj, "$.USD.percentChange24h")
	return cur
}

// jfloat extracts a float from a decoded JSON value, 0 when the path does
// not resolve to a number.
func jfloat(jobj any, path string) float64 {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0
	}
	// because jsonpath is never clear about whether it returns a list of 1
	// answer or a single answer: keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0
	}
	return val
}
