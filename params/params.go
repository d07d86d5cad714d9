// Package params holds the query parameters accumulated while the user
// walks the feature tree, and reconciles them with deep-link overrides
// taken from an external URL query string.
package params

import (
	"net/url"
	"strings"
)

// Key names one of the fixed query parameters the widget understands.
type Key string

const (
	Service    Key = "service"
	Blockchain Key = "blockchain"
	AssetIn    Key = "asset-in"
	AssetOut   Key = "asset-out"
	AmountIn   Key = "amount-in"
	AmountOut  Key = "amount-out"
)

// knownKeys is the closed set of keys carried through tree resolution.
// Anything else in a query string is ignored, never an error.
var knownKeys = map[Key]bool{
	Service:    true,
	Blockchain: true,
	AssetIn:    true,
	AssetOut:   true,
	AmountIn:   true,
	AmountOut:  true,
}

// Service type values.
const (
	ServiceBuy     = "buy"
	ServiceSell    = "sell"
	ServiceConvert = "convert"
)

// Params is one set of query options. The zero value is empty and usable.
type Params map[Key]string

// Clone returns an independent copy.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Apply overlays src onto p, overwriting on conflict, and returns p.
// This is the last-write-wins merge used per tree step.
func (p Params) Apply(src Params) Params {
	for k, v := range src {
		p[k] = v
	}
	return p
}

// Get returns the value for k, or "" when unset.
func (p Params) Get(k Key) string {
	return p[k]
}

// Merge reconciles tree-derived defaults with end-user URL overrides.
// Any key present in overrides wins outright.
func Merge(treeDefaults, urlOverrides Params) Params {
	return treeDefaults.Clone().Apply(urlOverrides)
}

// Balance is one `amount@assetId` entry from a wallet balances list.
type Balance struct {
	Amount  string
	AssetID string
}

// External carries everything the widget accepts from an outside URL
// query string: parameter overrides plus the boundary-only fields that
// never enter tree resolution.
type External struct {
	Overrides Params
	Redirect  string
	Balances  []Balance
}

// ParseQuery reads an externally supplied query string. Unknown keys are
// dropped; only syntactically broken input returns an error.
func ParseQuery(raw string) (External, error) {
	values, err := url.ParseQuery(strings.TrimPrefix(raw, "?"))
	if err != nil {
		return External{}, err
	}
	return FromValues(values), nil
}

// FromValues extracts widget parameters from already-parsed query values.
func FromValues(values url.Values) External {
	ext := External{Overrides: Params{}}
	for key := range values {
		v := values.Get(key)
		if v == "" {
			continue
		}
		switch key {
		case "redirect-uri":
			ext.Redirect = v
		case "balances":
			ext.Balances = parseBalances(v)
		default:
			if k := Key(key); knownKeys[k] {
				ext.Overrides[k] = v
			}
		}
	}
	return ext
}

// parseBalances splits a comma separated `amount@assetId` list. Entries
// without the separator are skipped.
func parseBalances(raw string) []Balance {
	var out []Balance
	for _, entry := range strings.Split(raw, ",") {
		amount, asset, ok := strings.Cut(strings.TrimSpace(entry), "@")
		if !ok || amount == "" || asset == "" {
			continue
		}
		out = append(out, Balance{Amount: amount, AssetID: asset})
	}
	return out
}
