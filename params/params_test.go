package params

import "testing"

func TestApplyLastWriteWins(t *testing.T) {
	p := Params{Blockchain: "Ethereum"}
	p.Apply(Params{Blockchain: "Bitcoin", AssetOut: "BTC"})

	if p[Blockchain] != "Bitcoin" {
		t.Errorf("Blockchain = %q, want Bitcoin", p[Blockchain])
	}
	if p[AssetOut] != "BTC" {
		t.Errorf("AssetOut = %q, want BTC", p[AssetOut])
	}
}

func TestMergeURLOverridesWin(t *testing.T) {
	tests := []struct {
		name      string
		defaults  Params
		overrides Params
		key       Key
		want      string
	}{
		{
			name:      "override replaces tree value",
			defaults:  Params{Blockchain: "ETH"},
			overrides: Params{Blockchain: "BTC"},
			key:       Blockchain,
			want:      "BTC",
		},
		{
			name:      "tree value survives when not overridden",
			defaults:  Params{Blockchain: "Ethereum", AssetOut: "ETH"},
			overrides: Params{AssetOut: "USDC"},
			key:       Blockchain,
			want:      "Ethereum",
		},
		{
			name:      "override wins on overlapping key",
			defaults:  Params{Blockchain: "Ethereum", AssetOut: "ETH"},
			overrides: Params{AssetOut: "USDC"},
			key:       AssetOut,
			want:      "USDC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.defaults, tt.overrides)
			if got[tt.key] != tt.want {
				t.Errorf("Merge()[%s] = %q, want %q", tt.key, got[tt.key], tt.want)
			}
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	defaults := Params{Blockchain: "Ethereum"}
	overrides := Params{Blockchain: "Bitcoin"}
	Merge(defaults, overrides)

	if defaults[Blockchain] != "Ethereum" {
		t.Errorf("defaults mutated: Blockchain = %q", defaults[Blockchain])
	}
}

func TestParseQuery(t *testing.T) {
	ext, err := ParseQuery("?service=buy&blockchain=Bitcoin&asset-out=BTC&redirect-uri=https%3A%2F%2Fexample.com%2Fdone&frame=1")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}

	if ext.Overrides[Service] != "buy" {
		t.Errorf("Service = %q, want buy", ext.Overrides[Service])
	}
	if ext.Overrides[Blockchain] != "Bitcoin" {
		t.Errorf("Blockchain = %q, want Bitcoin", ext.Overrides[Blockchain])
	}
	if ext.Overrides[AssetOut] != "BTC" {
		t.Errorf("AssetOut = %q, want BTC", ext.Overrides[AssetOut])
	}
	if ext.Redirect != "https://example.com/done" {
		t.Errorf("Redirect = %q", ext.Redirect)
	}
	// Unknown keys are dropped, not stored and not an error.
	if _, ok := ext.Overrides[Key("frame")]; ok {
		t.Error("unknown key 'frame' should have been ignored")
	}
}

func TestParseQueryBalances(t *testing.T) {
	ext, err := ParseQuery("balances=0.5@BTC,1200@USDC,broken,@ETH")
	if err != nil {
		t.Fatalf("ParseQuery failed: %v", err)
	}

	want := []Balance{
		{Amount: "0.5", AssetID: "BTC"},
		{Amount: "1200", AssetID: "USDC"},
	}
	if len(ext.Balances) != len(want) {
		t.Fatalf("got %d balances, want %d: %v", len(ext.Balances), len(want), ext.Balances)
	}
	for i, b := range want {
		if ext.Balances[i] != b {
			t.Errorf("balance %d = %+v, want %+v", i, ext.Balances[i], b)
		}
	}
}

func TestParseQueryMalformed(t *testing.T) {
	if _, err := ParseQuery("a=%zz"); err == nil {
		t.Error("expected error for malformed percent encoding")
	}
}
