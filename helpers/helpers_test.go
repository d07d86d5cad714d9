package helpers

import (
	"math/big"
	"testing"
	"time"

	"crypto-widget-tui/wallet"
)

func TestShortenAddr(t *testing.T) {
	tests := []struct {
		name string
		addr string
		want string
	}{
		{"evm address", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0xd8dA6B…A96045"},
		{"bitcoin address", "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", "bc1qxy2k…hx0wlh"},
		{"short string untouched", "BTC", "BTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShortenAddr(tt.addr); got != tt.want {
				t.Errorf("ShortenAddr(%q) = %q, want %q", tt.addr, got, tt.want)
			}
		})
	}
}

func TestIsValidEthAddress(t *testing.T) {
	if !IsValidEthAddress("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045") {
		t.Error("expected valid address to pass")
	}
	if IsValidEthAddress("0x1234") || IsValidEthAddress("vitalik.eth") {
		t.Error("expected invalid addresses to fail")
	}
}

func TestIsValidEmail(t *testing.T) {
	if !IsValidEmail("user@example.com") {
		t.Error("expected valid email to pass")
	}
	for _, bad := range []string{"user", "user@", "@example.com", "a b@example.com"} {
		if IsValidEmail(bad) {
			t.Errorf("expected %q to fail", bad)
		}
	}
}

func TestIsValidAmount(t *testing.T) {
	for _, good := range []string{"0.001", "100", " 2.5 "} {
		if !IsValidAmount(good) {
			t.Errorf("expected %q to be valid", good)
		}
	}
	for _, bad := range []string{"", "0", "-1", "abc"} {
		if IsValidAmount(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestFormatUnits(t *testing.T) {
	wei := new(big.Int).Mul(big.NewInt(15), big.NewInt(1e17)) // 1.5 ETH
	if got := FormatUnits(wei, 18, "ETH"); got != "1.5000 ETH" {
		t.Errorf("FormatUnits = %q, want 1.5000 ETH", got)
	}
	if got := FormatUnits(nil, 18, "ETH"); got != "0 ETH" {
		t.Errorf("FormatUnits(nil) = %q, want 0 ETH", got)
	}
}

func TestPaymentURI(t *testing.T) {
	tests := []struct {
		name   string
		chain  wallet.Blockchain
		addr   string
		amount string
		want   string
	}{
		{"bitcoin with amount", wallet.Bitcoin, "bc1qaddr", "0.01", "bitcoin:bc1qaddr?amount=0.01"},
		{"bitcoin without amount", wallet.Bitcoin, "bc1qaddr", "", "bitcoin:bc1qaddr"},
		{"lightning invoice", wallet.Lightning, "lnbc1invoice", "0.01", "lightning:lnbc1invoice"},
		{"ethereum", wallet.Ethereum, "0xabc", "1.5", "ethereum:0xabc?value=1.5"},
		{"arbitrum uses evm scheme", wallet.Arbitrum, "0xabc", "", "ethereum:0xabc"},
		{"monero", wallet.Monero, "4Aaddr", "2", "monero:4Aaddr?tx_amount=2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PaymentURI(tt.chain, tt.addr, tt.amount, ""); got != tt.want {
				t.Errorf("PaymentURI = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadedAt(t *testing.T) {
	if got := LoadedAt(time.Time{}, true); got != "loading…" {
		t.Errorf("loading = %q, want loading…", got)
	}
	if got := LoadedAt(time.Time{}, false); got != "never" {
		t.Errorf("zero time = %q, want never", got)
	}
	at := time.Date(2026, 8, 31, 15, 4, 5, 0, time.UTC)
	if got := LoadedAt(at, false); got != "15:04:05" {
		t.Errorf("timestamp = %q, want 15:04:05", got)
	}
}
