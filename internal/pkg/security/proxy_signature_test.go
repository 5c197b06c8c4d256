package security

import (
	"net/url"
	"testing"
)

func TestVerifyProxySignature(t *testing.T) {
	secret := "shhh"

	query := url.Values{}
	query.Set("shop", "demo.myshopify.com")
	query.Set("path_prefix", "/apps/substack")
	query.Set("timestamp", "1712345678")
	query.Set("signature", SignProxyQuery(query, secret))

	if err := VerifyProxySignature(query, secret); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
}

func TestVerifyProxySignatureMultiValue(t *testing.T) {
	secret := "shhh"

	query := url.Values{}
	query.Set("shop", "demo.myshopify.com")
	query.Add("extra", "a")
	query.Add("extra", "b")
	query.Set("signature", SignProxyQuery(query, secret))

	if err := VerifyProxySignature(query, secret); err != nil {
		t.Fatalf("expected valid signature, got %v", err)
	}
}

func TestVerifyProxySignatureTampered(t *testing.T) {
	secret := "shhh"

	query := url.Values{}
	query.Set("shop", "demo.myshopify.com")
	query.Set("signature", SignProxyQuery(query, secret))
	query.Set("shop", "evil.myshopify.com")

	if err := VerifyProxySignature(query, secret); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyProxySignatureMissing(t *testing.T) {
	query := url.Values{}
	query.Set("shop", "demo.myshopify.com")

	if err := VerifyProxySignature(query, "shhh"); err != ErrInvalidSignature {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}

	query.Set("signature", "abc")
	if err := VerifyProxySignature(query, ""); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
