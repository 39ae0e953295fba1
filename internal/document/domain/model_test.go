package domain

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshal(t *testing.T) {
	cases := []struct {
		raw  string
		want Money
	}{
		{`123.45`, 123.45},
		{`"123.45"`, 123.45},
		{`"£1,250.00"`, 1250},
		{`"$40"`, 40},
		{`null`, 0},
		{`""`, 0},
		{`"abc"`, 0},
		{`true`, 0},
		{`{"nested":1}`, 0},
		{`[1,2]`, 0},
	}
	for _, tc := range cases {
		var got Money
		if err := json.Unmarshal([]byte(tc.raw), &got); err != nil {
			t.Fatalf("Money(%s): unexpected error %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("Money(%s): got %v want %v", tc.raw, got, tc.want)
		}
	}
}

func TestInvoiceDecodeWithMalformedNumerics(t *testing.T) {
	payload := `{
		"number": "INV-0007",
		"client_name": "Acme Ltd",
		"amount": "not a number",
		"vat": "20",
		"items": [
			{"name": "Widgets", "price": "£50.00", "quantity": 2, "vat": null}
		],
		"status": "Unpaid"
	}`
	var invoice Invoice
	if err := json.Unmarshal([]byte(payload), &invoice); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if invoice.Amount != 0 {
		t.Fatalf("malformed amount should coerce to zero, got %v", invoice.Amount)
	}
	if invoice.VAT != 20 {
		t.Fatalf("string vat: got %v", invoice.VAT)
	}
	if len(invoice.Items) != 1 {
		t.Fatalf("items: %d", len(invoice.Items))
	}
	item := invoice.Items[0]
	if item.Price != 50 || item.Quantity != 2 || item.VAT != 0 {
		t.Fatalf("unexpected item: %+v", item)
	}
}
