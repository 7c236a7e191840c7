package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeObject(t *testing.T) {
	t.Run("normalises nested numbers", func(t *testing.T) {
		body := `{"email":"a@b.com","order":{"items":[{"item":{"product_id":"OLJCESPC7Z","quantity":1}}],"total_cost":{"currency_code":"USD","units":20,"nanos":0},"weight":1.5}}`

		got, err := DecodeObject(strings.NewReader(body))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := map[string]any{
			"email": "a@b.com",
			"order": map[string]any{
				"items": []any{
					map[string]any{
						"item": map[string]any{"product_id": "OLJCESPC7Z", "quantity": int64(1)},
					},
				},
				"total_cost": map[string]any{"currency_code": "USD", "units": int64(20), "nanos": int64(0)},
				"weight":     1.5,
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("decoded payload mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rejects non-object values", func(t *testing.T) {
		for _, body := range []string{`[]`, `"a@b.com"`, `42`, `null`} {
			if _, err := DecodeObject(strings.NewReader(body)); !errors.Is(err, ErrNotObject) {
				t.Errorf("body %s: expected ErrNotObject, got %v", body, err)
			}
		}
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		if _, err := DecodeObject(strings.NewReader(`{"email":`)); err == nil {
			t.Error("expected error for truncated body")
		}
	})

	t.Run("rejects empty body", func(t *testing.T) {
		if _, err := DecodeObject(strings.NewReader("")); err == nil {
			t.Error("expected error for empty body")
		}
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		if _, err := DecodeObjectBytes([]byte(`{"email":"a@b.com"} {}`)); err == nil {
			t.Error("expected error for trailing data")
		}
	})
}
