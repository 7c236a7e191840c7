package render

import (
	"errors"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/domain"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// pongo2 keeps filters in a process-wide registry, so they are installed once.
func registerFilters() error {
	registerOnce.Do(func() {
		filters := []struct {
			name string
			fn   pongo2.FilterFunction
		}{
			{name: "money", fn: filterMoney},
			{name: "required", fn: filterRequired},
		}

		for _, f := range filters {
			if pongo2.FilterExists(f.name) {
				registerErr = pongo2.ReplaceFilter(f.name, f.fn)
			} else {
				registerErr = pongo2.RegisterFilter(f.name, f.fn)
			}
			if registerErr != nil {
				return
			}
		}
	})
	return registerErr
}

// filterMoney formats a money object, e.g. {{ order.total_cost|money }}.
func filterMoney(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	m, err := domain.MoneyFromPayload(in.Interface())
	if err != nil {
		return nil, &pongo2.Error{Sender: "filter:money", OrigError: err}
	}
	return pongo2.AsValue(m.String()), nil
}

// filterRequired fails rendering when its input is nil or an empty string.
func filterRequired(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if in.IsNil() || (in.IsString() && in.String() == "") {
		return nil, &pongo2.Error{Sender: "filter:required", OrigError: errors.New("required value is missing")}
	}
	return in, nil
}
