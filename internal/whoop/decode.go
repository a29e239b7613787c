package whoop

import (
	"io"

	go_json "github.com/goccy/go-json"

	"github.com/marek-a-m/vigor/internal/validator"
	"github.com/marek-a-m/vigor/internal/xerrors"
)

// DecodeDailyPayload reads one JSON daily payload and validates it.
// Malformed input is rejected before any transform logic runs.
func DecodeDailyPayload(r io.Reader) (*DailyPayload, error) {
	var payload DailyPayload
	if err := go_json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, xerrors.InvalidInput(
			xerrors.WithMessage("malformed daily payload"),
			xerrors.WithCause(err),
		)
	}
	if err := validator.Check(&payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
