package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Price is a menu price given either as a string or as a number. The text is
// kept exactly as written and re-encoded in its original form.
type Price struct {
	Text    string
	Numeric bool
}

// StringPrice builds a textual price.
func StringPrice(text string) Price { return Price{Text: text} }

// NumericPrice builds a numeric price.
func NumericPrice(value float64) Price {
	return Price{Text: strconv.FormatFloat(value, 'f', -1, 64), Numeric: true}
}

func (p Price) String() string { return p.Text }

// IsZero reports whether no price was given.
func (p Price) IsZero() bool { return p.Text == "" }

// UnmarshalJSON accepts a JSON string or number.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}

	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*p = Price{Text: text}
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("price must be a string or a number: %w", err)
	}
	*p = Price{Text: number.String(), Numeric: true}
	return nil
}

// MarshalJSON writes the price back in the form it was read.
func (p Price) MarshalJSON() ([]byte, error) {
	if p.Numeric && p.Text != "" {
		if _, err := strconv.ParseFloat(p.Text, 64); err == nil {
			return []byte(p.Text), nil
		}
	}
	return json.Marshal(p.Text)
}
