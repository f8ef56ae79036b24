package eventmodels

import (
	"encoding/json"
	"fmt"
	"strings"
)

type OptionType string

func (o OptionType) Validate() error {
	if o != Call && o != Put {
		return fmt.Errorf("OptionType: Validate: invalid option type: %s", o)
	}

	return nil
}

// Label is the capitalized form used in spread summaries.
func (o OptionType) Label() string {
	switch o {
	case Call:
		return "Call"
	case Put:
		return "Put"
	}

	return string(o)
}

func (o *OptionType) UnmarshalText(text []byte) error {
	parsed, err := ParseOptionType(string(text))
	if err != nil {
		return err
	}

	*o = parsed
	return nil
}

func (o *OptionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("OptionType: UnmarshalJSON: %w", err)
	}

	return o.UnmarshalText([]byte(s))
}

// ParseOptionType accepts the feed's single letter codes as well as the long names.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "call":
		return Call, nil
	case "p", "put":
		return Put, nil
	}

	return "", fmt.Errorf("ParseOptionType: invalid option type: %s", s)
}

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)
