package tools

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
)

type currentTimeArgs struct {
	Format       string `json:"format"`
	Timezone     string `json:"timezone"`
	CustomFormat string `json:"custom_format"`
}

// humanLayout renders e.g. "Saturday, August 30, 2025 at 3:04 PM".
const humanLayout = "Monday, January 2, 2006 at 3:04 PM"

// CurrentTime formats the current time per the requested format. The
// timezone argument defaults to the host's local zone; custom formats use Go
// reference layouts.
func CurrentTime(_ context.Context, args json.RawMessage) (Result, error) {
	var a currentTimeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return Result{}, err
	}

	loc := time.Local
	if a.Timezone != "" && a.Timezone != "local" {
		var err error
		loc, err = time.LoadLocation(a.Timezone)
		if err != nil {
			return Errorf("Error getting time: %v", err), nil
		}
	}
	now := time.Now().In(loc)

	var result string
	switch a.Format {
	case "iso":
		result = now.Format(time.RFC3339)
	case "human":
		result = now.Format(humanLayout)
	case "timestamp":
		result = strconv.FormatInt(now.Unix(), 10)
	case "custom":
		if a.CustomFormat == "" {
			result = "Custom format string required for custom format type"
		} else {
			result = now.Format(a.CustomFormat)
		}
	default:
		return Errorf("Unknown format type: %s", a.Format), nil
	}

	return Textf("Current time: %s", result), nil
}
