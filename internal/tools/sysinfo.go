package tools

import (
	"context"
	"encoding/json"
	"os"
	"runtime"
	"time"
)

type systemInfoArgs struct {
	InfoType string `json:"info_type"`
}

// startedAt is captured once at process start so uptime reports a stable
// timestamp across calls.
var startedAt = time.Now()

// SystemInfo reports a short descriptive string about the host per
// info_type. The memory and processes types are stubbed: full metrics would
// need an extended dependency such as gopsutil, which this server
// deliberately does without.
func SystemInfo(_ context.Context, args json.RawMessage) (Result, error) {
	var a systemInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return Result{}, err
	}

	switch a.InfoType {
	case "platform":
		return Textf("Platform: %s\nArchitecture: %s\nRuntime: %s", runtime.GOOS, runtime.GOARCH, runtime.Version()), nil
	case "cpu":
		return Textf("CPU Count: %d\nArchitecture: %s", runtime.NumCPU(), runtime.GOARCH), nil
	case "memory":
		return Text("Memory information requires the gopsutil extended metrics dependency"), nil
	case "disk":
		cwd, err := os.Getwd()
		if err != nil {
			return errGettingSystemInfo(err), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return errGettingSystemInfo(err), nil
		}
		return Textf("Current directory: %s\nHome directory: %s", cwd, home), nil
	case "network":
		hostname, err := os.Hostname()
		if err != nil {
			return errGettingSystemInfo(err), nil
		}
		return Textf("Hostname: %s", hostname), nil
	case "processes":
		return Text("Process information requires the gopsutil extended metrics dependency"), nil
	case "uptime":
		return Textf("Server started at: %s", startedAt.Format(time.RFC3339)), nil
	default:
		return Errorf("Unknown info type: %s", a.InfoType), nil
	}
}

func errGettingSystemInfo(err error) Result {
	return Errorf("Error getting system info: %v", err)
}
