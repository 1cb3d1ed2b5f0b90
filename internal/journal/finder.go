package journal

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/alexander-akhmetov/signdeck/internal/dirs"
)

// LogFile describes one journal on disk.
type LogFile struct {
	Path      string
	ListName  string
	Timestamp time.Time
}

// FindLogs lists journals in logsDir, optionally filtered by a
// case-insensitive list-name substring. Newest first.
func FindLogs(logsDir, filter string) ([]LogFile, error) {
	if logsDir == "" {
		logsDir = dirs.LogsDir()
	}

	entries, err := os.ReadDir(logsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var logs []LogFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		lf := parseLogFilename(logsDir, entry.Name())
		if lf == nil {
			continue
		}
		if filter != "" && !strings.Contains(strings.ToLower(lf.ListName), strings.ToLower(filter)) {
			continue
		}
		logs = append(logs, *lf)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].Timestamp.Equal(logs[j].Timestamp) {
			return logs[i].Path > logs[j].Path
		}
		return logs[i].Timestamp.After(logs[j].Timestamp)
	})
	return logs, nil
}

// FindLatestLog returns the newest journal matching filter, or nil.
func FindLatestLog(logsDir, filter string) (*LogFile, error) {
	logs, err := FindLogs(logsDir, filter)
	if err != nil || len(logs) == 0 {
		return nil, err
	}
	return &logs[0], nil
}

// parseLogFilename parses YYYYMMDD-HHMMSS-<list-name>.log.
func parseLogFilename(dir, name string) *LogFile {
	base := strings.TrimSuffix(name, ".log")
	if len(base) < len(fileTimeFormat)+1 {
		return nil
	}

	t, err := time.ParseInLocation(fileTimeFormat, base[:len(fileTimeFormat)], time.Local)
	if err != nil {
		return nil
	}

	return &LogFile{
		Path:      filepath.Join(dir, name),
		ListName:  base[len(fileTimeFormat)+1:],
		Timestamp: t,
	}
}
