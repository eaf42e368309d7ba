package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

// ErrNoProcesses is returned when the input holds no parsable process.
var ErrNoProcesses = errors.New("no processes in input")

// headerLines is the number of leading lines (column titles and a rule) the
// table format always starts with.
const headerLines = 2

// ReadTable parses the whitespace separated table format:
//
//	PID  Burst  Priority  Arrival
//	=============================
//	P1   5      2         0
//	2    3      1         1
//
// Blank lines and rule lines made of '=' or '-' are ignored, as are rows that
// do not parse. The result is not validated.
func ReadTable(r io.Reader, logger *slog.Logger) (core.ProcessSet, error) {
	scanner := bufio.NewScanner(r)
	var set core.ProcessSet
	line := 0
	for scanner.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		text := scanner.Text()
		if isRule(text) {
			continue
		}
		p, err := parseRow(text)
		if err != nil {
			logger.Debug("skipping row", "line", line, "error", err)
			continue
		}
		set = append(set, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table: %w", err)
	}
	if len(set) == 0 {
		return nil, ErrNoProcesses
	}
	set.Reset()
	return set, nil
}

func isRule(s string) bool {
	return strings.TrimFunc(s, func(r rune) bool {
		switch r {
		case ' ', '\t', '\r', '\n', '=', '-':
			return true
		}
		return false
	}) == ""
}

func parseRow(s string) (core.Process, error) {
	fields := strings.Fields(s)
	if len(fields) < 4 {
		return core.Process{}, fmt.Errorf("want 4 columns, got %d", len(fields))
	}
	id, err := requests.ParseProcessID(fields[0])
	if err != nil {
		return core.Process{}, err
	}
	var nums [3]int
	for i := range nums {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return core.Process{}, fmt.Errorf("column %d: %w", i+2, err)
		}
		nums[i] = n
	}
	return core.Process{
		ID:          id,
		BurstTime:   nums[0],
		Priority:    nums[1],
		ArrivalTime: nums[2],
	}, nil
}

// ReadWorkload decodes a YAML or JSON workload document.
func ReadWorkload(r io.Reader) (*requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoProcesses
		}
		return nil, fmt.Errorf("decode workload: %w", err)
	}
	if len(req.Jobs) == 0 {
		return nil, ErrNoProcesses
	}
	return &req, nil
}

// IsWorkloadFile reports whether path names a YAML or JSON workload.
func IsWorkloadFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// Load reads processes from path, or from stdin when path is "" or "-".
// YAML and JSON files are read as workloads; anything else as a table. The
// returned quantum is the workload's time_quantum, or 0.
func Load(path string, stdin io.Reader, logger *slog.Logger) (core.ProcessSet, int, error) {
	if path == "" || path == "-" {
		set, err := ReadTable(stdin, logger)
		return set, 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if IsWorkloadFile(path) {
		req, err := ReadWorkload(f)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", path, err)
		}
		return req.ProcessSet(), req.TimeQuantum, nil
	}
	set, err := ReadTable(f, logger)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", path, err)
	}
	return set, 0, nil
}
