package util

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogIO | LogGame | LogSystem

var (
	logMutex  sync.Mutex
	logOutput io.Writer = os.Stderr
)

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogIO
	LogGame
	LogSystem
)

// SetLogOutput redirects all log lines. A nil writer discards them.
func SetLogOutput(w io.Writer) {
	logMutex.Lock()
	defer logMutex.Unlock()
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

func SetLogLevel(lvl LogLevel) {
	GLOBAL_LOG_LEVEL = lvl
}

func SetLogCategories(categories LogCategory) {
	GLOBAL_LOG_CATEGORIES = categories
}

// ParseLogLevel accepts error, warning, info and debug.
func ParseLogLevel(name string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "error":
		return LogLevelError, true
	case "warning", "warn":
		return LogLevelWarning, true
	case "info", "":
		return LogLevelInfo, true
	case "debug":
		return LogLevelDebug, true
	}
	return LogLevelInfo, false
}

// ParseLogCategories turns a list like ["voxel", "io"] into a bitmask.
// Unknown names are returned separately.
func ParseLogCategories(names []string) (LogCategory, []string) {
	var result LogCategory
	var unknown []string
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "voxel":
			result |= LogVoxel
		case "io":
			result |= LogIO
		case "game":
			result |= LogGame
		case "system":
			result |= LogSystem
		case "all":
			result |= LogVoxel | LogIO | LogGame | LogSystem
		default:
			unknown = append(unknown, name)
		}
	}
	return result, unknown
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	logMutex.Lock()
	defer logMutex.Unlock()
	fmt.Fprintln(logOutput, txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogGameInfo(txt string) {
	log(LogGame, LogLevelInfo, txt)
}

func LogGameDebug(txt string) {
	log(LogGame, LogLevelDebug, txt)
}

func LogGameWarning(txt string) {
	log(LogGame, LogLevelWarning, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}
