package logging

import "strings"

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
	LevelFatal Level = "fatal"
)

type Level string

func (ll Level) String() string { return string(ll) }

var defaultLevel Level = LevelInfo

var levelPriorityMapping = map[Level]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
	LevelFatal: 4,
}

// priority of an unknown Level is the priority of the default level.
func priority(l Level) int {
	if p, ok := levelPriorityMapping[l]; ok {
		return p
	}
	return levelPriorityMapping[defaultLevel]
}

func isLevelEnabled(target, level Level) bool {
	return priority(target) <= priority(level)
}

var textToLevel = map[string]Level{
	"debug":    LevelDebug,
	"info":     LevelInfo,
	"warn":     LevelWarn,
	"error":    LevelError,
	"fatal":    LevelFatal,
	"critical": LevelFatal,

	"d": LevelDebug,
	"i": LevelInfo,
	"w": LevelWarn,
	"e": LevelError,
	"f": LevelFatal,
	"c": LevelFatal,
}

// ParseLevel maps a case-insensitive level name, or its first letter, to a Level.
func ParseLevel(raw string) (Level, bool) {
	level, ok := textToLevel[strings.ToLower(strings.TrimSpace(raw))]
	return level, ok
}
