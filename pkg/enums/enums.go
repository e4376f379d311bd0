package enums

// enums for validating user supplied
// config values

import (
	"github.com/orsinium-labs/enum"
)

type Method enum.Member[string]

var (
	mb = enum.NewBuilder[string, Method]()

	MethodLinear         = mb.Add(Method{"linear"})
	MethodConstant       = mb.Add(Method{"constant"})
	MethodAkima          = mb.Add(Method{"akima"})
	MethodFritschButland = mb.Add(Method{"fritsch-butland"})

	Methods = mb.Enum()
)

func (m Method) String() string { return m.Value }

type LoggingLevel enum.Member[string]

var (
	ll = enum.NewBuilder[string, LoggingLevel]()

	LoggingLevelDebug = ll.Add(LoggingLevel{"debug"})
	LoggingLevelInfo  = ll.Add(LoggingLevel{"info"})
	LoggingLevelWarn  = ll.Add(LoggingLevel{"warn"})
	LoggingLevelError = ll.Add(LoggingLevel{"error"})

	LoggingLevels = ll.Enum()
)

// Empty string maps to linear
func ParseMethod(s string) (Method, bool) {
	if s == "" {
		return MethodLinear, true
	}
	parsed := Methods.Parse(s)
	if parsed == nil {
		return Method{}, false
	}
	return *parsed, true
}

func ParseLoggingLevel(s string) (LoggingLevel, bool) {
	parsed := LoggingLevels.Parse(s)
	if parsed == nil {
		return LoggingLevel{}, false
	}
	return *parsed, true
}
