package qatest

import (
	"errors"
	"strings"
)

// reformatError rewrites the failure text produced by testify/assert: the
// message moves ahead of the trace, and trace lines inside the harness's own
// code are dropped.
func reformatError(err error) error {
	if err == nil {
		return nil
	}
	traceLines, messageLines, ok := splitTestifyMessage(err.Error())
	if !ok {
		return err
	}
	if strings.TrimSpace(messageLines[0]) == "Received unexpected error:" && len(messageLines) > 1 {
		messageLines = messageLines[1:]
		messageLines[0] = "Error: " + messageLines[0]
	}
	result := append([]string(nil), messageLines...)
	result = append(result, "  Error trace:")
	for _, line := range traceLines {
		if strings.Contains(line, "test_scope.go") {
			// T.Run lives in test_scope.go, and every test stacktrace bottoms
			// out there
			break
		}
		result = append(result, "    "+line)
	}
	return errors.New(strings.Join(result, "\n"))
}

// splitTestifyMessage pulls the trace lines and the message lines out of a
// testify failure message. ok is false if the text does not have testify's
// Error Trace / Error layout.
func splitTestifyMessage(msg string) (traceLines, messageLines []string, ok bool) {
	if !strings.Contains(msg, "Error Trace:") {
		return nil, nil, false
	}
	inTrace, inMessage := false, false
	for _, raw := range strings.Split(msg, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case inMessage:
			messageLines = append(messageLines, line)
		case inTrace && strings.Contains(line, "Error:"):
			inMessage = true
			messageLines = append(messageLines, strings.TrimSpace(strings.TrimPrefix(line, "Error:")))
		case inTrace:
			traceLines = append(traceLines, line)
		case strings.Contains(line, "Error Trace:"):
			inTrace = true
			traceLines = append(traceLines, strings.TrimSpace(strings.TrimPrefix(line, "Error Trace:")))
		}
	}
	return traceLines, messageLines, len(traceLines) > 0 && len(messageLines) > 0
}
