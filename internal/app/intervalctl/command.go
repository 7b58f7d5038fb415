package intervalctl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrInvalidCommand = errors.New("invalid command")
)

type Op int

const (
	OpPut Op = iota
	OpRemove
)

func (o Op) String() string {
	switch o {
	case OpPut:
		return "put"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Command is one line of a script, with its literals still unparsed. Parsing
// them needs the map's domain.
type Command struct {
	Op    Op
	Start string
	End   string
	Value string
}

// ParseCommand parses "put START END VALUE" or "remove START END". The value
// is the rest of the line, so it may contain spaces.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrInvalidCommand)
	}

	switch fields[0] {
	case "put":
		if len(fields) < 4 {
			return Command{}, fmt.Errorf("%w: %q: want put START END VALUE", ErrInvalidCommand, line)
		}
		value := strings.TrimSpace(line)
		for _, f := range fields[:3] {
			value = strings.TrimSpace(strings.TrimPrefix(value, f))
		}
		return Command{Op: OpPut, Start: fields[1], End: fields[2], Value: value}, nil
	case "remove":
		if len(fields) != 3 {
			return Command{}, fmt.Errorf("%w: %q: want remove START END", ErrInvalidCommand, line)
		}
		return Command{Op: OpRemove, Start: fields[1], End: fields[2]}, nil
	}
	return Command{}, fmt.Errorf("%w: unknown op %q", ErrInvalidCommand, fields[0])
}

// ParseScript reads one command per line. Blank lines and lines starting
// with # are skipped.
func ParseScript(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		c, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		cmds = append(cmds, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return cmds, nil
}
