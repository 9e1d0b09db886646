package script

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one parsed operation request.
type Command struct {
	Name string
	Args []int
}

// ParseCommand parses a single script line. The verb is taken as-is;
// arguments must be non-negative integers.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrBadArgument)
	}
	cmd := Command{Name: fields[0]}
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return Command{}, fmt.Errorf("%w: %q", ErrBadArgument, f)
		}
		cmd.Args = append(cmd.Args, n)
	}
	return cmd, nil
}
