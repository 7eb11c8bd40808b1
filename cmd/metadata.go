// Loader for the program meta-data file format: semicolon-separated
// <Letter>(<description>)<cycles> tokens bracketed by simulator start/end
// flags, with each program bracketed by A(start)0 / A(end)0.
//
// Cycle times are resolved here, once, and cached on each operation; the
// scheduler never re-resolves them.

package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	sim "github.com/denismorozov/OS-Simulator/sim"
)

const (
	metaHeader = "Start Program Meta-Data Code:"
	metaFooter = "End Program Meta-Data Code."

	simStartToken = "S(start)0"
	simEndToken   = "S(end)0"
)

// LoadMetaData parses a meta-data file into the batch of programs it
// describes, resolving each operation's cycle time against the config table
// and accumulating each program's running time.
func LoadMetaData(path string, cycleTimes sim.CycleTimes) ([]*sim.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sim.ErrMetaDataIO, path)
	}

	tokens, err := metaDataTokens(string(data))
	if err != nil {
		return nil, err
	}

	var programs []*sim.Program
	var current *sim.Program
	for _, token := range tokens {
		op, err := parseOperation(token)
		if err != nil {
			return nil, err
		}

		if current == nil {
			if op.Kind != sim.OpProgramControl || op.Description != "start" {
				return nil, fmt.Errorf("%w: expected A(start)0, got %q", sim.ErrMetaDataFormat, token)
			}
			current = sim.NewProgram()
		}

		cycleTime, err := cycleTimes.Resolve(op)
		if err != nil {
			return nil, err
		}
		op.CycleTime = cycleTime
		current.AddOperation(op)

		if op.Kind == sim.OpProgramControl && op.Description == "end" {
			programs = append(programs, current)
			current = nil
		}
	}
	if current != nil {
		return nil, fmt.Errorf("%w: program end flag A(end)0 is missing", sim.ErrMetaDataFormat)
	}

	return programs, nil
}

// metaDataTokens validates the file's framing (header, S(start)/S(end)
// flags, footer) and returns the program tokens between the flags.
func metaDataTokens(text string) ([]string, error) {
	header, rest, found := strings.Cut(strings.TrimSpace(text), "\n")
	if !found || strings.TrimSpace(header) != metaHeader {
		return nil, fmt.Errorf("%w: missing %q header", sim.ErrMetaDataFormat, metaHeader)
	}

	rest = strings.TrimSpace(rest)
	if !strings.HasSuffix(rest, metaFooter) {
		return nil, fmt.Errorf("%w: meta-data file does not end after simulator operations end", sim.ErrMetaDataFormat)
	}
	body := strings.TrimSpace(strings.TrimSuffix(rest, metaFooter))

	// The token run ends with "S(end)0." — period, not semicolon.
	if !strings.HasSuffix(body, ".") {
		return nil, fmt.Errorf("%w: simulator end flag is missing", sim.ErrMetaDataFormat)
	}
	body = strings.TrimSuffix(body, ".")

	var tokens []string
	for _, token := range strings.Split(body, ";") {
		token = strings.TrimSpace(token)
		if token != "" {
			tokens = append(tokens, token)
		}
	}

	if len(tokens) < 2 || tokens[0] != simStartToken {
		return nil, fmt.Errorf("%w: simulator start flag is missing", sim.ErrMetaDataFormat)
	}
	if tokens[len(tokens)-1] != simEndToken {
		return nil, fmt.Errorf("%w: simulator end flag is missing", sim.ErrMetaDataFormat)
	}

	return tokens[1 : len(tokens)-1], nil
}

// parseOperation parses one <Letter>(<description>)<cycles> token.
func parseOperation(token string) (sim.Operation, error) {
	if len(token) < 4 || token[1] != '(' {
		return sim.Operation{}, fmt.Errorf("%w: malformed operation token %q", sim.ErrMetaDataFormat, token)
	}
	closing := strings.IndexByte(token, ')')
	if closing < 0 {
		return sim.Operation{}, fmt.Errorf("%w: malformed operation token %q", sim.ErrMetaDataFormat, token)
	}

	kind, err := sim.ParseOpKind(token[0])
	if err != nil {
		return sim.Operation{}, err
	}

	cycles, err := strconv.Atoi(token[closing+1:])
	if err != nil || cycles < 0 {
		return sim.Operation{}, fmt.Errorf("%w: bad cycle count in token %q", sim.ErrMetaDataFormat, token)
	}

	return sim.Operation{
		Kind:        kind,
		Description: token[2:closing],
		Cycles:      cycles,
	}, nil
}
