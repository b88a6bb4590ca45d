// Package converter runs raw machine code text through classification,
// splitting and normalization, and pairs every word with its disassembly.
package converter

import (
	"errors"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ChainSafe/rvhex/disassembler"
	"github.com/ChainSafe/rvhex/input"
	"github.com/ChainSafe/rvhex/logging"
	"github.com/ChainSafe/rvhex/opcode"
)

// Converter turns text into a Result using one Disassembler. It keeps no
// per-request state; the busy guard is the State passed to Convert.
type Converter struct {
	dis     disassembler.Disassembler
	logger  *log.Logger
	lenient bool
}

// Option configures a Converter.
type Option func(*Converter)

// WithLogger sets the logger for dropped requests and conversion steps. The
// default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithLenient makes input that fails classification go down the hex-word
// path, so each bad line becomes an error entry instead of failing the request.
func WithLenient(lenient bool) Option {
	return func(c *Converter) {
		c.lenient = lenient
	}
}

// New creates a Converter backed by dis. It is strict unless WithLenient(true)
// is given.
func New(dis disassembler.Disassembler, opts ...Option) *Converter {
	c := &Converter{dis: dis, logger: logging.Discard()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert converts text unless state says another conversion is running, in
// which case the request is dropped with ErrBusy. The returned state is the
// one to pass to the next call.
func (c *Converter) Convert(state State, text string) (State, *Result, error) {
	running, err := Begin(state)
	if err != nil {
		c.logger.Warn("conversion dropped", "reason", err)
		return state, nil, err
	}
	res, err := c.convert(text)
	return Done(running), res, err
}

func (c *Converter) convert(text string) (*Result, error) {
	outcome := input.Classify(text)
	c.logger.Debug("classified input", "valid", outcome.Valid, "format", outcome.Format, "message", outcome.Message)

	var (
		lines  []string
		format = outcome.Format
	)
	switch {
	case outcome.Valid && outcome.Format == input.FormatByteStream:
		words, err := opcode.SplitByteStreamText(text)
		if err != nil {
			c.logger.Debug("byte stream rejected", "err", err)
			return nil, err
		}
		lines = words
	case outcome.Valid:
		lines = input.Lines(text)
	case c.lenient && errors.Is(outcome.Err, input.ErrInvalidFormat):
		lines = input.Lines(text)
		format = input.FormatHex
	default:
		return nil, outcome.Err
	}

	res := c.ConvertLines(lines)
	res.Format = format
	c.logger.Debug("converted input", "entries", len(res.Entries), "failures", res.Failures())
	return res, nil
}

// ConvertLines normalizes and disassembles each non-blank line on its own.
// A failing line becomes an error entry; it never stops the others.
func (c *Converter) ConvertLines(lines []string) *Result {
	res := &Result{Format: input.FormatHex, Entries: make([]Entry, 0, len(lines))}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		res.Entries = append(res.Entries, c.convertLine(line))
	}
	return res
}

func (c *Converter) convertLine(line string) Entry {
	w, err := opcode.Normalize(line)
	if err != nil {
		c.logger.Debug("malformed word", "line", line, "err", err)
		return Entry{Input: line, Error: err.Error()}
	}

	entry := Entry{Input: w.String(), Width: w.Width}
	text, err := c.dis.Disassemble(entry.Input)
	switch {
	case err != nil:
		entry.Error = err.Error()
	case disassembler.IsErrorText(text):
		entry.Error = strings.TrimSpace(strings.TrimPrefix(text, disassembler.ErrorPrefix))
	default:
		entry.Disassembly = text
	}
	if entry.Failed() {
		c.logger.Debug("disassembly failed", "word", entry.Input, "err", entry.Error)
	}
	return entry
}
