// Package dungeon parses the line-oriented dungeon description format into
// an ordered room sequence. Order is discovery order; the last room holds
// the win condition.
package dungeon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/nathoo/crawlcore/engine/world"
)

// Header is the sentinel first line of every dungeon file.
const Header = "DUNGEON_LOAD_FINAL_PROJECT"

// Structural markers are matched exactly, indentation included.
const (
	roomOpen  = "    {"
	listOpen  = "      ["
	listClose = "      ]"
	entryOpen = "        {"
)

var (
	// ErrInvalidFormat reports a missing or wrong header.
	ErrInvalidFormat = errors.New("invalid dungeon format")
	// ErrFormat reports a numeric or flag field that does not parse.
	ErrFormat = errors.New("malformed field")
	// ErrTruncated reports input that ended inside a room block.
	ErrTruncated = errors.New("truncated dungeon")
)

// ParseError locates a parse failure. It unwraps to one of the package
// sentinels or to a world construction error.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dungeon line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Option configures Parse.
type Option func(*parser)

// Lenient stops at a truncated room instead of failing, returning only the
// rooms that were fully read.
func Lenient() Option {
	return func(p *parser) { p.lenient = true }
}

type parser struct {
	sc      *bufio.Scanner
	line    int
	lenient bool
}

// Parse reads a dungeon description. A bad header fails the whole parse and
// no rooms are returned.
func Parse(r io.Reader, opts ...Option) ([]*world.Room, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	for _, opt := range opts {
		opt(p)
	}

	header, ok := p.scan()
	if !ok || header != Header {
		if err := p.sc.Err(); err != nil {
			return nil, fmt.Errorf("reading dungeon: %w", err)
		}
		return nil, p.errorf(ErrInvalidFormat, "INVALID FILE")
	}

	var rooms []*world.Room
	for {
		line, ok := p.scan()
		if !ok {
			break
		}
		if line != roomOpen {
			continue
		}
		room, err := p.room()
		if err != nil {
			if p.lenient && errors.Is(err, ErrTruncated) {
				return rooms, nil
			}
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dungeon: %w", err)
	}
	return rooms, nil
}

// ParseString parses a dungeon held in memory.
func ParseString(s string, opts ...Option) ([]*world.Room, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile parses the dungeon file at path.
func ParseFile(path string, opts ...Option) ([]*world.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dungeon %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, opts...)
}

func (p *parser) room() (*world.Room, error) {
	name, err := p.scalar()
	if err != nil {
		return nil, err
	}
	shortID, err := p.scalar()
	if err != nil {
		return nil, err
	}

	var doors []world.Door
	err = p.list(func() error {
		d, err := p.door()
		doors = append(doors, d)
		return err
	})
	if err != nil {
		return nil, err
	}

	var enemies []world.Enemy
	err = p.list(func() error {
		e, err := p.enemy()
		enemies = append(enemies, e)
		return err
	})
	if err != nil {
		return nil, err
	}

	var weapons []world.Weapon
	err = p.list(func() error {
		w, err := p.weapon()
		weapons = append(weapons, w)
		return err
	})
	if err != nil {
		return nil, err
	}

	keys, err := p.number("KEYS")
	if err != nil {
		return nil, err
	}

	room, err := world.NewRoom(name, shortID, doors, enemies, weapons, keys)
	if err != nil {
		return nil, p.wrap(err)
	}
	return room, nil
}

// list reads one optional list slot. Any slot line other than the list
// opener (for example "[]") is an empty list.
func (p *parser) list(entry func() error) error {
	line, err := p.next()
	if err != nil {
		return err
	}
	if line != listOpen {
		return nil
	}
	for {
		line, err := p.next()
		if err != nil {
			return err
		}
		switch line {
		case listClose:
			return nil
		case entryOpen:
			if err := entry(); err != nil {
				return err
			}
		}
	}
}

func (p *parser) door() (world.Door, error) {
	direction, err := p.scalar()
	if err != nil {
		return world.Door{}, err
	}
	adjacent, err := p.scalar()
	if err != nil {
		return world.Door{}, err
	}
	locked, err := p.flag("LOCKED")
	if err != nil {
		return world.Door{}, err
	}
	if err := p.closeEntry(); err != nil {
		return world.Door{}, err
	}

	d, err := world.NewDoor(direction, adjacent, locked)
	if err != nil {
		return world.Door{}, p.wrap(err)
	}
	return d, nil
}

func (p *parser) enemy() (world.Enemy, error) {
	name, err := p.scalar()
	if err != nil {
		return world.Enemy{}, err
	}
	shortID, err := p.scalar()
	if err != nil {
		return world.Enemy{}, err
	}
	stats, err := p.numbers("HEALTH", "STRENGTH", "CRITICAL CHANCE")
	if err != nil {
		return world.Enemy{}, err
	}
	if err := p.closeEntry(); err != nil {
		return world.Enemy{}, err
	}

	e, err := world.NewEnemy(name, shortID, stats[0], stats[1], stats[2])
	if err != nil {
		return world.Enemy{}, p.wrap(err)
	}
	return e, nil
}

func (p *parser) weapon() (world.Weapon, error) {
	name, err := p.scalar()
	if err != nil {
		return world.Weapon{}, err
	}
	shortID, err := p.scalar()
	if err != nil {
		return world.Weapon{}, err
	}
	stats, err := p.numbers("STRENGTH", "CRITICAL CHANCE")
	if err != nil {
		return world.Weapon{}, err
	}
	if err := p.closeEntry(); err != nil {
		return world.Weapon{}, err
	}

	w, err := world.NewWeapon(name, shortID, stats[0], stats[1])
	if err != nil {
		return world.Weapon{}, p.wrap(err)
	}
	return w, nil
}

// closeEntry consumes the line that ends an entry block without checking it.
func (p *parser) closeEntry() error {
	_, err := p.next()
	return err
}

// scalar reads the next line with all whitespace removed, embedded spaces included.
func (p *parser) scalar() (string, error) {
	line, err := p.next()
	if err != nil {
		return "", err
	}
	return stripSpace(line), nil
}

func (p *parser) number(field string) (uint, error) {
	s, err := p.scalar()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, p.errorf(ErrFormat, "%s %q IS NOT A NUMBER", field, s)
	}
	return uint(n), nil
}

func (p *parser) numbers(fields ...string) ([]uint, error) {
	out := make([]uint, len(fields))
	for i, f := range fields {
		n, err := p.number(f)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func (p *parser) flag(field string) (bool, error) {
	s, err := p.scalar()
	if err != nil {
		return false, err
	}
	switch s {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	default:
		return false, p.errorf(ErrFormat, "%s %q IS NOT TRUE OR FALSE", field, s)
	}
}

// scan returns the next line, tolerating CRLF line endings.
func (p *parser) scan() (string, bool) {
	if !p.sc.Scan() {
		return "", false
	}
	p.line++
	return strings.TrimSuffix(p.sc.Text(), "\r"), true
}

// next is scan for positions where the room block must continue.
func (p *parser) next() (string, error) {
	line, ok := p.scan()
	if !ok {
		if err := p.sc.Err(); err != nil {
			return "", fmt.Errorf("reading dungeon: %w", err)
		}
		return "", p.errorf(ErrTruncated, "UNEXPECTED END OF FILE")
	}
	return line, nil
}

func (p *parser) errorf(sentinel error, format string, args ...any) error {
	return &ParseError{Line: p.line, Err: fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))}
}

func (p *parser) wrap(err error) error {
	return &ParseError{Line: p.line, Err: err}
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
