package fmtsize

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var formats = map[string]Format{
	Conventional{}.String(): Conventional{},
	Decimal{}.String():      Decimal{},
}

// UnknownFormatError indicates a format name that is not registered.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown format '%s' (available: %s)", e.Name, strings.Join(Names(), ", "))
}

// IsUnknownFormat reports whether err is an UnknownFormatError.
func IsUnknownFormat(err error) bool {
	var uf *UnknownFormatError
	return errors.As(err, &uf)
}

// Lookup returns the format registered under name. Matching ignores case
// and surrounding whitespace.
func Lookup(name string) (Format, error) {
	f, ok := formats[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownFormatError{Name: name}
	}
	return f, nil
}

// Names returns the registered format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
