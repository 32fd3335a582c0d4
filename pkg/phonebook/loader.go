// Package phonebook reads the directory and query lists from line-oriented text.
package phonebook

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"regexp"

	"phonebench/pkg/common"
)

var separator = regexp.MustCompile(`\s+`)

// ParseDirectory reads "<phone><whitespace><name>" lines. The name keeps any
// internal whitespace. A line without a separator fails the whole load.
func ParseDirectory(r io.Reader) ([]common.Record, error) {
	var records []common.Record
	scanner := newScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		parts := separator.Split(scanner.Text(), 2)
		if len(parts) < 2 {
			return nil, common.NewParseError(lineNo, "missing whitespace between phone and name", nil)
		}
		records = append(records, common.Record{Phone: parts[0], Name: parts[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// ParseQueries returns every line verbatim.
func ParseQueries(r io.Reader) ([]string, error) {
	var queries []string
	scanner := newScanner(r)
	for scanner.Scan() {
		queries = append(queries, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return queries, nil
}

func LoadDirectory(path string) ([]common.Record, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseDirectory(f)
}

func LoadQueries(path string) ([]string, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseQueries(f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.NewNotFoundError(path, err)
	}
	return f, err
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	return scanner
}

// TextSource reads both lists from text files on every call.
type TextSource struct {
	DirectoryPath string
	QueriesPath   string
}

func (s TextSource) LoadDirectory() ([]common.Record, error) {
	return LoadDirectory(s.DirectoryPath)
}

func (s TextSource) LoadQueries() ([]string, error) {
	return LoadQueries(s.QueriesPath)
}

func (TextSource) Close() {}
