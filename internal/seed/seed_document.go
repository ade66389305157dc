package seed

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	seederrors "go-payroll/internal/seed/errors"
)

// DocumentKeys are the top-level arrays every seed document must carry.
// An empty array is fine; an absent or null one is not.
var DocumentKeys = []string{"employees", "work_logs", "bonuses", "penalties", "salaries"}

func ReadDocument(path string) (Document, error) {
	var doc Document
	if err := readFile(path, &doc, DocumentKeys...); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func DecodeDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := decode(r, &doc, DocumentKeys...); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// ReadEmployees reads only the employees array of a seed file; the other
// arrays may be absent.
func ReadEmployees(path string) ([]EmployeeRecord, error) {
	var doc Document
	if err := readFile(path, &doc, "employees"); err != nil {
		return nil, err
	}
	return doc.Employees, nil
}

func DecodeEmployees(r io.Reader) ([]EmployeeRecord, error) {
	var doc Document
	if err := decode(r, &doc, "employees"); err != nil {
		return nil, err
	}
	return doc.Employees, nil
}

func readFile(path string, doc *Document, required ...string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", seederrors.ErrSeedFileNotFound, path)
		}
		return err
	}
	defer f.Close()

	return decode(f, doc, required...)
}

// decode rejects a null document, trailing data after the object and any
// required key that is absent or null.
func decode(r io.Reader, doc *Document, required ...string) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("%w: %v", seederrors.ErrInvalidDocument, err)
	}
	if raw == nil {
		return fmt.Errorf("%w: document is null", seederrors.ErrInvalidDocument)
	}

	for _, key := range required {
		value, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
			return fmt.Errorf("%w: %q", seederrors.ErrMissingDocumentKey, key)
		}
	}

	if err := json.Unmarshal(body, doc); err != nil {
		return fmt.Errorf("%w: %v", seederrors.ErrInvalidDocument, err)
	}
	return nil
}
