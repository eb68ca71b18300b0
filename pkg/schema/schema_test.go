package schema

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func allOptional() Record {
	return Record{Fields: []Field{
		{Name: "name", Shape: Scalar{Kind: String}, Optional: true},
		{Name: "color", Shape: Scalar{Kind: Number}, Optional: true},
		{Name: "homework", Shape: Scalar{Kind: Bool}, Optional: true},
	}}
}

func TestEmptyDocumentLoadsAllOptionalRecord(t *testing.T) {
	v, err := Load(nil, allOptional())
	if err != nil {
		t.Fatalf("expected empty document to load, got: %v", err)
	}

	for _, name := range []string{"name", "color", "homework"} {
		if !v.Field(name).Empty() {
			t.Errorf("field %s should be empty", name)
		}
	}
}

func TestScalarTypeMismatch(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "color", Shape: Scalar{Kind: Number}},
	}}

	_, err := Load([]byte("color: blue"), schema)

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got: %v", err)
	}
	if mismatch.Path != "color" {
		t.Errorf("error path = %q, want %q", mismatch.Path, "color")
	}
	want := "field 'color' expected type 'number' but got 'blue' instead"
	if mismatch.Error() != want {
		t.Errorf("message = %q, want %q", mismatch.Error(), want)
	}
}

func TestMissingFieldNamesTheMissingOne(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "a", Shape: Record{Fields: []Field{
			{Name: "b", Shape: Scalar{Kind: Number}},
		}}},
		{Name: "c", Shape: Scalar{Kind: String}},
	}}

	_, err := Load([]byte("a:\n  b: 1\n"), schema)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got: %v", err)
	}
	if missing.Field != "c" {
		t.Errorf("missing field = %q, want %q", missing.Field, "c")
	}
	if !strings.Contains(missing.Error(), "'c'") {
		t.Errorf("message should name field c: %q", missing.Error())
	}
}

func TestNestedMismatchCarriesFullPath(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "teacher", Shape: Record{Fields: []Field{
			{Name: "email", Shape: Scalar{Kind: String}},
		}}},
	}}

	_, err := Load([]byte("teacher:\n  email: true\n"), schema)

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got: %v", err)
	}
	if mismatch.Path != "teacher.email" {
		t.Errorf("error path = %q, want %q", mismatch.Path, "teacher.email")
	}
}

func TestSequencePreservesOrder(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "nums", Shape: Sequence{Elem: Scalar{Kind: Number}}},
	}}

	v, err := Load([]byte("nums: [3, 1, 2]"), schema)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	got := v.Field("nums").Seq()
	want := []float64{3, 1, 2}
	if len(got) != len(want) {
		t.Fatalf("sequence length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].Num() != want[i] {
			t.Errorf("nums[%d] = %v, want %v", i, got[i].Num(), want[i])
		}
	}
}

func TestSequenceElementMismatchNamesIndex(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "nums", Shape: Sequence{Elem: Scalar{Kind: Number}}},
	}}

	_, err := Load([]byte("nums: [1, oops, 3]"), schema)

	var mismatch *TypeMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected TypeMismatchError, got: %v", err)
	}
	if mismatch.Path != "nums[1]" {
		t.Errorf("error path = %q, want %q", mismatch.Path, "nums[1]")
	}
}

func TestExtraKeysAreIgnored(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "name", Shape: Scalar{Kind: String}},
	}}

	v, err := Load([]byte("name: Algebra\nundeclared: whatever\n"), schema)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if v.Field("name").Str() != "Algebra" {
		t.Errorf("name = %q", v.Field("name").Str())
	}
}

func TestNullRequiredFieldIsMissing(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "room", Shape: Scalar{Kind: String}},
	}}

	_, err := Load([]byte("room:\n"), schema)

	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError for null required field, got: %v", err)
	}
}

func TestNullOptionalFieldIsEmpty(t *testing.T) {
	schema := Record{Fields: []Field{
		{Name: "room", Shape: Scalar{Kind: String}, Optional: true},
	}}

	v, err := Load([]byte("room:\n"), schema)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !v.Field("room").Empty() {
		t.Errorf("null optional field should be empty")
	}
}

func TestMalformedDocumentIsParseError(t *testing.T) {
	_, err := Load([]byte("a: b: c"), allOptional())

	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("expected ParseError, got: %v", err)
	}
}

func TestLoadFileAttributesErrorsToTheFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("color: blue"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	schema := Record{Fields: []Field{
		{Name: "color", Shape: Scalar{Kind: Number}},
	}}

	_, err := LoadFile(path, schema)
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := Source(err); got != path {
		t.Errorf("Source(err) = %q, want %q", got, path)
	}
}

func TestLoadFileMissingFileIsEmptyDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	v, err := LoadFile(path, allOptional())
	if err != nil {
		t.Fatalf("missing file should load as empty document, got: %v", err)
	}
	if !v.Field("name").Empty() {
		t.Errorf("fields of an absent document should be empty")
	}
}
